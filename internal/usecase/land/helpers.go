package land

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	locationdomain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

const auditEntity = "land"

// A malformed id can never match a stored record.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// resolveLocation prefers an explicit id; a bare name is found or created.
func resolveLocation(
	ctx context.Context,
	locations locationdomain.Repository,
	in domain.Input,
) (*models.Location, error) {

	if in.LocationID != "" {
		if !validID(in.LocationID) {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}

		loc, err := locations.GetLocation(ctx, in.LocationID)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeNotFound) {
				return nil, httperr.Wrap(httperr.CodeValidation, err)
			}
			return nil, err
		}
		return loc, nil
	}

	return locations.FindOrCreateLocation(ctx, in.LocationName)
}
