package land

import (
	"context"
	"time"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/auth"
	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	locationdomain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type UpdateLand struct {
	repo      domain.Repository
	locations locationdomain.Repository
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewUpdateLand(
	repo domain.Repository,
	locations locationdomain.Repository,
	audit *audit.Dispatcher,
) *UpdateLand {
	return &UpdateLand{
		repo:      repo,
		locations: locations,
		audit:     audit,
		now:       time.Now,
	}
}

// Execute replaces every settable field. The owner and creation time are
// kept and the price per area is recomputed.
func (uc *UpdateLand) Execute(
	ctx context.Context,
	caller auth.Identity,
	landID string,
	in domain.Input,
) (*models.Land, error) {

	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if !validID(landID) {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	current, err := uc.repo.GetLandForOwner(ctx, landID, caller.UserID)
	if err != nil {
		return nil, err
	}

	loc, err := resolveLocation(ctx, uc.locations, in)
	if err != nil {
		return nil, err
	}

	domain.Apply(current, in, loc.ID)
	current.UpdatedAt = uc.now().UTC()

	// Still scoped to the owner: the record may have been deleted since
	// it was read.
	if err := uc.repo.UpdateLandForOwner(ctx, current); err != nil {
		return nil, err
	}
	current.Location = *loc

	uc.audit.Dispatch(audit.Event{
		UserID:   caller.UserID,
		Action:   "land_updated",
		Entity:   auditEntity,
		EntityID: current.ID,
		Metadata: map[string]any{
			"totalPrice":   current.TotalPrice,
			"pricePerArea": current.PricePerArea,
		},
	})

	return current, nil
}
