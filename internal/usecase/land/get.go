package land

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/auth"
	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type GetLand struct {
	repo domain.Repository
}

func NewGetLand(repo domain.Repository) *GetLand {
	return &GetLand{repo: repo}
}

// Execute reports not_found both for missing records and for records owned
// by someone else.
func (uc *GetLand) Execute(
	ctx context.Context,
	caller auth.Identity,
	landID string,
) (*models.Land, error) {

	if !validID(landID) {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return uc.repo.GetLandForOwner(ctx, landID, caller.UserID)
}
