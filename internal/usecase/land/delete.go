package land

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/auth"
	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
)

type DeleteLand struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteLand(repo domain.Repository, audit *audit.Dispatcher) *DeleteLand {
	return &DeleteLand{repo: repo, audit: audit}
}

func (uc *DeleteLand) Execute(
	ctx context.Context,
	caller auth.Identity,
	landID string,
) error {

	if !validID(landID) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := uc.repo.DeleteLandForOwner(ctx, landID, caller.UserID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   caller.UserID,
		Action:   "land_deleted",
		Entity:   auditEntity,
		EntityID: landID,
	})

	return nil
}
