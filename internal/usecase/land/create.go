package land

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/auth"
	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	locationdomain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type CreateLand struct {
	repo      domain.Repository
	locations locationdomain.Repository
	audit     *audit.Dispatcher
}

func NewCreateLand(
	repo domain.Repository,
	locations locationdomain.Repository,
	audit *audit.Dispatcher,
) *CreateLand {
	return &CreateLand{
		repo:      repo,
		locations: locations,
		audit:     audit,
	}
}

func (uc *CreateLand) Execute(
	ctx context.Context,
	caller auth.Identity,
	in domain.Input,
) (*models.Land, error) {

	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loc, err := resolveLocation(ctx, uc.locations, in)
	if err != nil {
		return nil, err
	}

	l := &models.Land{UserID: caller.UserID}
	domain.Apply(l, in, loc.ID)

	if err := uc.repo.CreateLand(ctx, l); err != nil {
		return nil, err
	}

	// Reload to return the record with its location and owner.
	created, err := uc.repo.GetLandForOwner(ctx, l.ID, caller.UserID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   caller.UserID,
		Action:   "land_created",
		Entity:   auditEntity,
		EntityID: created.ID,
		Metadata: map[string]any{
			"totalPrice":   created.TotalPrice,
			"pricePerArea": created.PricePerArea,
		},
	})

	return created, nil
}
