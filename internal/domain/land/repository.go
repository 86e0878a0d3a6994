package land

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/models"
)

// Repository is the record store. Every method is scoped by owner: a record
// belonging to someone else behaves exactly like a missing one.
type Repository interface {
	ListLands(
		ctx context.Context,
		ownerID string,
		filter Filter,
	) ([]models.Land, int64, error)

	GetLandForOwner(
		ctx context.Context,
		landID string,
		ownerID string,
	) (*models.Land, error)

	CreateLand(
		ctx context.Context,
		l *models.Land,
	) error

	// UpdateLandForOwner writes the mutable fields of l in a single
	// statement guarded by l.ID and l.UserID.
	UpdateLandForOwner(
		ctx context.Context,
		l *models.Land,
	) error

	DeleteLandForOwner(
		ctx context.Context,
		landID string,
		ownerID string,
	) error
}
