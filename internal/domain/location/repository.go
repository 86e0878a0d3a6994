package location

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/models"
)

type Repository interface {
	// SearchLocations matches name case-insensitively by substring; an
	// empty query returns all. Results are ordered by name.
	SearchLocations(ctx context.Context, query string) ([]models.Location, error)

	// CreateLocation relies on the unique index on name and reports a
	// duplicate as a conflict.
	CreateLocation(ctx context.Context, loc *models.Location) error

	GetLocation(ctx context.Context, id string) (*models.Location, error)

	FindOrCreateLocation(ctx context.Context, name string) (*models.Location, error)
}
