package user

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/models"
)

// Repository is the credential store.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpsertUser creates the user or leaves an existing one with the same
	// email untouched, returning the stored row.
	UpsertUser(ctx context.Context, u *models.User) (*models.User, error)
}
