package db

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/land-broker/internal/auth"
	locationdomain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	userdomain "github.com/BruksfildServices01/land-broker/internal/domain/user"
	"github.com/BruksfildServices01/land-broker/internal/models"
	"github.com/BruksfildServices01/land-broker/internal/validators"
)

var DefaultLocations = []string{"Gondal", "Rajkot"}

type SeedAdmin struct {
	Email    string
	Password string
	Name     string
}

// Seed creates the admin user and the default locations. Existing rows are
// left as they are, so running it twice is harmless.
func Seed(
	ctx context.Context,
	users userdomain.Repository,
	locations locationdomain.Repository,
	admin SeedAdmin,
) (*models.User, error) {

	if !validators.IsEmailFormatValid(admin.Email) {
		return nil, fmt.Errorf("seed admin: invalid email %q", admin.Email)
	}
	if admin.Password == "" {
		return nil, fmt.Errorf("seed admin: empty password")
	}

	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	user, err := users.UpsertUser(ctx, &models.User{
		Email:        admin.Email,
		PasswordHash: hash,
		Name:         admin.Name,
		Role:         string(auth.RoleAdmin),
	})
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	for _, name := range DefaultLocations {
		if _, err := locations.FindOrCreateLocation(ctx, name); err != nil {
			return nil, fmt.Errorf("seed location %q: %w", name, err)
		}
	}

	return user, nil
}
