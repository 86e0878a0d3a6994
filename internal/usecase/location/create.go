package location

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type CreateLocation struct {
	repo domain.Repository
}

func NewCreateLocation(repo domain.Repository) *CreateLocation {
	return &CreateLocation{repo: repo}
}

// Execute leaves duplicate detection to the store's unique index.
func (uc *CreateLocation) Execute(ctx context.Context, name string) (*models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	loc := &models.Location{Name: name}
	if err := uc.repo.CreateLocation(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}
