package location

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type SearchLocations struct {
	repo domain.Repository
}

func NewSearchLocations(repo domain.Repository) *SearchLocations {
	return &SearchLocations{repo: repo}
}

func (uc *SearchLocations) Execute(ctx context.Context, query string) ([]models.Location, error) {
	return uc.repo.SearchLocations(ctx, strings.TrimSpace(query))
}
