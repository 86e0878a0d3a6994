package land

import (
	"context"

	"github.com/BruksfildServices01/land-broker/internal/auth"
	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
)

type ListLands struct {
	repo domain.Repository
}

func NewListLands(repo domain.Repository) *ListLands {
	return &ListLands{repo: repo}
}

func (uc *ListLands) Execute(
	ctx context.Context,
	caller auth.Identity,
	filter domain.Filter,
) (*domain.Page, error) {

	filter = filter.Normalize()

	lands, total, err := uc.repo.ListLands(ctx, caller.UserID, filter)
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Lands: lands,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
