package dto

import (
	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type PaginationDTO struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type LandListDTO struct {
	Lands      []models.Land `json:"lands"`
	Pagination PaginationDTO `json:"pagination"`
}

func NewLandList(p *domain.Page) LandListDTO {
	lands := p.Lands
	if lands == nil {
		lands = []models.Land{}
	}

	return LandListDTO{
		Lands: lands,
		Pagination: PaginationDTO{
			Page:  p.Page,
			Limit: p.Limit,
			Total: p.Total,
			Pages: p.Pages(),
		},
	}
}
