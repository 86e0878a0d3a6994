package land

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/land-broker/internal/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Filter struct {
	Page     int
	Limit    int
	Search   string
	Location string
	Type     string
}

// Normalize applies defaults and bounds. Page is zero based.
func (f Filter) Normalize() Filter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	// Page*Limit must fit in an int.
	if f.Page > math.MaxInt/f.Limit {
		f.Page = math.MaxInt / f.Limit
	}
	f.Search = strings.TrimSpace(f.Search)
	f.Location = strings.TrimSpace(f.Location)
	f.Type = CanonicalType(f.Type)
	return f
}

func (f Filter) Offset() int {
	return f.Page * f.Limit
}

type Page struct {
	Lands []models.Land
	Total int64
	Page  int
	Limit int
}

// Pages is the number of pages needed for Total at Limit per page.
func (p Page) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
