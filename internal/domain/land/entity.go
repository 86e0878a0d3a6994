package land

import (
	"strings"

	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
	"github.com/BruksfildServices01/land-broker/internal/validators"
)

// ===============================
// Recommended values
// ===============================

// Units and types are open strings: these are the values the dashboard
// offers, but stored records may carry others.
const (
	UnitSquareFeet = "SQFT"
	UnitAcres      = "ACRES"
	UnitBigha      = "BIGHA"
	UnitHectare    = "HECTARE"

	TypeLand         = "LAND"
	TypeHouse        = "HOUSE"
	TypeApartment    = "APARTMENT"
	TypeCommercial   = "COMMERCIAL"
	TypeIndustrial   = "INDUSTRIAL"
	TypeAgricultural = "AGRICULTURAL"
)

var (
	RecommendedUnits = []string{UnitSquareFeet, UnitAcres, UnitBigha, UnitHectare}
	RecommendedTypes = []string{TypeLand, TypeHouse, TypeApartment, TypeCommercial, TypeIndustrial, TypeAgricultural}
)

// ===============================
// Input
// ===============================

// Input carries the client-settable fields of a land record. There is no
// price-per-area field: it is always derived.
type Input struct {
	FullName     string
	MobileNo     string
	LocationID   string
	LocationName string
	LandArea     float64
	LandAreaUnit string
	Type         string
	TotalPrice   float64
}

// Normalize trims text fields and canonicalizes unit and type to upper case.
func (in Input) Normalize() Input {
	in.FullName = strings.TrimSpace(in.FullName)
	in.MobileNo = strings.TrimSpace(in.MobileNo)
	in.LocationID = strings.TrimSpace(in.LocationID)
	in.LocationName = strings.TrimSpace(in.LocationName)
	in.LandAreaUnit = CanonicalUnit(in.LandAreaUnit)
	in.Type = CanonicalType(in.Type)
	return in
}

// Validate expects a normalized input.
func (in Input) Validate() error {
	if in.FullName == "" ||
		in.MobileNo == "" ||
		(in.LocationID == "" && in.LocationName == "") ||
		in.LandAreaUnit == "" ||
		in.Type == "" {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	// NaN fails both comparisons.
	if !(in.LandArea > 0) || !(in.TotalPrice > 0) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	if !validators.IsMobileValid(in.MobileNo) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	return nil
}

// ===============================
// Derived fields
// ===============================

func PricePerArea(totalPrice, landArea float64) float64 {
	return totalPrice / landArea
}

// Apply copies in onto l and recomputes the derived price. Owner and
// location are resolved by the caller.
func Apply(l *models.Land, in Input, locationID string) {
	l.FullName = in.FullName
	l.MobileNo = in.MobileNo
	l.LocationID = locationID
	l.LandArea = in.LandArea
	l.LandAreaUnit = in.LandAreaUnit
	l.Type = in.Type
	l.TotalPrice = in.TotalPrice
	l.PricePerArea = PricePerArea(in.TotalPrice, in.LandArea)
}

func CanonicalUnit(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "SQUARE-FEET", "SQUARE_FEET", "SQUARE FEET", "SQ FT", "SQ.FT", "SQ.FT.":
		return UnitSquareFeet
	case "ACRE":
		return UnitAcres
	case "HECTARES":
		return UnitHectare
	}
	return s
}

func CanonicalType(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
