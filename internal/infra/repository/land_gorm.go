package repository

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type LandGormRepository struct {
	db *gorm.DB
}

func NewLandGormRepository(db *gorm.DB) *LandGormRepository {
	return &LandGormRepository{db: db}
}

// --------------------------------------------------
// Query
// --------------------------------------------------

// likeEscaper makes user input literal inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// withOwner preloads only the public user columns.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (r *LandGormRepository) scoped(
	ctx context.Context,
	ownerID string,
	f domain.Filter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Model(&models.Land{}).
		Joins(`LEFT JOIN locations AS "Location" ON "Location".id = lands.location_id`).
		Where("lands.user_id = ?", ownerID)

	if f.Search != "" {
		like := containsPattern(f.Search)
		q = q.Where(
			`(lands.full_name ILIKE ? OR "Location".name ILIKE ? OR lands.mobile_no LIKE ?)`,
			like, like, like,
		)
	}

	if f.Location != "" {
		q = q.Where(`LOWER("Location".name) = LOWER(?)`, f.Location)
	}

	if f.Type != "" {
		q = q.Where("lands.type = ?", f.Type)
	}

	return q
}

func (r *LandGormRepository) ListLands(
	ctx context.Context,
	ownerID string,
	f domain.Filter,
) ([]models.Land, int64, error) {

	var (
		lands []models.Land
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.scoped(gctx, ownerID, f).Count(&total).Error
	})

	g.Go(func() error {
		return r.scoped(gctx, ownerID, f).
			Select("lands.*").
			Preload("Location").
			Preload("User", withOwner).
			Order("lands.created_at DESC, lands.id DESC").
			Limit(f.Limit).
			Offset(f.Offset()).
			Find(&lands).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, translate(err)
	}

	if lands == nil {
		lands = []models.Land{}
	}
	return lands, total, nil
}

func (r *LandGormRepository) GetLandForOwner(
	ctx context.Context,
	landID string,
	ownerID string,
) (*models.Land, error) {

	var l models.Land
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("User", withOwner).
		Where("id = ? AND user_id = ?", landID, ownerID).
		First(&l).Error; err != nil {
		return nil, translate(err)
	}

	return &l, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *LandGormRepository) CreateLand(
	ctx context.Context,
	l *models.Land,
) error {
	return translate(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(l).Error)
}

var landMutableColumns = []string{
	"full_name",
	"mobile_no",
	"location_id",
	"land_area",
	"land_area_unit",
	"type",
	"total_price",
	"price_per_area",
	"updated_at",
}

func (r *LandGormRepository) UpdateLandForOwner(
	ctx context.Context,
	l *models.Land,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Land{}).
		Where("id = ? AND user_id = ?", l.ID, l.UserID).
		Select(landMutableColumns).
		Updates(map[string]any{
			"full_name":      l.FullName,
			"mobile_no":      l.MobileNo,
			"location_id":    l.LocationID,
			"land_area":      l.LandArea,
			"land_area_unit": l.LandAreaUnit,
			"type":           l.Type,
			"total_price":    l.TotalPrice,
			"price_per_area": l.PricePerArea,
			"updated_at":     l.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

func (r *LandGormRepository) DeleteLandForOwner(
	ctx context.Context,
	landID string,
	ownerID string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", landID, ownerID).
		Delete(&models.Land{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*LandGormRepository)(nil)
