package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type LocationGormRepository struct {
	db *gorm.DB
}

func NewLocationGormRepository(db *gorm.DB) *LocationGormRepository {
	return &LocationGormRepository{db: db}
}

func (r *LocationGormRepository) SearchLocations(
	ctx context.Context,
	query string,
) ([]models.Location, error) {

	q := r.db.WithContext(ctx).Model(&models.Location{})
	if query != "" {
		q = q.Where("name ILIKE ?", containsPattern(query))
	}

	locations := []models.Location{}
	if err := q.Order("name ASC").Find(&locations).Error; err != nil {
		return nil, translate(err)
	}
	return locations, nil
}

func (r *LocationGormRepository) CreateLocation(
	ctx context.Context,
	loc *models.Location,
) error {
	return translate(r.db.WithContext(ctx).Create(loc).Error)
}

func (r *LocationGormRepository) GetLocation(
	ctx context.Context,
	id string,
) (*models.Location, error) {

	var loc models.Location
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loc).Error; err != nil {
		return nil, translate(err)
	}
	return &loc, nil
}

// FindOrCreateLocation inserts name if missing. A concurrent insert of the
// same name is absorbed by ON CONFLICT and the winner's row is returned.
func (r *LocationGormRepository) FindOrCreateLocation(
	ctx context.Context,
	name string,
) (*models.Location, error) {

	loc := models.Location{Name: name}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&loc).Error; err != nil {
		return nil, translate(err)
	}

	var stored models.Location
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&stored).Error; err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

// Compile-time check
var _ domain.Repository = (*LocationGormRepository)(nil)
