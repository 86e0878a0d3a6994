package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/user"
	"github.com/BruksfildServices01/land-broker/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// GetUserByEmail matches the email exactly as stored.
func (r *UserGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) UpsertUser(
	ctx context.Context,
	u *models.User,
) (*models.User, error) {

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(u).Error; err != nil {
		return nil, translate(err)
	}

	return r.GetUserByEmail(ctx, u.Email)
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
