package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:191;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Role         string `gorm:"size:20;not null;default:'broker'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
