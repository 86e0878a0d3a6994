package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Land is a property listing owned by exactly one user.
type Land struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FullName string `gorm:"size:150;not null" json:"fullName"`
	MobileNo string `gorm:"size:20;not null" json:"mobileNo"`

	LocationID string   `gorm:"type:uuid;not null;index" json:"locationId"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"location"`

	LandArea     float64 `gorm:"not null" json:"landArea"`
	LandAreaUnit string  `gorm:"size:30;not null" json:"landAreaUnit"`
	Type         string  `gorm:"size:30;not null;index" json:"type"`
	TotalPrice   float64 `gorm:"not null" json:"totalPrice"`
	PricePerArea float64 `gorm:"not null" json:"pricePerArea"`

	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Owner  *Owner `gorm:"-" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Owner is the public view of a land's user.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewOwner(u User) *Owner {
	if u.ID == "" {
		return nil
	}
	return &Owner{ID: u.ID, Name: u.Name, Email: u.Email}
}

// AfterFind runs after preloads, so a preloaded User becomes the Owner.
func (l *Land) AfterFind(tx *gorm.DB) error {
	l.Owner = NewOwner(l.User)
	return nil
}

func (l *Land) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
