package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User is an account that can commit transactions (admin or employee).
// Invoices and order-status changes are always stamped with an explicit
// creator id and kind; the engine never reads the acting user from
// ambient state.
type User struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Email        string           `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string           `gorm:"size:255;not null" json:"-"`
	Kind         enum.CreatorKind `gorm:"default:1" json:"kind"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
