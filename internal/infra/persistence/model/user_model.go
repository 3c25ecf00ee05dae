package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs come from the caller; the column has no default.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string    `gorm:"type:varchar(100)"`
	FullName       string    `gorm:"type:varchar(255)"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsSuperuser    bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
