package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FarmerProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName   string    `gorm:"type:varchar(255);not null"`
	TaxNumber      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	City           string    `gorm:"type:varchar(100);not null"`
	District       string    `gorm:"type:varchar(100);not null"`
	Address        string    `gorm:"type:text"`
	Phone          string    `gorm:"type:varchar(30)"`
	ApprovalStatus string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
