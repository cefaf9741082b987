package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FarmerProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text;not null"`
	Category        string    `gorm:"type:varchar(100);not null"`
	Price           float64   `gorm:"type:decimal(12,2);not null"`
	Unit            string    `gorm:"type:varchar(30);not null"`
	ImageRef        string    `gorm:"type:text"`
	ApprovalStatus  string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApprovalDate    *time.Time
	RejectionReason string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
