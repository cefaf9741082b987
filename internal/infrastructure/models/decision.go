package models

import (
	"time"

	"github.com/google/uuid"
)

type Decision struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TargetType string    `gorm:"type:varchar(20);not null;index:idx_decisions_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;index:idx_decisions_target"`
	Outcome    string    `gorm:"type:varchar(20);not null"`
	Reason     string    `gorm:"type:text"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}
