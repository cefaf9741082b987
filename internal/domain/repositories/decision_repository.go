package repositories

import (
	"context"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
)

// DecisionRepository defines decision audit operations
type DecisionRepository interface {
	Create(ctx context.Context, decision *entities.Decision) error
	ListByTarget(ctx context.Context, targetType entities.DecisionTarget, targetID uuid.UUID) ([]*entities.Decision, error)
}
