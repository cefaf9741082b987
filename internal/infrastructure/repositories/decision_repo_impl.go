package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"farm-market.backend/internal/domain/entities"
	"farm-market.backend/internal/infrastructure/models"
)

// DecisionRepository implements decision audit operations
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

// Create records a decision
func (r *DecisionRepository) Create(ctx context.Context, decision *entities.Decision) error {
	m := &models.Decision{
		ID:         decision.ID,
		TargetType: string(decision.TargetType),
		TargetID:   decision.TargetID,
		Outcome:    string(decision.Outcome),
		Reason:     decision.Reason.String,
		ActorID:    decision.ActorID,
		CreatedAt:  decision.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	decision.ID = m.ID
	return nil
}

// ListByTarget lists the decision history of one target
func (r *DecisionRepository) ListByTarget(ctx context.Context, targetType entities.DecisionTarget, targetID uuid.UUID) ([]*entities.Decision, error) {
	var decisionModels []models.Decision
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("target_type = ? AND target_id = ?", string(targetType), targetID).
		Order("created_at DESC").
		Find(&decisionModels).Error
	if err != nil {
		return nil, err
	}

	decisions := make([]*entities.Decision, 0, len(decisionModels))
	for i := range decisionModels {
		m := decisionModels[i]
		decisions = append(decisions, &entities.Decision{
			ID:         m.ID,
			TargetType: entities.DecisionTarget(m.TargetType),
			TargetID:   m.TargetID,
			Outcome:    entities.DecisionOutcome(m.Outcome),
			Reason:     nullStringFrom(m.Reason),
			ActorID:    m.ActorID,
			CreatedAt:  m.CreatedAt,
		})
	}
	return decisions, nil
}
