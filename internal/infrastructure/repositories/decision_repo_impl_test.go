package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"farm-market.backend/internal/domain/entities"
)

func TestDecisionRepository_CreateAndListByTarget(t *testing.T) {
	db := newTestDB(t)
	createDecisionTable(t, db)
	repo := NewDecisionRepository(db)
	ctx := context.Background()

	targetID := uuid.New()
	actorID := uuid.New()

	first := &entities.Decision{
		ID:         uuid.New(),
		TargetType: entities.DecisionTargetFarmer,
		TargetID:   targetID,
		Outcome:    entities.DecisionRejected,
		Reason:     null.StringFrom("missing tax document"),
		ActorID:    actorID,
		CreatedAt:  time.Now().Add(-time.Hour),
	}
	second := &entities.Decision{
		ID:         uuid.New(),
		TargetType: entities.DecisionTargetFarmer,
		TargetID:   targetID,
		Outcome:    entities.DecisionApproved,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Unrelated target stays out of the listing
	require.NoError(t, repo.Create(ctx, &entities.Decision{
		ID:         uuid.New(),
		TargetType: entities.DecisionTargetProduct,
		TargetID:   uuid.New(),
		Outcome:    entities.DecisionApproved,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	}))

	history, err := repo.ListByTarget(ctx, entities.DecisionTargetFarmer, targetID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, entities.DecisionApproved, history[0].Outcome)
	require.Equal(t, "missing tax document", history[1].Reason.String)
}
