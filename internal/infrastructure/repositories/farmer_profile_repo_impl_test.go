package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
)

func TestFarmerProfileRepository_CreateGetUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createFarmerProfileTable(t, db)
	repo := NewFarmerProfileRepository(db)
	ctx := context.Background()

	p := &entities.FarmerProfile{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		BusinessName:   "Sunny Fields",
		TaxNumber:      "TAX-001",
		City:           "Izmir",
		District:       "Urla",
		Address:        null.StringFrom("Field road 1"),
		ApprovalStatus: entities.ApprovalPending,
	}

	require.NoError(t, repo.Create(ctx, p))

	byID, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Sunny Fields", byID.BusinessName)
	require.False(t, byID.ReviewedAt.Valid)

	byUser, err := repo.GetByUserID(ctx, p.UserID)
	require.NoError(t, err)
	require.Equal(t, p.ID, byUser.ID)

	byTax, err := repo.GetByTaxNumber(ctx, "TAX-001")
	require.NoError(t, err)
	require.Equal(t, p.ID, byTax.ID)

	require.NoError(t, repo.UpdateStatus(ctx, p.ID, entities.ApprovalApproved))

	approved, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ApprovalApproved, approved.ApprovalStatus)
	require.True(t, approved.ReviewedAt.Valid)
}

func TestFarmerProfileRepository_ListByStatus(t *testing.T) {
	db := newTestDB(t)
	createFarmerProfileTable(t, db)
	repo := NewFarmerProfileRepository(db)
	ctx := context.Background()

	pending := &entities.FarmerProfile{
		ID: uuid.New(), UserID: uuid.New(),
		BusinessName: "Pending Farm", TaxNumber: "TAX-P",
		City: "Izmir", District: "Urla",
		ApprovalStatus: entities.ApprovalPending,
	}
	approved := &entities.FarmerProfile{
		ID: uuid.New(), UserID: uuid.New(),
		BusinessName: "Approved Farm", TaxNumber: "TAX-A",
		City: "Izmir", District: "Urla",
		ApprovalStatus: entities.ApprovalApproved,
	}
	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.Create(ctx, approved))

	items, err := repo.ListByStatus(ctx, entities.ApprovalPending, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Pending Farm", items[0].BusinessName)
}

func TestFarmerProfileRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createFarmerProfileTable(t, db)
	repo := NewFarmerProfileRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUserID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByTaxNumber(ctx, "TAX-NONE")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, id, entities.ApprovalApproved)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
