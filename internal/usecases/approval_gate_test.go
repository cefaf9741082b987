package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/usecases"
)

func gateForUser(t *testing.T, user *entities.User) *usecases.ApprovalGate {
	t.Helper()
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	return usecases.NewApprovalGate(userRepo)
}

func TestApprovalGate_ApprovedFarmerMaySell(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleFarmer,
		ApprovalStatus: entities.ApprovalApproved, AccountStatus: entities.AccountActive,
	}
	gate := gateForUser(t, user)

	got, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilitySellProducts)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestApprovalGate_PendingFarmerIsHeldBack(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleFarmer,
		ApprovalStatus: entities.ApprovalPending, AccountStatus: entities.AccountActive,
	}
	gate := gateForUser(t, user)

	_, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilitySellProducts)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApprovalGate_RejectedFarmerStaysLockedOut(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleFarmer,
		ApprovalStatus: entities.ApprovalRejected, AccountStatus: entities.AccountActive,
	}
	gate := gateForUser(t, user)

	_, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilitySellProducts)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApprovalGate_SuspendedAccountBlockedEverywhere(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleCustomer,
		ApprovalStatus: entities.ApprovalApproved, AccountStatus: entities.AccountSuspended,
	}
	gate := gateForUser(t, user)

	_, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilityBrowse)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApprovalGate_RoleCapabilityMismatch(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleCustomer,
		ApprovalStatus: entities.ApprovalApproved, AccountStatus: entities.AccountActive,
	}
	gate := gateForUser(t, user)

	_, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilitySellProducts)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApprovalGate_ApprovedCompanyMayBulkPurchase(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleCompany,
		ApprovalStatus: entities.ApprovalApproved, AccountStatus: entities.AccountActive,
	}
	gate := gateForUser(t, user)

	_, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilityBulkPurchase)
	assert.NoError(t, err)
}

func TestApprovalGate_CustomerNeverNeedsVetting(t *testing.T) {
	user := &entities.User{
		ID: uuid.New(), Role: entities.RoleCustomer,
		ApprovalStatus: entities.ApprovalApproved, AccountStatus: entities.AccountActive,
	}
	gate := gateForUser(t, user)

	_, err := gate.Authorize(context.Background(), user.ID, usecases.CapabilityBrowse)
	assert.NoError(t, err)
}

func TestApprovalGate_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	id := uuid.New()
	userRepo.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrNotFound)
	gate := usecases.NewApprovalGate(userRepo)

	_, err := gate.Authorize(context.Background(), id, usecases.CapabilityBrowse)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
