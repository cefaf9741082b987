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

func TestOnboardingUsecase_DraftValidation(t *testing.T) {
	uc := usecases.NewOnboardingUsecase(new(MockUserRepository), new(MockFarmerProfileRepository), new(MockCompanyProfileRepository))
	userID := uuid.New()

	cases := []struct {
		name  string
		draft *entities.ProfileDraft
	}{
		{"nil draft", nil},
		{"missing business name", &entities.ProfileDraft{TaxNumber: "T", City: "C", District: "D"}},
		{"missing tax number", &entities.ProfileDraft{BusinessName: "B", City: "C", District: "D"}},
		{"missing city", &entities.ProfileDraft{BusinessName: "B", TaxNumber: "T", District: "D"}},
		{"missing district", &entities.ProfileDraft{BusinessName: "B", TaxNumber: "T", City: "C"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.SubmitFarmerProfile(context.Background(), userID, tc.draft)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestOnboardingUsecase_OneFarmerProfilePerUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	farmerRepo := new(MockFarmerProfileRepository)
	uc := usecases.NewOnboardingUsecase(userRepo, farmerRepo, new(MockCompanyProfileRepository))
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{ID: userID, Role: entities.RoleFarmer}, nil).Once()
	farmerRepo.On("GetByUserID", mock.Anything, userID).Return(&entities.FarmerProfile{ID: uuid.New(), UserID: userID}, nil).Once()

	_, err := uc.SubmitFarmerProfile(context.Background(), userID, validDraft())
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	farmerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOnboardingUsecase_DuplicateTaxNumber(t *testing.T) {
	userRepo := new(MockUserRepository)
	farmerRepo := new(MockFarmerProfileRepository)
	uc := usecases.NewOnboardingUsecase(userRepo, farmerRepo, new(MockCompanyProfileRepository))
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{ID: userID, Role: entities.RoleFarmer}, nil).Once()
	farmerRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()
	farmerRepo.On("GetByTaxNumber", mock.Anything, "TAX-001").Return(&entities.FarmerProfile{ID: uuid.New()}, nil).Once()

	_, err := uc.SubmitFarmerProfile(context.Background(), userID, validDraft())
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestOnboardingUsecase_RejectsRoleMismatch(t *testing.T) {
	userRepo := new(MockUserRepository)
	farmerRepo := new(MockFarmerProfileRepository)
	companyRepo := new(MockCompanyProfileRepository)
	uc := usecases.NewOnboardingUsecase(userRepo, farmerRepo, companyRepo)
	userID := uuid.New()

	// An approved customer must not be able to enter the farmer queue
	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{ID: userID, Role: entities.RoleCustomer}, nil)

	_, err := uc.SubmitFarmerProfile(context.Background(), userID, validDraft())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	farmerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	_, err = uc.SubmitCompanyProfile(context.Background(), userID, validDraft())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOnboardingUsecase_SubmitCompanyProfileStartsPending(t *testing.T) {
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyProfileRepository)
	uc := usecases.NewOnboardingUsecase(userRepo, new(MockFarmerProfileRepository), companyRepo)
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{ID: userID, Role: entities.RoleCompany}, nil).Once()
	companyRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()
	companyRepo.On("GetByTaxNumber", mock.Anything, "TAX-001").Return(nil, domainerrors.ErrNotFound).Once()
	companyRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.CompanyProfile")).Return(nil).Once()

	profile, err := uc.SubmitCompanyProfile(context.Background(), userID, validDraft())
	assert.NoError(t, err)
	assert.Equal(t, entities.ApprovalPending, profile.ApprovalStatus)
	assert.Equal(t, userID, profile.UserID)
}

func TestOnboardingUsecase_MyProfileLookups(t *testing.T) {
	farmerRepo := new(MockFarmerProfileRepository)
	companyRepo := new(MockCompanyProfileRepository)
	uc := usecases.NewOnboardingUsecase(new(MockUserRepository), farmerRepo, companyRepo)
	userID := uuid.New()

	farmerRepo.On("GetByUserID", mock.Anything, userID).Return(&entities.FarmerProfile{UserID: userID}, nil).Once()
	profile, err := uc.MyFarmerProfile(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)

	companyRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.MyCompanyProfile(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
