package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/domain/repositories"
)

// OnboardingUsecase attaches a business profile to a user for review
type OnboardingUsecase struct {
	userRepo    repositories.UserRepository
	farmerRepo  repositories.FarmerProfileRepository
	companyRepo repositories.CompanyProfileRepository
}

// NewOnboardingUsecase creates a new onboarding usecase
func NewOnboardingUsecase(
	userRepo repositories.UserRepository,
	farmerRepo repositories.FarmerProfileRepository,
	companyRepo repositories.CompanyProfileRepository,
) *OnboardingUsecase {
	return &OnboardingUsecase{
		userRepo:    userRepo,
		farmerRepo:  farmerRepo,
		companyRepo: companyRepo,
	}
}

func validateDraft(draft *entities.ProfileDraft) error {
	if draft == nil {
		return domainerrors.Validation("profile draft is required")
	}
	if draft.BusinessName == "" {
		return domainerrors.Validation("businessName is required")
	}
	if draft.TaxNumber == "" {
		return domainerrors.Validation("taxNumber is required")
	}
	if draft.City == "" {
		return domainerrors.Validation("city is required")
	}
	if draft.District == "" {
		return domainerrors.Validation("district is required")
	}
	return nil
}

func (u *OnboardingUsecase) requireRole(ctx context.Context, userID uuid.UUID, role entities.Role) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != role {
		return domainerrors.Forbidden("account role does not match the profile kind")
	}
	return nil
}

// SubmitFarmerProfile creates a pending farmer profile for a user.
// Only farmer accounts may submit one; one profile per user; tax
// numbers are unique across farmers.
func (u *OnboardingUsecase) SubmitFarmerProfile(ctx context.Context, userID uuid.UUID, draft *entities.ProfileDraft) (*entities.FarmerProfile, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := u.requireRole(ctx, userID, entities.RoleFarmer); err != nil {
		return nil, err
	}

	if _, err := u.farmerRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domainerrors.Validation("user already has a farmer profile")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.farmerRepo.GetByTaxNumber(ctx, draft.TaxNumber); err == nil {
		return nil, domainerrors.Duplicate("taxNumber")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile := &entities.FarmerProfile{
		ID:             uuid.New(),
		UserID:         userID,
		BusinessName:   draft.BusinessName,
		TaxNumber:      draft.TaxNumber,
		City:           draft.City,
		District:       draft.District,
		Address:        optionalString(draft.Address),
		Phone:          optionalString(draft.Phone),
		ApprovalStatus: entities.ApprovalPending,
	}

	if err := u.farmerRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SubmitCompanyProfile creates a pending company profile for a user
func (u *OnboardingUsecase) SubmitCompanyProfile(ctx context.Context, userID uuid.UUID, draft *entities.ProfileDraft) (*entities.CompanyProfile, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := u.requireRole(ctx, userID, entities.RoleCompany); err != nil {
		return nil, err
	}

	if _, err := u.companyRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domainerrors.Validation("user already has a company profile")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.companyRepo.GetByTaxNumber(ctx, draft.TaxNumber); err == nil {
		return nil, domainerrors.Duplicate("taxNumber")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile := &entities.CompanyProfile{
		ID:             uuid.New(),
		UserID:         userID,
		BusinessName:   draft.BusinessName,
		TaxNumber:      draft.TaxNumber,
		City:           draft.City,
		District:       draft.District,
		Address:        optionalString(draft.Address),
		Phone:          optionalString(draft.Phone),
		ApprovalStatus: entities.ApprovalPending,
	}

	if err := u.companyRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// MyFarmerProfile returns the farmer profile of a user
func (u *OnboardingUsecase) MyFarmerProfile(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	return u.farmerRepo.GetByUserID(ctx, userID)
}

// MyCompanyProfile returns the company profile of a user
func (u *OnboardingUsecase) MyCompanyProfile(ctx context.Context, userID uuid.UUID) (*entities.CompanyProfile, error) {
	return u.companyRepo.GetByUserID(ctx, userID)
}
