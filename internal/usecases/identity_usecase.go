package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/domain/repositories"
	"farm-market.backend/pkg/crypto"
	"farm-market.backend/pkg/jwt"
)

// IdentityUsecase handles registration and authentication
type IdentityUsecase struct {
	userRepo   repositories.UserRepository
	onboarding *OnboardingUsecase
	uow        repositories.UnitOfWork
	jwtService *jwt.JWTService
}

// NewIdentityUsecase creates a new identity usecase
func NewIdentityUsecase(
	userRepo repositories.UserRepository,
	onboarding *OnboardingUsecase,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *IdentityUsecase {
	return &IdentityUsecase{
		userRepo:   userRepo,
		onboarding: onboarding,
		uow:        uow,
		jwtService: jwtService,
	}
}

// Register creates a new account. Customers come out approved and
// active; farmer and company accounts start pending on both axes and a
// profile draft, when supplied, is created in the same transaction so
// the user and profile records always appear together.
func (u *IdentityUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	if !input.Role.Valid() || input.Role == entities.RoleAdmin {
		return nil, domainerrors.Validation("invalid role")
	}
	if input.Role.RequiresVetting() && input.Profile == nil {
		return nil, domainerrors.Validation("business profile is required for this role")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Duplicate("email")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:             uuid.New(),
		Email:          input.Email,
		Name:           input.Name,
		PasswordHash:   passwordHash,
		Role:           input.Role,
		ApprovalStatus: entities.InitialApprovalStatus(input.Role),
		AccountStatus:  entities.InitialAccountStatus(input.Role),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		if input.Profile == nil {
			return nil
		}
		switch input.Role {
		case entities.RoleFarmer:
			_, err := u.onboarding.SubmitFarmerProfile(txCtx, user.ID, input.Profile)
			return err
		case entities.RoleCompany:
			_, err := u.onboarding.SubmitCompanyProfile(txCtx, user.ID, input.Profile)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a token pair
func (u *IdentityUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.AccountStatus == entities.AccountSuspended || user.AccountStatus == entities.AccountDeactivated {
		return nil, domainerrors.Forbidden("account inactive")
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// GetMe returns the current account
func (u *IdentityUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
