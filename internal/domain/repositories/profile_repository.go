package repositories

import (
	"context"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
)

// FarmerProfileRepository defines farmer profile data operations
type FarmerProfileRepository interface {
	Create(ctx context.Context, profile *entities.FarmerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FarmerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error)
	GetByTaxNumber(ctx context.Context, taxNumber string) (*entities.FarmerProfile, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error
	ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.FarmerProfile, error)
}

// CompanyProfileRepository defines company profile data operations
type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *entities.CompanyProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CompanyProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CompanyProfile, error)
	GetByTaxNumber(ctx context.Context, taxNumber string) (*entities.CompanyProfile, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error
	ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.CompanyProfile, error)
}
