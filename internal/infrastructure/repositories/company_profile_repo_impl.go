package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/infrastructure/models"
)

// CompanyProfileRepository implements company profile data operations
type CompanyProfileRepository struct {
	db *gorm.DB
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *gorm.DB) *CompanyProfileRepository {
	return &CompanyProfileRepository{db: db}
}

// Create creates a new company profile
func (r *CompanyProfileRepository) Create(ctx context.Context, profile *entities.CompanyProfile) error {
	m := &models.CompanyProfile{
		ID:             profile.ID,
		UserID:         profile.UserID,
		BusinessName:   profile.BusinessName,
		TaxNumber:      profile.TaxNumber,
		City:           profile.City,
		District:       profile.District,
		Address:        profile.Address.String,
		Phone:          profile.Phone.String,
		ApprovalStatus: string(profile.ApprovalStatus),
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.Duplicate("taxNumber")
		}
		return err
	}
	profile.ID = m.ID
	return nil
}

// GetByID gets a company profile by ID
func (r *CompanyProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CompanyProfile, error) {
	var m models.CompanyProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return companyProfileToEntity(&m), nil
}

// GetByUserID gets the company profile owned by a user
func (r *CompanyProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CompanyProfile, error) {
	var m models.CompanyProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return companyProfileToEntity(&m), nil
}

// GetByTaxNumber gets a company profile by tax number
func (r *CompanyProfileRepository) GetByTaxNumber(ctx context.Context, taxNumber string) (*entities.CompanyProfile, error) {
	var m models.CompanyProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("tax_number = ?", taxNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return companyProfileToEntity(&m), nil
}

// UpdateStatus updates the approval status of a company profile
func (r *CompanyProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.CompanyProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approval_status": string(status),
			"reviewed_at":     now,
			"updated_at":      now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByStatus lists company profiles with a given approval status
func (r *CompanyProfileRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.CompanyProfile, error) {
	var profileModels []models.CompanyProfile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("approval_status = ?", string(status)).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*entities.CompanyProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, companyProfileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

func companyProfileToEntity(m *models.CompanyProfile) *entities.CompanyProfile {
	return &entities.CompanyProfile{
		ID:             m.ID,
		UserID:         m.UserID,
		BusinessName:   m.BusinessName,
		TaxNumber:      m.TaxNumber,
		City:           m.City,
		District:       m.District,
		Address:        nullStringFrom(m.Address),
		Phone:          nullStringFrom(m.Phone),
		ApprovalStatus: entities.ApprovalStatus(m.ApprovalStatus),
		ReviewedAt:     null.TimeFromPtr(m.ReviewedAt),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
