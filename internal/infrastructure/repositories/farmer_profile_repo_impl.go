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

// FarmerProfileRepository implements farmer profile data operations
type FarmerProfileRepository struct {
	db *gorm.DB
}

// NewFarmerProfileRepository creates a new farmer profile repository
func NewFarmerProfileRepository(db *gorm.DB) *FarmerProfileRepository {
	return &FarmerProfileRepository{db: db}
}

// Create creates a new farmer profile
func (r *FarmerProfileRepository) Create(ctx context.Context, profile *entities.FarmerProfile) error {
	m := &models.FarmerProfile{
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

// GetByID gets a farmer profile by ID
func (r *FarmerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FarmerProfile, error) {
	var m models.FarmerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return farmerProfileToEntity(&m), nil
}

// GetByUserID gets the farmer profile owned by a user
func (r *FarmerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	var m models.FarmerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return farmerProfileToEntity(&m), nil
}

// GetByTaxNumber gets a farmer profile by tax number
func (r *FarmerProfileRepository) GetByTaxNumber(ctx context.Context, taxNumber string) (*entities.FarmerProfile, error) {
	var m models.FarmerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("tax_number = ?", taxNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return farmerProfileToEntity(&m), nil
}

// UpdateStatus updates the approval status of a farmer profile
func (r *FarmerProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FarmerProfile{}).
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

// ListByStatus lists farmer profiles with a given approval status
func (r *FarmerProfileRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.FarmerProfile, error) {
	var profileModels []models.FarmerProfile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("approval_status = ?", string(status)).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*entities.FarmerProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, farmerProfileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

func farmerProfileToEntity(m *models.FarmerProfile) *entities.FarmerProfile {
	return &entities.FarmerProfile{
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

func nullStringFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
