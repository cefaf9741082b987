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

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := productToModel(product)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	return nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// Update writes the full product row back. The rejection reason column
// is always written so an approval clears a stale reason.
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":             product.Name,
		"description":      product.Description,
		"category":         product.Category,
		"price":            product.Price,
		"unit":             product.Unit,
		"image_ref":        product.ImageRef,
		"approval_status":  string(product.ApprovalStatus),
		"approval_date":    product.ApprovalDate.Ptr(),
		"rejection_reason": product.RejectionReason.String,
		"updated_at":       time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByFarmer lists all products of one farmer profile
func (r *ProductRepository) ListByFarmer(ctx context.Context, farmerProfileID uuid.UUID) ([]*entities.Product, error) {
	var productModels []models.Product
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("farmer_profile_id = ?", farmerProfileID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// ListByStatus lists products with a given approval status
func (r *ProductRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.Product, error) {
	var productModels []models.Product
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("approval_status = ?", string(status)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

func productsToEntities(productModels []models.Product) []*entities.Product {
	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products
}

func productToModel(p *entities.Product) *models.Product {
	return &models.Product{
		ID:              p.ID,
		FarmerProfileID: p.FarmerProfileID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Price:           p.Price,
		Unit:            p.Unit,
		ImageRef:        p.ImageRef,
		ApprovalStatus:  string(p.ApprovalStatus),
		ApprovalDate:    p.ApprovalDate.Ptr(),
		RejectionReason: p.RejectionReason.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:              m.ID,
		FarmerProfileID: m.FarmerProfileID,
		Name:            m.Name,
		Description:     m.Description,
		Category:        m.Category,
		Price:           m.Price,
		Unit:            m.Unit,
		ImageRef:        m.ImageRef,
		ApprovalStatus:  entities.ApprovalStatus(m.ApprovalStatus),
		ApprovalDate:    null.TimeFromPtr(m.ApprovalDate),
		RejectionReason: nullStringFrom(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
