package repositories

import (
	"context"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	ListByFarmer(ctx context.Context, farmerProfileID uuid.UUID) ([]*entities.Product, error)
	ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.Product, error)
}
