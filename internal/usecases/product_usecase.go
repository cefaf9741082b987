package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/domain/repositories"
	"farm-market.backend/pkg/logger"
)

// ProductUsecase handles product listings and their automated
// verification path.
type ProductUsecase struct {
	productRepo repositories.ProductRepository
	farmerRepo  repositories.FarmerProfileRepository
	engine      *VerificationEngine
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	productRepo repositories.ProductRepository,
	farmerRepo repositories.FarmerProfileRepository,
	engine *VerificationEngine,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		farmerRepo:  farmerRepo,
		engine:      engine,
	}
}

// Create lists a new product for the farmer owning userID. The verdict
// decides between approved and pending; the product is persisted no
// matter how verification went.
func (u *ProductUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	farmer, err := u.farmerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		ID:              uuid.New(),
		FarmerProfileID: farmer.ID,
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		Price:           input.Price,
		Unit:            input.Unit,
		ImageRef:        input.ImageRef,
		ApprovalStatus:  entities.ApprovalPending,
	}

	verdict := u.engine.Verify(ctx, product.Name, product.Description, product.Category, product.ImageRef)
	applyVerdict(product, verdict)
	logger.Info(ctx, "product verified on create",
		zap.String("product", product.Name),
		zap.Bool("autoApproved", verdict.AutoApproved),
		zap.Float64("confidence", verdict.Confidence),
	)

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update edits a product owned by the caller. An edit that touches any
// verified field while the product is approved demotes it to pending
// and runs exactly one fresh verification; other edits never trigger
// the engine.
func (u *ProductUsecase) Update(ctx context.Context, userID, productID uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	farmer, err := u.farmerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.FarmerProfileID != farmer.ID {
		return nil, domainerrors.Forbidden("product belongs to another farmer")
	}

	reverify := product.ApprovalStatus == entities.ApprovalApproved && input.TouchesVerifiedFields(product)

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.ImageRef != nil {
		product.ImageRef = *input.ImageRef
	}

	if reverify {
		// A stale approval never survives a content change.
		product.ApprovalStatus = entities.ApprovalPending
		product.ApprovalDate = null.Time{}

		verdict := u.engine.Verify(ctx, product.Name, product.Description, product.Category, product.ImageRef)
		applyVerdict(product, verdict)
		logger.Info(ctx, "product re-verified on edit",
			zap.String("product", product.Name),
			zap.Bool("autoApproved", verdict.AutoApproved),
		)
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID returns one product
func (u *ProductUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// ListApproved lists publicly visible products
func (u *ProductUsecase) ListApproved(ctx context.Context, limit, offset int) ([]*entities.Product, error) {
	return u.productRepo.ListByStatus(ctx, entities.ApprovalApproved, limit, offset)
}

// ListMine lists all products of the calling farmer regardless of status
func (u *ProductUsecase) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Product, error) {
	farmer, err := u.farmerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.productRepo.ListByFarmer(ctx, farmer.ID)
}

// applyVerdict maps the verdict to product fields. The automated path
// can only ever approve or park the product; rejection stays a human
// privilege.
func applyVerdict(product *entities.Product, verdict *entities.VerificationVerdict) {
	product.ApprovalStatus = verdict.ProductStatus()
	if verdict.AutoApproved {
		product.ApprovalDate = null.TimeFrom(time.Now())
	}
}
