package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"farm-market.backend/internal/domain/entities"
	"farm-market.backend/internal/infrastructure/images"
	"farm-market.backend/internal/infrastructure/jobs"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, approval entities.ApprovalStatus, account entities.AccountStatus) error {
	args := m.Called(ctx, id, approval, account)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock FarmerProfileRepository
type MockFarmerProfileRepository struct {
	mock.Mock
}

func (m *MockFarmerProfileRepository) Create(ctx context.Context, profile *entities.FarmerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockFarmerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FarmerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FarmerProfile), args.Error(1)
}

func (m *MockFarmerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FarmerProfile), args.Error(1)
}

func (m *MockFarmerProfileRepository) GetByTaxNumber(ctx context.Context, taxNumber string) (*entities.FarmerProfile, error) {
	args := m.Called(ctx, taxNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FarmerProfile), args.Error(1)
}

func (m *MockFarmerProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFarmerProfileRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.FarmerProfile, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FarmerProfile), args.Error(1)
}

// Mock CompanyProfileRepository
type MockCompanyProfileRepository struct {
	mock.Mock
}

func (m *MockCompanyProfileRepository) Create(ctx context.Context, profile *entities.CompanyProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCompanyProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CompanyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepository) GetByTaxNumber(ctx context.Context, taxNumber string) (*entities.CompanyProfile, error) {
	args := m.Called(ctx, taxNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCompanyProfileRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.CompanyProfile, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CompanyProfile), args.Error(1)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ListByFarmer(ctx context.Context, farmerProfileID uuid.UUID) ([]*entities.Product, error) {
	args := m.Called(ctx, farmerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus, limit, offset int) ([]*entities.Product, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

// Mock DecisionRepository
type MockDecisionRepository struct {
	mock.Mock
}

func (m *MockDecisionRepository) Create(ctx context.Context, decision *entities.Decision) error {
	args := m.Called(ctx, decision)
	return args.Error(0)
}

func (m *MockDecisionRepository) ListByTarget(ctx context.Context, targetType entities.DecisionTarget, targetID uuid.UUID) ([]*entities.Decision, error) {
	args := m.Called(ctx, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Decision), args.Error(1)
}

// Mock VisionModel
type MockVisionModel struct {
	mock.Mock
}

func (m *MockVisionModel) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	args := m.Called(ctx, prompt, image, mimeType)
	return args.String(0), args.Error(1)
}

// Mock ImageResolver
type MockImageResolver struct {
	mock.Mock
}

func (m *MockImageResolver) Resolve(ctx context.Context, ref string) (*images.Image, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.Image), args.Error(1)
}

// Mock Notifier captures enqueued notifications
type MockNotifier struct {
	mock.Mock
	Sent []jobs.Notification
}

func (m *MockNotifier) Enqueue(ctx context.Context, n jobs.Notification) {
	m.Called(ctx, n)
	m.Sent = append(m.Sent, n)
}
