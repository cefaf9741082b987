package repositories

import (
	"context"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, approval entities.ApprovalStatus, account entities.AccountStatus) error
	List(ctx context.Context, search string) ([]*entities.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
