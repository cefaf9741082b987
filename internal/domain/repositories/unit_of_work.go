package repositories

import (
	"context"
)

// UnitOfWork executes a function within a single transaction scope.
// Repositories called inside fn share the transaction through the
// context; if fn returns an error nothing is committed.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
