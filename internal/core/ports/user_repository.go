package ports

import (
	"context"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// UserRepository defines persistence operations for resident accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks a resident up by lowercased email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
