package ports

import (
	"context"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// CleanerRepository defines persistence operations for cleaner accounts.
type CleanerRepository interface {
	Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error)
	FindByEmail(ctx context.Context, email string) (*domain.Cleaner, error)
	FindByVehicleNumber(ctx context.Context, vehicleNumber string) (*domain.Cleaner, error)
	FindByID(ctx context.Context, id string) (*domain.Cleaner, error)
	List(ctx context.Context) ([]*domain.Cleaner, error)
	UpdateStatus(ctx context.Context, id string, status domain.CleanerStatus, location string) (*domain.Cleaner, error)
	UpdateArea(ctx context.Context, id, area string) (*domain.Cleaner, error)
	// Delete removes a cleaner. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
