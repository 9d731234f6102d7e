package ports

import (
	"context"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// RouteRepository defines persistence operations for scheduled routes.
// List operations return most recent date first.
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	FindByID(ctx context.Context, id string) (*domain.Route, error)
	FindByCleaner(ctx context.Context, cleanerID string) ([]*domain.Route, error)
	FindAll(ctx context.Context) ([]*domain.Route, error)
	UpdateStatus(ctx context.Context, id string, status domain.RouteStatus) (*domain.Route, error)
	// Delete removes a route. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
