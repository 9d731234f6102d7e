package ports

import (
	"context"
	"time"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// CreateRouteInput carries the administrator's scheduling request. The
// cleaner id must resolve to an existing cleaner.
type CreateRouteInput struct {
	CleanerID   string
	Area        string
	Date        time.Time
	StartTime   string
	EndTime     string
	Description string
}

// RouteService owns the route lifecycle.
type RouteService interface {
	Create(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
	ListAll(ctx context.Context) ([]*domain.Route, error)
	ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Route, error)
	UpdateStatus(ctx context.Context, id string, status domain.RouteStatus) (*domain.Route, error)
	Delete(ctx context.Context, id string) error
}
