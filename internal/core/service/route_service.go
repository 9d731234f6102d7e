package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// RouteService owns the route lifecycle: scheduled → in_progress →
// completed. Forward-only ordering is a convention, enforced only in
// strict mode.
type RouteService struct {
	routes   ports.RouteRepository
	cleaners ports.CleanerRepository
	strict   bool
	logger   zerolog.Logger
}

func NewRouteService(routes ports.RouteRepository, cleaners ports.CleanerRepository, strict bool, logger zerolog.Logger) *RouteService {
	return &RouteService{routes: routes, cleaners: cleaners, strict: strict, logger: logger}
}

// Create schedules a route. The cleaner must exist; its name is copied
// onto the route and never re-synced.
func (s *RouteService) Create(ctx context.Context, input ports.CreateRouteInput) (*domain.Route, error) {
	cleaner, err := s.cleaners.FindByID(ctx, input.CleanerID)
	if err != nil {
		return nil, err
	}

	route := &domain.Route{
		CleanerID:   cleaner.ID,
		CleanerName: cleaner.Name,
		Area:        input.Area,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
		Status:      domain.RouteScheduled,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.routes.Create(ctx, route)
	if err != nil {
		s.logger.Error().Err(err).Str("cleaner_id", cleaner.ID).Msg("failed to create route")
		return nil, err
	}

	s.logger.Info().Str("route_id", created.ID).Str("area", created.Area).Msg("route scheduled")
	return created, nil
}

func (s *RouteService) ListAll(ctx context.Context) ([]*domain.Route, error) {
	return s.routes.FindAll(ctx)
}

func (s *RouteService) ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Route, error) {
	return s.routes.FindByCleaner(ctx, cleanerID)
}

func (s *RouteService) UpdateStatus(ctx context.Context, id string, status domain.RouteStatus) (*domain.Route, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	if s.strict {
		current, err := s.routes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, domain.ErrInvalidTransition
		}
	}

	updated, err := s.routes.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("route_id", updated.ID).Str("status", string(status)).Msg("route status updated")
	return updated, nil
}

// Delete removes the route. Unknown ids succeed silently.
func (s *RouteService) Delete(ctx context.Context, id string) error {
	if err := s.routes.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("route_id", id).Msg("route deleted")
	return nil
}
