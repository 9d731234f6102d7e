package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// CleanerService covers cleaner self-service (profile, status, live
// location) and admin management (listing, area changes, deletion).
type CleanerService struct {
	cleaners  ports.CleanerRepository
	locations ports.LocationCache
	logger    zerolog.Logger
}

// NewCleanerService builds the service. locations may be nil when no
// cache is configured; live lookups then fall back to the stored record.
func NewCleanerService(cleaners ports.CleanerRepository, locations ports.LocationCache, logger zerolog.Logger) *CleanerService {
	return &CleanerService{cleaners: cleaners, locations: locations, logger: logger}
}

func (s *CleanerService) List(ctx context.Context) ([]*domain.Cleaner, error) {
	return s.cleaners.List(ctx)
}

func (s *CleanerService) Profile(ctx context.Context, cleanerID string) (*domain.Cleaner, error) {
	return s.cleaners.FindByID(ctx, cleanerID)
}

// UpdateStatus persists the cleaner's availability and location, then
// publishes a short-lived live snapshot. A cache failure is logged and
// swallowed; the persisted update is the source of truth.
func (s *CleanerService) UpdateStatus(ctx context.Context, cleanerID string, status domain.CleanerStatus, location string) (*domain.Cleaner, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.cleaners.UpdateStatus(ctx, cleanerID, status, location)
	if err != nil {
		return nil, err
	}

	if s.locations != nil {
		snap := ports.LocationSnapshot{
			CleanerID:  updated.ID,
			Status:     string(updated.Status),
			Location:   updated.CurrentLocation,
			ReportedAt: time.Now().UTC(),
		}
		if err := s.locations.Publish(ctx, snap); err != nil {
			s.logger.Warn().Err(err).Str("cleaner_id", cleanerID).Msg("live location publish failed")
		}
	}

	return updated, nil
}

func (s *CleanerService) UpdateArea(ctx context.Context, cleanerID, area string) (*domain.Cleaner, error) {
	updated, err := s.cleaners.UpdateArea(ctx, cleanerID, area)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("cleaner_id", cleanerID).Str("assigned_area", area).Msg("cleaner area updated")
	return updated, nil
}

// LiveLocation returns the cached snapshot when one exists, otherwise the
// last persisted status and location.
func (s *CleanerService) LiveLocation(ctx context.Context, cleanerID string) (*ports.LiveLocation, error) {
	cleaner, err := s.cleaners.FindByID(ctx, cleanerID)
	if err != nil {
		return nil, err
	}

	if s.locations != nil {
		snap, err := s.locations.Lookup(ctx, cleanerID)
		if err != nil {
			s.logger.Warn().Err(err).Str("cleaner_id", cleanerID).Msg("live location lookup failed")
		} else if snap != nil {
			return &ports.LiveLocation{
				CleanerID:  snap.CleanerID,
				Status:     snap.Status,
				Location:   snap.Location,
				Live:       true,
				ReportedAt: &snap.ReportedAt,
			}, nil
		}
	}

	return &ports.LiveLocation{
		CleanerID: cleaner.ID,
		Status:    string(cleaner.Status),
		Location:  cleaner.CurrentLocation,
	}, nil
}

// Delete removes the cleaner. Unknown ids succeed silently.
func (s *CleanerService) Delete(ctx context.Context, cleanerID string) error {
	if err := s.cleaners.Delete(ctx, cleanerID); err != nil {
		return err
	}
	s.logger.Info().Str("cleaner_id", cleanerID).Msg("cleaner deleted")
	return nil
}
