package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// ComplaintService owns the complaint state machine:
// pending → assigned → collected / not_collected.
//
// Transitions are unguarded by default, matching the permissive behaviour
// of the surrounding workflow; set Strict to gate them.
type ComplaintService struct {
	complaints ports.ComplaintRepository
	users      ports.UserRepository
	cleaners   ports.CleanerRepository
	strict     bool
	logger     zerolog.Logger
}

func NewComplaintService(complaints ports.ComplaintRepository, users ports.UserRepository, cleaners ports.CleanerRepository, strict bool, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		users:      users,
		cleaners:   cleaners,
		strict:     strict,
		logger:     logger,
	}
}

// Create files a new complaint for the resident. The resident's name,
// email, and area are copied onto the complaint and never re-synced.
func (s *ComplaintService) Create(ctx context.Context, userID, description string) (*domain.Complaint, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if description == "" {
		description = domain.DefaultDescription
	}

	complaint := &domain.Complaint{
		UserID:      user.ID,
		UserEmail:   user.Email,
		UserName:    user.Name,
		Area:        user.Area,
		Description: description,
		Status:      domain.ComplaintPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.complaints.Create(ctx, complaint)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create complaint")
		return nil, err
	}

	s.logger.Info().Str("complaint_id", created.ID).Str("area", created.Area).Msg("complaint filed")
	return created, nil
}

func (s *ComplaintService) ListForUser(ctx context.Context, userID string) ([]*domain.Complaint, error) {
	return s.complaints.FindByUser(ctx, userID)
}

// ListForCleaner returns complaints in the cleaner's assigned area plus
// any complaint explicitly assigned to them, even when the complaint's
// area no longer matches.
func (s *ComplaintService) ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Complaint, error) {
	cleaner, err := s.cleaners.FindByID(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	return s.complaints.FindByAreaOrAssignee(ctx, cleaner.AssignedArea, cleaner.ID)
}

func (s *ComplaintService) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	return s.complaints.FindAll(ctx)
}

// Assign binds the complaint to a cleaner, snapshotting the cleaner's
// name and phone. Re-assigning a non-pending complaint simply overwrites
// the previous assignment unless strict mode is on.
func (s *ComplaintService) Assign(ctx context.Context, input ports.AssignComplaintInput) (*domain.Complaint, error) {
	cleaner, err := s.cleaners.FindByID(ctx, input.CleanerID)
	if err != nil {
		return nil, err
	}

	if s.strict {
		current, err := s.complaints.FindByID(ctx, input.ComplaintID)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(domain.ComplaintAssigned) {
			return nil, domain.ErrInvalidTransition
		}
	}

	arrival := input.ExpectedArrival
	if arrival == "" {
		arrival = domain.DefaultArrival
	}

	updated, err := s.complaints.Assign(ctx, input.ComplaintID, ports.AssignmentUpdate{
		CleanerID:       cleaner.ID,
		CleanerName:     cleaner.Name,
		CleanerPhone:    cleaner.Phone,
		ExpectedArrival: arrival,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("complaint_id", updated.ID).
		Str("cleaner_id", cleaner.ID).
		Msg("complaint assigned")
	return updated, nil
}

// UpdateStatus moves the complaint to the given status. Reaching
// collected stamps the collection date; every other status clears it.
func (s *ComplaintService) UpdateStatus(ctx context.Context, complaintID string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	if s.strict {
		current, err := s.complaints.FindByID(ctx, complaintID)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, domain.ErrInvalidTransition
		}
	}

	var collectionDate *time.Time
	if status == domain.ComplaintCollected {
		now := time.Now().UTC()
		collectionDate = &now
	}

	updated, err := s.complaints.UpdateStatus(ctx, complaintID, status, collectionDate)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("complaint_id", updated.ID).Str("status", string(status)).Msg("complaint status updated")
	return updated, nil
}

// Analytics computes per-status counts fresh on every call.
func (s *ComplaintService) Analytics(ctx context.Context) (*domain.AnalyticsSummary, error) {
	counts, err := s.complaints.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.AnalyticsSummary{
		Pending:      counts[domain.ComplaintPending],
		Assigned:     counts[domain.ComplaintAssigned],
		Collected:    counts[domain.ComplaintCollected],
		NotCollected: counts[domain.ComplaintNotCollected],
	}
	summary.Total = summary.Pending + summary.Assigned + summary.Collected + summary.NotCollected
	return summary, nil
}
