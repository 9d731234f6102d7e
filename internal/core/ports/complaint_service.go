package ports

import (
	"context"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// AssignComplaintInput carries the administrator's assignment request.
// ExpectedArrival defaults to domain.DefaultArrival when empty.
type AssignComplaintInput struct {
	ComplaintID     string
	CleanerID       string
	ExpectedArrival string
}

// ComplaintService owns the complaint state machine.
type ComplaintService interface {
	// Create files a new complaint for the resident, snapshotting the
	// resident's name, email, and area. Always starts pending.
	Create(ctx context.Context, userID, description string) (*domain.Complaint, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Complaint, error)
	// ListForCleaner returns the union of complaints in the cleaner's
	// assigned area and complaints explicitly assigned to them.
	ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Complaint, error)
	ListAll(ctx context.Context) ([]*domain.Complaint, error)
	Assign(ctx context.Context, input AssignComplaintInput) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, complaintID string, status domain.ComplaintStatus) (*domain.Complaint, error)
	// Analytics computes fresh per-status counts on every call.
	Analytics(ctx context.Context) (*domain.AnalyticsSummary, error)
}
