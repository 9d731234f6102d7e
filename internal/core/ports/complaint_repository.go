package ports

import (
	"context"
	"time"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// AssignmentUpdate is the single-document patch applied when an
// administrator assigns a complaint to a cleaner. Name and phone are
// snapshots of the cleaner at assignment time.
type AssignmentUpdate struct {
	CleanerID       string
	CleanerName     string
	CleanerPhone    string
	ExpectedArrival string
}

// ComplaintRepository defines persistence operations for complaints.
// All list operations return newest-first by creation time.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error)
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Complaint, error)
	// FindByAreaOrAssignee returns the union of complaints filed in area and
	// complaints explicitly assigned to cleanerID, without duplicates.
	FindByAreaOrAssignee(ctx context.Context, area, cleanerID string) ([]*domain.Complaint, error)
	FindAll(ctx context.Context) ([]*domain.Complaint, error)
	// Assign overwrites the assignment fields and sets status to assigned.
	Assign(ctx context.Context, id string, update AssignmentUpdate) (*domain.Complaint, error)
	// UpdateStatus sets the status and collection date in one write;
	// collectionDate is nil for every status except collected.
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus, collectionDate *time.Time) (*domain.Complaint, error)
	CountByStatus(ctx context.Context) (map[domain.ComplaintStatus]int64, error)
}
