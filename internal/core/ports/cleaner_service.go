package ports

import (
	"context"
	"time"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

// LocationSnapshot is a cleaner's most recent self-reported position.
type LocationSnapshot struct {
	CleanerID  string    `json:"cleaner_id"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	ReportedAt time.Time `json:"reported_at"`
}

// LocationCache stores short-lived live-location snapshots keyed by
// cleaner id.
type LocationCache interface {
	Publish(ctx context.Context, snap LocationSnapshot) error
	// Lookup returns nil without error when no live snapshot exists.
	Lookup(ctx context.Context, cleanerID string) (*LocationSnapshot, error)
}

// LiveLocation is the admin-facing view of a cleaner's position. Live is
// false when the value fell back to the persisted record.
type LiveLocation struct {
	CleanerID  string     `json:"cleaner_id"`
	Status     string     `json:"status"`
	Location   string     `json:"location"`
	Live       bool       `json:"live"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

// CleanerService covers cleaner self-service and admin management.
type CleanerService interface {
	List(ctx context.Context) ([]*domain.Cleaner, error)
	Profile(ctx context.Context, cleanerID string) (*domain.Cleaner, error)
	UpdateStatus(ctx context.Context, cleanerID string, status domain.CleanerStatus, location string) (*domain.Cleaner, error)
	UpdateArea(ctx context.Context, cleanerID, area string) (*domain.Cleaner, error)
	LiveLocation(ctx context.Context, cleanerID string) (*LiveLocation, error)
	Delete(ctx context.Context, cleanerID string) error
}
