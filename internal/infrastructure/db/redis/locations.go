package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

const locationTTL = 15 * time.Minute

// LocationTracker stores short-lived cleaner location snapshots in Redis.
// Key format: cleaner_location:<cleaner_id>; entries expire after
// locationTTL so stale positions drop out on their own.
type LocationTracker struct {
	client *redis.Client
}

// NewLocationTracker creates a LocationTracker wrapping the given client.
func NewLocationTracker(client *redis.Client) *LocationTracker {
	return &LocationTracker{client: client}
}

// Publish records the cleaner's latest self-reported position.
func (t *LocationTracker) Publish(ctx context.Context, snap ports.LocationSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal location: %w", err)
	}
	return t.client.Set(ctx, t.key(snap.CleanerID), payload, locationTTL).Err()
}

// Lookup returns the live snapshot for a cleaner, or nil when none exists
// (either never published or expired).
func (t *LocationTracker) Lookup(ctx context.Context, cleanerID string) (*ports.LocationSnapshot, error) {
	payload, err := t.client.Get(ctx, t.key(cleanerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup location: %w", err)
	}

	var snap ports.LocationSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal location: %w", err)
	}
	return &snap, nil
}

func (t *LocationTracker) key(cleanerID string) string {
	return "cleaner_location:" + cleanerID
}
