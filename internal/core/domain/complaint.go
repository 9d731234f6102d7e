package domain

import (
	"errors"
	"time"
)

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintPending      ComplaintStatus = "pending"
	ComplaintAssigned     ComplaintStatus = "assigned"
	ComplaintCollected    ComplaintStatus = "collected"
	ComplaintNotCollected ComplaintStatus = "not_collected"
)

// DefaultDescription is used when a resident files a complaint without one.
const DefaultDescription = "Waste Not Collected"

// DefaultArrival is the expected-arrival text applied when an assignment
// omits one.
const DefaultArrival = "Within 2 hours"

// complaintTransitions are the transitions enforced in strict mode. The
// default (permissive) behaviour accepts any transition.
var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintPending:      {ComplaintAssigned},
	ComplaintAssigned:     {ComplaintCollected, ComplaintNotCollected},
	ComplaintCollected:    {ComplaintNotCollected},
	ComplaintNotCollected: {ComplaintCollected},
}

var ErrComplaintNotFound = errors.New("complaint not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// Valid reports whether s is one of the four known complaint statuses.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintAssigned, ComplaintCollected, ComplaintNotCollected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the strict-mode state machine allows a
// transition from s to next.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Complaint is the central aggregate: a resident-filed report of
// uncollected waste. UserName/UserEmail/Area are frozen copies of the
// resident's fields at filing time; CleanerName/CleanerPhone are frozen
// at assignment time. Snapshots are never re-synced with their source
// records.
type Complaint struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	UserEmail       string          `json:"user_email"`
	UserName        string          `json:"user_name"`
	Area            string          `json:"area"`
	Description     string          `json:"description"`
	Status          ComplaintStatus `json:"status"`
	AssignedCleaner string          `json:"assigned_cleaner,omitempty"`
	CleanerName     string          `json:"cleaner_name,omitempty"`
	CleanerPhone    string          `json:"cleaner_phone,omitempty"`
	ExpectedArrival string          `json:"expected_arrival,omitempty"`
	CollectionDate  *time.Time      `json:"collection_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AnalyticsSummary holds per-status complaint counts. Total always equals
// the sum of the four buckets.
type AnalyticsSummary struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Assigned     int64 `json:"assigned"`
	Collected    int64 `json:"collected"`
	NotCollected int64 `json:"notCollected"`
}
