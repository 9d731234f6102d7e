package domain

import (
	"errors"
	"time"
)

// RouteStatus represents the lifecycle state of a scheduled route.
type RouteStatus string

const (
	RouteScheduled  RouteStatus = "scheduled"
	RouteInProgress RouteStatus = "in_progress"
	RouteCompleted  RouteStatus = "completed"
)

// routeTransitions are enforced in strict mode only; the default
// behaviour lets a route move between any two statuses.
var routeTransitions = map[RouteStatus][]RouteStatus{
	RouteScheduled:  {RouteInProgress},
	RouteInProgress: {RouteCompleted},
}

var ErrRouteNotFound = errors.New("route not found")

// Valid reports whether s is one of the known route statuses.
func (s RouteStatus) Valid() bool {
	switch s {
	case RouteScheduled, RouteInProgress, RouteCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the strict-mode state machine allows a
// transition from s to next.
func (s RouteStatus) CanTransitionTo(next RouteStatus) bool {
	for _, allowed := range routeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Route binds a cleaner to an area and a time window. CleanerName is a
// snapshot taken when the route is created. Start/end times are free-text
// time-of-day strings and are not validated against each other.
type Route struct {
	ID          string      `json:"id"`
	CleanerID   string      `json:"cleaner_id"`
	CleanerName string      `json:"cleaner_name"`
	Area        string      `json:"area"`
	Date        time.Time   `json:"date"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	Description string      `json:"description"`
	Status      RouteStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
