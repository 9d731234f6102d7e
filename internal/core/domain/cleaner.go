package domain

import (
	"errors"
	"time"
)

// CleanerStatus is the cleaner's self-reported availability state.
type CleanerStatus string

const (
	CleanerIdle      CleanerStatus = "idle"
	CleanerOnTheWay  CleanerStatus = "on_the_way"
	CleanerArrived   CleanerStatus = "arrived"
	CleanerCompleted CleanerStatus = "completed"
)

var ErrCleanerExists = errors.New("cleaner already exists")
var ErrVehicleExists = errors.New("vehicle number already registered")
var ErrCleanerNotFound = errors.New("cleaner not found")

// Valid reports whether s is one of the known cleaner statuses.
func (s CleanerStatus) Valid() bool {
	switch s {
	case CleanerIdle, CleanerOnTheWay, CleanerArrived, CleanerCompleted:
		return true
	}
	return false
}

// Cleaner models a waste-collection worker. AssignedArea scopes which
// pending complaints the cleaner can see; CurrentLocation is free text
// reported by the cleaner alongside status updates.
type Cleaner struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	PasswordHash    string        `json:"-"`
	Phone           string        `json:"phone"`
	VehicleNumber   string        `json:"vehicle_number"`
	AssignedArea    string        `json:"assigned_area"`
	Role            string        `json:"role"`
	Status          CleanerStatus `json:"status"`
	CurrentLocation string        `json:"current_location"`
	CreatedAt       time.Time     `json:"created_at"`
}
