package domain

import (
	"errors"
	"time"
)

const (
	RoleUser    = "user"
	RoleCleaner = "cleaner"
	RoleAdmin   = "admin"
)

// AdminID is the synthetic principal id embedded in admin tokens. The
// administrator is a configured credential pair, never a stored record.
const AdminID = "admin"

var ErrMissingFields = errors.New("please provide all fields")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// User models a registered resident. Area is snapshotted onto every
// complaint the resident files.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Area         string    `json:"area"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
