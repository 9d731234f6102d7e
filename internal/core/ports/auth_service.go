package ports

import (
	"context"
)

// Principal is the identity payload returned alongside a token. It covers
// all three principal kinds; fields that do not apply stay empty.
type Principal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Area          string `json:"area,omitempty"`
	Phone         string `json:"phone,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// Credential is a signed bearer token plus the identity it represents.
type Credential struct {
	Token     string
	Principal Principal
}

// RegisterInput carries resident signup fields. All are required.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Area     string
	Phone    string
}

// RegisterCleanerInput carries cleaner signup fields. All are required;
// email and vehicle number are unique among cleaners.
type RegisterCleanerInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	VehicleNumber string
	AssignedArea  string
}

// AuthService issues and backs bearer credentials for the three roles.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*Credential, error)
	RegisterCleaner(ctx context.Context, input RegisterCleanerInput) (*Credential, error)
	// Login authenticates against the cleaner table when role is "cleaner",
	// the resident table otherwise. Absent record and bad password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password, role string) (*Credential, error)
	// AdminLogin compares against the configured admin pair and mints a
	// token with the synthetic admin id.
	AdminLogin(ctx context.Context, email, password string) (*Credential, error)
}
