package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// AuthConfig carries the signing secret, token lifetime, and the single
// configured administrator credential pair.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// AuthService implements registration and login for residents, cleaners,
// and the configured administrator.
type AuthService struct {
	users    ports.UserRepository
	cleaners ports.CleanerRepository
	cfg      AuthConfig
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, cleaners ports.CleanerRepository, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, cleaners: cleaners, cfg: cfg, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.Credential, error) {
	email := normalizeEmail(input.Email)
	if input.Name == "" || email == "" || input.Password == "" || input.Area == "" || input.Phone == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Area:         input.Area,
		Phone:        input.Phone,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("area", created.Area).Msg("resident registered")

	return &ports.Credential{
		Token: token,
		Principal: ports.Principal{
			ID:    created.ID,
			Name:  created.Name,
			Email: created.Email,
			Role:  created.Role,
			Area:  created.Area,
			Phone: created.Phone,
		},
	}, nil
}

func (s *AuthService) RegisterCleaner(ctx context.Context, input ports.RegisterCleanerInput) (*ports.Credential, error) {
	email := normalizeEmail(input.Email)
	if input.Name == "" || email == "" || input.Password == "" || input.Phone == "" ||
		input.VehicleNumber == "" || input.AssignedArea == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.cleaners.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrCleanerExists
	} else if !errors.Is(err, domain.ErrCleanerNotFound) {
		return nil, err
	}
	if _, err := s.cleaners.FindByVehicleNumber(ctx, input.VehicleNumber); err == nil {
		return nil, domain.ErrVehicleExists
	} else if !errors.Is(err, domain.ErrCleanerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cleaner := &domain.Cleaner{
		Name:          input.Name,
		Email:         email,
		PasswordHash:  string(hash),
		Phone:         input.Phone,
		VehicleNumber: input.VehicleNumber,
		AssignedArea:  input.AssignedArea,
		Role:          domain.RoleCleaner,
		Status:        domain.CleanerIdle,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.cleaners.Create(ctx, cleaner)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("cleaner_id", created.ID).Str("assigned_area", created.AssignedArea).Msg("cleaner registered")

	return &ports.Credential{
		Token: token,
		Principal: ports.Principal{
			ID:            created.ID,
			Name:          created.Name,
			Email:         created.Email,
			Role:          created.Role,
			Area:          created.AssignedArea,
			Phone:         created.Phone,
			VehicleNumber: created.VehicleNumber,
		},
	}, nil
}

// Login authenticates against the cleaner table when role is "cleaner",
// the resident table otherwise. A missing record and a wrong password
// both return ErrInvalidCredentials so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (*ports.Credential, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if role == domain.RoleCleaner {
		return s.loginCleaner(ctx, email, password)
	}
	return s.loginUser(ctx, email, password)
}

func (s *AuthService) loginUser(ctx context.Context, email, password string) (*ports.Credential, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &ports.Credential{
		Token: token,
		Principal: ports.Principal{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
			Area:  user.Area,
			Phone: user.Phone,
		},
	}, nil
}

func (s *AuthService) loginCleaner(ctx context.Context, email, password string) (*ports.Credential, error) {
	cleaner, err := s.cleaners.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCleanerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cleaner.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(cleaner.ID, cleaner.Role)
	if err != nil {
		return nil, err
	}

	return &ports.Credential{
		Token: token,
		Principal: ports.Principal{
			ID:            cleaner.ID,
			Name:          cleaner.Name,
			Email:         cleaner.Email,
			Role:          cleaner.Role,
			Area:          cleaner.AssignedArea,
			Phone:         cleaner.Phone,
			VehicleNumber: cleaner.VehicleNumber,
		},
	}, nil
}

// AdminLogin checks the configured credential pair. The administrator is
// never a stored record; a match mints a token with the synthetic id.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*ports.Credential, error) {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(normalizeEmail(email)), []byte(normalizeEmail(s.cfg.AdminEmail))) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(domain.AdminID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &ports.Credential{
		Token: token,
		Principal: ports.Principal{
			ID:    domain.AdminID,
			Name:  "Admin",
			Email: normalizeEmail(s.cfg.AdminEmail),
			Role:  domain.RoleAdmin,
		},
	}, nil
}

func (s *AuthService) generateToken(id, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
