package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleancity/waste-collection-api/internal/api/metrics"
	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Area     string `json:"area"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
}

type registerCleanerRequest struct {
	Name          string `json:"name"           validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=6"`
	Phone         string `json:"phone"          validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	AssignedArea  string `json:"assigned_area"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role selects the table looked up: "cleaner" or anything else
	// (including empty) for residents.
	Role string `json:"role"`
}

type adminLoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a resident account and returns a signed token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cred, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Area:     req.Area,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newAuthEnvelope(cred))
}

// RegisterCleaner creates a cleaner account and returns a signed token.
func (h *AuthHandler) RegisterCleaner(c echo.Context) error {
	var req registerCleanerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cred, err := h.authService.RegisterCleaner(c.Request().Context(), ports.RegisterCleanerInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Phone:         req.Phone,
		VehicleNumber: req.VehicleNumber,
		AssignedArea:  req.AssignedArea,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newAuthEnvelope(cred))
}

// Login authenticates a resident or, when role is "cleaner", a cleaner.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role := req.Role
	if role != domain.RoleCleaner {
		role = domain.RoleUser
	}

	cred, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()
	return c.JSON(http.StatusOK, newAuthEnvelope(cred))
}

// AdminLogin checks the configured administrator credential pair.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cred, err := h.authService.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "success").Inc()
	return c.JSON(http.StatusOK, newAuthEnvelope(cred))
}
