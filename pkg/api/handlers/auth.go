package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/fanvault/backend/config"
	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/pkg/api/errors"
	"github.com/fanvault/backend/pkg/auth"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/email"
	"github.com/fanvault/backend/pkg/metrics"
	"github.com/fanvault/backend/pkg/models"
	"github.com/fanvault/backend/pkg/users"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	users   *users.Service
	email   *email.Service
	config  *config.Config
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(usersService *users.Service, emailService *email.Service, cfg *config.Config, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		users:   usersService,
		email:   emailService,
		config:  cfg,
		metrics: m,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account, optionally attributing the signup to a referral code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body users.RegisterInput true "Registration data"
// @Success 201 {object} models.RegisterResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Username or email taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req users.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	u, attribution, err := h.users.Register(ctx, req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordUserRegistered()
		if attribution != nil {
			h.metrics.RecordAttribution(attribution.Source)
		}
	}

	if h.email != nil && attribution != nil {
		// Best effort; the account exists either way.
		name := u.DisplayName
		if name == "" {
			name = u.Username
		}
		_ = h.email.SendWelcomeEmail(u.Email, name, attribution.Code)
	}

	token, err := auth.GenerateJWT(u.ID, u.Username, string(u.Role), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	resp := models.RegisterResponse{
		Token: token,
		User:  toUserResponse(u),
	}
	if attribution != nil {
		resp.ReferralCode = attribution.Code
		resp.ReferredBy = attribution.Tier1ReferrerID
	}

	return c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse "Logged in"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		if domain.IsUnauthorized(err) || domain.IsForbidden(err) {
			return errors.DomainError(c, err)
		}
		return errors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	token, err := auth.GenerateJWT(u.ID, u.Username, string(u.Role), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserResponse(u),
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	u, err := h.users.FindByID(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(u))
}

// SetPayoutAddress sets where the authenticated user's payouts go
func (h *AuthHandler) SetPayoutAddress(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req models.PayoutAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.users.SetPayoutAddress(c.Request().Context(), userID, req.PayoutAddress); err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func toUserResponse(u *ent.User) models.UserResponse {
	return models.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
