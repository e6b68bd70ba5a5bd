package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/fanvault/backend/pkg/analytics"
	"github.com/fanvault/backend/pkg/api/errors"
	"github.com/fanvault/backend/pkg/models"
	"github.com/fanvault/backend/pkg/referral"
	"github.com/labstack/echo/v4"
)

// ReferralHandler handles referral code and summary endpoints
type ReferralHandler struct {
	referrals *referral.Service
	analytics *analytics.Service
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referrals *referral.Service, analyticsService *analytics.Service) *ReferralHandler {
	return &ReferralHandler{
		referrals: referrals,
		analytics: analyticsService,
	}
}

// GetMyCode returns the authenticated user's referral code and chain
func (h *ReferralHandler) GetMyCode(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	account, err := h.referrals.GetByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":              account.Code,
		"source":            account.Source,
		"tier1_referrer_id": account.Tier1ReferrerID,
		"tier2_referrer_id": account.Tier2ReferrerID,
		"is_active":         account.IsActive,
		"created_at":        account.CreatedAt.Format(time.RFC3339),
	})
}

// GetMySummary returns the authenticated user's referral earnings summary
func (h *ReferralHandler) GetMySummary(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	summary, err := h.analytics.GetUserSummary(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// ValidateCode reports whether a referral code can still attribute signups.
// Public: the registration form calls this before submitting.
func (h *ReferralHandler) ValidateCode(c echo.Context) error {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if code == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A referral code is required",
		})
	}

	valid, _, err := h.referrals.ValidateCode(c.Request().Context(), code)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.ValidateCodeResponse{
		Code:  code,
		Valid: valid,
	})
}
