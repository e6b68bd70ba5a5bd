package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fanvault/backend/config"
	"github.com/fanvault/backend/pkg/api/errors"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/metrics"
	"github.com/fanvault/backend/pkg/models"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles privileged payout and commission operations
type AdminHandler struct {
	commissions *commission.Service
	config      *config.Config
	metrics     *metrics.Metrics
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(commissions *commission.Service, cfg *config.Config, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{
		commissions: commissions,
		config:      cfg,
		metrics:     m,
	}
}

// RunPayouts triggers a payout batch outside the cron schedule. Thresholds
// default to the configured values and can be overridden per run.
func (h *AdminHandler) RunPayouts(c echo.Context) error {
	var req models.PayoutRunRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	minAmount := h.config.PayoutMinAmount
	if req.MinAmount != nil {
		minAmount = *req.MinAmount
	}
	limit := h.config.PayoutBatchLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	result, err := h.commissions.ProcessPayouts(ctx, minAmount, limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordPayouts(result.Processed, result.Failed, time.Since(start))
	}

	return c.JSON(http.StatusOK, result)
}

// CancelCommission cancels a pending commission
func (h *AdminHandler) CancelCommission(c echo.Context) error {
	commissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Commission id must be an integer",
		})
	}

	if err := h.commissions.Cancel(c.Request().Context(), commissionID); err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}
