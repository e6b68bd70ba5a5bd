package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fanvault/backend/pkg/analytics"
	"github.com/fanvault/backend/pkg/api/errors"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles leaderboard and program-wide reporting
type AnalyticsHandler struct {
	analyticsService *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetLeaderboard returns the top referrers by lifetime commission
func (h *AnalyticsHandler) GetLeaderboard(c echo.Context) error {
	limit := 10
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	entries, err := h.analyticsService.GetLeaderboard(c.Request().Context(), limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"leaderboard": entries,
		"limit":       limit,
	})
}

// GetGlobalStats returns program-wide statistics for a time window.
// Defaults to the trailing 30 days.
func (h *AnalyticsHandler) GetGlobalStats(c echo.Context) error {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if fromStr := c.QueryParam("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return errors.ValidationError(c, err)
		}
		from = t
	}
	if toStr := c.QueryParam("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return errors.ValidationError(c, err)
		}
		to = t
	}
	if !from.Before(to) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "from must be before to",
		})
	}

	stats, err := h.analyticsService.GetGlobalStats(c.Request().Context(), from, to)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
