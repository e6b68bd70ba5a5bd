package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/fanvault/backend/pkg/api/errors"
	"github.com/fanvault/backend/pkg/email"
	"github.com/fanvault/backend/pkg/export"
	"github.com/fanvault/backend/pkg/models"
	"github.com/fanvault/backend/pkg/users"
	"github.com/labstack/echo/v4"
)

// ExportHandler handles commission statement generation
type ExportHandler struct {
	exports *export.Service
	users   *users.Service
	email   *email.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exports *export.Service, usersService *users.Service, emailService *email.Service) *ExportHandler {
	return &ExportHandler{
		exports: exports,
		users:   usersService,
		email:   emailService,
	}
}

// GenerateStatement produces an XLSX statement of the authenticated user's
// commissions for one calendar month (?month=2026-08, default last month).
func (h *ExportHandler) GenerateStatement(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	from := time.Now().AddDate(0, -1, 0)
	from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	if monthStr := c.QueryParam("month"); monthStr != "" {
		t, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_request",
				Message: "month must look like 2006-01",
			})
		}
		from = t
	}
	to := from.AddDate(0, 1, 0)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	stmt, err := h.exports.GenerateStatement(ctx, userID, from, to)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.email != nil && h.users != nil {
		if u, err := h.users.FindByID(ctx, userID); err == nil {
			// Best effort; the statement file already exists.
			name := u.DisplayName
			if name == "" {
				name = u.Username
			}
			location := stmt.S3Key
			if location == "" {
				location = stmt.FilePath
			}
			_ = h.email.SendStatementEmail(u.Email, name, stmt.Period, location)
		}
	}

	return c.JSON(http.StatusOK, stmt)
}
