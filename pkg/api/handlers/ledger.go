package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fanvault/backend/pkg/api/errors"
	"github.com/fanvault/backend/pkg/ledger"
	"github.com/fanvault/backend/pkg/metrics"
	"github.com/fanvault/backend/pkg/models"
	"github.com/fanvault/backend/pkg/wallet"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// LedgerHandler handles transaction recording and wallet endpoints
type LedgerHandler struct {
	ledger    *ledger.Service
	wallets   *wallet.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *ledger.Service, wallets *wallet.Service, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{
		ledger:    ledgerService,
		wallets:   wallets,
		metrics:   m,
		validator: validator.New(),
	}
}

// RecordTransaction creates a pending transaction. The sender defaults to the
// authenticated user.
func (h *LedgerHandler) RecordTransaction(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req models.RecordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	sender := userID
	if req.SenderUserID != nil {
		sender = *req.SenderUserID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	txn, err := h.ledger.Record(ctx, ledger.RecordInput{
		Amount:          req.Amount,
		Currency:        req.Currency,
		Type:            req.Type,
		SenderUserID:    &sender,
		RecipientUserID: req.RecipientUserID,
		Description:     req.Description,
	})
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusCreated, txn)
}

// CompleteTransaction settles a pending transaction and reports the
// commissions created for it
func (h *LedgerHandler) CompleteTransaction(c echo.Context) error {
	txnID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Transaction id must be an integer",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	txn, result, err := h.ledger.Complete(ctx, txnID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil && result != nil {
		if result.Tier1Amount > 0 {
			h.metrics.RecordCommission(1, result.Tier1Amount)
		}
		if result.Tier2Amount > 0 {
			h.metrics.RecordCommission(2, result.Tier2Amount)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transaction": txn,
		"commissions": result,
	})
}

// ListMyTransactions returns the authenticated user's received transactions
func (h *LedgerHandler) ListMyTransactions(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	limit := 50
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 200 {
			limit = l
		}
	}

	txns, err := h.ledger.ListByRecipient(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": txns,
		"limit":        limit,
	})
}

// GetMyWallet returns the authenticated user's balance
func (h *LedgerHandler) GetMyWallet(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	w, err := h.wallets.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, w)
}
