package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
)

// Service records monetizable transactions and drives commission processing
// when they complete.
type Service struct {
	db          *ent.Client
	commissions *commission.Service
	log         logger.Logger
}

// NewService creates a new ledger service
func NewService(db *ent.Client, commissions *commission.Service, log logger.Logger) *Service {
	return &Service{db: db, commissions: commissions, log: log}
}

// RecordInput describes a new ledger entry
type RecordInput struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency"`
	Type            string  `json:"type" validate:"required,oneof=subscription tip message post"`
	SenderUserID    *int    `json:"sender_user_id"`
	RecipientUserID *int    `json:"recipient_user_id"`
	Description     string  `json:"description"`
}

// Record creates a pending transaction
func (s *Service) Record(ctx context.Context, input RecordInput) (*ent.Transaction, error) {
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	create := s.db.Transaction.
		Create().
		SetAmount(input.Amount).
		SetCurrency(currency).
		SetType(transaction.Type(input.Type)).
		SetDescription(input.Description)
	if input.SenderUserID != nil {
		create.SetSenderUserID(*input.SenderUserID)
	}
	if input.RecipientUserID != nil {
		create.SetRecipientUserID(*input.RecipientUserID)
	}

	txn, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return txn, nil
}

// Complete marks a pending transaction completed and runs commission
// processing for it. A commission failure is logged and swallowed: the
// transaction itself has already settled and must stay completed.
func (s *Service) Complete(ctx context.Context, txnID int) (*ent.Transaction, *commission.Result, error) {
	txn, err := s.db.Transaction.Get(ctx, txnID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, domain.NewNotFoundError("transaction")
		}
		return nil, nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if txn.Status != transaction.StatusPending {
		return nil, nil, domain.NewConflictError(fmt.Sprintf("transaction is %s, only pending transactions can complete", txn.Status))
	}

	txn, err = s.db.Transaction.
		UpdateOne(txn).
		SetStatus(transaction.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete transaction: %w", err)
	}

	result, err := s.commissions.ProcessTransaction(ctx, txn)
	if err != nil {
		s.log.Error("commission processing failed",
			"transaction_id", txn.ID,
			"error", err)
		return txn, nil, nil
	}

	return txn, result, nil
}

// Get returns one transaction
func (s *Service) Get(ctx context.Context, txnID int) (*ent.Transaction, error) {
	txn, err := s.db.Transaction.Get(ctx, txnID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("transaction")
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return txn, nil
}

// ListByRecipient returns a user's transactions, newest first
func (s *Service) ListByRecipient(ctx context.Context, userID, limit int) ([]*ent.Transaction, error) {
	txns, err := s.db.Transaction.
		Query().
		Where(transaction.RecipientUserIDEQ(userID)).
		Order(ent.Desc(transaction.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return txns, nil
}
