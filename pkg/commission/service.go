package commission

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/transaction"
)

// Commission rates are fixed platform-wide.
const (
	// Tier1Rate is paid to the earning user's direct referrer.
	Tier1Rate = 0.10
	// Tier2Rate is paid to that referrer's own referrer.
	Tier2Rate = 0.02
)

// Service computes commissions from completed transactions and runs payout
// batches over the pending set.
type Service struct {
	db       *ent.Client
	wallets  WalletCreditor
	notifier PayoutNotifier
}

// WalletCreditor credits a user's balance once per successful payout
type WalletCreditor interface {
	Credit(ctx context.Context, userID int, amount float64) error
}

// PayoutNotifier is told about processed payouts. Notification failures are
// logged by the caller and never fail the payout.
type PayoutNotifier interface {
	PayoutProcessed(toEmail, toName string, amount float64, currency, reference string) error
}

// NewService creates a new commission service. notifier may be nil.
func NewService(db *ent.Client, wallets WalletCreditor, notifier PayoutNotifier) *Service {
	return &Service{db: db, wallets: wallets, notifier: notifier}
}

// Result reports what ProcessTransaction did for one transaction. A tier
// amount of 0 means that tier was skipped (no referrer at that tier, or the
// commission already existed).
type Result struct {
	Processed   bool    `json:"processed"`
	Reason      string  `json:"reason,omitempty"`
	Tier1Amount float64 `json:"tier1_amount"`
	Tier2Amount float64 `json:"tier2_amount"`
}

// RoundCents rounds a monetary amount half-up to two decimal places
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProcessTransaction creates the tier-1/tier-2 commissions owed for a
// completed transaction. The unique (source_transaction, tier) index makes
// this idempotent: reprocessing the same transaction creates nothing and
// credits nobody twice.
func (s *Service) ProcessTransaction(ctx context.Context, txn *ent.Transaction) (*Result, error) {
	if txn.Status != transaction.StatusCompleted {
		return &Result{Processed: false, Reason: "transaction is not completed"}, nil
	}
	if txn.RecipientUserID == nil {
		return &Result{Processed: false, Reason: "transaction has no recipient"}, nil
	}

	account, err := s.db.ReferralAccount.
		Query().
		Where(referralaccount.OwnerUserIDEQ(*txn.RecipientUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &Result{Processed: false, Reason: "recipient has no referral account"}, nil
		}
		return nil, fmt.Errorf("failed to load recipient referral account: %w", err)
	}

	if account.Tier1ReferrerID == nil && account.Tier2ReferrerID == nil {
		return &Result{Processed: false, Reason: "recipient has no referrers"}, nil
	}

	result := &Result{Processed: true}

	if account.Tier1ReferrerID != nil {
		amount, err := s.createCommission(ctx, txn, *account.Tier1ReferrerID, 1, Tier1Rate)
		if err != nil {
			return nil, err
		}
		result.Tier1Amount = amount
	}

	if account.Tier2ReferrerID != nil {
		amount, err := s.createCommission(ctx, txn, *account.Tier2ReferrerID, 2, Tier2Rate)
		if err != nil {
			return nil, err
		}
		result.Tier2Amount = amount
	}

	return result, nil
}

// createCommission inserts one commission row and rolls the amount into the
// referrer's lifetime counters. Returns 0 when the (transaction, tier) pair
// was already processed.
func (s *Service) createCommission(ctx context.Context, txn *ent.Transaction, recipientID, tier int, rate float64) (float64, error) {
	amount := RoundCents(txn.Amount * rate)

	_, err := s.db.Commission.
		Create().
		SetRecipientUserID(recipientID).
		SetEarningUserID(*txn.RecipientUserID).
		SetSourceTransactionID(txn.ID).
		SetTier(tier).
		SetCommissionRate(rate).
		SetBaseAmount(txn.Amount).
		SetCommissionAmount(amount).
		SetCurrency(txn.Currency).
		Save(ctx)
	if err != nil {
		// Already created by an earlier run; the referrer was credited then.
		if ent.IsConstraintError(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to create tier %d commission: %w", tier, err)
	}

	update := s.db.ReferralAccount.
		Update().
		Where(referralaccount.OwnerUserIDEQ(recipientID)).
		AddTotalCommissionEarned(amount).
		SetLastActivityAt(time.Now())
	if tier == 1 {
		update.AddTier1CommissionEarned(amount)
	} else {
		update.AddTier2CommissionEarned(amount)
	}

	if _, err := update.Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to update referrer stats: %w", err)
	}

	return amount, nil
}
