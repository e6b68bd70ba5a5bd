package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/pkg/domain"
)

// BatchResult summarizes one payout batch run
type BatchResult struct {
	Processed   int      `json:"processed"`
	Failed      int      `json:"failed"`
	TotalAmount float64  `json:"total_amount"`
	Errors      []string `json:"errors,omitempty"`
}

// ProcessPayouts pays out pending commissions of at least minAmount,
// oldest-first, capped at limit. A failing record is marked failed with a
// reason and the batch moves on.
//
// There is no leasing or row locking here: two overlapping invocations can
// double-process the same commission. The payout cron is the only expected
// caller; keep it that way until a lease is added.
func (s *Service) ProcessPayouts(ctx context.Context, minAmount float64, limit int) (*BatchResult, error) {
	pending, err := s.db.Commission.
		Query().
		Where(
			commission.StatusEQ(commission.StatusPending),
			commission.CommissionAmountGTE(minAmount),
		).
		Order(ent.Asc(commission.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending commissions: %w", err)
	}

	result := &BatchResult{}

	for _, c := range pending {
		if err := s.payOut(ctx, c); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("commission %d: %v", c.ID, err))

			if markErr := s.markFailed(ctx, c, failureReason(err)); markErr != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("commission %d: failed to record failure: %v", c.ID, markErr))
			}
			continue
		}

		result.Processed++
		result.TotalAmount += c.CommissionAmount
	}

	return result, nil
}

// payOut converts one pending commission into a completed payout transaction,
// marks the commission paid and credits the recipient's wallet.
func (s *Service) payOut(ctx context.Context, c *ent.Commission) error {
	recipient, err := s.db.User.Get(ctx, c.RecipientUserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewPayoutError("recipient not found", nil)
		}
		return fmt.Errorf("failed to load recipient: %w", err)
	}

	if recipient.PayoutAddress == nil || *recipient.PayoutAddress == "" {
		return domain.NewPayoutError("no payout destination", nil)
	}

	now := time.Now()
	reference := fmt.Sprintf("payout-%d-%d", c.ID, now.UnixNano())

	payoutTxn, err := s.db.Transaction.
		Create().
		SetAmount(c.CommissionAmount).
		SetCurrency(c.Currency).
		SetType(transaction.TypePayout).
		SetStatus(transaction.StatusCompleted).
		SetRecipientUserID(c.RecipientUserID).
		SetReference(reference).
		SetDescription(fmt.Sprintf("Referral commission payout (tier %d)", c.Tier)).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create payout transaction: %w", err)
	}

	// Paid is terminal, so the wallet credit happens first; the commission
	// only becomes paid once the money actually moved.
	if err := s.wallets.Credit(ctx, c.RecipientUserID, c.CommissionAmount); err != nil {
		if _, undoErr := s.db.Transaction.
			UpdateOne(payoutTxn).
			SetStatus(transaction.StatusFailed).
			Save(ctx); undoErr != nil {
			return domain.NewPayoutError("failed to credit wallet",
				fmt.Errorf("%v (payout transaction %d left completed: %v)", err, payoutTxn.ID, undoErr))
		}
		return domain.NewPayoutError("failed to credit wallet", err)
	}

	_, err = s.db.Commission.
		UpdateOne(c).
		SetStatus(commission.StatusPaid).
		SetPaymentTransactionID(payoutTxn.ID).
		SetPaidAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark commission paid: %w", err)
	}

	if s.notifier != nil {
		// Best effort; the payout already happened.
		name := recipient.DisplayName
		if name == "" {
			name = recipient.Username
		}
		_ = s.notifier.PayoutProcessed(recipient.Email, name, c.CommissionAmount, c.Currency, reference)
	}

	return nil
}

// markFailed records a terminal failure on a commission. The paid fields are
// cleared so a failed record never carries payment evidence.
func (s *Service) markFailed(ctx context.Context, c *ent.Commission, reason string) error {
	_, err := s.db.Commission.
		UpdateOne(c).
		SetStatus(commission.StatusFailed).
		SetFailureReason(reason).
		ClearPaymentTransactionID().
		ClearPaidAt().
		Save(ctx)
	return err
}

// failureReason keeps the stored failure_reason short and stable; the full
// error chain stays in the batch errors.
func failureReason(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "payout failed"
}

// Cancel administratively cancels a pending commission. Paid, failed and
// cancelled are terminal; transitions out of them are rejected.
func (s *Service) Cancel(ctx context.Context, commissionID int) error {
	c, err := s.db.Commission.Get(ctx, commissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("commission")
		}
		return fmt.Errorf("failed to load commission: %w", err)
	}

	if c.Status != commission.StatusPending {
		return domain.NewConflictError(fmt.Sprintf("commission is %s, only pending commissions can be cancelled", c.Status))
	}

	_, err = s.db.Commission.
		UpdateOne(c).
		SetStatus(commission.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel commission: %w", err)
	}

	return nil
}
