package commission

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenWallet fails every credit
type brokenWallet struct{}

func (brokenWallet) Credit(context.Context, int, float64) error {
	return errors.New("ledger service unavailable")
}

// mockNotifier records payout notifications
type mockNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockNotifier) PayoutProcessed(toEmail, _ string, _ float64, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, toEmail)
	return nil
}

func setPayoutAddress(t *testing.T, client *ent.Client, userID int) {
	_, err := client.User.
		UpdateOneID(userID).
		SetPayoutAddress("dest-" + t.Name()).
		Save(context.Background())
	require.NoError(t, err)
}

func TestProcessPayouts_PaysPending(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	wallets := newMockWallet()
	notifier := &mockNotifier{}
	svc := NewService(client, wallets, notifier)
	ctx := context.Background()

	a, b, c := createChain(t, client)
	setPayoutAddress(t, client, a.ID)
	setPayoutAddress(t, client, b.ID)

	txn := createCompletedTransaction(t, client, c.ID, 100.00)
	_, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)

	result, err := svc.ProcessPayouts(ctx, 1.00, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Zero(t, result.Failed)
	assert.InDelta(t, 12.00, result.TotalAmount, 1e-9)
	assert.Empty(t, result.Errors)

	// Both commissions are paid and linked to payout transactions.
	paid, err := client.Commission.
		Query().
		Where(commission.StatusEQ(commission.StatusPaid)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, paid, 2)
	for _, cm := range paid {
		require.NotNil(t, cm.PaymentTransactionID)
		require.NotNil(t, cm.PaidAt)

		payoutTxn, err := client.Transaction.Get(ctx, *cm.PaymentTransactionID)
		require.NoError(t, err)
		assert.Equal(t, transaction.TypePayout, payoutTxn.Type)
		assert.Equal(t, transaction.StatusCompleted, payoutTxn.Status)
		assert.InDelta(t, cm.CommissionAmount, payoutTxn.Amount, 1e-9)
	}

	// Wallets credited exactly once each.
	assert.InDelta(t, 10.00, wallets.credits[b.ID], 1e-9)
	assert.InDelta(t, 2.00, wallets.credits[a.ID], 1e-9)

	// Both recipients were notified.
	assert.Len(t, notifier.calls, 2)
}

func TestProcessPayouts_MinAmountFilter(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	wallets := newMockWallet()
	svc := NewService(client, wallets, nil)
	ctx := context.Background()

	a, b, c := createChain(t, client)
	setPayoutAddress(t, client, a.ID)
	setPayoutAddress(t, client, b.ID)

	// 100.00 yields tier-1 10.00 and tier-2 2.00; a 5.00 floor only pays
	// the tier-1 commission.
	txn := createCompletedTransaction(t, client, c.ID, 100.00)
	_, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)

	result, err := svc.ProcessPayouts(ctx, 5.00, 100)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.InDelta(t, 10.00, result.TotalAmount, 1e-9)

	pending, err := client.Commission.
		Query().
		Where(commission.StatusEQ(commission.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
	assert.Zero(t, wallets.credits[a.ID])
}

func TestProcessPayouts_LimitOldestFirst(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	wallets := newMockWallet()
	svc := NewService(client, wallets, nil)
	ctx := context.Background()

	a, b, c := createChain(t, client)
	setPayoutAddress(t, client, a.ID)
	setPayoutAddress(t, client, b.ID)

	for i := 0; i < 3; i++ {
		txn := createCompletedTransaction(t, client, c.ID, 100.00)
		_, err := svc.ProcessTransaction(ctx, txn)
		require.NoError(t, err)
	}
	// 6 pending commissions total; a limit of 4 leaves 2 for the next run.
	result, err := svc.ProcessPayouts(ctx, 1.00, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Processed)

	pending, err := client.Commission.
		Query().
		Where(commission.StatusEQ(commission.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	result, err = svc.ProcessPayouts(ctx, 1.00, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
}

func TestProcessPayouts_FailureToleratedPerRecord(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	wallets := newMockWallet()
	svc := NewService(client, wallets, nil)
	ctx := context.Background()

	// B never configured a payout destination; A did. The batch must pay A
	// and mark B's commission failed without aborting.
	a, b, c := createChain(t, client)
	setPayoutAddress(t, client, a.ID)

	txn := createCompletedTransaction(t, client, c.ID, 100.00)
	_, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)

	result, err := svc.ProcessPayouts(ctx, 1.00, 100)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.InDelta(t, 2.00, result.TotalAmount, 1e-9)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no payout destination")

	failed, err := client.Commission.
		Query().
		Where(commission.RecipientUserIDEQ(b.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, commission.StatusFailed, failed.Status)
	require.NotNil(t, failed.FailureReason)
	assert.Equal(t, "no payout destination", *failed.FailureReason)
	assert.Zero(t, wallets.credits[b.ID])
}

func TestProcessPayouts_CreditFailureNeverMarksPaid(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	a, b, c := createChain(t, client)
	setPayoutAddress(t, client, a.ID)
	setPayoutAddress(t, client, b.ID)

	txn := createCompletedTransaction(t, client, c.ID, 100.00)
	_, err := NewService(client, newMockWallet(), nil).ProcessTransaction(ctx, txn)
	require.NoError(t, err)

	svc := NewService(client, brokenWallet{}, nil)
	result, err := svc.ProcessPayouts(ctx, 1.00, 100)
	require.NoError(t, err)

	assert.Zero(t, result.Processed)
	assert.Equal(t, 2, result.Failed)
	assert.Zero(t, result.TotalAmount)

	// Failed commissions carry a short reason and no payment evidence.
	failed, err := client.Commission.
		Query().
		Where(commission.StatusEQ(commission.StatusFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 2)
	for _, cm := range failed {
		require.NotNil(t, cm.FailureReason)
		assert.Equal(t, "failed to credit wallet", *cm.FailureReason)
		assert.Nil(t, cm.PaymentTransactionID)
		assert.Nil(t, cm.PaidAt)
	}

	// The created payout transactions were rolled to failed, not left
	// completed.
	completed, err := client.Transaction.
		Query().
		Where(
			transaction.TypeEQ(transaction.TypePayout),
			transaction.StatusEQ(transaction.StatusCompleted),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, completed)

	rolledBack, err := client.Transaction.
		Query().
		Where(
			transaction.TypeEQ(transaction.TypePayout),
			transaction.StatusEQ(transaction.StatusFailed),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rolledBack)
}

func TestProcessPayouts_EmptyBatch(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, newMockWallet(), nil)

	result, err := svc.ProcessPayouts(context.Background(), 1.00, 100)
	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	assert.Zero(t, result.Failed)
	assert.Zero(t, result.TotalAmount)
}

func TestCancel(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, newMockWallet(), nil)
	ctx := context.Background()

	_, b, c := createChain(t, client)
	txn := createCompletedTransaction(t, client, c.ID, 100.00)
	_, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)

	tier1, err := client.Commission.
		Query().
		Where(commission.RecipientUserIDEQ(b.ID)).
		Only(ctx)
	require.NoError(t, err)

	t.Run("Success - cancel pending", func(t *testing.T) {
		require.NoError(t, svc.Cancel(ctx, tier1.ID))

		got, err := client.Commission.Get(ctx, tier1.ID)
		require.NoError(t, err)
		assert.Equal(t, commission.StatusCancelled, got.Status)
	})

	t.Run("Failure - cancelled is terminal", func(t *testing.T) {
		err := svc.Cancel(ctx, tier1.ID)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Failure - unknown commission", func(t *testing.T) {
		err := svc.Cancel(ctx, 99999)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Cancelled commissions never pay out", func(t *testing.T) {
		result, err := svc.ProcessPayouts(ctx, 1.00, 100)
		require.NoError(t, err)
		// Only the tier-2 commission remains pending, and its recipient has
		// no payout address, so it fails rather than pays.
		assert.Zero(t, result.Processed)
		assert.Equal(t, 1, result.Failed)
	})
}
