package commission

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/enttest"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/transaction"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

var userCounter = 0

func createTestUser(t *testing.T, client *ent.Client) *ent.User {
	userCounter++
	u, err := client.User.
		Create().
		SetUsername(fmt.Sprintf("user%d", userCounter)).
		SetEmail(fmt.Sprintf("user%d@example.com", userCounter)).
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// createChain builds the A -> B -> C referral chain and returns the three
// users. C's transactions pay tier-1 commission to B and tier-2 to A.
func createChain(t *testing.T, client *ent.Client) (a, b, c *ent.User) {
	ctx := context.Background()
	a = createTestUser(t, client)
	b = createTestUser(t, client)
	c = createTestUser(t, client)

	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(a.ID).
		SetCode(fmt.Sprintf("AAAA%04d", a.ID)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ReferralAccount.
		Create().
		SetOwnerUserID(b.ID).
		SetCode(fmt.Sprintf("BBBB%04d", b.ID)).
		SetTier1ReferrerID(a.ID).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ReferralAccount.
		Create().
		SetOwnerUserID(c.ID).
		SetCode(fmt.Sprintf("CCCC%04d", c.ID)).
		SetTier1ReferrerID(b.ID).
		SetTier2ReferrerID(a.ID).
		Save(ctx)
	require.NoError(t, err)

	return a, b, c
}

func createCompletedTransaction(t *testing.T, client *ent.Client, recipientID int, amount float64) *ent.Transaction {
	txn, err := client.Transaction.
		Create().
		SetAmount(amount).
		SetType(transaction.TypeSubscription).
		SetStatus(transaction.StatusCompleted).
		SetRecipientUserID(recipientID).
		Save(context.Background())
	require.NoError(t, err)
	return txn
}

// mockWallet records credits
type mockWallet struct {
	mu      sync.Mutex
	credits map[int]float64
}

func newMockWallet() *mockWallet {
	return &mockWallet{credits: make(map[int]float64)}
}

func (m *mockWallet) Credit(_ context.Context, userID int, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credits[userID] += amount
	return nil
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.0, 10.0},
		{0.005, 0.01}, // half rounds up
		{3.333, 3.33},
		{0.6666, 0.67},
		{0.001, 0.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundCents(tt.in), 1e-9, "RoundCents(%v)", tt.in)
	}
}

func TestProcessTransaction_TwoTiers(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, newMockWallet(), nil)
	ctx := context.Background()

	a, b, c := createChain(t, client)
	txn := createCompletedTransaction(t, client, c.ID, 100.00)

	result, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)

	assert.True(t, result.Processed)
	assert.InDelta(t, 10.00, result.Tier1Amount, 1e-9)
	assert.InDelta(t, 2.00, result.Tier2Amount, 1e-9)

	// B holds the tier-1 commission, A the tier-2.
	tier1, err := client.Commission.
		Query().
		Where(commission.RecipientUserIDEQ(b.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, tier1.Tier)
	assert.InDelta(t, 0.10, tier1.CommissionRate, 1e-9)
	assert.InDelta(t, 10.00, tier1.CommissionAmount, 1e-9)
	assert.Equal(t, c.ID, tier1.EarningUserID)
	assert.Equal(t, commission.StatusPending, tier1.Status)

	tier2, err := client.Commission.
		Query().
		Where(commission.RecipientUserIDEQ(a.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, tier2.Tier)
	assert.InDelta(t, 2.00, tier2.CommissionAmount, 1e-9)

	// Lifetime counters rolled up on both referrer accounts.
	accB, err := client.ReferralAccount.
		Query().
		Where(referralaccount.OwnerUserIDEQ(b.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, accB.TotalCommissionEarned, 1e-9)
	assert.InDelta(t, 10.00, accB.Tier1CommissionEarned, 1e-9)

	accA, err := client.ReferralAccount.
		Query().
		Where(referralaccount.OwnerUserIDEQ(a.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2.00, accA.TotalCommissionEarned, 1e-9)
	assert.InDelta(t, 2.00, accA.Tier2CommissionEarned, 1e-9)
}

func TestProcessTransaction_Idempotent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, newMockWallet(), nil)
	ctx := context.Background()

	_, b, c := createChain(t, client)
	txn := createCompletedTransaction(t, client, c.ID, 50.00)

	first, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)
	assert.InDelta(t, 5.00, first.Tier1Amount, 1e-9)

	// Reprocessing creates nothing and credits nobody twice.
	second, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)
	assert.True(t, second.Processed)
	assert.Zero(t, second.Tier1Amount)
	assert.Zero(t, second.Tier2Amount)

	count, err := client.Commission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	accB, err := client.ReferralAccount.
		Query().
		Where(referralaccount.OwnerUserIDEQ(b.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 5.00, accB.TotalCommissionEarned, 1e-9)
}

func TestProcessTransaction_SingleTier(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, newMockWallet(), nil)
	ctx := context.Background()

	// A refers B; B has no tier-2 ancestor.
	a := createTestUser(t, client)
	b := createTestUser(t, client)

	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(a.ID).
		SetCode(fmt.Sprintf("AAAA%04d", a.ID)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ReferralAccount.
		Create().
		SetOwnerUserID(b.ID).
		SetCode(fmt.Sprintf("BBBB%04d", b.ID)).
		SetTier1ReferrerID(a.ID).
		Save(ctx)
	require.NoError(t, err)

	txn := createCompletedTransaction(t, client, b.ID, 33.33)

	result, err := svc.ProcessTransaction(ctx, txn)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.InDelta(t, 3.33, result.Tier1Amount, 1e-9)
	assert.Zero(t, result.Tier2Amount)

	count, err := client.Commission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProcessTransaction_Skipped(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, newMockWallet(), nil)
	ctx := context.Background()

	t.Run("Skip - transaction not completed", func(t *testing.T) {
		_, _, c := createChain(t, client)
		txn, err := client.Transaction.
			Create().
			SetAmount(10).
			SetType(transaction.TypeTip).
			SetRecipientUserID(c.ID).
			Save(ctx)
		require.NoError(t, err)

		result, err := svc.ProcessTransaction(ctx, txn)
		require.NoError(t, err)
		assert.False(t, result.Processed)
		assert.Equal(t, "transaction is not completed", result.Reason)
	})

	t.Run("Skip - no recipient", func(t *testing.T) {
		txn, err := client.Transaction.
			Create().
			SetAmount(10).
			SetType(transaction.TypeTip).
			SetStatus(transaction.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)

		result, err := svc.ProcessTransaction(ctx, txn)
		require.NoError(t, err)
		assert.False(t, result.Processed)
		assert.Equal(t, "transaction has no recipient", result.Reason)
	})

	t.Run("Skip - recipient has no referral account", func(t *testing.T) {
		loner := createTestUser(t, client)
		txn := createCompletedTransaction(t, client, loner.ID, 10)

		result, err := svc.ProcessTransaction(ctx, txn)
		require.NoError(t, err)
		assert.False(t, result.Processed)
		assert.Equal(t, "recipient has no referral account", result.Reason)
	})

	t.Run("Skip - recipient has no referrers", func(t *testing.T) {
		organic := createTestUser(t, client)
		_, err := client.ReferralAccount.
			Create().
			SetOwnerUserID(organic.ID).
			SetCode(fmt.Sprintf("ORGN%04d", organic.ID)).
			Save(ctx)
		require.NoError(t, err)
		txn := createCompletedTransaction(t, client, organic.ID, 10)

		result, err := svc.ProcessTransaction(ctx, txn)
		require.NoError(t, err)
		assert.False(t, result.Processed)
		assert.Equal(t, "recipient has no referrers", result.Reason)
	})
}
