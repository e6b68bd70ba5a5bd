package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/enttest"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
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

type mockWallet struct {
	mu      sync.Mutex
	credits map[int]float64
}

func (m *mockWallet) Credit(_ context.Context, userID int, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.credits == nil {
		m.credits = make(map[int]float64)
	}
	m.credits[userID] += amount
	return nil
}

func newTestService(client *ent.Client) *Service {
	commissions := commission.NewService(client, &mockWallet{}, nil)
	return NewService(client, commissions, logger.New("error", "text"))
}

func TestRecord(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := newTestService(client)
	ctx := context.Background()

	sender := createTestUser(t, client)
	creator := createTestUser(t, client)

	txn, err := svc.Record(ctx, RecordInput{
		Amount:          4.99,
		Type:            "tip",
		SenderUserID:    &sender.ID,
		RecipientUserID: &creator.ID,
		Description:     "thanks for the stream",
	})
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusPending, txn.Status)
	assert.Equal(t, transaction.TypeTip, txn.Type)
	assert.Equal(t, "USD", txn.Currency)
	assert.InDelta(t, 4.99, txn.Amount, 1e-9)
	require.NotNil(t, txn.RecipientUserID)
	assert.Equal(t, creator.ID, *txn.RecipientUserID)
}

func TestComplete_DrivesCommissions(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := newTestService(client)
	ctx := context.Background()

	// referrer -> creator, so the creator's earnings pay a tier-1 commission.
	referrer := createTestUser(t, client)
	creator := createTestUser(t, client)

	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(referrer.ID).
		SetCode(fmt.Sprintf("REFA%04d", referrer.ID)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ReferralAccount.
		Create().
		SetOwnerUserID(creator.ID).
		SetCode(fmt.Sprintf("CREA%04d", creator.ID)).
		SetTier1ReferrerID(referrer.ID).
		Save(ctx)
	require.NoError(t, err)

	txn, err := svc.Record(ctx, RecordInput{
		Amount:          20.00,
		Type:            "subscription",
		RecipientUserID: &creator.ID,
	})
	require.NoError(t, err)

	completed, result, err := svc.Complete(ctx, txn.ID)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	require.NotNil(t, result)
	assert.True(t, result.Processed)
	assert.InDelta(t, 2.00, result.Tier1Amount, 1e-9)
	assert.Zero(t, result.Tier2Amount)

	count, err := client.Commission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestComplete_OnlyPending(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := newTestService(client)
	ctx := context.Background()

	creator := createTestUser(t, client)
	txn, err := svc.Record(ctx, RecordInput{
		Amount:          5.00,
		Type:            "tip",
		RecipientUserID: &creator.ID,
	})
	require.NoError(t, err)

	_, _, err = svc.Complete(ctx, txn.ID)
	require.NoError(t, err)

	// Completing twice is a state conflict.
	_, _, err = svc.Complete(ctx, txn.ID)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestComplete_NotFound(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := newTestService(client)

	_, _, err := svc.Complete(context.Background(), 99999)
	assert.True(t, domain.IsNotFound(err))
}

func TestListByRecipient(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := newTestService(client)
	ctx := context.Background()

	creator := createTestUser(t, client)
	other := createTestUser(t, client)

	for i := 0; i < 3; i++ {
		_, err := svc.Record(ctx, RecordInput{
			Amount:          float64(i + 1),
			Type:            "tip",
			RecipientUserID: &creator.ID,
		})
		require.NoError(t, err)
	}
	_, err := svc.Record(ctx, RecordInput{
		Amount:          9.99,
		Type:            "tip",
		RecipientUserID: &other.ID,
	})
	require.NoError(t, err)

	txns, err := svc.ListByRecipient(ctx, creator.ID, 10)
	require.NoError(t, err)
	assert.Len(t, txns, 3)

	limited, err := svc.ListByRecipient(ctx, creator.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
