package wallet

import (
	"context"
	"testing"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/enttest"
	"github.com/fanvault/backend/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestUser(t *testing.T, client *ent.Client, username string) *ent.User {
	u, err := client.User.
		Create().
		SetUsername(username).
		SetEmail(username + "@example.com").
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestCredit_CreatesWalletLazily(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()
	u := createTestUser(t, client, "lazyuser")

	// No wallet exists until the first credit.
	_, err := svc.Get(ctx, u.ID)
	assert.True(t, domain.IsNotFound(err))

	require.NoError(t, svc.Credit(ctx, u.ID, 12.50))

	w, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.50, w.Balance, 1e-9)
	assert.Equal(t, "USD", w.Currency)
}

func TestCredit_Accumulates(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()
	u := createTestUser(t, client, "earner")

	require.NoError(t, svc.Credit(ctx, u.ID, 10.00))
	require.NoError(t, svc.Credit(ctx, u.ID, 2.00))
	require.NoError(t, svc.Credit(ctx, u.ID, 0.33))

	w, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.33, w.Balance, 1e-9)

	// Still a single wallet row.
	count, err := client.Wallet.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGet_NotFound(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)

	_, err := svc.Get(context.Background(), 99999)
	assert.True(t, domain.IsNotFound(err))
}
