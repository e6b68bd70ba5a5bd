package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/enttest"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/pkg/cache"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	return cache.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
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

// createEarningAccount creates a referral account with preset lifetime counters
func createEarningAccount(t *testing.T, client *ent.Client, userID int, referrals int, earned float64) *ent.ReferralAccount {
	acc, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(userID).
		SetCode(fmt.Sprintf("RANK%04d", userID)).
		SetTotalReferrals(referrals).
		SetActiveReferrals(referrals).
		SetTotalCommissionEarned(earned).
		SetTier1CommissionEarned(earned).
		Save(context.Background())
	require.NoError(t, err)
	return acc
}

func createCommissionRow(t *testing.T, client *ent.Client, recipientID, earnerID, txnID, tier int, amount float64, paid bool) {
	create := client.Commission.
		Create().
		SetRecipientUserID(recipientID).
		SetEarningUserID(earnerID).
		SetSourceTransactionID(txnID).
		SetTier(tier).
		SetCommissionRate(0.10).
		SetBaseAmount(amount * 10).
		SetCommissionAmount(amount)
	if paid {
		create.SetStatus(commission.StatusPaid).SetPaidAt(time.Now())
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func createTxn(t *testing.T, client *ent.Client, recipientID int, txnType transaction.Type) *ent.Transaction {
	txn, err := client.Transaction.
		Create().
		SetAmount(100).
		SetType(txnType).
		SetStatus(transaction.StatusCompleted).
		SetRecipientUserID(recipientID).
		Save(context.Background())
	require.NoError(t, err)
	return txn
}

func TestGetUserSummary(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil, time.Minute, nil, logger.New("error", "text"))
	ctx := context.Background()

	referrer := createTestUser(t, client)
	earner := createTestUser(t, client)
	createEarningAccount(t, client, referrer.ID, 3, 15.00)

	txn1 := createTxn(t, client, earner.ID, transaction.TypeSubscription)
	txn2 := createTxn(t, client, earner.ID, transaction.TypeTip)
	txn3 := createTxn(t, client, earner.ID, transaction.TypeTip)
	createCommissionRow(t, client, referrer.ID, earner.ID, txn1.ID, 1, 10.00, true)
	createCommissionRow(t, client, referrer.ID, earner.ID, txn2.ID, 1, 3.00, false)
	createCommissionRow(t, client, referrer.ID, earner.ID, txn3.ID, 1, 2.00, false)

	summary, err := svc.GetUserSummary(ctx, referrer.ID)
	require.NoError(t, err)

	assert.Equal(t, referrer.ID, summary.UserID)
	assert.Equal(t, 3, summary.TotalReferrals)
	assert.InDelta(t, 15.00, summary.TotalCommissionEarned, 1e-9)
	assert.InDelta(t, 5.00, summary.PendingAmount, 1e-9)
	assert.Equal(t, 2, summary.PendingCount)
	assert.InDelta(t, 10.00, summary.PaidAmount, 1e-9)
	assert.Equal(t, 1, summary.PaidCount)
}

func TestGetUserSummary_NoAccount(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil, time.Minute, nil, logger.New("error", "text"))

	_, err := svc.GetUserSummary(context.Background(), 99999)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetLeaderboard_Ordering(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil, time.Minute, nil, logger.New("error", "text"))
	ctx := context.Background()

	low := createTestUser(t, client)
	high := createTestUser(t, client)
	tiedFewer := createTestUser(t, client)
	noEarnings := createTestUser(t, client)
	idle := createTestUser(t, client)

	createEarningAccount(t, client, low.ID, 1, 5.00)
	createEarningAccount(t, client, high.ID, 10, 50.00)
	// Same earnings as low but fewer referrals, so it ranks below.
	createEarningAccount(t, client, tiedFewer.ID, 0, 5.00)
	// Referrals but no commissions yet still ranks, at the bottom.
	createEarningAccount(t, client, noEarnings.ID, 2, 0)
	// No referrals and no commissions stays off the board.
	createEarningAccount(t, client, idle.ID, 0, 0)

	board, err := svc.GetLeaderboard(ctx, 10)
	require.NoError(t, err)

	require.Len(t, board, 4)
	assert.Equal(t, high.ID, board[0].UserID)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, low.ID, board[1].UserID)
	assert.Equal(t, tiedFewer.ID, board[2].UserID)
	assert.Equal(t, 3, board[2].Rank)
	assert.Equal(t, noEarnings.ID, board[3].UserID)
	assert.Equal(t, 4, board[3].Rank)
	assert.Equal(t, high.Username, board[0].Username)
}

func TestGetLeaderboard_Limit(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil, time.Minute, nil, logger.New("error", "text"))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := createTestUser(t, client)
		createEarningAccount(t, client, u.ID, i, float64(i+1))
	}

	board, err := svc.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, board, 2)
}

// countingCacheMetrics records cache outcomes
type countingCacheMetrics struct {
	hits, misses int
}

func (m *countingCacheMetrics) RecordCacheHit(string)  { m.hits++ }
func (m *countingCacheMetrics) RecordCacheMiss(string) { m.misses++ }

func TestGetLeaderboard_CacheAside(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	cacheClient := setupTestCache(t)
	counters := &countingCacheMetrics{}
	svc := NewService(client, cacheClient, time.Minute, counters, logger.New("error", "text"))
	ctx := context.Background()

	u := createTestUser(t, client)
	createEarningAccount(t, client, u.ID, 1, 10.00)

	// First call misses, computes and fills the cache.
	board, err := svc.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 1, counters.misses)
	assert.Zero(t, counters.hits)

	exists, err := cacheClient.Exists(ctx, "analytics:leaderboard")
	require.NoError(t, err)
	assert.True(t, exists)

	// New earnings are invisible until the cache is refreshed.
	u2 := createTestUser(t, client)
	createEarningAccount(t, client, u2.ID, 5, 99.00)

	stale, err := svc.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, stale, 1)
	assert.Equal(t, 1, counters.hits)

	require.NoError(t, svc.RefreshLeaderboard(ctx))

	fresh, err := svc.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, fresh, 2)
	assert.Equal(t, u2.ID, fresh[0].UserID)
}

func TestGetGlobalStats(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil, time.Minute, nil, logger.New("error", "text"))
	ctx := context.Background()

	referrer := createTestUser(t, client)
	earner := createTestUser(t, client)
	organic := createTestUser(t, client)

	createEarningAccount(t, client, referrer.ID, 1, 12.00)
	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(earner.ID).
		SetCode(fmt.Sprintf("EARN%04d", earner.ID)).
		SetTier1ReferrerID(referrer.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ReferralAccount.
		Create().
		SetOwnerUserID(organic.ID).
		SetCode(fmt.Sprintf("ORGN%04d", organic.ID)).
		Save(ctx)
	require.NoError(t, err)

	subTxn := createTxn(t, client, earner.ID, transaction.TypeSubscription)
	tipTxn := createTxn(t, client, earner.ID, transaction.TypeTip)
	createCommissionRow(t, client, referrer.ID, earner.ID, subTxn.ID, 1, 10.00, true)
	createCommissionRow(t, client, referrer.ID, earner.ID, tipTxn.ID, 2, 2.00, false)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	stats, err := svc.GetGlobalStats(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalAccounts)
	assert.Equal(t, 1, stats.AttributedAccounts)

	assert.Equal(t, 1, stats.CommissionsByStatus["paid"].Count)
	assert.InDelta(t, 10.00, stats.CommissionsByStatus["paid"].Amount, 1e-9)
	assert.Equal(t, 1, stats.CommissionsByStatus["pending"].Count)

	assert.Equal(t, 1, stats.CommissionsByType["subscription"].Count)
	assert.Equal(t, 1, stats.CommissionsByType["tip"].Count)

	assert.InDelta(t, 10.00, stats.TierSplit["tier1"], 1e-9)
	assert.InDelta(t, 2.00, stats.TierSplit["tier2"], 1e-9)
	assert.InDelta(t, 10.00, stats.TotalCommissionPaid, 1e-9)
}

func TestGetGlobalStats_WindowExcludesOutside(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil, time.Minute, nil, logger.New("error", "text"))
	ctx := context.Background()

	referrer := createTestUser(t, client)
	earner := createTestUser(t, client)
	createEarningAccount(t, client, referrer.ID, 1, 10.00)

	txn := createTxn(t, client, earner.ID, transaction.TypeTip)
	createCommissionRow(t, client, referrer.ID, earner.ID, txn.ID, 1, 10.00, false)

	// A window entirely in the past sees no commissions but all-time account
	// counts.
	from := time.Now().Add(-48 * time.Hour)
	to := time.Now().Add(-24 * time.Hour)
	stats, err := svc.GetGlobalStats(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalAccounts)
	assert.Empty(t, stats.CommissionsByStatus)
	assert.Empty(t, stats.TierSplit)
	assert.Zero(t, stats.TotalCommissionPaid)
}
