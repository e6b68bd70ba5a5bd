package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/enttest"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/ledger"
	"github.com/fanvault/backend/pkg/logger"
	"github.com/fanvault/backend/pkg/metrics"
	"github.com/fanvault/backend/pkg/wallet"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/testutil"
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

// testMetrics is shared across the package: promauto registers globally, so
// metrics.New may only run once per process.
var testMetrics = metrics.New()

func TestCompleteTransaction_RecordsCommissionMetrics(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// A refers B, B refers C: completing C's earnings creates both tiers.
	a := createTestUser(t, client)
	b := createTestUser(t, client)
	c := createTestUser(t, client)

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

	wallets := wallet.NewService(client)
	commissions := commission.NewService(client, wallets, nil)
	ledgerService := ledger.NewService(client, commissions, logger.New("error", "text"))
	handler := NewLedgerHandler(ledgerService, wallets, testMetrics)

	txn, err := ledgerService.Record(ctx, ledger.RecordInput{
		Amount:          100.00,
		Type:            "subscription",
		RecipientUserID: &c.ID,
	})
	require.NoError(t, err)

	tier1Before := testutil.ToFloat64(testMetrics.CommissionsCreated.WithLabelValues("1"))
	tier2Before := testutil.ToFloat64(testMetrics.CommissionsCreated.WithLabelValues("2"))
	amountBefore := testutil.ToFloat64(testMetrics.CommissionAmount.WithLabelValues("1"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	ectx := e.NewContext(req, rec)
	ectx.SetParamNames("id")
	ectx.SetParamValues(strconv.Itoa(txn.ID))

	require.NoError(t, handler.CompleteTransaction(ectx))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.CommissionsCreated.WithLabelValues("1"))-tier1Before, 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.CommissionsCreated.WithLabelValues("2"))-tier2Before, 1e-9)
	assert.InDelta(t, 10.00, testutil.ToFloat64(testMetrics.CommissionAmount.WithLabelValues("1"))-amountBefore, 1e-9)
}
