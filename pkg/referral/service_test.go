package referral

import (
	"context"
	"fmt"
	"testing"
	"time"

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

func TestAttributeNewUser_Organic(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	u := createTestUser(t, client)

	attr, err := svc.AttributeNewUser(context.Background(), u.ID, u.Username, "")
	require.NoError(t, err)

	assert.Nil(t, attr.Tier1ReferrerID)
	assert.Nil(t, attr.Tier2ReferrerID)
	assert.Equal(t, "organic", attr.Source)
	assert.Empty(t, attr.Reason)
	assert.True(t, ValidCodeFormat(attr.Code))

	account, err := svc.GetByOwner(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, attr.Code, account.Code)
}

func TestAttributeNewUser_ChainedTwoTiers(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	// A refers B, B refers C: C's account must carry B as tier 1 and A as
	// tier 2.
	userA := createTestUser(t, client)
	attrA, err := svc.AttributeNewUser(ctx, userA.ID, userA.Username, "")
	require.NoError(t, err)

	userB := createTestUser(t, client)
	attrB, err := svc.AttributeNewUser(ctx, userB.ID, userB.Username, attrA.Code)
	require.NoError(t, err)
	require.NotNil(t, attrB.Tier1ReferrerID)
	assert.Equal(t, userA.ID, *attrB.Tier1ReferrerID)
	assert.Nil(t, attrB.Tier2ReferrerID)
	assert.Equal(t, "referral", attrB.Source)

	userC := createTestUser(t, client)
	attrC, err := svc.AttributeNewUser(ctx, userC.ID, userC.Username, attrB.Code)
	require.NoError(t, err)
	require.NotNil(t, attrC.Tier1ReferrerID)
	require.NotNil(t, attrC.Tier2ReferrerID)
	assert.Equal(t, userB.ID, *attrC.Tier1ReferrerID)
	assert.Equal(t, userA.ID, *attrC.Tier2ReferrerID)

	// A's counters reflect the one direct signup.
	accountA, err := svc.GetByOwner(ctx, userA.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, accountA.TotalReferrals)
	assert.Equal(t, 1, accountA.ActiveReferrals)
	assert.Equal(t, []int{userB.ID}, accountA.DirectReferrals)

	accountB, err := svc.GetByOwner(ctx, userB.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{userC.ID}, accountB.DirectReferrals)
}

func TestAttributeNewUser_MalformedCode(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	u := createTestUser(t, client)

	_, err := svc.AttributeNewUser(context.Background(), u.ID, u.Username, "bad code!")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// No account must exist after the rejection.
	_, err = svc.GetByOwner(context.Background(), u.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestAttributeNewUser_UnknownCodeFallsBackToOrganic(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	u := createTestUser(t, client)

	attr, err := svc.AttributeNewUser(context.Background(), u.ID, u.Username, "NOSUCH99")
	require.NoError(t, err)

	assert.Nil(t, attr.Tier1ReferrerID)
	assert.Equal(t, "organic", attr.Source)
	assert.Equal(t, "referral code not found", attr.Reason)
}

func TestAttributeNewUser_SelfReferralRejected(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client)
	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(owner.ID).
		SetCode("SELFCODE").
		Save(ctx)
	require.NoError(t, err)

	// The owner presenting their own code gets an organic reason, but the
	// unique owner constraint means a second account cannot be created.
	_, err = svc.AttributeNewUser(ctx, owner.ID, owner.Username, "SELFCODE")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestAttributeNewUser_InactiveCode(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client)
	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(owner.ID).
		SetCode("DEADCODE").
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	u := createTestUser(t, client)
	attr, err := svc.AttributeNewUser(ctx, u.ID, u.Username, "DEADCODE")
	require.NoError(t, err)
	assert.Nil(t, attr.Tier1ReferrerID)
	assert.Equal(t, "referral code is inactive", attr.Reason)
}

func TestAttributeNewUser_ExpiredCode(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client)
	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(owner.ID).
		SetCode("OLDPROMO").
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	u := createTestUser(t, client)
	attr, err := svc.AttributeNewUser(ctx, u.ID, u.Username, "OLDPROMO")
	require.NoError(t, err)
	assert.Nil(t, attr.Tier1ReferrerID)
	assert.Equal(t, "referral code has expired", attr.Reason)
}

func TestAttributeNewUser_AlreadyReferred(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client)
	attrOwner, err := svc.AttributeNewUser(ctx, owner.ID, owner.Username, "")
	require.NoError(t, err)

	u := createTestUser(t, client)
	_, err = svc.AttributeNewUser(ctx, u.ID, u.Username, attrOwner.Code)
	require.NoError(t, err)

	// A second attribution for the same user conflicts on the unique owner
	// constraint regardless of the code used.
	_, err = svc.AttributeNewUser(ctx, u.ID, u.Username, attrOwner.Code)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestAttributeNewUser_DoubleAttributionConflicts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	u := createTestUser(t, client)
	_, err := svc.AttributeNewUser(ctx, u.ID, u.Username, "")
	require.NoError(t, err)

	_, err = svc.AttributeNewUser(ctx, u.ID, u.Username, "")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestValidateCode(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client)
	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(owner.ID).
		SetCode("GOODCODE").
		Save(ctx)
	require.NoError(t, err)

	t.Run("Success - valid code", func(t *testing.T) {
		valid, ownerID, err := svc.ValidateCode(ctx, "GOODCODE")
		require.NoError(t, err)
		assert.True(t, valid)
		assert.Equal(t, owner.ID, ownerID)
	})

	t.Run("Failure - unknown code", func(t *testing.T) {
		valid, _, err := svc.ValidateCode(ctx, "NOSUCH99")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Failure - malformed code", func(t *testing.T) {
		valid, _, err := svc.ValidateCode(ctx, "no")
		require.NoError(t, err)
		assert.False(t, valid)
	})
}

func TestDeactivate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client)
	_, err := client.ReferralAccount.
		Create().
		SetOwnerUserID(owner.ID).
		SetCode("LIVECODE").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, owner.ID))

	valid, _, err := svc.ValidateCode(ctx, "LIVECODE")
	require.NoError(t, err)
	assert.False(t, valid)

	err = svc.Deactivate(ctx, 99999)
	assert.True(t, domain.IsNotFound(err))
}
