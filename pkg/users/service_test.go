package users

import (
	"context"
	"testing"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/enttest"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
	"github.com/fanvault/backend/pkg/referral"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (*Service, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	svc := NewService(client, referral.NewService(client), logger.New("error", "text"))
	return svc, client, func() { client.Close() }
}

func TestRegister_Organic(t *testing.T) {
	svc, _, cleanup := setupTestService(t)
	defer cleanup()

	u, attribution, err := svc.Register(context.Background(), RegisterInput{
		Username: "Alice99",
		Email:    "Alice@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Identifiers are stored lowercase.
	assert.Equal(t, "alice99", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "supersecret", u.PasswordHash)

	require.NotNil(t, attribution)
	assert.Equal(t, "organic", attribution.Source)
	assert.Nil(t, attribution.Tier1ReferrerID)
	assert.NotEmpty(t, attribution.Code)
}

func TestRegister_WithReferralCode(t *testing.T) {
	svc, _, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	_, refAttr, err := svc.Register(ctx, RegisterInput{
		Username: "referrer",
		Email:    "referrer@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	referrer, err := svc.FindByUsername(ctx, "referrer")
	require.NoError(t, err)

	// Code is normalized before attribution, so lowercase input still lands.
	_, attribution, err := svc.Register(ctx, RegisterInput{
		Username:     "newfan",
		Email:        "newfan@example.com",
		Password:     "supersecret",
		ReferralCode: "  " + refAttr.Code + "  ",
	})
	require.NoError(t, err)

	require.NotNil(t, attribution)
	assert.Equal(t, "referral", attribution.Source)
	require.NotNil(t, attribution.Tier1ReferrerID)
	assert.Equal(t, referrer.ID, *attribution.Tier1ReferrerID)
}

func TestRegister_BadCodeStillRegisters(t *testing.T) {
	svc, client, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	// The code passes input validation but fails the format check inside
	// attribution. The user must still be created, just without a chain.
	u, attribution, err := svc.Register(ctx, RegisterInput{
		Username:     "hopeful",
		Email:        "hopeful@example.com",
		Password:     "supersecret",
		ReferralCode: "bad code!",
	})
	require.NoError(t, err)
	assert.Nil(t, attribution)

	got, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "hopeful", got.Username)
}

func TestRegister_UnknownCodeFallsBackToOrganic(t *testing.T) {
	svc, _, cleanup := setupTestService(t)
	defer cleanup()

	_, attribution, err := svc.Register(context.Background(), RegisterInput{
		Username:     "drifter",
		Email:        "drifter@example.com",
		Password:     "supersecret",
		ReferralCode: "NOSUCH99",
	})
	require.NoError(t, err)

	require.NotNil(t, attribution)
	assert.Equal(t, "organic", attribution.Source)
	assert.Equal(t, "referral code not found", attribution.Reason)
}

func TestRegister_DuplicateConflicts(t *testing.T) {
	svc, _, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	t.Run("Failure - duplicate username", func(t *testing.T) {
		_, _, err := svc.Register(ctx, RegisterInput{
			Username: "taken",
			Email:    "other@example.com",
			Password: "supersecret",
		})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Failure - duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, RegisterInput{
			Username: "someoneelse",
			Email:    "taken@example.com",
			Password: "supersecret",
		})
		assert.True(t, domain.IsConflict(err))
	})
}

func TestRegister_Validation(t *testing.T) {
	svc, _, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"username too short", RegisterInput{Username: "ab", Email: "a@b.com", Password: "supersecret"}},
		{"username not alphanumeric", RegisterInput{Username: "no-dashes", Email: "a@b.com", Password: "supersecret"}},
		{"invalid email", RegisterInput{Username: "valid", Email: "not-an-email", Password: "supersecret"}},
		{"password too short", RegisterInput{Username: "valid", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run("Failure - "+tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.input)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc, client, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{
		Username: "loginuser",
		Email:    "loginuser@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	t.Run("Success - by username", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "loginuser", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.NotNil(t, got.LastLoginAt)
	})

	t.Run("Success - by email", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "LoginUser@example.com", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("Failure - wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "loginuser", "wrongpass")
		assert.True(t, domain.IsUnauthorized(err))
	})

	t.Run("Failure - unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "supersecret")
		assert.True(t, domain.IsUnauthorized(err))
	})

	t.Run("Failure - disabled account", func(t *testing.T) {
		_, err := client.User.
			UpdateOneID(u.ID).
			SetIsActive(false).
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "loginuser", "supersecret")
		assert.True(t, domain.IsForbidden(err))
	})
}

func TestSetPayoutAddress(t *testing.T) {
	svc, client, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{
		Username: "payee",
		Email:    "payee@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetPayoutAddress(ctx, u.ID, "acct_12345"))

	got, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PayoutAddress)
	assert.Equal(t, "acct_12345", *got.PayoutAddress)

	err = svc.SetPayoutAddress(ctx, u.ID, "   ")
	assert.True(t, domain.IsValidation(err))

	err = svc.SetPayoutAddress(ctx, 99999, "acct_zzz")
	assert.True(t, domain.IsNotFound(err))
}
