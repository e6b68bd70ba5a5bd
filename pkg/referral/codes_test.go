package referral

import (
	"context"
	"strings"
	"testing"

	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCodeFormat(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"Valid - generated length", "ALICE2K9", true},
		{"Valid - minimum length", "ABC123", true},
		{"Valid - maximum length", "CAMPAIGN2026", true},
		{"Invalid - too short", "ABC12", false},
		{"Invalid - too long", "ABCDEFGHIJKLM", false},
		{"Invalid - lowercase", "alice2k9", false},
		{"Invalid - symbols", "ALICE-29", false},
		{"Invalid - empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCodeFormat(tt.code))
		})
	}
}

func TestGenerateCode_SeededPrefix(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)

	code, err := svc.GenerateCode(context.Background(), "alice")
	require.NoError(t, err)

	assert.Len(t, code, CodeLength)
	assert.True(t, strings.HasPrefix(code, "ALIC"), "expected seed prefix, got %s", code)
	assert.True(t, ValidCodeFormat(code))
}

func TestGenerateCode_SeedStripsNoise(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)

	code, err := svc.GenerateCode(context.Background(), "a-l!i.c_e99")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "ALIC"), "expected sanitized prefix, got %s", code)
}

func TestGenerateCode_NoSeed(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)

	code, err := svc.GenerateCode(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)
	assert.True(t, ValidCodeFormat(code))
}

func TestGenerateCode_UniqueAcrossAccounts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		u := createTestUser(t, client)

		code, err := svc.GenerateCode(ctx, u.Username)
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true

		_, err = client.ReferralAccount.
			Create().
			SetOwnerUserID(u.ID).
			SetCode(code).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestGenerateCode_ExhaustionFailsLoudly(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client)
	ctx := context.Background()

	// A single-character charset would be needed to force real exhaustion, so
	// instead verify the error shape through the constructor directly and the
	// checker the callers rely on.
	err := domain.NewCodeExhaustedError(10)
	assert.True(t, domain.IsCodeExhausted(err))
	assert.Contains(t, err.Error(), "10 attempts")

	// Sanity: generation still succeeds with an occupied seeded candidate,
	// falling back to a random code.
	owner := createTestUser(t, client)
	first, err := svc.GenerateCode(ctx, owner.Username)
	require.NoError(t, err)
	_, err = client.ReferralAccount.
		Create().
		SetOwnerUserID(owner.ID).
		SetCode(first).
		Save(ctx)
	require.NoError(t, err)

	exists, err := client.ReferralAccount.
		Query().
		Where(referralaccount.CodeEQ(first)).
		Exist(ctx)
	require.NoError(t, err)
	require.True(t, exists)

	second, err := svc.GenerateCode(ctx, owner.Username)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
