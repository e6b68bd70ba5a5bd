package referral

import (
	"context"
	"fmt"
	"time"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/pkg/domain"
)

// Service handles referral code generation and signup attribution
type Service struct {
	db *ent.Client
}

// NewService creates a new referral service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Attribution is the outcome of attributing a new signup. Registration must
// never fail because attribution did, so soft failures are reported through
// Reason instead of an error.
type Attribution struct {
	Tier1ReferrerID *int   `json:"tier1_referrer_id"`
	Tier2ReferrerID *int   `json:"tier2_referrer_id"`
	Code            string `json:"code"`
	Source          string `json:"source"`
	Reason          string `json:"reason,omitempty"`
}

// AttributeNewUser establishes the referral chain for a freshly registered
// user. With no code (or an unusable one) the user gets an organic account
// and no referrers; with a valid code the code owner becomes the tier-1
// referrer and the owner's own tier-1 referrer becomes tier 2.
//
// The new account and the referrer update commit in one transaction; the
// unique constraint on owner_user_id turns a double attribution into a
// detectable conflict rather than a duplicate account.
func (s *Service) AttributeNewUser(ctx context.Context, newUserID int, seed, code string) (*Attribution, error) {
	if code == "" {
		return s.createOrganic(ctx, newUserID, seed, "")
	}

	if !ValidCodeFormat(code) {
		return nil, domain.NewValidationError("referral code must be 6-12 uppercase alphanumeric characters")
	}

	referrer, err := s.db.ReferralAccount.
		Query().
		Where(referralaccount.CodeEQ(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return s.createOrganic(ctx, newUserID, seed, "referral code not found")
		}
		return nil, fmt.Errorf("failed to look up referral code: %w", err)
	}

	if reason := usableAsReferrer(referrer, newUserID); reason != "" {
		return s.createOrganic(ctx, newUserID, seed, reason)
	}

	newCode, err := s.GenerateCode(ctx, seed)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start attribution transaction: %w", err)
	}

	attr, err := s.attributeChained(ctx, tx, newUserID, newCode, referrer)
	if err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, domain.NewConflictError("user already has a referral account")
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attribution: %w", err)
	}

	return attr, nil
}

// attributeChained creates the referred user's account and rolls the signup
// into the referrer's counters.
func (s *Service) attributeChained(ctx context.Context, tx *ent.Tx, newUserID int, newCode string, referrer *ent.ReferralAccount) (*Attribution, error) {
	now := time.Now()

	create := tx.ReferralAccount.
		Create().
		SetOwnerUserID(newUserID).
		SetCode(newCode).
		SetSource(referralaccount.SourceReferral).
		SetTier1ReferrerID(referrer.OwnerUserID)
	if referrer.Tier1ReferrerID != nil {
		create.SetTier2ReferrerID(*referrer.Tier1ReferrerID)
	}

	account, err := create.Save(ctx)
	if err != nil {
		return nil, err
	}

	_, err = tx.ReferralAccount.
		UpdateOne(referrer).
		SetDirectReferrals(append(referrer.DirectReferrals, newUserID)).
		AddTotalReferrals(1).
		AddActiveReferrals(1).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update referrer account: %w", err)
	}

	tier1 := referrer.OwnerUserID
	return &Attribution{
		Tier1ReferrerID: &tier1,
		Tier2ReferrerID: referrer.Tier1ReferrerID,
		Code:            account.Code,
		Source:          string(account.Source),
	}, nil
}

// createOrganic creates an account with no referrer chain. A non-empty
// reason records why a presented code could not be honored.
func (s *Service) createOrganic(ctx context.Context, userID int, seed, reason string) (*Attribution, error) {
	code, err := s.GenerateCode(ctx, seed)
	if err != nil {
		return nil, err
	}

	account, err := s.db.ReferralAccount.
		Create().
		SetOwnerUserID(userID).
		SetCode(code).
		SetSource(referralaccount.SourceOrganic).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewConflictError("user already has a referral account")
		}
		return nil, fmt.Errorf("failed to create referral account: %w", err)
	}

	return &Attribution{
		Code:   account.Code,
		Source: string(account.Source),
		Reason: reason,
	}, nil
}

// usableAsReferrer reports why an account cannot attribute the given signup,
// or "" when it can.
func usableAsReferrer(acc *ent.ReferralAccount, newUserID int) string {
	if !acc.IsActive {
		return "referral code is inactive"
	}
	if acc.ExpiresAt != nil && acc.ExpiresAt.Before(time.Now()) {
		return "referral code has expired"
	}
	if acc.OwnerUserID == newUserID {
		return "self-referral is not allowed"
	}
	for _, id := range acc.DirectReferrals {
		if id == newUserID {
			return "user was already referred by this code"
		}
	}
	return ""
}

// GetByOwner returns the referral account owned by the given user
func (s *Service) GetByOwner(ctx context.Context, userID int) (*ent.ReferralAccount, error) {
	account, err := s.db.ReferralAccount.
		Query().
		Where(referralaccount.OwnerUserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("referral account")
		}
		return nil, fmt.Errorf("failed to query referral account: %w", err)
	}
	return account, nil
}

// ValidateCode checks whether a code exists and can still attribute signups.
// Returns the owning user id when valid.
func (s *Service) ValidateCode(ctx context.Context, code string) (bool, int, error) {
	if !ValidCodeFormat(code) {
		return false, 0, nil
	}

	account, err := s.db.ReferralAccount.
		Query().
		Where(referralaccount.CodeEQ(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("failed to query referral code: %w", err)
	}

	if !account.IsActive {
		return false, 0, nil
	}
	if account.ExpiresAt != nil && account.ExpiresAt.Before(time.Now()) {
		return false, 0, nil
	}

	return true, account.OwnerUserID, nil
}

// Deactivate disables an account so its code can no longer attribute signups
func (s *Service) Deactivate(ctx context.Context, userID int) error {
	n, err := s.db.ReferralAccount.
		Update().
		Where(referralaccount.OwnerUserIDEQ(userID)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate referral account: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("referral account")
	}
	return nil
}
