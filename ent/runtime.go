// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/schema"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/ent/user"
	"github.com/fanvault/backend/ent/wallet"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commissionFields := schema.Commission{}.Fields()
	_ = commissionFields
	// commissionDescTier is the schema descriptor for tier field.
	commissionDescTier := commissionFields[3].Descriptor()
	// commission.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	commission.TierValidator = func() func(int) error {
		validators := commissionDescTier.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(tier int) error {
			for _, fn := range fns {
				if err := fn(tier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// commissionDescCurrency is the schema descriptor for currency field.
	commissionDescCurrency := commissionFields[7].Descriptor()
	// commission.DefaultCurrency holds the default value on creation for the currency field.
	commission.DefaultCurrency = commissionDescCurrency.Default.(string)
	// commission.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	commission.CurrencyValidator = commissionDescCurrency.Validators[0].(func(string) error)
	// commissionDescCreatedAt is the schema descriptor for created_at field.
	commissionDescCreatedAt := commissionFields[12].Descriptor()
	// commission.DefaultCreatedAt holds the default value on creation for the created_at field.
	commission.DefaultCreatedAt = commissionDescCreatedAt.Default.(func() time.Time)
	referralaccountFields := schema.ReferralAccount{}.Fields()
	_ = referralaccountFields
	// referralaccountDescCode is the schema descriptor for code field.
	referralaccountDescCode := referralaccountFields[1].Descriptor()
	// referralaccount.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	referralaccount.CodeValidator = func() func(string) error {
		validators := referralaccountDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// referralaccountDescTotalReferrals is the schema descriptor for total_referrals field.
	referralaccountDescTotalReferrals := referralaccountFields[5].Descriptor()
	// referralaccount.DefaultTotalReferrals holds the default value on creation for the total_referrals field.
	referralaccount.DefaultTotalReferrals = referralaccountDescTotalReferrals.Default.(int)
	// referralaccount.TotalReferralsValidator is a validator for the "total_referrals" field. It is called by the builders before save.
	referralaccount.TotalReferralsValidator = referralaccountDescTotalReferrals.Validators[0].(func(int) error)
	// referralaccountDescActiveReferrals is the schema descriptor for active_referrals field.
	referralaccountDescActiveReferrals := referralaccountFields[6].Descriptor()
	// referralaccount.DefaultActiveReferrals holds the default value on creation for the active_referrals field.
	referralaccount.DefaultActiveReferrals = referralaccountDescActiveReferrals.Default.(int)
	// referralaccount.ActiveReferralsValidator is a validator for the "active_referrals" field. It is called by the builders before save.
	referralaccount.ActiveReferralsValidator = referralaccountDescActiveReferrals.Validators[0].(func(int) error)
	// referralaccountDescTotalCommissionEarned is the schema descriptor for total_commission_earned field.
	referralaccountDescTotalCommissionEarned := referralaccountFields[7].Descriptor()
	// referralaccount.DefaultTotalCommissionEarned holds the default value on creation for the total_commission_earned field.
	referralaccount.DefaultTotalCommissionEarned = referralaccountDescTotalCommissionEarned.Default.(float64)
	// referralaccountDescTier1CommissionEarned is the schema descriptor for tier1_commission_earned field.
	referralaccountDescTier1CommissionEarned := referralaccountFields[8].Descriptor()
	// referralaccount.DefaultTier1CommissionEarned holds the default value on creation for the tier1_commission_earned field.
	referralaccount.DefaultTier1CommissionEarned = referralaccountDescTier1CommissionEarned.Default.(float64)
	// referralaccountDescTier2CommissionEarned is the schema descriptor for tier2_commission_earned field.
	referralaccountDescTier2CommissionEarned := referralaccountFields[9].Descriptor()
	// referralaccount.DefaultTier2CommissionEarned holds the default value on creation for the tier2_commission_earned field.
	referralaccount.DefaultTier2CommissionEarned = referralaccountDescTier2CommissionEarned.Default.(float64)
	// referralaccountDescLastActivityAt is the schema descriptor for last_activity_at field.
	referralaccountDescLastActivityAt := referralaccountFields[10].Descriptor()
	// referralaccount.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	referralaccount.DefaultLastActivityAt = referralaccountDescLastActivityAt.Default.(func() time.Time)
	// referralaccountDescIsActive is the schema descriptor for is_active field.
	referralaccountDescIsActive := referralaccountFields[11].Descriptor()
	// referralaccount.DefaultIsActive holds the default value on creation for the is_active field.
	referralaccount.DefaultIsActive = referralaccountDescIsActive.Default.(bool)
	// referralaccountDescCreatedAt is the schema descriptor for created_at field.
	referralaccountDescCreatedAt := referralaccountFields[14].Descriptor()
	// referralaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	referralaccount.DefaultCreatedAt = referralaccountDescCreatedAt.Default.(func() time.Time)
	// referralaccountDescUpdatedAt is the schema descriptor for updated_at field.
	referralaccountDescUpdatedAt := referralaccountFields[15].Descriptor()
	// referralaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	referralaccount.DefaultUpdatedAt = referralaccountDescUpdatedAt.Default.(func() time.Time)
	// referralaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	referralaccount.UpdateDefaultUpdatedAt = referralaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCurrency is the schema descriptor for currency field.
	transactionDescCurrency := transactionFields[1].Descriptor()
	// transaction.DefaultCurrency holds the default value on creation for the currency field.
	transaction.DefaultCurrency = transactionDescCurrency.Default.(string)
	// transaction.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	transaction.CurrencyValidator = transactionDescCurrency.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[9].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	walletFields := schema.Wallet{}.Fields()
	_ = walletFields
	// walletDescBalance is the schema descriptor for balance field.
	walletDescBalance := walletFields[1].Descriptor()
	// wallet.DefaultBalance holds the default value on creation for the balance field.
	wallet.DefaultBalance = walletDescBalance.Default.(float64)
	// walletDescCurrency is the schema descriptor for currency field.
	walletDescCurrency := walletFields[2].Descriptor()
	// wallet.DefaultCurrency holds the default value on creation for the currency field.
	wallet.DefaultCurrency = walletDescCurrency.Default.(string)
	// wallet.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	wallet.CurrencyValidator = walletDescCurrency.Validators[0].(func(string) error)
	// walletDescUpdatedAt is the schema descriptor for updated_at field.
	walletDescUpdatedAt := walletFields[3].Descriptor()
	// wallet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wallet.DefaultUpdatedAt = walletDescUpdatedAt.Default.(func() time.Time)
	// wallet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wallet.UpdateDefaultUpdatedAt = walletDescUpdatedAt.UpdateDefault.(func() time.Time)
}
