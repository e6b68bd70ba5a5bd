// Code generated by ent, DO NOT EDIT.

package referralaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fanvault/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldID, id))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldOwnerUserID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldCode, v))
}

// Tier1ReferrerID applies equality check predicate on the "tier1_referrer_id" field. It's identical to Tier1ReferrerIDEQ.
func Tier1ReferrerID(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier1ReferrerID, v))
}

// Tier2ReferrerID applies equality check predicate on the "tier2_referrer_id" field. It's identical to Tier2ReferrerIDEQ.
func Tier2ReferrerID(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier2ReferrerID, v))
}

// TotalReferrals applies equality check predicate on the "total_referrals" field. It's identical to TotalReferralsEQ.
func TotalReferrals(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTotalReferrals, v))
}

// ActiveReferrals applies equality check predicate on the "active_referrals" field. It's identical to ActiveReferralsEQ.
func ActiveReferrals(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldActiveReferrals, v))
}

// TotalCommissionEarned applies equality check predicate on the "total_commission_earned" field. It's identical to TotalCommissionEarnedEQ.
func TotalCommissionEarned(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTotalCommissionEarned, v))
}

// Tier1CommissionEarned applies equality check predicate on the "tier1_commission_earned" field. It's identical to Tier1CommissionEarnedEQ.
func Tier1CommissionEarned(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier1CommissionEarned, v))
}

// Tier2CommissionEarned applies equality check predicate on the "tier2_commission_earned" field. It's identical to Tier2CommissionEarnedEQ.
func Tier2CommissionEarned(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier2CommissionEarned, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldLastActivityAt, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldIsActive, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldContainsFold(FieldCode, v))
}

// DirectReferralsIsNil applies the IsNil predicate on the "direct_referrals" field.
func DirectReferralsIsNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIsNull(FieldDirectReferrals))
}

// DirectReferralsNotNil applies the NotNil predicate on the "direct_referrals" field.
func DirectReferralsNotNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotNull(FieldDirectReferrals))
}

// Tier1ReferrerIDEQ applies the EQ predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier1ReferrerID, v))
}

// Tier1ReferrerIDNEQ applies the NEQ predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDNEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldTier1ReferrerID, v))
}

// Tier1ReferrerIDIn applies the In predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldTier1ReferrerID, vs...))
}

// Tier1ReferrerIDNotIn applies the NotIn predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDNotIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldTier1ReferrerID, vs...))
}

// Tier1ReferrerIDGT applies the GT predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDGT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldTier1ReferrerID, v))
}

// Tier1ReferrerIDGTE applies the GTE predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDGTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldTier1ReferrerID, v))
}

// Tier1ReferrerIDLT applies the LT predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDLT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldTier1ReferrerID, v))
}

// Tier1ReferrerIDLTE applies the LTE predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDLTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldTier1ReferrerID, v))
}

// Tier1ReferrerIDIsNil applies the IsNil predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDIsNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIsNull(FieldTier1ReferrerID))
}

// Tier1ReferrerIDNotNil applies the NotNil predicate on the "tier1_referrer_id" field.
func Tier1ReferrerIDNotNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotNull(FieldTier1ReferrerID))
}

// Tier2ReferrerIDEQ applies the EQ predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier2ReferrerID, v))
}

// Tier2ReferrerIDNEQ applies the NEQ predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDNEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldTier2ReferrerID, v))
}

// Tier2ReferrerIDIn applies the In predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldTier2ReferrerID, vs...))
}

// Tier2ReferrerIDNotIn applies the NotIn predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDNotIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldTier2ReferrerID, vs...))
}

// Tier2ReferrerIDGT applies the GT predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDGT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldTier2ReferrerID, v))
}

// Tier2ReferrerIDGTE applies the GTE predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDGTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldTier2ReferrerID, v))
}

// Tier2ReferrerIDLT applies the LT predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDLT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldTier2ReferrerID, v))
}

// Tier2ReferrerIDLTE applies the LTE predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDLTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldTier2ReferrerID, v))
}

// Tier2ReferrerIDIsNil applies the IsNil predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDIsNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIsNull(FieldTier2ReferrerID))
}

// Tier2ReferrerIDNotNil applies the NotNil predicate on the "tier2_referrer_id" field.
func Tier2ReferrerIDNotNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotNull(FieldTier2ReferrerID))
}

// TotalReferralsEQ applies the EQ predicate on the "total_referrals" field.
func TotalReferralsEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTotalReferrals, v))
}

// TotalReferralsNEQ applies the NEQ predicate on the "total_referrals" field.
func TotalReferralsNEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldTotalReferrals, v))
}

// TotalReferralsIn applies the In predicate on the "total_referrals" field.
func TotalReferralsIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldTotalReferrals, vs...))
}

// TotalReferralsNotIn applies the NotIn predicate on the "total_referrals" field.
func TotalReferralsNotIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldTotalReferrals, vs...))
}

// TotalReferralsGT applies the GT predicate on the "total_referrals" field.
func TotalReferralsGT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldTotalReferrals, v))
}

// TotalReferralsGTE applies the GTE predicate on the "total_referrals" field.
func TotalReferralsGTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldTotalReferrals, v))
}

// TotalReferralsLT applies the LT predicate on the "total_referrals" field.
func TotalReferralsLT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldTotalReferrals, v))
}

// TotalReferralsLTE applies the LTE predicate on the "total_referrals" field.
func TotalReferralsLTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldTotalReferrals, v))
}

// ActiveReferralsEQ applies the EQ predicate on the "active_referrals" field.
func ActiveReferralsEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldActiveReferrals, v))
}

// ActiveReferralsNEQ applies the NEQ predicate on the "active_referrals" field.
func ActiveReferralsNEQ(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldActiveReferrals, v))
}

// ActiveReferralsIn applies the In predicate on the "active_referrals" field.
func ActiveReferralsIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldActiveReferrals, vs...))
}

// ActiveReferralsNotIn applies the NotIn predicate on the "active_referrals" field.
func ActiveReferralsNotIn(vs ...int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldActiveReferrals, vs...))
}

// ActiveReferralsGT applies the GT predicate on the "active_referrals" field.
func ActiveReferralsGT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldActiveReferrals, v))
}

// ActiveReferralsGTE applies the GTE predicate on the "active_referrals" field.
func ActiveReferralsGTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldActiveReferrals, v))
}

// ActiveReferralsLT applies the LT predicate on the "active_referrals" field.
func ActiveReferralsLT(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldActiveReferrals, v))
}

// ActiveReferralsLTE applies the LTE predicate on the "active_referrals" field.
func ActiveReferralsLTE(v int) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldActiveReferrals, v))
}

// TotalCommissionEarnedEQ applies the EQ predicate on the "total_commission_earned" field.
func TotalCommissionEarnedEQ(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTotalCommissionEarned, v))
}

// TotalCommissionEarnedNEQ applies the NEQ predicate on the "total_commission_earned" field.
func TotalCommissionEarnedNEQ(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldTotalCommissionEarned, v))
}

// TotalCommissionEarnedIn applies the In predicate on the "total_commission_earned" field.
func TotalCommissionEarnedIn(vs ...float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldTotalCommissionEarned, vs...))
}

// TotalCommissionEarnedNotIn applies the NotIn predicate on the "total_commission_earned" field.
func TotalCommissionEarnedNotIn(vs ...float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldTotalCommissionEarned, vs...))
}

// TotalCommissionEarnedGT applies the GT predicate on the "total_commission_earned" field.
func TotalCommissionEarnedGT(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldTotalCommissionEarned, v))
}

// TotalCommissionEarnedGTE applies the GTE predicate on the "total_commission_earned" field.
func TotalCommissionEarnedGTE(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldTotalCommissionEarned, v))
}

// TotalCommissionEarnedLT applies the LT predicate on the "total_commission_earned" field.
func TotalCommissionEarnedLT(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldTotalCommissionEarned, v))
}

// TotalCommissionEarnedLTE applies the LTE predicate on the "total_commission_earned" field.
func TotalCommissionEarnedLTE(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldTotalCommissionEarned, v))
}

// Tier1CommissionEarnedEQ applies the EQ predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedEQ(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier1CommissionEarned, v))
}

// Tier1CommissionEarnedNEQ applies the NEQ predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedNEQ(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldTier1CommissionEarned, v))
}

// Tier1CommissionEarnedIn applies the In predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedIn(vs ...float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldTier1CommissionEarned, vs...))
}

// Tier1CommissionEarnedNotIn applies the NotIn predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedNotIn(vs ...float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldTier1CommissionEarned, vs...))
}

// Tier1CommissionEarnedGT applies the GT predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedGT(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldTier1CommissionEarned, v))
}

// Tier1CommissionEarnedGTE applies the GTE predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedGTE(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldTier1CommissionEarned, v))
}

// Tier1CommissionEarnedLT applies the LT predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedLT(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldTier1CommissionEarned, v))
}

// Tier1CommissionEarnedLTE applies the LTE predicate on the "tier1_commission_earned" field.
func Tier1CommissionEarnedLTE(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldTier1CommissionEarned, v))
}

// Tier2CommissionEarnedEQ applies the EQ predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedEQ(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldTier2CommissionEarned, v))
}

// Tier2CommissionEarnedNEQ applies the NEQ predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedNEQ(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldTier2CommissionEarned, v))
}

// Tier2CommissionEarnedIn applies the In predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedIn(vs ...float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldTier2CommissionEarned, vs...))
}

// Tier2CommissionEarnedNotIn applies the NotIn predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedNotIn(vs ...float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldTier2CommissionEarned, vs...))
}

// Tier2CommissionEarnedGT applies the GT predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedGT(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldTier2CommissionEarned, v))
}

// Tier2CommissionEarnedGTE applies the GTE predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedGTE(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldTier2CommissionEarned, v))
}

// Tier2CommissionEarnedLT applies the LT predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedLT(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldTier2CommissionEarned, v))
}

// Tier2CommissionEarnedLTE applies the LTE predicate on the "tier2_commission_earned" field.
func Tier2CommissionEarnedLTE(v float64) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldTier2CommissionEarned, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldLastActivityAt, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldIsActive, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotNull(FieldExpiresAt))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldSource, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.ReferralAccount {
	return predicate.ReferralAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.ReferralAccount {
	return predicate.ReferralAccount(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReferralAccount) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReferralAccount) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReferralAccount) predicate.ReferralAccount {
	return predicate.ReferralAccount(sql.NotPredicates(p))
}
