// Code generated by ent, DO NOT EDIT.

package referralaccount

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the referralaccount type in the database.
	Label = "referral_account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldDirectReferrals holds the string denoting the direct_referrals field in the database.
	FieldDirectReferrals = "direct_referrals"
	// FieldTier1ReferrerID holds the string denoting the tier1_referrer_id field in the database.
	FieldTier1ReferrerID = "tier1_referrer_id"
	// FieldTier2ReferrerID holds the string denoting the tier2_referrer_id field in the database.
	FieldTier2ReferrerID = "tier2_referrer_id"
	// FieldTotalReferrals holds the string denoting the total_referrals field in the database.
	FieldTotalReferrals = "total_referrals"
	// FieldActiveReferrals holds the string denoting the active_referrals field in the database.
	FieldActiveReferrals = "active_referrals"
	// FieldTotalCommissionEarned holds the string denoting the total_commission_earned field in the database.
	FieldTotalCommissionEarned = "total_commission_earned"
	// FieldTier1CommissionEarned holds the string denoting the tier1_commission_earned field in the database.
	FieldTier1CommissionEarned = "tier1_commission_earned"
	// FieldTier2CommissionEarned holds the string denoting the tier2_commission_earned field in the database.
	FieldTier2CommissionEarned = "tier2_commission_earned"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the referralaccount in the database.
	Table = "referral_accounts"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "referral_accounts"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_user_id"
)

// Columns holds all SQL columns for referralaccount fields.
var Columns = []string{
	FieldID,
	FieldOwnerUserID,
	FieldCode,
	FieldDirectReferrals,
	FieldTier1ReferrerID,
	FieldTier2ReferrerID,
	FieldTotalReferrals,
	FieldActiveReferrals,
	FieldTotalCommissionEarned,
	FieldTier1CommissionEarned,
	FieldTier2CommissionEarned,
	FieldLastActivityAt,
	FieldIsActive,
	FieldExpiresAt,
	FieldSource,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// DefaultTotalReferrals holds the default value on creation for the "total_referrals" field.
	DefaultTotalReferrals int
	// TotalReferralsValidator is a validator for the "total_referrals" field. It is called by the builders before save.
	TotalReferralsValidator func(int) error
	// DefaultActiveReferrals holds the default value on creation for the "active_referrals" field.
	DefaultActiveReferrals int
	// ActiveReferralsValidator is a validator for the "active_referrals" field. It is called by the builders before save.
	ActiveReferralsValidator func(int) error
	// DefaultTotalCommissionEarned holds the default value on creation for the "total_commission_earned" field.
	DefaultTotalCommissionEarned float64
	// DefaultTier1CommissionEarned holds the default value on creation for the "tier1_commission_earned" field.
	DefaultTier1CommissionEarned float64
	// DefaultTier2CommissionEarned holds the default value on creation for the "tier2_commission_earned" field.
	DefaultTier2CommissionEarned float64
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceOrganic is the default value of the Source enum.
const DefaultSource = SourceOrganic

// Source values.
const (
	SourceOrganic    Source = "organic"
	SourceCampaign   Source = "campaign"
	SourceInfluencer Source = "influencer"
	SourcePartner    Source = "partner"
	SourceMigration  Source = "migration"
	SourceReferral   Source = "referral"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceOrganic, SourceCampaign, SourceInfluencer, SourcePartner, SourceMigration, SourceReferral:
		return nil
	default:
		return fmt.Errorf("referralaccount: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the ReferralAccount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByTier1ReferrerID orders the results by the tier1_referrer_id field.
func ByTier1ReferrerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier1ReferrerID, opts...).ToFunc()
}

// ByTier2ReferrerID orders the results by the tier2_referrer_id field.
func ByTier2ReferrerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier2ReferrerID, opts...).ToFunc()
}

// ByTotalReferrals orders the results by the total_referrals field.
func ByTotalReferrals(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalReferrals, opts...).ToFunc()
}

// ByActiveReferrals orders the results by the active_referrals field.
func ByActiveReferrals(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveReferrals, opts...).ToFunc()
}

// ByTotalCommissionEarned orders the results by the total_commission_earned field.
func ByTotalCommissionEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCommissionEarned, opts...).ToFunc()
}

// ByTier1CommissionEarned orders the results by the tier1_commission_earned field.
func ByTier1CommissionEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier1CommissionEarned, opts...).ToFunc()
}

// ByTier2CommissionEarned orders the results by the tier2_commission_earned field.
func ByTier2CommissionEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier2CommissionEarned, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, OwnerTable, OwnerColumn),
	)
}
