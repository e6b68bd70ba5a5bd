// Code generated by ent, DO NOT EDIT.

package commission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the commission type in the database.
	Label = "commission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecipientUserID holds the string denoting the recipient_user_id field in the database.
	FieldRecipientUserID = "recipient_user_id"
	// FieldEarningUserID holds the string denoting the earning_user_id field in the database.
	FieldEarningUserID = "earning_user_id"
	// FieldSourceTransactionID holds the string denoting the source_transaction_id field in the database.
	FieldSourceTransactionID = "source_transaction_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldCommissionRate holds the string denoting the commission_rate field in the database.
	FieldCommissionRate = "commission_rate"
	// FieldBaseAmount holds the string denoting the base_amount field in the database.
	FieldBaseAmount = "base_amount"
	// FieldCommissionAmount holds the string denoting the commission_amount field in the database.
	FieldCommissionAmount = "commission_amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPaymentTransactionID holds the string denoting the payment_transaction_id field in the database.
	FieldPaymentTransactionID = "payment_transaction_id"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldPaidAt holds the string denoting the paid_at field in the database.
	FieldPaidAt = "paid_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRecipient holds the string denoting the recipient edge name in mutations.
	EdgeRecipient = "recipient"
	// EdgeSourceTransaction holds the string denoting the source_transaction edge name in mutations.
	EdgeSourceTransaction = "source_transaction"
	// Table holds the table name of the commission in the database.
	Table = "commissions"
	// RecipientTable is the table that holds the recipient relation/edge.
	RecipientTable = "commissions"
	// RecipientInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	RecipientInverseTable = "users"
	// RecipientColumn is the table column denoting the recipient relation/edge.
	RecipientColumn = "recipient_user_id"
	// SourceTransactionTable is the table that holds the source_transaction relation/edge.
	SourceTransactionTable = "commissions"
	// SourceTransactionInverseTable is the table name for the Transaction entity.
	// It exists in this package in order to avoid circular dependency with the "transaction" package.
	SourceTransactionInverseTable = "transactions"
	// SourceTransactionColumn is the table column denoting the source_transaction relation/edge.
	SourceTransactionColumn = "source_transaction_id"
)

// Columns holds all SQL columns for commission fields.
var Columns = []string{
	FieldID,
	FieldRecipientUserID,
	FieldEarningUserID,
	FieldSourceTransactionID,
	FieldTier,
	FieldCommissionRate,
	FieldBaseAmount,
	FieldCommissionAmount,
	FieldCurrency,
	FieldStatus,
	FieldPaymentTransactionID,
	FieldFailureReason,
	FieldPaidAt,
	FieldCreatedAt,
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
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(int) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("commission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Commission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecipientUserID orders the results by the recipient_user_id field.
func ByRecipientUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientUserID, opts...).ToFunc()
}

// ByEarningUserID orders the results by the earning_user_id field.
func ByEarningUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarningUserID, opts...).ToFunc()
}

// BySourceTransactionID orders the results by the source_transaction_id field.
func BySourceTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTransactionID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByCommissionRate orders the results by the commission_rate field.
func ByCommissionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionRate, opts...).ToFunc()
}

// ByBaseAmount orders the results by the base_amount field.
func ByBaseAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseAmount, opts...).ToFunc()
}

// ByCommissionAmount orders the results by the commission_amount field.
func ByCommissionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPaymentTransactionID orders the results by the payment_transaction_id field.
func ByPaymentTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentTransactionID, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByPaidAt orders the results by the paid_at field.
func ByPaidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRecipientField orders the results by recipient field.
func ByRecipientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipientStep(), sql.OrderByField(field, opts...))
	}
}

// BySourceTransactionField orders the results by source_transaction field.
func BySourceTransactionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceTransactionStep(), sql.OrderByField(field, opts...))
	}
}
func newRecipientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecipientTable, RecipientColumn),
	)
}
func newSourceTransactionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceTransactionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceTransactionTable, SourceTransactionColumn),
	)
}
