// Code generated by ent, DO NOT EDIT.

package commission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fanvault/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldID, id))
}

// RecipientUserID applies equality check predicate on the "recipient_user_id" field. It's identical to RecipientUserIDEQ.
func RecipientUserID(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldRecipientUserID, v))
}

// EarningUserID applies equality check predicate on the "earning_user_id" field. It's identical to EarningUserIDEQ.
func EarningUserID(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldEarningUserID, v))
}

// SourceTransactionID applies equality check predicate on the "source_transaction_id" field. It's identical to SourceTransactionIDEQ.
func SourceTransactionID(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldSourceTransactionID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldTier, v))
}

// CommissionRate applies equality check predicate on the "commission_rate" field. It's identical to CommissionRateEQ.
func CommissionRate(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCommissionRate, v))
}

// BaseAmount applies equality check predicate on the "base_amount" field. It's identical to BaseAmountEQ.
func BaseAmount(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldBaseAmount, v))
}

// CommissionAmount applies equality check predicate on the "commission_amount" field. It's identical to CommissionAmountEQ.
func CommissionAmount(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCommissionAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCurrency, v))
}

// PaymentTransactionID applies equality check predicate on the "payment_transaction_id" field. It's identical to PaymentTransactionIDEQ.
func PaymentTransactionID(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldPaymentTransactionID, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldFailureReason, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldPaidAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCreatedAt, v))
}

// RecipientUserIDEQ applies the EQ predicate on the "recipient_user_id" field.
func RecipientUserIDEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldRecipientUserID, v))
}

// RecipientUserIDNEQ applies the NEQ predicate on the "recipient_user_id" field.
func RecipientUserIDNEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldRecipientUserID, v))
}

// RecipientUserIDIn applies the In predicate on the "recipient_user_id" field.
func RecipientUserIDIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldRecipientUserID, vs...))
}

// RecipientUserIDNotIn applies the NotIn predicate on the "recipient_user_id" field.
func RecipientUserIDNotIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldRecipientUserID, vs...))
}

// EarningUserIDEQ applies the EQ predicate on the "earning_user_id" field.
func EarningUserIDEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldEarningUserID, v))
}

// EarningUserIDNEQ applies the NEQ predicate on the "earning_user_id" field.
func EarningUserIDNEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldEarningUserID, v))
}

// EarningUserIDIn applies the In predicate on the "earning_user_id" field.
func EarningUserIDIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldEarningUserID, vs...))
}

// EarningUserIDNotIn applies the NotIn predicate on the "earning_user_id" field.
func EarningUserIDNotIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldEarningUserID, vs...))
}

// EarningUserIDGT applies the GT predicate on the "earning_user_id" field.
func EarningUserIDGT(v int) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldEarningUserID, v))
}

// EarningUserIDGTE applies the GTE predicate on the "earning_user_id" field.
func EarningUserIDGTE(v int) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldEarningUserID, v))
}

// EarningUserIDLT applies the LT predicate on the "earning_user_id" field.
func EarningUserIDLT(v int) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldEarningUserID, v))
}

// EarningUserIDLTE applies the LTE predicate on the "earning_user_id" field.
func EarningUserIDLTE(v int) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldEarningUserID, v))
}

// SourceTransactionIDEQ applies the EQ predicate on the "source_transaction_id" field.
func SourceTransactionIDEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldSourceTransactionID, v))
}

// SourceTransactionIDNEQ applies the NEQ predicate on the "source_transaction_id" field.
func SourceTransactionIDNEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldSourceTransactionID, v))
}

// SourceTransactionIDIn applies the In predicate on the "source_transaction_id" field.
func SourceTransactionIDIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldSourceTransactionID, vs...))
}

// SourceTransactionIDNotIn applies the NotIn predicate on the "source_transaction_id" field.
func SourceTransactionIDNotIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldSourceTransactionID, vs...))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v int) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v int) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v int) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v int) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldTier, v))
}

// CommissionRateEQ applies the EQ predicate on the "commission_rate" field.
func CommissionRateEQ(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCommissionRate, v))
}

// CommissionRateNEQ applies the NEQ predicate on the "commission_rate" field.
func CommissionRateNEQ(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldCommissionRate, v))
}

// CommissionRateIn applies the In predicate on the "commission_rate" field.
func CommissionRateIn(vs ...float64) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldCommissionRate, vs...))
}

// CommissionRateNotIn applies the NotIn predicate on the "commission_rate" field.
func CommissionRateNotIn(vs ...float64) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldCommissionRate, vs...))
}

// CommissionRateGT applies the GT predicate on the "commission_rate" field.
func CommissionRateGT(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldCommissionRate, v))
}

// CommissionRateGTE applies the GTE predicate on the "commission_rate" field.
func CommissionRateGTE(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldCommissionRate, v))
}

// CommissionRateLT applies the LT predicate on the "commission_rate" field.
func CommissionRateLT(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldCommissionRate, v))
}

// CommissionRateLTE applies the LTE predicate on the "commission_rate" field.
func CommissionRateLTE(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldCommissionRate, v))
}

// BaseAmountEQ applies the EQ predicate on the "base_amount" field.
func BaseAmountEQ(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldBaseAmount, v))
}

// BaseAmountNEQ applies the NEQ predicate on the "base_amount" field.
func BaseAmountNEQ(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldBaseAmount, v))
}

// BaseAmountIn applies the In predicate on the "base_amount" field.
func BaseAmountIn(vs ...float64) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldBaseAmount, vs...))
}

// BaseAmountNotIn applies the NotIn predicate on the "base_amount" field.
func BaseAmountNotIn(vs ...float64) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldBaseAmount, vs...))
}

// BaseAmountGT applies the GT predicate on the "base_amount" field.
func BaseAmountGT(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldBaseAmount, v))
}

// BaseAmountGTE applies the GTE predicate on the "base_amount" field.
func BaseAmountGTE(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldBaseAmount, v))
}

// BaseAmountLT applies the LT predicate on the "base_amount" field.
func BaseAmountLT(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldBaseAmount, v))
}

// BaseAmountLTE applies the LTE predicate on the "base_amount" field.
func BaseAmountLTE(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldBaseAmount, v))
}

// CommissionAmountEQ applies the EQ predicate on the "commission_amount" field.
func CommissionAmountEQ(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCommissionAmount, v))
}

// CommissionAmountNEQ applies the NEQ predicate on the "commission_amount" field.
func CommissionAmountNEQ(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldCommissionAmount, v))
}

// CommissionAmountIn applies the In predicate on the "commission_amount" field.
func CommissionAmountIn(vs ...float64) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldCommissionAmount, vs...))
}

// CommissionAmountNotIn applies the NotIn predicate on the "commission_amount" field.
func CommissionAmountNotIn(vs ...float64) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldCommissionAmount, vs...))
}

// CommissionAmountGT applies the GT predicate on the "commission_amount" field.
func CommissionAmountGT(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldCommissionAmount, v))
}

// CommissionAmountGTE applies the GTE predicate on the "commission_amount" field.
func CommissionAmountGTE(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldCommissionAmount, v))
}

// CommissionAmountLT applies the LT predicate on the "commission_amount" field.
func CommissionAmountLT(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldCommissionAmount, v))
}

// CommissionAmountLTE applies the LTE predicate on the "commission_amount" field.
func CommissionAmountLTE(v float64) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldCommissionAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Commission {
	return predicate.Commission(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Commission {
	return predicate.Commission(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Commission {
	return predicate.Commission(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Commission {
	return predicate.Commission(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Commission {
	return predicate.Commission(sql.FieldContainsFold(FieldCurrency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentTransactionIDEQ applies the EQ predicate on the "payment_transaction_id" field.
func PaymentTransactionIDEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDNEQ applies the NEQ predicate on the "payment_transaction_id" field.
func PaymentTransactionIDNEQ(v int) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDIn applies the In predicate on the "payment_transaction_id" field.
func PaymentTransactionIDIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldPaymentTransactionID, vs...))
}

// PaymentTransactionIDNotIn applies the NotIn predicate on the "payment_transaction_id" field.
func PaymentTransactionIDNotIn(vs ...int) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldPaymentTransactionID, vs...))
}

// PaymentTransactionIDGT applies the GT predicate on the "payment_transaction_id" field.
func PaymentTransactionIDGT(v int) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDGTE applies the GTE predicate on the "payment_transaction_id" field.
func PaymentTransactionIDGTE(v int) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDLT applies the LT predicate on the "payment_transaction_id" field.
func PaymentTransactionIDLT(v int) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDLTE applies the LTE predicate on the "payment_transaction_id" field.
func PaymentTransactionIDLTE(v int) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDIsNil applies the IsNil predicate on the "payment_transaction_id" field.
func PaymentTransactionIDIsNil() predicate.Commission {
	return predicate.Commission(sql.FieldIsNull(FieldPaymentTransactionID))
}

// PaymentTransactionIDNotNil applies the NotNil predicate on the "payment_transaction_id" field.
func PaymentTransactionIDNotNil() predicate.Commission {
	return predicate.Commission(sql.FieldNotNull(FieldPaymentTransactionID))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Commission {
	return predicate.Commission(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Commission {
	return predicate.Commission(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Commission {
	return predicate.Commission(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Commission {
	return predicate.Commission(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Commission {
	return predicate.Commission(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Commission {
	return predicate.Commission(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Commission {
	return predicate.Commission(sql.FieldContainsFold(FieldFailureReason, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.Commission {
	return predicate.Commission(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.Commission {
	return predicate.Commission(sql.FieldNotNull(FieldPaidAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Commission {
	return predicate.Commission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRecipient applies the HasEdge predicate on the "recipient" edge.
func HasRecipient() predicate.Commission {
	return predicate.Commission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecipientTable, RecipientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipientWith applies the HasEdge predicate on the "recipient" edge with a given conditions (other predicates).
func HasRecipientWith(preds ...predicate.User) predicate.Commission {
	return predicate.Commission(func(s *sql.Selector) {
		step := newRecipientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceTransaction applies the HasEdge predicate on the "source_transaction" edge.
func HasSourceTransaction() predicate.Commission {
	return predicate.Commission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTransactionTable, SourceTransactionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceTransactionWith applies the HasEdge predicate on the "source_transaction" edge with a given conditions (other predicates).
func HasSourceTransactionWith(preds ...predicate.Transaction) predicate.Commission {
	return predicate.Commission(func(s *sql.Selector) {
		step := newSourceTransactionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Commission) predicate.Commission {
	return predicate.Commission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Commission) predicate.Commission {
	return predicate.Commission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Commission) predicate.Commission {
	return predicate.Commission(sql.NotPredicates(p))
}
