// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/predicate"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/ent/user"
)

// CommissionUpdate is the builder for updating Commission entities.
type CommissionUpdate struct {
	config
	hooks    []Hook
	mutation *CommissionMutation
}

// Where appends a list predicates to the CommissionUpdate builder.
func (_u *CommissionUpdate) Where(ps ...predicate.Commission) *CommissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (_u *CommissionUpdate) SetRecipientUserID(v int) *CommissionUpdate {
	_u.mutation.SetRecipientUserID(v)
	return _u
}

// SetNillableRecipientUserID sets the "recipient_user_id" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableRecipientUserID(v *int) *CommissionUpdate {
	if v != nil {
		_u.SetRecipientUserID(*v)
	}
	return _u
}

// SetEarningUserID sets the "earning_user_id" field.
func (_u *CommissionUpdate) SetEarningUserID(v int) *CommissionUpdate {
	_u.mutation.ResetEarningUserID()
	_u.mutation.SetEarningUserID(v)
	return _u
}

// SetNillableEarningUserID sets the "earning_user_id" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableEarningUserID(v *int) *CommissionUpdate {
	if v != nil {
		_u.SetEarningUserID(*v)
	}
	return _u
}

// AddEarningUserID adds value to the "earning_user_id" field.
func (_u *CommissionUpdate) AddEarningUserID(v int) *CommissionUpdate {
	_u.mutation.AddEarningUserID(v)
	return _u
}

// SetSourceTransactionID sets the "source_transaction_id" field.
func (_u *CommissionUpdate) SetSourceTransactionID(v int) *CommissionUpdate {
	_u.mutation.SetSourceTransactionID(v)
	return _u
}

// SetNillableSourceTransactionID sets the "source_transaction_id" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableSourceTransactionID(v *int) *CommissionUpdate {
	if v != nil {
		_u.SetSourceTransactionID(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *CommissionUpdate) SetTier(v int) *CommissionUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableTier(v *int) *CommissionUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *CommissionUpdate) AddTier(v int) *CommissionUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetCommissionRate sets the "commission_rate" field.
func (_u *CommissionUpdate) SetCommissionRate(v float64) *CommissionUpdate {
	_u.mutation.ResetCommissionRate()
	_u.mutation.SetCommissionRate(v)
	return _u
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableCommissionRate(v *float64) *CommissionUpdate {
	if v != nil {
		_u.SetCommissionRate(*v)
	}
	return _u
}

// AddCommissionRate adds value to the "commission_rate" field.
func (_u *CommissionUpdate) AddCommissionRate(v float64) *CommissionUpdate {
	_u.mutation.AddCommissionRate(v)
	return _u
}

// SetBaseAmount sets the "base_amount" field.
func (_u *CommissionUpdate) SetBaseAmount(v float64) *CommissionUpdate {
	_u.mutation.ResetBaseAmount()
	_u.mutation.SetBaseAmount(v)
	return _u
}

// SetNillableBaseAmount sets the "base_amount" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableBaseAmount(v *float64) *CommissionUpdate {
	if v != nil {
		_u.SetBaseAmount(*v)
	}
	return _u
}

// AddBaseAmount adds value to the "base_amount" field.
func (_u *CommissionUpdate) AddBaseAmount(v float64) *CommissionUpdate {
	_u.mutation.AddBaseAmount(v)
	return _u
}

// SetCommissionAmount sets the "commission_amount" field.
func (_u *CommissionUpdate) SetCommissionAmount(v float64) *CommissionUpdate {
	_u.mutation.ResetCommissionAmount()
	_u.mutation.SetCommissionAmount(v)
	return _u
}

// SetNillableCommissionAmount sets the "commission_amount" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableCommissionAmount(v *float64) *CommissionUpdate {
	if v != nil {
		_u.SetCommissionAmount(*v)
	}
	return _u
}

// AddCommissionAmount adds value to the "commission_amount" field.
func (_u *CommissionUpdate) AddCommissionAmount(v float64) *CommissionUpdate {
	_u.mutation.AddCommissionAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CommissionUpdate) SetCurrency(v string) *CommissionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableCurrency(v *string) *CommissionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionUpdate) SetStatus(v commission.Status) *CommissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableStatus(v *commission.Status) *CommissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (_u *CommissionUpdate) SetPaymentTransactionID(v int) *CommissionUpdate {
	_u.mutation.ResetPaymentTransactionID()
	_u.mutation.SetPaymentTransactionID(v)
	return _u
}

// SetNillablePaymentTransactionID sets the "payment_transaction_id" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillablePaymentTransactionID(v *int) *CommissionUpdate {
	if v != nil {
		_u.SetPaymentTransactionID(*v)
	}
	return _u
}

// AddPaymentTransactionID adds value to the "payment_transaction_id" field.
func (_u *CommissionUpdate) AddPaymentTransactionID(v int) *CommissionUpdate {
	_u.mutation.AddPaymentTransactionID(v)
	return _u
}

// ClearPaymentTransactionID clears the value of the "payment_transaction_id" field.
func (_u *CommissionUpdate) ClearPaymentTransactionID() *CommissionUpdate {
	_u.mutation.ClearPaymentTransactionID()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *CommissionUpdate) SetFailureReason(v string) *CommissionUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillableFailureReason(v *string) *CommissionUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *CommissionUpdate) ClearFailureReason() *CommissionUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *CommissionUpdate) SetPaidAt(v time.Time) *CommissionUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *CommissionUpdate) SetNillablePaidAt(v *time.Time) *CommissionUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *CommissionUpdate) ClearPaidAt() *CommissionUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetRecipientID sets the "recipient" edge to the User entity by ID.
func (_u *CommissionUpdate) SetRecipientID(id int) *CommissionUpdate {
	_u.mutation.SetRecipientID(id)
	return _u
}

// SetRecipient sets the "recipient" edge to the User entity.
func (_u *CommissionUpdate) SetRecipient(v *User) *CommissionUpdate {
	return _u.SetRecipientID(v.ID)
}

// SetSourceTransaction sets the "source_transaction" edge to the Transaction entity.
func (_u *CommissionUpdate) SetSourceTransaction(v *Transaction) *CommissionUpdate {
	return _u.SetSourceTransactionID(v.ID)
}

// Mutation returns the CommissionMutation object of the builder.
func (_u *CommissionUpdate) Mutation() *CommissionMutation {
	return _u.mutation
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (_u *CommissionUpdate) ClearRecipient() *CommissionUpdate {
	_u.mutation.ClearRecipient()
	return _u
}

// ClearSourceTransaction clears the "source_transaction" edge to the Transaction entity.
func (_u *CommissionUpdate) ClearSourceTransaction() *CommissionUpdate {
	_u.mutation.ClearSourceTransaction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := commission.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Commission.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := commission.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Commission.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commission.status": %w`, err)}
		}
	}
	if _u.mutation.RecipientCleared() && len(_u.mutation.RecipientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Commission.recipient"`)
	}
	if _u.mutation.SourceTransactionCleared() && len(_u.mutation.SourceTransactionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Commission.source_transaction"`)
	}
	return nil
}

func (_u *CommissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commission.Table, commission.Columns, sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EarningUserID(); ok {
		_spec.SetField(commission.FieldEarningUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEarningUserID(); ok {
		_spec.AddField(commission.FieldEarningUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(commission.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(commission.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommissionRate(); ok {
		_spec.SetField(commission.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionRate(); ok {
		_spec.AddField(commission.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaseAmount(); ok {
		_spec.SetField(commission.FieldBaseAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseAmount(); ok {
		_spec.AddField(commission.FieldBaseAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CommissionAmount(); ok {
		_spec.SetField(commission.FieldCommissionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionAmount(); ok {
		_spec.AddField(commission.FieldCommissionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(commission.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentTransactionID(); ok {
		_spec.SetField(commission.FieldPaymentTransactionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPaymentTransactionID(); ok {
		_spec.AddField(commission.FieldPaymentTransactionID, field.TypeInt, value)
	}
	if _u.mutation.PaymentTransactionIDCleared() {
		_spec.ClearField(commission.FieldPaymentTransactionID, field.TypeInt)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(commission.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(commission.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(commission.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(commission.FieldPaidAt, field.TypeTime)
	}
	if _u.mutation.RecipientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.RecipientTable,
			Columns: []string{commission.RecipientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.RecipientTable,
			Columns: []string{commission.RecipientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceTransactionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.SourceTransactionTable,
			Columns: []string{commission.SourceTransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceTransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.SourceTransactionTable,
			Columns: []string{commission.SourceTransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommissionUpdateOne is the builder for updating a single Commission entity.
type CommissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommissionMutation
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (_u *CommissionUpdateOne) SetRecipientUserID(v int) *CommissionUpdateOne {
	_u.mutation.SetRecipientUserID(v)
	return _u
}

// SetNillableRecipientUserID sets the "recipient_user_id" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableRecipientUserID(v *int) *CommissionUpdateOne {
	if v != nil {
		_u.SetRecipientUserID(*v)
	}
	return _u
}

// SetEarningUserID sets the "earning_user_id" field.
func (_u *CommissionUpdateOne) SetEarningUserID(v int) *CommissionUpdateOne {
	_u.mutation.ResetEarningUserID()
	_u.mutation.SetEarningUserID(v)
	return _u
}

// SetNillableEarningUserID sets the "earning_user_id" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableEarningUserID(v *int) *CommissionUpdateOne {
	if v != nil {
		_u.SetEarningUserID(*v)
	}
	return _u
}

// AddEarningUserID adds value to the "earning_user_id" field.
func (_u *CommissionUpdateOne) AddEarningUserID(v int) *CommissionUpdateOne {
	_u.mutation.AddEarningUserID(v)
	return _u
}

// SetSourceTransactionID sets the "source_transaction_id" field.
func (_u *CommissionUpdateOne) SetSourceTransactionID(v int) *CommissionUpdateOne {
	_u.mutation.SetSourceTransactionID(v)
	return _u
}

// SetNillableSourceTransactionID sets the "source_transaction_id" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableSourceTransactionID(v *int) *CommissionUpdateOne {
	if v != nil {
		_u.SetSourceTransactionID(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *CommissionUpdateOne) SetTier(v int) *CommissionUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableTier(v *int) *CommissionUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *CommissionUpdateOne) AddTier(v int) *CommissionUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetCommissionRate sets the "commission_rate" field.
func (_u *CommissionUpdateOne) SetCommissionRate(v float64) *CommissionUpdateOne {
	_u.mutation.ResetCommissionRate()
	_u.mutation.SetCommissionRate(v)
	return _u
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableCommissionRate(v *float64) *CommissionUpdateOne {
	if v != nil {
		_u.SetCommissionRate(*v)
	}
	return _u
}

// AddCommissionRate adds value to the "commission_rate" field.
func (_u *CommissionUpdateOne) AddCommissionRate(v float64) *CommissionUpdateOne {
	_u.mutation.AddCommissionRate(v)
	return _u
}

// SetBaseAmount sets the "base_amount" field.
func (_u *CommissionUpdateOne) SetBaseAmount(v float64) *CommissionUpdateOne {
	_u.mutation.ResetBaseAmount()
	_u.mutation.SetBaseAmount(v)
	return _u
}

// SetNillableBaseAmount sets the "base_amount" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableBaseAmount(v *float64) *CommissionUpdateOne {
	if v != nil {
		_u.SetBaseAmount(*v)
	}
	return _u
}

// AddBaseAmount adds value to the "base_amount" field.
func (_u *CommissionUpdateOne) AddBaseAmount(v float64) *CommissionUpdateOne {
	_u.mutation.AddBaseAmount(v)
	return _u
}

// SetCommissionAmount sets the "commission_amount" field.
func (_u *CommissionUpdateOne) SetCommissionAmount(v float64) *CommissionUpdateOne {
	_u.mutation.ResetCommissionAmount()
	_u.mutation.SetCommissionAmount(v)
	return _u
}

// SetNillableCommissionAmount sets the "commission_amount" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableCommissionAmount(v *float64) *CommissionUpdateOne {
	if v != nil {
		_u.SetCommissionAmount(*v)
	}
	return _u
}

// AddCommissionAmount adds value to the "commission_amount" field.
func (_u *CommissionUpdateOne) AddCommissionAmount(v float64) *CommissionUpdateOne {
	_u.mutation.AddCommissionAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CommissionUpdateOne) SetCurrency(v string) *CommissionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableCurrency(v *string) *CommissionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionUpdateOne) SetStatus(v commission.Status) *CommissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableStatus(v *commission.Status) *CommissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (_u *CommissionUpdateOne) SetPaymentTransactionID(v int) *CommissionUpdateOne {
	_u.mutation.ResetPaymentTransactionID()
	_u.mutation.SetPaymentTransactionID(v)
	return _u
}

// SetNillablePaymentTransactionID sets the "payment_transaction_id" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillablePaymentTransactionID(v *int) *CommissionUpdateOne {
	if v != nil {
		_u.SetPaymentTransactionID(*v)
	}
	return _u
}

// AddPaymentTransactionID adds value to the "payment_transaction_id" field.
func (_u *CommissionUpdateOne) AddPaymentTransactionID(v int) *CommissionUpdateOne {
	_u.mutation.AddPaymentTransactionID(v)
	return _u
}

// ClearPaymentTransactionID clears the value of the "payment_transaction_id" field.
func (_u *CommissionUpdateOne) ClearPaymentTransactionID() *CommissionUpdateOne {
	_u.mutation.ClearPaymentTransactionID()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *CommissionUpdateOne) SetFailureReason(v string) *CommissionUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillableFailureReason(v *string) *CommissionUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *CommissionUpdateOne) ClearFailureReason() *CommissionUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *CommissionUpdateOne) SetPaidAt(v time.Time) *CommissionUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *CommissionUpdateOne) SetNillablePaidAt(v *time.Time) *CommissionUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *CommissionUpdateOne) ClearPaidAt() *CommissionUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetRecipientID sets the "recipient" edge to the User entity by ID.
func (_u *CommissionUpdateOne) SetRecipientID(id int) *CommissionUpdateOne {
	_u.mutation.SetRecipientID(id)
	return _u
}

// SetRecipient sets the "recipient" edge to the User entity.
func (_u *CommissionUpdateOne) SetRecipient(v *User) *CommissionUpdateOne {
	return _u.SetRecipientID(v.ID)
}

// SetSourceTransaction sets the "source_transaction" edge to the Transaction entity.
func (_u *CommissionUpdateOne) SetSourceTransaction(v *Transaction) *CommissionUpdateOne {
	return _u.SetSourceTransactionID(v.ID)
}

// Mutation returns the CommissionMutation object of the builder.
func (_u *CommissionUpdateOne) Mutation() *CommissionMutation {
	return _u.mutation
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (_u *CommissionUpdateOne) ClearRecipient() *CommissionUpdateOne {
	_u.mutation.ClearRecipient()
	return _u
}

// ClearSourceTransaction clears the "source_transaction" edge to the Transaction entity.
func (_u *CommissionUpdateOne) ClearSourceTransaction() *CommissionUpdateOne {
	_u.mutation.ClearSourceTransaction()
	return _u
}

// Where appends a list predicates to the CommissionUpdate builder.
func (_u *CommissionUpdateOne) Where(ps ...predicate.Commission) *CommissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommissionUpdateOne) Select(field string, fields ...string) *CommissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Commission entity.
func (_u *CommissionUpdateOne) Save(ctx context.Context) (*Commission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionUpdateOne) SaveX(ctx context.Context) *Commission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := commission.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Commission.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := commission.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Commission.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commission.status": %w`, err)}
		}
	}
	if _u.mutation.RecipientCleared() && len(_u.mutation.RecipientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Commission.recipient"`)
	}
	if _u.mutation.SourceTransactionCleared() && len(_u.mutation.SourceTransactionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Commission.source_transaction"`)
	}
	return nil
}

func (_u *CommissionUpdateOne) sqlSave(ctx context.Context) (_node *Commission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commission.Table, commission.Columns, sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Commission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commission.FieldID)
		for _, f := range fields {
			if !commission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EarningUserID(); ok {
		_spec.SetField(commission.FieldEarningUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEarningUserID(); ok {
		_spec.AddField(commission.FieldEarningUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(commission.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(commission.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommissionRate(); ok {
		_spec.SetField(commission.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionRate(); ok {
		_spec.AddField(commission.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaseAmount(); ok {
		_spec.SetField(commission.FieldBaseAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseAmount(); ok {
		_spec.AddField(commission.FieldBaseAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CommissionAmount(); ok {
		_spec.SetField(commission.FieldCommissionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionAmount(); ok {
		_spec.AddField(commission.FieldCommissionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(commission.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentTransactionID(); ok {
		_spec.SetField(commission.FieldPaymentTransactionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPaymentTransactionID(); ok {
		_spec.AddField(commission.FieldPaymentTransactionID, field.TypeInt, value)
	}
	if _u.mutation.PaymentTransactionIDCleared() {
		_spec.ClearField(commission.FieldPaymentTransactionID, field.TypeInt)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(commission.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(commission.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(commission.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(commission.FieldPaidAt, field.TypeTime)
	}
	if _u.mutation.RecipientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.RecipientTable,
			Columns: []string{commission.RecipientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.RecipientTable,
			Columns: []string{commission.RecipientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceTransactionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.SourceTransactionTable,
			Columns: []string{commission.SourceTransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceTransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commission.SourceTransactionTable,
			Columns: []string{commission.SourceTransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Commission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
