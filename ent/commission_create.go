// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/ent/user"
)

// CommissionCreate is the builder for creating a Commission entity.
type CommissionCreate struct {
	config
	mutation *CommissionMutation
	hooks    []Hook
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (_c *CommissionCreate) SetRecipientUserID(v int) *CommissionCreate {
	_c.mutation.SetRecipientUserID(v)
	return _c
}

// SetEarningUserID sets the "earning_user_id" field.
func (_c *CommissionCreate) SetEarningUserID(v int) *CommissionCreate {
	_c.mutation.SetEarningUserID(v)
	return _c
}

// SetSourceTransactionID sets the "source_transaction_id" field.
func (_c *CommissionCreate) SetSourceTransactionID(v int) *CommissionCreate {
	_c.mutation.SetSourceTransactionID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *CommissionCreate) SetTier(v int) *CommissionCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetCommissionRate sets the "commission_rate" field.
func (_c *CommissionCreate) SetCommissionRate(v float64) *CommissionCreate {
	_c.mutation.SetCommissionRate(v)
	return _c
}

// SetBaseAmount sets the "base_amount" field.
func (_c *CommissionCreate) SetBaseAmount(v float64) *CommissionCreate {
	_c.mutation.SetBaseAmount(v)
	return _c
}

// SetCommissionAmount sets the "commission_amount" field.
func (_c *CommissionCreate) SetCommissionAmount(v float64) *CommissionCreate {
	_c.mutation.SetCommissionAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *CommissionCreate) SetCurrency(v string) *CommissionCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *CommissionCreate) SetNillableCurrency(v *string) *CommissionCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommissionCreate) SetStatus(v commission.Status) *CommissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommissionCreate) SetNillableStatus(v *commission.Status) *CommissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (_c *CommissionCreate) SetPaymentTransactionID(v int) *CommissionCreate {
	_c.mutation.SetPaymentTransactionID(v)
	return _c
}

// SetNillablePaymentTransactionID sets the "payment_transaction_id" field if the given value is not nil.
func (_c *CommissionCreate) SetNillablePaymentTransactionID(v *int) *CommissionCreate {
	if v != nil {
		_c.SetPaymentTransactionID(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *CommissionCreate) SetFailureReason(v string) *CommissionCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *CommissionCreate) SetNillableFailureReason(v *string) *CommissionCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *CommissionCreate) SetPaidAt(v time.Time) *CommissionCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *CommissionCreate) SetNillablePaidAt(v *time.Time) *CommissionCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommissionCreate) SetCreatedAt(v time.Time) *CommissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommissionCreate) SetNillableCreatedAt(v *time.Time) *CommissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRecipientID sets the "recipient" edge to the User entity by ID.
func (_c *CommissionCreate) SetRecipientID(id int) *CommissionCreate {
	_c.mutation.SetRecipientID(id)
	return _c
}

// SetRecipient sets the "recipient" edge to the User entity.
func (_c *CommissionCreate) SetRecipient(v *User) *CommissionCreate {
	return _c.SetRecipientID(v.ID)
}

// SetSourceTransaction sets the "source_transaction" edge to the Transaction entity.
func (_c *CommissionCreate) SetSourceTransaction(v *Transaction) *CommissionCreate {
	return _c.SetSourceTransactionID(v.ID)
}

// Mutation returns the CommissionMutation object of the builder.
func (_c *CommissionCreate) Mutation() *CommissionMutation {
	return _c.mutation
}

// Save creates the Commission in the database.
func (_c *CommissionCreate) Save(ctx context.Context) (*Commission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommissionCreate) SaveX(ctx context.Context) *Commission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommissionCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := commission.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := commission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommissionCreate) check() error {
	if _, ok := _c.mutation.RecipientUserID(); !ok {
		return &ValidationError{Name: "recipient_user_id", err: errors.New(`ent: missing required field "Commission.recipient_user_id"`)}
	}
	if _, ok := _c.mutation.EarningUserID(); !ok {
		return &ValidationError{Name: "earning_user_id", err: errors.New(`ent: missing required field "Commission.earning_user_id"`)}
	}
	if _, ok := _c.mutation.SourceTransactionID(); !ok {
		return &ValidationError{Name: "source_transaction_id", err: errors.New(`ent: missing required field "Commission.source_transaction_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Commission.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := commission.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Commission.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommissionRate(); !ok {
		return &ValidationError{Name: "commission_rate", err: errors.New(`ent: missing required field "Commission.commission_rate"`)}
	}
	if _, ok := _c.mutation.BaseAmount(); !ok {
		return &ValidationError{Name: "base_amount", err: errors.New(`ent: missing required field "Commission.base_amount"`)}
	}
	if _, ok := _c.mutation.CommissionAmount(); !ok {
		return &ValidationError{Name: "commission_amount", err: errors.New(`ent: missing required field "Commission.commission_amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Commission.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := commission.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Commission.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Commission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Commission.created_at"`)}
	}
	if len(_c.mutation.RecipientIDs()) == 0 {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required edge "Commission.recipient"`)}
	}
	if len(_c.mutation.SourceTransactionIDs()) == 0 {
		return &ValidationError{Name: "source_transaction", err: errors.New(`ent: missing required edge "Commission.source_transaction"`)}
	}
	return nil
}

func (_c *CommissionCreate) sqlSave(ctx context.Context) (*Commission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommissionCreate) createSpec() (*Commission, *sqlgraph.CreateSpec) {
	var (
		_node = &Commission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commission.Table, sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EarningUserID(); ok {
		_spec.SetField(commission.FieldEarningUserID, field.TypeInt, value)
		_node.EarningUserID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(commission.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.CommissionRate(); ok {
		_spec.SetField(commission.FieldCommissionRate, field.TypeFloat64, value)
		_node.CommissionRate = value
	}
	if value, ok := _c.mutation.BaseAmount(); ok {
		_spec.SetField(commission.FieldBaseAmount, field.TypeFloat64, value)
		_node.BaseAmount = value
	}
	if value, ok := _c.mutation.CommissionAmount(); ok {
		_spec.SetField(commission.FieldCommissionAmount, field.TypeFloat64, value)
		_node.CommissionAmount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(commission.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PaymentTransactionID(); ok {
		_spec.SetField(commission.FieldPaymentTransactionID, field.TypeInt, value)
		_node.PaymentTransactionID = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(commission.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(commission.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RecipientIDs(); len(nodes) > 0 {
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
		_node.RecipientUserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceTransactionIDs(); len(nodes) > 0 {
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
		_node.SourceTransactionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommissionCreateBulk is the builder for creating many Commission entities in bulk.
type CommissionCreateBulk struct {
	config
	err      error
	builders []*CommissionCreate
}

// Save creates the Commission entities in the database.
func (_c *CommissionCreateBulk) Save(ctx context.Context) ([]*Commission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Commission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CommissionCreateBulk) SaveX(ctx context.Context) []*Commission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
