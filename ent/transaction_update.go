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

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v float64) *TransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdate) AddAmount(v float64) *TransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransactionUpdate) SetCurrency(v string) *TransactionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCurrency(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TransactionUpdate) SetType(v transaction.Type) *TransactionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableType(v *transaction.Type) *TransactionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdate) SetStatus(v transaction.Status) *TransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableStatus(v *transaction.Status) *TransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSenderUserID sets the "sender_user_id" field.
func (_u *TransactionUpdate) SetSenderUserID(v int) *TransactionUpdate {
	_u.mutation.ResetSenderUserID()
	_u.mutation.SetSenderUserID(v)
	return _u
}

// SetNillableSenderUserID sets the "sender_user_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSenderUserID(v *int) *TransactionUpdate {
	if v != nil {
		_u.SetSenderUserID(*v)
	}
	return _u
}

// AddSenderUserID adds value to the "sender_user_id" field.
func (_u *TransactionUpdate) AddSenderUserID(v int) *TransactionUpdate {
	_u.mutation.AddSenderUserID(v)
	return _u
}

// ClearSenderUserID clears the value of the "sender_user_id" field.
func (_u *TransactionUpdate) ClearSenderUserID() *TransactionUpdate {
	_u.mutation.ClearSenderUserID()
	return _u
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (_u *TransactionUpdate) SetRecipientUserID(v int) *TransactionUpdate {
	_u.mutation.SetRecipientUserID(v)
	return _u
}

// SetNillableRecipientUserID sets the "recipient_user_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableRecipientUserID(v *int) *TransactionUpdate {
	if v != nil {
		_u.SetRecipientUserID(*v)
	}
	return _u
}

// ClearRecipientUserID clears the value of the "recipient_user_id" field.
func (_u *TransactionUpdate) ClearRecipientUserID() *TransactionUpdate {
	_u.mutation.ClearRecipientUserID()
	return _u
}

// SetReference sets the "reference" field.
func (_u *TransactionUpdate) SetReference(v string) *TransactionUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableReference(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *TransactionUpdate) ClearReference() *TransactionUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TransactionUpdate) SetDescription(v string) *TransactionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDescription(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TransactionUpdate) ClearDescription() *TransactionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TransactionUpdate) SetCompletedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCompletedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TransactionUpdate) ClearCompletedAt() *TransactionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRecipientID sets the "recipient" edge to the User entity by ID.
func (_u *TransactionUpdate) SetRecipientID(id int) *TransactionUpdate {
	_u.mutation.SetRecipientID(id)
	return _u
}

// SetNillableRecipientID sets the "recipient" edge to the User entity by ID if the given value is not nil.
func (_u *TransactionUpdate) SetNillableRecipientID(id *int) *TransactionUpdate {
	if id != nil {
		_u = _u.SetRecipientID(*id)
	}
	return _u
}

// SetRecipient sets the "recipient" edge to the User entity.
func (_u *TransactionUpdate) SetRecipient(v *User) *TransactionUpdate {
	return _u.SetRecipientID(v.ID)
}

// AddCommissionIDs adds the "commissions" edge to the Commission entity by IDs.
func (_u *TransactionUpdate) AddCommissionIDs(ids ...int) *TransactionUpdate {
	_u.mutation.AddCommissionIDs(ids...)
	return _u
}

// AddCommissions adds the "commissions" edges to the Commission entity.
func (_u *TransactionUpdate) AddCommissions(v ...*Commission) *TransactionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommissionIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (_u *TransactionUpdate) ClearRecipient() *TransactionUpdate {
	_u.mutation.ClearRecipient()
	return _u
}

// ClearCommissions clears all "commissions" edges to the Commission entity.
func (_u *TransactionUpdate) ClearCommissions() *TransactionUpdate {
	_u.mutation.ClearCommissions()
	return _u
}

// RemoveCommissionIDs removes the "commissions" edge to Commission entities by IDs.
func (_u *TransactionUpdate) RemoveCommissionIDs(ids ...int) *TransactionUpdate {
	_u.mutation.RemoveCommissionIDs(ids...)
	return _u
}

// RemoveCommissions removes "commissions" edges to Commission entities.
func (_u *TransactionUpdate) RemoveCommissions(v ...*Commission) *TransactionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := transaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Transaction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SenderUserID(); ok {
		_spec.SetField(transaction.FieldSenderUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSenderUserID(); ok {
		_spec.AddField(transaction.FieldSenderUserID, field.TypeInt, value)
	}
	if _u.mutation.SenderUserIDCleared() {
		_spec.ClearField(transaction.FieldSenderUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(transaction.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(transaction.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(transaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(transaction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(transaction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(transaction.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RecipientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.RecipientTable,
			Columns: []string{transaction.RecipientColumn},
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
			Table:   transaction.RecipientTable,
			Columns: []string{transaction.RecipientColumn},
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
	if _u.mutation.CommissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.CommissionsTable,
			Columns: []string{transaction.CommissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommissionsIDs(); len(nodes) > 0 && !_u.mutation.CommissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.CommissionsTable,
			Columns: []string{transaction.CommissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.CommissionsTable,
			Columns: []string{transaction.CommissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v float64) *TransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdateOne) AddAmount(v float64) *TransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransactionUpdateOne) SetCurrency(v string) *TransactionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCurrency(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TransactionUpdateOne) SetType(v transaction.Type) *TransactionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableType(v *transaction.Type) *TransactionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdateOne) SetStatus(v transaction.Status) *TransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableStatus(v *transaction.Status) *TransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSenderUserID sets the "sender_user_id" field.
func (_u *TransactionUpdateOne) SetSenderUserID(v int) *TransactionUpdateOne {
	_u.mutation.ResetSenderUserID()
	_u.mutation.SetSenderUserID(v)
	return _u
}

// SetNillableSenderUserID sets the "sender_user_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSenderUserID(v *int) *TransactionUpdateOne {
	if v != nil {
		_u.SetSenderUserID(*v)
	}
	return _u
}

// AddSenderUserID adds value to the "sender_user_id" field.
func (_u *TransactionUpdateOne) AddSenderUserID(v int) *TransactionUpdateOne {
	_u.mutation.AddSenderUserID(v)
	return _u
}

// ClearSenderUserID clears the value of the "sender_user_id" field.
func (_u *TransactionUpdateOne) ClearSenderUserID() *TransactionUpdateOne {
	_u.mutation.ClearSenderUserID()
	return _u
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (_u *TransactionUpdateOne) SetRecipientUserID(v int) *TransactionUpdateOne {
	_u.mutation.SetRecipientUserID(v)
	return _u
}

// SetNillableRecipientUserID sets the "recipient_user_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableRecipientUserID(v *int) *TransactionUpdateOne {
	if v != nil {
		_u.SetRecipientUserID(*v)
	}
	return _u
}

// ClearRecipientUserID clears the value of the "recipient_user_id" field.
func (_u *TransactionUpdateOne) ClearRecipientUserID() *TransactionUpdateOne {
	_u.mutation.ClearRecipientUserID()
	return _u
}

// SetReference sets the "reference" field.
func (_u *TransactionUpdateOne) SetReference(v string) *TransactionUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableReference(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *TransactionUpdateOne) ClearReference() *TransactionUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TransactionUpdateOne) SetDescription(v string) *TransactionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDescription(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TransactionUpdateOne) ClearDescription() *TransactionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TransactionUpdateOne) SetCompletedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCompletedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TransactionUpdateOne) ClearCompletedAt() *TransactionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRecipientID sets the "recipient" edge to the User entity by ID.
func (_u *TransactionUpdateOne) SetRecipientID(id int) *TransactionUpdateOne {
	_u.mutation.SetRecipientID(id)
	return _u
}

// SetNillableRecipientID sets the "recipient" edge to the User entity by ID if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableRecipientID(id *int) *TransactionUpdateOne {
	if id != nil {
		_u = _u.SetRecipientID(*id)
	}
	return _u
}

// SetRecipient sets the "recipient" edge to the User entity.
func (_u *TransactionUpdateOne) SetRecipient(v *User) *TransactionUpdateOne {
	return _u.SetRecipientID(v.ID)
}

// AddCommissionIDs adds the "commissions" edge to the Commission entity by IDs.
func (_u *TransactionUpdateOne) AddCommissionIDs(ids ...int) *TransactionUpdateOne {
	_u.mutation.AddCommissionIDs(ids...)
	return _u
}

// AddCommissions adds the "commissions" edges to the Commission entity.
func (_u *TransactionUpdateOne) AddCommissions(v ...*Commission) *TransactionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommissionIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (_u *TransactionUpdateOne) ClearRecipient() *TransactionUpdateOne {
	_u.mutation.ClearRecipient()
	return _u
}

// ClearCommissions clears all "commissions" edges to the Commission entity.
func (_u *TransactionUpdateOne) ClearCommissions() *TransactionUpdateOne {
	_u.mutation.ClearCommissions()
	return _u
}

// RemoveCommissionIDs removes the "commissions" edge to Commission entities by IDs.
func (_u *TransactionUpdateOne) RemoveCommissionIDs(ids ...int) *TransactionUpdateOne {
	_u.mutation.RemoveCommissionIDs(ids...)
	return _u
}

// RemoveCommissions removes "commissions" edges to Commission entities.
func (_u *TransactionUpdateOne) RemoveCommissions(v ...*Commission) *TransactionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommissionIDs(ids...)
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := transaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Transaction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SenderUserID(); ok {
		_spec.SetField(transaction.FieldSenderUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSenderUserID(); ok {
		_spec.AddField(transaction.FieldSenderUserID, field.TypeInt, value)
	}
	if _u.mutation.SenderUserIDCleared() {
		_spec.ClearField(transaction.FieldSenderUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(transaction.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(transaction.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(transaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(transaction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(transaction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(transaction.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RecipientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.RecipientTable,
			Columns: []string{transaction.RecipientColumn},
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
			Table:   transaction.RecipientTable,
			Columns: []string{transaction.RecipientColumn},
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
	if _u.mutation.CommissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.CommissionsTable,
			Columns: []string{transaction.CommissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommissionsIDs(); len(nodes) > 0 && !_u.mutation.CommissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.CommissionsTable,
			Columns: []string{transaction.CommissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.CommissionsTable,
			Columns: []string{transaction.CommissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
