// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fanvault/backend/ent/predicate"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/user"
)

// ReferralAccountUpdate is the builder for updating ReferralAccount entities.
type ReferralAccountUpdate struct {
	config
	hooks    []Hook
	mutation *ReferralAccountMutation
}

// Where appends a list predicates to the ReferralAccountUpdate builder.
func (_u *ReferralAccountUpdate) Where(ps ...predicate.ReferralAccount) *ReferralAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *ReferralAccountUpdate) SetOwnerUserID(v int) *ReferralAccountUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableOwnerUserID(v *int) *ReferralAccountUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *ReferralAccountUpdate) SetCode(v string) *ReferralAccountUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableCode(v *string) *ReferralAccountUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDirectReferrals sets the "direct_referrals" field.
func (_u *ReferralAccountUpdate) SetDirectReferrals(v []int) *ReferralAccountUpdate {
	_u.mutation.SetDirectReferrals(v)
	return _u
}

// AppendDirectReferrals appends value to the "direct_referrals" field.
func (_u *ReferralAccountUpdate) AppendDirectReferrals(v []int) *ReferralAccountUpdate {
	_u.mutation.AppendDirectReferrals(v)
	return _u
}

// ClearDirectReferrals clears the value of the "direct_referrals" field.
func (_u *ReferralAccountUpdate) ClearDirectReferrals() *ReferralAccountUpdate {
	_u.mutation.ClearDirectReferrals()
	return _u
}

// SetTier1ReferrerID sets the "tier1_referrer_id" field.
func (_u *ReferralAccountUpdate) SetTier1ReferrerID(v int) *ReferralAccountUpdate {
	_u.mutation.ResetTier1ReferrerID()
	_u.mutation.SetTier1ReferrerID(v)
	return _u
}

// SetNillableTier1ReferrerID sets the "tier1_referrer_id" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableTier1ReferrerID(v *int) *ReferralAccountUpdate {
	if v != nil {
		_u.SetTier1ReferrerID(*v)
	}
	return _u
}

// AddTier1ReferrerID adds value to the "tier1_referrer_id" field.
func (_u *ReferralAccountUpdate) AddTier1ReferrerID(v int) *ReferralAccountUpdate {
	_u.mutation.AddTier1ReferrerID(v)
	return _u
}

// ClearTier1ReferrerID clears the value of the "tier1_referrer_id" field.
func (_u *ReferralAccountUpdate) ClearTier1ReferrerID() *ReferralAccountUpdate {
	_u.mutation.ClearTier1ReferrerID()
	return _u
}

// SetTier2ReferrerID sets the "tier2_referrer_id" field.
func (_u *ReferralAccountUpdate) SetTier2ReferrerID(v int) *ReferralAccountUpdate {
	_u.mutation.ResetTier2ReferrerID()
	_u.mutation.SetTier2ReferrerID(v)
	return _u
}

// SetNillableTier2ReferrerID sets the "tier2_referrer_id" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableTier2ReferrerID(v *int) *ReferralAccountUpdate {
	if v != nil {
		_u.SetTier2ReferrerID(*v)
	}
	return _u
}

// AddTier2ReferrerID adds value to the "tier2_referrer_id" field.
func (_u *ReferralAccountUpdate) AddTier2ReferrerID(v int) *ReferralAccountUpdate {
	_u.mutation.AddTier2ReferrerID(v)
	return _u
}

// ClearTier2ReferrerID clears the value of the "tier2_referrer_id" field.
func (_u *ReferralAccountUpdate) ClearTier2ReferrerID() *ReferralAccountUpdate {
	_u.mutation.ClearTier2ReferrerID()
	return _u
}

// SetTotalReferrals sets the "total_referrals" field.
func (_u *ReferralAccountUpdate) SetTotalReferrals(v int) *ReferralAccountUpdate {
	_u.mutation.ResetTotalReferrals()
	_u.mutation.SetTotalReferrals(v)
	return _u
}

// SetNillableTotalReferrals sets the "total_referrals" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableTotalReferrals(v *int) *ReferralAccountUpdate {
	if v != nil {
		_u.SetTotalReferrals(*v)
	}
	return _u
}

// AddTotalReferrals adds value to the "total_referrals" field.
func (_u *ReferralAccountUpdate) AddTotalReferrals(v int) *ReferralAccountUpdate {
	_u.mutation.AddTotalReferrals(v)
	return _u
}

// SetActiveReferrals sets the "active_referrals" field.
func (_u *ReferralAccountUpdate) SetActiveReferrals(v int) *ReferralAccountUpdate {
	_u.mutation.ResetActiveReferrals()
	_u.mutation.SetActiveReferrals(v)
	return _u
}

// SetNillableActiveReferrals sets the "active_referrals" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableActiveReferrals(v *int) *ReferralAccountUpdate {
	if v != nil {
		_u.SetActiveReferrals(*v)
	}
	return _u
}

// AddActiveReferrals adds value to the "active_referrals" field.
func (_u *ReferralAccountUpdate) AddActiveReferrals(v int) *ReferralAccountUpdate {
	_u.mutation.AddActiveReferrals(v)
	return _u
}

// SetTotalCommissionEarned sets the "total_commission_earned" field.
func (_u *ReferralAccountUpdate) SetTotalCommissionEarned(v float64) *ReferralAccountUpdate {
	_u.mutation.ResetTotalCommissionEarned()
	_u.mutation.SetTotalCommissionEarned(v)
	return _u
}

// SetNillableTotalCommissionEarned sets the "total_commission_earned" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableTotalCommissionEarned(v *float64) *ReferralAccountUpdate {
	if v != nil {
		_u.SetTotalCommissionEarned(*v)
	}
	return _u
}

// AddTotalCommissionEarned adds value to the "total_commission_earned" field.
func (_u *ReferralAccountUpdate) AddTotalCommissionEarned(v float64) *ReferralAccountUpdate {
	_u.mutation.AddTotalCommissionEarned(v)
	return _u
}

// SetTier1CommissionEarned sets the "tier1_commission_earned" field.
func (_u *ReferralAccountUpdate) SetTier1CommissionEarned(v float64) *ReferralAccountUpdate {
	_u.mutation.ResetTier1CommissionEarned()
	_u.mutation.SetTier1CommissionEarned(v)
	return _u
}

// SetNillableTier1CommissionEarned sets the "tier1_commission_earned" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableTier1CommissionEarned(v *float64) *ReferralAccountUpdate {
	if v != nil {
		_u.SetTier1CommissionEarned(*v)
	}
	return _u
}

// AddTier1CommissionEarned adds value to the "tier1_commission_earned" field.
func (_u *ReferralAccountUpdate) AddTier1CommissionEarned(v float64) *ReferralAccountUpdate {
	_u.mutation.AddTier1CommissionEarned(v)
	return _u
}

// SetTier2CommissionEarned sets the "tier2_commission_earned" field.
func (_u *ReferralAccountUpdate) SetTier2CommissionEarned(v float64) *ReferralAccountUpdate {
	_u.mutation.ResetTier2CommissionEarned()
	_u.mutation.SetTier2CommissionEarned(v)
	return _u
}

// SetNillableTier2CommissionEarned sets the "tier2_commission_earned" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableTier2CommissionEarned(v *float64) *ReferralAccountUpdate {
	if v != nil {
		_u.SetTier2CommissionEarned(*v)
	}
	return _u
}

// AddTier2CommissionEarned adds value to the "tier2_commission_earned" field.
func (_u *ReferralAccountUpdate) AddTier2CommissionEarned(v float64) *ReferralAccountUpdate {
	_u.mutation.AddTier2CommissionEarned(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *ReferralAccountUpdate) SetLastActivityAt(v time.Time) *ReferralAccountUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableLastActivityAt(v *time.Time) *ReferralAccountUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ReferralAccountUpdate) SetIsActive(v bool) *ReferralAccountUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableIsActive(v *bool) *ReferralAccountUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReferralAccountUpdate) SetExpiresAt(v time.Time) *ReferralAccountUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableExpiresAt(v *time.Time) *ReferralAccountUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ReferralAccountUpdate) ClearExpiresAt() *ReferralAccountUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferralAccountUpdate) SetSource(v referralaccount.Source) *ReferralAccountUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferralAccountUpdate) SetNillableSource(v *referralaccount.Source) *ReferralAccountUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferralAccountUpdate) SetUpdatedAt(v time.Time) *ReferralAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ReferralAccountUpdate) SetOwnerID(id int) *ReferralAccountUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ReferralAccountUpdate) SetOwner(v *User) *ReferralAccountUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ReferralAccountMutation object of the builder.
func (_u *ReferralAccountUpdate) Mutation() *ReferralAccountMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ReferralAccountUpdate) ClearOwner() *ReferralAccountUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferralAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferralAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferralAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := referralaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralAccountUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := referralaccount.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReferrals(); ok {
		if err := referralaccount.TotalReferralsValidator(v); err != nil {
			return &ValidationError{Name: "total_referrals", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.total_referrals": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveReferrals(); ok {
		if err := referralaccount.ActiveReferralsValidator(v); err != nil {
			return &ValidationError{Name: "active_referrals", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.active_referrals": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := referralaccount.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.source": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferralAccount.owner"`)
	}
	return nil
}

func (_u *ReferralAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referralaccount.Table, referralaccount.Columns, sqlgraph.NewFieldSpec(referralaccount.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(referralaccount.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DirectReferrals(); ok {
		_spec.SetField(referralaccount.FieldDirectReferrals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDirectReferrals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referralaccount.FieldDirectReferrals, value)
		})
	}
	if _u.mutation.DirectReferralsCleared() {
		_spec.ClearField(referralaccount.FieldDirectReferrals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tier1ReferrerID(); ok {
		_spec.SetField(referralaccount.FieldTier1ReferrerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier1ReferrerID(); ok {
		_spec.AddField(referralaccount.FieldTier1ReferrerID, field.TypeInt, value)
	}
	if _u.mutation.Tier1ReferrerIDCleared() {
		_spec.ClearField(referralaccount.FieldTier1ReferrerID, field.TypeInt)
	}
	if value, ok := _u.mutation.Tier2ReferrerID(); ok {
		_spec.SetField(referralaccount.FieldTier2ReferrerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier2ReferrerID(); ok {
		_spec.AddField(referralaccount.FieldTier2ReferrerID, field.TypeInt, value)
	}
	if _u.mutation.Tier2ReferrerIDCleared() {
		_spec.ClearField(referralaccount.FieldTier2ReferrerID, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalReferrals(); ok {
		_spec.SetField(referralaccount.FieldTotalReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReferrals(); ok {
		_spec.AddField(referralaccount.FieldTotalReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveReferrals(); ok {
		_spec.SetField(referralaccount.FieldActiveReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveReferrals(); ok {
		_spec.AddField(referralaccount.FieldActiveReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTotalCommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCommissionEarned(); ok {
		_spec.AddField(referralaccount.FieldTotalCommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier1CommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTier1CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTier1CommissionEarned(); ok {
		_spec.AddField(referralaccount.FieldTier1CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier2CommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTier2CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTier2CommissionEarned(); ok {
		_spec.AddField(referralaccount.FieldTier2CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(referralaccount.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(referralaccount.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(referralaccount.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(referralaccount.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referralaccount.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(referralaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   referralaccount.OwnerTable,
			Columns: []string{referralaccount.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   referralaccount.OwnerTable,
			Columns: []string{referralaccount.OwnerColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referralaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferralAccountUpdateOne is the builder for updating a single ReferralAccount entity.
type ReferralAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferralAccountMutation
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *ReferralAccountUpdateOne) SetOwnerUserID(v int) *ReferralAccountUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableOwnerUserID(v *int) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *ReferralAccountUpdateOne) SetCode(v string) *ReferralAccountUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableCode(v *string) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDirectReferrals sets the "direct_referrals" field.
func (_u *ReferralAccountUpdateOne) SetDirectReferrals(v []int) *ReferralAccountUpdateOne {
	_u.mutation.SetDirectReferrals(v)
	return _u
}

// AppendDirectReferrals appends value to the "direct_referrals" field.
func (_u *ReferralAccountUpdateOne) AppendDirectReferrals(v []int) *ReferralAccountUpdateOne {
	_u.mutation.AppendDirectReferrals(v)
	return _u
}

// ClearDirectReferrals clears the value of the "direct_referrals" field.
func (_u *ReferralAccountUpdateOne) ClearDirectReferrals() *ReferralAccountUpdateOne {
	_u.mutation.ClearDirectReferrals()
	return _u
}

// SetTier1ReferrerID sets the "tier1_referrer_id" field.
func (_u *ReferralAccountUpdateOne) SetTier1ReferrerID(v int) *ReferralAccountUpdateOne {
	_u.mutation.ResetTier1ReferrerID()
	_u.mutation.SetTier1ReferrerID(v)
	return _u
}

// SetNillableTier1ReferrerID sets the "tier1_referrer_id" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableTier1ReferrerID(v *int) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetTier1ReferrerID(*v)
	}
	return _u
}

// AddTier1ReferrerID adds value to the "tier1_referrer_id" field.
func (_u *ReferralAccountUpdateOne) AddTier1ReferrerID(v int) *ReferralAccountUpdateOne {
	_u.mutation.AddTier1ReferrerID(v)
	return _u
}

// ClearTier1ReferrerID clears the value of the "tier1_referrer_id" field.
func (_u *ReferralAccountUpdateOne) ClearTier1ReferrerID() *ReferralAccountUpdateOne {
	_u.mutation.ClearTier1ReferrerID()
	return _u
}

// SetTier2ReferrerID sets the "tier2_referrer_id" field.
func (_u *ReferralAccountUpdateOne) SetTier2ReferrerID(v int) *ReferralAccountUpdateOne {
	_u.mutation.ResetTier2ReferrerID()
	_u.mutation.SetTier2ReferrerID(v)
	return _u
}

// SetNillableTier2ReferrerID sets the "tier2_referrer_id" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableTier2ReferrerID(v *int) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetTier2ReferrerID(*v)
	}
	return _u
}

// AddTier2ReferrerID adds value to the "tier2_referrer_id" field.
func (_u *ReferralAccountUpdateOne) AddTier2ReferrerID(v int) *ReferralAccountUpdateOne {
	_u.mutation.AddTier2ReferrerID(v)
	return _u
}

// ClearTier2ReferrerID clears the value of the "tier2_referrer_id" field.
func (_u *ReferralAccountUpdateOne) ClearTier2ReferrerID() *ReferralAccountUpdateOne {
	_u.mutation.ClearTier2ReferrerID()
	return _u
}

// SetTotalReferrals sets the "total_referrals" field.
func (_u *ReferralAccountUpdateOne) SetTotalReferrals(v int) *ReferralAccountUpdateOne {
	_u.mutation.ResetTotalReferrals()
	_u.mutation.SetTotalReferrals(v)
	return _u
}

// SetNillableTotalReferrals sets the "total_referrals" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableTotalReferrals(v *int) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetTotalReferrals(*v)
	}
	return _u
}

// AddTotalReferrals adds value to the "total_referrals" field.
func (_u *ReferralAccountUpdateOne) AddTotalReferrals(v int) *ReferralAccountUpdateOne {
	_u.mutation.AddTotalReferrals(v)
	return _u
}

// SetActiveReferrals sets the "active_referrals" field.
func (_u *ReferralAccountUpdateOne) SetActiveReferrals(v int) *ReferralAccountUpdateOne {
	_u.mutation.ResetActiveReferrals()
	_u.mutation.SetActiveReferrals(v)
	return _u
}

// SetNillableActiveReferrals sets the "active_referrals" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableActiveReferrals(v *int) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetActiveReferrals(*v)
	}
	return _u
}

// AddActiveReferrals adds value to the "active_referrals" field.
func (_u *ReferralAccountUpdateOne) AddActiveReferrals(v int) *ReferralAccountUpdateOne {
	_u.mutation.AddActiveReferrals(v)
	return _u
}

// SetTotalCommissionEarned sets the "total_commission_earned" field.
func (_u *ReferralAccountUpdateOne) SetTotalCommissionEarned(v float64) *ReferralAccountUpdateOne {
	_u.mutation.ResetTotalCommissionEarned()
	_u.mutation.SetTotalCommissionEarned(v)
	return _u
}

// SetNillableTotalCommissionEarned sets the "total_commission_earned" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableTotalCommissionEarned(v *float64) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetTotalCommissionEarned(*v)
	}
	return _u
}

// AddTotalCommissionEarned adds value to the "total_commission_earned" field.
func (_u *ReferralAccountUpdateOne) AddTotalCommissionEarned(v float64) *ReferralAccountUpdateOne {
	_u.mutation.AddTotalCommissionEarned(v)
	return _u
}

// SetTier1CommissionEarned sets the "tier1_commission_earned" field.
func (_u *ReferralAccountUpdateOne) SetTier1CommissionEarned(v float64) *ReferralAccountUpdateOne {
	_u.mutation.ResetTier1CommissionEarned()
	_u.mutation.SetTier1CommissionEarned(v)
	return _u
}

// SetNillableTier1CommissionEarned sets the "tier1_commission_earned" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableTier1CommissionEarned(v *float64) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetTier1CommissionEarned(*v)
	}
	return _u
}

// AddTier1CommissionEarned adds value to the "tier1_commission_earned" field.
func (_u *ReferralAccountUpdateOne) AddTier1CommissionEarned(v float64) *ReferralAccountUpdateOne {
	_u.mutation.AddTier1CommissionEarned(v)
	return _u
}

// SetTier2CommissionEarned sets the "tier2_commission_earned" field.
func (_u *ReferralAccountUpdateOne) SetTier2CommissionEarned(v float64) *ReferralAccountUpdateOne {
	_u.mutation.ResetTier2CommissionEarned()
	_u.mutation.SetTier2CommissionEarned(v)
	return _u
}

// SetNillableTier2CommissionEarned sets the "tier2_commission_earned" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableTier2CommissionEarned(v *float64) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetTier2CommissionEarned(*v)
	}
	return _u
}

// AddTier2CommissionEarned adds value to the "tier2_commission_earned" field.
func (_u *ReferralAccountUpdateOne) AddTier2CommissionEarned(v float64) *ReferralAccountUpdateOne {
	_u.mutation.AddTier2CommissionEarned(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *ReferralAccountUpdateOne) SetLastActivityAt(v time.Time) *ReferralAccountUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableLastActivityAt(v *time.Time) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ReferralAccountUpdateOne) SetIsActive(v bool) *ReferralAccountUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableIsActive(v *bool) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReferralAccountUpdateOne) SetExpiresAt(v time.Time) *ReferralAccountUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableExpiresAt(v *time.Time) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ReferralAccountUpdateOne) ClearExpiresAt() *ReferralAccountUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferralAccountUpdateOne) SetSource(v referralaccount.Source) *ReferralAccountUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferralAccountUpdateOne) SetNillableSource(v *referralaccount.Source) *ReferralAccountUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferralAccountUpdateOne) SetUpdatedAt(v time.Time) *ReferralAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ReferralAccountUpdateOne) SetOwnerID(id int) *ReferralAccountUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ReferralAccountUpdateOne) SetOwner(v *User) *ReferralAccountUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ReferralAccountMutation object of the builder.
func (_u *ReferralAccountUpdateOne) Mutation() *ReferralAccountMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ReferralAccountUpdateOne) ClearOwner() *ReferralAccountUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the ReferralAccountUpdate builder.
func (_u *ReferralAccountUpdateOne) Where(ps ...predicate.ReferralAccount) *ReferralAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferralAccountUpdateOne) Select(field string, fields ...string) *ReferralAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReferralAccount entity.
func (_u *ReferralAccountUpdateOne) Save(ctx context.Context) (*ReferralAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralAccountUpdateOne) SaveX(ctx context.Context) *ReferralAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferralAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferralAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := referralaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralAccountUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := referralaccount.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReferrals(); ok {
		if err := referralaccount.TotalReferralsValidator(v); err != nil {
			return &ValidationError{Name: "total_referrals", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.total_referrals": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActiveReferrals(); ok {
		if err := referralaccount.ActiveReferralsValidator(v); err != nil {
			return &ValidationError{Name: "active_referrals", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.active_referrals": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := referralaccount.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.source": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferralAccount.owner"`)
	}
	return nil
}

func (_u *ReferralAccountUpdateOne) sqlSave(ctx context.Context) (_node *ReferralAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referralaccount.Table, referralaccount.Columns, sqlgraph.NewFieldSpec(referralaccount.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReferralAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referralaccount.FieldID)
		for _, f := range fields {
			if !referralaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referralaccount.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(referralaccount.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DirectReferrals(); ok {
		_spec.SetField(referralaccount.FieldDirectReferrals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDirectReferrals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referralaccount.FieldDirectReferrals, value)
		})
	}
	if _u.mutation.DirectReferralsCleared() {
		_spec.ClearField(referralaccount.FieldDirectReferrals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tier1ReferrerID(); ok {
		_spec.SetField(referralaccount.FieldTier1ReferrerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier1ReferrerID(); ok {
		_spec.AddField(referralaccount.FieldTier1ReferrerID, field.TypeInt, value)
	}
	if _u.mutation.Tier1ReferrerIDCleared() {
		_spec.ClearField(referralaccount.FieldTier1ReferrerID, field.TypeInt)
	}
	if value, ok := _u.mutation.Tier2ReferrerID(); ok {
		_spec.SetField(referralaccount.FieldTier2ReferrerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier2ReferrerID(); ok {
		_spec.AddField(referralaccount.FieldTier2ReferrerID, field.TypeInt, value)
	}
	if _u.mutation.Tier2ReferrerIDCleared() {
		_spec.ClearField(referralaccount.FieldTier2ReferrerID, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalReferrals(); ok {
		_spec.SetField(referralaccount.FieldTotalReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReferrals(); ok {
		_spec.AddField(referralaccount.FieldTotalReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveReferrals(); ok {
		_spec.SetField(referralaccount.FieldActiveReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveReferrals(); ok {
		_spec.AddField(referralaccount.FieldActiveReferrals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTotalCommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCommissionEarned(); ok {
		_spec.AddField(referralaccount.FieldTotalCommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier1CommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTier1CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTier1CommissionEarned(); ok {
		_spec.AddField(referralaccount.FieldTier1CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier2CommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTier2CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTier2CommissionEarned(); ok {
		_spec.AddField(referralaccount.FieldTier2CommissionEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(referralaccount.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(referralaccount.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(referralaccount.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(referralaccount.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referralaccount.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(referralaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   referralaccount.OwnerTable,
			Columns: []string{referralaccount.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   referralaccount.OwnerTable,
			Columns: []string{referralaccount.OwnerColumn},
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
	_node = &ReferralAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referralaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
