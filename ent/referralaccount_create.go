// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/user"
)

// ReferralAccountCreate is the builder for creating a ReferralAccount entity.
type ReferralAccountCreate struct {
	config
	mutation *ReferralAccountMutation
	hooks    []Hook
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *ReferralAccountCreate) SetOwnerUserID(v int) *ReferralAccountCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *ReferralAccountCreate) SetCode(v string) *ReferralAccountCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDirectReferrals sets the "direct_referrals" field.
func (_c *ReferralAccountCreate) SetDirectReferrals(v []int) *ReferralAccountCreate {
	_c.mutation.SetDirectReferrals(v)
	return _c
}

// SetTier1ReferrerID sets the "tier1_referrer_id" field.
func (_c *ReferralAccountCreate) SetTier1ReferrerID(v int) *ReferralAccountCreate {
	_c.mutation.SetTier1ReferrerID(v)
	return _c
}

// SetNillableTier1ReferrerID sets the "tier1_referrer_id" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableTier1ReferrerID(v *int) *ReferralAccountCreate {
	if v != nil {
		_c.SetTier1ReferrerID(*v)
	}
	return _c
}

// SetTier2ReferrerID sets the "tier2_referrer_id" field.
func (_c *ReferralAccountCreate) SetTier2ReferrerID(v int) *ReferralAccountCreate {
	_c.mutation.SetTier2ReferrerID(v)
	return _c
}

// SetNillableTier2ReferrerID sets the "tier2_referrer_id" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableTier2ReferrerID(v *int) *ReferralAccountCreate {
	if v != nil {
		_c.SetTier2ReferrerID(*v)
	}
	return _c
}

// SetTotalReferrals sets the "total_referrals" field.
func (_c *ReferralAccountCreate) SetTotalReferrals(v int) *ReferralAccountCreate {
	_c.mutation.SetTotalReferrals(v)
	return _c
}

// SetNillableTotalReferrals sets the "total_referrals" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableTotalReferrals(v *int) *ReferralAccountCreate {
	if v != nil {
		_c.SetTotalReferrals(*v)
	}
	return _c
}

// SetActiveReferrals sets the "active_referrals" field.
func (_c *ReferralAccountCreate) SetActiveReferrals(v int) *ReferralAccountCreate {
	_c.mutation.SetActiveReferrals(v)
	return _c
}

// SetNillableActiveReferrals sets the "active_referrals" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableActiveReferrals(v *int) *ReferralAccountCreate {
	if v != nil {
		_c.SetActiveReferrals(*v)
	}
	return _c
}

// SetTotalCommissionEarned sets the "total_commission_earned" field.
func (_c *ReferralAccountCreate) SetTotalCommissionEarned(v float64) *ReferralAccountCreate {
	_c.mutation.SetTotalCommissionEarned(v)
	return _c
}

// SetNillableTotalCommissionEarned sets the "total_commission_earned" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableTotalCommissionEarned(v *float64) *ReferralAccountCreate {
	if v != nil {
		_c.SetTotalCommissionEarned(*v)
	}
	return _c
}

// SetTier1CommissionEarned sets the "tier1_commission_earned" field.
func (_c *ReferralAccountCreate) SetTier1CommissionEarned(v float64) *ReferralAccountCreate {
	_c.mutation.SetTier1CommissionEarned(v)
	return _c
}

// SetNillableTier1CommissionEarned sets the "tier1_commission_earned" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableTier1CommissionEarned(v *float64) *ReferralAccountCreate {
	if v != nil {
		_c.SetTier1CommissionEarned(*v)
	}
	return _c
}

// SetTier2CommissionEarned sets the "tier2_commission_earned" field.
func (_c *ReferralAccountCreate) SetTier2CommissionEarned(v float64) *ReferralAccountCreate {
	_c.mutation.SetTier2CommissionEarned(v)
	return _c
}

// SetNillableTier2CommissionEarned sets the "tier2_commission_earned" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableTier2CommissionEarned(v *float64) *ReferralAccountCreate {
	if v != nil {
		_c.SetTier2CommissionEarned(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *ReferralAccountCreate) SetLastActivityAt(v time.Time) *ReferralAccountCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableLastActivityAt(v *time.Time) *ReferralAccountCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ReferralAccountCreate) SetIsActive(v bool) *ReferralAccountCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableIsActive(v *bool) *ReferralAccountCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ReferralAccountCreate) SetExpiresAt(v time.Time) *ReferralAccountCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableExpiresAt(v *time.Time) *ReferralAccountCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ReferralAccountCreate) SetSource(v referralaccount.Source) *ReferralAccountCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableSource(v *referralaccount.Source) *ReferralAccountCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferralAccountCreate) SetCreatedAt(v time.Time) *ReferralAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableCreatedAt(v *time.Time) *ReferralAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReferralAccountCreate) SetUpdatedAt(v time.Time) *ReferralAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReferralAccountCreate) SetNillableUpdatedAt(v *time.Time) *ReferralAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *ReferralAccountCreate) SetOwnerID(id int) *ReferralAccountCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *ReferralAccountCreate) SetOwner(v *User) *ReferralAccountCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the ReferralAccountMutation object of the builder.
func (_c *ReferralAccountCreate) Mutation() *ReferralAccountMutation {
	return _c.mutation
}

// Save creates the ReferralAccount in the database.
func (_c *ReferralAccountCreate) Save(ctx context.Context) (*ReferralAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferralAccountCreate) SaveX(ctx context.Context) *ReferralAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferralAccountCreate) defaults() {
	if _, ok := _c.mutation.TotalReferrals(); !ok {
		v := referralaccount.DefaultTotalReferrals
		_c.mutation.SetTotalReferrals(v)
	}
	if _, ok := _c.mutation.ActiveReferrals(); !ok {
		v := referralaccount.DefaultActiveReferrals
		_c.mutation.SetActiveReferrals(v)
	}
	if _, ok := _c.mutation.TotalCommissionEarned(); !ok {
		v := referralaccount.DefaultTotalCommissionEarned
		_c.mutation.SetTotalCommissionEarned(v)
	}
	if _, ok := _c.mutation.Tier1CommissionEarned(); !ok {
		v := referralaccount.DefaultTier1CommissionEarned
		_c.mutation.SetTier1CommissionEarned(v)
	}
	if _, ok := _c.mutation.Tier2CommissionEarned(); !ok {
		v := referralaccount.DefaultTier2CommissionEarned
		_c.mutation.SetTier2CommissionEarned(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := referralaccount.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := referralaccount.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := referralaccount.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referralaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := referralaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferralAccountCreate) check() error {
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "ReferralAccount.owner_user_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "ReferralAccount.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := referralaccount.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalReferrals(); !ok {
		return &ValidationError{Name: "total_referrals", err: errors.New(`ent: missing required field "ReferralAccount.total_referrals"`)}
	}
	if v, ok := _c.mutation.TotalReferrals(); ok {
		if err := referralaccount.TotalReferralsValidator(v); err != nil {
			return &ValidationError{Name: "total_referrals", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.total_referrals": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveReferrals(); !ok {
		return &ValidationError{Name: "active_referrals", err: errors.New(`ent: missing required field "ReferralAccount.active_referrals"`)}
	}
	if v, ok := _c.mutation.ActiveReferrals(); ok {
		if err := referralaccount.ActiveReferralsValidator(v); err != nil {
			return &ValidationError{Name: "active_referrals", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.active_referrals": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCommissionEarned(); !ok {
		return &ValidationError{Name: "total_commission_earned", err: errors.New(`ent: missing required field "ReferralAccount.total_commission_earned"`)}
	}
	if _, ok := _c.mutation.Tier1CommissionEarned(); !ok {
		return &ValidationError{Name: "tier1_commission_earned", err: errors.New(`ent: missing required field "ReferralAccount.tier1_commission_earned"`)}
	}
	if _, ok := _c.mutation.Tier2CommissionEarned(); !ok {
		return &ValidationError{Name: "tier2_commission_earned", err: errors.New(`ent: missing required field "ReferralAccount.tier2_commission_earned"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "ReferralAccount.last_activity_at"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ReferralAccount.is_active"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ReferralAccount.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := referralaccount.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ReferralAccount.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReferralAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReferralAccount.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "ReferralAccount.owner"`)}
	}
	return nil
}

func (_c *ReferralAccountCreate) sqlSave(ctx context.Context) (*ReferralAccount, error) {
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

func (_c *ReferralAccountCreate) createSpec() (*ReferralAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &ReferralAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referralaccount.Table, sqlgraph.NewFieldSpec(referralaccount.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(referralaccount.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.DirectReferrals(); ok {
		_spec.SetField(referralaccount.FieldDirectReferrals, field.TypeJSON, value)
		_node.DirectReferrals = value
	}
	if value, ok := _c.mutation.Tier1ReferrerID(); ok {
		_spec.SetField(referralaccount.FieldTier1ReferrerID, field.TypeInt, value)
		_node.Tier1ReferrerID = &value
	}
	if value, ok := _c.mutation.Tier2ReferrerID(); ok {
		_spec.SetField(referralaccount.FieldTier2ReferrerID, field.TypeInt, value)
		_node.Tier2ReferrerID = &value
	}
	if value, ok := _c.mutation.TotalReferrals(); ok {
		_spec.SetField(referralaccount.FieldTotalReferrals, field.TypeInt, value)
		_node.TotalReferrals = value
	}
	if value, ok := _c.mutation.ActiveReferrals(); ok {
		_spec.SetField(referralaccount.FieldActiveReferrals, field.TypeInt, value)
		_node.ActiveReferrals = value
	}
	if value, ok := _c.mutation.TotalCommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTotalCommissionEarned, field.TypeFloat64, value)
		_node.TotalCommissionEarned = value
	}
	if value, ok := _c.mutation.Tier1CommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTier1CommissionEarned, field.TypeFloat64, value)
		_node.Tier1CommissionEarned = value
	}
	if value, ok := _c.mutation.Tier2CommissionEarned(); ok {
		_spec.SetField(referralaccount.FieldTier2CommissionEarned, field.TypeFloat64, value)
		_node.Tier2CommissionEarned = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(referralaccount.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(referralaccount.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(referralaccount.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(referralaccount.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referralaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(referralaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerUserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReferralAccountCreateBulk is the builder for creating many ReferralAccount entities in bulk.
type ReferralAccountCreateBulk struct {
	config
	err      error
	builders []*ReferralAccountCreate
}

// Save creates the ReferralAccount entities in the database.
func (_c *ReferralAccountCreateBulk) Save(ctx context.Context) ([]*ReferralAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReferralAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferralAccountMutation)
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
func (_c *ReferralAccountCreateBulk) SaveX(ctx context.Context) []*ReferralAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
