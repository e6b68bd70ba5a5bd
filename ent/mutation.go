// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/predicate"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/ent/user"
	"github.com/fanvault/backend/ent/wallet"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCommission      = "Commission"
	TypeReferralAccount = "ReferralAccount"
	TypeTransaction     = "Transaction"
	TypeUser            = "User"
	TypeWallet          = "Wallet"
)

// CommissionMutation represents an operation that mutates the Commission nodes in the graph.
type CommissionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	earning_user_id           *int
	addearning_user_id        *int
	tier                      *int
	addtier                   *int
	commission_rate           *float64
	addcommission_rate        *float64
	base_amount               *float64
	addbase_amount            *float64
	commission_amount         *float64
	addcommission_amount      *float64
	currency                  *string
	status                    *commission.Status
	payment_transaction_id    *int
	addpayment_transaction_id *int
	failure_reason            *string
	paid_at                   *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	recipient                 *int
	clearedrecipient          bool
	source_transaction        *int
	clearedsource_transaction bool
	done                      bool
	oldValue                  func(context.Context) (*Commission, error)
	predicates                []predicate.Commission
}

var _ ent.Mutation = (*CommissionMutation)(nil)

// commissionOption allows management of the mutation configuration using functional options.
type commissionOption func(*CommissionMutation)

// newCommissionMutation creates new mutation for the Commission entity.
func newCommissionMutation(c config, op Op, opts ...commissionOption) *CommissionMutation {
	m := &CommissionMutation{
		config:        c,
		op:            op,
		typ:           TypeCommission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommissionID sets the ID field of the mutation.
func withCommissionID(id int) commissionOption {
	return func(m *CommissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Commission
		)
		m.oldValue = func(ctx context.Context) (*Commission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Commission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommission sets the old Commission of the mutation.
func withCommission(node *Commission) commissionOption {
	return func(m *CommissionMutation) {
		m.oldValue = func(context.Context) (*Commission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Commission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (m *CommissionMutation) SetRecipientUserID(i int) {
	m.recipient = &i
}

// RecipientUserID returns the value of the "recipient_user_id" field in the mutation.
func (m *CommissionMutation) RecipientUserID() (r int, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientUserID returns the old "recipient_user_id" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldRecipientUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientUserID: %w", err)
	}
	return oldValue.RecipientUserID, nil
}

// ResetRecipientUserID resets all changes to the "recipient_user_id" field.
func (m *CommissionMutation) ResetRecipientUserID() {
	m.recipient = nil
}

// SetEarningUserID sets the "earning_user_id" field.
func (m *CommissionMutation) SetEarningUserID(i int) {
	m.earning_user_id = &i
	m.addearning_user_id = nil
}

// EarningUserID returns the value of the "earning_user_id" field in the mutation.
func (m *CommissionMutation) EarningUserID() (r int, exists bool) {
	v := m.earning_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEarningUserID returns the old "earning_user_id" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldEarningUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarningUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarningUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarningUserID: %w", err)
	}
	return oldValue.EarningUserID, nil
}

// AddEarningUserID adds i to the "earning_user_id" field.
func (m *CommissionMutation) AddEarningUserID(i int) {
	if m.addearning_user_id != nil {
		*m.addearning_user_id += i
	} else {
		m.addearning_user_id = &i
	}
}

// AddedEarningUserID returns the value that was added to the "earning_user_id" field in this mutation.
func (m *CommissionMutation) AddedEarningUserID() (r int, exists bool) {
	v := m.addearning_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEarningUserID resets all changes to the "earning_user_id" field.
func (m *CommissionMutation) ResetEarningUserID() {
	m.earning_user_id = nil
	m.addearning_user_id = nil
}

// SetSourceTransactionID sets the "source_transaction_id" field.
func (m *CommissionMutation) SetSourceTransactionID(i int) {
	m.source_transaction = &i
}

// SourceTransactionID returns the value of the "source_transaction_id" field in the mutation.
func (m *CommissionMutation) SourceTransactionID() (r int, exists bool) {
	v := m.source_transaction
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTransactionID returns the old "source_transaction_id" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldSourceTransactionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTransactionID: %w", err)
	}
	return oldValue.SourceTransactionID, nil
}

// ResetSourceTransactionID resets all changes to the "source_transaction_id" field.
func (m *CommissionMutation) ResetSourceTransactionID() {
	m.source_transaction = nil
}

// SetTier sets the "tier" field.
func (m *CommissionMutation) SetTier(i int) {
	m.tier = &i
	m.addtier = nil
}

// Tier returns the value of the "tier" field in the mutation.
func (m *CommissionMutation) Tier() (r int, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// AddTier adds i to the "tier" field.
func (m *CommissionMutation) AddTier(i int) {
	if m.addtier != nil {
		*m.addtier += i
	} else {
		m.addtier = &i
	}
}

// AddedTier returns the value that was added to the "tier" field in this mutation.
func (m *CommissionMutation) AddedTier() (r int, exists bool) {
	v := m.addtier
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier resets all changes to the "tier" field.
func (m *CommissionMutation) ResetTier() {
	m.tier = nil
	m.addtier = nil
}

// SetCommissionRate sets the "commission_rate" field.
func (m *CommissionMutation) SetCommissionRate(f float64) {
	m.commission_rate = &f
	m.addcommission_rate = nil
}

// CommissionRate returns the value of the "commission_rate" field in the mutation.
func (m *CommissionMutation) CommissionRate() (r float64, exists bool) {
	v := m.commission_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionRate returns the old "commission_rate" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldCommissionRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionRate: %w", err)
	}
	return oldValue.CommissionRate, nil
}

// AddCommissionRate adds f to the "commission_rate" field.
func (m *CommissionMutation) AddCommissionRate(f float64) {
	if m.addcommission_rate != nil {
		*m.addcommission_rate += f
	} else {
		m.addcommission_rate = &f
	}
}

// AddedCommissionRate returns the value that was added to the "commission_rate" field in this mutation.
func (m *CommissionMutation) AddedCommissionRate() (r float64, exists bool) {
	v := m.addcommission_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionRate resets all changes to the "commission_rate" field.
func (m *CommissionMutation) ResetCommissionRate() {
	m.commission_rate = nil
	m.addcommission_rate = nil
}

// SetBaseAmount sets the "base_amount" field.
func (m *CommissionMutation) SetBaseAmount(f float64) {
	m.base_amount = &f
	m.addbase_amount = nil
}

// BaseAmount returns the value of the "base_amount" field in the mutation.
func (m *CommissionMutation) BaseAmount() (r float64, exists bool) {
	v := m.base_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseAmount returns the old "base_amount" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldBaseAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseAmount: %w", err)
	}
	return oldValue.BaseAmount, nil
}

// AddBaseAmount adds f to the "base_amount" field.
func (m *CommissionMutation) AddBaseAmount(f float64) {
	if m.addbase_amount != nil {
		*m.addbase_amount += f
	} else {
		m.addbase_amount = &f
	}
}

// AddedBaseAmount returns the value that was added to the "base_amount" field in this mutation.
func (m *CommissionMutation) AddedBaseAmount() (r float64, exists bool) {
	v := m.addbase_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseAmount resets all changes to the "base_amount" field.
func (m *CommissionMutation) ResetBaseAmount() {
	m.base_amount = nil
	m.addbase_amount = nil
}

// SetCommissionAmount sets the "commission_amount" field.
func (m *CommissionMutation) SetCommissionAmount(f float64) {
	m.commission_amount = &f
	m.addcommission_amount = nil
}

// CommissionAmount returns the value of the "commission_amount" field in the mutation.
func (m *CommissionMutation) CommissionAmount() (r float64, exists bool) {
	v := m.commission_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionAmount returns the old "commission_amount" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldCommissionAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionAmount: %w", err)
	}
	return oldValue.CommissionAmount, nil
}

// AddCommissionAmount adds f to the "commission_amount" field.
func (m *CommissionMutation) AddCommissionAmount(f float64) {
	if m.addcommission_amount != nil {
		*m.addcommission_amount += f
	} else {
		m.addcommission_amount = &f
	}
}

// AddedCommissionAmount returns the value that was added to the "commission_amount" field in this mutation.
func (m *CommissionMutation) AddedCommissionAmount() (r float64, exists bool) {
	v := m.addcommission_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionAmount resets all changes to the "commission_amount" field.
func (m *CommissionMutation) ResetCommissionAmount() {
	m.commission_amount = nil
	m.addcommission_amount = nil
}

// SetCurrency sets the "currency" field.
func (m *CommissionMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *CommissionMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *CommissionMutation) ResetCurrency() {
	m.currency = nil
}

// SetStatus sets the "status" field.
func (m *CommissionMutation) SetStatus(c commission.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CommissionMutation) Status() (r commission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldStatus(ctx context.Context) (v commission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommissionMutation) ResetStatus() {
	m.status = nil
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (m *CommissionMutation) SetPaymentTransactionID(i int) {
	m.payment_transaction_id = &i
	m.addpayment_transaction_id = nil
}

// PaymentTransactionID returns the value of the "payment_transaction_id" field in the mutation.
func (m *CommissionMutation) PaymentTransactionID() (r int, exists bool) {
	v := m.payment_transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentTransactionID returns the old "payment_transaction_id" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldPaymentTransactionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentTransactionID: %w", err)
	}
	return oldValue.PaymentTransactionID, nil
}

// AddPaymentTransactionID adds i to the "payment_transaction_id" field.
func (m *CommissionMutation) AddPaymentTransactionID(i int) {
	if m.addpayment_transaction_id != nil {
		*m.addpayment_transaction_id += i
	} else {
		m.addpayment_transaction_id = &i
	}
}

// AddedPaymentTransactionID returns the value that was added to the "payment_transaction_id" field in this mutation.
func (m *CommissionMutation) AddedPaymentTransactionID() (r int, exists bool) {
	v := m.addpayment_transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearPaymentTransactionID clears the value of the "payment_transaction_id" field.
func (m *CommissionMutation) ClearPaymentTransactionID() {
	m.payment_transaction_id = nil
	m.addpayment_transaction_id = nil
	m.clearedFields[commission.FieldPaymentTransactionID] = struct{}{}
}

// PaymentTransactionIDCleared returns if the "payment_transaction_id" field was cleared in this mutation.
func (m *CommissionMutation) PaymentTransactionIDCleared() bool {
	_, ok := m.clearedFields[commission.FieldPaymentTransactionID]
	return ok
}

// ResetPaymentTransactionID resets all changes to the "payment_transaction_id" field.
func (m *CommissionMutation) ResetPaymentTransactionID() {
	m.payment_transaction_id = nil
	m.addpayment_transaction_id = nil
	delete(m.clearedFields, commission.FieldPaymentTransactionID)
}

// SetFailureReason sets the "failure_reason" field.
func (m *CommissionMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *CommissionMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *CommissionMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[commission.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *CommissionMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[commission.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *CommissionMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, commission.FieldFailureReason)
}

// SetPaidAt sets the "paid_at" field.
func (m *CommissionMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *CommissionMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *CommissionMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[commission.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *CommissionMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[commission.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *CommissionMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, commission.FieldPaidAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Commission entity.
// If the Commission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRecipientID sets the "recipient" edge to the User entity by id.
func (m *CommissionMutation) SetRecipientID(id int) {
	m.recipient = &id
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (m *CommissionMutation) ClearRecipient() {
	m.clearedrecipient = true
	m.clearedFields[commission.FieldRecipientUserID] = struct{}{}
}

// RecipientCleared reports if the "recipient" edge to the User entity was cleared.
func (m *CommissionMutation) RecipientCleared() bool {
	return m.clearedrecipient
}

// RecipientID returns the "recipient" edge ID in the mutation.
func (m *CommissionMutation) RecipientID() (id int, exists bool) {
	if m.recipient != nil {
		return *m.recipient, true
	}
	return
}

// RecipientIDs returns the "recipient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipientID instead. It exists only for internal usage by the builders.
func (m *CommissionMutation) RecipientIDs() (ids []int) {
	if id := m.recipient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipient resets all changes to the "recipient" edge.
func (m *CommissionMutation) ResetRecipient() {
	m.recipient = nil
	m.clearedrecipient = false
}

// ClearSourceTransaction clears the "source_transaction" edge to the Transaction entity.
func (m *CommissionMutation) ClearSourceTransaction() {
	m.clearedsource_transaction = true
	m.clearedFields[commission.FieldSourceTransactionID] = struct{}{}
}

// SourceTransactionCleared reports if the "source_transaction" edge to the Transaction entity was cleared.
func (m *CommissionMutation) SourceTransactionCleared() bool {
	return m.clearedsource_transaction
}

// SourceTransactionIDs returns the "source_transaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceTransactionID instead. It exists only for internal usage by the builders.
func (m *CommissionMutation) SourceTransactionIDs() (ids []int) {
	if id := m.source_transaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceTransaction resets all changes to the "source_transaction" edge.
func (m *CommissionMutation) ResetSourceTransaction() {
	m.source_transaction = nil
	m.clearedsource_transaction = false
}

// Where appends a list predicates to the CommissionMutation builder.
func (m *CommissionMutation) Where(ps ...predicate.Commission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Commission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Commission).
func (m *CommissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommissionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.recipient != nil {
		fields = append(fields, commission.FieldRecipientUserID)
	}
	if m.earning_user_id != nil {
		fields = append(fields, commission.FieldEarningUserID)
	}
	if m.source_transaction != nil {
		fields = append(fields, commission.FieldSourceTransactionID)
	}
	if m.tier != nil {
		fields = append(fields, commission.FieldTier)
	}
	if m.commission_rate != nil {
		fields = append(fields, commission.FieldCommissionRate)
	}
	if m.base_amount != nil {
		fields = append(fields, commission.FieldBaseAmount)
	}
	if m.commission_amount != nil {
		fields = append(fields, commission.FieldCommissionAmount)
	}
	if m.currency != nil {
		fields = append(fields, commission.FieldCurrency)
	}
	if m.status != nil {
		fields = append(fields, commission.FieldStatus)
	}
	if m.payment_transaction_id != nil {
		fields = append(fields, commission.FieldPaymentTransactionID)
	}
	if m.failure_reason != nil {
		fields = append(fields, commission.FieldFailureReason)
	}
	if m.paid_at != nil {
		fields = append(fields, commission.FieldPaidAt)
	}
	if m.created_at != nil {
		fields = append(fields, commission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commission.FieldRecipientUserID:
		return m.RecipientUserID()
	case commission.FieldEarningUserID:
		return m.EarningUserID()
	case commission.FieldSourceTransactionID:
		return m.SourceTransactionID()
	case commission.FieldTier:
		return m.Tier()
	case commission.FieldCommissionRate:
		return m.CommissionRate()
	case commission.FieldBaseAmount:
		return m.BaseAmount()
	case commission.FieldCommissionAmount:
		return m.CommissionAmount()
	case commission.FieldCurrency:
		return m.Currency()
	case commission.FieldStatus:
		return m.Status()
	case commission.FieldPaymentTransactionID:
		return m.PaymentTransactionID()
	case commission.FieldFailureReason:
		return m.FailureReason()
	case commission.FieldPaidAt:
		return m.PaidAt()
	case commission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commission.FieldRecipientUserID:
		return m.OldRecipientUserID(ctx)
	case commission.FieldEarningUserID:
		return m.OldEarningUserID(ctx)
	case commission.FieldSourceTransactionID:
		return m.OldSourceTransactionID(ctx)
	case commission.FieldTier:
		return m.OldTier(ctx)
	case commission.FieldCommissionRate:
		return m.OldCommissionRate(ctx)
	case commission.FieldBaseAmount:
		return m.OldBaseAmount(ctx)
	case commission.FieldCommissionAmount:
		return m.OldCommissionAmount(ctx)
	case commission.FieldCurrency:
		return m.OldCurrency(ctx)
	case commission.FieldStatus:
		return m.OldStatus(ctx)
	case commission.FieldPaymentTransactionID:
		return m.OldPaymentTransactionID(ctx)
	case commission.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case commission.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case commission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Commission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commission.FieldRecipientUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientUserID(v)
		return nil
	case commission.FieldEarningUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarningUserID(v)
		return nil
	case commission.FieldSourceTransactionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTransactionID(v)
		return nil
	case commission.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case commission.FieldCommissionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionRate(v)
		return nil
	case commission.FieldBaseAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseAmount(v)
		return nil
	case commission.FieldCommissionAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionAmount(v)
		return nil
	case commission.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case commission.FieldStatus:
		v, ok := value.(commission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commission.FieldPaymentTransactionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentTransactionID(v)
		return nil
	case commission.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case commission.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case commission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Commission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommissionMutation) AddedFields() []string {
	var fields []string
	if m.addearning_user_id != nil {
		fields = append(fields, commission.FieldEarningUserID)
	}
	if m.addtier != nil {
		fields = append(fields, commission.FieldTier)
	}
	if m.addcommission_rate != nil {
		fields = append(fields, commission.FieldCommissionRate)
	}
	if m.addbase_amount != nil {
		fields = append(fields, commission.FieldBaseAmount)
	}
	if m.addcommission_amount != nil {
		fields = append(fields, commission.FieldCommissionAmount)
	}
	if m.addpayment_transaction_id != nil {
		fields = append(fields, commission.FieldPaymentTransactionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case commission.FieldEarningUserID:
		return m.AddedEarningUserID()
	case commission.FieldTier:
		return m.AddedTier()
	case commission.FieldCommissionRate:
		return m.AddedCommissionRate()
	case commission.FieldBaseAmount:
		return m.AddedBaseAmount()
	case commission.FieldCommissionAmount:
		return m.AddedCommissionAmount()
	case commission.FieldPaymentTransactionID:
		return m.AddedPaymentTransactionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case commission.FieldEarningUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEarningUserID(v)
		return nil
	case commission.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier(v)
		return nil
	case commission.FieldCommissionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionRate(v)
		return nil
	case commission.FieldBaseAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseAmount(v)
		return nil
	case commission.FieldCommissionAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionAmount(v)
		return nil
	case commission.FieldPaymentTransactionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaymentTransactionID(v)
		return nil
	}
	return fmt.Errorf("unknown Commission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commission.FieldPaymentTransactionID) {
		fields = append(fields, commission.FieldPaymentTransactionID)
	}
	if m.FieldCleared(commission.FieldFailureReason) {
		fields = append(fields, commission.FieldFailureReason)
	}
	if m.FieldCleared(commission.FieldPaidAt) {
		fields = append(fields, commission.FieldPaidAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommissionMutation) ClearField(name string) error {
	switch name {
	case commission.FieldPaymentTransactionID:
		m.ClearPaymentTransactionID()
		return nil
	case commission.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case commission.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	}
	return fmt.Errorf("unknown Commission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommissionMutation) ResetField(name string) error {
	switch name {
	case commission.FieldRecipientUserID:
		m.ResetRecipientUserID()
		return nil
	case commission.FieldEarningUserID:
		m.ResetEarningUserID()
		return nil
	case commission.FieldSourceTransactionID:
		m.ResetSourceTransactionID()
		return nil
	case commission.FieldTier:
		m.ResetTier()
		return nil
	case commission.FieldCommissionRate:
		m.ResetCommissionRate()
		return nil
	case commission.FieldBaseAmount:
		m.ResetBaseAmount()
		return nil
	case commission.FieldCommissionAmount:
		m.ResetCommissionAmount()
		return nil
	case commission.FieldCurrency:
		m.ResetCurrency()
		return nil
	case commission.FieldStatus:
		m.ResetStatus()
		return nil
	case commission.FieldPaymentTransactionID:
		m.ResetPaymentTransactionID()
		return nil
	case commission.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case commission.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case commission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Commission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.recipient != nil {
		edges = append(edges, commission.EdgeRecipient)
	}
	if m.source_transaction != nil {
		edges = append(edges, commission.EdgeSourceTransaction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commission.EdgeRecipient:
		if id := m.recipient; id != nil {
			return []ent.Value{*id}
		}
	case commission.EdgeSourceTransaction:
		if id := m.source_transaction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecipient {
		edges = append(edges, commission.EdgeRecipient)
	}
	if m.clearedsource_transaction {
		edges = append(edges, commission.EdgeSourceTransaction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommissionMutation) EdgeCleared(name string) bool {
	switch name {
	case commission.EdgeRecipient:
		return m.clearedrecipient
	case commission.EdgeSourceTransaction:
		return m.clearedsource_transaction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommissionMutation) ClearEdge(name string) error {
	switch name {
	case commission.EdgeRecipient:
		m.ClearRecipient()
		return nil
	case commission.EdgeSourceTransaction:
		m.ClearSourceTransaction()
		return nil
	}
	return fmt.Errorf("unknown Commission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommissionMutation) ResetEdge(name string) error {
	switch name {
	case commission.EdgeRecipient:
		m.ResetRecipient()
		return nil
	case commission.EdgeSourceTransaction:
		m.ResetSourceTransaction()
		return nil
	}
	return fmt.Errorf("unknown Commission edge %s", name)
}

// ReferralAccountMutation represents an operation that mutates the ReferralAccount nodes in the graph.
type ReferralAccountMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	code                       *string
	direct_referrals           *[]int
	appenddirect_referrals     []int
	tier1_referrer_id          *int
	addtier1_referrer_id       *int
	tier2_referrer_id          *int
	addtier2_referrer_id       *int
	total_referrals            *int
	addtotal_referrals         *int
	active_referrals           *int
	addactive_referrals        *int
	total_commission_earned    *float64
	addtotal_commission_earned *float64
	tier1_commission_earned    *float64
	addtier1_commission_earned *float64
	tier2_commission_earned    *float64
	addtier2_commission_earned *float64
	last_activity_at           *time.Time
	is_active                  *bool
	expires_at                 *time.Time
	source                     *referralaccount.Source
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	owner                      *int
	clearedowner               bool
	done                       bool
	oldValue                   func(context.Context) (*ReferralAccount, error)
	predicates                 []predicate.ReferralAccount
}

var _ ent.Mutation = (*ReferralAccountMutation)(nil)

// referralaccountOption allows management of the mutation configuration using functional options.
type referralaccountOption func(*ReferralAccountMutation)

// newReferralAccountMutation creates new mutation for the ReferralAccount entity.
func newReferralAccountMutation(c config, op Op, opts ...referralaccountOption) *ReferralAccountMutation {
	m := &ReferralAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeReferralAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferralAccountID sets the ID field of the mutation.
func withReferralAccountID(id int) referralaccountOption {
	return func(m *ReferralAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *ReferralAccount
		)
		m.oldValue = func(ctx context.Context) (*ReferralAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReferralAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferralAccount sets the old ReferralAccount of the mutation.
func withReferralAccount(node *ReferralAccount) referralaccountOption {
	return func(m *ReferralAccountMutation) {
		m.oldValue = func(context.Context) (*ReferralAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferralAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferralAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferralAccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferralAccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReferralAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *ReferralAccountMutation) SetOwnerUserID(i int) {
	m.owner = &i
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *ReferralAccountMutation) OwnerUserID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldOwnerUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *ReferralAccountMutation) ResetOwnerUserID() {
	m.owner = nil
}

// SetCode sets the "code" field.
func (m *ReferralAccountMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ReferralAccountMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ReferralAccountMutation) ResetCode() {
	m.code = nil
}

// SetDirectReferrals sets the "direct_referrals" field.
func (m *ReferralAccountMutation) SetDirectReferrals(i []int) {
	m.direct_referrals = &i
	m.appenddirect_referrals = nil
}

// DirectReferrals returns the value of the "direct_referrals" field in the mutation.
func (m *ReferralAccountMutation) DirectReferrals() (r []int, exists bool) {
	v := m.direct_referrals
	if v == nil {
		return
	}
	return *v, true
}

// OldDirectReferrals returns the old "direct_referrals" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldDirectReferrals(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirectReferrals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirectReferrals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirectReferrals: %w", err)
	}
	return oldValue.DirectReferrals, nil
}

// AppendDirectReferrals adds i to the "direct_referrals" field.
func (m *ReferralAccountMutation) AppendDirectReferrals(i []int) {
	m.appenddirect_referrals = append(m.appenddirect_referrals, i...)
}

// AppendedDirectReferrals returns the list of values that were appended to the "direct_referrals" field in this mutation.
func (m *ReferralAccountMutation) AppendedDirectReferrals() ([]int, bool) {
	if len(m.appenddirect_referrals) == 0 {
		return nil, false
	}
	return m.appenddirect_referrals, true
}

// ClearDirectReferrals clears the value of the "direct_referrals" field.
func (m *ReferralAccountMutation) ClearDirectReferrals() {
	m.direct_referrals = nil
	m.appenddirect_referrals = nil
	m.clearedFields[referralaccount.FieldDirectReferrals] = struct{}{}
}

// DirectReferralsCleared returns if the "direct_referrals" field was cleared in this mutation.
func (m *ReferralAccountMutation) DirectReferralsCleared() bool {
	_, ok := m.clearedFields[referralaccount.FieldDirectReferrals]
	return ok
}

// ResetDirectReferrals resets all changes to the "direct_referrals" field.
func (m *ReferralAccountMutation) ResetDirectReferrals() {
	m.direct_referrals = nil
	m.appenddirect_referrals = nil
	delete(m.clearedFields, referralaccount.FieldDirectReferrals)
}

// SetTier1ReferrerID sets the "tier1_referrer_id" field.
func (m *ReferralAccountMutation) SetTier1ReferrerID(i int) {
	m.tier1_referrer_id = &i
	m.addtier1_referrer_id = nil
}

// Tier1ReferrerID returns the value of the "tier1_referrer_id" field in the mutation.
func (m *ReferralAccountMutation) Tier1ReferrerID() (r int, exists bool) {
	v := m.tier1_referrer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTier1ReferrerID returns the old "tier1_referrer_id" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldTier1ReferrerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier1ReferrerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier1ReferrerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier1ReferrerID: %w", err)
	}
	return oldValue.Tier1ReferrerID, nil
}

// AddTier1ReferrerID adds i to the "tier1_referrer_id" field.
func (m *ReferralAccountMutation) AddTier1ReferrerID(i int) {
	if m.addtier1_referrer_id != nil {
		*m.addtier1_referrer_id += i
	} else {
		m.addtier1_referrer_id = &i
	}
}

// AddedTier1ReferrerID returns the value that was added to the "tier1_referrer_id" field in this mutation.
func (m *ReferralAccountMutation) AddedTier1ReferrerID() (r int, exists bool) {
	v := m.addtier1_referrer_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTier1ReferrerID clears the value of the "tier1_referrer_id" field.
func (m *ReferralAccountMutation) ClearTier1ReferrerID() {
	m.tier1_referrer_id = nil
	m.addtier1_referrer_id = nil
	m.clearedFields[referralaccount.FieldTier1ReferrerID] = struct{}{}
}

// Tier1ReferrerIDCleared returns if the "tier1_referrer_id" field was cleared in this mutation.
func (m *ReferralAccountMutation) Tier1ReferrerIDCleared() bool {
	_, ok := m.clearedFields[referralaccount.FieldTier1ReferrerID]
	return ok
}

// ResetTier1ReferrerID resets all changes to the "tier1_referrer_id" field.
func (m *ReferralAccountMutation) ResetTier1ReferrerID() {
	m.tier1_referrer_id = nil
	m.addtier1_referrer_id = nil
	delete(m.clearedFields, referralaccount.FieldTier1ReferrerID)
}

// SetTier2ReferrerID sets the "tier2_referrer_id" field.
func (m *ReferralAccountMutation) SetTier2ReferrerID(i int) {
	m.tier2_referrer_id = &i
	m.addtier2_referrer_id = nil
}

// Tier2ReferrerID returns the value of the "tier2_referrer_id" field in the mutation.
func (m *ReferralAccountMutation) Tier2ReferrerID() (r int, exists bool) {
	v := m.tier2_referrer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTier2ReferrerID returns the old "tier2_referrer_id" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldTier2ReferrerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier2ReferrerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier2ReferrerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier2ReferrerID: %w", err)
	}
	return oldValue.Tier2ReferrerID, nil
}

// AddTier2ReferrerID adds i to the "tier2_referrer_id" field.
func (m *ReferralAccountMutation) AddTier2ReferrerID(i int) {
	if m.addtier2_referrer_id != nil {
		*m.addtier2_referrer_id += i
	} else {
		m.addtier2_referrer_id = &i
	}
}

// AddedTier2ReferrerID returns the value that was added to the "tier2_referrer_id" field in this mutation.
func (m *ReferralAccountMutation) AddedTier2ReferrerID() (r int, exists bool) {
	v := m.addtier2_referrer_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTier2ReferrerID clears the value of the "tier2_referrer_id" field.
func (m *ReferralAccountMutation) ClearTier2ReferrerID() {
	m.tier2_referrer_id = nil
	m.addtier2_referrer_id = nil
	m.clearedFields[referralaccount.FieldTier2ReferrerID] = struct{}{}
}

// Tier2ReferrerIDCleared returns if the "tier2_referrer_id" field was cleared in this mutation.
func (m *ReferralAccountMutation) Tier2ReferrerIDCleared() bool {
	_, ok := m.clearedFields[referralaccount.FieldTier2ReferrerID]
	return ok
}

// ResetTier2ReferrerID resets all changes to the "tier2_referrer_id" field.
func (m *ReferralAccountMutation) ResetTier2ReferrerID() {
	m.tier2_referrer_id = nil
	m.addtier2_referrer_id = nil
	delete(m.clearedFields, referralaccount.FieldTier2ReferrerID)
}

// SetTotalReferrals sets the "total_referrals" field.
func (m *ReferralAccountMutation) SetTotalReferrals(i int) {
	m.total_referrals = &i
	m.addtotal_referrals = nil
}

// TotalReferrals returns the value of the "total_referrals" field in the mutation.
func (m *ReferralAccountMutation) TotalReferrals() (r int, exists bool) {
	v := m.total_referrals
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalReferrals returns the old "total_referrals" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldTotalReferrals(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalReferrals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalReferrals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalReferrals: %w", err)
	}
	return oldValue.TotalReferrals, nil
}

// AddTotalReferrals adds i to the "total_referrals" field.
func (m *ReferralAccountMutation) AddTotalReferrals(i int) {
	if m.addtotal_referrals != nil {
		*m.addtotal_referrals += i
	} else {
		m.addtotal_referrals = &i
	}
}

// AddedTotalReferrals returns the value that was added to the "total_referrals" field in this mutation.
func (m *ReferralAccountMutation) AddedTotalReferrals() (r int, exists bool) {
	v := m.addtotal_referrals
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalReferrals resets all changes to the "total_referrals" field.
func (m *ReferralAccountMutation) ResetTotalReferrals() {
	m.total_referrals = nil
	m.addtotal_referrals = nil
}

// SetActiveReferrals sets the "active_referrals" field.
func (m *ReferralAccountMutation) SetActiveReferrals(i int) {
	m.active_referrals = &i
	m.addactive_referrals = nil
}

// ActiveReferrals returns the value of the "active_referrals" field in the mutation.
func (m *ReferralAccountMutation) ActiveReferrals() (r int, exists bool) {
	v := m.active_referrals
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveReferrals returns the old "active_referrals" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldActiveReferrals(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveReferrals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveReferrals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveReferrals: %w", err)
	}
	return oldValue.ActiveReferrals, nil
}

// AddActiveReferrals adds i to the "active_referrals" field.
func (m *ReferralAccountMutation) AddActiveReferrals(i int) {
	if m.addactive_referrals != nil {
		*m.addactive_referrals += i
	} else {
		m.addactive_referrals = &i
	}
}

// AddedActiveReferrals returns the value that was added to the "active_referrals" field in this mutation.
func (m *ReferralAccountMutation) AddedActiveReferrals() (r int, exists bool) {
	v := m.addactive_referrals
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveReferrals resets all changes to the "active_referrals" field.
func (m *ReferralAccountMutation) ResetActiveReferrals() {
	m.active_referrals = nil
	m.addactive_referrals = nil
}

// SetTotalCommissionEarned sets the "total_commission_earned" field.
func (m *ReferralAccountMutation) SetTotalCommissionEarned(f float64) {
	m.total_commission_earned = &f
	m.addtotal_commission_earned = nil
}

// TotalCommissionEarned returns the value of the "total_commission_earned" field in the mutation.
func (m *ReferralAccountMutation) TotalCommissionEarned() (r float64, exists bool) {
	v := m.total_commission_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCommissionEarned returns the old "total_commission_earned" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldTotalCommissionEarned(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCommissionEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCommissionEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCommissionEarned: %w", err)
	}
	return oldValue.TotalCommissionEarned, nil
}

// AddTotalCommissionEarned adds f to the "total_commission_earned" field.
func (m *ReferralAccountMutation) AddTotalCommissionEarned(f float64) {
	if m.addtotal_commission_earned != nil {
		*m.addtotal_commission_earned += f
	} else {
		m.addtotal_commission_earned = &f
	}
}

// AddedTotalCommissionEarned returns the value that was added to the "total_commission_earned" field in this mutation.
func (m *ReferralAccountMutation) AddedTotalCommissionEarned() (r float64, exists bool) {
	v := m.addtotal_commission_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCommissionEarned resets all changes to the "total_commission_earned" field.
func (m *ReferralAccountMutation) ResetTotalCommissionEarned() {
	m.total_commission_earned = nil
	m.addtotal_commission_earned = nil
}

// SetTier1CommissionEarned sets the "tier1_commission_earned" field.
func (m *ReferralAccountMutation) SetTier1CommissionEarned(f float64) {
	m.tier1_commission_earned = &f
	m.addtier1_commission_earned = nil
}

// Tier1CommissionEarned returns the value of the "tier1_commission_earned" field in the mutation.
func (m *ReferralAccountMutation) Tier1CommissionEarned() (r float64, exists bool) {
	v := m.tier1_commission_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTier1CommissionEarned returns the old "tier1_commission_earned" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldTier1CommissionEarned(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier1CommissionEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier1CommissionEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier1CommissionEarned: %w", err)
	}
	return oldValue.Tier1CommissionEarned, nil
}

// AddTier1CommissionEarned adds f to the "tier1_commission_earned" field.
func (m *ReferralAccountMutation) AddTier1CommissionEarned(f float64) {
	if m.addtier1_commission_earned != nil {
		*m.addtier1_commission_earned += f
	} else {
		m.addtier1_commission_earned = &f
	}
}

// AddedTier1CommissionEarned returns the value that was added to the "tier1_commission_earned" field in this mutation.
func (m *ReferralAccountMutation) AddedTier1CommissionEarned() (r float64, exists bool) {
	v := m.addtier1_commission_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier1CommissionEarned resets all changes to the "tier1_commission_earned" field.
func (m *ReferralAccountMutation) ResetTier1CommissionEarned() {
	m.tier1_commission_earned = nil
	m.addtier1_commission_earned = nil
}

// SetTier2CommissionEarned sets the "tier2_commission_earned" field.
func (m *ReferralAccountMutation) SetTier2CommissionEarned(f float64) {
	m.tier2_commission_earned = &f
	m.addtier2_commission_earned = nil
}

// Tier2CommissionEarned returns the value of the "tier2_commission_earned" field in the mutation.
func (m *ReferralAccountMutation) Tier2CommissionEarned() (r float64, exists bool) {
	v := m.tier2_commission_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTier2CommissionEarned returns the old "tier2_commission_earned" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldTier2CommissionEarned(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier2CommissionEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier2CommissionEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier2CommissionEarned: %w", err)
	}
	return oldValue.Tier2CommissionEarned, nil
}

// AddTier2CommissionEarned adds f to the "tier2_commission_earned" field.
func (m *ReferralAccountMutation) AddTier2CommissionEarned(f float64) {
	if m.addtier2_commission_earned != nil {
		*m.addtier2_commission_earned += f
	} else {
		m.addtier2_commission_earned = &f
	}
}

// AddedTier2CommissionEarned returns the value that was added to the "tier2_commission_earned" field in this mutation.
func (m *ReferralAccountMutation) AddedTier2CommissionEarned() (r float64, exists bool) {
	v := m.addtier2_commission_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier2CommissionEarned resets all changes to the "tier2_commission_earned" field.
func (m *ReferralAccountMutation) ResetTier2CommissionEarned() {
	m.tier2_commission_earned = nil
	m.addtier2_commission_earned = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *ReferralAccountMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *ReferralAccountMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *ReferralAccountMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetIsActive sets the "is_active" field.
func (m *ReferralAccountMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ReferralAccountMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ReferralAccountMutation) ResetIsActive() {
	m.is_active = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ReferralAccountMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ReferralAccountMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ReferralAccountMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[referralaccount.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ReferralAccountMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[referralaccount.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ReferralAccountMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, referralaccount.FieldExpiresAt)
}

// SetSource sets the "source" field.
func (m *ReferralAccountMutation) SetSource(r referralaccount.Source) {
	m.source = &r
}

// Source returns the value of the "source" field in the mutation.
func (m *ReferralAccountMutation) Source() (r referralaccount.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldSource(ctx context.Context) (v referralaccount.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ReferralAccountMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferralAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferralAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferralAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReferralAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReferralAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReferralAccount entity.
// If the ReferralAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReferralAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *ReferralAccountMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ReferralAccountMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[referralaccount.FieldOwnerUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ReferralAccountMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *ReferralAccountMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ReferralAccountMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ReferralAccountMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the ReferralAccountMutation builder.
func (m *ReferralAccountMutation) Where(ps ...predicate.ReferralAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferralAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferralAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReferralAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferralAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferralAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReferralAccount).
func (m *ReferralAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferralAccountMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.owner != nil {
		fields = append(fields, referralaccount.FieldOwnerUserID)
	}
	if m.code != nil {
		fields = append(fields, referralaccount.FieldCode)
	}
	if m.direct_referrals != nil {
		fields = append(fields, referralaccount.FieldDirectReferrals)
	}
	if m.tier1_referrer_id != nil {
		fields = append(fields, referralaccount.FieldTier1ReferrerID)
	}
	if m.tier2_referrer_id != nil {
		fields = append(fields, referralaccount.FieldTier2ReferrerID)
	}
	if m.total_referrals != nil {
		fields = append(fields, referralaccount.FieldTotalReferrals)
	}
	if m.active_referrals != nil {
		fields = append(fields, referralaccount.FieldActiveReferrals)
	}
	if m.total_commission_earned != nil {
		fields = append(fields, referralaccount.FieldTotalCommissionEarned)
	}
	if m.tier1_commission_earned != nil {
		fields = append(fields, referralaccount.FieldTier1CommissionEarned)
	}
	if m.tier2_commission_earned != nil {
		fields = append(fields, referralaccount.FieldTier2CommissionEarned)
	}
	if m.last_activity_at != nil {
		fields = append(fields, referralaccount.FieldLastActivityAt)
	}
	if m.is_active != nil {
		fields = append(fields, referralaccount.FieldIsActive)
	}
	if m.expires_at != nil {
		fields = append(fields, referralaccount.FieldExpiresAt)
	}
	if m.source != nil {
		fields = append(fields, referralaccount.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, referralaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, referralaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferralAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referralaccount.FieldOwnerUserID:
		return m.OwnerUserID()
	case referralaccount.FieldCode:
		return m.Code()
	case referralaccount.FieldDirectReferrals:
		return m.DirectReferrals()
	case referralaccount.FieldTier1ReferrerID:
		return m.Tier1ReferrerID()
	case referralaccount.FieldTier2ReferrerID:
		return m.Tier2ReferrerID()
	case referralaccount.FieldTotalReferrals:
		return m.TotalReferrals()
	case referralaccount.FieldActiveReferrals:
		return m.ActiveReferrals()
	case referralaccount.FieldTotalCommissionEarned:
		return m.TotalCommissionEarned()
	case referralaccount.FieldTier1CommissionEarned:
		return m.Tier1CommissionEarned()
	case referralaccount.FieldTier2CommissionEarned:
		return m.Tier2CommissionEarned()
	case referralaccount.FieldLastActivityAt:
		return m.LastActivityAt()
	case referralaccount.FieldIsActive:
		return m.IsActive()
	case referralaccount.FieldExpiresAt:
		return m.ExpiresAt()
	case referralaccount.FieldSource:
		return m.Source()
	case referralaccount.FieldCreatedAt:
		return m.CreatedAt()
	case referralaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferralAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referralaccount.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case referralaccount.FieldCode:
		return m.OldCode(ctx)
	case referralaccount.FieldDirectReferrals:
		return m.OldDirectReferrals(ctx)
	case referralaccount.FieldTier1ReferrerID:
		return m.OldTier1ReferrerID(ctx)
	case referralaccount.FieldTier2ReferrerID:
		return m.OldTier2ReferrerID(ctx)
	case referralaccount.FieldTotalReferrals:
		return m.OldTotalReferrals(ctx)
	case referralaccount.FieldActiveReferrals:
		return m.OldActiveReferrals(ctx)
	case referralaccount.FieldTotalCommissionEarned:
		return m.OldTotalCommissionEarned(ctx)
	case referralaccount.FieldTier1CommissionEarned:
		return m.OldTier1CommissionEarned(ctx)
	case referralaccount.FieldTier2CommissionEarned:
		return m.OldTier2CommissionEarned(ctx)
	case referralaccount.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case referralaccount.FieldIsActive:
		return m.OldIsActive(ctx)
	case referralaccount.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case referralaccount.FieldSource:
		return m.OldSource(ctx)
	case referralaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case referralaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReferralAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referralaccount.FieldOwnerUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case referralaccount.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case referralaccount.FieldDirectReferrals:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirectReferrals(v)
		return nil
	case referralaccount.FieldTier1ReferrerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier1ReferrerID(v)
		return nil
	case referralaccount.FieldTier2ReferrerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier2ReferrerID(v)
		return nil
	case referralaccount.FieldTotalReferrals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalReferrals(v)
		return nil
	case referralaccount.FieldActiveReferrals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveReferrals(v)
		return nil
	case referralaccount.FieldTotalCommissionEarned:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCommissionEarned(v)
		return nil
	case referralaccount.FieldTier1CommissionEarned:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier1CommissionEarned(v)
		return nil
	case referralaccount.FieldTier2CommissionEarned:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier2CommissionEarned(v)
		return nil
	case referralaccount.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case referralaccount.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case referralaccount.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case referralaccount.FieldSource:
		v, ok := value.(referralaccount.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case referralaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case referralaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReferralAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferralAccountMutation) AddedFields() []string {
	var fields []string
	if m.addtier1_referrer_id != nil {
		fields = append(fields, referralaccount.FieldTier1ReferrerID)
	}
	if m.addtier2_referrer_id != nil {
		fields = append(fields, referralaccount.FieldTier2ReferrerID)
	}
	if m.addtotal_referrals != nil {
		fields = append(fields, referralaccount.FieldTotalReferrals)
	}
	if m.addactive_referrals != nil {
		fields = append(fields, referralaccount.FieldActiveReferrals)
	}
	if m.addtotal_commission_earned != nil {
		fields = append(fields, referralaccount.FieldTotalCommissionEarned)
	}
	if m.addtier1_commission_earned != nil {
		fields = append(fields, referralaccount.FieldTier1CommissionEarned)
	}
	if m.addtier2_commission_earned != nil {
		fields = append(fields, referralaccount.FieldTier2CommissionEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferralAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case referralaccount.FieldTier1ReferrerID:
		return m.AddedTier1ReferrerID()
	case referralaccount.FieldTier2ReferrerID:
		return m.AddedTier2ReferrerID()
	case referralaccount.FieldTotalReferrals:
		return m.AddedTotalReferrals()
	case referralaccount.FieldActiveReferrals:
		return m.AddedActiveReferrals()
	case referralaccount.FieldTotalCommissionEarned:
		return m.AddedTotalCommissionEarned()
	case referralaccount.FieldTier1CommissionEarned:
		return m.AddedTier1CommissionEarned()
	case referralaccount.FieldTier2CommissionEarned:
		return m.AddedTier2CommissionEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case referralaccount.FieldTier1ReferrerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier1ReferrerID(v)
		return nil
	case referralaccount.FieldTier2ReferrerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier2ReferrerID(v)
		return nil
	case referralaccount.FieldTotalReferrals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalReferrals(v)
		return nil
	case referralaccount.FieldActiveReferrals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveReferrals(v)
		return nil
	case referralaccount.FieldTotalCommissionEarned:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCommissionEarned(v)
		return nil
	case referralaccount.FieldTier1CommissionEarned:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier1CommissionEarned(v)
		return nil
	case referralaccount.FieldTier2CommissionEarned:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier2CommissionEarned(v)
		return nil
	}
	return fmt.Errorf("unknown ReferralAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferralAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(referralaccount.FieldDirectReferrals) {
		fields = append(fields, referralaccount.FieldDirectReferrals)
	}
	if m.FieldCleared(referralaccount.FieldTier1ReferrerID) {
		fields = append(fields, referralaccount.FieldTier1ReferrerID)
	}
	if m.FieldCleared(referralaccount.FieldTier2ReferrerID) {
		fields = append(fields, referralaccount.FieldTier2ReferrerID)
	}
	if m.FieldCleared(referralaccount.FieldExpiresAt) {
		fields = append(fields, referralaccount.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferralAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferralAccountMutation) ClearField(name string) error {
	switch name {
	case referralaccount.FieldDirectReferrals:
		m.ClearDirectReferrals()
		return nil
	case referralaccount.FieldTier1ReferrerID:
		m.ClearTier1ReferrerID()
		return nil
	case referralaccount.FieldTier2ReferrerID:
		m.ClearTier2ReferrerID()
		return nil
	case referralaccount.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ReferralAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferralAccountMutation) ResetField(name string) error {
	switch name {
	case referralaccount.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case referralaccount.FieldCode:
		m.ResetCode()
		return nil
	case referralaccount.FieldDirectReferrals:
		m.ResetDirectReferrals()
		return nil
	case referralaccount.FieldTier1ReferrerID:
		m.ResetTier1ReferrerID()
		return nil
	case referralaccount.FieldTier2ReferrerID:
		m.ResetTier2ReferrerID()
		return nil
	case referralaccount.FieldTotalReferrals:
		m.ResetTotalReferrals()
		return nil
	case referralaccount.FieldActiveReferrals:
		m.ResetActiveReferrals()
		return nil
	case referralaccount.FieldTotalCommissionEarned:
		m.ResetTotalCommissionEarned()
		return nil
	case referralaccount.FieldTier1CommissionEarned:
		m.ResetTier1CommissionEarned()
		return nil
	case referralaccount.FieldTier2CommissionEarned:
		m.ResetTier2CommissionEarned()
		return nil
	case referralaccount.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case referralaccount.FieldIsActive:
		m.ResetIsActive()
		return nil
	case referralaccount.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case referralaccount.FieldSource:
		m.ResetSource()
		return nil
	case referralaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case referralaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReferralAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferralAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, referralaccount.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferralAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case referralaccount.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferralAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferralAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferralAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, referralaccount.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferralAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case referralaccount.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferralAccountMutation) ClearEdge(name string) error {
	switch name {
	case referralaccount.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown ReferralAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferralAccountMutation) ResetEdge(name string) error {
	switch name {
	case referralaccount.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown ReferralAccount edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	amount             *float64
	addamount          *float64
	currency           *string
	_type              *transaction.Type
	status             *transaction.Status
	sender_user_id     *int
	addsender_user_id  *int
	reference          *string
	description        *string
	completed_at       *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	recipient          *int
	clearedrecipient   bool
	commissions        map[int]struct{}
	removedcommissions map[int]struct{}
	clearedcommissions bool
	done               bool
	oldValue           func(context.Context) (*Transaction, error)
	predicates         []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id int) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAmount sets the "amount" field.
func (m *TransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *TransactionMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *TransactionMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *TransactionMutation) ResetCurrency() {
	m.currency = nil
}

// SetType sets the "type" field.
func (m *TransactionMutation) SetType(t transaction.Type) {
	m._type = &t
}

// GetType returns the value of the "type" field in the mutation.
func (m *TransactionMutation) GetType() (r transaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldType(ctx context.Context) (v transaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TransactionMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *TransactionMutation) SetStatus(t transaction.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TransactionMutation) Status() (r transaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldStatus(ctx context.Context) (v transaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TransactionMutation) ResetStatus() {
	m.status = nil
}

// SetSenderUserID sets the "sender_user_id" field.
func (m *TransactionMutation) SetSenderUserID(i int) {
	m.sender_user_id = &i
	m.addsender_user_id = nil
}

// SenderUserID returns the value of the "sender_user_id" field in the mutation.
func (m *TransactionMutation) SenderUserID() (r int, exists bool) {
	v := m.sender_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderUserID returns the old "sender_user_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSenderUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderUserID: %w", err)
	}
	return oldValue.SenderUserID, nil
}

// AddSenderUserID adds i to the "sender_user_id" field.
func (m *TransactionMutation) AddSenderUserID(i int) {
	if m.addsender_user_id != nil {
		*m.addsender_user_id += i
	} else {
		m.addsender_user_id = &i
	}
}

// AddedSenderUserID returns the value that was added to the "sender_user_id" field in this mutation.
func (m *TransactionMutation) AddedSenderUserID() (r int, exists bool) {
	v := m.addsender_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSenderUserID clears the value of the "sender_user_id" field.
func (m *TransactionMutation) ClearSenderUserID() {
	m.sender_user_id = nil
	m.addsender_user_id = nil
	m.clearedFields[transaction.FieldSenderUserID] = struct{}{}
}

// SenderUserIDCleared returns if the "sender_user_id" field was cleared in this mutation.
func (m *TransactionMutation) SenderUserIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldSenderUserID]
	return ok
}

// ResetSenderUserID resets all changes to the "sender_user_id" field.
func (m *TransactionMutation) ResetSenderUserID() {
	m.sender_user_id = nil
	m.addsender_user_id = nil
	delete(m.clearedFields, transaction.FieldSenderUserID)
}

// SetRecipientUserID sets the "recipient_user_id" field.
func (m *TransactionMutation) SetRecipientUserID(i int) {
	m.recipient = &i
}

// RecipientUserID returns the value of the "recipient_user_id" field in the mutation.
func (m *TransactionMutation) RecipientUserID() (r int, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientUserID returns the old "recipient_user_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldRecipientUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientUserID: %w", err)
	}
	return oldValue.RecipientUserID, nil
}

// ClearRecipientUserID clears the value of the "recipient_user_id" field.
func (m *TransactionMutation) ClearRecipientUserID() {
	m.recipient = nil
	m.clearedFields[transaction.FieldRecipientUserID] = struct{}{}
}

// RecipientUserIDCleared returns if the "recipient_user_id" field was cleared in this mutation.
func (m *TransactionMutation) RecipientUserIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldRecipientUserID]
	return ok
}

// ResetRecipientUserID resets all changes to the "recipient_user_id" field.
func (m *TransactionMutation) ResetRecipientUserID() {
	m.recipient = nil
	delete(m.clearedFields, transaction.FieldRecipientUserID)
}

// SetReference sets the "reference" field.
func (m *TransactionMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *TransactionMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ClearReference clears the value of the "reference" field.
func (m *TransactionMutation) ClearReference() {
	m.reference = nil
	m.clearedFields[transaction.FieldReference] = struct{}{}
}

// ReferenceCleared returns if the "reference" field was cleared in this mutation.
func (m *TransactionMutation) ReferenceCleared() bool {
	_, ok := m.clearedFields[transaction.FieldReference]
	return ok
}

// ResetReference resets all changes to the "reference" field.
func (m *TransactionMutation) ResetReference() {
	m.reference = nil
	delete(m.clearedFields, transaction.FieldReference)
}

// SetDescription sets the "description" field.
func (m *TransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TransactionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[transaction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TransactionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[transaction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TransactionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, transaction.FieldDescription)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TransactionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TransactionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TransactionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[transaction.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TransactionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[transaction.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TransactionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, transaction.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRecipientID sets the "recipient" edge to the User entity by id.
func (m *TransactionMutation) SetRecipientID(id int) {
	m.recipient = &id
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (m *TransactionMutation) ClearRecipient() {
	m.clearedrecipient = true
	m.clearedFields[transaction.FieldRecipientUserID] = struct{}{}
}

// RecipientCleared reports if the "recipient" edge to the User entity was cleared.
func (m *TransactionMutation) RecipientCleared() bool {
	return m.RecipientUserIDCleared() || m.clearedrecipient
}

// RecipientID returns the "recipient" edge ID in the mutation.
func (m *TransactionMutation) RecipientID() (id int, exists bool) {
	if m.recipient != nil {
		return *m.recipient, true
	}
	return
}

// RecipientIDs returns the "recipient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipientID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) RecipientIDs() (ids []int) {
	if id := m.recipient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipient resets all changes to the "recipient" edge.
func (m *TransactionMutation) ResetRecipient() {
	m.recipient = nil
	m.clearedrecipient = false
}

// AddCommissionIDs adds the "commissions" edge to the Commission entity by ids.
func (m *TransactionMutation) AddCommissionIDs(ids ...int) {
	if m.commissions == nil {
		m.commissions = make(map[int]struct{})
	}
	for i := range ids {
		m.commissions[ids[i]] = struct{}{}
	}
}

// ClearCommissions clears the "commissions" edge to the Commission entity.
func (m *TransactionMutation) ClearCommissions() {
	m.clearedcommissions = true
}

// CommissionsCleared reports if the "commissions" edge to the Commission entity was cleared.
func (m *TransactionMutation) CommissionsCleared() bool {
	return m.clearedcommissions
}

// RemoveCommissionIDs removes the "commissions" edge to the Commission entity by IDs.
func (m *TransactionMutation) RemoveCommissionIDs(ids ...int) {
	if m.removedcommissions == nil {
		m.removedcommissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.commissions, ids[i])
		m.removedcommissions[ids[i]] = struct{}{}
	}
}

// RemovedCommissions returns the removed IDs of the "commissions" edge to the Commission entity.
func (m *TransactionMutation) RemovedCommissionsIDs() (ids []int) {
	for id := range m.removedcommissions {
		ids = append(ids, id)
	}
	return
}

// CommissionsIDs returns the "commissions" edge IDs in the mutation.
func (m *TransactionMutation) CommissionsIDs() (ids []int) {
	for id := range m.commissions {
		ids = append(ids, id)
	}
	return
}

// ResetCommissions resets all changes to the "commissions" edge.
func (m *TransactionMutation) ResetCommissions() {
	m.commissions = nil
	m.clearedcommissions = false
	m.removedcommissions = nil
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.amount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, transaction.FieldCurrency)
	}
	if m._type != nil {
		fields = append(fields, transaction.FieldType)
	}
	if m.status != nil {
		fields = append(fields, transaction.FieldStatus)
	}
	if m.sender_user_id != nil {
		fields = append(fields, transaction.FieldSenderUserID)
	}
	if m.recipient != nil {
		fields = append(fields, transaction.FieldRecipientUserID)
	}
	if m.reference != nil {
		fields = append(fields, transaction.FieldReference)
	}
	if m.description != nil {
		fields = append(fields, transaction.FieldDescription)
	}
	if m.completed_at != nil {
		fields = append(fields, transaction.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmount:
		return m.Amount()
	case transaction.FieldCurrency:
		return m.Currency()
	case transaction.FieldType:
		return m.GetType()
	case transaction.FieldStatus:
		return m.Status()
	case transaction.FieldSenderUserID:
		return m.SenderUserID()
	case transaction.FieldRecipientUserID:
		return m.RecipientUserID()
	case transaction.FieldReference:
		return m.Reference()
	case transaction.FieldDescription:
		return m.Description()
	case transaction.FieldCompletedAt:
		return m.CompletedAt()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldAmount:
		return m.OldAmount(ctx)
	case transaction.FieldCurrency:
		return m.OldCurrency(ctx)
	case transaction.FieldType:
		return m.OldType(ctx)
	case transaction.FieldStatus:
		return m.OldStatus(ctx)
	case transaction.FieldSenderUserID:
		return m.OldSenderUserID(ctx)
	case transaction.FieldRecipientUserID:
		return m.OldRecipientUserID(ctx)
	case transaction.FieldReference:
		return m.OldReference(ctx)
	case transaction.FieldDescription:
		return m.OldDescription(ctx)
	case transaction.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transaction.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case transaction.FieldType:
		v, ok := value.(transaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case transaction.FieldStatus:
		v, ok := value.(transaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transaction.FieldSenderUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderUserID(v)
		return nil
	case transaction.FieldRecipientUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientUserID(v)
		return nil
	case transaction.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case transaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case transaction.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.addsender_user_id != nil {
		fields = append(fields, transaction.FieldSenderUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmount:
		return m.AddedAmount()
	case transaction.FieldSenderUserID:
		return m.AddedSenderUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case transaction.FieldSenderUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSenderUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldSenderUserID) {
		fields = append(fields, transaction.FieldSenderUserID)
	}
	if m.FieldCleared(transaction.FieldRecipientUserID) {
		fields = append(fields, transaction.FieldRecipientUserID)
	}
	if m.FieldCleared(transaction.FieldReference) {
		fields = append(fields, transaction.FieldReference)
	}
	if m.FieldCleared(transaction.FieldDescription) {
		fields = append(fields, transaction.FieldDescription)
	}
	if m.FieldCleared(transaction.FieldCompletedAt) {
		fields = append(fields, transaction.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldSenderUserID:
		m.ClearSenderUserID()
		return nil
	case transaction.FieldRecipientUserID:
		m.ClearRecipientUserID()
		return nil
	case transaction.FieldReference:
		m.ClearReference()
		return nil
	case transaction.FieldDescription:
		m.ClearDescription()
		return nil
	case transaction.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldAmount:
		m.ResetAmount()
		return nil
	case transaction.FieldCurrency:
		m.ResetCurrency()
		return nil
	case transaction.FieldType:
		m.ResetType()
		return nil
	case transaction.FieldStatus:
		m.ResetStatus()
		return nil
	case transaction.FieldSenderUserID:
		m.ResetSenderUserID()
		return nil
	case transaction.FieldRecipientUserID:
		m.ResetRecipientUserID()
		return nil
	case transaction.FieldReference:
		m.ResetReference()
		return nil
	case transaction.FieldDescription:
		m.ResetDescription()
		return nil
	case transaction.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.recipient != nil {
		edges = append(edges, transaction.EdgeRecipient)
	}
	if m.commissions != nil {
		edges = append(edges, transaction.EdgeCommissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeRecipient:
		if id := m.recipient; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeCommissions:
		ids := make([]ent.Value, 0, len(m.commissions))
		for id := range m.commissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcommissions != nil {
		edges = append(edges, transaction.EdgeCommissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeCommissions:
		ids := make([]ent.Value, 0, len(m.removedcommissions))
		for id := range m.removedcommissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecipient {
		edges = append(edges, transaction.EdgeRecipient)
	}
	if m.clearedcommissions {
		edges = append(edges, transaction.EdgeCommissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeRecipient:
		return m.clearedrecipient
	case transaction.EdgeCommissions:
		return m.clearedcommissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeRecipient:
		m.ClearRecipient()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeRecipient:
		m.ResetRecipient()
		return nil
	case transaction.EdgeCommissions:
		m.ResetCommissions()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	username                    *string
	email                       *string
	password_hash               *string
	display_name                *string
	role                        *user.Role
	payout_address              *string
	is_active                   *bool
	last_login_at               *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	referral_account            *int
	clearedreferral_account     bool
	commissions_received        map[int]struct{}
	removedcommissions_received map[int]struct{}
	clearedcommissions_received bool
	transactions                map[int]struct{}
	removedtransactions         map[int]struct{}
	clearedtransactions         bool
	wallet                      *int
	clearedwallet               bool
	done                        bool
	oldValue                    func(context.Context) (*User, error)
	predicates                  []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetPayoutAddress sets the "payout_address" field.
func (m *UserMutation) SetPayoutAddress(s string) {
	m.payout_address = &s
}

// PayoutAddress returns the value of the "payout_address" field in the mutation.
func (m *UserMutation) PayoutAddress() (r string, exists bool) {
	v := m.payout_address
	if v == nil {
		return
	}
	return *v, true
}

// OldPayoutAddress returns the old "payout_address" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPayoutAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayoutAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayoutAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayoutAddress: %w", err)
	}
	return oldValue.PayoutAddress, nil
}

// ClearPayoutAddress clears the value of the "payout_address" field.
func (m *UserMutation) ClearPayoutAddress() {
	m.payout_address = nil
	m.clearedFields[user.FieldPayoutAddress] = struct{}{}
}

// PayoutAddressCleared returns if the "payout_address" field was cleared in this mutation.
func (m *UserMutation) PayoutAddressCleared() bool {
	_, ok := m.clearedFields[user.FieldPayoutAddress]
	return ok
}

// ResetPayoutAddress resets all changes to the "payout_address" field.
func (m *UserMutation) ResetPayoutAddress() {
	m.payout_address = nil
	delete(m.clearedFields, user.FieldPayoutAddress)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReferralAccountID sets the "referral_account" edge to the ReferralAccount entity by id.
func (m *UserMutation) SetReferralAccountID(id int) {
	m.referral_account = &id
}

// ClearReferralAccount clears the "referral_account" edge to the ReferralAccount entity.
func (m *UserMutation) ClearReferralAccount() {
	m.clearedreferral_account = true
}

// ReferralAccountCleared reports if the "referral_account" edge to the ReferralAccount entity was cleared.
func (m *UserMutation) ReferralAccountCleared() bool {
	return m.clearedreferral_account
}

// ReferralAccountID returns the "referral_account" edge ID in the mutation.
func (m *UserMutation) ReferralAccountID() (id int, exists bool) {
	if m.referral_account != nil {
		return *m.referral_account, true
	}
	return
}

// ReferralAccountIDs returns the "referral_account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReferralAccountID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ReferralAccountIDs() (ids []int) {
	if id := m.referral_account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReferralAccount resets all changes to the "referral_account" edge.
func (m *UserMutation) ResetReferralAccount() {
	m.referral_account = nil
	m.clearedreferral_account = false
}

// AddCommissionsReceivedIDs adds the "commissions_received" edge to the Commission entity by ids.
func (m *UserMutation) AddCommissionsReceivedIDs(ids ...int) {
	if m.commissions_received == nil {
		m.commissions_received = make(map[int]struct{})
	}
	for i := range ids {
		m.commissions_received[ids[i]] = struct{}{}
	}
}

// ClearCommissionsReceived clears the "commissions_received" edge to the Commission entity.
func (m *UserMutation) ClearCommissionsReceived() {
	m.clearedcommissions_received = true
}

// CommissionsReceivedCleared reports if the "commissions_received" edge to the Commission entity was cleared.
func (m *UserMutation) CommissionsReceivedCleared() bool {
	return m.clearedcommissions_received
}

// RemoveCommissionsReceivedIDs removes the "commissions_received" edge to the Commission entity by IDs.
func (m *UserMutation) RemoveCommissionsReceivedIDs(ids ...int) {
	if m.removedcommissions_received == nil {
		m.removedcommissions_received = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.commissions_received, ids[i])
		m.removedcommissions_received[ids[i]] = struct{}{}
	}
}

// RemovedCommissionsReceived returns the removed IDs of the "commissions_received" edge to the Commission entity.
func (m *UserMutation) RemovedCommissionsReceivedIDs() (ids []int) {
	for id := range m.removedcommissions_received {
		ids = append(ids, id)
	}
	return
}

// CommissionsReceivedIDs returns the "commissions_received" edge IDs in the mutation.
func (m *UserMutation) CommissionsReceivedIDs() (ids []int) {
	for id := range m.commissions_received {
		ids = append(ids, id)
	}
	return
}

// ResetCommissionsReceived resets all changes to the "commissions_received" edge.
func (m *UserMutation) ResetCommissionsReceived() {
	m.commissions_received = nil
	m.clearedcommissions_received = false
	m.removedcommissions_received = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *UserMutation) AddTransactionIDs(ids ...int) {
	if m.transactions == nil {
		m.transactions = make(map[int]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *UserMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *UserMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *UserMutation) RemoveTransactionIDs(ids ...int) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *UserMutation) RemovedTransactionsIDs() (ids []int) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *UserMutation) TransactionsIDs() (ids []int) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *UserMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// SetWalletID sets the "wallet" edge to the Wallet entity by id.
func (m *UserMutation) SetWalletID(id int) {
	m.wallet = &id
}

// ClearWallet clears the "wallet" edge to the Wallet entity.
func (m *UserMutation) ClearWallet() {
	m.clearedwallet = true
}

// WalletCleared reports if the "wallet" edge to the Wallet entity was cleared.
func (m *UserMutation) WalletCleared() bool {
	return m.clearedwallet
}

// WalletID returns the "wallet" edge ID in the mutation.
func (m *UserMutation) WalletID() (id int, exists bool) {
	if m.wallet != nil {
		return *m.wallet, true
	}
	return
}

// WalletIDs returns the "wallet" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WalletID instead. It exists only for internal usage by the builders.
func (m *UserMutation) WalletIDs() (ids []int) {
	if id := m.wallet; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWallet resets all changes to the "wallet" edge.
func (m *UserMutation) ResetWallet() {
	m.wallet = nil
	m.clearedwallet = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.payout_address != nil {
		fields = append(fields, user.FieldPayoutAddress)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldRole:
		return m.Role()
	case user.FieldPayoutAddress:
		return m.PayoutAddress()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldPayoutAddress:
		return m.OldPayoutAddress(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldPayoutAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayoutAddress(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.FieldCleared(user.FieldPayoutAddress) {
		fields = append(fields, user.FieldPayoutAddress)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case user.FieldPayoutAddress:
		m.ClearPayoutAddress()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldPayoutAddress:
		m.ResetPayoutAddress()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.referral_account != nil {
		edges = append(edges, user.EdgeReferralAccount)
	}
	if m.commissions_received != nil {
		edges = append(edges, user.EdgeCommissionsReceived)
	}
	if m.transactions != nil {
		edges = append(edges, user.EdgeTransactions)
	}
	if m.wallet != nil {
		edges = append(edges, user.EdgeWallet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReferralAccount:
		if id := m.referral_account; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeCommissionsReceived:
		ids := make([]ent.Value, 0, len(m.commissions_received))
		for id := range m.commissions_received {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeWallet:
		if id := m.wallet; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcommissions_received != nil {
		edges = append(edges, user.EdgeCommissionsReceived)
	}
	if m.removedtransactions != nil {
		edges = append(edges, user.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCommissionsReceived:
		ids := make([]ent.Value, 0, len(m.removedcommissions_received))
		for id := range m.removedcommissions_received {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedreferral_account {
		edges = append(edges, user.EdgeReferralAccount)
	}
	if m.clearedcommissions_received {
		edges = append(edges, user.EdgeCommissionsReceived)
	}
	if m.clearedtransactions {
		edges = append(edges, user.EdgeTransactions)
	}
	if m.clearedwallet {
		edges = append(edges, user.EdgeWallet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeReferralAccount:
		return m.clearedreferral_account
	case user.EdgeCommissionsReceived:
		return m.clearedcommissions_received
	case user.EdgeTransactions:
		return m.clearedtransactions
	case user.EdgeWallet:
		return m.clearedwallet
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeReferralAccount:
		m.ClearReferralAccount()
		return nil
	case user.EdgeWallet:
		m.ClearWallet()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeReferralAccount:
		m.ResetReferralAccount()
		return nil
	case user.EdgeCommissionsReceived:
		m.ResetCommissionsReceived()
		return nil
	case user.EdgeTransactions:
		m.ResetTransactions()
		return nil
	case user.EdgeWallet:
		m.ResetWallet()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WalletMutation represents an operation that mutates the Wallet nodes in the graph.
type WalletMutation struct {
	config
	op            Op
	typ           string
	id            *int
	balance       *float64
	addbalance    *float64
	currency      *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Wallet, error)
	predicates    []predicate.Wallet
}

var _ ent.Mutation = (*WalletMutation)(nil)

// walletOption allows management of the mutation configuration using functional options.
type walletOption func(*WalletMutation)

// newWalletMutation creates new mutation for the Wallet entity.
func newWalletMutation(c config, op Op, opts ...walletOption) *WalletMutation {
	m := &WalletMutation{
		config:        c,
		op:            op,
		typ:           TypeWallet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWalletID sets the ID field of the mutation.
func withWalletID(id int) walletOption {
	return func(m *WalletMutation) {
		var (
			err   error
			once  sync.Once
			value *Wallet
		)
		m.oldValue = func(ctx context.Context) (*Wallet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Wallet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWallet sets the old Wallet of the mutation.
func withWallet(node *Wallet) walletOption {
	return func(m *WalletMutation) {
		m.oldValue = func(context.Context) (*Wallet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WalletMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WalletMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WalletMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WalletMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Wallet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WalletMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WalletMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WalletMutation) ResetUserID() {
	m.user = nil
}

// SetBalance sets the "balance" field.
func (m *WalletMutation) SetBalance(f float64) {
	m.balance = &f
	m.addbalance = nil
}

// Balance returns the value of the "balance" field in the mutation.
func (m *WalletMutation) Balance() (r float64, exists bool) {
	v := m.balance
	if v == nil {
		return
	}
	return *v, true
}

// OldBalance returns the old "balance" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalance: %w", err)
	}
	return oldValue.Balance, nil
}

// AddBalance adds f to the "balance" field.
func (m *WalletMutation) AddBalance(f float64) {
	if m.addbalance != nil {
		*m.addbalance += f
	} else {
		m.addbalance = &f
	}
}

// AddedBalance returns the value that was added to the "balance" field in this mutation.
func (m *WalletMutation) AddedBalance() (r float64, exists bool) {
	v := m.addbalance
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalance resets all changes to the "balance" field.
func (m *WalletMutation) ResetBalance() {
	m.balance = nil
	m.addbalance = nil
}

// SetCurrency sets the "currency" field.
func (m *WalletMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *WalletMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *WalletMutation) ResetCurrency() {
	m.currency = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WalletMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WalletMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WalletMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *WalletMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[wallet.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *WalletMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *WalletMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *WalletMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the WalletMutation builder.
func (m *WalletMutation) Where(ps ...predicate.Wallet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WalletMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WalletMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Wallet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WalletMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WalletMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Wallet).
func (m *WalletMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WalletMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, wallet.FieldUserID)
	}
	if m.balance != nil {
		fields = append(fields, wallet.FieldBalance)
	}
	if m.currency != nil {
		fields = append(fields, wallet.FieldCurrency)
	}
	if m.updated_at != nil {
		fields = append(fields, wallet.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WalletMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wallet.FieldUserID:
		return m.UserID()
	case wallet.FieldBalance:
		return m.Balance()
	case wallet.FieldCurrency:
		return m.Currency()
	case wallet.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WalletMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wallet.FieldUserID:
		return m.OldUserID(ctx)
	case wallet.FieldBalance:
		return m.OldBalance(ctx)
	case wallet.FieldCurrency:
		return m.OldCurrency(ctx)
	case wallet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Wallet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WalletMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wallet.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case wallet.FieldBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalance(v)
		return nil
	case wallet.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case wallet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Wallet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WalletMutation) AddedFields() []string {
	var fields []string
	if m.addbalance != nil {
		fields = append(fields, wallet.FieldBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WalletMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wallet.FieldBalance:
		return m.AddedBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WalletMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wallet.FieldBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalance(v)
		return nil
	}
	return fmt.Errorf("unknown Wallet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WalletMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WalletMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WalletMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Wallet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WalletMutation) ResetField(name string) error {
	switch name {
	case wallet.FieldUserID:
		m.ResetUserID()
		return nil
	case wallet.FieldBalance:
		m.ResetBalance()
		return nil
	case wallet.FieldCurrency:
		m.ResetCurrency()
		return nil
	case wallet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Wallet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WalletMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, wallet.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WalletMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case wallet.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WalletMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WalletMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WalletMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, wallet.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WalletMutation) EdgeCleared(name string) bool {
	switch name {
	case wallet.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WalletMutation) ClearEdge(name string) error {
	switch name {
	case wallet.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Wallet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WalletMutation) ResetEdge(name string) error {
	switch name {
	case wallet.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Wallet edge %s", name)
}
