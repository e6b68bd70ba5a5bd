// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/transaction"
	"github.com/fanvault/backend/ent/user"
)

// Commission is the model entity for the Commission schema.
type Commission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Referrer being paid
	RecipientUserID int `json:"recipient_user_id,omitempty"`
	// User whose transaction generated this commission
	EarningUserID int `json:"earning_user_id,omitempty"`
	// Transaction that generated this commission
	SourceTransactionID int `json:"source_transaction_id,omitempty"`
	// 1 = direct referrer, 2 = referrer's referrer
	Tier int `json:"tier,omitempty"`
	// Rate applied at computation time (0.10 or 0.02)
	CommissionRate float64 `json:"commission_rate,omitempty"`
	// Originating transaction amount
	BaseAmount float64 `json:"base_amount,omitempty"`
	// base_amount * commission_rate, rounded to cents
	CommissionAmount float64 `json:"commission_amount,omitempty"`
	// Currency carried through from the transaction
	Currency string `json:"currency,omitempty"`
	// pending is the only non-terminal state
	Status commission.Status `json:"status,omitempty"`
	// Payout transaction created when this commission was paid
	PaymentTransactionID *int `json:"payment_transaction_id,omitempty"`
	// Why the payout failed, if it did
	FailureReason *string `json:"failure_reason,omitempty"`
	// When the payout transaction was created
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommissionQuery when eager-loading is set.
	Edges        CommissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommissionEdges holds the relations/edges for other nodes in the graph.
type CommissionEdges struct {
	// Referrer being paid
	Recipient *User `json:"recipient,omitempty"`
	// Transaction that generated this commission
	SourceTransaction *Transaction `json:"source_transaction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RecipientOrErr returns the Recipient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionEdges) RecipientOrErr() (*User, error) {
	if e.Recipient != nil {
		return e.Recipient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "recipient"}
}

// SourceTransactionOrErr returns the SourceTransaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionEdges) SourceTransactionOrErr() (*Transaction, error) {
	if e.SourceTransaction != nil {
		return e.SourceTransaction, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transaction.Label}
	}
	return nil, &NotLoadedError{edge: "source_transaction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Commission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commission.FieldCommissionRate, commission.FieldBaseAmount, commission.FieldCommissionAmount:
			values[i] = new(sql.NullFloat64)
		case commission.FieldID, commission.FieldRecipientUserID, commission.FieldEarningUserID, commission.FieldSourceTransactionID, commission.FieldTier, commission.FieldPaymentTransactionID:
			values[i] = new(sql.NullInt64)
		case commission.FieldCurrency, commission.FieldStatus, commission.FieldFailureReason:
			values[i] = new(sql.NullString)
		case commission.FieldPaidAt, commission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Commission fields.
func (_m *Commission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case commission.FieldRecipientUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_user_id", values[i])
			} else if value.Valid {
				_m.RecipientUserID = int(value.Int64)
			}
		case commission.FieldEarningUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field earning_user_id", values[i])
			} else if value.Valid {
				_m.EarningUserID = int(value.Int64)
			}
		case commission.FieldSourceTransactionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_transaction_id", values[i])
			} else if value.Valid {
				_m.SourceTransactionID = int(value.Int64)
			}
		case commission.FieldTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = int(value.Int64)
			}
		case commission.FieldCommissionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_rate", values[i])
			} else if value.Valid {
				_m.CommissionRate = value.Float64
			}
		case commission.FieldBaseAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field base_amount", values[i])
			} else if value.Valid {
				_m.BaseAmount = value.Float64
			}
		case commission.FieldCommissionAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_amount", values[i])
			} else if value.Valid {
				_m.CommissionAmount = value.Float64
			}
		case commission.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case commission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = commission.Status(value.String)
			}
		case commission.FieldPaymentTransactionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field payment_transaction_id", values[i])
			} else if value.Valid {
				_m.PaymentTransactionID = new(int)
				*_m.PaymentTransactionID = int(value.Int64)
			}
		case commission.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case commission.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				_m.PaidAt = new(time.Time)
				*_m.PaidAt = value.Time
			}
		case commission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Commission.
// This includes values selected through modifiers, order, etc.
func (_m *Commission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecipient queries the "recipient" edge of the Commission entity.
func (_m *Commission) QueryRecipient() *UserQuery {
	return NewCommissionClient(_m.config).QueryRecipient(_m)
}

// QuerySourceTransaction queries the "source_transaction" edge of the Commission entity.
func (_m *Commission) QuerySourceTransaction() *TransactionQuery {
	return NewCommissionClient(_m.config).QuerySourceTransaction(_m)
}

// Update returns a builder for updating this Commission.
// Note that you need to call Commission.Unwrap() before calling this method if this Commission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Commission) Update() *CommissionUpdateOne {
	return NewCommissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Commission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Commission) Unwrap() *Commission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Commission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Commission) String() string {
	var builder strings.Builder
	builder.WriteString("Commission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recipient_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecipientUserID))
	builder.WriteString(", ")
	builder.WriteString("earning_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EarningUserID))
	builder.WriteString(", ")
	builder.WriteString("source_transaction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTransactionID))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("commission_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionRate))
	builder.WriteString(", ")
	builder.WriteString("base_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseAmount))
	builder.WriteString(", ")
	builder.WriteString("commission_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionAmount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.PaymentTransactionID; v != nil {
		builder.WriteString("payment_transaction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Commissions is a parsable slice of Commission.
type Commissions []*Commission
