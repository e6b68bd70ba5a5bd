// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/user"
)

// ReferralAccount is the model entity for the ReferralAccount schema.
type ReferralAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User who owns this account; unique so attribution can never run twice
	OwnerUserID int `json:"owner_user_id,omitempty"`
	// Shareable referral code, uppercase alphanumeric
	Code string `json:"code,omitempty"`
	// Ordered user ids referred directly by the owner
	DirectReferrals []int `json:"direct_referrals,omitempty"`
	// User who referred the owner
	Tier1ReferrerID *int `json:"tier1_referrer_id,omitempty"`
	// The tier-1 referrer's own referrer
	Tier2ReferrerID *int `json:"tier2_referrer_id,omitempty"`
	// Lifetime count of direct referrals
	TotalReferrals int `json:"total_referrals,omitempty"`
	// Direct referrals with active accounts
	ActiveReferrals int `json:"active_referrals,omitempty"`
	// Lifetime commissions across both tiers
	TotalCommissionEarned float64 `json:"total_commission_earned,omitempty"`
	// Commissions earned as a tier-1 referrer
	Tier1CommissionEarned float64 `json:"tier1_commission_earned,omitempty"`
	// Commissions earned as a tier-2 referrer
	Tier2CommissionEarned float64 `json:"tier2_commission_earned,omitempty"`
	// Last referral signup or commission event
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// Inactive accounts cannot attribute new signups
	IsActive bool `json:"is_active,omitempty"`
	// Optional expiry for campaign codes
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// How this account came to exist
	Source referralaccount.Source `json:"source,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReferralAccountQuery when eager-loading is set.
	Edges        ReferralAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReferralAccountEdges holds the relations/edges for other nodes in the graph.
type ReferralAccountEdges struct {
	// User who owns this account
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReferralAccountEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReferralAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case referralaccount.FieldDirectReferrals:
			values[i] = new([]byte)
		case referralaccount.FieldIsActive:
			values[i] = new(sql.NullBool)
		case referralaccount.FieldTotalCommissionEarned, referralaccount.FieldTier1CommissionEarned, referralaccount.FieldTier2CommissionEarned:
			values[i] = new(sql.NullFloat64)
		case referralaccount.FieldID, referralaccount.FieldOwnerUserID, referralaccount.FieldTier1ReferrerID, referralaccount.FieldTier2ReferrerID, referralaccount.FieldTotalReferrals, referralaccount.FieldActiveReferrals:
			values[i] = new(sql.NullInt64)
		case referralaccount.FieldCode, referralaccount.FieldSource:
			values[i] = new(sql.NullString)
		case referralaccount.FieldLastActivityAt, referralaccount.FieldExpiresAt, referralaccount.FieldCreatedAt, referralaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReferralAccount fields.
func (_m *ReferralAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case referralaccount.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case referralaccount.FieldOwnerUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value.Valid {
				_m.OwnerUserID = int(value.Int64)
			}
		case referralaccount.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case referralaccount.FieldDirectReferrals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field direct_referrals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DirectReferrals); err != nil {
					return fmt.Errorf("unmarshal field direct_referrals: %w", err)
				}
			}
		case referralaccount.FieldTier1ReferrerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier1_referrer_id", values[i])
			} else if value.Valid {
				_m.Tier1ReferrerID = new(int)
				*_m.Tier1ReferrerID = int(value.Int64)
			}
		case referralaccount.FieldTier2ReferrerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier2_referrer_id", values[i])
			} else if value.Valid {
				_m.Tier2ReferrerID = new(int)
				*_m.Tier2ReferrerID = int(value.Int64)
			}
		case referralaccount.FieldTotalReferrals:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_referrals", values[i])
			} else if value.Valid {
				_m.TotalReferrals = int(value.Int64)
			}
		case referralaccount.FieldActiveReferrals:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_referrals", values[i])
			} else if value.Valid {
				_m.ActiveReferrals = int(value.Int64)
			}
		case referralaccount.FieldTotalCommissionEarned:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_commission_earned", values[i])
			} else if value.Valid {
				_m.TotalCommissionEarned = value.Float64
			}
		case referralaccount.FieldTier1CommissionEarned:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tier1_commission_earned", values[i])
			} else if value.Valid {
				_m.Tier1CommissionEarned = value.Float64
			}
		case referralaccount.FieldTier2CommissionEarned:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tier2_commission_earned", values[i])
			} else if value.Valid {
				_m.Tier2CommissionEarned = value.Float64
			}
		case referralaccount.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case referralaccount.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case referralaccount.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case referralaccount.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = referralaccount.Source(value.String)
			}
		case referralaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case referralaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReferralAccount.
// This includes values selected through modifiers, order, etc.
func (_m *ReferralAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the ReferralAccount entity.
func (_m *ReferralAccount) QueryOwner() *UserQuery {
	return NewReferralAccountClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this ReferralAccount.
// Note that you need to call ReferralAccount.Unwrap() before calling this method if this ReferralAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReferralAccount) Update() *ReferralAccountUpdateOne {
	return NewReferralAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReferralAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReferralAccount) Unwrap() *ReferralAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReferralAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReferralAccount) String() string {
	var builder strings.Builder
	builder.WriteString("ReferralAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerUserID))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("direct_referrals=")
	builder.WriteString(fmt.Sprintf("%v", _m.DirectReferrals))
	builder.WriteString(", ")
	if v := _m.Tier1ReferrerID; v != nil {
		builder.WriteString("tier1_referrer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tier2ReferrerID; v != nil {
		builder.WriteString("tier2_referrer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_referrals=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalReferrals))
	builder.WriteString(", ")
	builder.WriteString("active_referrals=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveReferrals))
	builder.WriteString(", ")
	builder.WriteString("total_commission_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCommissionEarned))
	builder.WriteString(", ")
	builder.WriteString("tier1_commission_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier1CommissionEarned))
	builder.WriteString(", ")
	builder.WriteString("tier2_commission_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier2CommissionEarned))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReferralAccounts is a parsable slice of ReferralAccount.
type ReferralAccounts []*ReferralAccount
