package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Commission holds the schema definition for the Commission entity.
// At most one row exists per (source_transaction_id, tier); the composite
// unique index is what makes commission creation idempotent.
type Commission struct {
	ent.Schema
}

// Fields of the Commission.
func (Commission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("recipient_user_id").
			Comment("Referrer being paid"),
		field.Int("earning_user_id").
			Comment("User whose transaction generated this commission"),
		field.Int("source_transaction_id").
			Comment("Transaction that generated this commission"),
		field.Int("tier").
			Min(1).
			Max(2).
			Comment("1 = direct referrer, 2 = referrer's referrer"),
		field.Float("commission_rate").
			Comment("Rate applied at computation time (0.10 or 0.02)"),
		field.Float("base_amount").
			Comment("Originating transaction amount"),
		field.Float("commission_amount").
			Comment("base_amount * commission_rate, rounded to cents"),
		field.String("currency").
			Default("USD").
			MaxLen(8).
			Comment("Currency carried through from the transaction"),
		field.Enum("status").
			Values("pending", "paid", "failed", "cancelled").
			Default("pending").
			Comment("pending is the only non-terminal state"),
		field.Int("payment_transaction_id").
			Optional().
			Nillable().
			Comment("Payout transaction created when this commission was paid"),
		field.String("failure_reason").
			Optional().
			Nillable().
			Comment("Why the payout failed, if it did"),
		field.Time("paid_at").
			Optional().
			Nillable().
			Comment("When the payout transaction was created"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Commission.
func (Commission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipient", User.Type).
			Ref("commissions_received").
			Field("recipient_user_id").
			Unique().
			Required().
			Comment("Referrer being paid"),
		edge.From("source_transaction", Transaction.Type).
			Ref("commissions").
			Field("source_transaction_id").
			Unique().
			Required().
			Comment("Transaction that generated this commission"),
	}
}

// Indexes of the Commission.
func (Commission) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotence guard: reprocessing a transaction cannot duplicate a tier.
		index.Fields("source_transaction_id", "tier").Unique(),
		index.Fields("recipient_user_id", "status"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
