package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transaction holds the schema definition for the Transaction entity.
// Monetizable events (subscriptions, tips, paid messages, post unlocks) and
// the payout transactions the commission engine emits share this ledger.
type Transaction struct {
	ent.Schema
}

// Fields of the Transaction.
func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.Float("amount").
			Comment("Gross amount of the transaction"),
		field.String("currency").
			Default("USD").
			MaxLen(8).
			Comment("ISO currency code"),
		field.Enum("type").
			Values("subscription", "tip", "message", "post", "payout").
			Comment("What kind of event this row records"),
		field.Enum("status").
			Values("pending", "completed", "failed").
			Default("pending").
			Comment("Only completed transactions generate commissions"),
		field.Int("sender_user_id").
			Optional().
			Nillable().
			Comment("Paying user, when known"),
		field.Int("recipient_user_id").
			Optional().
			Nillable().
			Comment("Earning user; commissions flow up from this user's chain"),
		field.String("reference").
			Optional().
			Comment("External or synthetic reference (set for payout rows)"),
		field.String("description").
			Optional().
			Comment("Human-readable description"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the transaction completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Transaction.
func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipient", User.Type).
			Ref("transactions").
			Field("recipient_user_id").
			Unique().
			Comment("Earning user"),
		edge.To("commissions", Commission.Type).
			Comment("Commissions generated by this transaction"),
	}
}

// Indexes of the Transaction.
func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_user_id", "status"),
		index.Fields("type"),
		index.Fields("status"),
		index.Fields("created_at"),
		index.Fields("reference"),
	}
}
