package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			NotEmpty().
			MaxLen(64).
			Comment("Public handle, also used to seed referral codes"),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("display_name").
			Optional().
			Comment("Display name shown on the profile"),
		field.Enum("role").
			Values("user", "creator", "admin").
			Default("user").
			Comment("User role for access control"),
		field.String("payout_address").
			Optional().
			Nillable().
			Sensitive().
			Comment("Destination for commission payouts (empty = payouts fail)"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether the account is active"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("referral_account", ReferralAccount.Type).
			Unique().
			Comment("The user's referral account, created at registration"),
		edge.To("commissions_received", Commission.Type).
			Comment("Commissions owed to this user as a referrer"),
		edge.To("transactions", Transaction.Type).
			Comment("Transactions where this user is the recipient"),
		edge.To("wallet", Wallet.Type).
			Unique().
			Comment("The user's balance wallet"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("email").Unique(),
		index.Fields("created_at"),
	}
}
