package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReferralAccount holds the schema definition for the ReferralAccount entity.
// One account exists per user that has ever been assigned a referral code;
// the two-tier referrer chain is denormalized onto it at attribution time.
type ReferralAccount struct {
	ent.Schema
}

// Fields of the ReferralAccount.
func (ReferralAccount) Fields() []ent.Field {
	return []ent.Field{
		field.Int("owner_user_id").
			Unique().
			Comment("User who owns this account; unique so attribution can never run twice"),
		field.String("code").
			Unique().
			NotEmpty().
			MinLen(6).
			MaxLen(12).
			Comment("Shareable referral code, uppercase alphanumeric"),
		field.Ints("direct_referrals").
			Optional().
			Comment("Ordered user ids referred directly by the owner"),
		field.Int("tier1_referrer_id").
			Optional().
			Nillable().
			Comment("User who referred the owner"),
		field.Int("tier2_referrer_id").
			Optional().
			Nillable().
			Comment("The tier-1 referrer's own referrer"),
		field.Int("total_referrals").
			Default(0).
			NonNegative().
			Comment("Lifetime count of direct referrals"),
		field.Int("active_referrals").
			Default(0).
			NonNegative().
			Comment("Direct referrals with active accounts"),
		field.Float("total_commission_earned").
			Default(0.0).
			Comment("Lifetime commissions across both tiers"),
		field.Float("tier1_commission_earned").
			Default(0.0).
			Comment("Commissions earned as a tier-1 referrer"),
		field.Float("tier2_commission_earned").
			Default(0.0).
			Comment("Commissions earned as a tier-2 referrer"),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("Last referral signup or commission event"),
		field.Bool("is_active").
			Default(true).
			Comment("Inactive accounts cannot attribute new signups"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Optional expiry for campaign codes"),
		field.Enum("source").
			Values("organic", "campaign", "influencer", "partner", "migration", "referral").
			Default("organic").
			Comment("How this account came to exist"),
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

// Edges of the ReferralAccount.
func (ReferralAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("referral_account").
			Field("owner_user_id").
			Unique().
			Required().
			Comment("User who owns this account"),
	}
}

// Indexes of the ReferralAccount.
func (ReferralAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
		index.Fields("owner_user_id").Unique(),
		index.Fields("is_active"),
		index.Fields("total_commission_earned"),
		index.Fields("source"),
	}
}
