package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Account email address, stored lowercase"),
		field.String("password_hash").
			Optional().
			Sensitive().
			Comment("Bcrypt hashed password, empty for OAuth-only accounts"),
		field.String("name").
			NotEmpty().
			Comment("Account holder full name"),
		field.String("google_id").
			Optional().
			Nillable().
			Comment("Google OAuth subject id"),
		field.Enum("subscription_status").
			Values("none", "trialing", "active", "past_due", "canceled", "freemium").
			Default("none").
			Comment("Subscription lifecycle state"),
		field.Bool("is_premium").
			Default(false).
			Comment("Whether the account has premium access"),
		field.Enum("plan_type").
			Values("monthly", "yearly").
			Optional().
			Nillable().
			Comment("Billing interval of the subscription, once known"),
		field.Bool("trial_active").
			Default(false).
			Comment("Whether a trial is currently running"),
		field.Time("trial_start_date").
			Optional().
			Nillable().
			Comment("When the trial started"),
		field.Time("trial_end_date").
			Optional().
			Nillable().
			Comment("When the trial ends"),
		field.Int("daily_usage").
			Default(0).
			NonNegative().
			Comment("AI actions used today"),
		field.Int("monthly_usage").
			Default(0).
			NonNegative().
			Comment("AI actions used this month"),
		field.Time("last_usage_date").
			Optional().
			Nillable().
			Comment("Day the daily counter belongs to"),
		field.Time("last_reset_date").
			Optional().
			Nillable().
			Comment("Month the monthly counter belongs to"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID"),
		field.String("stripe_subscription_id").
			Optional().
			Nillable().
			Comment("Stripe subscription ID"),
		field.Bool("pending_reconciliation").
			Default(false).
			Comment("Activated out of band, awaiting a real subscription id from a webhook"),
		field.Time("subscription_event_time").
			Optional().
			Nillable().
			Comment("Created timestamp of the newest applied subscription event"),
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

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("usage_entries", UsageEntry.Type).
			Comment("Account's usage ledger entries"),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stripe_customer_id"),
		index.Fields("stripe_subscription_id"),
		index.Fields("trial_active", "trial_end_date"),
		index.Fields("subscription_status"),
	}
}
