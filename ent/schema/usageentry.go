package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageEntry holds the schema definition for the UsageEntry entity.
// The ledger is append-only; entries are never updated or deleted.
type UsageEntry struct {
	ent.Schema
}

// Fields of the UsageEntry.
func (UsageEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("account_id").
			Comment("Account that performed the action"),
		field.Enum("action").
			Values(
				"reply_options",
				"generate_reply",
				"generate_compose",
				"analyze_category",
				"summarize",
			).
			Comment("Type of AI action performed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Timestamp of action"),
	}
}

// Edges of the UsageEntry.
func (UsageEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("usage_entries").
			Field("account_id").
			Unique().
			Required().
			Comment("Account that performed the action"),
	}
}

// Indexes of the UsageEntry.
func (UsageEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "created_at"),
		index.Fields("action"),
	}
}
