// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "google_id", Type: field.TypeString, Nullable: true},
		{Name: "subscription_status", Type: field.TypeEnum, Enums: []string{"none", "trialing", "active", "past_due", "canceled", "freemium"}, Default: "none"},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "plan_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"monthly", "yearly"}},
		{Name: "trial_active", Type: field.TypeBool, Default: false},
		{Name: "trial_start_date", Type: field.TypeTime, Nullable: true},
		{Name: "trial_end_date", Type: field.TypeTime, Nullable: true},
		{Name: "daily_usage", Type: field.TypeInt, Default: 0},
		{Name: "monthly_usage", Type: field.TypeInt, Default: 0},
		{Name: "last_usage_date", Type: field.TypeTime, Nullable: true},
		{Name: "last_reset_date", Type: field.TypeTime, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "pending_reconciliation", Type: field.TypeBool, Default: false},
		{Name: "subscription_event_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[15]},
			},
			{
				Name:    "account_stripe_subscription_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[16]},
			},
			{
				Name:    "account_trial_active_trial_end_date",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[8], AccountsColumns[10]},
			},
			{
				Name:    "account_subscription_status",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[5]},
			},
		},
	}
	// UsageEntriesColumns holds the columns for the "usage_entries" table.
	UsageEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"reply_options", "generate_reply", "generate_compose", "analyze_category", "summarize"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
	}
	// UsageEntriesTable holds the schema information for the "usage_entries" table.
	UsageEntriesTable = &schema.Table{
		Name:       "usage_entries",
		Columns:    UsageEntriesColumns,
		PrimaryKey: []*schema.Column{UsageEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_entries_accounts_usage_entries",
				Columns:    []*schema.Column{UsageEntriesColumns[3]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usageentry_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageEntriesColumns[3], UsageEntriesColumns[2]},
			},
			{
				Name:    "usageentry_action",
				Unique:  false,
				Columns: []*schema.Column{UsageEntriesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		UsageEntriesTable,
	}
)

func init() {
	UsageEntriesTable.ForeignKeys[0].RefTable = AccountsTable
}
