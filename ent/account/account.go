// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldGoogleID holds the string denoting the google_id field in the database.
	FieldGoogleID = "google_id"
	// FieldSubscriptionStatus holds the string denoting the subscription_status field in the database.
	FieldSubscriptionStatus = "subscription_status"
	// FieldIsPremium holds the string denoting the is_premium field in the database.
	FieldIsPremium = "is_premium"
	// FieldPlanType holds the string denoting the plan_type field in the database.
	FieldPlanType = "plan_type"
	// FieldTrialActive holds the string denoting the trial_active field in the database.
	FieldTrialActive = "trial_active"
	// FieldTrialStartDate holds the string denoting the trial_start_date field in the database.
	FieldTrialStartDate = "trial_start_date"
	// FieldTrialEndDate holds the string denoting the trial_end_date field in the database.
	FieldTrialEndDate = "trial_end_date"
	// FieldDailyUsage holds the string denoting the daily_usage field in the database.
	FieldDailyUsage = "daily_usage"
	// FieldMonthlyUsage holds the string denoting the monthly_usage field in the database.
	FieldMonthlyUsage = "monthly_usage"
	// FieldLastUsageDate holds the string denoting the last_usage_date field in the database.
	FieldLastUsageDate = "last_usage_date"
	// FieldLastResetDate holds the string denoting the last_reset_date field in the database.
	FieldLastResetDate = "last_reset_date"
	// FieldStripeCustomerID holds the string denoting the stripe_customer_id field in the database.
	FieldStripeCustomerID = "stripe_customer_id"
	// FieldStripeSubscriptionID holds the string denoting the stripe_subscription_id field in the database.
	FieldStripeSubscriptionID = "stripe_subscription_id"
	// FieldPendingReconciliation holds the string denoting the pending_reconciliation field in the database.
	FieldPendingReconciliation = "pending_reconciliation"
	// FieldSubscriptionEventTime holds the string denoting the subscription_event_time field in the database.
	FieldSubscriptionEventTime = "subscription_event_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUsageEntries holds the string denoting the usage_entries edge name in mutations.
	EdgeUsageEntries = "usage_entries"
	// Table holds the table name of the account in the database.
	Table = "accounts"
	// UsageEntriesTable is the table that holds the usage_entries relation/edge.
	UsageEntriesTable = "usage_entries"
	// UsageEntriesInverseTable is the table name for the UsageEntry entity.
	// It exists in this package in order to avoid circular dependency with the "usageentry" package.
	UsageEntriesInverseTable = "usage_entries"
	// UsageEntriesColumn is the table column denoting the usage_entries relation/edge.
	UsageEntriesColumn = "account_id"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldPasswordHash,
	FieldName,
	FieldGoogleID,
	FieldSubscriptionStatus,
	FieldIsPremium,
	FieldPlanType,
	FieldTrialActive,
	FieldTrialStartDate,
	FieldTrialEndDate,
	FieldDailyUsage,
	FieldMonthlyUsage,
	FieldLastUsageDate,
	FieldLastResetDate,
	FieldStripeCustomerID,
	FieldStripeSubscriptionID,
	FieldPendingReconciliation,
	FieldSubscriptionEventTime,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultIsPremium holds the default value on creation for the "is_premium" field.
	DefaultIsPremium bool
	// DefaultTrialActive holds the default value on creation for the "trial_active" field.
	DefaultTrialActive bool
	// DefaultDailyUsage holds the default value on creation for the "daily_usage" field.
	DefaultDailyUsage int
	// DailyUsageValidator is a validator for the "daily_usage" field. It is called by the builders before save.
	DailyUsageValidator func(int) error
	// DefaultMonthlyUsage holds the default value on creation for the "monthly_usage" field.
	DefaultMonthlyUsage int
	// MonthlyUsageValidator is a validator for the "monthly_usage" field. It is called by the builders before save.
	MonthlyUsageValidator func(int) error
	// DefaultPendingReconciliation holds the default value on creation for the "pending_reconciliation" field.
	DefaultPendingReconciliation bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SubscriptionStatus defines the type for the "subscription_status" enum field.
type SubscriptionStatus string

// SubscriptionStatusNone is the default value of the SubscriptionStatus enum.
const DefaultSubscriptionStatus = SubscriptionStatusNone

// SubscriptionStatus values.
const (
	SubscriptionStatusNone     SubscriptionStatus = "none"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusFreemium SubscriptionStatus = "freemium"
)

func (ss SubscriptionStatus) String() string {
	return string(ss)
}

// SubscriptionStatusValidator is a validator for the "subscription_status" field enum values. It is called by the builders before save.
func SubscriptionStatusValidator(ss SubscriptionStatus) error {
	switch ss {
	case SubscriptionStatusNone, SubscriptionStatusTrialing, SubscriptionStatusActive, SubscriptionStatusPastDue, SubscriptionStatusCanceled, SubscriptionStatusFreemium:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for subscription_status field: %q", ss)
	}
}

// PlanType defines the type for the "plan_type" enum field.
type PlanType string

// PlanType values.
const (
	PlanTypeMonthly PlanType = "monthly"
	PlanTypeYearly  PlanType = "yearly"
)

func (pt PlanType) String() string {
	return string(pt)
}

// PlanTypeValidator is a validator for the "plan_type" field enum values. It is called by the builders before save.
func PlanTypeValidator(pt PlanType) error {
	switch pt {
	case PlanTypeMonthly, PlanTypeYearly:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for plan_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByGoogleID orders the results by the google_id field.
func ByGoogleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoogleID, opts...).ToFunc()
}

// BySubscriptionStatus orders the results by the subscription_status field.
func BySubscriptionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionStatus, opts...).ToFunc()
}

// ByIsPremium orders the results by the is_premium field.
func ByIsPremium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPremium, opts...).ToFunc()
}

// ByPlanType orders the results by the plan_type field.
func ByPlanType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanType, opts...).ToFunc()
}

// ByTrialActive orders the results by the trial_active field.
func ByTrialActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialActive, opts...).ToFunc()
}

// ByTrialStartDate orders the results by the trial_start_date field.
func ByTrialStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialStartDate, opts...).ToFunc()
}

// ByTrialEndDate orders the results by the trial_end_date field.
func ByTrialEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialEndDate, opts...).ToFunc()
}

// ByDailyUsage orders the results by the daily_usage field.
func ByDailyUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyUsage, opts...).ToFunc()
}

// ByMonthlyUsage orders the results by the monthly_usage field.
func ByMonthlyUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyUsage, opts...).ToFunc()
}

// ByLastUsageDate orders the results by the last_usage_date field.
func ByLastUsageDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsageDate, opts...).ToFunc()
}

// ByLastResetDate orders the results by the last_reset_date field.
func ByLastResetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResetDate, opts...).ToFunc()
}

// ByStripeCustomerID orders the results by the stripe_customer_id field.
func ByStripeCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeCustomerID, opts...).ToFunc()
}

// ByStripeSubscriptionID orders the results by the stripe_subscription_id field.
func ByStripeSubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeSubscriptionID, opts...).ToFunc()
}

// ByPendingReconciliation orders the results by the pending_reconciliation field.
func ByPendingReconciliation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingReconciliation, opts...).ToFunc()
}

// BySubscriptionEventTime orders the results by the subscription_event_time field.
func BySubscriptionEventTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionEventTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUsageEntriesCount orders the results by usage_entries count.
func ByUsageEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsageEntriesStep(), opts...)
	}
}

// ByUsageEntries orders the results by usage_entries terms.
func ByUsageEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsageEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsageEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsageEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsageEntriesTable, UsageEntriesColumn),
	)
}
