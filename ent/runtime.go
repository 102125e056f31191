// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/schema"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[0].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[2].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	// accountDescIsPremium is the schema descriptor for is_premium field.
	accountDescIsPremium := accountFields[5].Descriptor()
	// account.DefaultIsPremium holds the default value on creation for the is_premium field.
	account.DefaultIsPremium = accountDescIsPremium.Default.(bool)
	// accountDescTrialActive is the schema descriptor for trial_active field.
	accountDescTrialActive := accountFields[7].Descriptor()
	// account.DefaultTrialActive holds the default value on creation for the trial_active field.
	account.DefaultTrialActive = accountDescTrialActive.Default.(bool)
	// accountDescDailyUsage is the schema descriptor for daily_usage field.
	accountDescDailyUsage := accountFields[10].Descriptor()
	// account.DefaultDailyUsage holds the default value on creation for the daily_usage field.
	account.DefaultDailyUsage = accountDescDailyUsage.Default.(int)
	// account.DailyUsageValidator is a validator for the "daily_usage" field. It is called by the builders before save.
	account.DailyUsageValidator = accountDescDailyUsage.Validators[0].(func(int) error)
	// accountDescMonthlyUsage is the schema descriptor for monthly_usage field.
	accountDescMonthlyUsage := accountFields[11].Descriptor()
	// account.DefaultMonthlyUsage holds the default value on creation for the monthly_usage field.
	account.DefaultMonthlyUsage = accountDescMonthlyUsage.Default.(int)
	// account.MonthlyUsageValidator is a validator for the "monthly_usage" field. It is called by the builders before save.
	account.MonthlyUsageValidator = accountDescMonthlyUsage.Validators[0].(func(int) error)
	// accountDescPendingReconciliation is the schema descriptor for pending_reconciliation field.
	accountDescPendingReconciliation := accountFields[16].Descriptor()
	// account.DefaultPendingReconciliation holds the default value on creation for the pending_reconciliation field.
	account.DefaultPendingReconciliation = accountDescPendingReconciliation.Default.(bool)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[18].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[19].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	usageentryFields := schema.UsageEntry{}.Fields()
	_ = usageentryFields
	// usageentryDescCreatedAt is the schema descriptor for created_at field.
	usageentryDescCreatedAt := usageentryFields[2].Descriptor()
	// usageentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageentry.DefaultCreatedAt = usageentryDescCreatedAt.Default.(func() time.Time)
}
