// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/replyflow/replyflow-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPasswordHash, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldName, v))
}

// GoogleID applies equality check predicate on the "google_id" field. It's identical to GoogleIDEQ.
func GoogleID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldGoogleID, v))
}

// IsPremium applies equality check predicate on the "is_premium" field. It's identical to IsPremiumEQ.
func IsPremium(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsPremium, v))
}

// TrialActive applies equality check predicate on the "trial_active" field. It's identical to TrialActiveEQ.
func TrialActive(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialActive, v))
}

// TrialStartDate applies equality check predicate on the "trial_start_date" field. It's identical to TrialStartDateEQ.
func TrialStartDate(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialStartDate, v))
}

// TrialEndDate applies equality check predicate on the "trial_end_date" field. It's identical to TrialEndDateEQ.
func TrialEndDate(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialEndDate, v))
}

// DailyUsage applies equality check predicate on the "daily_usage" field. It's identical to DailyUsageEQ.
func DailyUsage(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDailyUsage, v))
}

// MonthlyUsage applies equality check predicate on the "monthly_usage" field. It's identical to MonthlyUsageEQ.
func MonthlyUsage(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldMonthlyUsage, v))
}

// LastUsageDate applies equality check predicate on the "last_usage_date" field. It's identical to LastUsageDateEQ.
func LastUsageDate(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastUsageDate, v))
}

// LastResetDate applies equality check predicate on the "last_reset_date" field. It's identical to LastResetDateEQ.
func LastResetDate(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastResetDate, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeSubscriptionID applies equality check predicate on the "stripe_subscription_id" field. It's identical to StripeSubscriptionIDEQ.
func StripeSubscriptionID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// PendingReconciliation applies equality check predicate on the "pending_reconciliation" field. It's identical to PendingReconciliationEQ.
func PendingReconciliation(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPendingReconciliation, v))
}

// SubscriptionEventTime applies equality check predicate on the "subscription_event_time" field. It's identical to SubscriptionEventTimeEQ.
func SubscriptionEventTime(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldSubscriptionEventTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashIsNil applies the IsNil predicate on the "password_hash" field.
func PasswordHashIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldPasswordHash))
}

// PasswordHashNotNil applies the NotNil predicate on the "password_hash" field.
func PasswordHashNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldPasswordHash))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldPasswordHash, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldName, v))
}

// GoogleIDEQ applies the EQ predicate on the "google_id" field.
func GoogleIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldGoogleID, v))
}

// GoogleIDNEQ applies the NEQ predicate on the "google_id" field.
func GoogleIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldGoogleID, v))
}

// GoogleIDIn applies the In predicate on the "google_id" field.
func GoogleIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldGoogleID, vs...))
}

// GoogleIDNotIn applies the NotIn predicate on the "google_id" field.
func GoogleIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldGoogleID, vs...))
}

// GoogleIDGT applies the GT predicate on the "google_id" field.
func GoogleIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldGoogleID, v))
}

// GoogleIDGTE applies the GTE predicate on the "google_id" field.
func GoogleIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldGoogleID, v))
}

// GoogleIDLT applies the LT predicate on the "google_id" field.
func GoogleIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldGoogleID, v))
}

// GoogleIDLTE applies the LTE predicate on the "google_id" field.
func GoogleIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldGoogleID, v))
}

// GoogleIDContains applies the Contains predicate on the "google_id" field.
func GoogleIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldGoogleID, v))
}

// GoogleIDHasPrefix applies the HasPrefix predicate on the "google_id" field.
func GoogleIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldGoogleID, v))
}

// GoogleIDHasSuffix applies the HasSuffix predicate on the "google_id" field.
func GoogleIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldGoogleID, v))
}

// GoogleIDIsNil applies the IsNil predicate on the "google_id" field.
func GoogleIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldGoogleID))
}

// GoogleIDNotNil applies the NotNil predicate on the "google_id" field.
func GoogleIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldGoogleID))
}

// GoogleIDEqualFold applies the EqualFold predicate on the "google_id" field.
func GoogleIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldGoogleID, v))
}

// GoogleIDContainsFold applies the ContainsFold predicate on the "google_id" field.
func GoogleIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldGoogleID, v))
}

// SubscriptionStatusEQ applies the EQ predicate on the "subscription_status" field.
func SubscriptionStatusEQ(v SubscriptionStatus) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldSubscriptionStatus, v))
}

// SubscriptionStatusNEQ applies the NEQ predicate on the "subscription_status" field.
func SubscriptionStatusNEQ(v SubscriptionStatus) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldSubscriptionStatus, v))
}

// SubscriptionStatusIn applies the In predicate on the "subscription_status" field.
func SubscriptionStatusIn(vs ...SubscriptionStatus) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldSubscriptionStatus, vs...))
}

// SubscriptionStatusNotIn applies the NotIn predicate on the "subscription_status" field.
func SubscriptionStatusNotIn(vs ...SubscriptionStatus) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldSubscriptionStatus, vs...))
}

// IsPremiumEQ applies the EQ predicate on the "is_premium" field.
func IsPremiumEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsPremium, v))
}

// IsPremiumNEQ applies the NEQ predicate on the "is_premium" field.
func IsPremiumNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldIsPremium, v))
}

// PlanTypeEQ applies the EQ predicate on the "plan_type" field.
func PlanTypeEQ(v PlanType) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPlanType, v))
}

// PlanTypeNEQ applies the NEQ predicate on the "plan_type" field.
func PlanTypeNEQ(v PlanType) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPlanType, v))
}

// PlanTypeIn applies the In predicate on the "plan_type" field.
func PlanTypeIn(vs ...PlanType) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPlanType, vs...))
}

// PlanTypeNotIn applies the NotIn predicate on the "plan_type" field.
func PlanTypeNotIn(vs ...PlanType) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPlanType, vs...))
}

// PlanTypeIsNil applies the IsNil predicate on the "plan_type" field.
func PlanTypeIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldPlanType))
}

// PlanTypeNotNil applies the NotNil predicate on the "plan_type" field.
func PlanTypeNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldPlanType))
}

// TrialActiveEQ applies the EQ predicate on the "trial_active" field.
func TrialActiveEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialActive, v))
}

// TrialActiveNEQ applies the NEQ predicate on the "trial_active" field.
func TrialActiveNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTrialActive, v))
}

// TrialStartDateEQ applies the EQ predicate on the "trial_start_date" field.
func TrialStartDateEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialStartDate, v))
}

// TrialStartDateNEQ applies the NEQ predicate on the "trial_start_date" field.
func TrialStartDateNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTrialStartDate, v))
}

// TrialStartDateIn applies the In predicate on the "trial_start_date" field.
func TrialStartDateIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTrialStartDate, vs...))
}

// TrialStartDateNotIn applies the NotIn predicate on the "trial_start_date" field.
func TrialStartDateNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTrialStartDate, vs...))
}

// TrialStartDateGT applies the GT predicate on the "trial_start_date" field.
func TrialStartDateGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldTrialStartDate, v))
}

// TrialStartDateGTE applies the GTE predicate on the "trial_start_date" field.
func TrialStartDateGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldTrialStartDate, v))
}

// TrialStartDateLT applies the LT predicate on the "trial_start_date" field.
func TrialStartDateLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldTrialStartDate, v))
}

// TrialStartDateLTE applies the LTE predicate on the "trial_start_date" field.
func TrialStartDateLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldTrialStartDate, v))
}

// TrialStartDateIsNil applies the IsNil predicate on the "trial_start_date" field.
func TrialStartDateIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldTrialStartDate))
}

// TrialStartDateNotNil applies the NotNil predicate on the "trial_start_date" field.
func TrialStartDateNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldTrialStartDate))
}

// TrialEndDateEQ applies the EQ predicate on the "trial_end_date" field.
func TrialEndDateEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialEndDate, v))
}

// TrialEndDateNEQ applies the NEQ predicate on the "trial_end_date" field.
func TrialEndDateNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTrialEndDate, v))
}

// TrialEndDateIn applies the In predicate on the "trial_end_date" field.
func TrialEndDateIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTrialEndDate, vs...))
}

// TrialEndDateNotIn applies the NotIn predicate on the "trial_end_date" field.
func TrialEndDateNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTrialEndDate, vs...))
}

// TrialEndDateGT applies the GT predicate on the "trial_end_date" field.
func TrialEndDateGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldTrialEndDate, v))
}

// TrialEndDateGTE applies the GTE predicate on the "trial_end_date" field.
func TrialEndDateGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldTrialEndDate, v))
}

// TrialEndDateLT applies the LT predicate on the "trial_end_date" field.
func TrialEndDateLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldTrialEndDate, v))
}

// TrialEndDateLTE applies the LTE predicate on the "trial_end_date" field.
func TrialEndDateLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldTrialEndDate, v))
}

// TrialEndDateIsNil applies the IsNil predicate on the "trial_end_date" field.
func TrialEndDateIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldTrialEndDate))
}

// TrialEndDateNotNil applies the NotNil predicate on the "trial_end_date" field.
func TrialEndDateNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldTrialEndDate))
}

// DailyUsageEQ applies the EQ predicate on the "daily_usage" field.
func DailyUsageEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDailyUsage, v))
}

// DailyUsageNEQ applies the NEQ predicate on the "daily_usage" field.
func DailyUsageNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldDailyUsage, v))
}

// DailyUsageIn applies the In predicate on the "daily_usage" field.
func DailyUsageIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldDailyUsage, vs...))
}

// DailyUsageNotIn applies the NotIn predicate on the "daily_usage" field.
func DailyUsageNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldDailyUsage, vs...))
}

// DailyUsageGT applies the GT predicate on the "daily_usage" field.
func DailyUsageGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldDailyUsage, v))
}

// DailyUsageGTE applies the GTE predicate on the "daily_usage" field.
func DailyUsageGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldDailyUsage, v))
}

// DailyUsageLT applies the LT predicate on the "daily_usage" field.
func DailyUsageLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldDailyUsage, v))
}

// DailyUsageLTE applies the LTE predicate on the "daily_usage" field.
func DailyUsageLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldDailyUsage, v))
}

// MonthlyUsageEQ applies the EQ predicate on the "monthly_usage" field.
func MonthlyUsageEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldMonthlyUsage, v))
}

// MonthlyUsageNEQ applies the NEQ predicate on the "monthly_usage" field.
func MonthlyUsageNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldMonthlyUsage, v))
}

// MonthlyUsageIn applies the In predicate on the "monthly_usage" field.
func MonthlyUsageIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldMonthlyUsage, vs...))
}

// MonthlyUsageNotIn applies the NotIn predicate on the "monthly_usage" field.
func MonthlyUsageNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldMonthlyUsage, vs...))
}

// MonthlyUsageGT applies the GT predicate on the "monthly_usage" field.
func MonthlyUsageGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldMonthlyUsage, v))
}

// MonthlyUsageGTE applies the GTE predicate on the "monthly_usage" field.
func MonthlyUsageGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldMonthlyUsage, v))
}

// MonthlyUsageLT applies the LT predicate on the "monthly_usage" field.
func MonthlyUsageLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldMonthlyUsage, v))
}

// MonthlyUsageLTE applies the LTE predicate on the "monthly_usage" field.
func MonthlyUsageLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldMonthlyUsage, v))
}

// LastUsageDateEQ applies the EQ predicate on the "last_usage_date" field.
func LastUsageDateEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastUsageDate, v))
}

// LastUsageDateNEQ applies the NEQ predicate on the "last_usage_date" field.
func LastUsageDateNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastUsageDate, v))
}

// LastUsageDateIn applies the In predicate on the "last_usage_date" field.
func LastUsageDateIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastUsageDate, vs...))
}

// LastUsageDateNotIn applies the NotIn predicate on the "last_usage_date" field.
func LastUsageDateNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastUsageDate, vs...))
}

// LastUsageDateGT applies the GT predicate on the "last_usage_date" field.
func LastUsageDateGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastUsageDate, v))
}

// LastUsageDateGTE applies the GTE predicate on the "last_usage_date" field.
func LastUsageDateGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastUsageDate, v))
}

// LastUsageDateLT applies the LT predicate on the "last_usage_date" field.
func LastUsageDateLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastUsageDate, v))
}

// LastUsageDateLTE applies the LTE predicate on the "last_usage_date" field.
func LastUsageDateLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastUsageDate, v))
}

// LastUsageDateIsNil applies the IsNil predicate on the "last_usage_date" field.
func LastUsageDateIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldLastUsageDate))
}

// LastUsageDateNotNil applies the NotNil predicate on the "last_usage_date" field.
func LastUsageDateNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldLastUsageDate))
}

// LastResetDateEQ applies the EQ predicate on the "last_reset_date" field.
func LastResetDateEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastResetDate, v))
}

// LastResetDateNEQ applies the NEQ predicate on the "last_reset_date" field.
func LastResetDateNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastResetDate, v))
}

// LastResetDateIn applies the In predicate on the "last_reset_date" field.
func LastResetDateIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastResetDate, vs...))
}

// LastResetDateNotIn applies the NotIn predicate on the "last_reset_date" field.
func LastResetDateNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastResetDate, vs...))
}

// LastResetDateGT applies the GT predicate on the "last_reset_date" field.
func LastResetDateGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastResetDate, v))
}

// LastResetDateGTE applies the GTE predicate on the "last_reset_date" field.
func LastResetDateGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastResetDate, v))
}

// LastResetDateLT applies the LT predicate on the "last_reset_date" field.
func LastResetDateLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastResetDate, v))
}

// LastResetDateLTE applies the LTE predicate on the "last_reset_date" field.
func LastResetDateLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastResetDate, v))
}

// LastResetDateIsNil applies the IsNil predicate on the "last_reset_date" field.
func LastResetDateIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldLastResetDate))
}

// LastResetDateNotNil applies the NotNil predicate on the "last_reset_date" field.
func LastResetDateNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldLastResetDate))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// StripeSubscriptionIDEQ applies the EQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDNEQ applies the NEQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIn applies the In predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDNotIn applies the NotIn predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDGT applies the GT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDGTE applies the GTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLT applies the LT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLTE applies the LTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContains applies the Contains predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasPrefix applies the HasPrefix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasSuffix applies the HasSuffix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIsNil applies the IsNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDNotNil applies the NotNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDEqualFold applies the EqualFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContainsFold applies the ContainsFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldStripeSubscriptionID, v))
}

// PendingReconciliationEQ applies the EQ predicate on the "pending_reconciliation" field.
func PendingReconciliationEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPendingReconciliation, v))
}

// PendingReconciliationNEQ applies the NEQ predicate on the "pending_reconciliation" field.
func PendingReconciliationNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPendingReconciliation, v))
}

// SubscriptionEventTimeEQ applies the EQ predicate on the "subscription_event_time" field.
func SubscriptionEventTimeEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldSubscriptionEventTime, v))
}

// SubscriptionEventTimeNEQ applies the NEQ predicate on the "subscription_event_time" field.
func SubscriptionEventTimeNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldSubscriptionEventTime, v))
}

// SubscriptionEventTimeIn applies the In predicate on the "subscription_event_time" field.
func SubscriptionEventTimeIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldSubscriptionEventTime, vs...))
}

// SubscriptionEventTimeNotIn applies the NotIn predicate on the "subscription_event_time" field.
func SubscriptionEventTimeNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldSubscriptionEventTime, vs...))
}

// SubscriptionEventTimeGT applies the GT predicate on the "subscription_event_time" field.
func SubscriptionEventTimeGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldSubscriptionEventTime, v))
}

// SubscriptionEventTimeGTE applies the GTE predicate on the "subscription_event_time" field.
func SubscriptionEventTimeGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldSubscriptionEventTime, v))
}

// SubscriptionEventTimeLT applies the LT predicate on the "subscription_event_time" field.
func SubscriptionEventTimeLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldSubscriptionEventTime, v))
}

// SubscriptionEventTimeLTE applies the LTE predicate on the "subscription_event_time" field.
func SubscriptionEventTimeLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldSubscriptionEventTime, v))
}

// SubscriptionEventTimeIsNil applies the IsNil predicate on the "subscription_event_time" field.
func SubscriptionEventTimeIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldSubscriptionEventTime))
}

// SubscriptionEventTimeNotNil applies the NotNil predicate on the "subscription_event_time" field.
func SubscriptionEventTimeNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldSubscriptionEventTime))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUsageEntries applies the HasEdge predicate on the "usage_entries" edge.
func HasUsageEntries() predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsageEntriesTable, UsageEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsageEntriesWith applies the HasEdge predicate on the "usage_entries" edge with a given conditions (other predicates).
func HasUsageEntriesWith(preds ...predicate.UsageEntry) predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := newUsageEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
