// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/replyflow/replyflow-api/ent/account"
)

// Account is the model entity for the Account schema.
type Account struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Account email address, stored lowercase
	Email string `json:"email,omitempty"`
	// Bcrypt hashed password, empty for OAuth-only accounts
	PasswordHash string `json:"-"`
	// Account holder full name
	Name string `json:"name,omitempty"`
	// Google OAuth subject id
	GoogleID *string `json:"google_id,omitempty"`
	// Subscription lifecycle state
	SubscriptionStatus account.SubscriptionStatus `json:"subscription_status,omitempty"`
	// Whether the account has premium access
	IsPremium bool `json:"is_premium,omitempty"`
	// Billing interval of the subscription, once known
	PlanType *account.PlanType `json:"plan_type,omitempty"`
	// Whether a trial is currently running
	TrialActive bool `json:"trial_active,omitempty"`
	// When the trial started
	TrialStartDate *time.Time `json:"trial_start_date,omitempty"`
	// When the trial ends
	TrialEndDate *time.Time `json:"trial_end_date,omitempty"`
	// AI actions used today
	DailyUsage int `json:"daily_usage,omitempty"`
	// AI actions used this month
	MonthlyUsage int `json:"monthly_usage,omitempty"`
	// Day the daily counter belongs to
	LastUsageDate *time.Time `json:"last_usage_date,omitempty"`
	// Month the monthly counter belongs to
	LastResetDate *time.Time `json:"last_reset_date,omitempty"`
	// Stripe customer ID
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	// Stripe subscription ID
	StripeSubscriptionID *string `json:"stripe_subscription_id,omitempty"`
	// Activated out of band, awaiting a real subscription id from a webhook
	PendingReconciliation bool `json:"pending_reconciliation,omitempty"`
	// Created timestamp of the newest applied subscription event
	SubscriptionEventTime *time.Time `json:"subscription_event_time,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccountQuery when eager-loading is set.
	Edges        AccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccountEdges holds the relations/edges for other nodes in the graph.
type AccountEdges struct {
	// Account's usage ledger entries
	UsageEntries []*UsageEntry `json:"usage_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UsageEntriesOrErr returns the UsageEntries value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) UsageEntriesOrErr() ([]*UsageEntry, error) {
	if e.loadedTypes[0] {
		return e.UsageEntries, nil
	}
	return nil, &NotLoadedError{edge: "usage_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Account) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case account.FieldIsPremium, account.FieldTrialActive, account.FieldPendingReconciliation:
			values[i] = new(sql.NullBool)
		case account.FieldID, account.FieldDailyUsage, account.FieldMonthlyUsage:
			values[i] = new(sql.NullInt64)
		case account.FieldEmail, account.FieldPasswordHash, account.FieldName, account.FieldGoogleID, account.FieldSubscriptionStatus, account.FieldPlanType, account.FieldStripeCustomerID, account.FieldStripeSubscriptionID:
			values[i] = new(sql.NullString)
		case account.FieldTrialStartDate, account.FieldTrialEndDate, account.FieldLastUsageDate, account.FieldLastResetDate, account.FieldSubscriptionEventTime, account.FieldCreatedAt, account.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Account fields.
func (a *Account) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case account.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			a.ID = int(value.Int64)
		case account.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				a.Email = value.String
			}
		case account.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				a.PasswordHash = value.String
			}
		case account.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				a.Name = value.String
			}
		case account.FieldGoogleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_id", values[i])
			} else if value.Valid {
				a.GoogleID = new(string)
				*a.GoogleID = value.String
			}
		case account.FieldSubscriptionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_status", values[i])
			} else if value.Valid {
				a.SubscriptionStatus = account.SubscriptionStatus(value.String)
			}
		case account.FieldIsPremium:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_premium", values[i])
			} else if value.Valid {
				a.IsPremium = value.Bool
			}
		case account.FieldPlanType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_type", values[i])
			} else if value.Valid {
				a.PlanType = new(account.PlanType)
				*a.PlanType = account.PlanType(value.String)
			}
		case account.FieldTrialActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field trial_active", values[i])
			} else if value.Valid {
				a.TrialActive = value.Bool
			}
		case account.FieldTrialStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_start_date", values[i])
			} else if value.Valid {
				a.TrialStartDate = new(time.Time)
				*a.TrialStartDate = value.Time
			}
		case account.FieldTrialEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_end_date", values[i])
			} else if value.Valid {
				a.TrialEndDate = new(time.Time)
				*a.TrialEndDate = value.Time
			}
		case account.FieldDailyUsage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_usage", values[i])
			} else if value.Valid {
				a.DailyUsage = int(value.Int64)
			}
		case account.FieldMonthlyUsage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_usage", values[i])
			} else if value.Valid {
				a.MonthlyUsage = int(value.Int64)
			}
		case account.FieldLastUsageDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_usage_date", values[i])
			} else if value.Valid {
				a.LastUsageDate = new(time.Time)
				*a.LastUsageDate = value.Time
			}
		case account.FieldLastResetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reset_date", values[i])
			} else if value.Valid {
				a.LastResetDate = new(time.Time)
				*a.LastResetDate = value.Time
			}
		case account.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				a.StripeCustomerID = new(string)
				*a.StripeCustomerID = value.String
			}
		case account.FieldStripeSubscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_subscription_id", values[i])
			} else if value.Valid {
				a.StripeSubscriptionID = new(string)
				*a.StripeSubscriptionID = value.String
			}
		case account.FieldPendingReconciliation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pending_reconciliation", values[i])
			} else if value.Valid {
				a.PendingReconciliation = value.Bool
			}
		case account.FieldSubscriptionEventTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_event_time", values[i])
			} else if value.Valid {
				a.SubscriptionEventTime = new(time.Time)
				*a.SubscriptionEventTime = value.Time
			}
		case account.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case account.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Account.
// This includes values selected through modifiers, order, etc.
func (a *Account) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryUsageEntries queries the "usage_entries" edge of the Account entity.
func (a *Account) QueryUsageEntries() *UsageEntryQuery {
	return NewAccountClient(a.config).QueryUsageEntries(a)
}

// Update returns a builder for updating this Account.
// Note that you need to call Account.Unwrap() before calling this method if this Account
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Account) Update() *AccountUpdateOne {
	return NewAccountClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Account entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Account) Unwrap() *Account {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Account is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Account) String() string {
	var builder strings.Builder
	builder.WriteString("Account(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("email=")
	builder.WriteString(a.Email)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(a.Name)
	builder.WriteString(", ")
	if v := a.GoogleID; v != nil {
		builder.WriteString("google_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("subscription_status=")
	builder.WriteString(fmt.Sprintf("%v", a.SubscriptionStatus))
	builder.WriteString(", ")
	builder.WriteString("is_premium=")
	builder.WriteString(fmt.Sprintf("%v", a.IsPremium))
	builder.WriteString(", ")
	if v := a.PlanType; v != nil {
		builder.WriteString("plan_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("trial_active=")
	builder.WriteString(fmt.Sprintf("%v", a.TrialActive))
	builder.WriteString(", ")
	if v := a.TrialStartDate; v != nil {
		builder.WriteString("trial_start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := a.TrialEndDate; v != nil {
		builder.WriteString("trial_end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("daily_usage=")
	builder.WriteString(fmt.Sprintf("%v", a.DailyUsage))
	builder.WriteString(", ")
	builder.WriteString("monthly_usage=")
	builder.WriteString(fmt.Sprintf("%v", a.MonthlyUsage))
	builder.WriteString(", ")
	if v := a.LastUsageDate; v != nil {
		builder.WriteString("last_usage_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := a.LastResetDate; v != nil {
		builder.WriteString("last_reset_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := a.StripeCustomerID; v != nil {
		builder.WriteString("stripe_customer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.StripeSubscriptionID; v != nil {
		builder.WriteString("stripe_subscription_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("pending_reconciliation=")
	builder.WriteString(fmt.Sprintf("%v", a.PendingReconciliation))
	builder.WriteString(", ")
	if v := a.SubscriptionEventTime; v != nil {
		builder.WriteString("subscription_event_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Accounts is a parsable slice of Account.
type Accounts []*Account
