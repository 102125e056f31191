// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// UsageEntry is the model entity for the UsageEntry schema.
type UsageEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Account that performed the action
	AccountID int `json:"account_id,omitempty"`
	// Type of AI action performed
	Action usageentry.Action `json:"action,omitempty"`
	// Timestamp of action
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UsageEntryQuery when eager-loading is set.
	Edges        UsageEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UsageEntryEdges holds the relations/edges for other nodes in the graph.
type UsageEntryEdges struct {
	// Account that performed the action
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UsageEntryEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usageentry.FieldID, usageentry.FieldAccountID:
			values[i] = new(sql.NullInt64)
		case usageentry.FieldAction:
			values[i] = new(sql.NullString)
		case usageentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageEntry fields.
func (ue *UsageEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usageentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ue.ID = int(value.Int64)
		case usageentry.FieldAccountID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				ue.AccountID = int(value.Int64)
			}
		case usageentry.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				ue.Action = usageentry.Action(value.String)
			}
		case usageentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ue.CreatedAt = value.Time
			}
		default:
			ue.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageEntry.
// This includes values selected through modifiers, order, etc.
func (ue *UsageEntry) Value(name string) (ent.Value, error) {
	return ue.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the UsageEntry entity.
func (ue *UsageEntry) QueryAccount() *AccountQuery {
	return NewUsageEntryClient(ue.config).QueryAccount(ue)
}

// Update returns a builder for updating this UsageEntry.
// Note that you need to call UsageEntry.Unwrap() before calling this method if this UsageEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (ue *UsageEntry) Update() *UsageEntryUpdateOne {
	return NewUsageEntryClient(ue.config).UpdateOne(ue)
}

// Unwrap unwraps the UsageEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ue *UsageEntry) Unwrap() *UsageEntry {
	_tx, ok := ue.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageEntry is not a transactional entity")
	}
	ue.config.driver = _tx.drv
	return ue
}

// String implements the fmt.Stringer.
func (ue *UsageEntry) String() string {
	var builder strings.Builder
	builder.WriteString("UsageEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ue.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", ue.AccountID))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", ue.Action))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ue.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageEntries is a parsable slice of UsageEntry.
type UsageEntries []*UsageEntry
