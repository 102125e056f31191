// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// UsageEntry is the predicate function for usageentry builders.
type UsageEntry func(*sql.Selector)
