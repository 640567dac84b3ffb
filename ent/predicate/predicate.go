// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PlanEvent is the predicate function for planevent builders.
type PlanEvent func(*sql.Selector)
