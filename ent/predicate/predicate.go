// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Endpoint is the predicate function for endpoint builders.
type Endpoint func(*sql.Selector)
