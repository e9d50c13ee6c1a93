// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ResearchSession is the predicate function for researchsession builders.
type ResearchSession func(*sql.Selector)

// SessionDocument is the predicate function for sessiondocument builders.
type SessionDocument func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
