// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SafetyEvent is the predicate function for safetyevent builders.
type SafetyEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SessionRow is the predicate function for sessionrow builders.
type SessionRow func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// TurnEvent is the predicate function for turnevent builders.
type TurnEvent func(*sql.Selector)
