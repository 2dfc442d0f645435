// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTurn holds the string denoting the turn field in the database.
	FieldTurn = "turn"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldDirective holds the string denoting the directive field in the database.
	FieldDirective = "directive"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldGraded holds the string denoting the graded field in the database.
	FieldGraded = "graded"
	// FieldCorrectness holds the string denoting the correctness field in the database.
	FieldCorrectness = "correctness"
	// FieldMasteryDelta holds the string denoting the mastery_delta field in the database.
	FieldMasteryDelta = "mastery_delta"
	// FieldMisconceptions holds the string denoting the misconceptions field in the database.
	FieldMisconceptions = "misconceptions"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTurn,
	FieldIntent,
	FieldDirective,
	FieldConceptID,
	FieldGraded,
	FieldCorrectness,
	FieldMasteryDelta,
	FieldMisconceptions,
	FieldOutcome,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultIntent holds the default value on creation for the "intent" field.
	DefaultIntent string
	// DefaultDirective holds the default value on creation for the "directive" field.
	DefaultDirective string
	// DefaultConceptID holds the default value on creation for the "concept_id" field.
	DefaultConceptID string
	// DefaultGraded holds the default value on creation for the "graded" field.
	DefaultGraded bool
	// DefaultCorrectness holds the default value on creation for the "correctness" field.
	DefaultCorrectness float64
	// DefaultMasteryDelta holds the default value on creation for the "mastery_delta" field.
	DefaultMasteryDelta float64
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
)

// OrderOption defines the ordering options for the TurnEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTurn orders the results by the turn field.
func ByTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurn, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByDirective orders the results by the directive field.
func ByDirective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirective, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByGraded orders the results by the graded field.
func ByGraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraded, opts...).ToFunc()
}

// ByCorrectness orders the results by the correctness field.
func ByCorrectness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectness, opts...).ToFunc()
}

// ByMasteryDelta orders the results by the mastery_delta field.
func ByMasteryDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryDelta, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}
