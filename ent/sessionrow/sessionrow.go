// Code generated by ent, DO NOT EDIT.

package sessionrow

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionrow type in the database.
	Label = "session_row"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldComplete holds the string denoting the complete field in the database.
	FieldComplete = "complete"
	// FieldTurnCount holds the string denoting the turn_count field in the database.
	FieldTurnCount = "turn_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sessionrow in the database.
	Table = "session_rows"
)

// Columns holds all SQL columns for sessionrow fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldMode,
	FieldState,
	FieldVersion,
	FieldComplete,
	FieldTurnCount,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultComplete holds the default value on creation for the "complete" field.
	DefaultComplete bool
	// DefaultTurnCount holds the default value on creation for the "turn_count" field.
	DefaultTurnCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionRow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByComplete orders the results by the complete field.
func ByComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplete, opts...).ToFunc()
}

// ByTurnCount orders the results by the turn_count field.
func ByTurnCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
