// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rpandey/mentora/ent/turnevent"
)

// TurnEvent is the model entity for the TurnEvent schema.
type TurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Turn count after this turn applied
	Turn int `json:"turn,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent string `json:"intent,omitempty"`
	// Pacing directive used for the tutor message
	Directive string `json:"directive,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Graded holds the value of the "graded" field.
	Graded bool `json:"graded,omitempty"`
	// Correctness holds the value of the "correctness" field.
	Correctness float64 `json:"correctness,omitempty"`
	// Score change for concept_id this turn
	MasteryDelta float64 `json:"mastery_delta,omitempty"`
	// Misconceptions holds the value of the "misconceptions" field.
	Misconceptions []string `json:"misconceptions,omitempty"`
	// answered, blocked, fallback, completed, or extended
	Outcome      string `json:"outcome,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldMisconceptions:
			values[i] = new([]byte)
		case turnevent.FieldGraded:
			values[i] = new(sql.NullBool)
		case turnevent.FieldCorrectness, turnevent.FieldMasteryDelta:
			values[i] = new(sql.NullFloat64)
		case turnevent.FieldID, turnevent.FieldSequence, turnevent.FieldTurn:
			values[i] = new(sql.NullInt64)
		case turnevent.FieldSessionID, turnevent.FieldIntent, turnevent.FieldDirective, turnevent.FieldConceptID, turnevent.FieldOutcome:
			values[i] = new(sql.NullString)
		case turnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnEvent fields.
func (_m *TurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case turnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turnevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case turnevent.FieldTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn", values[i])
			} else if value.Valid {
				_m.Turn = int(value.Int64)
			}
		case turnevent.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case turnevent.FieldDirective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field directive", values[i])
			} else if value.Valid {
				_m.Directive = value.String
			}
		case turnevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case turnevent.FieldGraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field graded", values[i])
			} else if value.Valid {
				_m.Graded = value.Bool
			}
		case turnevent.FieldCorrectness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field correctness", values[i])
			} else if value.Valid {
				_m.Correctness = value.Float64
			}
		case turnevent.FieldMasteryDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_delta", values[i])
			} else if value.Valid {
				_m.MasteryDelta = value.Float64
			}
		case turnevent.FieldMisconceptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field misconceptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Misconceptions); err != nil {
					return fmt.Errorf("unmarshal field misconceptions: %w", err)
				}
			}
		case turnevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TurnEvent.
// Note that you need to call TurnEvent.Unwrap() before calling this method if this TurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnEvent) Update() *TurnEventUpdateOne {
	return NewTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnEvent) Unwrap() *TurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TurnEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turn))
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("directive=")
	builder.WriteString(_m.Directive)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("graded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Graded))
	builder.WriteString(", ")
	builder.WriteString("correctness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correctness))
	builder.WriteString(", ")
	builder.WriteString("mastery_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryDelta))
	builder.WriteString(", ")
	builder.WriteString("misconceptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Misconceptions))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteByte(')')
	return builder.String()
}

// TurnEvents is a parsable slice of TurnEvent.
type TurnEvents []*TurnEvent
