// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rpandey/mentora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// Turn applies equality check predicate on the "turn" field. It's identical to TurnEQ.
func Turn(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTurn, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldIntent, v))
}

// Directive applies equality check predicate on the "directive" field. It's identical to DirectiveEQ.
func Directive(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldDirective, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptID, v))
}

// Graded applies equality check predicate on the "graded" field. It's identical to GradedEQ.
func Graded(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldGraded, v))
}

// Correctness applies equality check predicate on the "correctness" field. It's identical to CorrectnessEQ.
func Correctness(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldCorrectness, v))
}

// MasteryDelta applies equality check predicate on the "mastery_delta" field. It's identical to MasteryDeltaEQ.
func MasteryDelta(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldMasteryDelta, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldOutcome, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TurnEQ applies the EQ predicate on the "turn" field.
func TurnEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTurn, v))
}

// TurnNEQ applies the NEQ predicate on the "turn" field.
func TurnNEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTurn, v))
}

// TurnIn applies the In predicate on the "turn" field.
func TurnIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTurn, vs...))
}

// TurnNotIn applies the NotIn predicate on the "turn" field.
func TurnNotIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTurn, vs...))
}

// TurnGT applies the GT predicate on the "turn" field.
func TurnGT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTurn, v))
}

// TurnGTE applies the GTE predicate on the "turn" field.
func TurnGTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTurn, v))
}

// TurnLT applies the LT predicate on the "turn" field.
func TurnLT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTurn, v))
}

// TurnLTE applies the LTE predicate on the "turn" field.
func TurnLTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTurn, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldIntent, v))
}

// DirectiveEQ applies the EQ predicate on the "directive" field.
func DirectiveEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldDirective, v))
}

// DirectiveNEQ applies the NEQ predicate on the "directive" field.
func DirectiveNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldDirective, v))
}

// DirectiveIn applies the In predicate on the "directive" field.
func DirectiveIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldDirective, vs...))
}

// DirectiveNotIn applies the NotIn predicate on the "directive" field.
func DirectiveNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldDirective, vs...))
}

// DirectiveGT applies the GT predicate on the "directive" field.
func DirectiveGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldDirective, v))
}

// DirectiveGTE applies the GTE predicate on the "directive" field.
func DirectiveGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldDirective, v))
}

// DirectiveLT applies the LT predicate on the "directive" field.
func DirectiveLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldDirective, v))
}

// DirectiveLTE applies the LTE predicate on the "directive" field.
func DirectiveLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldDirective, v))
}

// DirectiveContains applies the Contains predicate on the "directive" field.
func DirectiveContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldDirective, v))
}

// DirectiveHasPrefix applies the HasPrefix predicate on the "directive" field.
func DirectiveHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldDirective, v))
}

// DirectiveHasSuffix applies the HasSuffix predicate on the "directive" field.
func DirectiveHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldDirective, v))
}

// DirectiveEqualFold applies the EqualFold predicate on the "directive" field.
func DirectiveEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldDirective, v))
}

// DirectiveContainsFold applies the ContainsFold predicate on the "directive" field.
func DirectiveContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldDirective, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// GradedEQ applies the EQ predicate on the "graded" field.
func GradedEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldGraded, v))
}

// GradedNEQ applies the NEQ predicate on the "graded" field.
func GradedNEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldGraded, v))
}

// CorrectnessEQ applies the EQ predicate on the "correctness" field.
func CorrectnessEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldCorrectness, v))
}

// CorrectnessNEQ applies the NEQ predicate on the "correctness" field.
func CorrectnessNEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldCorrectness, v))
}

// CorrectnessIn applies the In predicate on the "correctness" field.
func CorrectnessIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldCorrectness, vs...))
}

// CorrectnessNotIn applies the NotIn predicate on the "correctness" field.
func CorrectnessNotIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldCorrectness, vs...))
}

// CorrectnessGT applies the GT predicate on the "correctness" field.
func CorrectnessGT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldCorrectness, v))
}

// CorrectnessGTE applies the GTE predicate on the "correctness" field.
func CorrectnessGTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldCorrectness, v))
}

// CorrectnessLT applies the LT predicate on the "correctness" field.
func CorrectnessLT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldCorrectness, v))
}

// CorrectnessLTE applies the LTE predicate on the "correctness" field.
func CorrectnessLTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldCorrectness, v))
}

// MasteryDeltaEQ applies the EQ predicate on the "mastery_delta" field.
func MasteryDeltaEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldMasteryDelta, v))
}

// MasteryDeltaNEQ applies the NEQ predicate on the "mastery_delta" field.
func MasteryDeltaNEQ(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldMasteryDelta, v))
}

// MasteryDeltaIn applies the In predicate on the "mastery_delta" field.
func MasteryDeltaIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldMasteryDelta, vs...))
}

// MasteryDeltaNotIn applies the NotIn predicate on the "mastery_delta" field.
func MasteryDeltaNotIn(vs ...float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldMasteryDelta, vs...))
}

// MasteryDeltaGT applies the GT predicate on the "mastery_delta" field.
func MasteryDeltaGT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldMasteryDelta, v))
}

// MasteryDeltaGTE applies the GTE predicate on the "mastery_delta" field.
func MasteryDeltaGTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldMasteryDelta, v))
}

// MasteryDeltaLT applies the LT predicate on the "mastery_delta" field.
func MasteryDeltaLT(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldMasteryDelta, v))
}

// MasteryDeltaLTE applies the LTE predicate on the "mastery_delta" field.
func MasteryDeltaLTE(v float64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldMasteryDelta, v))
}

// MisconceptionsIsNil applies the IsNil predicate on the "misconceptions" field.
func MisconceptionsIsNil() predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIsNull(FieldMisconceptions))
}

// MisconceptionsNotNil applies the NotNil predicate on the "misconceptions" field.
func MisconceptionsNotNil() predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotNull(FieldMisconceptions))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.NotPredicates(p))
}
