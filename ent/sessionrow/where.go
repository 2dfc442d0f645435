// Code generated by ent, DO NOT EDIT.

package sessionrow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rpandey/mentora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldSessionID, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldMode, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldVersion, v))
}

// Complete applies equality check predicate on the "complete" field. It's identical to CompleteEQ.
func Complete(v bool) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldComplete, v))
}

// TurnCount applies equality check predicate on the "turn_count" field. It's identical to TurnCountEQ.
func TurnCount(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldTurnCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldContainsFold(FieldSessionID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldContainsFold(FieldMode, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldVersion, v))
}

// CompleteEQ applies the EQ predicate on the "complete" field.
func CompleteEQ(v bool) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldComplete, v))
}

// CompleteNEQ applies the NEQ predicate on the "complete" field.
func CompleteNEQ(v bool) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldComplete, v))
}

// TurnCountEQ applies the EQ predicate on the "turn_count" field.
func TurnCountEQ(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldTurnCount, v))
}

// TurnCountNEQ applies the NEQ predicate on the "turn_count" field.
func TurnCountNEQ(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldTurnCount, v))
}

// TurnCountIn applies the In predicate on the "turn_count" field.
func TurnCountIn(vs ...int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldTurnCount, vs...))
}

// TurnCountNotIn applies the NotIn predicate on the "turn_count" field.
func TurnCountNotIn(vs ...int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldTurnCount, vs...))
}

// TurnCountGT applies the GT predicate on the "turn_count" field.
func TurnCountGT(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldTurnCount, v))
}

// TurnCountGTE applies the GTE predicate on the "turn_count" field.
func TurnCountGTE(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldTurnCount, v))
}

// TurnCountLT applies the LT predicate on the "turn_count" field.
func TurnCountLT(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldTurnCount, v))
}

// TurnCountLTE applies the LTE predicate on the "turn_count" field.
func TurnCountLTE(v int) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldTurnCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionRow {
	return predicate.SessionRow(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionRow) predicate.SessionRow {
	return predicate.SessionRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionRow) predicate.SessionRow {
	return predicate.SessionRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionRow) predicate.SessionRow {
	return predicate.SessionRow(sql.NotPredicates(p))
}
