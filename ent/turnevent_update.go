// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rpandey/mentora/ent/predicate"
	"github.com/rpandey/mentora/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *TurnEventUpdate) SetTurn(v int) *TurnEventUpdate {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTurn(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *TurnEventUpdate) AddTurn(v int) *TurnEventUpdate {
	_u.mutation.AddTurn(v)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *TurnEventUpdate) SetIntent(v string) *TurnEventUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableIntent(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetDirective sets the "directive" field.
func (_u *TurnEventUpdate) SetDirective(v string) *TurnEventUpdate {
	_u.mutation.SetDirective(v)
	return _u
}

// SetNillableDirective sets the "directive" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableDirective(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetDirective(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *TurnEventUpdate) SetConceptID(v string) *TurnEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableConceptID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetGraded sets the "graded" field.
func (_u *TurnEventUpdate) SetGraded(v bool) *TurnEventUpdate {
	_u.mutation.SetGraded(v)
	return _u
}

// SetNillableGraded sets the "graded" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableGraded(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetGraded(*v)
	}
	return _u
}

// SetCorrectness sets the "correctness" field.
func (_u *TurnEventUpdate) SetCorrectness(v float64) *TurnEventUpdate {
	_u.mutation.ResetCorrectness()
	_u.mutation.SetCorrectness(v)
	return _u
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableCorrectness(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetCorrectness(*v)
	}
	return _u
}

// AddCorrectness adds value to the "correctness" field.
func (_u *TurnEventUpdate) AddCorrectness(v float64) *TurnEventUpdate {
	_u.mutation.AddCorrectness(v)
	return _u
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_u *TurnEventUpdate) SetMasteryDelta(v float64) *TurnEventUpdate {
	_u.mutation.ResetMasteryDelta()
	_u.mutation.SetMasteryDelta(v)
	return _u
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableMasteryDelta(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetMasteryDelta(*v)
	}
	return _u
}

// AddMasteryDelta adds value to the "mastery_delta" field.
func (_u *TurnEventUpdate) AddMasteryDelta(v float64) *TurnEventUpdate {
	_u.mutation.AddMasteryDelta(v)
	return _u
}

// SetMisconceptions sets the "misconceptions" field.
func (_u *TurnEventUpdate) SetMisconceptions(v []string) *TurnEventUpdate {
	_u.mutation.SetMisconceptions(v)
	return _u
}

// AppendMisconceptions appends value to the "misconceptions" field.
func (_u *TurnEventUpdate) AppendMisconceptions(v []string) *TurnEventUpdate {
	_u.mutation.AppendMisconceptions(v)
	return _u
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (_u *TurnEventUpdate) ClearMisconceptions() *TurnEventUpdate {
	_u.mutation.ClearMisconceptions()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TurnEventUpdate) SetOutcome(v string) *TurnEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableOutcome(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := turnevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(turnevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Directive(); ok {
		_spec.SetField(turnevent.FieldDirective, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(turnevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Graded(); ok {
		_spec.SetField(turnevent.FieldGraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Correctness(); ok {
		_spec.SetField(turnevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectness(); ok {
		_spec.AddField(turnevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryDelta(); ok {
		_spec.SetField(turnevent.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryDelta(); ok {
		_spec.AddField(turnevent.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Misconceptions(); ok {
		_spec.SetField(turnevent.FieldMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldMisconceptions, value)
		})
	}
	if _u.mutation.MisconceptionsCleared() {
		_spec.ClearField(turnevent.FieldMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(turnevent.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *TurnEventUpdateOne) SetTurn(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTurn(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *TurnEventUpdateOne) AddTurn(v int) *TurnEventUpdateOne {
	_u.mutation.AddTurn(v)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *TurnEventUpdateOne) SetIntent(v string) *TurnEventUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableIntent(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetDirective sets the "directive" field.
func (_u *TurnEventUpdateOne) SetDirective(v string) *TurnEventUpdateOne {
	_u.mutation.SetDirective(v)
	return _u
}

// SetNillableDirective sets the "directive" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableDirective(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetDirective(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *TurnEventUpdateOne) SetConceptID(v string) *TurnEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableConceptID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetGraded sets the "graded" field.
func (_u *TurnEventUpdateOne) SetGraded(v bool) *TurnEventUpdateOne {
	_u.mutation.SetGraded(v)
	return _u
}

// SetNillableGraded sets the "graded" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableGraded(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetGraded(*v)
	}
	return _u
}

// SetCorrectness sets the "correctness" field.
func (_u *TurnEventUpdateOne) SetCorrectness(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetCorrectness()
	_u.mutation.SetCorrectness(v)
	return _u
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableCorrectness(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetCorrectness(*v)
	}
	return _u
}

// AddCorrectness adds value to the "correctness" field.
func (_u *TurnEventUpdateOne) AddCorrectness(v float64) *TurnEventUpdateOne {
	_u.mutation.AddCorrectness(v)
	return _u
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_u *TurnEventUpdateOne) SetMasteryDelta(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetMasteryDelta()
	_u.mutation.SetMasteryDelta(v)
	return _u
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableMasteryDelta(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetMasteryDelta(*v)
	}
	return _u
}

// AddMasteryDelta adds value to the "mastery_delta" field.
func (_u *TurnEventUpdateOne) AddMasteryDelta(v float64) *TurnEventUpdateOne {
	_u.mutation.AddMasteryDelta(v)
	return _u
}

// SetMisconceptions sets the "misconceptions" field.
func (_u *TurnEventUpdateOne) SetMisconceptions(v []string) *TurnEventUpdateOne {
	_u.mutation.SetMisconceptions(v)
	return _u
}

// AppendMisconceptions appends value to the "misconceptions" field.
func (_u *TurnEventUpdateOne) AppendMisconceptions(v []string) *TurnEventUpdateOne {
	_u.mutation.AppendMisconceptions(v)
	return _u
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (_u *TurnEventUpdateOne) ClearMisconceptions() *TurnEventUpdateOne {
	_u.mutation.ClearMisconceptions()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TurnEventUpdateOne) SetOutcome(v string) *TurnEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableOutcome(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := turnevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(turnevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Directive(); ok {
		_spec.SetField(turnevent.FieldDirective, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(turnevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Graded(); ok {
		_spec.SetField(turnevent.FieldGraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Correctness(); ok {
		_spec.SetField(turnevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectness(); ok {
		_spec.AddField(turnevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryDelta(); ok {
		_spec.SetField(turnevent.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryDelta(); ok {
		_spec.AddField(turnevent.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Misconceptions(); ok {
		_spec.SetField(turnevent.FieldMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldMisconceptions, value)
		})
	}
	if _u.mutation.MisconceptionsCleared() {
		_spec.ClearField(turnevent.FieldMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(turnevent.FieldOutcome, field.TypeString, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
