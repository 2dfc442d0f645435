// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rpandey/mentora/ent/predicate"
	"github.com/rpandey/mentora/ent/safetyevent"
)

// SafetyEventUpdate is the builder for updating SafetyEvent entities.
type SafetyEventUpdate struct {
	config
	hooks    []Hook
	mutation *SafetyEventMutation
}

// Where appends a list predicates to the SafetyEventUpdate builder.
func (_u *SafetyEventUpdate) Where(ps ...predicate.SafetyEvent) *SafetyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SafetyEventUpdate) SetSessionID(v string) *SafetyEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SafetyEventUpdate) SetNillableSessionID(v *string) *SafetyEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SafetyEventUpdate) SetStage(v string) *SafetyEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SafetyEventUpdate) SetNillableStage(v *string) *SafetyEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *SafetyEventUpdate) SetReason(v string) *SafetyEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SafetyEventUpdate) SetNillableReason(v *string) *SafetyEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the SafetyEventMutation object of the builder.
func (_u *SafetyEventUpdate) Mutation() *SafetyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SafetyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SafetyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := safetyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SafetyEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := safetyevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "SafetyEvent.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *SafetyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetyevent.Table, safetyevent.Columns, sqlgraph.NewFieldSpec(safetyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(safetyevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(safetyevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(safetyevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SafetyEventUpdateOne is the builder for updating a single SafetyEvent entity.
type SafetyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SafetyEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SafetyEventUpdateOne) SetSessionID(v string) *SafetyEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SafetyEventUpdateOne) SetNillableSessionID(v *string) *SafetyEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SafetyEventUpdateOne) SetStage(v string) *SafetyEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SafetyEventUpdateOne) SetNillableStage(v *string) *SafetyEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *SafetyEventUpdateOne) SetReason(v string) *SafetyEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SafetyEventUpdateOne) SetNillableReason(v *string) *SafetyEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the SafetyEventMutation object of the builder.
func (_u *SafetyEventUpdateOne) Mutation() *SafetyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SafetyEventUpdate builder.
func (_u *SafetyEventUpdateOne) Where(ps ...predicate.SafetyEvent) *SafetyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SafetyEventUpdateOne) Select(field string, fields ...string) *SafetyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SafetyEvent entity.
func (_u *SafetyEventUpdateOne) Save(ctx context.Context) (*SafetyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyEventUpdateOne) SaveX(ctx context.Context) *SafetyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SafetyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := safetyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SafetyEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := safetyevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "SafetyEvent.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *SafetyEventUpdateOne) sqlSave(ctx context.Context) (_node *SafetyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetyevent.Table, safetyevent.Columns, sqlgraph.NewFieldSpec(safetyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SafetyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, safetyevent.FieldID)
		for _, f := range fields {
			if !safetyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != safetyevent.FieldID {
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
		_spec.SetField(safetyevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(safetyevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(safetyevent.FieldReason, field.TypeString, value)
	}
	_node = &SafetyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
