// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rpandey/mentora/ent/predicate"
	"github.com/rpandey/mentora/ent/sessionrow"
)

// SessionRowUpdate is the builder for updating SessionRow entities.
type SessionRowUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRowMutation
}

// Where appends a list predicates to the SessionRowUpdate builder.
func (_u *SessionRowUpdate) Where(ps ...predicate.SessionRow) *SessionRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *SessionRowUpdate) SetMode(v string) *SessionRowUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableMode(v *string) *SessionRowUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SessionRowUpdate) SetState(v json.RawMessage) *SessionRowUpdate {
	_u.mutation.SetState(v)
	return _u
}

// AppendState appends value to the "state" field.
func (_u *SessionRowUpdate) AppendState(v json.RawMessage) *SessionRowUpdate {
	_u.mutation.AppendState(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionRowUpdate) SetVersion(v int64) *SessionRowUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableVersion(v *int64) *SessionRowUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionRowUpdate) AddVersion(v int64) *SessionRowUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetComplete sets the "complete" field.
func (_u *SessionRowUpdate) SetComplete(v bool) *SessionRowUpdate {
	_u.mutation.SetComplete(v)
	return _u
}

// SetNillableComplete sets the "complete" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableComplete(v *bool) *SessionRowUpdate {
	if v != nil {
		_u.SetComplete(*v)
	}
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *SessionRowUpdate) SetTurnCount(v int) *SessionRowUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableTurnCount(v *int) *SessionRowUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *SessionRowUpdate) AddTurnCount(v int) *SessionRowUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRowUpdate) SetUpdatedAt(v time.Time) *SessionRowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableUpdatedAt(v *time.Time) *SessionRowUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRowMutation object of the builder.
func (_u *SessionRowUpdate) Mutation() *SessionRowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRowUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := sessionrow.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionRow.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrow.Table, sessionrow.Columns, sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(sessionrow.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sessionrow.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedState(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrow.FieldState, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sessionrow.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(sessionrow.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Complete(); ok {
		_spec.SetField(sessionrow.FieldComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(sessionrow.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(sessionrow.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRowUpdateOne is the builder for updating a single SessionRow entity.
type SessionRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRowMutation
}

// SetMode sets the "mode" field.
func (_u *SessionRowUpdateOne) SetMode(v string) *SessionRowUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableMode(v *string) *SessionRowUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SessionRowUpdateOne) SetState(v json.RawMessage) *SessionRowUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// AppendState appends value to the "state" field.
func (_u *SessionRowUpdateOne) AppendState(v json.RawMessage) *SessionRowUpdateOne {
	_u.mutation.AppendState(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionRowUpdateOne) SetVersion(v int64) *SessionRowUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableVersion(v *int64) *SessionRowUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionRowUpdateOne) AddVersion(v int64) *SessionRowUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetComplete sets the "complete" field.
func (_u *SessionRowUpdateOne) SetComplete(v bool) *SessionRowUpdateOne {
	_u.mutation.SetComplete(v)
	return _u
}

// SetNillableComplete sets the "complete" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableComplete(v *bool) *SessionRowUpdateOne {
	if v != nil {
		_u.SetComplete(*v)
	}
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *SessionRowUpdateOne) SetTurnCount(v int) *SessionRowUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableTurnCount(v *int) *SessionRowUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *SessionRowUpdateOne) AddTurnCount(v int) *SessionRowUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRowUpdateOne) SetUpdatedAt(v time.Time) *SessionRowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableUpdatedAt(v *time.Time) *SessionRowUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRowMutation object of the builder.
func (_u *SessionRowUpdateOne) Mutation() *SessionRowMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRowUpdate builder.
func (_u *SessionRowUpdateOne) Where(ps ...predicate.SessionRow) *SessionRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRowUpdateOne) Select(field string, fields ...string) *SessionRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRow entity.
func (_u *SessionRowUpdateOne) Save(ctx context.Context) (*SessionRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRowUpdateOne) SaveX(ctx context.Context) *SessionRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRowUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := sessionrow.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionRow.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRowUpdateOne) sqlSave(ctx context.Context) (_node *SessionRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrow.Table, sessionrow.Columns, sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrow.FieldID)
		for _, f := range fields {
			if !sessionrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrow.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(sessionrow.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sessionrow.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedState(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrow.FieldState, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sessionrow.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(sessionrow.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Complete(); ok {
		_spec.SetField(sessionrow.FieldComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(sessionrow.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(sessionrow.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrow.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
