// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rpandey/mentora/ent/sessionrow"
)

// SessionRowCreate is the builder for creating a SessionRow entity.
type SessionRowCreate struct {
	config
	mutation *SessionRowMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRowCreate) SetSessionID(v string) *SessionRowCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *SessionRowCreate) SetMode(v string) *SessionRowCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SessionRowCreate) SetState(v json.RawMessage) *SessionRowCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SessionRowCreate) SetVersion(v int64) *SessionRowCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableVersion(v *int64) *SessionRowCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetComplete sets the "complete" field.
func (_c *SessionRowCreate) SetComplete(v bool) *SessionRowCreate {
	_c.mutation.SetComplete(v)
	return _c
}

// SetNillableComplete sets the "complete" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableComplete(v *bool) *SessionRowCreate {
	if v != nil {
		_c.SetComplete(*v)
	}
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *SessionRowCreate) SetTurnCount(v int) *SessionRowCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableTurnCount(v *int) *SessionRowCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionRowCreate) SetCreatedAt(v time.Time) *SessionRowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableCreatedAt(v *time.Time) *SessionRowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionRowCreate) SetUpdatedAt(v time.Time) *SessionRowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableUpdatedAt(v *time.Time) *SessionRowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionRowMutation object of the builder.
func (_c *SessionRowCreate) Mutation() *SessionRowMutation {
	return _c.mutation
}

// Save creates the SessionRow in the database.
func (_c *SessionRowCreate) Save(ctx context.Context) (*SessionRow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRowCreate) SaveX(ctx context.Context) *SessionRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRowCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := sessionrow.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Complete(); !ok {
		v := sessionrow.DefaultComplete
		_c.mutation.SetComplete(v)
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := sessionrow.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionrow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionrow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRowCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRow.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionrow.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRow.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "SessionRow.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := sessionrow.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionRow.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "SessionRow.state"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SessionRow.version"`)}
	}
	if _, ok := _c.mutation.Complete(); !ok {
		return &ValidationError{Name: "complete", err: errors.New(`ent: missing required field "SessionRow.complete"`)}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "SessionRow.turn_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionRow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionRow.updated_at"`)}
	}
	return nil
}

func (_c *SessionRowCreate) sqlSave(ctx context.Context) (*SessionRow, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionRowCreate) createSpec() (*SessionRow, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrow.Table, sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrow.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(sessionrow.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(sessionrow.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(sessionrow.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Complete(); ok {
		_spec.SetField(sessionrow.FieldComplete, field.TypeBool, value)
		_node.Complete = value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(sessionrow.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionRowCreateBulk is the builder for creating many SessionRow entities in bulk.
type SessionRowCreateBulk struct {
	config
	err      error
	builders []*SessionRowCreate
}

// Save creates the SessionRow entities in the database.
func (_c *SessionRowCreateBulk) Save(ctx context.Context) ([]*SessionRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRowMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionRowCreateBulk) SaveX(ctx context.Context) []*SessionRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
