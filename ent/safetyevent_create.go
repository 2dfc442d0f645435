// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rpandey/mentora/ent/safetyevent"
)

// SafetyEventCreate is the builder for creating a SafetyEvent entity.
type SafetyEventCreate struct {
	config
	mutation *SafetyEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SafetyEventCreate) SetSequence(v int64) *SafetyEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SafetyEventCreate) SetTimestamp(v time.Time) *SafetyEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SafetyEventCreate) SetNillableTimestamp(v *time.Time) *SafetyEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SafetyEventCreate) SetSessionID(v string) *SafetyEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *SafetyEventCreate) SetStage(v string) *SafetyEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *SafetyEventCreate) SetReason(v string) *SafetyEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *SafetyEventCreate) SetNillableReason(v *string) *SafetyEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// Mutation returns the SafetyEventMutation object of the builder.
func (_c *SafetyEventCreate) Mutation() *SafetyEventMutation {
	return _c.mutation
}

// Save creates the SafetyEvent in the database.
func (_c *SafetyEventCreate) Save(ctx context.Context) (*SafetyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SafetyEventCreate) SaveX(ctx context.Context) *SafetyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SafetyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SafetyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SafetyEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := safetyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := safetyevent.DefaultReason
		_c.mutation.SetReason(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SafetyEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SafetyEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SafetyEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SafetyEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := safetyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SafetyEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "SafetyEvent.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := safetyevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "SafetyEvent.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "SafetyEvent.reason"`)}
	}
	return nil
}

func (_c *SafetyEventCreate) sqlSave(ctx context.Context) (*SafetyEvent, error) {
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

func (_c *SafetyEventCreate) createSpec() (*SafetyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SafetyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(safetyevent.Table, sqlgraph.NewFieldSpec(safetyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(safetyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(safetyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(safetyevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(safetyevent.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(safetyevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// SafetyEventCreateBulk is the builder for creating many SafetyEvent entities in bulk.
type SafetyEventCreateBulk struct {
	config
	err      error
	builders []*SafetyEventCreate
}

// Save creates the SafetyEvent entities in the database.
func (_c *SafetyEventCreateBulk) Save(ctx context.Context) ([]*SafetyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SafetyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SafetyEventMutation)
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
func (_c *SafetyEventCreateBulk) SaveX(ctx context.Context) []*SafetyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SafetyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SafetyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
