// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rpandey/mentora/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurn sets the "turn" field.
func (_c *TurnEventCreate) SetTurn(v int) *TurnEventCreate {
	_c.mutation.SetTurn(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *TurnEventCreate) SetIntent(v string) *TurnEventCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableIntent(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetDirective sets the "directive" field.
func (_c *TurnEventCreate) SetDirective(v string) *TurnEventCreate {
	_c.mutation.SetDirective(v)
	return _c
}

// SetNillableDirective sets the "directive" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableDirective(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetDirective(*v)
	}
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *TurnEventCreate) SetConceptID(v string) *TurnEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableConceptID(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetConceptID(*v)
	}
	return _c
}

// SetGraded sets the "graded" field.
func (_c *TurnEventCreate) SetGraded(v bool) *TurnEventCreate {
	_c.mutation.SetGraded(v)
	return _c
}

// SetNillableGraded sets the "graded" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableGraded(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetGraded(*v)
	}
	return _c
}

// SetCorrectness sets the "correctness" field.
func (_c *TurnEventCreate) SetCorrectness(v float64) *TurnEventCreate {
	_c.mutation.SetCorrectness(v)
	return _c
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableCorrectness(v *float64) *TurnEventCreate {
	if v != nil {
		_c.SetCorrectness(*v)
	}
	return _c
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_c *TurnEventCreate) SetMasteryDelta(v float64) *TurnEventCreate {
	_c.mutation.SetMasteryDelta(v)
	return _c
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableMasteryDelta(v *float64) *TurnEventCreate {
	if v != nil {
		_c.SetMasteryDelta(*v)
	}
	return _c
}

// SetMisconceptions sets the "misconceptions" field.
func (_c *TurnEventCreate) SetMisconceptions(v []string) *TurnEventCreate {
	_c.mutation.SetMisconceptions(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *TurnEventCreate) SetOutcome(v string) *TurnEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Intent(); !ok {
		v := turnevent.DefaultIntent
		_c.mutation.SetIntent(v)
	}
	if _, ok := _c.mutation.Directive(); !ok {
		v := turnevent.DefaultDirective
		_c.mutation.SetDirective(v)
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		v := turnevent.DefaultConceptID
		_c.mutation.SetConceptID(v)
	}
	if _, ok := _c.mutation.Graded(); !ok {
		v := turnevent.DefaultGraded
		_c.mutation.SetGraded(v)
	}
	if _, ok := _c.mutation.Correctness(); !ok {
		v := turnevent.DefaultCorrectness
		_c.mutation.SetCorrectness(v)
	}
	if _, ok := _c.mutation.MasteryDelta(); !ok {
		v := turnevent.DefaultMasteryDelta
		_c.mutation.SetMasteryDelta(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Turn(); !ok {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required field "TurnEvent.turn"`)}
	}
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "TurnEvent.intent"`)}
	}
	if _, ok := _c.mutation.Directive(); !ok {
		return &ValidationError{Name: "directive", err: errors.New(`ent: missing required field "TurnEvent.directive"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "TurnEvent.concept_id"`)}
	}
	if _, ok := _c.mutation.Graded(); !ok {
		return &ValidationError{Name: "graded", err: errors.New(`ent: missing required field "TurnEvent.graded"`)}
	}
	if _, ok := _c.mutation.Correctness(); !ok {
		return &ValidationError{Name: "correctness", err: errors.New(`ent: missing required field "TurnEvent.correctness"`)}
	}
	if _, ok := _c.mutation.MasteryDelta(); !ok {
		return &ValidationError{Name: "mastery_delta", err: errors.New(`ent: missing required field "TurnEvent.mastery_delta"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "TurnEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := turnevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
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

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Turn(); ok {
		_spec.SetField(turnevent.FieldTurn, field.TypeInt, value)
		_node.Turn = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(turnevent.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Directive(); ok {
		_spec.SetField(turnevent.FieldDirective, field.TypeString, value)
		_node.Directive = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(turnevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Graded(); ok {
		_spec.SetField(turnevent.FieldGraded, field.TypeBool, value)
		_node.Graded = value
	}
	if value, ok := _c.mutation.Correctness(); ok {
		_spec.SetField(turnevent.FieldCorrectness, field.TypeFloat64, value)
		_node.Correctness = value
	}
	if value, ok := _c.mutation.MasteryDelta(); ok {
		_spec.SetField(turnevent.FieldMasteryDelta, field.TypeFloat64, value)
		_node.MasteryDelta = value
	}
	if value, ok := _c.mutation.Misconceptions(); ok {
		_spec.SetField(turnevent.FieldMisconceptions, field.TypeJSON, value)
		_node.Misconceptions = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(turnevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
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
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
