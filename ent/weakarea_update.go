// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorbase/timo/ent/predicate"
	"github.com/tutorbase/timo/ent/weakarea"
)

// WeakAreaUpdate is the builder for updating WeakArea entities.
type WeakAreaUpdate struct {
	config
	hooks    []Hook
	mutation *WeakAreaMutation
}

// Where appends a list predicates to the WeakAreaUpdate builder.
func (_u *WeakAreaUpdate) Where(ps ...predicate.WeakArea) *WeakAreaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptScore sets the "concept_score" field.
func (_u *WeakAreaUpdate) SetConceptScore(v float64) *WeakAreaUpdate {
	_u.mutation.ResetConceptScore()
	_u.mutation.SetConceptScore(v)
	return _u
}

// SetNillableConceptScore sets the "concept_score" field if the given value is not nil.
func (_u *WeakAreaUpdate) SetNillableConceptScore(v *float64) *WeakAreaUpdate {
	if v != nil {
		_u.SetConceptScore(*v)
	}
	return _u
}

// AddConceptScore adds value to the "concept_score" field.
func (_u *WeakAreaUpdate) AddConceptScore(v float64) *WeakAreaUpdate {
	_u.mutation.AddConceptScore(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *WeakAreaUpdate) SetLastPracticedAt(v time.Time) *WeakAreaUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *WeakAreaUpdate) SetNillableLastPracticedAt(v *time.Time) *WeakAreaUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// Mutation returns the WeakAreaMutation object of the builder.
func (_u *WeakAreaUpdate) Mutation() *WeakAreaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeakAreaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeakAreaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeakAreaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeakAreaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeakAreaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(weakarea.Table, weakarea.Columns, sqlgraph.NewFieldSpec(weakarea.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptScore(); ok {
		_spec.SetField(weakarea.FieldConceptScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConceptScore(); ok {
		_spec.AddField(weakarea.FieldConceptScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(weakarea.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weakarea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeakAreaUpdateOne is the builder for updating a single WeakArea entity.
type WeakAreaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeakAreaMutation
}

// SetConceptScore sets the "concept_score" field.
func (_u *WeakAreaUpdateOne) SetConceptScore(v float64) *WeakAreaUpdateOne {
	_u.mutation.ResetConceptScore()
	_u.mutation.SetConceptScore(v)
	return _u
}

// SetNillableConceptScore sets the "concept_score" field if the given value is not nil.
func (_u *WeakAreaUpdateOne) SetNillableConceptScore(v *float64) *WeakAreaUpdateOne {
	if v != nil {
		_u.SetConceptScore(*v)
	}
	return _u
}

// AddConceptScore adds value to the "concept_score" field.
func (_u *WeakAreaUpdateOne) AddConceptScore(v float64) *WeakAreaUpdateOne {
	_u.mutation.AddConceptScore(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *WeakAreaUpdateOne) SetLastPracticedAt(v time.Time) *WeakAreaUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *WeakAreaUpdateOne) SetNillableLastPracticedAt(v *time.Time) *WeakAreaUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// Mutation returns the WeakAreaMutation object of the builder.
func (_u *WeakAreaUpdateOne) Mutation() *WeakAreaMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeakAreaUpdate builder.
func (_u *WeakAreaUpdateOne) Where(ps ...predicate.WeakArea) *WeakAreaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeakAreaUpdateOne) Select(field string, fields ...string) *WeakAreaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeakArea entity.
func (_u *WeakAreaUpdateOne) Save(ctx context.Context) (*WeakArea, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeakAreaUpdateOne) SaveX(ctx context.Context) *WeakArea {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeakAreaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeakAreaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeakAreaUpdateOne) sqlSave(ctx context.Context) (_node *WeakArea, err error) {
	_spec := sqlgraph.NewUpdateSpec(weakarea.Table, weakarea.Columns, sqlgraph.NewFieldSpec(weakarea.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeakArea.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weakarea.FieldID)
		for _, f := range fields {
			if !weakarea.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weakarea.FieldID {
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
	if value, ok := _u.mutation.ConceptScore(); ok {
		_spec.SetField(weakarea.FieldConceptScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConceptScore(); ok {
		_spec.AddField(weakarea.FieldConceptScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(weakarea.FieldLastPracticedAt, field.TypeTime, value)
	}
	_node = &WeakArea{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weakarea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
