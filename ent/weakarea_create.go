// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorbase/timo/ent/weakarea"
)

// WeakAreaCreate is the builder for creating a WeakArea entity.
type WeakAreaCreate struct {
	config
	mutation *WeakAreaMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *WeakAreaCreate) SetStudentID(v string) *WeakAreaCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *WeakAreaCreate) SetSubject(v string) *WeakAreaCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetConceptScore sets the "concept_score" field.
func (_c *WeakAreaCreate) SetConceptScore(v float64) *WeakAreaCreate {
	_c.mutation.SetConceptScore(v)
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *WeakAreaCreate) SetLastPracticedAt(v time.Time) *WeakAreaCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// Mutation returns the WeakAreaMutation object of the builder.
func (_c *WeakAreaCreate) Mutation() *WeakAreaMutation {
	return _c.mutation
}

// Save creates the WeakArea in the database.
func (_c *WeakAreaCreate) Save(ctx context.Context) (*WeakArea, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeakAreaCreate) SaveX(ctx context.Context) *WeakArea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeakAreaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeakAreaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeakAreaCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "WeakArea.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := weakarea.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "WeakArea.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "WeakArea.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := weakarea.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "WeakArea.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptScore(); !ok {
		return &ValidationError{Name: "concept_score", err: errors.New(`ent: missing required field "WeakArea.concept_score"`)}
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		return &ValidationError{Name: "last_practiced_at", err: errors.New(`ent: missing required field "WeakArea.last_practiced_at"`)}
	}
	return nil
}

func (_c *WeakAreaCreate) sqlSave(ctx context.Context) (*WeakArea, error) {
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

func (_c *WeakAreaCreate) createSpec() (*WeakArea, *sqlgraph.CreateSpec) {
	var (
		_node = &WeakArea{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weakarea.Table, sqlgraph.NewFieldSpec(weakarea.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(weakarea.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(weakarea.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.ConceptScore(); ok {
		_spec.SetField(weakarea.FieldConceptScore, field.TypeFloat64, value)
		_node.ConceptScore = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(weakarea.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = value
	}
	return _node, _spec
}

// WeakAreaCreateBulk is the builder for creating many WeakArea entities in bulk.
type WeakAreaCreateBulk struct {
	config
	err      error
	builders []*WeakAreaCreate
}

// Save creates the WeakArea entities in the database.
func (_c *WeakAreaCreateBulk) Save(ctx context.Context) ([]*WeakArea, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeakArea, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeakAreaMutation)
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
func (_c *WeakAreaCreateBulk) SaveX(ctx context.Context) []*WeakArea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeakAreaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeakAreaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
