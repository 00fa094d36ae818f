// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorbase/timo/ent/subjectsignal"
)

// SubjectSignalCreate is the builder for creating a SubjectSignal entity.
type SubjectSignalCreate struct {
	config
	mutation *SubjectSignalMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *SubjectSignalCreate) SetStudentID(v string) *SubjectSignalCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SubjectSignalCreate) SetSubject(v string) *SubjectSignalCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *SubjectSignalCreate) SetRating(v float64) *SubjectSignalCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *SubjectSignalCreate) SetMastery(v float64) *SubjectSignalCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetAbility sets the "ability" field.
func (_c *SubjectSignalCreate) SetAbility(v float64) *SubjectSignalCreate {
	_c.mutation.SetAbility(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SubjectSignalCreate) SetAttempts(v int) *SubjectSignalCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// Mutation returns the SubjectSignalMutation object of the builder.
func (_c *SubjectSignalCreate) Mutation() *SubjectSignalMutation {
	return _c.mutation
}

// Save creates the SubjectSignal in the database.
func (_c *SubjectSignalCreate) Save(ctx context.Context) (*SubjectSignal, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectSignalCreate) SaveX(ctx context.Context) *SubjectSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectSignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectSignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectSignalCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "SubjectSignal.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := subjectsignal.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SubjectSignal.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "SubjectSignal.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := subjectsignal.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubjectSignal.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "SubjectSignal.rating"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "SubjectSignal.mastery"`)}
	}
	if _, ok := _c.mutation.Ability(); !ok {
		return &ValidationError{Name: "ability", err: errors.New(`ent: missing required field "SubjectSignal.ability"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SubjectSignal.attempts"`)}
	}
	return nil
}

func (_c *SubjectSignalCreate) sqlSave(ctx context.Context) (*SubjectSignal, error) {
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

func (_c *SubjectSignalCreate) createSpec() (*SubjectSignal, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectSignal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subjectsignal.Table, sqlgraph.NewFieldSpec(subjectsignal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(subjectsignal.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(subjectsignal.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(subjectsignal.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(subjectsignal.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Ability(); ok {
		_spec.SetField(subjectsignal.FieldAbility, field.TypeFloat64, value)
		_node.Ability = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(subjectsignal.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	return _node, _spec
}

// SubjectSignalCreateBulk is the builder for creating many SubjectSignal entities in bulk.
type SubjectSignalCreateBulk struct {
	config
	err      error
	builders []*SubjectSignalCreate
}

// Save creates the SubjectSignal entities in the database.
func (_c *SubjectSignalCreateBulk) Save(ctx context.Context) ([]*SubjectSignal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubjectSignal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectSignalMutation)
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
func (_c *SubjectSignalCreateBulk) SaveX(ctx context.Context) []*SubjectSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectSignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectSignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
