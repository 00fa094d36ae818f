// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorbase/timo/ent/lessonrecord"
)

// LessonRecordCreate is the builder for creating a LessonRecord entity.
type LessonRecordCreate struct {
	config
	mutation *LessonRecordMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *LessonRecordCreate) SetStudentID(v string) *LessonRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonRecordCreate) SetLessonID(v string) *LessonRecordCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LessonRecordCreate) SetSubject(v string) *LessonRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LessonRecordCreate) SetCompletedAt(v time.Time) *LessonRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *LessonRecordCreate) SetAccuracy(v float64) *LessonRecordCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetResponseTimeSecs sets the "response_time_secs" field.
func (_c *LessonRecordCreate) SetResponseTimeSecs(v float64) *LessonRecordCreate {
	_c.mutation.SetResponseTimeSecs(v)
	return _c
}

// SetResultingTier sets the "resulting_tier" field.
func (_c *LessonRecordCreate) SetResultingTier(v string) *LessonRecordCreate {
	_c.mutation.SetResultingTier(v)
	return _c
}

// Mutation returns the LessonRecordMutation object of the builder.
func (_c *LessonRecordCreate) Mutation() *LessonRecordMutation {
	return _c.mutation
}

// Save creates the LessonRecord in the database.
func (_c *LessonRecordCreate) Save(ctx context.Context) (*LessonRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonRecordCreate) SaveX(ctx context.Context) *LessonRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonRecordCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "LessonRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := lessonrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "LessonRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonRecord.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonrecord.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonRecord.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "LessonRecord.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := lessonrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonRecord.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "LessonRecord.completed_at"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "LessonRecord.accuracy"`)}
	}
	if _, ok := _c.mutation.ResponseTimeSecs(); !ok {
		return &ValidationError{Name: "response_time_secs", err: errors.New(`ent: missing required field "LessonRecord.response_time_secs"`)}
	}
	if _, ok := _c.mutation.ResultingTier(); !ok {
		return &ValidationError{Name: "resulting_tier", err: errors.New(`ent: missing required field "LessonRecord.resulting_tier"`)}
	}
	if v, ok := _c.mutation.ResultingTier(); ok {
		if err := lessonrecord.ResultingTierValidator(v); err != nil {
			return &ValidationError{Name: "resulting_tier", err: fmt.Errorf(`ent: validator failed for field "LessonRecord.resulting_tier": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonRecordCreate) sqlSave(ctx context.Context) (*LessonRecord, error) {
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

func (_c *LessonRecordCreate) createSpec() (*LessonRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonrecord.Table, sqlgraph.NewFieldSpec(lessonrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(lessonrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonrecord.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(lessonrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lessonrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(lessonrecord.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.ResponseTimeSecs(); ok {
		_spec.SetField(lessonrecord.FieldResponseTimeSecs, field.TypeFloat64, value)
		_node.ResponseTimeSecs = value
	}
	if value, ok := _c.mutation.ResultingTier(); ok {
		_spec.SetField(lessonrecord.FieldResultingTier, field.TypeString, value)
		_node.ResultingTier = value
	}
	return _node, _spec
}

// LessonRecordCreateBulk is the builder for creating many LessonRecord entities in bulk.
type LessonRecordCreateBulk struct {
	config
	err      error
	builders []*LessonRecordCreate
}

// Save creates the LessonRecord entities in the database.
func (_c *LessonRecordCreateBulk) Save(ctx context.Context) ([]*LessonRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonRecordMutation)
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
func (_c *LessonRecordCreateBulk) SaveX(ctx context.Context) []*LessonRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
