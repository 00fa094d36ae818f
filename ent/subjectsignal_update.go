// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorbase/timo/ent/predicate"
	"github.com/tutorbase/timo/ent/subjectsignal"
)

// SubjectSignalUpdate is the builder for updating SubjectSignal entities.
type SubjectSignalUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectSignalMutation
}

// Where appends a list predicates to the SubjectSignalUpdate builder.
func (_u *SubjectSignalUpdate) Where(ps ...predicate.SubjectSignal) *SubjectSignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRating sets the "rating" field.
func (_u *SubjectSignalUpdate) SetRating(v float64) *SubjectSignalUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *SubjectSignalUpdate) SetNillableRating(v *float64) *SubjectSignalUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *SubjectSignalUpdate) AddRating(v float64) *SubjectSignalUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SubjectSignalUpdate) SetMastery(v float64) *SubjectSignalUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SubjectSignalUpdate) SetNillableMastery(v *float64) *SubjectSignalUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *SubjectSignalUpdate) AddMastery(v float64) *SubjectSignalUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetAbility sets the "ability" field.
func (_u *SubjectSignalUpdate) SetAbility(v float64) *SubjectSignalUpdate {
	_u.mutation.ResetAbility()
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *SubjectSignalUpdate) SetNillableAbility(v *float64) *SubjectSignalUpdate {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// AddAbility adds value to the "ability" field.
func (_u *SubjectSignalUpdate) AddAbility(v float64) *SubjectSignalUpdate {
	_u.mutation.AddAbility(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SubjectSignalUpdate) SetAttempts(v int) *SubjectSignalUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SubjectSignalUpdate) SetNillableAttempts(v *int) *SubjectSignalUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SubjectSignalUpdate) AddAttempts(v int) *SubjectSignalUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the SubjectSignalMutation object of the builder.
func (_u *SubjectSignalUpdate) Mutation() *SubjectSignalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectSignalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectSignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectSignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectSignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubjectSignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(subjectsignal.Table, subjectsignal.Columns, sqlgraph.NewFieldSpec(subjectsignal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(subjectsignal.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(subjectsignal.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(subjectsignal.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(subjectsignal.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(subjectsignal.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbility(); ok {
		_spec.AddField(subjectsignal.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(subjectsignal.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(subjectsignal.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectSignalUpdateOne is the builder for updating a single SubjectSignal entity.
type SubjectSignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectSignalMutation
}

// SetRating sets the "rating" field.
func (_u *SubjectSignalUpdateOne) SetRating(v float64) *SubjectSignalUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *SubjectSignalUpdateOne) SetNillableRating(v *float64) *SubjectSignalUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *SubjectSignalUpdateOne) AddRating(v float64) *SubjectSignalUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SubjectSignalUpdateOne) SetMastery(v float64) *SubjectSignalUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SubjectSignalUpdateOne) SetNillableMastery(v *float64) *SubjectSignalUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *SubjectSignalUpdateOne) AddMastery(v float64) *SubjectSignalUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetAbility sets the "ability" field.
func (_u *SubjectSignalUpdateOne) SetAbility(v float64) *SubjectSignalUpdateOne {
	_u.mutation.ResetAbility()
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *SubjectSignalUpdateOne) SetNillableAbility(v *float64) *SubjectSignalUpdateOne {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// AddAbility adds value to the "ability" field.
func (_u *SubjectSignalUpdateOne) AddAbility(v float64) *SubjectSignalUpdateOne {
	_u.mutation.AddAbility(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SubjectSignalUpdateOne) SetAttempts(v int) *SubjectSignalUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SubjectSignalUpdateOne) SetNillableAttempts(v *int) *SubjectSignalUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SubjectSignalUpdateOne) AddAttempts(v int) *SubjectSignalUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the SubjectSignalMutation object of the builder.
func (_u *SubjectSignalUpdateOne) Mutation() *SubjectSignalMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectSignalUpdate builder.
func (_u *SubjectSignalUpdateOne) Where(ps ...predicate.SubjectSignal) *SubjectSignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectSignalUpdateOne) Select(field string, fields ...string) *SubjectSignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubjectSignal entity.
func (_u *SubjectSignalUpdateOne) Save(ctx context.Context) (*SubjectSignal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectSignalUpdateOne) SaveX(ctx context.Context) *SubjectSignal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectSignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectSignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubjectSignalUpdateOne) sqlSave(ctx context.Context) (_node *SubjectSignal, err error) {
	_spec := sqlgraph.NewUpdateSpec(subjectsignal.Table, subjectsignal.Columns, sqlgraph.NewFieldSpec(subjectsignal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectSignal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectsignal.FieldID)
		for _, f := range fields {
			if !subjectsignal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectsignal.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(subjectsignal.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(subjectsignal.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(subjectsignal.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(subjectsignal.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(subjectsignal.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbility(); ok {
		_spec.AddField(subjectsignal.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(subjectsignal.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(subjectsignal.FieldAttempts, field.TypeInt, value)
	}
	_node = &SubjectSignal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
