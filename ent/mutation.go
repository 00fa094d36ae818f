// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/lessonrecord"
	"github.com/tutorbase/timo/ent/predicate"
	"github.com/tutorbase/timo/ent/subjectsignal"
	"github.com/tutorbase/timo/ent/weakarea"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLessonRecord  = "LessonRecord"
	TypeSubjectSignal = "SubjectSignal"
	TypeWeakArea      = "WeakArea"
)

// LessonRecordMutation represents an operation that mutates the LessonRecord nodes in the graph.
type LessonRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	student_id            *string
	lesson_id             *string
	subject               *string
	completed_at          *time.Time
	accuracy              *float64
	addaccuracy           *float64
	response_time_secs    *float64
	addresponse_time_secs *float64
	resulting_tier        *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*LessonRecord, error)
	predicates            []predicate.LessonRecord
}

var _ ent.Mutation = (*LessonRecordMutation)(nil)

// lessonrecordOption allows management of the mutation configuration using functional options.
type lessonrecordOption func(*LessonRecordMutation)

// newLessonRecordMutation creates new mutation for the LessonRecord entity.
func newLessonRecordMutation(c config, op Op, opts ...lessonrecordOption) *LessonRecordMutation {
	m := &LessonRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonRecordID sets the ID field of the mutation.
func withLessonRecordID(id int) lessonrecordOption {
	return func(m *LessonRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonRecord
		)
		m.oldValue = func(ctx context.Context) (*LessonRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonRecord sets the old LessonRecord of the mutation.
func withLessonRecord(node *LessonRecord) lessonrecordOption {
	return func(m *LessonRecordMutation) {
		m.oldValue = func(context.Context) (*LessonRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *LessonRecordMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *LessonRecordMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *LessonRecordMutation) ResetStudentID() {
	m.student_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonRecordMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonRecordMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonRecordMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetSubject sets the "subject" field.
func (m *LessonRecordMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *LessonRecordMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *LessonRecordMutation) ResetSubject() {
	m.subject = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LessonRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LessonRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LessonRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *LessonRecordMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *LessonRecordMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *LessonRecordMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *LessonRecordMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *LessonRecordMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetResponseTimeSecs sets the "response_time_secs" field.
func (m *LessonRecordMutation) SetResponseTimeSecs(f float64) {
	m.response_time_secs = &f
	m.addresponse_time_secs = nil
}

// ResponseTimeSecs returns the value of the "response_time_secs" field in the mutation.
func (m *LessonRecordMutation) ResponseTimeSecs() (r float64, exists bool) {
	v := m.response_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeSecs returns the old "response_time_secs" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldResponseTimeSecs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeSecs: %w", err)
	}
	return oldValue.ResponseTimeSecs, nil
}

// AddResponseTimeSecs adds f to the "response_time_secs" field.
func (m *LessonRecordMutation) AddResponseTimeSecs(f float64) {
	if m.addresponse_time_secs != nil {
		*m.addresponse_time_secs += f
	} else {
		m.addresponse_time_secs = &f
	}
}

// AddedResponseTimeSecs returns the value that was added to the "response_time_secs" field in this mutation.
func (m *LessonRecordMutation) AddedResponseTimeSecs() (r float64, exists bool) {
	v := m.addresponse_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeSecs resets all changes to the "response_time_secs" field.
func (m *LessonRecordMutation) ResetResponseTimeSecs() {
	m.response_time_secs = nil
	m.addresponse_time_secs = nil
}

// SetResultingTier sets the "resulting_tier" field.
func (m *LessonRecordMutation) SetResultingTier(s string) {
	m.resulting_tier = &s
}

// ResultingTier returns the value of the "resulting_tier" field in the mutation.
func (m *LessonRecordMutation) ResultingTier() (r string, exists bool) {
	v := m.resulting_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldResultingTier returns the old "resulting_tier" field's value of the LessonRecord entity.
// If the LessonRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonRecordMutation) OldResultingTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultingTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultingTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultingTier: %w", err)
	}
	return oldValue.ResultingTier, nil
}

// ResetResultingTier resets all changes to the "resulting_tier" field.
func (m *LessonRecordMutation) ResetResultingTier() {
	m.resulting_tier = nil
}

// Where appends a list predicates to the LessonRecordMutation builder.
func (m *LessonRecordMutation) Where(ps ...predicate.LessonRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonRecord).
func (m *LessonRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.student_id != nil {
		fields = append(fields, lessonrecord.FieldStudentID)
	}
	if m.lesson_id != nil {
		fields = append(fields, lessonrecord.FieldLessonID)
	}
	if m.subject != nil {
		fields = append(fields, lessonrecord.FieldSubject)
	}
	if m.completed_at != nil {
		fields = append(fields, lessonrecord.FieldCompletedAt)
	}
	if m.accuracy != nil {
		fields = append(fields, lessonrecord.FieldAccuracy)
	}
	if m.response_time_secs != nil {
		fields = append(fields, lessonrecord.FieldResponseTimeSecs)
	}
	if m.resulting_tier != nil {
		fields = append(fields, lessonrecord.FieldResultingTier)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonrecord.FieldStudentID:
		return m.StudentID()
	case lessonrecord.FieldLessonID:
		return m.LessonID()
	case lessonrecord.FieldSubject:
		return m.Subject()
	case lessonrecord.FieldCompletedAt:
		return m.CompletedAt()
	case lessonrecord.FieldAccuracy:
		return m.Accuracy()
	case lessonrecord.FieldResponseTimeSecs:
		return m.ResponseTimeSecs()
	case lessonrecord.FieldResultingTier:
		return m.ResultingTier()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonrecord.FieldStudentID:
		return m.OldStudentID(ctx)
	case lessonrecord.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessonrecord.FieldSubject:
		return m.OldSubject(ctx)
	case lessonrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case lessonrecord.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case lessonrecord.FieldResponseTimeSecs:
		return m.OldResponseTimeSecs(ctx)
	case lessonrecord.FieldResultingTier:
		return m.OldResultingTier(ctx)
	}
	return nil, fmt.Errorf("unknown LessonRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonrecord.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case lessonrecord.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessonrecord.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case lessonrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case lessonrecord.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case lessonrecord.FieldResponseTimeSecs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeSecs(v)
		return nil
	case lessonrecord.FieldResultingTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultingTier(v)
		return nil
	}
	return fmt.Errorf("unknown LessonRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonRecordMutation) AddedFields() []string {
	var fields []string
	if m.addaccuracy != nil {
		fields = append(fields, lessonrecord.FieldAccuracy)
	}
	if m.addresponse_time_secs != nil {
		fields = append(fields, lessonrecord.FieldResponseTimeSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonrecord.FieldAccuracy:
		return m.AddedAccuracy()
	case lessonrecord.FieldResponseTimeSecs:
		return m.AddedResponseTimeSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonrecord.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case lessonrecord.FieldResponseTimeSecs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeSecs(v)
		return nil
	}
	return fmt.Errorf("unknown LessonRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonRecordMutation) ResetField(name string) error {
	switch name {
	case lessonrecord.FieldStudentID:
		m.ResetStudentID()
		return nil
	case lessonrecord.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessonrecord.FieldSubject:
		m.ResetSubject()
		return nil
	case lessonrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case lessonrecord.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case lessonrecord.FieldResponseTimeSecs:
		m.ResetResponseTimeSecs()
		return nil
	case lessonrecord.FieldResultingTier:
		m.ResetResultingTier()
		return nil
	}
	return fmt.Errorf("unknown LessonRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonRecord edge %s", name)
}

// SubjectSignalMutation represents an operation that mutates the SubjectSignal nodes in the graph.
type SubjectSignalMutation struct {
	config
	op            Op
	typ           string
	id            *int
	student_id    *string
	subject       *string
	rating        *float64
	addrating     *float64
	mastery       *float64
	addmastery    *float64
	ability       *float64
	addability    *float64
	attempts      *int
	addattempts   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SubjectSignal, error)
	predicates    []predicate.SubjectSignal
}

var _ ent.Mutation = (*SubjectSignalMutation)(nil)

// subjectsignalOption allows management of the mutation configuration using functional options.
type subjectsignalOption func(*SubjectSignalMutation)

// newSubjectSignalMutation creates new mutation for the SubjectSignal entity.
func newSubjectSignalMutation(c config, op Op, opts ...subjectsignalOption) *SubjectSignalMutation {
	m := &SubjectSignalMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectSignal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectSignalID sets the ID field of the mutation.
func withSubjectSignalID(id int) subjectsignalOption {
	return func(m *SubjectSignalMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectSignal
		)
		m.oldValue = func(ctx context.Context) (*SubjectSignal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectSignal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectSignal sets the old SubjectSignal of the mutation.
func withSubjectSignal(node *SubjectSignal) subjectsignalOption {
	return func(m *SubjectSignalMutation) {
		m.oldValue = func(context.Context) (*SubjectSignal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectSignalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectSignalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectSignalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectSignalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectSignal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *SubjectSignalMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *SubjectSignalMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the SubjectSignal entity.
// If the SubjectSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectSignalMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *SubjectSignalMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubject sets the "subject" field.
func (m *SubjectSignalMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *SubjectSignalMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the SubjectSignal entity.
// If the SubjectSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectSignalMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *SubjectSignalMutation) ResetSubject() {
	m.subject = nil
}

// SetRating sets the "rating" field.
func (m *SubjectSignalMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *SubjectSignalMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the SubjectSignal entity.
// If the SubjectSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectSignalMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *SubjectSignalMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *SubjectSignalMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *SubjectSignalMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetMastery sets the "mastery" field.
func (m *SubjectSignalMutation) SetMastery(f float64) {
	m.mastery = &f
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *SubjectSignalMutation) Mastery() (r float64, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the SubjectSignal entity.
// If the SubjectSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectSignalMutation) OldMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds f to the "mastery" field.
func (m *SubjectSignalMutation) AddMastery(f float64) {
	if m.addmastery != nil {
		*m.addmastery += f
	} else {
		m.addmastery = &f
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *SubjectSignalMutation) AddedMastery() (r float64, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *SubjectSignalMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// SetAbility sets the "ability" field.
func (m *SubjectSignalMutation) SetAbility(f float64) {
	m.ability = &f
	m.addability = nil
}

// Ability returns the value of the "ability" field in the mutation.
func (m *SubjectSignalMutation) Ability() (r float64, exists bool) {
	v := m.ability
	if v == nil {
		return
	}
	return *v, true
}

// OldAbility returns the old "ability" field's value of the SubjectSignal entity.
// If the SubjectSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectSignalMutation) OldAbility(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbility: %w", err)
	}
	return oldValue.Ability, nil
}

// AddAbility adds f to the "ability" field.
func (m *SubjectSignalMutation) AddAbility(f float64) {
	if m.addability != nil {
		*m.addability += f
	} else {
		m.addability = &f
	}
}

// AddedAbility returns the value that was added to the "ability" field in this mutation.
func (m *SubjectSignalMutation) AddedAbility() (r float64, exists bool) {
	v := m.addability
	if v == nil {
		return
	}
	return *v, true
}

// ResetAbility resets all changes to the "ability" field.
func (m *SubjectSignalMutation) ResetAbility() {
	m.ability = nil
	m.addability = nil
}

// SetAttempts sets the "attempts" field.
func (m *SubjectSignalMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SubjectSignalMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SubjectSignal entity.
// If the SubjectSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectSignalMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *SubjectSignalMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *SubjectSignalMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SubjectSignalMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// Where appends a list predicates to the SubjectSignalMutation builder.
func (m *SubjectSignalMutation) Where(ps ...predicate.SubjectSignal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectSignalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectSignalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectSignal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectSignalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectSignalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectSignal).
func (m *SubjectSignalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectSignalMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.student_id != nil {
		fields = append(fields, subjectsignal.FieldStudentID)
	}
	if m.subject != nil {
		fields = append(fields, subjectsignal.FieldSubject)
	}
	if m.rating != nil {
		fields = append(fields, subjectsignal.FieldRating)
	}
	if m.mastery != nil {
		fields = append(fields, subjectsignal.FieldMastery)
	}
	if m.ability != nil {
		fields = append(fields, subjectsignal.FieldAbility)
	}
	if m.attempts != nil {
		fields = append(fields, subjectsignal.FieldAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectSignalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectsignal.FieldStudentID:
		return m.StudentID()
	case subjectsignal.FieldSubject:
		return m.Subject()
	case subjectsignal.FieldRating:
		return m.Rating()
	case subjectsignal.FieldMastery:
		return m.Mastery()
	case subjectsignal.FieldAbility:
		return m.Ability()
	case subjectsignal.FieldAttempts:
		return m.Attempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectSignalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectsignal.FieldStudentID:
		return m.OldStudentID(ctx)
	case subjectsignal.FieldSubject:
		return m.OldSubject(ctx)
	case subjectsignal.FieldRating:
		return m.OldRating(ctx)
	case subjectsignal.FieldMastery:
		return m.OldMastery(ctx)
	case subjectsignal.FieldAbility:
		return m.OldAbility(ctx)
	case subjectsignal.FieldAttempts:
		return m.OldAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectSignal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectSignalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectsignal.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case subjectsignal.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case subjectsignal.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case subjectsignal.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case subjectsignal.FieldAbility:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbility(v)
		return nil
	case subjectsignal.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectSignal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectSignalMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, subjectsignal.FieldRating)
	}
	if m.addmastery != nil {
		fields = append(fields, subjectsignal.FieldMastery)
	}
	if m.addability != nil {
		fields = append(fields, subjectsignal.FieldAbility)
	}
	if m.addattempts != nil {
		fields = append(fields, subjectsignal.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectSignalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subjectsignal.FieldRating:
		return m.AddedRating()
	case subjectsignal.FieldMastery:
		return m.AddedMastery()
	case subjectsignal.FieldAbility:
		return m.AddedAbility()
	case subjectsignal.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectSignalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subjectsignal.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case subjectsignal.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	case subjectsignal.FieldAbility:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAbility(v)
		return nil
	case subjectsignal.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectSignal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectSignalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectSignalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectSignalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubjectSignal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectSignalMutation) ResetField(name string) error {
	switch name {
	case subjectsignal.FieldStudentID:
		m.ResetStudentID()
		return nil
	case subjectsignal.FieldSubject:
		m.ResetSubject()
		return nil
	case subjectsignal.FieldRating:
		m.ResetRating()
		return nil
	case subjectsignal.FieldMastery:
		m.ResetMastery()
		return nil
	case subjectsignal.FieldAbility:
		m.ResetAbility()
		return nil
	case subjectsignal.FieldAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown SubjectSignal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectSignalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectSignalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectSignalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectSignalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectSignalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectSignalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectSignalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubjectSignal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectSignalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubjectSignal edge %s", name)
}

// WeakAreaMutation represents an operation that mutates the WeakArea nodes in the graph.
type WeakAreaMutation struct {
	config
	op                Op
	typ               string
	id                *int
	student_id        *string
	subject           *string
	concept_score     *float64
	addconcept_score  *float64
	last_practiced_at *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*WeakArea, error)
	predicates        []predicate.WeakArea
}

var _ ent.Mutation = (*WeakAreaMutation)(nil)

// weakareaOption allows management of the mutation configuration using functional options.
type weakareaOption func(*WeakAreaMutation)

// newWeakAreaMutation creates new mutation for the WeakArea entity.
func newWeakAreaMutation(c config, op Op, opts ...weakareaOption) *WeakAreaMutation {
	m := &WeakAreaMutation{
		config:        c,
		op:            op,
		typ:           TypeWeakArea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeakAreaID sets the ID field of the mutation.
func withWeakAreaID(id int) weakareaOption {
	return func(m *WeakAreaMutation) {
		var (
			err   error
			once  sync.Once
			value *WeakArea
		)
		m.oldValue = func(ctx context.Context) (*WeakArea, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeakArea.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeakArea sets the old WeakArea of the mutation.
func withWeakArea(node *WeakArea) weakareaOption {
	return func(m *WeakAreaMutation) {
		m.oldValue = func(context.Context) (*WeakArea, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeakAreaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeakAreaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeakAreaMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeakAreaMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeakArea.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *WeakAreaMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *WeakAreaMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the WeakArea entity.
// If the WeakArea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakAreaMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *WeakAreaMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubject sets the "subject" field.
func (m *WeakAreaMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *WeakAreaMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the WeakArea entity.
// If the WeakArea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakAreaMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *WeakAreaMutation) ResetSubject() {
	m.subject = nil
}

// SetConceptScore sets the "concept_score" field.
func (m *WeakAreaMutation) SetConceptScore(f float64) {
	m.concept_score = &f
	m.addconcept_score = nil
}

// ConceptScore returns the value of the "concept_score" field in the mutation.
func (m *WeakAreaMutation) ConceptScore() (r float64, exists bool) {
	v := m.concept_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptScore returns the old "concept_score" field's value of the WeakArea entity.
// If the WeakArea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakAreaMutation) OldConceptScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptScore: %w", err)
	}
	return oldValue.ConceptScore, nil
}

// AddConceptScore adds f to the "concept_score" field.
func (m *WeakAreaMutation) AddConceptScore(f float64) {
	if m.addconcept_score != nil {
		*m.addconcept_score += f
	} else {
		m.addconcept_score = &f
	}
}

// AddedConceptScore returns the value that was added to the "concept_score" field in this mutation.
func (m *WeakAreaMutation) AddedConceptScore() (r float64, exists bool) {
	v := m.addconcept_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptScore resets all changes to the "concept_score" field.
func (m *WeakAreaMutation) ResetConceptScore() {
	m.concept_score = nil
	m.addconcept_score = nil
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *WeakAreaMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *WeakAreaMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the WeakArea entity.
// If the WeakArea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakAreaMutation) OldLastPracticedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *WeakAreaMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
}

// Where appends a list predicates to the WeakAreaMutation builder.
func (m *WeakAreaMutation) Where(ps ...predicate.WeakArea) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeakAreaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeakAreaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeakArea, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeakAreaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeakAreaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeakArea).
func (m *WeakAreaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeakAreaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.student_id != nil {
		fields = append(fields, weakarea.FieldStudentID)
	}
	if m.subject != nil {
		fields = append(fields, weakarea.FieldSubject)
	}
	if m.concept_score != nil {
		fields = append(fields, weakarea.FieldConceptScore)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, weakarea.FieldLastPracticedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeakAreaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weakarea.FieldStudentID:
		return m.StudentID()
	case weakarea.FieldSubject:
		return m.Subject()
	case weakarea.FieldConceptScore:
		return m.ConceptScore()
	case weakarea.FieldLastPracticedAt:
		return m.LastPracticedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeakAreaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weakarea.FieldStudentID:
		return m.OldStudentID(ctx)
	case weakarea.FieldSubject:
		return m.OldSubject(ctx)
	case weakarea.FieldConceptScore:
		return m.OldConceptScore(ctx)
	case weakarea.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WeakArea field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeakAreaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weakarea.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case weakarea.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case weakarea.FieldConceptScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptScore(v)
		return nil
	case weakarea.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WeakArea field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeakAreaMutation) AddedFields() []string {
	var fields []string
	if m.addconcept_score != nil {
		fields = append(fields, weakarea.FieldConceptScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeakAreaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weakarea.FieldConceptScore:
		return m.AddedConceptScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeakAreaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weakarea.FieldConceptScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptScore(v)
		return nil
	}
	return fmt.Errorf("unknown WeakArea numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeakAreaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeakAreaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeakAreaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WeakArea nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeakAreaMutation) ResetField(name string) error {
	switch name {
	case weakarea.FieldStudentID:
		m.ResetStudentID()
		return nil
	case weakarea.FieldSubject:
		m.ResetSubject()
		return nil
	case weakarea.FieldConceptScore:
		m.ResetConceptScore()
		return nil
	case weakarea.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown WeakArea field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeakAreaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeakAreaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeakAreaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeakAreaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeakAreaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeakAreaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeakAreaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeakArea unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeakAreaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeakArea edge %s", name)
}
