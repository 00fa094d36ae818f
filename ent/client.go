// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tutorbase/timo/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/lessonrecord"
	"github.com/tutorbase/timo/ent/subjectsignal"
	"github.com/tutorbase/timo/ent/weakarea"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LessonRecord is the client for interacting with the LessonRecord builders.
	LessonRecord *LessonRecordClient
	// SubjectSignal is the client for interacting with the SubjectSignal builders.
	SubjectSignal *SubjectSignalClient
	// WeakArea is the client for interacting with the WeakArea builders.
	WeakArea *WeakAreaClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LessonRecord = NewLessonRecordClient(c.config)
	c.SubjectSignal = NewSubjectSignalClient(c.config)
	c.WeakArea = NewWeakAreaClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		LessonRecord:  NewLessonRecordClient(cfg),
		SubjectSignal: NewSubjectSignalClient(cfg),
		WeakArea:      NewWeakAreaClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		LessonRecord:  NewLessonRecordClient(cfg),
		SubjectSignal: NewSubjectSignalClient(cfg),
		WeakArea:      NewWeakAreaClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LessonRecord.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.LessonRecord.Use(hooks...)
	c.SubjectSignal.Use(hooks...)
	c.WeakArea.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LessonRecord.Intercept(interceptors...)
	c.SubjectSignal.Intercept(interceptors...)
	c.WeakArea.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LessonRecordMutation:
		return c.LessonRecord.mutate(ctx, m)
	case *SubjectSignalMutation:
		return c.SubjectSignal.mutate(ctx, m)
	case *WeakAreaMutation:
		return c.WeakArea.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LessonRecordClient is a client for the LessonRecord schema.
type LessonRecordClient struct {
	config
}

// NewLessonRecordClient returns a client for the LessonRecord from the given config.
func NewLessonRecordClient(c config) *LessonRecordClient {
	return &LessonRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonrecord.Hooks(f(g(h())))`.
func (c *LessonRecordClient) Use(hooks ...Hook) {
	c.hooks.LessonRecord = append(c.hooks.LessonRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonrecord.Intercept(f(g(h())))`.
func (c *LessonRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonRecord = append(c.inters.LessonRecord, interceptors...)
}

// Create returns a builder for creating a LessonRecord entity.
func (c *LessonRecordClient) Create() *LessonRecordCreate {
	mutation := newLessonRecordMutation(c.config, OpCreate)
	return &LessonRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonRecord entities.
func (c *LessonRecordClient) CreateBulk(builders ...*LessonRecordCreate) *LessonRecordCreateBulk {
	return &LessonRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonRecordClient) MapCreateBulk(slice any, setFunc func(*LessonRecordCreate, int)) *LessonRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonRecordCreateBulk{err: fmt.Errorf("calling to LessonRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonRecord.
func (c *LessonRecordClient) Update() *LessonRecordUpdate {
	mutation := newLessonRecordMutation(c.config, OpUpdate)
	return &LessonRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonRecordClient) UpdateOne(_m *LessonRecord) *LessonRecordUpdateOne {
	mutation := newLessonRecordMutation(c.config, OpUpdateOne, withLessonRecord(_m))
	return &LessonRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonRecordClient) UpdateOneID(id int) *LessonRecordUpdateOne {
	mutation := newLessonRecordMutation(c.config, OpUpdateOne, withLessonRecordID(id))
	return &LessonRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonRecord.
func (c *LessonRecordClient) Delete() *LessonRecordDelete {
	mutation := newLessonRecordMutation(c.config, OpDelete)
	return &LessonRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonRecordClient) DeleteOne(_m *LessonRecord) *LessonRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonRecordClient) DeleteOneID(id int) *LessonRecordDeleteOne {
	builder := c.Delete().Where(lessonrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonRecordDeleteOne{builder}
}

// Query returns a query builder for LessonRecord.
func (c *LessonRecordClient) Query() *LessonRecordQuery {
	return &LessonRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonRecord entity by its id.
func (c *LessonRecordClient) Get(ctx context.Context, id int) (*LessonRecord, error) {
	return c.Query().Where(lessonrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonRecordClient) GetX(ctx context.Context, id int) *LessonRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonRecordClient) Hooks() []Hook {
	return c.hooks.LessonRecord
}

// Interceptors returns the client interceptors.
func (c *LessonRecordClient) Interceptors() []Interceptor {
	return c.inters.LessonRecord
}

func (c *LessonRecordClient) mutate(ctx context.Context, m *LessonRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonRecord mutation op: %q", m.Op())
	}
}

// SubjectSignalClient is a client for the SubjectSignal schema.
type SubjectSignalClient struct {
	config
}

// NewSubjectSignalClient returns a client for the SubjectSignal from the given config.
func NewSubjectSignalClient(c config) *SubjectSignalClient {
	return &SubjectSignalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subjectsignal.Hooks(f(g(h())))`.
func (c *SubjectSignalClient) Use(hooks ...Hook) {
	c.hooks.SubjectSignal = append(c.hooks.SubjectSignal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subjectsignal.Intercept(f(g(h())))`.
func (c *SubjectSignalClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubjectSignal = append(c.inters.SubjectSignal, interceptors...)
}

// Create returns a builder for creating a SubjectSignal entity.
func (c *SubjectSignalClient) Create() *SubjectSignalCreate {
	mutation := newSubjectSignalMutation(c.config, OpCreate)
	return &SubjectSignalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubjectSignal entities.
func (c *SubjectSignalClient) CreateBulk(builders ...*SubjectSignalCreate) *SubjectSignalCreateBulk {
	return &SubjectSignalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectSignalClient) MapCreateBulk(slice any, setFunc func(*SubjectSignalCreate, int)) *SubjectSignalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectSignalCreateBulk{err: fmt.Errorf("calling to SubjectSignalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectSignalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectSignalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubjectSignal.
func (c *SubjectSignalClient) Update() *SubjectSignalUpdate {
	mutation := newSubjectSignalMutation(c.config, OpUpdate)
	return &SubjectSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectSignalClient) UpdateOne(_m *SubjectSignal) *SubjectSignalUpdateOne {
	mutation := newSubjectSignalMutation(c.config, OpUpdateOne, withSubjectSignal(_m))
	return &SubjectSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectSignalClient) UpdateOneID(id int) *SubjectSignalUpdateOne {
	mutation := newSubjectSignalMutation(c.config, OpUpdateOne, withSubjectSignalID(id))
	return &SubjectSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubjectSignal.
func (c *SubjectSignalClient) Delete() *SubjectSignalDelete {
	mutation := newSubjectSignalMutation(c.config, OpDelete)
	return &SubjectSignalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectSignalClient) DeleteOne(_m *SubjectSignal) *SubjectSignalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectSignalClient) DeleteOneID(id int) *SubjectSignalDeleteOne {
	builder := c.Delete().Where(subjectsignal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectSignalDeleteOne{builder}
}

// Query returns a query builder for SubjectSignal.
func (c *SubjectSignalClient) Query() *SubjectSignalQuery {
	return &SubjectSignalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubjectSignal},
		inters: c.Interceptors(),
	}
}

// Get returns a SubjectSignal entity by its id.
func (c *SubjectSignalClient) Get(ctx context.Context, id int) (*SubjectSignal, error) {
	return c.Query().Where(subjectsignal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectSignalClient) GetX(ctx context.Context, id int) *SubjectSignal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectSignalClient) Hooks() []Hook {
	return c.hooks.SubjectSignal
}

// Interceptors returns the client interceptors.
func (c *SubjectSignalClient) Interceptors() []Interceptor {
	return c.inters.SubjectSignal
}

func (c *SubjectSignalClient) mutate(ctx context.Context, m *SubjectSignalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectSignalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectSignalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubjectSignal mutation op: %q", m.Op())
	}
}

// WeakAreaClient is a client for the WeakArea schema.
type WeakAreaClient struct {
	config
}

// NewWeakAreaClient returns a client for the WeakArea from the given config.
func NewWeakAreaClient(c config) *WeakAreaClient {
	return &WeakAreaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weakarea.Hooks(f(g(h())))`.
func (c *WeakAreaClient) Use(hooks ...Hook) {
	c.hooks.WeakArea = append(c.hooks.WeakArea, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weakarea.Intercept(f(g(h())))`.
func (c *WeakAreaClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeakArea = append(c.inters.WeakArea, interceptors...)
}

// Create returns a builder for creating a WeakArea entity.
func (c *WeakAreaClient) Create() *WeakAreaCreate {
	mutation := newWeakAreaMutation(c.config, OpCreate)
	return &WeakAreaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeakArea entities.
func (c *WeakAreaClient) CreateBulk(builders ...*WeakAreaCreate) *WeakAreaCreateBulk {
	return &WeakAreaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeakAreaClient) MapCreateBulk(slice any, setFunc func(*WeakAreaCreate, int)) *WeakAreaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeakAreaCreateBulk{err: fmt.Errorf("calling to WeakAreaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeakAreaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeakAreaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeakArea.
func (c *WeakAreaClient) Update() *WeakAreaUpdate {
	mutation := newWeakAreaMutation(c.config, OpUpdate)
	return &WeakAreaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeakAreaClient) UpdateOne(_m *WeakArea) *WeakAreaUpdateOne {
	mutation := newWeakAreaMutation(c.config, OpUpdateOne, withWeakArea(_m))
	return &WeakAreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeakAreaClient) UpdateOneID(id int) *WeakAreaUpdateOne {
	mutation := newWeakAreaMutation(c.config, OpUpdateOne, withWeakAreaID(id))
	return &WeakAreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeakArea.
func (c *WeakAreaClient) Delete() *WeakAreaDelete {
	mutation := newWeakAreaMutation(c.config, OpDelete)
	return &WeakAreaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeakAreaClient) DeleteOne(_m *WeakArea) *WeakAreaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeakAreaClient) DeleteOneID(id int) *WeakAreaDeleteOne {
	builder := c.Delete().Where(weakarea.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeakAreaDeleteOne{builder}
}

// Query returns a query builder for WeakArea.
func (c *WeakAreaClient) Query() *WeakAreaQuery {
	return &WeakAreaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeakArea},
		inters: c.Interceptors(),
	}
}

// Get returns a WeakArea entity by its id.
func (c *WeakAreaClient) Get(ctx context.Context, id int) (*WeakArea, error) {
	return c.Query().Where(weakarea.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeakAreaClient) GetX(ctx context.Context, id int) *WeakArea {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeakAreaClient) Hooks() []Hook {
	return c.hooks.WeakArea
}

// Interceptors returns the client interceptors.
func (c *WeakAreaClient) Interceptors() []Interceptor {
	return c.inters.WeakArea
}

func (c *WeakAreaClient) mutate(ctx context.Context, m *WeakAreaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeakAreaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeakAreaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeakAreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeakAreaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeakArea mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LessonRecord, SubjectSignal, WeakArea []ent.Hook
	}
	inters struct {
		LessonRecord, SubjectSignal, WeakArea []ent.Interceptor
	}
)
