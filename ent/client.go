// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentfleet/agentfleet/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// RunNodeMetric is the client for interacting with the RunNodeMetric builders.
	RunNodeMetric *RunNodeMetricClient
	// RunSummary is the client for interacting with the RunSummary builders.
	RunSummary *RunSummaryClient
	// RunTelemetry is the client for interacting with the RunTelemetry builders.
	RunTelemetry *RunTelemetryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.RunEvent = NewRunEventClient(c.config)
	c.RunNodeMetric = NewRunNodeMetricClient(c.config)
	c.RunSummary = NewRunSummaryClient(c.config)
	c.RunTelemetry = NewRunTelemetryClient(c.config)
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
		RunEvent:      NewRunEventClient(cfg),
		RunNodeMetric: NewRunNodeMetricClient(cfg),
		RunSummary:    NewRunSummaryClient(cfg),
		RunTelemetry:  NewRunTelemetryClient(cfg),
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
		RunEvent:      NewRunEventClient(cfg),
		RunNodeMetric: NewRunNodeMetricClient(cfg),
		RunSummary:    NewRunSummaryClient(cfg),
		RunTelemetry:  NewRunTelemetryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		RunEvent.
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
	c.RunEvent.Use(hooks...)
	c.RunNodeMetric.Use(hooks...)
	c.RunSummary.Use(hooks...)
	c.RunTelemetry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.RunEvent.Intercept(interceptors...)
	c.RunNodeMetric.Intercept(interceptors...)
	c.RunSummary.Intercept(interceptors...)
	c.RunTelemetry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *RunNodeMetricMutation:
		return c.RunNodeMetric.mutate(ctx, m)
	case *RunSummaryMutation:
		return c.RunSummary.mutate(ctx, m)
	case *RunTelemetryMutation:
		return c.RunTelemetry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id int) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id int) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id int) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id int) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *RunSummaryQuery {
	query := (&RunSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(runsummary.Table, runsummary.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// RunNodeMetricClient is a client for the RunNodeMetric schema.
type RunNodeMetricClient struct {
	config
}

// NewRunNodeMetricClient returns a client for the RunNodeMetric from the given config.
func NewRunNodeMetricClient(c config) *RunNodeMetricClient {
	return &RunNodeMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runnodemetric.Hooks(f(g(h())))`.
func (c *RunNodeMetricClient) Use(hooks ...Hook) {
	c.hooks.RunNodeMetric = append(c.hooks.RunNodeMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runnodemetric.Intercept(f(g(h())))`.
func (c *RunNodeMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunNodeMetric = append(c.inters.RunNodeMetric, interceptors...)
}

// Create returns a builder for creating a RunNodeMetric entity.
func (c *RunNodeMetricClient) Create() *RunNodeMetricCreate {
	mutation := newRunNodeMetricMutation(c.config, OpCreate)
	return &RunNodeMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunNodeMetric entities.
func (c *RunNodeMetricClient) CreateBulk(builders ...*RunNodeMetricCreate) *RunNodeMetricCreateBulk {
	return &RunNodeMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunNodeMetricClient) MapCreateBulk(slice any, setFunc func(*RunNodeMetricCreate, int)) *RunNodeMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunNodeMetricCreateBulk{err: fmt.Errorf("calling to RunNodeMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunNodeMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunNodeMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunNodeMetric.
func (c *RunNodeMetricClient) Update() *RunNodeMetricUpdate {
	mutation := newRunNodeMetricMutation(c.config, OpUpdate)
	return &RunNodeMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunNodeMetricClient) UpdateOne(_m *RunNodeMetric) *RunNodeMetricUpdateOne {
	mutation := newRunNodeMetricMutation(c.config, OpUpdateOne, withRunNodeMetric(_m))
	return &RunNodeMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunNodeMetricClient) UpdateOneID(id int) *RunNodeMetricUpdateOne {
	mutation := newRunNodeMetricMutation(c.config, OpUpdateOne, withRunNodeMetricID(id))
	return &RunNodeMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunNodeMetric.
func (c *RunNodeMetricClient) Delete() *RunNodeMetricDelete {
	mutation := newRunNodeMetricMutation(c.config, OpDelete)
	return &RunNodeMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunNodeMetricClient) DeleteOne(_m *RunNodeMetric) *RunNodeMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunNodeMetricClient) DeleteOneID(id int) *RunNodeMetricDeleteOne {
	builder := c.Delete().Where(runnodemetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunNodeMetricDeleteOne{builder}
}

// Query returns a query builder for RunNodeMetric.
func (c *RunNodeMetricClient) Query() *RunNodeMetricQuery {
	return &RunNodeMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunNodeMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a RunNodeMetric entity by its id.
func (c *RunNodeMetricClient) Get(ctx context.Context, id int) (*RunNodeMetric, error) {
	return c.Query().Where(runnodemetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunNodeMetricClient) GetX(ctx context.Context, id int) *RunNodeMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunNodeMetric.
func (c *RunNodeMetricClient) QueryRun(_m *RunNodeMetric) *RunSummaryQuery {
	query := (&RunSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runnodemetric.Table, runnodemetric.FieldID, id),
			sqlgraph.To(runsummary.Table, runsummary.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runnodemetric.RunTable, runnodemetric.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunNodeMetricClient) Hooks() []Hook {
	return c.hooks.RunNodeMetric
}

// Interceptors returns the client interceptors.
func (c *RunNodeMetricClient) Interceptors() []Interceptor {
	return c.inters.RunNodeMetric
}

func (c *RunNodeMetricClient) mutate(ctx context.Context, m *RunNodeMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunNodeMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunNodeMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunNodeMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunNodeMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunNodeMetric mutation op: %q", m.Op())
	}
}

// RunSummaryClient is a client for the RunSummary schema.
type RunSummaryClient struct {
	config
}

// NewRunSummaryClient returns a client for the RunSummary from the given config.
func NewRunSummaryClient(c config) *RunSummaryClient {
	return &RunSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runsummary.Hooks(f(g(h())))`.
func (c *RunSummaryClient) Use(hooks ...Hook) {
	c.hooks.RunSummary = append(c.hooks.RunSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runsummary.Intercept(f(g(h())))`.
func (c *RunSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunSummary = append(c.inters.RunSummary, interceptors...)
}

// Create returns a builder for creating a RunSummary entity.
func (c *RunSummaryClient) Create() *RunSummaryCreate {
	mutation := newRunSummaryMutation(c.config, OpCreate)
	return &RunSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunSummary entities.
func (c *RunSummaryClient) CreateBulk(builders ...*RunSummaryCreate) *RunSummaryCreateBulk {
	return &RunSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunSummaryClient) MapCreateBulk(slice any, setFunc func(*RunSummaryCreate, int)) *RunSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunSummaryCreateBulk{err: fmt.Errorf("calling to RunSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunSummary.
func (c *RunSummaryClient) Update() *RunSummaryUpdate {
	mutation := newRunSummaryMutation(c.config, OpUpdate)
	return &RunSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunSummaryClient) UpdateOne(_m *RunSummary) *RunSummaryUpdateOne {
	mutation := newRunSummaryMutation(c.config, OpUpdateOne, withRunSummary(_m))
	return &RunSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunSummaryClient) UpdateOneID(id string) *RunSummaryUpdateOne {
	mutation := newRunSummaryMutation(c.config, OpUpdateOne, withRunSummaryID(id))
	return &RunSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunSummary.
func (c *RunSummaryClient) Delete() *RunSummaryDelete {
	mutation := newRunSummaryMutation(c.config, OpDelete)
	return &RunSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunSummaryClient) DeleteOne(_m *RunSummary) *RunSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunSummaryClient) DeleteOneID(id string) *RunSummaryDeleteOne {
	builder := c.Delete().Where(runsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunSummaryDeleteOne{builder}
}

// Query returns a query builder for RunSummary.
func (c *RunSummaryClient) Query() *RunSummaryQuery {
	return &RunSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a RunSummary entity by its id.
func (c *RunSummaryClient) Get(ctx context.Context, id string) (*RunSummary, error) {
	return c.Query().Where(runsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunSummaryClient) GetX(ctx context.Context, id string) *RunSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a RunSummary.
func (c *RunSummaryClient) QueryEvents(_m *RunSummary) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runsummary.Table, runsummary.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runsummary.EventsTable, runsummary.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNodeMetrics queries the node_metrics edge of a RunSummary.
func (c *RunSummaryClient) QueryNodeMetrics(_m *RunSummary) *RunNodeMetricQuery {
	query := (&RunNodeMetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runsummary.Table, runsummary.FieldID, id),
			sqlgraph.To(runnodemetric.Table, runnodemetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runsummary.NodeMetricsTable, runsummary.NodeMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTelemetry queries the telemetry edge of a RunSummary.
func (c *RunSummaryClient) QueryTelemetry(_m *RunSummary) *RunTelemetryQuery {
	query := (&RunTelemetryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runsummary.Table, runsummary.FieldID, id),
			sqlgraph.To(runtelemetry.Table, runtelemetry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runsummary.TelemetryTable, runsummary.TelemetryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunSummaryClient) Hooks() []Hook {
	return c.hooks.RunSummary
}

// Interceptors returns the client interceptors.
func (c *RunSummaryClient) Interceptors() []Interceptor {
	return c.inters.RunSummary
}

func (c *RunSummaryClient) mutate(ctx context.Context, m *RunSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunSummary mutation op: %q", m.Op())
	}
}

// RunTelemetryClient is a client for the RunTelemetry schema.
type RunTelemetryClient struct {
	config
}

// NewRunTelemetryClient returns a client for the RunTelemetry from the given config.
func NewRunTelemetryClient(c config) *RunTelemetryClient {
	return &RunTelemetryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runtelemetry.Hooks(f(g(h())))`.
func (c *RunTelemetryClient) Use(hooks ...Hook) {
	c.hooks.RunTelemetry = append(c.hooks.RunTelemetry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runtelemetry.Intercept(f(g(h())))`.
func (c *RunTelemetryClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunTelemetry = append(c.inters.RunTelemetry, interceptors...)
}

// Create returns a builder for creating a RunTelemetry entity.
func (c *RunTelemetryClient) Create() *RunTelemetryCreate {
	mutation := newRunTelemetryMutation(c.config, OpCreate)
	return &RunTelemetryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunTelemetry entities.
func (c *RunTelemetryClient) CreateBulk(builders ...*RunTelemetryCreate) *RunTelemetryCreateBulk {
	return &RunTelemetryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunTelemetryClient) MapCreateBulk(slice any, setFunc func(*RunTelemetryCreate, int)) *RunTelemetryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunTelemetryCreateBulk{err: fmt.Errorf("calling to RunTelemetryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunTelemetryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunTelemetryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunTelemetry.
func (c *RunTelemetryClient) Update() *RunTelemetryUpdate {
	mutation := newRunTelemetryMutation(c.config, OpUpdate)
	return &RunTelemetryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunTelemetryClient) UpdateOne(_m *RunTelemetry) *RunTelemetryUpdateOne {
	mutation := newRunTelemetryMutation(c.config, OpUpdateOne, withRunTelemetry(_m))
	return &RunTelemetryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunTelemetryClient) UpdateOneID(id int) *RunTelemetryUpdateOne {
	mutation := newRunTelemetryMutation(c.config, OpUpdateOne, withRunTelemetryID(id))
	return &RunTelemetryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunTelemetry.
func (c *RunTelemetryClient) Delete() *RunTelemetryDelete {
	mutation := newRunTelemetryMutation(c.config, OpDelete)
	return &RunTelemetryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunTelemetryClient) DeleteOne(_m *RunTelemetry) *RunTelemetryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunTelemetryClient) DeleteOneID(id int) *RunTelemetryDeleteOne {
	builder := c.Delete().Where(runtelemetry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunTelemetryDeleteOne{builder}
}

// Query returns a query builder for RunTelemetry.
func (c *RunTelemetryClient) Query() *RunTelemetryQuery {
	return &RunTelemetryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunTelemetry},
		inters: c.Interceptors(),
	}
}

// Get returns a RunTelemetry entity by its id.
func (c *RunTelemetryClient) Get(ctx context.Context, id int) (*RunTelemetry, error) {
	return c.Query().Where(runtelemetry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunTelemetryClient) GetX(ctx context.Context, id int) *RunTelemetry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunTelemetry.
func (c *RunTelemetryClient) QueryRun(_m *RunTelemetry) *RunSummaryQuery {
	query := (&RunSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runtelemetry.Table, runtelemetry.FieldID, id),
			sqlgraph.To(runsummary.Table, runsummary.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runtelemetry.RunTable, runtelemetry.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunTelemetryClient) Hooks() []Hook {
	return c.hooks.RunTelemetry
}

// Interceptors returns the client interceptors.
func (c *RunTelemetryClient) Interceptors() []Interceptor {
	return c.inters.RunTelemetry
}

func (c *RunTelemetryClient) mutate(ctx context.Context, m *RunTelemetryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunTelemetryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunTelemetryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunTelemetryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunTelemetryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunTelemetry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		RunEvent, RunNodeMetric, RunSummary, RunTelemetry []ent.Hook
	}
	inters struct {
		RunEvent, RunNodeMetric, RunSummary, RunTelemetry []ent.Interceptor
	}
)
