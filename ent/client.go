// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/synthlab-ai/persim/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/ent/simulation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisResult is the client for interacting with the AnalysisResult builders.
	AnalysisResult *AnalysisResultClient
	// PipelineRun is the client for interacting with the PipelineRun builders.
	PipelineRun *PipelineRunClient
	// Simulation is the client for interacting with the Simulation builders.
	Simulation *SimulationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisResult = NewAnalysisResultClient(c.config)
	c.PipelineRun = NewPipelineRunClient(c.config)
	c.Simulation = NewSimulationClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AnalysisResult: NewAnalysisResultClient(cfg),
		PipelineRun:    NewPipelineRunClient(cfg),
		Simulation:     NewSimulationClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AnalysisResult: NewAnalysisResultClient(cfg),
		PipelineRun:    NewPipelineRunClient(cfg),
		Simulation:     NewSimulationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisResult.
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
	c.AnalysisResult.Use(hooks...)
	c.PipelineRun.Use(hooks...)
	c.Simulation.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisResult.Intercept(interceptors...)
	c.PipelineRun.Intercept(interceptors...)
	c.Simulation.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisResultMutation:
		return c.AnalysisResult.mutate(ctx, m)
	case *PipelineRunMutation:
		return c.PipelineRun.mutate(ctx, m)
	case *SimulationMutation:
		return c.Simulation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisResultClient is a client for the AnalysisResult schema.
type AnalysisResultClient struct {
	config
}

// NewAnalysisResultClient returns a client for the AnalysisResult from the given config.
func NewAnalysisResultClient(c config) *AnalysisResultClient {
	return &AnalysisResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisresult.Hooks(f(g(h())))`.
func (c *AnalysisResultClient) Use(hooks ...Hook) {
	c.hooks.AnalysisResult = append(c.hooks.AnalysisResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisresult.Intercept(f(g(h())))`.
func (c *AnalysisResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisResult = append(c.inters.AnalysisResult, interceptors...)
}

// Create returns a builder for creating a AnalysisResult entity.
func (c *AnalysisResultClient) Create() *AnalysisResultCreate {
	mutation := newAnalysisResultMutation(c.config, OpCreate)
	return &AnalysisResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisResult entities.
func (c *AnalysisResultClient) CreateBulk(builders ...*AnalysisResultCreate) *AnalysisResultCreateBulk {
	return &AnalysisResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisResultClient) MapCreateBulk(slice any, setFunc func(*AnalysisResultCreate, int)) *AnalysisResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisResultCreateBulk{err: fmt.Errorf("calling to AnalysisResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisResult.
func (c *AnalysisResultClient) Update() *AnalysisResultUpdate {
	mutation := newAnalysisResultMutation(c.config, OpUpdate)
	return &AnalysisResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisResultClient) UpdateOne(_m *AnalysisResult) *AnalysisResultUpdateOne {
	mutation := newAnalysisResultMutation(c.config, OpUpdateOne, withAnalysisResult(_m))
	return &AnalysisResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisResultClient) UpdateOneID(id int) *AnalysisResultUpdateOne {
	mutation := newAnalysisResultMutation(c.config, OpUpdateOne, withAnalysisResultID(id))
	return &AnalysisResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisResult.
func (c *AnalysisResultClient) Delete() *AnalysisResultDelete {
	mutation := newAnalysisResultMutation(c.config, OpDelete)
	return &AnalysisResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisResultClient) DeleteOne(_m *AnalysisResult) *AnalysisResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisResultClient) DeleteOneID(id int) *AnalysisResultDeleteOne {
	builder := c.Delete().Where(analysisresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisResultDeleteOne{builder}
}

// Query returns a query builder for AnalysisResult.
func (c *AnalysisResultClient) Query() *AnalysisResultQuery {
	return &AnalysisResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisResult},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisResult entity by its id.
func (c *AnalysisResultClient) Get(ctx context.Context, id int) (*AnalysisResult, error) {
	return c.Query().Where(analysisresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisResultClient) GetX(ctx context.Context, id int) *AnalysisResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisResultClient) Hooks() []Hook {
	return c.hooks.AnalysisResult
}

// Interceptors returns the client interceptors.
func (c *AnalysisResultClient) Interceptors() []Interceptor {
	return c.inters.AnalysisResult
}

func (c *AnalysisResultClient) mutate(ctx context.Context, m *AnalysisResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisResult mutation op: %q", m.Op())
	}
}

// PipelineRunClient is a client for the PipelineRun schema.
type PipelineRunClient struct {
	config
}

// NewPipelineRunClient returns a client for the PipelineRun from the given config.
func NewPipelineRunClient(c config) *PipelineRunClient {
	return &PipelineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerun.Hooks(f(g(h())))`.
func (c *PipelineRunClient) Use(hooks ...Hook) {
	c.hooks.PipelineRun = append(c.hooks.PipelineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerun.Intercept(f(g(h())))`.
func (c *PipelineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRun = append(c.inters.PipelineRun, interceptors...)
}

// Create returns a builder for creating a PipelineRun entity.
func (c *PipelineRunClient) Create() *PipelineRunCreate {
	mutation := newPipelineRunMutation(c.config, OpCreate)
	return &PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRun entities.
func (c *PipelineRunClient) CreateBulk(builders ...*PipelineRunCreate) *PipelineRunCreateBulk {
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunClient) MapCreateBulk(slice any, setFunc func(*PipelineRunCreate, int)) *PipelineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunCreateBulk{err: fmt.Errorf("calling to PipelineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRun.
func (c *PipelineRunClient) Update() *PipelineRunUpdate {
	mutation := newPipelineRunMutation(c.config, OpUpdate)
	return &PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunClient) UpdateOne(_m *PipelineRun) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRun(_m))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunClient) UpdateOneID(id string) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRunID(id))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRun.
func (c *PipelineRunClient) Delete() *PipelineRunDelete {
	mutation := newPipelineRunMutation(c.config, OpDelete)
	return &PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunClient) DeleteOne(_m *PipelineRun) *PipelineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunClient) DeleteOneID(id string) *PipelineRunDeleteOne {
	builder := c.Delete().Where(pipelinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunDeleteOne{builder}
}

// Query returns a query builder for PipelineRun.
func (c *PipelineRunClient) Query() *PipelineRunQuery {
	return &PipelineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRun entity by its id.
func (c *PipelineRunClient) Get(ctx context.Context, id string) (*PipelineRun, error) {
	return c.Query().Where(pipelinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunClient) GetX(ctx context.Context, id string) *PipelineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineRunClient) Hooks() []Hook {
	return c.hooks.PipelineRun
}

// Interceptors returns the client interceptors.
func (c *PipelineRunClient) Interceptors() []Interceptor {
	return c.inters.PipelineRun
}

func (c *PipelineRunClient) mutate(ctx context.Context, m *PipelineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRun mutation op: %q", m.Op())
	}
}

// SimulationClient is a client for the Simulation schema.
type SimulationClient struct {
	config
}

// NewSimulationClient returns a client for the Simulation from the given config.
func NewSimulationClient(c config) *SimulationClient {
	return &SimulationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `simulation.Hooks(f(g(h())))`.
func (c *SimulationClient) Use(hooks ...Hook) {
	c.hooks.Simulation = append(c.hooks.Simulation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `simulation.Intercept(f(g(h())))`.
func (c *SimulationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Simulation = append(c.inters.Simulation, interceptors...)
}

// Create returns a builder for creating a Simulation entity.
func (c *SimulationClient) Create() *SimulationCreate {
	mutation := newSimulationMutation(c.config, OpCreate)
	return &SimulationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Simulation entities.
func (c *SimulationClient) CreateBulk(builders ...*SimulationCreate) *SimulationCreateBulk {
	return &SimulationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SimulationClient) MapCreateBulk(slice any, setFunc func(*SimulationCreate, int)) *SimulationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SimulationCreateBulk{err: fmt.Errorf("calling to SimulationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SimulationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SimulationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Simulation.
func (c *SimulationClient) Update() *SimulationUpdate {
	mutation := newSimulationMutation(c.config, OpUpdate)
	return &SimulationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SimulationClient) UpdateOne(_m *Simulation) *SimulationUpdateOne {
	mutation := newSimulationMutation(c.config, OpUpdateOne, withSimulation(_m))
	return &SimulationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SimulationClient) UpdateOneID(id string) *SimulationUpdateOne {
	mutation := newSimulationMutation(c.config, OpUpdateOne, withSimulationID(id))
	return &SimulationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Simulation.
func (c *SimulationClient) Delete() *SimulationDelete {
	mutation := newSimulationMutation(c.config, OpDelete)
	return &SimulationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SimulationClient) DeleteOne(_m *Simulation) *SimulationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SimulationClient) DeleteOneID(id string) *SimulationDeleteOne {
	builder := c.Delete().Where(simulation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SimulationDeleteOne{builder}
}

// Query returns a query builder for Simulation.
func (c *SimulationClient) Query() *SimulationQuery {
	return &SimulationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSimulation},
		inters: c.Interceptors(),
	}
}

// Get returns a Simulation entity by its id.
func (c *SimulationClient) Get(ctx context.Context, id string) (*Simulation, error) {
	return c.Query().Where(simulation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SimulationClient) GetX(ctx context.Context, id string) *Simulation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SimulationClient) Hooks() []Hook {
	return c.hooks.Simulation
}

// Interceptors returns the client interceptors.
func (c *SimulationClient) Interceptors() []Interceptor {
	return c.inters.Simulation
}

func (c *SimulationClient) mutate(ctx context.Context, m *SimulationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SimulationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SimulationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SimulationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SimulationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Simulation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisResult, PipelineRun, Simulation []ent.Hook
	}
	inters struct {
		AnalysisResult, PipelineRun, Simulation []ent.Interceptor
	}
)
