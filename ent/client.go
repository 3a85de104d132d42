// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/praxis-coach/praxis/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-coach/praxis/ent/drill"
	"github.com/praxis-coach/praxis/ent/learningplan"
	"github.com/praxis-coach/praxis/ent/llmrequestevent"
	"github.com/praxis-coach/praxis/ent/masteryevent"
	"github.com/praxis-coach/praxis/ent/questmilestone"
	"github.com/praxis-coach/praxis/ent/skill"
	"github.com/praxis-coach/praxis/ent/weekplan"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Drill is the client for interacting with the Drill builders.
	Drill *DrillClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningPlan is the client for interacting with the LearningPlan builders.
	LearningPlan *LearningPlanClient
	// MasteryEvent is the client for interacting with the MasteryEvent builders.
	MasteryEvent *MasteryEventClient
	// QuestMilestone is the client for interacting with the QuestMilestone builders.
	QuestMilestone *QuestMilestoneClient
	// Skill is the client for interacting with the Skill builders.
	Skill *SkillClient
	// WeekPlan is the client for interacting with the WeekPlan builders.
	WeekPlan *WeekPlanClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Drill = NewDrillClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningPlan = NewLearningPlanClient(c.config)
	c.MasteryEvent = NewMasteryEventClient(c.config)
	c.QuestMilestone = NewQuestMilestoneClient(c.config)
	c.Skill = NewSkillClient(c.config)
	c.WeekPlan = NewWeekPlanClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Drill:           NewDrillClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearningPlan:    NewLearningPlanClient(cfg),
		MasteryEvent:    NewMasteryEventClient(cfg),
		QuestMilestone:  NewQuestMilestoneClient(cfg),
		Skill:           NewSkillClient(cfg),
		WeekPlan:        NewWeekPlanClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Drill:           NewDrillClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearningPlan:    NewLearningPlanClient(cfg),
		MasteryEvent:    NewMasteryEventClient(cfg),
		QuestMilestone:  NewQuestMilestoneClient(cfg),
		Skill:           NewSkillClient(cfg),
		WeekPlan:        NewWeekPlanClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Drill.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Drill, c.LLMRequestEvent, c.LearningPlan, c.MasteryEvent, c.QuestMilestone,
		c.Skill, c.WeekPlan,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Drill, c.LLMRequestEvent, c.LearningPlan, c.MasteryEvent, c.QuestMilestone,
		c.Skill, c.WeekPlan,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DrillMutation:
		return c.Drill.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningPlanMutation:
		return c.LearningPlan.mutate(ctx, m)
	case *MasteryEventMutation:
		return c.MasteryEvent.mutate(ctx, m)
	case *QuestMilestoneMutation:
		return c.QuestMilestone.mutate(ctx, m)
	case *SkillMutation:
		return c.Skill.mutate(ctx, m)
	case *WeekPlanMutation:
		return c.WeekPlan.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DrillClient is a client for the Drill schema.
type DrillClient struct {
	config
}

// NewDrillClient returns a client for the Drill from the given config.
func NewDrillClient(c config) *DrillClient {
	return &DrillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `drill.Hooks(f(g(h())))`.
func (c *DrillClient) Use(hooks ...Hook) {
	c.hooks.Drill = append(c.hooks.Drill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `drill.Intercept(f(g(h())))`.
func (c *DrillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Drill = append(c.inters.Drill, interceptors...)
}

// Create returns a builder for creating a Drill entity.
func (c *DrillClient) Create() *DrillCreate {
	mutation := newDrillMutation(c.config, OpCreate)
	return &DrillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Drill entities.
func (c *DrillClient) CreateBulk(builders ...*DrillCreate) *DrillCreateBulk {
	return &DrillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DrillClient) MapCreateBulk(slice any, setFunc func(*DrillCreate, int)) *DrillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DrillCreateBulk{err: fmt.Errorf("calling to DrillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DrillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DrillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Drill.
func (c *DrillClient) Update() *DrillUpdate {
	mutation := newDrillMutation(c.config, OpUpdate)
	return &DrillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DrillClient) UpdateOne(_m *Drill) *DrillUpdateOne {
	mutation := newDrillMutation(c.config, OpUpdateOne, withDrill(_m))
	return &DrillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DrillClient) UpdateOneID(id string) *DrillUpdateOne {
	mutation := newDrillMutation(c.config, OpUpdateOne, withDrillID(id))
	return &DrillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Drill.
func (c *DrillClient) Delete() *DrillDelete {
	mutation := newDrillMutation(c.config, OpDelete)
	return &DrillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DrillClient) DeleteOne(_m *Drill) *DrillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DrillClient) DeleteOneID(id string) *DrillDeleteOne {
	builder := c.Delete().Where(drill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DrillDeleteOne{builder}
}

// Query returns a query builder for Drill.
func (c *DrillClient) Query() *DrillQuery {
	return &DrillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDrill},
		inters: c.Interceptors(),
	}
}

// Get returns a Drill entity by its id.
func (c *DrillClient) Get(ctx context.Context, id string) (*Drill, error) {
	return c.Query().Where(drill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DrillClient) GetX(ctx context.Context, id string) *Drill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DrillClient) Hooks() []Hook {
	return c.hooks.Drill
}

// Interceptors returns the client interceptors.
func (c *DrillClient) Interceptors() []Interceptor {
	return c.inters.Drill
}

func (c *DrillClient) mutate(ctx context.Context, m *DrillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DrillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DrillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DrillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DrillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Drill mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningPlanClient is a client for the LearningPlan schema.
type LearningPlanClient struct {
	config
}

// NewLearningPlanClient returns a client for the LearningPlan from the given config.
func NewLearningPlanClient(c config) *LearningPlanClient {
	return &LearningPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningplan.Hooks(f(g(h())))`.
func (c *LearningPlanClient) Use(hooks ...Hook) {
	c.hooks.LearningPlan = append(c.hooks.LearningPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningplan.Intercept(f(g(h())))`.
func (c *LearningPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningPlan = append(c.inters.LearningPlan, interceptors...)
}

// Create returns a builder for creating a LearningPlan entity.
func (c *LearningPlanClient) Create() *LearningPlanCreate {
	mutation := newLearningPlanMutation(c.config, OpCreate)
	return &LearningPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningPlan entities.
func (c *LearningPlanClient) CreateBulk(builders ...*LearningPlanCreate) *LearningPlanCreateBulk {
	return &LearningPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningPlanClient) MapCreateBulk(slice any, setFunc func(*LearningPlanCreate, int)) *LearningPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningPlanCreateBulk{err: fmt.Errorf("calling to LearningPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningPlan.
func (c *LearningPlanClient) Update() *LearningPlanUpdate {
	mutation := newLearningPlanMutation(c.config, OpUpdate)
	return &LearningPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningPlanClient) UpdateOne(_m *LearningPlan) *LearningPlanUpdateOne {
	mutation := newLearningPlanMutation(c.config, OpUpdateOne, withLearningPlan(_m))
	return &LearningPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningPlanClient) UpdateOneID(id string) *LearningPlanUpdateOne {
	mutation := newLearningPlanMutation(c.config, OpUpdateOne, withLearningPlanID(id))
	return &LearningPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningPlan.
func (c *LearningPlanClient) Delete() *LearningPlanDelete {
	mutation := newLearningPlanMutation(c.config, OpDelete)
	return &LearningPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningPlanClient) DeleteOne(_m *LearningPlan) *LearningPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningPlanClient) DeleteOneID(id string) *LearningPlanDeleteOne {
	builder := c.Delete().Where(learningplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningPlanDeleteOne{builder}
}

// Query returns a query builder for LearningPlan.
func (c *LearningPlanClient) Query() *LearningPlanQuery {
	return &LearningPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningPlan entity by its id.
func (c *LearningPlanClient) Get(ctx context.Context, id string) (*LearningPlan, error) {
	return c.Query().Where(learningplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningPlanClient) GetX(ctx context.Context, id string) *LearningPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningPlanClient) Hooks() []Hook {
	return c.hooks.LearningPlan
}

// Interceptors returns the client interceptors.
func (c *LearningPlanClient) Interceptors() []Interceptor {
	return c.inters.LearningPlan
}

func (c *LearningPlanClient) mutate(ctx context.Context, m *LearningPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningPlan mutation op: %q", m.Op())
	}
}

// MasteryEventClient is a client for the MasteryEvent schema.
type MasteryEventClient struct {
	config
}

// NewMasteryEventClient returns a client for the MasteryEvent from the given config.
func NewMasteryEventClient(c config) *MasteryEventClient {
	return &MasteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryevent.Hooks(f(g(h())))`.
func (c *MasteryEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryEvent = append(c.hooks.MasteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryevent.Intercept(f(g(h())))`.
func (c *MasteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryEvent = append(c.inters.MasteryEvent, interceptors...)
}

// Create returns a builder for creating a MasteryEvent entity.
func (c *MasteryEventClient) Create() *MasteryEventCreate {
	mutation := newMasteryEventMutation(c.config, OpCreate)
	return &MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryEvent entities.
func (c *MasteryEventClient) CreateBulk(builders ...*MasteryEventCreate) *MasteryEventCreateBulk {
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryEventClient) MapCreateBulk(slice any, setFunc func(*MasteryEventCreate, int)) *MasteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryEventCreateBulk{err: fmt.Errorf("calling to MasteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryEvent.
func (c *MasteryEventClient) Update() *MasteryEventUpdate {
	mutation := newMasteryEventMutation(c.config, OpUpdate)
	return &MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryEventClient) UpdateOne(_m *MasteryEvent) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEvent(_m))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryEventClient) UpdateOneID(id int) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEventID(id))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryEvent.
func (c *MasteryEventClient) Delete() *MasteryEventDelete {
	mutation := newMasteryEventMutation(c.config, OpDelete)
	return &MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryEventClient) DeleteOne(_m *MasteryEvent) *MasteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryEventClient) DeleteOneID(id int) *MasteryEventDeleteOne {
	builder := c.Delete().Where(masteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryEventDeleteOne{builder}
}

// Query returns a query builder for MasteryEvent.
func (c *MasteryEventClient) Query() *MasteryEventQuery {
	return &MasteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryEvent entity by its id.
func (c *MasteryEventClient) Get(ctx context.Context, id int) (*MasteryEvent, error) {
	return c.Query().Where(masteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryEventClient) GetX(ctx context.Context, id int) *MasteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryEventClient) Hooks() []Hook {
	return c.hooks.MasteryEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryEvent
}

func (c *MasteryEventClient) mutate(ctx context.Context, m *MasteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryEvent mutation op: %q", m.Op())
	}
}

// QuestMilestoneClient is a client for the QuestMilestone schema.
type QuestMilestoneClient struct {
	config
}

// NewQuestMilestoneClient returns a client for the QuestMilestone from the given config.
func NewQuestMilestoneClient(c config) *QuestMilestoneClient {
	return &QuestMilestoneClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questmilestone.Hooks(f(g(h())))`.
func (c *QuestMilestoneClient) Use(hooks ...Hook) {
	c.hooks.QuestMilestone = append(c.hooks.QuestMilestone, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questmilestone.Intercept(f(g(h())))`.
func (c *QuestMilestoneClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestMilestone = append(c.inters.QuestMilestone, interceptors...)
}

// Create returns a builder for creating a QuestMilestone entity.
func (c *QuestMilestoneClient) Create() *QuestMilestoneCreate {
	mutation := newQuestMilestoneMutation(c.config, OpCreate)
	return &QuestMilestoneCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestMilestone entities.
func (c *QuestMilestoneClient) CreateBulk(builders ...*QuestMilestoneCreate) *QuestMilestoneCreateBulk {
	return &QuestMilestoneCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestMilestoneClient) MapCreateBulk(slice any, setFunc func(*QuestMilestoneCreate, int)) *QuestMilestoneCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestMilestoneCreateBulk{err: fmt.Errorf("calling to QuestMilestoneClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestMilestoneCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestMilestoneCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestMilestone.
func (c *QuestMilestoneClient) Update() *QuestMilestoneUpdate {
	mutation := newQuestMilestoneMutation(c.config, OpUpdate)
	return &QuestMilestoneUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestMilestoneClient) UpdateOne(_m *QuestMilestone) *QuestMilestoneUpdateOne {
	mutation := newQuestMilestoneMutation(c.config, OpUpdateOne, withQuestMilestone(_m))
	return &QuestMilestoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestMilestoneClient) UpdateOneID(id string) *QuestMilestoneUpdateOne {
	mutation := newQuestMilestoneMutation(c.config, OpUpdateOne, withQuestMilestoneID(id))
	return &QuestMilestoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestMilestone.
func (c *QuestMilestoneClient) Delete() *QuestMilestoneDelete {
	mutation := newQuestMilestoneMutation(c.config, OpDelete)
	return &QuestMilestoneDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestMilestoneClient) DeleteOne(_m *QuestMilestone) *QuestMilestoneDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestMilestoneClient) DeleteOneID(id string) *QuestMilestoneDeleteOne {
	builder := c.Delete().Where(questmilestone.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestMilestoneDeleteOne{builder}
}

// Query returns a query builder for QuestMilestone.
func (c *QuestMilestoneClient) Query() *QuestMilestoneQuery {
	return &QuestMilestoneQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestMilestone},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestMilestone entity by its id.
func (c *QuestMilestoneClient) Get(ctx context.Context, id string) (*QuestMilestone, error) {
	return c.Query().Where(questmilestone.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestMilestoneClient) GetX(ctx context.Context, id string) *QuestMilestone {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestMilestoneClient) Hooks() []Hook {
	return c.hooks.QuestMilestone
}

// Interceptors returns the client interceptors.
func (c *QuestMilestoneClient) Interceptors() []Interceptor {
	return c.inters.QuestMilestone
}

func (c *QuestMilestoneClient) mutate(ctx context.Context, m *QuestMilestoneMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestMilestoneCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestMilestoneUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestMilestoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestMilestoneDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestMilestone mutation op: %q", m.Op())
	}
}

// SkillClient is a client for the Skill schema.
type SkillClient struct {
	config
}

// NewSkillClient returns a client for the Skill from the given config.
func NewSkillClient(c config) *SkillClient {
	return &SkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skill.Hooks(f(g(h())))`.
func (c *SkillClient) Use(hooks ...Hook) {
	c.hooks.Skill = append(c.hooks.Skill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skill.Intercept(f(g(h())))`.
func (c *SkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Skill = append(c.inters.Skill, interceptors...)
}

// Create returns a builder for creating a Skill entity.
func (c *SkillClient) Create() *SkillCreate {
	mutation := newSkillMutation(c.config, OpCreate)
	return &SkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Skill entities.
func (c *SkillClient) CreateBulk(builders ...*SkillCreate) *SkillCreateBulk {
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillClient) MapCreateBulk(slice any, setFunc func(*SkillCreate, int)) *SkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCreateBulk{err: fmt.Errorf("calling to SkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Skill.
func (c *SkillClient) Update() *SkillUpdate {
	mutation := newSkillMutation(c.config, OpUpdate)
	return &SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillClient) UpdateOne(_m *Skill) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkill(_m))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillClient) UpdateOneID(id string) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkillID(id))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Skill.
func (c *SkillClient) Delete() *SkillDelete {
	mutation := newSkillMutation(c.config, OpDelete)
	return &SkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillClient) DeleteOne(_m *Skill) *SkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillClient) DeleteOneID(id string) *SkillDeleteOne {
	builder := c.Delete().Where(skill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDeleteOne{builder}
}

// Query returns a query builder for Skill.
func (c *SkillClient) Query() *SkillQuery {
	return &SkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a Skill entity by its id.
func (c *SkillClient) Get(ctx context.Context, id string) (*Skill, error) {
	return c.Query().Where(skill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillClient) GetX(ctx context.Context, id string) *Skill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillClient) Hooks() []Hook {
	return c.hooks.Skill
}

// Interceptors returns the client interceptors.
func (c *SkillClient) Interceptors() []Interceptor {
	return c.inters.Skill
}

func (c *SkillClient) mutate(ctx context.Context, m *SkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Skill mutation op: %q", m.Op())
	}
}

// WeekPlanClient is a client for the WeekPlan schema.
type WeekPlanClient struct {
	config
}

// NewWeekPlanClient returns a client for the WeekPlan from the given config.
func NewWeekPlanClient(c config) *WeekPlanClient {
	return &WeekPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weekplan.Hooks(f(g(h())))`.
func (c *WeekPlanClient) Use(hooks ...Hook) {
	c.hooks.WeekPlan = append(c.hooks.WeekPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weekplan.Intercept(f(g(h())))`.
func (c *WeekPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeekPlan = append(c.inters.WeekPlan, interceptors...)
}

// Create returns a builder for creating a WeekPlan entity.
func (c *WeekPlanClient) Create() *WeekPlanCreate {
	mutation := newWeekPlanMutation(c.config, OpCreate)
	return &WeekPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeekPlan entities.
func (c *WeekPlanClient) CreateBulk(builders ...*WeekPlanCreate) *WeekPlanCreateBulk {
	return &WeekPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeekPlanClient) MapCreateBulk(slice any, setFunc func(*WeekPlanCreate, int)) *WeekPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeekPlanCreateBulk{err: fmt.Errorf("calling to WeekPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeekPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeekPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeekPlan.
func (c *WeekPlanClient) Update() *WeekPlanUpdate {
	mutation := newWeekPlanMutation(c.config, OpUpdate)
	return &WeekPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeekPlanClient) UpdateOne(_m *WeekPlan) *WeekPlanUpdateOne {
	mutation := newWeekPlanMutation(c.config, OpUpdateOne, withWeekPlan(_m))
	return &WeekPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeekPlanClient) UpdateOneID(id string) *WeekPlanUpdateOne {
	mutation := newWeekPlanMutation(c.config, OpUpdateOne, withWeekPlanID(id))
	return &WeekPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeekPlan.
func (c *WeekPlanClient) Delete() *WeekPlanDelete {
	mutation := newWeekPlanMutation(c.config, OpDelete)
	return &WeekPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeekPlanClient) DeleteOne(_m *WeekPlan) *WeekPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeekPlanClient) DeleteOneID(id string) *WeekPlanDeleteOne {
	builder := c.Delete().Where(weekplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeekPlanDeleteOne{builder}
}

// Query returns a query builder for WeekPlan.
func (c *WeekPlanClient) Query() *WeekPlanQuery {
	return &WeekPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeekPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a WeekPlan entity by its id.
func (c *WeekPlanClient) Get(ctx context.Context, id string) (*WeekPlan, error) {
	return c.Query().Where(weekplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeekPlanClient) GetX(ctx context.Context, id string) *WeekPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeekPlanClient) Hooks() []Hook {
	return c.hooks.WeekPlan
}

// Interceptors returns the client interceptors.
func (c *WeekPlanClient) Interceptors() []Interceptor {
	return c.inters.WeekPlan
}

func (c *WeekPlanClient) mutate(ctx context.Context, m *WeekPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeekPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeekPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeekPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeekPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeekPlan mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Drill, LLMRequestEvent, LearningPlan, MasteryEvent, QuestMilestone, Skill,
		WeekPlan []ent.Hook
	}
	inters struct {
		Drill, LLMRequestEvent, LearningPlan, MasteryEvent, QuestMilestone, Skill,
		WeekPlan []ent.Interceptor
	}
)
