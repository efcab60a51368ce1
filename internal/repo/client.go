// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Defuncion is the client for interacting with the Defuncion builders.
	Defuncion *DefuncionClient
	// DiagnosticoCIE10 is the client for interacting with the DiagnosticoCIE10 builders.
	DiagnosticoCIE10 *DiagnosticoCIE10Client
	// DocumentoReferencia is the client for interacting with the DocumentoReferencia builders.
	DocumentoReferencia *DocumentoReferenciaClient
	// LogAuditoria is the client for interacting with the LogAuditoria builders.
	LogAuditoria *LogAuditoriaClient
	// Madre is the client for interacting with the Madre builders.
	Madre *MadreClient
	// Parto is the client for interacting with the Parto builders.
	Parto *PartoClient
	// PartoDiagnostico is the client for interacting with the PartoDiagnostico builders.
	PartoDiagnostico *PartoDiagnosticoClient
	// RecienNacido is the client for interacting with the RecienNacido builders.
	RecienNacido *RecienNacidoClient
	// Rol is the client for interacting with the Rol builders.
	Rol *RolClient
	// Usuario is the client for interacting with the Usuario builders.
	Usuario *UsuarioClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Defuncion = NewDefuncionClient(c.config)
	c.DiagnosticoCIE10 = NewDiagnosticoCIE10Client(c.config)
	c.DocumentoReferencia = NewDocumentoReferenciaClient(c.config)
	c.LogAuditoria = NewLogAuditoriaClient(c.config)
	c.Madre = NewMadreClient(c.config)
	c.Parto = NewPartoClient(c.config)
	c.PartoDiagnostico = NewPartoDiagnosticoClient(c.config)
	c.RecienNacido = NewRecienNacidoClient(c.config)
	c.Rol = NewRolClient(c.config)
	c.Usuario = NewUsuarioClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Defuncion:           NewDefuncionClient(cfg),
		DiagnosticoCIE10:    NewDiagnosticoCIE10Client(cfg),
		DocumentoReferencia: NewDocumentoReferenciaClient(cfg),
		LogAuditoria:        NewLogAuditoriaClient(cfg),
		Madre:               NewMadreClient(cfg),
		Parto:               NewPartoClient(cfg),
		PartoDiagnostico:    NewPartoDiagnosticoClient(cfg),
		RecienNacido:        NewRecienNacidoClient(cfg),
		Rol:                 NewRolClient(cfg),
		Usuario:             NewUsuarioClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Defuncion:           NewDefuncionClient(cfg),
		DiagnosticoCIE10:    NewDiagnosticoCIE10Client(cfg),
		DocumentoReferencia: NewDocumentoReferenciaClient(cfg),
		LogAuditoria:        NewLogAuditoriaClient(cfg),
		Madre:               NewMadreClient(cfg),
		Parto:               NewPartoClient(cfg),
		PartoDiagnostico:    NewPartoDiagnosticoClient(cfg),
		RecienNacido:        NewRecienNacidoClient(cfg),
		Rol:                 NewRolClient(cfg),
		Usuario:             NewUsuarioClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Defuncion.
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
		c.Defuncion, c.DiagnosticoCIE10, c.DocumentoReferencia, c.LogAuditoria, c.Madre,
		c.Parto, c.PartoDiagnostico, c.RecienNacido, c.Rol, c.Usuario,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Defuncion, c.DiagnosticoCIE10, c.DocumentoReferencia, c.LogAuditoria, c.Madre,
		c.Parto, c.PartoDiagnostico, c.RecienNacido, c.Rol, c.Usuario,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DefuncionMutation:
		return c.Defuncion.mutate(ctx, m)
	case *DiagnosticoCIE10Mutation:
		return c.DiagnosticoCIE10.mutate(ctx, m)
	case *DocumentoReferenciaMutation:
		return c.DocumentoReferencia.mutate(ctx, m)
	case *LogAuditoriaMutation:
		return c.LogAuditoria.mutate(ctx, m)
	case *MadreMutation:
		return c.Madre.mutate(ctx, m)
	case *PartoMutation:
		return c.Parto.mutate(ctx, m)
	case *PartoDiagnosticoMutation:
		return c.PartoDiagnostico.mutate(ctx, m)
	case *RecienNacidoMutation:
		return c.RecienNacido.mutate(ctx, m)
	case *RolMutation:
		return c.Rol.mutate(ctx, m)
	case *UsuarioMutation:
		return c.Usuario.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// DefuncionClient is a client for the Defuncion schema.
type DefuncionClient struct {
	config
}

// NewDefuncionClient returns a client for the Defuncion from the given config.
func NewDefuncionClient(c config) *DefuncionClient {
	return &DefuncionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `defuncion.Hooks(f(g(h())))`.
func (c *DefuncionClient) Use(hooks ...Hook) {
	c.hooks.Defuncion = append(c.hooks.Defuncion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `defuncion.Intercept(f(g(h())))`.
func (c *DefuncionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Defuncion = append(c.inters.Defuncion, interceptors...)
}

// Create returns a builder for creating a Defuncion entity.
func (c *DefuncionClient) Create() *DefuncionCreate {
	mutation := newDefuncionMutation(c.config, OpCreate)
	return &DefuncionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Defuncion entities.
func (c *DefuncionClient) CreateBulk(builders ...*DefuncionCreate) *DefuncionCreateBulk {
	return &DefuncionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DefuncionClient) MapCreateBulk(slice any, setFunc func(*DefuncionCreate, int)) *DefuncionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DefuncionCreateBulk{err: fmt.Errorf("calling to DefuncionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DefuncionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DefuncionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Defuncion.
func (c *DefuncionClient) Update() *DefuncionUpdate {
	mutation := newDefuncionMutation(c.config, OpUpdate)
	return &DefuncionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DefuncionClient) UpdateOne(_m *Defuncion) *DefuncionUpdateOne {
	mutation := newDefuncionMutation(c.config, OpUpdateOne, withDefuncion(_m))
	return &DefuncionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DefuncionClient) UpdateOneID(id uuid.UUID) *DefuncionUpdateOne {
	mutation := newDefuncionMutation(c.config, OpUpdateOne, withDefuncionID(id))
	return &DefuncionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Defuncion.
func (c *DefuncionClient) Delete() *DefuncionDelete {
	mutation := newDefuncionMutation(c.config, OpDelete)
	return &DefuncionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DefuncionClient) DeleteOne(_m *Defuncion) *DefuncionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DefuncionClient) DeleteOneID(id uuid.UUID) *DefuncionDeleteOne {
	builder := c.Delete().Where(defuncion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DefuncionDeleteOne{builder}
}

// Query returns a query builder for Defuncion.
func (c *DefuncionClient) Query() *DefuncionQuery {
	return &DefuncionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDefuncion},
		inters: c.Interceptors(),
	}
}

// Get returns a Defuncion entity by its id.
func (c *DefuncionClient) Get(ctx context.Context, id uuid.UUID) (*Defuncion, error) {
	return c.Query().Where(defuncion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DefuncionClient) GetX(ctx context.Context, id uuid.UUID) *Defuncion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMadre queries the madre edge of a Defuncion.
func (c *DefuncionClient) QueryMadre(_m *Defuncion) *MadreQuery {
	query := (&MadreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, id),
			sqlgraph.To(madre.Table, madre.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, defuncion.MadreTable, defuncion.MadreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecienNacido queries the recien_nacido edge of a Defuncion.
func (c *DefuncionClient) QueryRecienNacido(_m *Defuncion) *RecienNacidoQuery {
	query := (&RecienNacidoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, id),
			sqlgraph.To(reciennacido.Table, reciennacido.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, defuncion.RecienNacidoTable, defuncion.RecienNacidoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCausaDefuncion queries the causa_defuncion edge of a Defuncion.
func (c *DefuncionClient) QueryCausaDefuncion(_m *Defuncion) *DiagnosticoCIE10Query {
	query := (&DiagnosticoCIE10Client{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, id),
			sqlgraph.To(diagnosticocie10.Table, diagnosticocie10.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, defuncion.CausaDefuncionTable, defuncion.CausaDefuncionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsuarioRegistro queries the usuario_registro edge of a Defuncion.
func (c *DefuncionClient) QueryUsuarioRegistro(_m *Defuncion) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, defuncion.UsuarioRegistroTable, defuncion.UsuarioRegistroColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DefuncionClient) Hooks() []Hook {
	return c.hooks.Defuncion
}

// Interceptors returns the client interceptors.
func (c *DefuncionClient) Interceptors() []Interceptor {
	return c.inters.Defuncion
}

func (c *DefuncionClient) mutate(ctx context.Context, m *DefuncionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DefuncionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DefuncionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DefuncionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DefuncionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Defuncion mutation op: %q", m.Op())
	}
}

// DiagnosticoCIE10Client is a client for the DiagnosticoCIE10 schema.
type DiagnosticoCIE10Client struct {
	config
}

// NewDiagnosticoCIE10Client returns a client for the DiagnosticoCIE10 from the given config.
func NewDiagnosticoCIE10Client(c config) *DiagnosticoCIE10Client {
	return &DiagnosticoCIE10Client{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagnosticocie10.Hooks(f(g(h())))`.
func (c *DiagnosticoCIE10Client) Use(hooks ...Hook) {
	c.hooks.DiagnosticoCIE10 = append(c.hooks.DiagnosticoCIE10, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagnosticocie10.Intercept(f(g(h())))`.
func (c *DiagnosticoCIE10Client) Intercept(interceptors ...Interceptor) {
	c.inters.DiagnosticoCIE10 = append(c.inters.DiagnosticoCIE10, interceptors...)
}

// Create returns a builder for creating a DiagnosticoCIE10 entity.
func (c *DiagnosticoCIE10Client) Create() *DiagnosticoCIE10Create {
	mutation := newDiagnosticoCIE10Mutation(c.config, OpCreate)
	return &DiagnosticoCIE10Create{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiagnosticoCIE10 entities.
func (c *DiagnosticoCIE10Client) CreateBulk(builders ...*DiagnosticoCIE10Create) *DiagnosticoCIE10CreateBulk {
	return &DiagnosticoCIE10CreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagnosticoCIE10Client) MapCreateBulk(slice any, setFunc func(*DiagnosticoCIE10Create, int)) *DiagnosticoCIE10CreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagnosticoCIE10CreateBulk{err: fmt.Errorf("calling to DiagnosticoCIE10Client.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagnosticoCIE10Create, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagnosticoCIE10CreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiagnosticoCIE10.
func (c *DiagnosticoCIE10Client) Update() *DiagnosticoCIE10Update {
	mutation := newDiagnosticoCIE10Mutation(c.config, OpUpdate)
	return &DiagnosticoCIE10Update{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagnosticoCIE10Client) UpdateOne(_m *DiagnosticoCIE10) *DiagnosticoCIE10UpdateOne {
	mutation := newDiagnosticoCIE10Mutation(c.config, OpUpdateOne, withDiagnosticoCIE10(_m))
	return &DiagnosticoCIE10UpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagnosticoCIE10Client) UpdateOneID(id uuid.UUID) *DiagnosticoCIE10UpdateOne {
	mutation := newDiagnosticoCIE10Mutation(c.config, OpUpdateOne, withDiagnosticoCIE10ID(id))
	return &DiagnosticoCIE10UpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiagnosticoCIE10.
func (c *DiagnosticoCIE10Client) Delete() *DiagnosticoCIE10Delete {
	mutation := newDiagnosticoCIE10Mutation(c.config, OpDelete)
	return &DiagnosticoCIE10Delete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagnosticoCIE10Client) DeleteOne(_m *DiagnosticoCIE10) *DiagnosticoCIE10DeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagnosticoCIE10Client) DeleteOneID(id uuid.UUID) *DiagnosticoCIE10DeleteOne {
	builder := c.Delete().Where(diagnosticocie10.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagnosticoCIE10DeleteOne{builder}
}

// Query returns a query builder for DiagnosticoCIE10.
func (c *DiagnosticoCIE10Client) Query() *DiagnosticoCIE10Query {
	return &DiagnosticoCIE10Query{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagnosticoCIE10},
		inters: c.Interceptors(),
	}
}

// Get returns a DiagnosticoCIE10 entity by its id.
func (c *DiagnosticoCIE10Client) Get(ctx context.Context, id uuid.UUID) (*DiagnosticoCIE10, error) {
	return c.Query().Where(diagnosticocie10.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagnosticoCIE10Client) GetX(ctx context.Context, id uuid.UUID) *DiagnosticoCIE10 {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPartoDiagnosticos queries the parto_diagnosticos edge of a DiagnosticoCIE10.
func (c *DiagnosticoCIE10Client) QueryPartoDiagnosticos(_m *DiagnosticoCIE10) *PartoDiagnosticoQuery {
	query := (&PartoDiagnosticoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(diagnosticocie10.Table, diagnosticocie10.FieldID, id),
			sqlgraph.To(partodiagnostico.Table, partodiagnostico.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, diagnosticocie10.PartoDiagnosticosTable, diagnosticocie10.PartoDiagnosticosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDefunciones queries the defunciones edge of a DiagnosticoCIE10.
func (c *DiagnosticoCIE10Client) QueryDefunciones(_m *DiagnosticoCIE10) *DefuncionQuery {
	query := (&DefuncionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(diagnosticocie10.Table, diagnosticocie10.FieldID, id),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, diagnosticocie10.DefuncionesTable, diagnosticocie10.DefuncionesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DiagnosticoCIE10Client) Hooks() []Hook {
	return c.hooks.DiagnosticoCIE10
}

// Interceptors returns the client interceptors.
func (c *DiagnosticoCIE10Client) Interceptors() []Interceptor {
	return c.inters.DiagnosticoCIE10
}

func (c *DiagnosticoCIE10Client) mutate(ctx context.Context, m *DiagnosticoCIE10Mutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagnosticoCIE10Create{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagnosticoCIE10Update{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagnosticoCIE10UpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagnosticoCIE10Delete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DiagnosticoCIE10 mutation op: %q", m.Op())
	}
}

// DocumentoReferenciaClient is a client for the DocumentoReferencia schema.
type DocumentoReferenciaClient struct {
	config
}

// NewDocumentoReferenciaClient returns a client for the DocumentoReferencia from the given config.
func NewDocumentoReferenciaClient(c config) *DocumentoReferenciaClient {
	return &DocumentoReferenciaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentoreferencia.Hooks(f(g(h())))`.
func (c *DocumentoReferenciaClient) Use(hooks ...Hook) {
	c.hooks.DocumentoReferencia = append(c.hooks.DocumentoReferencia, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentoreferencia.Intercept(f(g(h())))`.
func (c *DocumentoReferenciaClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentoReferencia = append(c.inters.DocumentoReferencia, interceptors...)
}

// Create returns a builder for creating a DocumentoReferencia entity.
func (c *DocumentoReferenciaClient) Create() *DocumentoReferenciaCreate {
	mutation := newDocumentoReferenciaMutation(c.config, OpCreate)
	return &DocumentoReferenciaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentoReferencia entities.
func (c *DocumentoReferenciaClient) CreateBulk(builders ...*DocumentoReferenciaCreate) *DocumentoReferenciaCreateBulk {
	return &DocumentoReferenciaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentoReferenciaClient) MapCreateBulk(slice any, setFunc func(*DocumentoReferenciaCreate, int)) *DocumentoReferenciaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentoReferenciaCreateBulk{err: fmt.Errorf("calling to DocumentoReferenciaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentoReferenciaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentoReferenciaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentoReferencia.
func (c *DocumentoReferenciaClient) Update() *DocumentoReferenciaUpdate {
	mutation := newDocumentoReferenciaMutation(c.config, OpUpdate)
	return &DocumentoReferenciaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentoReferenciaClient) UpdateOne(_m *DocumentoReferencia) *DocumentoReferenciaUpdateOne {
	mutation := newDocumentoReferenciaMutation(c.config, OpUpdateOne, withDocumentoReferencia(_m))
	return &DocumentoReferenciaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentoReferenciaClient) UpdateOneID(id uuid.UUID) *DocumentoReferenciaUpdateOne {
	mutation := newDocumentoReferenciaMutation(c.config, OpUpdateOne, withDocumentoReferenciaID(id))
	return &DocumentoReferenciaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentoReferencia.
func (c *DocumentoReferenciaClient) Delete() *DocumentoReferenciaDelete {
	mutation := newDocumentoReferenciaMutation(c.config, OpDelete)
	return &DocumentoReferenciaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentoReferenciaClient) DeleteOne(_m *DocumentoReferencia) *DocumentoReferenciaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentoReferenciaClient) DeleteOneID(id uuid.UUID) *DocumentoReferenciaDeleteOne {
	builder := c.Delete().Where(documentoreferencia.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentoReferenciaDeleteOne{builder}
}

// Query returns a query builder for DocumentoReferencia.
func (c *DocumentoReferenciaClient) Query() *DocumentoReferenciaQuery {
	return &DocumentoReferenciaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentoReferencia},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentoReferencia entity by its id.
func (c *DocumentoReferenciaClient) Get(ctx context.Context, id uuid.UUID) (*DocumentoReferencia, error) {
	return c.Query().Where(documentoreferencia.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentoReferenciaClient) GetX(ctx context.Context, id uuid.UUID) *DocumentoReferencia {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParto queries the parto edge of a DocumentoReferencia.
func (c *DocumentoReferenciaClient) QueryParto(_m *DocumentoReferencia) *PartoQuery {
	query := (&PartoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentoreferencia.Table, documentoreferencia.FieldID, id),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentoreferencia.PartoTable, documentoreferencia.PartoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsuarioGeneracion queries the usuario_generacion edge of a DocumentoReferencia.
func (c *DocumentoReferenciaClient) QueryUsuarioGeneracion(_m *DocumentoReferencia) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentoreferencia.Table, documentoreferencia.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentoreferencia.UsuarioGeneracionTable, documentoreferencia.UsuarioGeneracionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentoReferenciaClient) Hooks() []Hook {
	return c.hooks.DocumentoReferencia
}

// Interceptors returns the client interceptors.
func (c *DocumentoReferenciaClient) Interceptors() []Interceptor {
	return c.inters.DocumentoReferencia
}

func (c *DocumentoReferenciaClient) mutate(ctx context.Context, m *DocumentoReferenciaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentoReferenciaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentoReferenciaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentoReferenciaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentoReferenciaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DocumentoReferencia mutation op: %q", m.Op())
	}
}

// LogAuditoriaClient is a client for the LogAuditoria schema.
type LogAuditoriaClient struct {
	config
}

// NewLogAuditoriaClient returns a client for the LogAuditoria from the given config.
func NewLogAuditoriaClient(c config) *LogAuditoriaClient {
	return &LogAuditoriaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logauditoria.Hooks(f(g(h())))`.
func (c *LogAuditoriaClient) Use(hooks ...Hook) {
	c.hooks.LogAuditoria = append(c.hooks.LogAuditoria, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logauditoria.Intercept(f(g(h())))`.
func (c *LogAuditoriaClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogAuditoria = append(c.inters.LogAuditoria, interceptors...)
}

// Create returns a builder for creating a LogAuditoria entity.
func (c *LogAuditoriaClient) Create() *LogAuditoriaCreate {
	mutation := newLogAuditoriaMutation(c.config, OpCreate)
	return &LogAuditoriaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogAuditoria entities.
func (c *LogAuditoriaClient) CreateBulk(builders ...*LogAuditoriaCreate) *LogAuditoriaCreateBulk {
	return &LogAuditoriaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogAuditoriaClient) MapCreateBulk(slice any, setFunc func(*LogAuditoriaCreate, int)) *LogAuditoriaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogAuditoriaCreateBulk{err: fmt.Errorf("calling to LogAuditoriaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogAuditoriaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogAuditoriaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogAuditoria.
func (c *LogAuditoriaClient) Update() *LogAuditoriaUpdate {
	mutation := newLogAuditoriaMutation(c.config, OpUpdate)
	return &LogAuditoriaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogAuditoriaClient) UpdateOne(_m *LogAuditoria) *LogAuditoriaUpdateOne {
	mutation := newLogAuditoriaMutation(c.config, OpUpdateOne, withLogAuditoria(_m))
	return &LogAuditoriaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogAuditoriaClient) UpdateOneID(id uuid.UUID) *LogAuditoriaUpdateOne {
	mutation := newLogAuditoriaMutation(c.config, OpUpdateOne, withLogAuditoriaID(id))
	return &LogAuditoriaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogAuditoria.
func (c *LogAuditoriaClient) Delete() *LogAuditoriaDelete {
	mutation := newLogAuditoriaMutation(c.config, OpDelete)
	return &LogAuditoriaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogAuditoriaClient) DeleteOne(_m *LogAuditoria) *LogAuditoriaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogAuditoriaClient) DeleteOneID(id uuid.UUID) *LogAuditoriaDeleteOne {
	builder := c.Delete().Where(logauditoria.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogAuditoriaDeleteOne{builder}
}

// Query returns a query builder for LogAuditoria.
func (c *LogAuditoriaClient) Query() *LogAuditoriaQuery {
	return &LogAuditoriaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogAuditoria},
		inters: c.Interceptors(),
	}
}

// Get returns a LogAuditoria entity by its id.
func (c *LogAuditoriaClient) Get(ctx context.Context, id uuid.UUID) (*LogAuditoria, error) {
	return c.Query().Where(logauditoria.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogAuditoriaClient) GetX(ctx context.Context, id uuid.UUID) *LogAuditoria {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsuario queries the usuario edge of a LogAuditoria.
func (c *LogAuditoriaClient) QueryUsuario(_m *LogAuditoria) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logauditoria.Table, logauditoria.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logauditoria.UsuarioTable, logauditoria.UsuarioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogAuditoriaClient) Hooks() []Hook {
	return c.hooks.LogAuditoria
}

// Interceptors returns the client interceptors.
func (c *LogAuditoriaClient) Interceptors() []Interceptor {
	return c.inters.LogAuditoria
}

func (c *LogAuditoriaClient) mutate(ctx context.Context, m *LogAuditoriaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogAuditoriaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogAuditoriaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogAuditoriaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogAuditoriaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LogAuditoria mutation op: %q", m.Op())
	}
}

// MadreClient is a client for the Madre schema.
type MadreClient struct {
	config
}

// NewMadreClient returns a client for the Madre from the given config.
func NewMadreClient(c config) *MadreClient {
	return &MadreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `madre.Hooks(f(g(h())))`.
func (c *MadreClient) Use(hooks ...Hook) {
	c.hooks.Madre = append(c.hooks.Madre, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `madre.Intercept(f(g(h())))`.
func (c *MadreClient) Intercept(interceptors ...Interceptor) {
	c.inters.Madre = append(c.inters.Madre, interceptors...)
}

// Create returns a builder for creating a Madre entity.
func (c *MadreClient) Create() *MadreCreate {
	mutation := newMadreMutation(c.config, OpCreate)
	return &MadreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Madre entities.
func (c *MadreClient) CreateBulk(builders ...*MadreCreate) *MadreCreateBulk {
	return &MadreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MadreClient) MapCreateBulk(slice any, setFunc func(*MadreCreate, int)) *MadreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MadreCreateBulk{err: fmt.Errorf("calling to MadreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MadreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MadreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Madre.
func (c *MadreClient) Update() *MadreUpdate {
	mutation := newMadreMutation(c.config, OpUpdate)
	return &MadreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MadreClient) UpdateOne(_m *Madre) *MadreUpdateOne {
	mutation := newMadreMutation(c.config, OpUpdateOne, withMadre(_m))
	return &MadreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MadreClient) UpdateOneID(id uuid.UUID) *MadreUpdateOne {
	mutation := newMadreMutation(c.config, OpUpdateOne, withMadreID(id))
	return &MadreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Madre.
func (c *MadreClient) Delete() *MadreDelete {
	mutation := newMadreMutation(c.config, OpDelete)
	return &MadreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MadreClient) DeleteOne(_m *Madre) *MadreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MadreClient) DeleteOneID(id uuid.UUID) *MadreDeleteOne {
	builder := c.Delete().Where(madre.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MadreDeleteOne{builder}
}

// Query returns a query builder for Madre.
func (c *MadreClient) Query() *MadreQuery {
	return &MadreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMadre},
		inters: c.Interceptors(),
	}
}

// Get returns a Madre entity by its id.
func (c *MadreClient) Get(ctx context.Context, id uuid.UUID) (*Madre, error) {
	return c.Query().Where(madre.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MadreClient) GetX(ctx context.Context, id uuid.UUID) *Madre {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPartos queries the partos edge of a Madre.
func (c *MadreClient) QueryPartos(_m *Madre) *PartoQuery {
	query := (&PartoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(madre.Table, madre.FieldID, id),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, madre.PartosTable, madre.PartosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDefuncion queries the defuncion edge of a Madre.
func (c *MadreClient) QueryDefuncion(_m *Madre) *DefuncionQuery {
	query := (&DefuncionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(madre.Table, madre.FieldID, id),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, madre.DefuncionTable, madre.DefuncionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MadreClient) Hooks() []Hook {
	return c.hooks.Madre
}

// Interceptors returns the client interceptors.
func (c *MadreClient) Interceptors() []Interceptor {
	return c.inters.Madre
}

func (c *MadreClient) mutate(ctx context.Context, m *MadreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MadreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MadreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MadreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MadreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Madre mutation op: %q", m.Op())
	}
}

// PartoClient is a client for the Parto schema.
type PartoClient struct {
	config
}

// NewPartoClient returns a client for the Parto from the given config.
func NewPartoClient(c config) *PartoClient {
	return &PartoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parto.Hooks(f(g(h())))`.
func (c *PartoClient) Use(hooks ...Hook) {
	c.hooks.Parto = append(c.hooks.Parto, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parto.Intercept(f(g(h())))`.
func (c *PartoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Parto = append(c.inters.Parto, interceptors...)
}

// Create returns a builder for creating a Parto entity.
func (c *PartoClient) Create() *PartoCreate {
	mutation := newPartoMutation(c.config, OpCreate)
	return &PartoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Parto entities.
func (c *PartoClient) CreateBulk(builders ...*PartoCreate) *PartoCreateBulk {
	return &PartoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PartoClient) MapCreateBulk(slice any, setFunc func(*PartoCreate, int)) *PartoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PartoCreateBulk{err: fmt.Errorf("calling to PartoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PartoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PartoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Parto.
func (c *PartoClient) Update() *PartoUpdate {
	mutation := newPartoMutation(c.config, OpUpdate)
	return &PartoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PartoClient) UpdateOne(_m *Parto) *PartoUpdateOne {
	mutation := newPartoMutation(c.config, OpUpdateOne, withParto(_m))
	return &PartoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PartoClient) UpdateOneID(id uuid.UUID) *PartoUpdateOne {
	mutation := newPartoMutation(c.config, OpUpdateOne, withPartoID(id))
	return &PartoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Parto.
func (c *PartoClient) Delete() *PartoDelete {
	mutation := newPartoMutation(c.config, OpDelete)
	return &PartoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PartoClient) DeleteOne(_m *Parto) *PartoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PartoClient) DeleteOneID(id uuid.UUID) *PartoDeleteOne {
	builder := c.Delete().Where(parto.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PartoDeleteOne{builder}
}

// Query returns a query builder for Parto.
func (c *PartoClient) Query() *PartoQuery {
	return &PartoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParto},
		inters: c.Interceptors(),
	}
}

// Get returns a Parto entity by its id.
func (c *PartoClient) Get(ctx context.Context, id uuid.UUID) (*Parto, error) {
	return c.Query().Where(parto.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PartoClient) GetX(ctx context.Context, id uuid.UUID) *Parto {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMadre queries the madre edge of a Parto.
func (c *PartoClient) QueryMadre(_m *Parto) *MadreQuery {
	query := (&MadreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parto.Table, parto.FieldID, id),
			sqlgraph.To(madre.Table, madre.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parto.MadreTable, parto.MadreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsuarioRegistro queries the usuario_registro edge of a Parto.
func (c *PartoClient) QueryUsuarioRegistro(_m *Parto) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parto.Table, parto.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parto.UsuarioRegistroTable, parto.UsuarioRegistroColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecienNacidos queries the recien_nacidos edge of a Parto.
func (c *PartoClient) QueryRecienNacidos(_m *Parto) *RecienNacidoQuery {
	query := (&RecienNacidoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parto.Table, parto.FieldID, id),
			sqlgraph.To(reciennacido.Table, reciennacido.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parto.RecienNacidosTable, parto.RecienNacidosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPartoDiagnosticos queries the parto_diagnosticos edge of a Parto.
func (c *PartoClient) QueryPartoDiagnosticos(_m *Parto) *PartoDiagnosticoQuery {
	query := (&PartoDiagnosticoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parto.Table, parto.FieldID, id),
			sqlgraph.To(partodiagnostico.Table, partodiagnostico.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parto.PartoDiagnosticosTable, parto.PartoDiagnosticosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocumentos queries the documentos edge of a Parto.
func (c *PartoClient) QueryDocumentos(_m *Parto) *DocumentoReferenciaQuery {
	query := (&DocumentoReferenciaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parto.Table, parto.FieldID, id),
			sqlgraph.To(documentoreferencia.Table, documentoreferencia.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parto.DocumentosTable, parto.DocumentosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PartoClient) Hooks() []Hook {
	return c.hooks.Parto
}

// Interceptors returns the client interceptors.
func (c *PartoClient) Interceptors() []Interceptor {
	return c.inters.Parto
}

func (c *PartoClient) mutate(ctx context.Context, m *PartoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PartoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PartoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PartoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PartoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Parto mutation op: %q", m.Op())
	}
}

// PartoDiagnosticoClient is a client for the PartoDiagnostico schema.
type PartoDiagnosticoClient struct {
	config
}

// NewPartoDiagnosticoClient returns a client for the PartoDiagnostico from the given config.
func NewPartoDiagnosticoClient(c config) *PartoDiagnosticoClient {
	return &PartoDiagnosticoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `partodiagnostico.Hooks(f(g(h())))`.
func (c *PartoDiagnosticoClient) Use(hooks ...Hook) {
	c.hooks.PartoDiagnostico = append(c.hooks.PartoDiagnostico, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `partodiagnostico.Intercept(f(g(h())))`.
func (c *PartoDiagnosticoClient) Intercept(interceptors ...Interceptor) {
	c.inters.PartoDiagnostico = append(c.inters.PartoDiagnostico, interceptors...)
}

// Create returns a builder for creating a PartoDiagnostico entity.
func (c *PartoDiagnosticoClient) Create() *PartoDiagnosticoCreate {
	mutation := newPartoDiagnosticoMutation(c.config, OpCreate)
	return &PartoDiagnosticoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PartoDiagnostico entities.
func (c *PartoDiagnosticoClient) CreateBulk(builders ...*PartoDiagnosticoCreate) *PartoDiagnosticoCreateBulk {
	return &PartoDiagnosticoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PartoDiagnosticoClient) MapCreateBulk(slice any, setFunc func(*PartoDiagnosticoCreate, int)) *PartoDiagnosticoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PartoDiagnosticoCreateBulk{err: fmt.Errorf("calling to PartoDiagnosticoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PartoDiagnosticoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PartoDiagnosticoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PartoDiagnostico.
func (c *PartoDiagnosticoClient) Update() *PartoDiagnosticoUpdate {
	mutation := newPartoDiagnosticoMutation(c.config, OpUpdate)
	return &PartoDiagnosticoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PartoDiagnosticoClient) UpdateOne(_m *PartoDiagnostico) *PartoDiagnosticoUpdateOne {
	mutation := newPartoDiagnosticoMutation(c.config, OpUpdateOne, withPartoDiagnostico(_m))
	return &PartoDiagnosticoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PartoDiagnosticoClient) UpdateOneID(id uuid.UUID) *PartoDiagnosticoUpdateOne {
	mutation := newPartoDiagnosticoMutation(c.config, OpUpdateOne, withPartoDiagnosticoID(id))
	return &PartoDiagnosticoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PartoDiagnostico.
func (c *PartoDiagnosticoClient) Delete() *PartoDiagnosticoDelete {
	mutation := newPartoDiagnosticoMutation(c.config, OpDelete)
	return &PartoDiagnosticoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PartoDiagnosticoClient) DeleteOne(_m *PartoDiagnostico) *PartoDiagnosticoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PartoDiagnosticoClient) DeleteOneID(id uuid.UUID) *PartoDiagnosticoDeleteOne {
	builder := c.Delete().Where(partodiagnostico.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PartoDiagnosticoDeleteOne{builder}
}

// Query returns a query builder for PartoDiagnostico.
func (c *PartoDiagnosticoClient) Query() *PartoDiagnosticoQuery {
	return &PartoDiagnosticoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePartoDiagnostico},
		inters: c.Interceptors(),
	}
}

// Get returns a PartoDiagnostico entity by its id.
func (c *PartoDiagnosticoClient) Get(ctx context.Context, id uuid.UUID) (*PartoDiagnostico, error) {
	return c.Query().Where(partodiagnostico.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PartoDiagnosticoClient) GetX(ctx context.Context, id uuid.UUID) *PartoDiagnostico {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParto queries the parto edge of a PartoDiagnostico.
func (c *PartoDiagnosticoClient) QueryParto(_m *PartoDiagnostico) *PartoQuery {
	query := (&PartoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(partodiagnostico.Table, partodiagnostico.FieldID, id),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, partodiagnostico.PartoTable, partodiagnostico.PartoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDiagnostico queries the diagnostico edge of a PartoDiagnostico.
func (c *PartoDiagnosticoClient) QueryDiagnostico(_m *PartoDiagnostico) *DiagnosticoCIE10Query {
	query := (&DiagnosticoCIE10Client{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(partodiagnostico.Table, partodiagnostico.FieldID, id),
			sqlgraph.To(diagnosticocie10.Table, diagnosticocie10.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, partodiagnostico.DiagnosticoTable, partodiagnostico.DiagnosticoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PartoDiagnosticoClient) Hooks() []Hook {
	return c.hooks.PartoDiagnostico
}

// Interceptors returns the client interceptors.
func (c *PartoDiagnosticoClient) Interceptors() []Interceptor {
	return c.inters.PartoDiagnostico
}

func (c *PartoDiagnosticoClient) mutate(ctx context.Context, m *PartoDiagnosticoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PartoDiagnosticoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PartoDiagnosticoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PartoDiagnosticoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PartoDiagnosticoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PartoDiagnostico mutation op: %q", m.Op())
	}
}

// RecienNacidoClient is a client for the RecienNacido schema.
type RecienNacidoClient struct {
	config
}

// NewRecienNacidoClient returns a client for the RecienNacido from the given config.
func NewRecienNacidoClient(c config) *RecienNacidoClient {
	return &RecienNacidoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reciennacido.Hooks(f(g(h())))`.
func (c *RecienNacidoClient) Use(hooks ...Hook) {
	c.hooks.RecienNacido = append(c.hooks.RecienNacido, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reciennacido.Intercept(f(g(h())))`.
func (c *RecienNacidoClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecienNacido = append(c.inters.RecienNacido, interceptors...)
}

// Create returns a builder for creating a RecienNacido entity.
func (c *RecienNacidoClient) Create() *RecienNacidoCreate {
	mutation := newRecienNacidoMutation(c.config, OpCreate)
	return &RecienNacidoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecienNacido entities.
func (c *RecienNacidoClient) CreateBulk(builders ...*RecienNacidoCreate) *RecienNacidoCreateBulk {
	return &RecienNacidoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecienNacidoClient) MapCreateBulk(slice any, setFunc func(*RecienNacidoCreate, int)) *RecienNacidoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecienNacidoCreateBulk{err: fmt.Errorf("calling to RecienNacidoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecienNacidoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecienNacidoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecienNacido.
func (c *RecienNacidoClient) Update() *RecienNacidoUpdate {
	mutation := newRecienNacidoMutation(c.config, OpUpdate)
	return &RecienNacidoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecienNacidoClient) UpdateOne(_m *RecienNacido) *RecienNacidoUpdateOne {
	mutation := newRecienNacidoMutation(c.config, OpUpdateOne, withRecienNacido(_m))
	return &RecienNacidoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecienNacidoClient) UpdateOneID(id uuid.UUID) *RecienNacidoUpdateOne {
	mutation := newRecienNacidoMutation(c.config, OpUpdateOne, withRecienNacidoID(id))
	return &RecienNacidoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecienNacido.
func (c *RecienNacidoClient) Delete() *RecienNacidoDelete {
	mutation := newRecienNacidoMutation(c.config, OpDelete)
	return &RecienNacidoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecienNacidoClient) DeleteOne(_m *RecienNacido) *RecienNacidoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecienNacidoClient) DeleteOneID(id uuid.UUID) *RecienNacidoDeleteOne {
	builder := c.Delete().Where(reciennacido.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecienNacidoDeleteOne{builder}
}

// Query returns a query builder for RecienNacido.
func (c *RecienNacidoClient) Query() *RecienNacidoQuery {
	return &RecienNacidoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecienNacido},
		inters: c.Interceptors(),
	}
}

// Get returns a RecienNacido entity by its id.
func (c *RecienNacidoClient) Get(ctx context.Context, id uuid.UUID) (*RecienNacido, error) {
	return c.Query().Where(reciennacido.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecienNacidoClient) GetX(ctx context.Context, id uuid.UUID) *RecienNacido {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParto queries the parto edge of a RecienNacido.
func (c *RecienNacidoClient) QueryParto(_m *RecienNacido) *PartoQuery {
	query := (&PartoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reciennacido.Table, reciennacido.FieldID, id),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reciennacido.PartoTable, reciennacido.PartoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsuarioRegistro queries the usuario_registro edge of a RecienNacido.
func (c *RecienNacidoClient) QueryUsuarioRegistro(_m *RecienNacido) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reciennacido.Table, reciennacido.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reciennacido.UsuarioRegistroTable, reciennacido.UsuarioRegistroColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDefuncion queries the defuncion edge of a RecienNacido.
func (c *RecienNacidoClient) QueryDefuncion(_m *RecienNacido) *DefuncionQuery {
	query := (&DefuncionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reciennacido.Table, reciennacido.FieldID, id),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, reciennacido.DefuncionTable, reciennacido.DefuncionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecienNacidoClient) Hooks() []Hook {
	return c.hooks.RecienNacido
}

// Interceptors returns the client interceptors.
func (c *RecienNacidoClient) Interceptors() []Interceptor {
	return c.inters.RecienNacido
}

func (c *RecienNacidoClient) mutate(ctx context.Context, m *RecienNacidoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecienNacidoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecienNacidoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecienNacidoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecienNacidoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RecienNacido mutation op: %q", m.Op())
	}
}

// RolClient is a client for the Rol schema.
type RolClient struct {
	config
}

// NewRolClient returns a client for the Rol from the given config.
func NewRolClient(c config) *RolClient {
	return &RolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rol.Hooks(f(g(h())))`.
func (c *RolClient) Use(hooks ...Hook) {
	c.hooks.Rol = append(c.hooks.Rol, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rol.Intercept(f(g(h())))`.
func (c *RolClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rol = append(c.inters.Rol, interceptors...)
}

// Create returns a builder for creating a Rol entity.
func (c *RolClient) Create() *RolCreate {
	mutation := newRolMutation(c.config, OpCreate)
	return &RolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rol entities.
func (c *RolClient) CreateBulk(builders ...*RolCreate) *RolCreateBulk {
	return &RolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RolClient) MapCreateBulk(slice any, setFunc func(*RolCreate, int)) *RolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RolCreateBulk{err: fmt.Errorf("calling to RolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rol.
func (c *RolClient) Update() *RolUpdate {
	mutation := newRolMutation(c.config, OpUpdate)
	return &RolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RolClient) UpdateOne(_m *Rol) *RolUpdateOne {
	mutation := newRolMutation(c.config, OpUpdateOne, withRol(_m))
	return &RolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RolClient) UpdateOneID(id uuid.UUID) *RolUpdateOne {
	mutation := newRolMutation(c.config, OpUpdateOne, withRolID(id))
	return &RolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rol.
func (c *RolClient) Delete() *RolDelete {
	mutation := newRolMutation(c.config, OpDelete)
	return &RolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RolClient) DeleteOne(_m *Rol) *RolDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RolClient) DeleteOneID(id uuid.UUID) *RolDeleteOne {
	builder := c.Delete().Where(rol.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RolDeleteOne{builder}
}

// Query returns a query builder for Rol.
func (c *RolClient) Query() *RolQuery {
	return &RolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRol},
		inters: c.Interceptors(),
	}
}

// Get returns a Rol entity by its id.
func (c *RolClient) Get(ctx context.Context, id uuid.UUID) (*Rol, error) {
	return c.Query().Where(rol.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RolClient) GetX(ctx context.Context, id uuid.UUID) *Rol {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsuarios queries the usuarios edge of a Rol.
func (c *RolClient) QueryUsuarios(_m *Rol) *UsuarioQuery {
	query := (&UsuarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rol.Table, rol.FieldID, id),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rol.UsuariosTable, rol.UsuariosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RolClient) Hooks() []Hook {
	return c.hooks.Rol
}

// Interceptors returns the client interceptors.
func (c *RolClient) Interceptors() []Interceptor {
	return c.inters.Rol
}

func (c *RolClient) mutate(ctx context.Context, m *RolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Rol mutation op: %q", m.Op())
	}
}

// UsuarioClient is a client for the Usuario schema.
type UsuarioClient struct {
	config
}

// NewUsuarioClient returns a client for the Usuario from the given config.
func NewUsuarioClient(c config) *UsuarioClient {
	return &UsuarioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usuario.Hooks(f(g(h())))`.
func (c *UsuarioClient) Use(hooks ...Hook) {
	c.hooks.Usuario = append(c.hooks.Usuario, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usuario.Intercept(f(g(h())))`.
func (c *UsuarioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Usuario = append(c.inters.Usuario, interceptors...)
}

// Create returns a builder for creating a Usuario entity.
func (c *UsuarioClient) Create() *UsuarioCreate {
	mutation := newUsuarioMutation(c.config, OpCreate)
	return &UsuarioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Usuario entities.
func (c *UsuarioClient) CreateBulk(builders ...*UsuarioCreate) *UsuarioCreateBulk {
	return &UsuarioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsuarioClient) MapCreateBulk(slice any, setFunc func(*UsuarioCreate, int)) *UsuarioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsuarioCreateBulk{err: fmt.Errorf("calling to UsuarioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsuarioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsuarioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Usuario.
func (c *UsuarioClient) Update() *UsuarioUpdate {
	mutation := newUsuarioMutation(c.config, OpUpdate)
	return &UsuarioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsuarioClient) UpdateOne(_m *Usuario) *UsuarioUpdateOne {
	mutation := newUsuarioMutation(c.config, OpUpdateOne, withUsuario(_m))
	return &UsuarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsuarioClient) UpdateOneID(id uuid.UUID) *UsuarioUpdateOne {
	mutation := newUsuarioMutation(c.config, OpUpdateOne, withUsuarioID(id))
	return &UsuarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Usuario.
func (c *UsuarioClient) Delete() *UsuarioDelete {
	mutation := newUsuarioMutation(c.config, OpDelete)
	return &UsuarioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsuarioClient) DeleteOne(_m *Usuario) *UsuarioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsuarioClient) DeleteOneID(id uuid.UUID) *UsuarioDeleteOne {
	builder := c.Delete().Where(usuario.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsuarioDeleteOne{builder}
}

// Query returns a query builder for Usuario.
func (c *UsuarioClient) Query() *UsuarioQuery {
	return &UsuarioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsuario},
		inters: c.Interceptors(),
	}
}

// Get returns a Usuario entity by its id.
func (c *UsuarioClient) Get(ctx context.Context, id uuid.UUID) (*Usuario, error) {
	return c.Query().Where(usuario.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsuarioClient) GetX(ctx context.Context, id uuid.UUID) *Usuario {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRol queries the rol edge of a Usuario.
func (c *UsuarioClient) QueryRol(_m *Usuario) *RolQuery {
	query := (&RolClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, id),
			sqlgraph.To(rol.Table, rol.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usuario.RolTable, usuario.RolColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRegistrosAuditoria queries the registros_auditoria edge of a Usuario.
func (c *UsuarioClient) QueryRegistrosAuditoria(_m *Usuario) *LogAuditoriaQuery {
	query := (&LogAuditoriaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, id),
			sqlgraph.To(logauditoria.Table, logauditoria.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.RegistrosAuditoriaTable, usuario.RegistrosAuditoriaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPartosRegistrados queries the partos_registrados edge of a Usuario.
func (c *UsuarioClient) QueryPartosRegistrados(_m *Usuario) *PartoQuery {
	query := (&PartoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, id),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.PartosRegistradosTable, usuario.PartosRegistradosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecienNacidosRegistrados queries the recien_nacidos_registrados edge of a Usuario.
func (c *UsuarioClient) QueryRecienNacidosRegistrados(_m *Usuario) *RecienNacidoQuery {
	query := (&RecienNacidoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, id),
			sqlgraph.To(reciennacido.Table, reciennacido.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.RecienNacidosRegistradosTable, usuario.RecienNacidosRegistradosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDefuncionesRegistradas queries the defunciones_registradas edge of a Usuario.
func (c *UsuarioClient) QueryDefuncionesRegistradas(_m *Usuario) *DefuncionQuery {
	query := (&DefuncionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, id),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.DefuncionesRegistradasTable, usuario.DefuncionesRegistradasColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocumentosGenerados queries the documentos_generados edge of a Usuario.
func (c *UsuarioClient) QueryDocumentosGenerados(_m *Usuario) *DocumentoReferenciaQuery {
	query := (&DocumentoReferenciaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, id),
			sqlgraph.To(documentoreferencia.Table, documentoreferencia.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.DocumentosGeneradosTable, usuario.DocumentosGeneradosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsuarioClient) Hooks() []Hook {
	return c.hooks.Usuario
}

// Interceptors returns the client interceptors.
func (c *UsuarioClient) Interceptors() []Interceptor {
	return c.inters.Usuario
}

func (c *UsuarioClient) mutate(ctx context.Context, m *UsuarioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsuarioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsuarioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsuarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsuarioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Usuario mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Defuncion, DiagnosticoCIE10, DocumentoReferencia, LogAuditoria, Madre, Parto,
		PartoDiagnostico, RecienNacido, Rol, Usuario []ent.Hook
	}
	inters struct {
		Defuncion, DiagnosticoCIE10, DocumentoReferencia, LogAuditoria, Madre, Parto,
		PartoDiagnostico, RecienNacido, Rol, Usuario []ent.Interceptor
	}
)
