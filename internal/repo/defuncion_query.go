// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DefuncionQuery is the builder for querying Defuncion entities.
type DefuncionQuery struct {
	config
	ctx                 *QueryContext
	order               []defuncion.OrderOption
	inters              []Interceptor
	predicates          []predicate.Defuncion
	withMadre           *MadreQuery
	withRecienNacido    *RecienNacidoQuery
	withCausaDefuncion  *DiagnosticoCIE10Query
	withUsuarioRegistro *UsuarioQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DefuncionQuery builder.
func (_q *DefuncionQuery) Where(ps ...predicate.Defuncion) *DefuncionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DefuncionQuery) Limit(limit int) *DefuncionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DefuncionQuery) Offset(offset int) *DefuncionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DefuncionQuery) Unique(unique bool) *DefuncionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DefuncionQuery) Order(o ...defuncion.OrderOption) *DefuncionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMadre chains the current query on the "madre" edge.
func (_q *DefuncionQuery) QueryMadre() *MadreQuery {
	query := (&MadreClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, selector),
			sqlgraph.To(madre.Table, madre.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, defuncion.MadreTable, defuncion.MadreColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecienNacido chains the current query on the "recien_nacido" edge.
func (_q *DefuncionQuery) QueryRecienNacido() *RecienNacidoQuery {
	query := (&RecienNacidoClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, selector),
			sqlgraph.To(reciennacido.Table, reciennacido.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, defuncion.RecienNacidoTable, defuncion.RecienNacidoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCausaDefuncion chains the current query on the "causa_defuncion" edge.
func (_q *DefuncionQuery) QueryCausaDefuncion() *DiagnosticoCIE10Query {
	query := (&DiagnosticoCIE10Client{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, selector),
			sqlgraph.To(diagnosticocie10.Table, diagnosticocie10.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, defuncion.CausaDefuncionTable, defuncion.CausaDefuncionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUsuarioRegistro chains the current query on the "usuario_registro" edge.
func (_q *DefuncionQuery) QueryUsuarioRegistro() *UsuarioQuery {
	query := (&UsuarioClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(defuncion.Table, defuncion.FieldID, selector),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, defuncion.UsuarioRegistroTable, defuncion.UsuarioRegistroColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Defuncion entity from the query.
// Returns a *NotFoundError when no Defuncion was found.
func (_q *DefuncionQuery) First(ctx context.Context) (*Defuncion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{defuncion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DefuncionQuery) FirstX(ctx context.Context) *Defuncion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Defuncion ID from the query.
// Returns a *NotFoundError when no Defuncion ID was found.
func (_q *DefuncionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{defuncion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DefuncionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Defuncion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Defuncion entity is found.
// Returns a *NotFoundError when no Defuncion entities are found.
func (_q *DefuncionQuery) Only(ctx context.Context) (*Defuncion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{defuncion.Label}
	default:
		return nil, &NotSingularError{defuncion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DefuncionQuery) OnlyX(ctx context.Context) *Defuncion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Defuncion ID in the query.
// Returns a *NotSingularError when more than one Defuncion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DefuncionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{defuncion.Label}
	default:
		err = &NotSingularError{defuncion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DefuncionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Defuncions.
func (_q *DefuncionQuery) All(ctx context.Context) ([]*Defuncion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Defuncion, *DefuncionQuery]()
	return withInterceptors[[]*Defuncion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DefuncionQuery) AllX(ctx context.Context) []*Defuncion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Defuncion IDs.
func (_q *DefuncionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(defuncion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DefuncionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DefuncionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DefuncionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DefuncionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DefuncionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DefuncionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DefuncionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DefuncionQuery) Clone() *DefuncionQuery {
	if _q == nil {
		return nil
	}
	return &DefuncionQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]defuncion.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Defuncion{}, _q.predicates...),
		withMadre:           _q.withMadre.Clone(),
		withRecienNacido:    _q.withRecienNacido.Clone(),
		withCausaDefuncion:  _q.withCausaDefuncion.Clone(),
		withUsuarioRegistro: _q.withUsuarioRegistro.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMadre tells the query-builder to eager-load the nodes that are connected to
// the "madre" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DefuncionQuery) WithMadre(opts ...func(*MadreQuery)) *DefuncionQuery {
	query := (&MadreClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMadre = query
	return _q
}

// WithRecienNacido tells the query-builder to eager-load the nodes that are connected to
// the "recien_nacido" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DefuncionQuery) WithRecienNacido(opts ...func(*RecienNacidoQuery)) *DefuncionQuery {
	query := (&RecienNacidoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecienNacido = query
	return _q
}

// WithCausaDefuncion tells the query-builder to eager-load the nodes that are connected to
// the "causa_defuncion" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DefuncionQuery) WithCausaDefuncion(opts ...func(*DiagnosticoCIE10Query)) *DefuncionQuery {
	query := (&DiagnosticoCIE10Client{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCausaDefuncion = query
	return _q
}

// WithUsuarioRegistro tells the query-builder to eager-load the nodes that are connected to
// the "usuario_registro" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DefuncionQuery) WithUsuarioRegistro(opts ...func(*UsuarioQuery)) *DefuncionQuery {
	query := (&UsuarioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsuarioRegistro = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Defuncion.Query().
//		GroupBy(defuncion.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *DefuncionQuery) GroupBy(field string, fields ...string) *DefuncionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DefuncionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = defuncion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Defuncion.Query().
//		Select(defuncion.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *DefuncionQuery) Select(fields ...string) *DefuncionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DefuncionSelect{DefuncionQuery: _q}
	sbuild.label = defuncion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DefuncionSelect configured with the given aggregations.
func (_q *DefuncionQuery) Aggregate(fns ...AggregateFunc) *DefuncionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DefuncionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !defuncion.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DefuncionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Defuncion, error) {
	var (
		nodes       = []*Defuncion{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withMadre != nil,
			_q.withRecienNacido != nil,
			_q.withCausaDefuncion != nil,
			_q.withUsuarioRegistro != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Defuncion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Defuncion{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMadre; query != nil {
		if err := _q.loadMadre(ctx, query, nodes, nil,
			func(n *Defuncion, e *Madre) { n.Edges.Madre = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecienNacido; query != nil {
		if err := _q.loadRecienNacido(ctx, query, nodes, nil,
			func(n *Defuncion, e *RecienNacido) { n.Edges.RecienNacido = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCausaDefuncion; query != nil {
		if err := _q.loadCausaDefuncion(ctx, query, nodes, nil,
			func(n *Defuncion, e *DiagnosticoCIE10) { n.Edges.CausaDefuncion = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUsuarioRegistro; query != nil {
		if err := _q.loadUsuarioRegistro(ctx, query, nodes, nil,
			func(n *Defuncion, e *Usuario) { n.Edges.UsuarioRegistro = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DefuncionQuery) loadMadre(ctx context.Context, query *MadreQuery, nodes []*Defuncion, init func(*Defuncion), assign func(*Defuncion, *Madre)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Defuncion)
	for i := range nodes {
		if nodes[i].MadreID == nil {
			continue
		}
		fk := *nodes[i].MadreID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(madre.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "madre_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DefuncionQuery) loadRecienNacido(ctx context.Context, query *RecienNacidoQuery, nodes []*Defuncion, init func(*Defuncion), assign func(*Defuncion, *RecienNacido)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Defuncion)
	for i := range nodes {
		if nodes[i].RecienNacidoID == nil {
			continue
		}
		fk := *nodes[i].RecienNacidoID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(reciennacido.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recien_nacido_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DefuncionQuery) loadCausaDefuncion(ctx context.Context, query *DiagnosticoCIE10Query, nodes []*Defuncion, init func(*Defuncion), assign func(*Defuncion, *DiagnosticoCIE10)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Defuncion)
	for i := range nodes {
		fk := nodes[i].CausaDefuncionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(diagnosticocie10.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "causa_defuncion_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DefuncionQuery) loadUsuarioRegistro(ctx context.Context, query *UsuarioQuery, nodes []*Defuncion, init func(*Defuncion), assign func(*Defuncion, *Usuario)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Defuncion)
	for i := range nodes {
		if nodes[i].UsuarioRegistroID == nil {
			continue
		}
		fk := *nodes[i].UsuarioRegistroID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(usuario.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "usuario_registro_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *DefuncionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DefuncionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(defuncion.Table, defuncion.Columns, sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, defuncion.FieldID)
		for i := range fields {
			if fields[i] != defuncion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMadre != nil {
			_spec.Node.AddColumnOnce(defuncion.FieldMadreID)
		}
		if _q.withRecienNacido != nil {
			_spec.Node.AddColumnOnce(defuncion.FieldRecienNacidoID)
		}
		if _q.withCausaDefuncion != nil {
			_spec.Node.AddColumnOnce(defuncion.FieldCausaDefuncionID)
		}
		if _q.withUsuarioRegistro != nil {
			_spec.Node.AddColumnOnce(defuncion.FieldUsuarioRegistroID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DefuncionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(defuncion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = defuncion.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DefuncionGroupBy is the group-by builder for Defuncion entities.
type DefuncionGroupBy struct {
	selector
	build *DefuncionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DefuncionGroupBy) Aggregate(fns ...AggregateFunc) *DefuncionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DefuncionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DefuncionQuery, *DefuncionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DefuncionGroupBy) sqlScan(ctx context.Context, root *DefuncionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DefuncionSelect is the builder for selecting fields of Defuncion entities.
type DefuncionSelect struct {
	*DefuncionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DefuncionSelect) Aggregate(fns ...AggregateFunc) *DefuncionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DefuncionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DefuncionQuery, *DefuncionSelect](ctx, _s.DefuncionQuery, _s, _s.inters, v)
}

func (_s *DefuncionSelect) sqlScan(ctx context.Context, root *DefuncionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
