// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// RecienNacidoQuery is the builder for querying RecienNacido entities.
type RecienNacidoQuery struct {
	config
	ctx                 *QueryContext
	order               []reciennacido.OrderOption
	inters              []Interceptor
	predicates          []predicate.RecienNacido
	withParto           *PartoQuery
	withUsuarioRegistro *UsuarioQuery
	withDefuncion       *DefuncionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecienNacidoQuery builder.
func (_q *RecienNacidoQuery) Where(ps ...predicate.RecienNacido) *RecienNacidoQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecienNacidoQuery) Limit(limit int) *RecienNacidoQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecienNacidoQuery) Offset(offset int) *RecienNacidoQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecienNacidoQuery) Unique(unique bool) *RecienNacidoQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecienNacidoQuery) Order(o ...reciennacido.OrderOption) *RecienNacidoQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParto chains the current query on the "parto" edge.
func (_q *RecienNacidoQuery) QueryParto() *PartoQuery {
	query := (&PartoClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reciennacido.Table, reciennacido.FieldID, selector),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reciennacido.PartoTable, reciennacido.PartoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUsuarioRegistro chains the current query on the "usuario_registro" edge.
func (_q *RecienNacidoQuery) QueryUsuarioRegistro() *UsuarioQuery {
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
			sqlgraph.From(reciennacido.Table, reciennacido.FieldID, selector),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reciennacido.UsuarioRegistroTable, reciennacido.UsuarioRegistroColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDefuncion chains the current query on the "defuncion" edge.
func (_q *RecienNacidoQuery) QueryDefuncion() *DefuncionQuery {
	query := (&DefuncionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reciennacido.Table, reciennacido.FieldID, selector),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, reciennacido.DefuncionTable, reciennacido.DefuncionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RecienNacido entity from the query.
// Returns a *NotFoundError when no RecienNacido was found.
func (_q *RecienNacidoQuery) First(ctx context.Context) (*RecienNacido, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reciennacido.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecienNacidoQuery) FirstX(ctx context.Context) *RecienNacido {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RecienNacido ID from the query.
// Returns a *NotFoundError when no RecienNacido ID was found.
func (_q *RecienNacidoQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reciennacido.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecienNacidoQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RecienNacido entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RecienNacido entity is found.
// Returns a *NotFoundError when no RecienNacido entities are found.
func (_q *RecienNacidoQuery) Only(ctx context.Context) (*RecienNacido, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reciennacido.Label}
	default:
		return nil, &NotSingularError{reciennacido.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecienNacidoQuery) OnlyX(ctx context.Context) *RecienNacido {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RecienNacido ID in the query.
// Returns a *NotSingularError when more than one RecienNacido ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecienNacidoQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reciennacido.Label}
	default:
		err = &NotSingularError{reciennacido.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecienNacidoQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RecienNacidos.
func (_q *RecienNacidoQuery) All(ctx context.Context) ([]*RecienNacido, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RecienNacido, *RecienNacidoQuery]()
	return withInterceptors[[]*RecienNacido](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecienNacidoQuery) AllX(ctx context.Context) []*RecienNacido {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RecienNacido IDs.
func (_q *RecienNacidoQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(reciennacido.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecienNacidoQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecienNacidoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecienNacidoQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecienNacidoQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecienNacidoQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RecienNacidoQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecienNacidoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecienNacidoQuery) Clone() *RecienNacidoQuery {
	if _q == nil {
		return nil
	}
	return &RecienNacidoQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]reciennacido.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.RecienNacido{}, _q.predicates...),
		withParto:           _q.withParto.Clone(),
		withUsuarioRegistro: _q.withUsuarioRegistro.Clone(),
		withDefuncion:       _q.withDefuncion.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParto tells the query-builder to eager-load the nodes that are connected to
// the "parto" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecienNacidoQuery) WithParto(opts ...func(*PartoQuery)) *RecienNacidoQuery {
	query := (&PartoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParto = query
	return _q
}

// WithUsuarioRegistro tells the query-builder to eager-load the nodes that are connected to
// the "usuario_registro" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecienNacidoQuery) WithUsuarioRegistro(opts ...func(*UsuarioQuery)) *RecienNacidoQuery {
	query := (&UsuarioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsuarioRegistro = query
	return _q
}

// WithDefuncion tells the query-builder to eager-load the nodes that are connected to
// the "defuncion" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecienNacidoQuery) WithDefuncion(opts ...func(*DefuncionQuery)) *RecienNacidoQuery {
	query := (&DefuncionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefuncion = query
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
//	client.RecienNacido.Query().
//		GroupBy(reciennacido.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *RecienNacidoQuery) GroupBy(field string, fields ...string) *RecienNacidoGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecienNacidoGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = reciennacido.Label
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
//	client.RecienNacido.Query().
//		Select(reciennacido.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *RecienNacidoQuery) Select(fields ...string) *RecienNacidoSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecienNacidoSelect{RecienNacidoQuery: _q}
	sbuild.label = reciennacido.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecienNacidoSelect configured with the given aggregations.
func (_q *RecienNacidoQuery) Aggregate(fns ...AggregateFunc) *RecienNacidoSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecienNacidoQuery) prepareQuery(ctx context.Context) error {
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
		if !reciennacido.ValidColumn(f) {
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

func (_q *RecienNacidoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RecienNacido, error) {
	var (
		nodes       = []*RecienNacido{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withParto != nil,
			_q.withUsuarioRegistro != nil,
			_q.withDefuncion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RecienNacido).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RecienNacido{config: _q.config}
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
	if query := _q.withParto; query != nil {
		if err := _q.loadParto(ctx, query, nodes, nil,
			func(n *RecienNacido, e *Parto) { n.Edges.Parto = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUsuarioRegistro; query != nil {
		if err := _q.loadUsuarioRegistro(ctx, query, nodes, nil,
			func(n *RecienNacido, e *Usuario) { n.Edges.UsuarioRegistro = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDefuncion; query != nil {
		if err := _q.loadDefuncion(ctx, query, nodes, nil,
			func(n *RecienNacido, e *Defuncion) { n.Edges.Defuncion = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecienNacidoQuery) loadParto(ctx context.Context, query *PartoQuery, nodes []*RecienNacido, init func(*RecienNacido), assign func(*RecienNacido, *Parto)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RecienNacido)
	for i := range nodes {
		fk := nodes[i].PartoID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(parto.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "parto_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecienNacidoQuery) loadUsuarioRegistro(ctx context.Context, query *UsuarioQuery, nodes []*RecienNacido, init func(*RecienNacido), assign func(*RecienNacido, *Usuario)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RecienNacido)
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
func (_q *RecienNacidoQuery) loadDefuncion(ctx context.Context, query *DefuncionQuery, nodes []*RecienNacido, init func(*RecienNacido), assign func(*RecienNacido, *Defuncion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*RecienNacido)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(defuncion.FieldRecienNacidoID)
	}
	query.Where(predicate.Defuncion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(reciennacido.DefuncionColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecienNacidoID
		if fk == nil {
			return fmt.Errorf(`foreign-key "recien_nacido_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recien_nacido_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RecienNacidoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecienNacidoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reciennacido.Table, reciennacido.Columns, sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reciennacido.FieldID)
		for i := range fields {
			if fields[i] != reciennacido.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParto != nil {
			_spec.Node.AddColumnOnce(reciennacido.FieldPartoID)
		}
		if _q.withUsuarioRegistro != nil {
			_spec.Node.AddColumnOnce(reciennacido.FieldUsuarioRegistroID)
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

func (_q *RecienNacidoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(reciennacido.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = reciennacido.Columns
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

// RecienNacidoGroupBy is the group-by builder for RecienNacido entities.
type RecienNacidoGroupBy struct {
	selector
	build *RecienNacidoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecienNacidoGroupBy) Aggregate(fns ...AggregateFunc) *RecienNacidoGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecienNacidoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecienNacidoQuery, *RecienNacidoGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecienNacidoGroupBy) sqlScan(ctx context.Context, root *RecienNacidoQuery, v any) error {
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

// RecienNacidoSelect is the builder for selecting fields of RecienNacido entities.
type RecienNacidoSelect struct {
	*RecienNacidoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecienNacidoSelect) Aggregate(fns ...AggregateFunc) *RecienNacidoSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecienNacidoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecienNacidoQuery, *RecienNacidoSelect](ctx, _s.RecienNacidoQuery, _s, _s.inters, v)
}

func (_s *RecienNacidoSelect) sqlScan(ctx context.Context, root *RecienNacidoQuery, v any) error {
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
