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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DocumentoReferenciaQuery is the builder for querying DocumentoReferencia entities.
type DocumentoReferenciaQuery struct {
	config
	ctx                   *QueryContext
	order                 []documentoreferencia.OrderOption
	inters                []Interceptor
	predicates            []predicate.DocumentoReferencia
	withParto             *PartoQuery
	withUsuarioGeneracion *UsuarioQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DocumentoReferenciaQuery builder.
func (_q *DocumentoReferenciaQuery) Where(ps ...predicate.DocumentoReferencia) *DocumentoReferenciaQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DocumentoReferenciaQuery) Limit(limit int) *DocumentoReferenciaQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DocumentoReferenciaQuery) Offset(offset int) *DocumentoReferenciaQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DocumentoReferenciaQuery) Unique(unique bool) *DocumentoReferenciaQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DocumentoReferenciaQuery) Order(o ...documentoreferencia.OrderOption) *DocumentoReferenciaQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParto chains the current query on the "parto" edge.
func (_q *DocumentoReferenciaQuery) QueryParto() *PartoQuery {
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
			sqlgraph.From(documentoreferencia.Table, documentoreferencia.FieldID, selector),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentoreferencia.PartoTable, documentoreferencia.PartoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUsuarioGeneracion chains the current query on the "usuario_generacion" edge.
func (_q *DocumentoReferenciaQuery) QueryUsuarioGeneracion() *UsuarioQuery {
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
			sqlgraph.From(documentoreferencia.Table, documentoreferencia.FieldID, selector),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentoreferencia.UsuarioGeneracionTable, documentoreferencia.UsuarioGeneracionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DocumentoReferencia entity from the query.
// Returns a *NotFoundError when no DocumentoReferencia was found.
func (_q *DocumentoReferenciaQuery) First(ctx context.Context) (*DocumentoReferencia, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentoreferencia.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) FirstX(ctx context.Context) *DocumentoReferencia {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DocumentoReferencia ID from the query.
// Returns a *NotFoundError when no DocumentoReferencia ID was found.
func (_q *DocumentoReferenciaQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{documentoreferencia.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DocumentoReferencia entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DocumentoReferencia entity is found.
// Returns a *NotFoundError when no DocumentoReferencia entities are found.
func (_q *DocumentoReferenciaQuery) Only(ctx context.Context) (*DocumentoReferencia, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentoreferencia.Label}
	default:
		return nil, &NotSingularError{documentoreferencia.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) OnlyX(ctx context.Context) *DocumentoReferencia {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentoReferencia ID in the query.
// Returns a *NotSingularError when more than one DocumentoReferencia ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DocumentoReferenciaQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{documentoreferencia.Label}
	default:
		err = &NotSingularError{documentoreferencia.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentoReferenciaSlice.
func (_q *DocumentoReferenciaQuery) All(ctx context.Context) ([]*DocumentoReferencia, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DocumentoReferencia, *DocumentoReferenciaQuery]()
	return withInterceptors[[]*DocumentoReferencia](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) AllX(ctx context.Context) []*DocumentoReferencia {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentoReferencia IDs.
func (_q *DocumentoReferenciaQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(documentoreferencia.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DocumentoReferenciaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DocumentoReferenciaQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DocumentoReferenciaQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DocumentoReferenciaQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DocumentoReferenciaQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DocumentoReferenciaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DocumentoReferenciaQuery) Clone() *DocumentoReferenciaQuery {
	if _q == nil {
		return nil
	}
	return &DocumentoReferenciaQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]documentoreferencia.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.DocumentoReferencia{}, _q.predicates...),
		withParto:             _q.withParto.Clone(),
		withUsuarioGeneracion: _q.withUsuarioGeneracion.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParto tells the query-builder to eager-load the nodes that are connected to
// the "parto" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentoReferenciaQuery) WithParto(opts ...func(*PartoQuery)) *DocumentoReferenciaQuery {
	query := (&PartoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParto = query
	return _q
}

// WithUsuarioGeneracion tells the query-builder to eager-load the nodes that are connected to
// the "usuario_generacion" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentoReferenciaQuery) WithUsuarioGeneracion(opts ...func(*UsuarioQuery)) *DocumentoReferenciaQuery {
	query := (&UsuarioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsuarioGeneracion = query
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
//	client.DocumentoReferencia.Query().
//		GroupBy(documentoreferencia.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *DocumentoReferenciaQuery) GroupBy(field string, fields ...string) *DocumentoReferenciaGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DocumentoReferenciaGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = documentoreferencia.Label
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
//	client.DocumentoReferencia.Query().
//		Select(documentoreferencia.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *DocumentoReferenciaQuery) Select(fields ...string) *DocumentoReferenciaSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DocumentoReferenciaSelect{DocumentoReferenciaQuery: _q}
	sbuild.label = documentoreferencia.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DocumentoReferenciaSelect configured with the given aggregations.
func (_q *DocumentoReferenciaQuery) Aggregate(fns ...AggregateFunc) *DocumentoReferenciaSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DocumentoReferenciaQuery) prepareQuery(ctx context.Context) error {
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
		if !documentoreferencia.ValidColumn(f) {
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

func (_q *DocumentoReferenciaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DocumentoReferencia, error) {
	var (
		nodes       = []*DocumentoReferencia{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withParto != nil,
			_q.withUsuarioGeneracion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DocumentoReferencia).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DocumentoReferencia{config: _q.config}
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
			func(n *DocumentoReferencia, e *Parto) { n.Edges.Parto = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUsuarioGeneracion; query != nil {
		if err := _q.loadUsuarioGeneracion(ctx, query, nodes, nil,
			func(n *DocumentoReferencia, e *Usuario) { n.Edges.UsuarioGeneracion = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DocumentoReferenciaQuery) loadParto(ctx context.Context, query *PartoQuery, nodes []*DocumentoReferencia, init func(*DocumentoReferencia), assign func(*DocumentoReferencia, *Parto)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DocumentoReferencia)
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
func (_q *DocumentoReferenciaQuery) loadUsuarioGeneracion(ctx context.Context, query *UsuarioQuery, nodes []*DocumentoReferencia, init func(*DocumentoReferencia), assign func(*DocumentoReferencia, *Usuario)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DocumentoReferencia)
	for i := range nodes {
		if nodes[i].UsuarioGeneracionID == nil {
			continue
		}
		fk := *nodes[i].UsuarioGeneracionID
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
			return fmt.Errorf(`unexpected foreign-key "usuario_generacion_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *DocumentoReferenciaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DocumentoReferenciaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(documentoreferencia.Table, documentoreferencia.Columns, sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentoreferencia.FieldID)
		for i := range fields {
			if fields[i] != documentoreferencia.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParto != nil {
			_spec.Node.AddColumnOnce(documentoreferencia.FieldPartoID)
		}
		if _q.withUsuarioGeneracion != nil {
			_spec.Node.AddColumnOnce(documentoreferencia.FieldUsuarioGeneracionID)
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

func (_q *DocumentoReferenciaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(documentoreferencia.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = documentoreferencia.Columns
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

// DocumentoReferenciaGroupBy is the group-by builder for DocumentoReferencia entities.
type DocumentoReferenciaGroupBy struct {
	selector
	build *DocumentoReferenciaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DocumentoReferenciaGroupBy) Aggregate(fns ...AggregateFunc) *DocumentoReferenciaGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DocumentoReferenciaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentoReferenciaQuery, *DocumentoReferenciaGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DocumentoReferenciaGroupBy) sqlScan(ctx context.Context, root *DocumentoReferenciaQuery, v any) error {
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

// DocumentoReferenciaSelect is the builder for selecting fields of DocumentoReferencia entities.
type DocumentoReferenciaSelect struct {
	*DocumentoReferenciaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DocumentoReferenciaSelect) Aggregate(fns ...AggregateFunc) *DocumentoReferenciaSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DocumentoReferenciaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentoReferenciaQuery, *DocumentoReferenciaSelect](ctx, _s.DocumentoReferenciaQuery, _s, _s.inters, v)
}

func (_s *DocumentoReferenciaSelect) sqlScan(ctx context.Context, root *DocumentoReferenciaQuery, v any) error {
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
