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
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// LogAuditoriaQuery is the builder for querying LogAuditoria entities.
type LogAuditoriaQuery struct {
	config
	ctx         *QueryContext
	order       []logauditoria.OrderOption
	inters      []Interceptor
	predicates  []predicate.LogAuditoria
	withUsuario *UsuarioQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LogAuditoriaQuery builder.
func (_q *LogAuditoriaQuery) Where(ps ...predicate.LogAuditoria) *LogAuditoriaQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LogAuditoriaQuery) Limit(limit int) *LogAuditoriaQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LogAuditoriaQuery) Offset(offset int) *LogAuditoriaQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LogAuditoriaQuery) Unique(unique bool) *LogAuditoriaQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LogAuditoriaQuery) Order(o ...logauditoria.OrderOption) *LogAuditoriaQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUsuario chains the current query on the "usuario" edge.
func (_q *LogAuditoriaQuery) QueryUsuario() *UsuarioQuery {
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
			sqlgraph.From(logauditoria.Table, logauditoria.FieldID, selector),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logauditoria.UsuarioTable, logauditoria.UsuarioColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LogAuditoria entity from the query.
// Returns a *NotFoundError when no LogAuditoria was found.
func (_q *LogAuditoriaQuery) First(ctx context.Context) (*LogAuditoria, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{logauditoria.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LogAuditoriaQuery) FirstX(ctx context.Context) *LogAuditoria {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LogAuditoria ID from the query.
// Returns a *NotFoundError when no LogAuditoria ID was found.
func (_q *LogAuditoriaQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{logauditoria.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LogAuditoriaQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LogAuditoria entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LogAuditoria entity is found.
// Returns a *NotFoundError when no LogAuditoria entities are found.
func (_q *LogAuditoriaQuery) Only(ctx context.Context) (*LogAuditoria, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{logauditoria.Label}
	default:
		return nil, &NotSingularError{logauditoria.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LogAuditoriaQuery) OnlyX(ctx context.Context) *LogAuditoria {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LogAuditoria ID in the query.
// Returns a *NotSingularError when more than one LogAuditoria ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LogAuditoriaQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{logauditoria.Label}
	default:
		err = &NotSingularError{logauditoria.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LogAuditoriaQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LogAuditoriaSlice.
func (_q *LogAuditoriaQuery) All(ctx context.Context) ([]*LogAuditoria, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LogAuditoria, *LogAuditoriaQuery]()
	return withInterceptors[[]*LogAuditoria](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LogAuditoriaQuery) AllX(ctx context.Context) []*LogAuditoria {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LogAuditoria IDs.
func (_q *LogAuditoriaQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(logauditoria.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LogAuditoriaQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LogAuditoriaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LogAuditoriaQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LogAuditoriaQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LogAuditoriaQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LogAuditoriaQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LogAuditoriaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LogAuditoriaQuery) Clone() *LogAuditoriaQuery {
	if _q == nil {
		return nil
	}
	return &LogAuditoriaQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]logauditoria.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.LogAuditoria{}, _q.predicates...),
		withUsuario: _q.withUsuario.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUsuario tells the query-builder to eager-load the nodes that are connected to
// the "usuario" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LogAuditoriaQuery) WithUsuario(opts ...func(*UsuarioQuery)) *LogAuditoriaQuery {
	query := (&UsuarioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsuario = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UsuarioID uuid.UUID `json:"usuario_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LogAuditoria.Query().
//		GroupBy(logauditoria.FieldUsuarioID).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *LogAuditoriaQuery) GroupBy(field string, fields ...string) *LogAuditoriaGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LogAuditoriaGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = logauditoria.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UsuarioID uuid.UUID `json:"usuario_id,omitempty"`
//	}
//
//	client.LogAuditoria.Query().
//		Select(logauditoria.FieldUsuarioID).
//		Scan(ctx, &v)
func (_q *LogAuditoriaQuery) Select(fields ...string) *LogAuditoriaSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LogAuditoriaSelect{LogAuditoriaQuery: _q}
	sbuild.label = logauditoria.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LogAuditoriaSelect configured with the given aggregations.
func (_q *LogAuditoriaQuery) Aggregate(fns ...AggregateFunc) *LogAuditoriaSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LogAuditoriaQuery) prepareQuery(ctx context.Context) error {
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
		if !logauditoria.ValidColumn(f) {
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

func (_q *LogAuditoriaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LogAuditoria, error) {
	var (
		nodes       = []*LogAuditoria{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withUsuario != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LogAuditoria).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LogAuditoria{config: _q.config}
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
	if query := _q.withUsuario; query != nil {
		if err := _q.loadUsuario(ctx, query, nodes, nil,
			func(n *LogAuditoria, e *Usuario) { n.Edges.Usuario = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LogAuditoriaQuery) loadUsuario(ctx context.Context, query *UsuarioQuery, nodes []*LogAuditoria, init func(*LogAuditoria), assign func(*LogAuditoria, *Usuario)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LogAuditoria)
	for i := range nodes {
		if nodes[i].UsuarioID == nil {
			continue
		}
		fk := *nodes[i].UsuarioID
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
			return fmt.Errorf(`unexpected foreign-key "usuario_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *LogAuditoriaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LogAuditoriaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(logauditoria.Table, logauditoria.Columns, sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logauditoria.FieldID)
		for i := range fields {
			if fields[i] != logauditoria.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withUsuario != nil {
			_spec.Node.AddColumnOnce(logauditoria.FieldUsuarioID)
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

func (_q *LogAuditoriaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(logauditoria.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = logauditoria.Columns
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

// LogAuditoriaGroupBy is the group-by builder for LogAuditoria entities.
type LogAuditoriaGroupBy struct {
	selector
	build *LogAuditoriaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LogAuditoriaGroupBy) Aggregate(fns ...AggregateFunc) *LogAuditoriaGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LogAuditoriaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LogAuditoriaQuery, *LogAuditoriaGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LogAuditoriaGroupBy) sqlScan(ctx context.Context, root *LogAuditoriaQuery, v any) error {
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

// LogAuditoriaSelect is the builder for selecting fields of LogAuditoria entities.
type LogAuditoriaSelect struct {
	*LogAuditoriaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LogAuditoriaSelect) Aggregate(fns ...AggregateFunc) *LogAuditoriaSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LogAuditoriaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LogAuditoriaQuery, *LogAuditoriaSelect](ctx, _s.LogAuditoriaQuery, _s, _s.inters, v)
}

func (_s *LogAuditoriaSelect) sqlScan(ctx context.Context, root *LogAuditoriaQuery, v any) error {
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
