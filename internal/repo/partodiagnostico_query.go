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
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// PartoDiagnosticoQuery is the builder for querying PartoDiagnostico entities.
type PartoDiagnosticoQuery struct {
	config
	ctx             *QueryContext
	order           []partodiagnostico.OrderOption
	inters          []Interceptor
	predicates      []predicate.PartoDiagnostico
	withParto       *PartoQuery
	withDiagnostico *DiagnosticoCIE10Query
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PartoDiagnosticoQuery builder.
func (_q *PartoDiagnosticoQuery) Where(ps ...predicate.PartoDiagnostico) *PartoDiagnosticoQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PartoDiagnosticoQuery) Limit(limit int) *PartoDiagnosticoQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PartoDiagnosticoQuery) Offset(offset int) *PartoDiagnosticoQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PartoDiagnosticoQuery) Unique(unique bool) *PartoDiagnosticoQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PartoDiagnosticoQuery) Order(o ...partodiagnostico.OrderOption) *PartoDiagnosticoQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParto chains the current query on the "parto" edge.
func (_q *PartoDiagnosticoQuery) QueryParto() *PartoQuery {
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
			sqlgraph.From(partodiagnostico.Table, partodiagnostico.FieldID, selector),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, partodiagnostico.PartoTable, partodiagnostico.PartoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDiagnostico chains the current query on the "diagnostico" edge.
func (_q *PartoDiagnosticoQuery) QueryDiagnostico() *DiagnosticoCIE10Query {
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
			sqlgraph.From(partodiagnostico.Table, partodiagnostico.FieldID, selector),
			sqlgraph.To(diagnosticocie10.Table, diagnosticocie10.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, partodiagnostico.DiagnosticoTable, partodiagnostico.DiagnosticoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PartoDiagnostico entity from the query.
// Returns a *NotFoundError when no PartoDiagnostico was found.
func (_q *PartoDiagnosticoQuery) First(ctx context.Context) (*PartoDiagnostico, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{partodiagnostico.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) FirstX(ctx context.Context) *PartoDiagnostico {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PartoDiagnostico ID from the query.
// Returns a *NotFoundError when no PartoDiagnostico ID was found.
func (_q *PartoDiagnosticoQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{partodiagnostico.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PartoDiagnostico entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PartoDiagnostico entity is found.
// Returns a *NotFoundError when no PartoDiagnostico entities are found.
func (_q *PartoDiagnosticoQuery) Only(ctx context.Context) (*PartoDiagnostico, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{partodiagnostico.Label}
	default:
		return nil, &NotSingularError{partodiagnostico.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) OnlyX(ctx context.Context) *PartoDiagnostico {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PartoDiagnostico ID in the query.
// Returns a *NotSingularError when more than one PartoDiagnostico ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PartoDiagnosticoQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{partodiagnostico.Label}
	default:
		err = &NotSingularError{partodiagnostico.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PartoDiagnosticos.
func (_q *PartoDiagnosticoQuery) All(ctx context.Context) ([]*PartoDiagnostico, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PartoDiagnostico, *PartoDiagnosticoQuery]()
	return withInterceptors[[]*PartoDiagnostico](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) AllX(ctx context.Context) []*PartoDiagnostico {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PartoDiagnostico IDs.
func (_q *PartoDiagnosticoQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(partodiagnostico.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PartoDiagnosticoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PartoDiagnosticoQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PartoDiagnosticoQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PartoDiagnosticoQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PartoDiagnosticoQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PartoDiagnosticoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PartoDiagnosticoQuery) Clone() *PartoDiagnosticoQuery {
	if _q == nil {
		return nil
	}
	return &PartoDiagnosticoQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]partodiagnostico.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.PartoDiagnostico{}, _q.predicates...),
		withParto:       _q.withParto.Clone(),
		withDiagnostico: _q.withDiagnostico.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParto tells the query-builder to eager-load the nodes that are connected to
// the "parto" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoDiagnosticoQuery) WithParto(opts ...func(*PartoQuery)) *PartoDiagnosticoQuery {
	query := (&PartoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParto = query
	return _q
}

// WithDiagnostico tells the query-builder to eager-load the nodes that are connected to
// the "diagnostico" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoDiagnosticoQuery) WithDiagnostico(opts ...func(*DiagnosticoCIE10Query)) *PartoDiagnosticoQuery {
	query := (&DiagnosticoCIE10Client{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDiagnostico = query
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
//	client.PartoDiagnostico.Query().
//		GroupBy(partodiagnostico.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *PartoDiagnosticoQuery) GroupBy(field string, fields ...string) *PartoDiagnosticoGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PartoDiagnosticoGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = partodiagnostico.Label
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
//	client.PartoDiagnostico.Query().
//		Select(partodiagnostico.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PartoDiagnosticoQuery) Select(fields ...string) *PartoDiagnosticoSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PartoDiagnosticoSelect{PartoDiagnosticoQuery: _q}
	sbuild.label = partodiagnostico.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PartoDiagnosticoSelect configured with the given aggregations.
func (_q *PartoDiagnosticoQuery) Aggregate(fns ...AggregateFunc) *PartoDiagnosticoSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PartoDiagnosticoQuery) prepareQuery(ctx context.Context) error {
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
		if !partodiagnostico.ValidColumn(f) {
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

func (_q *PartoDiagnosticoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PartoDiagnostico, error) {
	var (
		nodes       = []*PartoDiagnostico{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withParto != nil,
			_q.withDiagnostico != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PartoDiagnostico).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PartoDiagnostico{config: _q.config}
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
			func(n *PartoDiagnostico, e *Parto) { n.Edges.Parto = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDiagnostico; query != nil {
		if err := _q.loadDiagnostico(ctx, query, nodes, nil,
			func(n *PartoDiagnostico, e *DiagnosticoCIE10) { n.Edges.Diagnostico = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PartoDiagnosticoQuery) loadParto(ctx context.Context, query *PartoQuery, nodes []*PartoDiagnostico, init func(*PartoDiagnostico), assign func(*PartoDiagnostico, *Parto)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PartoDiagnostico)
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
func (_q *PartoDiagnosticoQuery) loadDiagnostico(ctx context.Context, query *DiagnosticoCIE10Query, nodes []*PartoDiagnostico, init func(*PartoDiagnostico), assign func(*PartoDiagnostico, *DiagnosticoCIE10)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PartoDiagnostico)
	for i := range nodes {
		fk := nodes[i].DiagnosticoID
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
			return fmt.Errorf(`unexpected foreign-key "diagnostico_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PartoDiagnosticoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PartoDiagnosticoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(partodiagnostico.Table, partodiagnostico.Columns, sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partodiagnostico.FieldID)
		for i := range fields {
			if fields[i] != partodiagnostico.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParto != nil {
			_spec.Node.AddColumnOnce(partodiagnostico.FieldPartoID)
		}
		if _q.withDiagnostico != nil {
			_spec.Node.AddColumnOnce(partodiagnostico.FieldDiagnosticoID)
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

func (_q *PartoDiagnosticoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(partodiagnostico.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = partodiagnostico.Columns
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

// PartoDiagnosticoGroupBy is the group-by builder for PartoDiagnostico entities.
type PartoDiagnosticoGroupBy struct {
	selector
	build *PartoDiagnosticoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PartoDiagnosticoGroupBy) Aggregate(fns ...AggregateFunc) *PartoDiagnosticoGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PartoDiagnosticoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PartoDiagnosticoQuery, *PartoDiagnosticoGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PartoDiagnosticoGroupBy) sqlScan(ctx context.Context, root *PartoDiagnosticoQuery, v any) error {
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

// PartoDiagnosticoSelect is the builder for selecting fields of PartoDiagnostico entities.
type PartoDiagnosticoSelect struct {
	*PartoDiagnosticoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PartoDiagnosticoSelect) Aggregate(fns ...AggregateFunc) *PartoDiagnosticoSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PartoDiagnosticoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PartoDiagnosticoQuery, *PartoDiagnosticoSelect](ctx, _s.PartoDiagnosticoQuery, _s, _s.inters, v)
}

func (_s *PartoDiagnosticoSelect) sqlScan(ctx context.Context, root *PartoDiagnosticoQuery, v any) error {
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
