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
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// DiagnosticoCIE10Query is the builder for querying DiagnosticoCIE10 entities.
type DiagnosticoCIE10Query struct {
	config
	ctx                   *QueryContext
	order                 []diagnosticocie10.OrderOption
	inters                []Interceptor
	predicates            []predicate.DiagnosticoCIE10
	withPartoDiagnosticos *PartoDiagnosticoQuery
	withDefunciones       *DefuncionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DiagnosticoCIE10Query builder.
func (_q *DiagnosticoCIE10Query) Where(ps ...predicate.DiagnosticoCIE10) *DiagnosticoCIE10Query {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DiagnosticoCIE10Query) Limit(limit int) *DiagnosticoCIE10Query {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DiagnosticoCIE10Query) Offset(offset int) *DiagnosticoCIE10Query {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DiagnosticoCIE10Query) Unique(unique bool) *DiagnosticoCIE10Query {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DiagnosticoCIE10Query) Order(o ...diagnosticocie10.OrderOption) *DiagnosticoCIE10Query {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPartoDiagnosticos chains the current query on the "parto_diagnosticos" edge.
func (_q *DiagnosticoCIE10Query) QueryPartoDiagnosticos() *PartoDiagnosticoQuery {
	query := (&PartoDiagnosticoClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(diagnosticocie10.Table, diagnosticocie10.FieldID, selector),
			sqlgraph.To(partodiagnostico.Table, partodiagnostico.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, diagnosticocie10.PartoDiagnosticosTable, diagnosticocie10.PartoDiagnosticosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDefunciones chains the current query on the "defunciones" edge.
func (_q *DiagnosticoCIE10Query) QueryDefunciones() *DefuncionQuery {
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
			sqlgraph.From(diagnosticocie10.Table, diagnosticocie10.FieldID, selector),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, diagnosticocie10.DefuncionesTable, diagnosticocie10.DefuncionesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DiagnosticoCIE10 entity from the query.
// Returns a *NotFoundError when no DiagnosticoCIE10 was found.
func (_q *DiagnosticoCIE10Query) First(ctx context.Context) (*DiagnosticoCIE10, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{diagnosticocie10.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) FirstX(ctx context.Context) *DiagnosticoCIE10 {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DiagnosticoCIE10 ID from the query.
// Returns a *NotFoundError when no DiagnosticoCIE10 ID was found.
func (_q *DiagnosticoCIE10Query) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{diagnosticocie10.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DiagnosticoCIE10 entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DiagnosticoCIE10 entity is found.
// Returns a *NotFoundError when no DiagnosticoCIE10 entities are found.
func (_q *DiagnosticoCIE10Query) Only(ctx context.Context) (*DiagnosticoCIE10, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{diagnosticocie10.Label}
	default:
		return nil, &NotSingularError{diagnosticocie10.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) OnlyX(ctx context.Context) *DiagnosticoCIE10 {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DiagnosticoCIE10 ID in the query.
// Returns a *NotSingularError when more than one DiagnosticoCIE10 ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DiagnosticoCIE10Query) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{diagnosticocie10.Label}
	default:
		err = &NotSingularError{diagnosticocie10.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DiagnosticoCIE10s.
func (_q *DiagnosticoCIE10Query) All(ctx context.Context) ([]*DiagnosticoCIE10, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DiagnosticoCIE10, *DiagnosticoCIE10Query]()
	return withInterceptors[[]*DiagnosticoCIE10](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) AllX(ctx context.Context) []*DiagnosticoCIE10 {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DiagnosticoCIE10 IDs.
func (_q *DiagnosticoCIE10Query) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(diagnosticocie10.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DiagnosticoCIE10Query) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DiagnosticoCIE10Query](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DiagnosticoCIE10Query) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DiagnosticoCIE10Query) Exist(ctx context.Context) (bool, error) {
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
func (_q *DiagnosticoCIE10Query) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DiagnosticoCIE10Query builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DiagnosticoCIE10Query) Clone() *DiagnosticoCIE10Query {
	if _q == nil {
		return nil
	}
	return &DiagnosticoCIE10Query{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]diagnosticocie10.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.DiagnosticoCIE10{}, _q.predicates...),
		withPartoDiagnosticos: _q.withPartoDiagnosticos.Clone(),
		withDefunciones:       _q.withDefunciones.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPartoDiagnosticos tells the query-builder to eager-load the nodes that are connected to
// the "parto_diagnosticos" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DiagnosticoCIE10Query) WithPartoDiagnosticos(opts ...func(*PartoDiagnosticoQuery)) *DiagnosticoCIE10Query {
	query := (&PartoDiagnosticoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPartoDiagnosticos = query
	return _q
}

// WithDefunciones tells the query-builder to eager-load the nodes that are connected to
// the "defunciones" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DiagnosticoCIE10Query) WithDefunciones(opts ...func(*DefuncionQuery)) *DiagnosticoCIE10Query {
	query := (&DefuncionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefunciones = query
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
//	client.DiagnosticoCIE10.Query().
//		GroupBy(diagnosticocie10.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *DiagnosticoCIE10Query) GroupBy(field string, fields ...string) *DiagnosticoCIE10GroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DiagnosticoCIE10GroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = diagnosticocie10.Label
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
//	client.DiagnosticoCIE10.Query().
//		Select(diagnosticocie10.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *DiagnosticoCIE10Query) Select(fields ...string) *DiagnosticoCIE10Select {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DiagnosticoCIE10Select{DiagnosticoCIE10Query: _q}
	sbuild.label = diagnosticocie10.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DiagnosticoCIE10Select configured with the given aggregations.
func (_q *DiagnosticoCIE10Query) Aggregate(fns ...AggregateFunc) *DiagnosticoCIE10Select {
	return _q.Select().Aggregate(fns...)
}

func (_q *DiagnosticoCIE10Query) prepareQuery(ctx context.Context) error {
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
		if !diagnosticocie10.ValidColumn(f) {
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

func (_q *DiagnosticoCIE10Query) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DiagnosticoCIE10, error) {
	var (
		nodes       = []*DiagnosticoCIE10{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPartoDiagnosticos != nil,
			_q.withDefunciones != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DiagnosticoCIE10).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DiagnosticoCIE10{config: _q.config}
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
	if query := _q.withPartoDiagnosticos; query != nil {
		if err := _q.loadPartoDiagnosticos(ctx, query, nodes,
			func(n *DiagnosticoCIE10) { n.Edges.PartoDiagnosticos = []*PartoDiagnostico{} },
			func(n *DiagnosticoCIE10, e *PartoDiagnostico) {
				n.Edges.PartoDiagnosticos = append(n.Edges.PartoDiagnosticos, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withDefunciones; query != nil {
		if err := _q.loadDefunciones(ctx, query, nodes,
			func(n *DiagnosticoCIE10) { n.Edges.Defunciones = []*Defuncion{} },
			func(n *DiagnosticoCIE10, e *Defuncion) { n.Edges.Defunciones = append(n.Edges.Defunciones, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DiagnosticoCIE10Query) loadPartoDiagnosticos(ctx context.Context, query *PartoDiagnosticoQuery, nodes []*DiagnosticoCIE10, init func(*DiagnosticoCIE10), assign func(*DiagnosticoCIE10, *PartoDiagnostico)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DiagnosticoCIE10)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(partodiagnostico.FieldDiagnosticoID)
	}
	query.Where(predicate.PartoDiagnostico(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(diagnosticocie10.PartoDiagnosticosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DiagnosticoID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "diagnostico_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DiagnosticoCIE10Query) loadDefunciones(ctx context.Context, query *DefuncionQuery, nodes []*DiagnosticoCIE10, init func(*DiagnosticoCIE10), assign func(*DiagnosticoCIE10, *Defuncion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DiagnosticoCIE10)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(defuncion.FieldCausaDefuncionID)
	}
	query.Where(predicate.Defuncion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(diagnosticocie10.DefuncionesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CausaDefuncionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "causa_defuncion_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DiagnosticoCIE10Query) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DiagnosticoCIE10Query) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(diagnosticocie10.Table, diagnosticocie10.Columns, sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosticocie10.FieldID)
		for i := range fields {
			if fields[i] != diagnosticocie10.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DiagnosticoCIE10Query) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(diagnosticocie10.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = diagnosticocie10.Columns
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

// DiagnosticoCIE10GroupBy is the group-by builder for DiagnosticoCIE10 entities.
type DiagnosticoCIE10GroupBy struct {
	selector
	build *DiagnosticoCIE10Query
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DiagnosticoCIE10GroupBy) Aggregate(fns ...AggregateFunc) *DiagnosticoCIE10GroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DiagnosticoCIE10GroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DiagnosticoCIE10Query, *DiagnosticoCIE10GroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DiagnosticoCIE10GroupBy) sqlScan(ctx context.Context, root *DiagnosticoCIE10Query, v any) error {
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

// DiagnosticoCIE10Select is the builder for selecting fields of DiagnosticoCIE10 entities.
type DiagnosticoCIE10Select struct {
	*DiagnosticoCIE10Query
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DiagnosticoCIE10Select) Aggregate(fns ...AggregateFunc) *DiagnosticoCIE10Select {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DiagnosticoCIE10Select) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DiagnosticoCIE10Query, *DiagnosticoCIE10Select](ctx, _s.DiagnosticoCIE10Query, _s, _s.inters, v)
}

func (_s *DiagnosticoCIE10Select) sqlScan(ctx context.Context, root *DiagnosticoCIE10Query, v any) error {
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
