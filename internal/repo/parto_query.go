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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// PartoQuery is the builder for querying Parto entities.
type PartoQuery struct {
	config
	ctx                   *QueryContext
	order                 []parto.OrderOption
	inters                []Interceptor
	predicates            []predicate.Parto
	withMadre             *MadreQuery
	withUsuarioRegistro   *UsuarioQuery
	withRecienNacidos     *RecienNacidoQuery
	withPartoDiagnosticos *PartoDiagnosticoQuery
	withDocumentos        *DocumentoReferenciaQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PartoQuery builder.
func (_q *PartoQuery) Where(ps ...predicate.Parto) *PartoQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PartoQuery) Limit(limit int) *PartoQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PartoQuery) Offset(offset int) *PartoQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PartoQuery) Unique(unique bool) *PartoQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PartoQuery) Order(o ...parto.OrderOption) *PartoQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMadre chains the current query on the "madre" edge.
func (_q *PartoQuery) QueryMadre() *MadreQuery {
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
			sqlgraph.From(parto.Table, parto.FieldID, selector),
			sqlgraph.To(madre.Table, madre.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parto.MadreTable, parto.MadreColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUsuarioRegistro chains the current query on the "usuario_registro" edge.
func (_q *PartoQuery) QueryUsuarioRegistro() *UsuarioQuery {
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
			sqlgraph.From(parto.Table, parto.FieldID, selector),
			sqlgraph.To(usuario.Table, usuario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parto.UsuarioRegistroTable, parto.UsuarioRegistroColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecienNacidos chains the current query on the "recien_nacidos" edge.
func (_q *PartoQuery) QueryRecienNacidos() *RecienNacidoQuery {
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
			sqlgraph.From(parto.Table, parto.FieldID, selector),
			sqlgraph.To(reciennacido.Table, reciennacido.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parto.RecienNacidosTable, parto.RecienNacidosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPartoDiagnosticos chains the current query on the "parto_diagnosticos" edge.
func (_q *PartoQuery) QueryPartoDiagnosticos() *PartoDiagnosticoQuery {
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
			sqlgraph.From(parto.Table, parto.FieldID, selector),
			sqlgraph.To(partodiagnostico.Table, partodiagnostico.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parto.PartoDiagnosticosTable, parto.PartoDiagnosticosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocumentos chains the current query on the "documentos" edge.
func (_q *PartoQuery) QueryDocumentos() *DocumentoReferenciaQuery {
	query := (&DocumentoReferenciaClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(parto.Table, parto.FieldID, selector),
			sqlgraph.To(documentoreferencia.Table, documentoreferencia.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parto.DocumentosTable, parto.DocumentosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Parto entity from the query.
// Returns a *NotFoundError when no Parto was found.
func (_q *PartoQuery) First(ctx context.Context) (*Parto, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{parto.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PartoQuery) FirstX(ctx context.Context) *Parto {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Parto ID from the query.
// Returns a *NotFoundError when no Parto ID was found.
func (_q *PartoQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{parto.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PartoQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Parto entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Parto entity is found.
// Returns a *NotFoundError when no Parto entities are found.
func (_q *PartoQuery) Only(ctx context.Context) (*Parto, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{parto.Label}
	default:
		return nil, &NotSingularError{parto.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PartoQuery) OnlyX(ctx context.Context) *Parto {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Parto ID in the query.
// Returns a *NotSingularError when more than one Parto ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PartoQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{parto.Label}
	default:
		err = &NotSingularError{parto.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PartoQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Partos.
func (_q *PartoQuery) All(ctx context.Context) ([]*Parto, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Parto, *PartoQuery]()
	return withInterceptors[[]*Parto](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PartoQuery) AllX(ctx context.Context) []*Parto {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Parto IDs.
func (_q *PartoQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(parto.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PartoQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PartoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PartoQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PartoQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PartoQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PartoQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PartoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PartoQuery) Clone() *PartoQuery {
	if _q == nil {
		return nil
	}
	return &PartoQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]parto.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.Parto{}, _q.predicates...),
		withMadre:             _q.withMadre.Clone(),
		withUsuarioRegistro:   _q.withUsuarioRegistro.Clone(),
		withRecienNacidos:     _q.withRecienNacidos.Clone(),
		withPartoDiagnosticos: _q.withPartoDiagnosticos.Clone(),
		withDocumentos:        _q.withDocumentos.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMadre tells the query-builder to eager-load the nodes that are connected to
// the "madre" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoQuery) WithMadre(opts ...func(*MadreQuery)) *PartoQuery {
	query := (&MadreClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMadre = query
	return _q
}

// WithUsuarioRegistro tells the query-builder to eager-load the nodes that are connected to
// the "usuario_registro" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoQuery) WithUsuarioRegistro(opts ...func(*UsuarioQuery)) *PartoQuery {
	query := (&UsuarioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsuarioRegistro = query
	return _q
}

// WithRecienNacidos tells the query-builder to eager-load the nodes that are connected to
// the "recien_nacidos" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoQuery) WithRecienNacidos(opts ...func(*RecienNacidoQuery)) *PartoQuery {
	query := (&RecienNacidoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecienNacidos = query
	return _q
}

// WithPartoDiagnosticos tells the query-builder to eager-load the nodes that are connected to
// the "parto_diagnosticos" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoQuery) WithPartoDiagnosticos(opts ...func(*PartoDiagnosticoQuery)) *PartoQuery {
	query := (&PartoDiagnosticoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPartoDiagnosticos = query
	return _q
}

// WithDocumentos tells the query-builder to eager-load the nodes that are connected to
// the "documentos" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PartoQuery) WithDocumentos(opts ...func(*DocumentoReferenciaQuery)) *PartoQuery {
	query := (&DocumentoReferenciaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocumentos = query
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
//	client.Parto.Query().
//		GroupBy(parto.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *PartoQuery) GroupBy(field string, fields ...string) *PartoGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PartoGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = parto.Label
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
//	client.Parto.Query().
//		Select(parto.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PartoQuery) Select(fields ...string) *PartoSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PartoSelect{PartoQuery: _q}
	sbuild.label = parto.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PartoSelect configured with the given aggregations.
func (_q *PartoQuery) Aggregate(fns ...AggregateFunc) *PartoSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PartoQuery) prepareQuery(ctx context.Context) error {
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
		if !parto.ValidColumn(f) {
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

func (_q *PartoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Parto, error) {
	var (
		nodes       = []*Parto{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withMadre != nil,
			_q.withUsuarioRegistro != nil,
			_q.withRecienNacidos != nil,
			_q.withPartoDiagnosticos != nil,
			_q.withDocumentos != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Parto).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Parto{config: _q.config}
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
			func(n *Parto, e *Madre) { n.Edges.Madre = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUsuarioRegistro; query != nil {
		if err := _q.loadUsuarioRegistro(ctx, query, nodes, nil,
			func(n *Parto, e *Usuario) { n.Edges.UsuarioRegistro = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecienNacidos; query != nil {
		if err := _q.loadRecienNacidos(ctx, query, nodes,
			func(n *Parto) { n.Edges.RecienNacidos = []*RecienNacido{} },
			func(n *Parto, e *RecienNacido) { n.Edges.RecienNacidos = append(n.Edges.RecienNacidos, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPartoDiagnosticos; query != nil {
		if err := _q.loadPartoDiagnosticos(ctx, query, nodes,
			func(n *Parto) { n.Edges.PartoDiagnosticos = []*PartoDiagnostico{} },
			func(n *Parto, e *PartoDiagnostico) { n.Edges.PartoDiagnosticos = append(n.Edges.PartoDiagnosticos, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocumentos; query != nil {
		if err := _q.loadDocumentos(ctx, query, nodes,
			func(n *Parto) { n.Edges.Documentos = []*DocumentoReferencia{} },
			func(n *Parto, e *DocumentoReferencia) { n.Edges.Documentos = append(n.Edges.Documentos, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PartoQuery) loadMadre(ctx context.Context, query *MadreQuery, nodes []*Parto, init func(*Parto), assign func(*Parto, *Madre)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Parto)
	for i := range nodes {
		fk := nodes[i].MadreID
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
func (_q *PartoQuery) loadUsuarioRegistro(ctx context.Context, query *UsuarioQuery, nodes []*Parto, init func(*Parto), assign func(*Parto, *Usuario)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Parto)
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
func (_q *PartoQuery) loadRecienNacidos(ctx context.Context, query *RecienNacidoQuery, nodes []*Parto, init func(*Parto), assign func(*Parto, *RecienNacido)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Parto)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reciennacido.FieldPartoID)
	}
	query.Where(predicate.RecienNacido(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(parto.RecienNacidosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PartoID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parto_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PartoQuery) loadPartoDiagnosticos(ctx context.Context, query *PartoDiagnosticoQuery, nodes []*Parto, init func(*Parto), assign func(*Parto, *PartoDiagnostico)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Parto)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(partodiagnostico.FieldPartoID)
	}
	query.Where(predicate.PartoDiagnostico(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(parto.PartoDiagnosticosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PartoID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parto_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PartoQuery) loadDocumentos(ctx context.Context, query *DocumentoReferenciaQuery, nodes []*Parto, init func(*Parto), assign func(*Parto, *DocumentoReferencia)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Parto)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(documentoreferencia.FieldPartoID)
	}
	query.Where(predicate.DocumentoReferencia(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(parto.DocumentosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PartoID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parto_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PartoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PartoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(parto.Table, parto.Columns, sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parto.FieldID)
		for i := range fields {
			if fields[i] != parto.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMadre != nil {
			_spec.Node.AddColumnOnce(parto.FieldMadreID)
		}
		if _q.withUsuarioRegistro != nil {
			_spec.Node.AddColumnOnce(parto.FieldUsuarioRegistroID)
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

func (_q *PartoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(parto.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = parto.Columns
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

// PartoGroupBy is the group-by builder for Parto entities.
type PartoGroupBy struct {
	selector
	build *PartoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PartoGroupBy) Aggregate(fns ...AggregateFunc) *PartoGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PartoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PartoQuery, *PartoGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PartoGroupBy) sqlScan(ctx context.Context, root *PartoQuery, v any) error {
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

// PartoSelect is the builder for selecting fields of Parto entities.
type PartoSelect struct {
	*PartoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PartoSelect) Aggregate(fns ...AggregateFunc) *PartoSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PartoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PartoQuery, *PartoSelect](ctx, _s.PartoQuery, _s, _s.inters, v)
}

func (_s *PartoSelect) sqlScan(ctx context.Context, root *PartoQuery, v any) error {
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
