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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// UsuarioQuery is the builder for querying Usuario entities.
type UsuarioQuery struct {
	config
	ctx                          *QueryContext
	order                        []usuario.OrderOption
	inters                       []Interceptor
	predicates                   []predicate.Usuario
	withRol                      *RolQuery
	withRegistrosAuditoria       *LogAuditoriaQuery
	withPartosRegistrados        *PartoQuery
	withRecienNacidosRegistrados *RecienNacidoQuery
	withDefuncionesRegistradas   *DefuncionQuery
	withDocumentosGenerados      *DocumentoReferenciaQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UsuarioQuery builder.
func (_q *UsuarioQuery) Where(ps ...predicate.Usuario) *UsuarioQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UsuarioQuery) Limit(limit int) *UsuarioQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UsuarioQuery) Offset(offset int) *UsuarioQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UsuarioQuery) Unique(unique bool) *UsuarioQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UsuarioQuery) Order(o ...usuario.OrderOption) *UsuarioQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRol chains the current query on the "rol" edge.
func (_q *UsuarioQuery) QueryRol() *RolQuery {
	query := (&RolClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, selector),
			sqlgraph.To(rol.Table, rol.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usuario.RolTable, usuario.RolColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRegistrosAuditoria chains the current query on the "registros_auditoria" edge.
func (_q *UsuarioQuery) QueryRegistrosAuditoria() *LogAuditoriaQuery {
	query := (&LogAuditoriaClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(usuario.Table, usuario.FieldID, selector),
			sqlgraph.To(logauditoria.Table, logauditoria.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.RegistrosAuditoriaTable, usuario.RegistrosAuditoriaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPartosRegistrados chains the current query on the "partos_registrados" edge.
func (_q *UsuarioQuery) QueryPartosRegistrados() *PartoQuery {
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
			sqlgraph.From(usuario.Table, usuario.FieldID, selector),
			sqlgraph.To(parto.Table, parto.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.PartosRegistradosTable, usuario.PartosRegistradosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecienNacidosRegistrados chains the current query on the "recien_nacidos_registrados" edge.
func (_q *UsuarioQuery) QueryRecienNacidosRegistrados() *RecienNacidoQuery {
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
			sqlgraph.From(usuario.Table, usuario.FieldID, selector),
			sqlgraph.To(reciennacido.Table, reciennacido.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.RecienNacidosRegistradosTable, usuario.RecienNacidosRegistradosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDefuncionesRegistradas chains the current query on the "defunciones_registradas" edge.
func (_q *UsuarioQuery) QueryDefuncionesRegistradas() *DefuncionQuery {
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
			sqlgraph.From(usuario.Table, usuario.FieldID, selector),
			sqlgraph.To(defuncion.Table, defuncion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.DefuncionesRegistradasTable, usuario.DefuncionesRegistradasColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocumentosGenerados chains the current query on the "documentos_generados" edge.
func (_q *UsuarioQuery) QueryDocumentosGenerados() *DocumentoReferenciaQuery {
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
			sqlgraph.From(usuario.Table, usuario.FieldID, selector),
			sqlgraph.To(documentoreferencia.Table, documentoreferencia.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usuario.DocumentosGeneradosTable, usuario.DocumentosGeneradosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Usuario entity from the query.
// Returns a *NotFoundError when no Usuario was found.
func (_q *UsuarioQuery) First(ctx context.Context) (*Usuario, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{usuario.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UsuarioQuery) FirstX(ctx context.Context) *Usuario {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Usuario ID from the query.
// Returns a *NotFoundError when no Usuario ID was found.
func (_q *UsuarioQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{usuario.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UsuarioQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Usuario entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Usuario entity is found.
// Returns a *NotFoundError when no Usuario entities are found.
func (_q *UsuarioQuery) Only(ctx context.Context) (*Usuario, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{usuario.Label}
	default:
		return nil, &NotSingularError{usuario.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UsuarioQuery) OnlyX(ctx context.Context) *Usuario {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Usuario ID in the query.
// Returns a *NotSingularError when more than one Usuario ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UsuarioQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{usuario.Label}
	default:
		err = &NotSingularError{usuario.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UsuarioQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Usuarios.
func (_q *UsuarioQuery) All(ctx context.Context) ([]*Usuario, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Usuario, *UsuarioQuery]()
	return withInterceptors[[]*Usuario](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UsuarioQuery) AllX(ctx context.Context) []*Usuario {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Usuario IDs.
func (_q *UsuarioQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(usuario.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UsuarioQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UsuarioQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UsuarioQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UsuarioQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UsuarioQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *UsuarioQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UsuarioQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UsuarioQuery) Clone() *UsuarioQuery {
	if _q == nil {
		return nil
	}
	return &UsuarioQuery{
		config:                       _q.config,
		ctx:                          _q.ctx.Clone(),
		order:                        append([]usuario.OrderOption{}, _q.order...),
		inters:                       append([]Interceptor{}, _q.inters...),
		predicates:                   append([]predicate.Usuario{}, _q.predicates...),
		withRol:                      _q.withRol.Clone(),
		withRegistrosAuditoria:       _q.withRegistrosAuditoria.Clone(),
		withPartosRegistrados:        _q.withPartosRegistrados.Clone(),
		withRecienNacidosRegistrados: _q.withRecienNacidosRegistrados.Clone(),
		withDefuncionesRegistradas:   _q.withDefuncionesRegistradas.Clone(),
		withDocumentosGenerados:      _q.withDocumentosGenerados.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRol tells the query-builder to eager-load the nodes that are connected to
// the "rol" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UsuarioQuery) WithRol(opts ...func(*RolQuery)) *UsuarioQuery {
	query := (&RolClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRol = query
	return _q
}

// WithRegistrosAuditoria tells the query-builder to eager-load the nodes that are connected to
// the "registros_auditoria" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UsuarioQuery) WithRegistrosAuditoria(opts ...func(*LogAuditoriaQuery)) *UsuarioQuery {
	query := (&LogAuditoriaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRegistrosAuditoria = query
	return _q
}

// WithPartosRegistrados tells the query-builder to eager-load the nodes that are connected to
// the "partos_registrados" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UsuarioQuery) WithPartosRegistrados(opts ...func(*PartoQuery)) *UsuarioQuery {
	query := (&PartoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPartosRegistrados = query
	return _q
}

// WithRecienNacidosRegistrados tells the query-builder to eager-load the nodes that are connected to
// the "recien_nacidos_registrados" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UsuarioQuery) WithRecienNacidosRegistrados(opts ...func(*RecienNacidoQuery)) *UsuarioQuery {
	query := (&RecienNacidoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecienNacidosRegistrados = query
	return _q
}

// WithDefuncionesRegistradas tells the query-builder to eager-load the nodes that are connected to
// the "defunciones_registradas" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UsuarioQuery) WithDefuncionesRegistradas(opts ...func(*DefuncionQuery)) *UsuarioQuery {
	query := (&DefuncionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefuncionesRegistradas = query
	return _q
}

// WithDocumentosGenerados tells the query-builder to eager-load the nodes that are connected to
// the "documentos_generados" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UsuarioQuery) WithDocumentosGenerados(opts ...func(*DocumentoReferenciaQuery)) *UsuarioQuery {
	query := (&DocumentoReferenciaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocumentosGenerados = query
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
//	client.Usuario.Query().
//		GroupBy(usuario.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *UsuarioQuery) GroupBy(field string, fields ...string) *UsuarioGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UsuarioGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = usuario.Label
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
//	client.Usuario.Query().
//		Select(usuario.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *UsuarioQuery) Select(fields ...string) *UsuarioSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UsuarioSelect{UsuarioQuery: _q}
	sbuild.label = usuario.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UsuarioSelect configured with the given aggregations.
func (_q *UsuarioQuery) Aggregate(fns ...AggregateFunc) *UsuarioSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UsuarioQuery) prepareQuery(ctx context.Context) error {
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
		if !usuario.ValidColumn(f) {
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

func (_q *UsuarioQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Usuario, error) {
	var (
		nodes       = []*Usuario{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withRol != nil,
			_q.withRegistrosAuditoria != nil,
			_q.withPartosRegistrados != nil,
			_q.withRecienNacidosRegistrados != nil,
			_q.withDefuncionesRegistradas != nil,
			_q.withDocumentosGenerados != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Usuario).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Usuario{config: _q.config}
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
	if query := _q.withRol; query != nil {
		if err := _q.loadRol(ctx, query, nodes, nil,
			func(n *Usuario, e *Rol) { n.Edges.Rol = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRegistrosAuditoria; query != nil {
		if err := _q.loadRegistrosAuditoria(ctx, query, nodes,
			func(n *Usuario) { n.Edges.RegistrosAuditoria = []*LogAuditoria{} },
			func(n *Usuario, e *LogAuditoria) { n.Edges.RegistrosAuditoria = append(n.Edges.RegistrosAuditoria, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPartosRegistrados; query != nil {
		if err := _q.loadPartosRegistrados(ctx, query, nodes,
			func(n *Usuario) { n.Edges.PartosRegistrados = []*Parto{} },
			func(n *Usuario, e *Parto) { n.Edges.PartosRegistrados = append(n.Edges.PartosRegistrados, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecienNacidosRegistrados; query != nil {
		if err := _q.loadRecienNacidosRegistrados(ctx, query, nodes,
			func(n *Usuario) { n.Edges.RecienNacidosRegistrados = []*RecienNacido{} },
			func(n *Usuario, e *RecienNacido) {
				n.Edges.RecienNacidosRegistrados = append(n.Edges.RecienNacidosRegistrados, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withDefuncionesRegistradas; query != nil {
		if err := _q.loadDefuncionesRegistradas(ctx, query, nodes,
			func(n *Usuario) { n.Edges.DefuncionesRegistradas = []*Defuncion{} },
			func(n *Usuario, e *Defuncion) {
				n.Edges.DefuncionesRegistradas = append(n.Edges.DefuncionesRegistradas, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocumentosGenerados; query != nil {
		if err := _q.loadDocumentosGenerados(ctx, query, nodes,
			func(n *Usuario) { n.Edges.DocumentosGenerados = []*DocumentoReferencia{} },
			func(n *Usuario, e *DocumentoReferencia) {
				n.Edges.DocumentosGenerados = append(n.Edges.DocumentosGenerados, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UsuarioQuery) loadRol(ctx context.Context, query *RolQuery, nodes []*Usuario, init func(*Usuario), assign func(*Usuario, *Rol)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Usuario)
	for i := range nodes {
		fk := nodes[i].RolID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(rol.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "rol_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *UsuarioQuery) loadRegistrosAuditoria(ctx context.Context, query *LogAuditoriaQuery, nodes []*Usuario, init func(*Usuario), assign func(*Usuario, *LogAuditoria)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Usuario)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logauditoria.FieldUsuarioID)
	}
	query.Where(predicate.LogAuditoria(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(usuario.RegistrosAuditoriaColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UsuarioID
		if fk == nil {
			return fmt.Errorf(`foreign-key "usuario_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "usuario_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UsuarioQuery) loadPartosRegistrados(ctx context.Context, query *PartoQuery, nodes []*Usuario, init func(*Usuario), assign func(*Usuario, *Parto)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Usuario)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(parto.FieldUsuarioRegistroID)
	}
	query.Where(predicate.Parto(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(usuario.PartosRegistradosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UsuarioRegistroID
		if fk == nil {
			return fmt.Errorf(`foreign-key "usuario_registro_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "usuario_registro_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UsuarioQuery) loadRecienNacidosRegistrados(ctx context.Context, query *RecienNacidoQuery, nodes []*Usuario, init func(*Usuario), assign func(*Usuario, *RecienNacido)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Usuario)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reciennacido.FieldUsuarioRegistroID)
	}
	query.Where(predicate.RecienNacido(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(usuario.RecienNacidosRegistradosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UsuarioRegistroID
		if fk == nil {
			return fmt.Errorf(`foreign-key "usuario_registro_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "usuario_registro_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UsuarioQuery) loadDefuncionesRegistradas(ctx context.Context, query *DefuncionQuery, nodes []*Usuario, init func(*Usuario), assign func(*Usuario, *Defuncion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Usuario)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(defuncion.FieldUsuarioRegistroID)
	}
	query.Where(predicate.Defuncion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(usuario.DefuncionesRegistradasColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UsuarioRegistroID
		if fk == nil {
			return fmt.Errorf(`foreign-key "usuario_registro_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "usuario_registro_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UsuarioQuery) loadDocumentosGenerados(ctx context.Context, query *DocumentoReferenciaQuery, nodes []*Usuario, init func(*Usuario), assign func(*Usuario, *DocumentoReferencia)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Usuario)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(documentoreferencia.FieldUsuarioGeneracionID)
	}
	query.Where(predicate.DocumentoReferencia(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(usuario.DocumentosGeneradosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UsuarioGeneracionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "usuario_generacion_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "usuario_generacion_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UsuarioQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UsuarioQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(usuario.Table, usuario.Columns, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usuario.FieldID)
		for i := range fields {
			if fields[i] != usuario.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRol != nil {
			_spec.Node.AddColumnOnce(usuario.FieldRolID)
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

func (_q *UsuarioQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(usuario.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = usuario.Columns
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

// UsuarioGroupBy is the group-by builder for Usuario entities.
type UsuarioGroupBy struct {
	selector
	build *UsuarioQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UsuarioGroupBy) Aggregate(fns ...AggregateFunc) *UsuarioGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UsuarioGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UsuarioQuery, *UsuarioGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UsuarioGroupBy) sqlScan(ctx context.Context, root *UsuarioQuery, v any) error {
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

// UsuarioSelect is the builder for selecting fields of Usuario entities.
type UsuarioSelect struct {
	*UsuarioQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UsuarioSelect) Aggregate(fns ...AggregateFunc) *UsuarioSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UsuarioSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UsuarioQuery, *UsuarioSelect](ctx, _s.UsuarioQuery, _s, _s.inters, v)
}

func (_s *UsuarioSelect) sqlScan(ctx context.Context, root *UsuarioQuery, v any) error {
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
