// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfleet/agentfleet/ent/predicate"
	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// RunSummaryQuery is the builder for querying RunSummary entities.
type RunSummaryQuery struct {
	config
	ctx             *QueryContext
	order           []runsummary.OrderOption
	inters          []Interceptor
	predicates      []predicate.RunSummary
	withEvents      *RunEventQuery
	withNodeMetrics *RunNodeMetricQuery
	withTelemetry   *RunTelemetryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RunSummaryQuery builder.
func (_q *RunSummaryQuery) Where(ps ...predicate.RunSummary) *RunSummaryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RunSummaryQuery) Limit(limit int) *RunSummaryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RunSummaryQuery) Offset(offset int) *RunSummaryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RunSummaryQuery) Unique(unique bool) *RunSummaryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RunSummaryQuery) Order(o ...runsummary.OrderOption) *RunSummaryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvents chains the current query on the "events" edge.
func (_q *RunSummaryQuery) QueryEvents() *RunEventQuery {
	query := (&RunEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(runsummary.Table, runsummary.FieldID, selector),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runsummary.EventsTable, runsummary.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNodeMetrics chains the current query on the "node_metrics" edge.
func (_q *RunSummaryQuery) QueryNodeMetrics() *RunNodeMetricQuery {
	query := (&RunNodeMetricClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(runsummary.Table, runsummary.FieldID, selector),
			sqlgraph.To(runnodemetric.Table, runnodemetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runsummary.NodeMetricsTable, runsummary.NodeMetricsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTelemetry chains the current query on the "telemetry" edge.
func (_q *RunSummaryQuery) QueryTelemetry() *RunTelemetryQuery {
	query := (&RunTelemetryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(runsummary.Table, runsummary.FieldID, selector),
			sqlgraph.To(runtelemetry.Table, runtelemetry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runsummary.TelemetryTable, runsummary.TelemetryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RunSummary entity from the query.
// Returns a *NotFoundError when no RunSummary was found.
func (_q *RunSummaryQuery) First(ctx context.Context) (*RunSummary, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{runsummary.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RunSummaryQuery) FirstX(ctx context.Context) *RunSummary {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RunSummary ID from the query.
// Returns a *NotFoundError when no RunSummary ID was found.
func (_q *RunSummaryQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{runsummary.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RunSummaryQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RunSummary entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RunSummary entity is found.
// Returns a *NotFoundError when no RunSummary entities are found.
func (_q *RunSummaryQuery) Only(ctx context.Context) (*RunSummary, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{runsummary.Label}
	default:
		return nil, &NotSingularError{runsummary.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RunSummaryQuery) OnlyX(ctx context.Context) *RunSummary {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RunSummary ID in the query.
// Returns a *NotSingularError when more than one RunSummary ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RunSummaryQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{runsummary.Label}
	default:
		err = &NotSingularError{runsummary.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RunSummaryQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RunSummaries.
func (_q *RunSummaryQuery) All(ctx context.Context) ([]*RunSummary, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RunSummary, *RunSummaryQuery]()
	return withInterceptors[[]*RunSummary](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RunSummaryQuery) AllX(ctx context.Context) []*RunSummary {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RunSummary IDs.
func (_q *RunSummaryQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(runsummary.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RunSummaryQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RunSummaryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RunSummaryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RunSummaryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RunSummaryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RunSummaryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RunSummaryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RunSummaryQuery) Clone() *RunSummaryQuery {
	if _q == nil {
		return nil
	}
	return &RunSummaryQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]runsummary.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.RunSummary{}, _q.predicates...),
		withEvents:      _q.withEvents.Clone(),
		withNodeMetrics: _q.withNodeMetrics.Clone(),
		withTelemetry:   _q.withTelemetry.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunSummaryQuery) WithEvents(opts ...func(*RunEventQuery)) *RunSummaryQuery {
	query := (&RunEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithNodeMetrics tells the query-builder to eager-load the nodes that are connected to
// the "node_metrics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunSummaryQuery) WithNodeMetrics(opts ...func(*RunNodeMetricQuery)) *RunSummaryQuery {
	query := (&RunNodeMetricClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNodeMetrics = query
	return _q
}

// WithTelemetry tells the query-builder to eager-load the nodes that are connected to
// the "telemetry" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunSummaryQuery) WithTelemetry(opts ...func(*RunTelemetryQuery)) *RunSummaryQuery {
	query := (&RunTelemetryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTelemetry = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Mode runsummary.Mode `json:"mode,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RunSummary.Query().
//		GroupBy(runsummary.FieldMode).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RunSummaryQuery) GroupBy(field string, fields ...string) *RunSummaryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RunSummaryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = runsummary.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Mode runsummary.Mode `json:"mode,omitempty"`
//	}
//
//	client.RunSummary.Query().
//		Select(runsummary.FieldMode).
//		Scan(ctx, &v)
func (_q *RunSummaryQuery) Select(fields ...string) *RunSummarySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RunSummarySelect{RunSummaryQuery: _q}
	sbuild.label = runsummary.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RunSummarySelect configured with the given aggregations.
func (_q *RunSummaryQuery) Aggregate(fns ...AggregateFunc) *RunSummarySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RunSummaryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !runsummary.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *RunSummaryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RunSummary, error) {
	var (
		nodes       = []*RunSummary{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withEvents != nil,
			_q.withNodeMetrics != nil,
			_q.withTelemetry != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RunSummary).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RunSummary{config: _q.config}
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
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *RunSummary) { n.Edges.Events = []*RunEvent{} },
			func(n *RunSummary, e *RunEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withNodeMetrics; query != nil {
		if err := _q.loadNodeMetrics(ctx, query, nodes,
			func(n *RunSummary) { n.Edges.NodeMetrics = []*RunNodeMetric{} },
			func(n *RunSummary, e *RunNodeMetric) { n.Edges.NodeMetrics = append(n.Edges.NodeMetrics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTelemetry; query != nil {
		if err := _q.loadTelemetry(ctx, query, nodes,
			func(n *RunSummary) { n.Edges.Telemetry = []*RunTelemetry{} },
			func(n *RunSummary, e *RunTelemetry) { n.Edges.Telemetry = append(n.Edges.Telemetry, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RunSummaryQuery) loadEvents(ctx context.Context, query *RunEventQuery, nodes []*RunSummary, init func(*RunSummary), assign func(*RunSummary, *RunEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RunSummary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runevent.FieldRunID)
	}
	query.Where(predicate.RunEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(runsummary.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RunSummaryQuery) loadNodeMetrics(ctx context.Context, query *RunNodeMetricQuery, nodes []*RunSummary, init func(*RunSummary), assign func(*RunSummary, *RunNodeMetric)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RunSummary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runnodemetric.FieldRunID)
	}
	query.Where(predicate.RunNodeMetric(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(runsummary.NodeMetricsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RunSummaryQuery) loadTelemetry(ctx context.Context, query *RunTelemetryQuery, nodes []*RunSummary, init func(*RunSummary), assign func(*RunSummary, *RunTelemetry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RunSummary)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runtelemetry.FieldRunID)
	}
	query.Where(predicate.RunTelemetry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(runsummary.TelemetryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RunSummaryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RunSummaryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(runsummary.Table, runsummary.Columns, sqlgraph.NewFieldSpec(runsummary.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runsummary.FieldID)
		for i := range fields {
			if fields[i] != runsummary.FieldID {
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

func (_q *RunSummaryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(runsummary.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = runsummary.Columns
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

// RunSummaryGroupBy is the group-by builder for RunSummary entities.
type RunSummaryGroupBy struct {
	selector
	build *RunSummaryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RunSummaryGroupBy) Aggregate(fns ...AggregateFunc) *RunSummaryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RunSummaryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RunSummaryQuery, *RunSummaryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RunSummaryGroupBy) sqlScan(ctx context.Context, root *RunSummaryQuery, v any) error {
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

// RunSummarySelect is the builder for selecting fields of RunSummary entities.
type RunSummarySelect struct {
	*RunSummaryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RunSummarySelect) Aggregate(fns ...AggregateFunc) *RunSummarySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RunSummarySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RunSummaryQuery, *RunSummarySelect](ctx, _s.RunSummaryQuery, _s, _s.inters, v)
}

func (_s *RunSummarySelect) sqlScan(ctx context.Context, root *RunSummaryQuery, v any) error {
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
