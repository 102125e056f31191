// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/predicate"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// UsageEntryQuery is the builder for querying UsageEntry entities.
type UsageEntryQuery struct {
	config
	ctx         *QueryContext
	order       []usageentry.OrderOption
	inters      []Interceptor
	predicates  []predicate.UsageEntry
	withAccount *AccountQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UsageEntryQuery builder.
func (ueq *UsageEntryQuery) Where(ps ...predicate.UsageEntry) *UsageEntryQuery {
	ueq.predicates = append(ueq.predicates, ps...)
	return ueq
}

// Limit the number of records to be returned by this query.
func (ueq *UsageEntryQuery) Limit(limit int) *UsageEntryQuery {
	ueq.ctx.Limit = &limit
	return ueq
}

// Offset to start from.
func (ueq *UsageEntryQuery) Offset(offset int) *UsageEntryQuery {
	ueq.ctx.Offset = &offset
	return ueq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ueq *UsageEntryQuery) Unique(unique bool) *UsageEntryQuery {
	ueq.ctx.Unique = &unique
	return ueq
}

// Order specifies how the records should be ordered.
func (ueq *UsageEntryQuery) Order(o ...usageentry.OrderOption) *UsageEntryQuery {
	ueq.order = append(ueq.order, o...)
	return ueq
}

// QueryAccount chains the current query on the "account" edge.
func (ueq *UsageEntryQuery) QueryAccount() *AccountQuery {
	query := (&AccountClient{config: ueq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ueq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ueq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(usageentry.Table, usageentry.FieldID, selector),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usageentry.AccountTable, usageentry.AccountColumn),
		)
		fromU = sqlgraph.SetNeighbors(ueq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UsageEntry entity from the query.
// Returns a *NotFoundError when no UsageEntry was found.
func (ueq *UsageEntryQuery) First(ctx context.Context) (*UsageEntry, error) {
	nodes, err := ueq.Limit(1).All(setContextOp(ctx, ueq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{usageentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ueq *UsageEntryQuery) FirstX(ctx context.Context) *UsageEntry {
	node, err := ueq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UsageEntry ID from the query.
// Returns a *NotFoundError when no UsageEntry ID was found.
func (ueq *UsageEntryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ueq.Limit(1).IDs(setContextOp(ctx, ueq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{usageentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ueq *UsageEntryQuery) FirstIDX(ctx context.Context) int {
	id, err := ueq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UsageEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UsageEntry entity is found.
// Returns a *NotFoundError when no UsageEntry entities are found.
func (ueq *UsageEntryQuery) Only(ctx context.Context) (*UsageEntry, error) {
	nodes, err := ueq.Limit(2).All(setContextOp(ctx, ueq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{usageentry.Label}
	default:
		return nil, &NotSingularError{usageentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ueq *UsageEntryQuery) OnlyX(ctx context.Context) *UsageEntry {
	node, err := ueq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UsageEntry ID in the query.
// Returns a *NotSingularError when more than one UsageEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (ueq *UsageEntryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ueq.Limit(2).IDs(setContextOp(ctx, ueq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{usageentry.Label}
	default:
		err = &NotSingularError{usageentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ueq *UsageEntryQuery) OnlyIDX(ctx context.Context) int {
	id, err := ueq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UsageEntries.
func (ueq *UsageEntryQuery) All(ctx context.Context) ([]*UsageEntry, error) {
	ctx = setContextOp(ctx, ueq.ctx, ent.OpQueryAll)
	if err := ueq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UsageEntry, *UsageEntryQuery]()
	return withInterceptors[[]*UsageEntry](ctx, ueq, qr, ueq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ueq *UsageEntryQuery) AllX(ctx context.Context) []*UsageEntry {
	nodes, err := ueq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UsageEntry IDs.
func (ueq *UsageEntryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ueq.ctx.Unique == nil && ueq.path != nil {
		ueq.Unique(true)
	}
	ctx = setContextOp(ctx, ueq.ctx, ent.OpQueryIDs)
	if err = ueq.Select(usageentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ueq *UsageEntryQuery) IDsX(ctx context.Context) []int {
	ids, err := ueq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ueq *UsageEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ueq.ctx, ent.OpQueryCount)
	if err := ueq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ueq, querierCount[*UsageEntryQuery](), ueq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ueq *UsageEntryQuery) CountX(ctx context.Context) int {
	count, err := ueq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ueq *UsageEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ueq.ctx, ent.OpQueryExist)
	switch _, err := ueq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ueq *UsageEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := ueq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UsageEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ueq *UsageEntryQuery) Clone() *UsageEntryQuery {
	if ueq == nil {
		return nil
	}
	return &UsageEntryQuery{
		config:      ueq.config,
		ctx:         ueq.ctx.Clone(),
		order:       append([]usageentry.OrderOption{}, ueq.order...),
		inters:      append([]Interceptor{}, ueq.inters...),
		predicates:  append([]predicate.UsageEntry{}, ueq.predicates...),
		withAccount: ueq.withAccount.Clone(),
		// clone intermediate query.
		sql:  ueq.sql.Clone(),
		path: ueq.path,
	}
}

// WithAccount tells the query-builder to eager-load the nodes that are connected to
// the "account" edge. The optional arguments are used to configure the query builder of the edge.
func (ueq *UsageEntryQuery) WithAccount(opts ...func(*AccountQuery)) *UsageEntryQuery {
	query := (&AccountClient{config: ueq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ueq.withAccount = query
	return ueq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AccountID int `json:"account_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UsageEntry.Query().
//		GroupBy(usageentry.FieldAccountID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ueq *UsageEntryQuery) GroupBy(field string, fields ...string) *UsageEntryGroupBy {
	ueq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UsageEntryGroupBy{build: ueq}
	grbuild.flds = &ueq.ctx.Fields
	grbuild.label = usageentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AccountID int `json:"account_id,omitempty"`
//	}
//
//	client.UsageEntry.Query().
//		Select(usageentry.FieldAccountID).
//		Scan(ctx, &v)
func (ueq *UsageEntryQuery) Select(fields ...string) *UsageEntrySelect {
	ueq.ctx.Fields = append(ueq.ctx.Fields, fields...)
	sbuild := &UsageEntrySelect{UsageEntryQuery: ueq}
	sbuild.label = usageentry.Label
	sbuild.flds, sbuild.scan = &ueq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UsageEntrySelect configured with the given aggregations.
func (ueq *UsageEntryQuery) Aggregate(fns ...AggregateFunc) *UsageEntrySelect {
	return ueq.Select().Aggregate(fns...)
}

func (ueq *UsageEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ueq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ueq); err != nil {
				return err
			}
		}
	}
	for _, f := range ueq.ctx.Fields {
		if !usageentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ueq.path != nil {
		prev, err := ueq.path(ctx)
		if err != nil {
			return err
		}
		ueq.sql = prev
	}
	return nil
}

func (ueq *UsageEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UsageEntry, error) {
	var (
		nodes       = []*UsageEntry{}
		_spec       = ueq.querySpec()
		loadedTypes = [1]bool{
			ueq.withAccount != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UsageEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UsageEntry{config: ueq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ueq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ueq.withAccount; query != nil {
		if err := ueq.loadAccount(ctx, query, nodes, nil,
			func(n *UsageEntry, e *Account) { n.Edges.Account = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ueq *UsageEntryQuery) loadAccount(ctx context.Context, query *AccountQuery, nodes []*UsageEntry, init func(*UsageEntry), assign func(*UsageEntry, *Account)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*UsageEntry)
	for i := range nodes {
		fk := nodes[i].AccountID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(account.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "account_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ueq *UsageEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ueq.querySpec()
	_spec.Node.Columns = ueq.ctx.Fields
	if len(ueq.ctx.Fields) > 0 {
		_spec.Unique = ueq.ctx.Unique != nil && *ueq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ueq.driver, _spec)
}

func (ueq *UsageEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(usageentry.Table, usageentry.Columns, sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt))
	_spec.From = ueq.sql
	if unique := ueq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ueq.path != nil {
		_spec.Unique = true
	}
	if fields := ueq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageentry.FieldID)
		for i := range fields {
			if fields[i] != usageentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ueq.withAccount != nil {
			_spec.Node.AddColumnOnce(usageentry.FieldAccountID)
		}
	}
	if ps := ueq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ueq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ueq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ueq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ueq *UsageEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ueq.driver.Dialect())
	t1 := builder.Table(usageentry.Table)
	columns := ueq.ctx.Fields
	if len(columns) == 0 {
		columns = usageentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ueq.sql != nil {
		selector = ueq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ueq.ctx.Unique != nil && *ueq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ueq.predicates {
		p(selector)
	}
	for _, p := range ueq.order {
		p(selector)
	}
	if offset := ueq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ueq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UsageEntryGroupBy is the group-by builder for UsageEntry entities.
type UsageEntryGroupBy struct {
	selector
	build *UsageEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (uegb *UsageEntryGroupBy) Aggregate(fns ...AggregateFunc) *UsageEntryGroupBy {
	uegb.fns = append(uegb.fns, fns...)
	return uegb
}

// Scan applies the selector query and scans the result into the given value.
func (uegb *UsageEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uegb.build.ctx, ent.OpQueryGroupBy)
	if err := uegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UsageEntryQuery, *UsageEntryGroupBy](ctx, uegb.build, uegb, uegb.build.inters, v)
}

func (uegb *UsageEntryGroupBy) sqlScan(ctx context.Context, root *UsageEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(uegb.fns))
	for _, fn := range uegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*uegb.flds)+len(uegb.fns))
		for _, f := range *uegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*uegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UsageEntrySelect is the builder for selecting fields of UsageEntry entities.
type UsageEntrySelect struct {
	*UsageEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ues *UsageEntrySelect) Aggregate(fns ...AggregateFunc) *UsageEntrySelect {
	ues.fns = append(ues.fns, fns...)
	return ues
}

// Scan applies the selector query and scans the result into the given value.
func (ues *UsageEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ues.ctx, ent.OpQuerySelect)
	if err := ues.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UsageEntryQuery, *UsageEntrySelect](ctx, ues.UsageEntryQuery, ues, ues.inters, v)
}

func (ues *UsageEntrySelect) sqlScan(ctx context.Context, root *UsageEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ues.fns))
	for _, fn := range ues.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ues.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ues.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
