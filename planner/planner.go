//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package planner builds plans for SELECT statements over a datastore.
Planning is rule based: it normalizes the WHERE clause, converts outer
joins the WHERE clause rejects, attaches conjuncts to single tables
and picks an index when a conjunct gives an index condition.
*/
package planner

import (
	"github.com/couchbase/nullpred/algebra"
	"github.com/couchbase/nullpred/datastore"
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/logging"
	"github.com/couchbase/nullpred/plan"
	base "github.com/couchbase/nullpred/plannerbase"
)

type Planner struct {
	datastore datastore.Datastore
	config    Config
}

func NewPlanner(datastore datastore.Datastore, config Config) *Planner {
	return &Planner{
		datastore: datastore,
		config:    config,
	}
}

func (this *Planner) Config() Config {
	return this.config
}

/*
Build returns the plan for stmt. The statement is not modified.
*/
func (this *Planner) Build(stmt *algebra.Select) (plan.Operator, errors.Error) {
	b := &builder{
		config:  this.config,
		filters: make(map[string]*base.TableFilter, len(stmt.Joins())+1),
	}

	err := b.addTerm(this.datastore, stmt.From(), false, nil)
	if err != nil {
		return nil, err
	}
	b.order[0].SetPrimaryTerm()

	for _, join := range stmt.Joins() {
		err = b.addTerm(this.datastore, join.Right(), join.Outer(), join.Onclause())
		if err != nil {
			return nil, err
		}
	}

	binder := newBinder(b.filters)
	for _, filter := range b.order[1:] {
		onclause, err := binder.bind(filter.Onclause())
		if err != nil {
			return nil, err
		}
		filter.SetOnclause(onclause)
		b.pushOnclause(filter)
	}

	where, err := binder.bind(stmt.Where())
	if err != nil {
		return nil, err
	}

	if where != nil {
		nnf, e := expression.NewNNF().Map(where)
		if e != nil {
			return nil, errors.NewPlanError(e, "Error normalizing WHERE clause")
		}
		where = nnf
	}

	conjuncts := expression.Conjuncts(where)
	if this.config.OuterToInner {
		b.outerToInner(conjuncts)
	}

	for _, conj := range conjuncts {
		b.pushWhere(conj)
	}

	ops := make(plan.Operators, 0, len(b.order)+1)
	ops = append(ops, b.scan(b.order[0]))
	for _, filter := range b.order[1:] {
		ops = append(ops, plan.NewNLJoin(filter.IsOuter(), filter.Alias(), filter.Onclause(), b.scan(filter)))
	}

	if where != nil {
		ops = append(ops, plan.NewFilter(where))
	}

	return plan.NewSequence(ops...), nil
}

type builder struct {
	config  Config
	filters map[string]*base.TableFilter
	order   []*base.TableFilter
}

func (this *builder) addTerm(store datastore.Datastore, term *algebra.KeyspaceTerm,
	outer bool, onclause expression.Expression) errors.Error {
	alias := term.Alias()
	if _, ok := this.filters[alias]; ok {
		return errors.NewDuplicateAliasError("FROM term", alias, "plan.duplicate_alias")
	}

	keyspace, err := store.KeyspaceByName(term.Keyspace())
	if err != nil {
		return err
	}

	filter := base.NewTableFilter(alias, keyspace, outer, onclause)
	this.filters[alias] = filter
	this.order = append(this.order, filter)
	return nil
}

/*
ON-clause conjuncts on the joined table alone restrict which of its
rows can match, so they are attached whether or not the join is
outer.
*/
func (this *builder) pushOnclause(filter *base.TableFilter) {
	for _, conj := range expression.Conjuncts(filter.Onclause()) {
		if singleSource(conj) != filter {
			continue
		}

		if this.config.IndexConditions {
			sargFor(conj, filter)
		}
		if this.config.FilterPushdown {
			filter.AddFilterCondition(conj, false)
		}
	}
}

func (this *builder) outerToInner(conjuncts expression.Expressions) {
	for _, filter := range this.order {
		if !filter.IsOuter() {
			continue
		}

		chk := newChkNullRej(filter.Alias())
		for _, conj := range conjuncts {
			if nullRejExpr(chk, conj) {
				filter.SetInner()
				logging.Debugf("planner: outer join on %s converted to inner join by %v", filter.Alias(), conj)
				break
			}
		}
	}
}

/*
pushWhere offers a WHERE conjunct to the table it is confined to. The
WHERE clause keeps every conjunct regardless of the outcome.
*/
func (this *builder) pushWhere(conj expression.Expression) {
	filter := singleSource(conj)
	if filter == nil {
		return
	}

	if this.config.IndexConditions {
		sargFor(conj, filter)
	}

	if this.config.FilterPushdown {
		outcome := AddFilterConditions(conj, filter, filter.IsOuter())
		logging.Tracef("planner: pushdown of %v to %s: %v", conj, filter.Alias(), outcome)
	}
}

/*
An index condition is only used for a table on the inner side of an
outer join when its conjunct was attached to the table: using it
removes rows before the join exactly as the attached filter does.
*/
func (this *builder) scan(filter *base.TableFilter) plan.Operator {
	cond := filter.AllFilters().Condition()

	for _, ic := range filter.IndexConditions() {
		if filter.IsOuter() && !filter.HasFilterCondition(ic.Origin()) {
			logging.Debugf("planner: index condition %v not used, %v is evaluated after the join", ic, ic.Origin())
			continue
		}

		index, ok := filter.Keyspace().IndexByColumn(ic.Column().Name())
		if !ok {
			continue
		}

		return plan.NewIndexScan(index, filter.Alias(), ic, cond)
	}

	return plan.NewPrimaryScan(filter.Keyspace(), filter.Alias(), cond)
}
