//  Copyright 2017-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package plannerbase

import (
	"github.com/couchbase/nullpred/datastore"
	"github.com/couchbase/nullpred/expression"
)

const (
	KS_PRIMARY_TERM   = 1 << iota // primary term
	KS_OUTER                      // inner side of an outer join
	KS_OUTER_TO_INNER             // outer join converted to inner join
)

/*
TableFilter is the planner's record for one table in the FROM clause:
the conditions attached to it and the index conditions found for it.
Columns bound to a TableFilter use it as their expression.Source.
*/
type TableFilter struct {
	name        string
	keyspace    datastore.Keyspace
	filters     Filters
	joinfilters Filters
	indexConds  IndexConditions
	onclause    expression.Expression
	ksFlags     uint32
}

func NewTableFilter(name string, keyspace datastore.Keyspace, outer bool, onclause expression.Expression) *TableFilter {
	rv := &TableFilter{
		name:     name,
		keyspace: keyspace,
		onclause: onclause,
	}
	if outer {
		rv.ksFlags |= KS_OUTER
	}
	return rv
}

func (this *TableFilter) Alias() string {
	return this.name
}

func (this *TableFilter) Keyspace() datastore.Keyspace {
	return this.keyspace
}

func (this *TableFilter) Onclause() expression.Expression {
	return this.onclause
}

func (this *TableFilter) SetOnclause(onclause expression.Expression) {
	this.onclause = onclause
}

func (this *TableFilter) IsPrimaryTerm() bool {
	return (this.ksFlags & KS_PRIMARY_TERM) != 0
}

func (this *TableFilter) SetPrimaryTerm() {
	this.ksFlags |= KS_PRIMARY_TERM
}

func (this *TableFilter) IsOuter() bool {
	return (this.ksFlags & KS_OUTER) != 0
}

/*
SetInner records that the outer join on this table has been turned
into an inner join.
*/
func (this *TableFilter) SetInner() {
	if this.IsOuter() {
		this.ksFlags &^= KS_OUTER
		this.ksFlags |= KS_OUTER_TO_INNER
	}
}

func (this *TableFilter) IsOuterToInner() bool {
	return (this.ksFlags & KS_OUTER_TO_INNER) != 0
}

func (this *TableFilter) Filters() Filters {
	return this.filters
}

func (this *TableFilter) JoinFilters() Filters {
	return this.joinfilters
}

/*
All filters, join filters last. This is the condition a scan of the
table applies.
*/
func (this *TableFilter) AllFilters() Filters {
	if len(this.joinfilters) == 0 {
		return this.filters
	}

	rv := make(Filters, 0, len(this.filters)+len(this.joinfilters))
	rv = append(rv, this.filters...)
	return append(rv, this.joinfilters...)
}

/*
AddFilterCondition attaches expr; isJoin marks a condition attached to
the inner side of an outer join. Equivalent conditions are kept once.
*/
func (this *TableFilter) AddFilterCondition(expr expression.Expression, isJoin bool) {
	filter := NewFilter(expr, isJoin)
	if isJoin {
		this.joinfilters = addFilter(this.joinfilters, filter)
	} else {
		this.filters = addFilter(this.filters, filter)
	}
}

func addFilter(filters Filters, filter *Filter) Filters {
	for _, fl := range filters {
		if filter.EquivalentTo(fl) {
			return filters
		}
	}
	return append(filters, filter)
}

/*
HasFilterCondition is true if a condition equivalent to expr is
attached to the table.
*/
func (this *TableFilter) HasFilterCondition(expr expression.Expression) bool {
	for _, fl := range this.AllFilters() {
		if fl.fltrExpr.EquivalentTo(expr) {
			return true
		}
	}
	return false
}

func (this *TableFilter) IndexConditions() IndexConditions {
	return this.indexConds
}

func (this *TableFilter) AddIndexCondition(cond *IndexCondition) {
	this.indexConds = append(this.indexConds, cond)
}
