//  Copyright 2017-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package plannerbase

import (
	"github.com/couchbase/nullpred/expression"
)

const (
	FLTR_IS_JOIN = 1 << iota // pushed to the inner side of an outer join
)

/*
Filter is a WHERE conjunct attached to a single table. The WHERE
clause keeps the conjunct as well; a filter only lets rows be
rejected earlier.
*/
type Filter struct {
	fltrExpr  expression.Expression // filter expression
	fltrFlags uint32                // filter flags
}

type Filters []*Filter

func NewFilter(fltrExpr expression.Expression, isJoin bool) *Filter {
	rv := &Filter{
		fltrExpr: fltrExpr,
	}

	if isJoin {
		rv.fltrFlags |= FLTR_IS_JOIN
	}

	return rv
}

func (this *Filter) IsJoin() bool {
	return (this.fltrFlags & FLTR_IS_JOIN) != 0
}

func (this *Filter) FltrExpr() expression.Expression {
	return this.fltrExpr
}

func (this *Filter) EquivalentTo(other *Filter) bool {
	return this.fltrExpr.EquivalentTo(other.fltrExpr)
}

/*
Expressions of the filters in the order they were added.
*/
func (this Filters) Expressions() expression.Expressions {
	if len(this) == 0 {
		return nil
	}

	rv := make(expression.Expressions, len(this))
	for i, fl := range this {
		rv[i] = fl.fltrExpr
	}
	return rv
}

/*
Combined condition: nil, the only filter, or the AND of all of them.
*/
func (this Filters) Condition() expression.Expression {
	switch len(this) {
	case 0:
		return nil
	case 1:
		return this[0].fltrExpr
	default:
		return expression.NewAnd(this.Expressions()...)
	}
}
