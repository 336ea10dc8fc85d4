//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/expression"
	base "github.com/couchbase/nullpred/plannerbase"
)

/*
binder replaces every column by a copy bound to the table filter of
its alias.
*/
type binder struct {
	expression.MapperBase
	filters map[string]*base.TableFilter
}

func newBinder(filters map[string]*base.TableFilter) *binder {
	rv := &binder{
		filters: filters,
	}
	rv.SetMapper(rv)
	return rv
}

func (this *binder) VisitColumn(expr *expression.Column) (interface{}, error) {
	filter, ok := this.filters[expr.Alias()]
	if !ok {
		return nil, errors.NewPlanError(nil, "Column "+expr.String()+" does not refer to a keyspace in FROM.")
	}

	return expr.Bind(filter), nil
}

/*
bind works on a copy; the statement keeps its unbound expressions.
*/
func (this *binder) bind(expr expression.Expression) (expression.Expression, errors.Error) {
	if expr == nil {
		return nil, nil
	}

	rv, err := this.Map(expr.Copy())
	if err != nil {
		return nil, errors.NewPlanError(err, "Error binding "+expr.String())
	}

	return rv, nil
}

/*
singleSource returns the table filter every column of expr is bound
to, or nil if expr has no column or spans several tables.
*/
func singleSource(expr expression.Expression) *base.TableFilter {
	var rv *base.TableFilter
	ok := true

	var walk func(expr expression.Expression)
	walk = func(expr expression.Expression) {
		if col, isCol := expression.IsColumn(expr); isCol {
			filter, _ := expression.OwningSource(col).(*base.TableFilter)
			if filter == nil || (rv != nil && rv != filter) {
				ok = false
			}
			rv = filter
			return
		}

		for _, child := range expr.Children() {
			walk(child)
		}
	}

	walk(expr)
	if !ok {
		return nil
	}

	return rv
}
