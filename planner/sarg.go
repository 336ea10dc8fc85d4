//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/logging"
	base "github.com/couchbase/nullpred/plannerbase"
	"github.com/couchbase/nullpred/value"
)

/*
sargFor derives an index condition for filter from a single WHERE
conjunct. Anything it does not recognize is delegated.
*/
func sargFor(pred expression.Expression, filter *base.TableFilter) SargResult {
	s := &sarg{filter: filter}
	res, err := pred.Accept(s)
	if err != nil || res == nil {
		return _DELEGATE_SARG
	}

	return res.(SargResult)
}

type sarg struct {
	filter *base.TableFilter
}

func (this *sarg) VisitIsNull(pred *expression.IsNull) (interface{}, error) {
	return IndexConditionForNull(pred, this.filter), nil
}

/*
column = constant, either way round. A NULL constant never matches,
so it yields no condition.
*/
func (this *sarg) VisitEq(pred *expression.Eq) (interface{}, error) {
	filter := this.filter
	if !filter.Keyspace().IsQueryComparable() {
		return _DELEGATE_SARG, nil
	}

	col, ok := expression.IsColumn(pred.First())
	key := pred.Second().Value()
	if !ok {
		col, ok = expression.IsColumn(pred.Second())
		key = pred.First().Value()
	}

	if !ok || key == nil || key.Type() == value.NULL || expression.OwningSource(col) != expression.Source(filter) {
		return _DELEGATE_SARG, nil
	}

	cond := base.NewIndexCondition(base.EQUAL, col, key, pred)
	filter.AddIndexCondition(cond)
	logging.Debugf("planner: index condition %v for %s", cond, filter.Alias())
	return applied(cond), nil
}

func (this *sarg) VisitConstant(expr *expression.Constant) (interface{}, error) {
	return _DELEGATE_SARG, nil
}

func (this *sarg) VisitColumn(expr *expression.Column) (interface{}, error) {
	return _DELEGATE_SARG, nil
}

func (this *sarg) VisitRowConstruct(expr *expression.RowConstruct) (interface{}, error) {
	return _DELEGATE_SARG, nil
}

func (this *sarg) VisitAnd(expr *expression.And) (interface{}, error) {
	return _DELEGATE_SARG, nil
}

func (this *sarg) VisitNot(expr *expression.Not) (interface{}, error) {
	return _DELEGATE_SARG, nil
}

func (this *sarg) VisitOr(expr *expression.Or) (interface{}, error) {
	return _DELEGATE_SARG, nil
}
