//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package execution

import (
	"github.com/couchbase/nullpred/datastore"
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/plan"
	"github.com/couchbase/nullpred/value"
)

type PrimaryScan struct {
	plan *plan.PrimaryScan
}

func NewPrimaryScan(plan *plan.PrimaryScan) *PrimaryScan {
	return &PrimaryScan{plan: plan}
}

func (this *PrimaryScan) Run(context *Context, input value.Values) (value.Values, errors.Error) {
	docs, err := this.plan.Keyspace().ScanAll(context.GoContext())
	if err != nil {
		return nil, err
	}
	return scanRows(context, docs, this.plan.Alias(), this.plan.Filter())
}

type IndexScan struct {
	plan *plan.IndexScan
}

func NewIndexScan(plan *plan.IndexScan) *IndexScan {
	return &IndexScan{plan: plan}
}

func (this *IndexScan) Run(context *Context, input value.Values) (value.Values, errors.Error) {
	span := this.plan.Span()
	docs, err := this.plan.Index().Lookup(context.GoContext(), span.Key(), span.NullSafe())
	if err != nil {
		return nil, err
	}
	return scanRows(context, docs, this.plan.Alias(), this.plan.Filter())
}

/*
Wraps each document as a single-alias row and applies the attached
filter.
*/
func scanRows(context *Context, docs []datastore.Document, alias string,
	filter expression.Expression) (value.Values, errors.Error) {
	context.addScanned(len(docs))

	rv := make(value.Values, 0, len(docs))
	for _, doc := range docs {
		if err := context.Stopped(); err != nil {
			return nil, err
		}

		row := value.NewScopeValue(1)
		row.SetField(alias, doc.Value)

		ok, err := evalCond(filter, row)
		if err != nil {
			return nil, err
		}
		if ok {
			rv = append(rv, row)
		} else {
			context.addFiltered(1)
		}
	}
	return rv, nil
}

/*
A row passes a condition only if it evaluates to TRUE; FALSE and NULL
both reject it. A nil condition passes every row.
*/
func evalCond(cond expression.Expression, row value.Value) (bool, errors.Error) {
	if cond == nil {
		return true, nil
	}

	val, err := cond.Evaluate(row)
	if err != nil {
		return false, errors.NewEvaluationError(err, "filter")
	}

	return val.Type() == value.BOOLEAN && val.Truth(), nil
}
