//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package execution

import (
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/plan"
	"github.com/couchbase/nullpred/value"
)

type NLJoin struct {
	plan  *plan.NLJoin
	child Operator
	inner value.Values
	ready bool
}

func NewNLJoin(plan *plan.NLJoin, child Operator) *NLJoin {
	return &NLJoin{
		plan:  plan,
		child: child,
	}
}

/*
prefetch runs the child scan ahead of the join. The child does not
depend on the input rows, so Sequence may prefetch every join at once.
*/
func (this *NLJoin) prefetch(context *Context) errors.Error {
	inner, err := this.child.Run(context, nil)
	if err != nil {
		return err
	}
	this.inner = inner
	this.ready = true
	return nil
}

/*
The child scan runs once; its rows are matched against every input
row with the ON clause. An outer join emits an unmatched input row
once, with the joined alias set to NULL.
*/
func (this *NLJoin) Run(context *Context, input value.Values) (value.Values, errors.Error) {
	if !this.ready {
		if err := this.prefetch(context); err != nil {
			return nil, err
		}
	}
	inner := this.inner

	alias := this.plan.Alias()
	rv := make(value.Values, 0, len(input))
	for _, left := range input {
		matched := false
		for _, right := range inner {
			if err := context.Stopped(); err != nil {
				return nil, err
			}

			rightDoc, _ := right.Field(alias)
			joined := joinRow(left, alias, rightDoc)
			ok, err := evalCond(this.plan.Onclause(), joined)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
				rv = append(rv, joined)
			}
		}

		if !matched && this.plan.Outer() {
			rv = append(rv, joinRow(left, alias, value.NULL_VALUE))
		}
	}
	return rv, nil
}

func joinRow(left value.Value, alias string, right value.Value) value.Value {
	fields := left.(value.ObjectValue).Fields()
	row := value.NewScopeValue(len(fields) + 1)
	for k, v := range fields {
		row.SetField(k, v)
	}
	row.SetField(alias, right)
	return row
}
