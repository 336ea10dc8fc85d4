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

type Filter struct {
	plan *plan.Filter
}

func NewFilter(plan *plan.Filter) *Filter {
	return &Filter{plan: plan}
}

func (this *Filter) Run(context *Context, input value.Values) (value.Values, errors.Error) {
	rv := make(value.Values, 0, len(input))
	for _, row := range input {
		if err := context.Stopped(); err != nil {
			return nil, err
		}

		ok, err := evalCond(this.plan.Condition(), row)
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
