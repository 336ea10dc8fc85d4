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
)

/*
Build maps a plan to execution operators.
*/
func Build(op plan.Operator) (Operator, errors.Error) {
	rv, err := op.Accept(&builder{})
	if err != nil {
		return nil, errors.NewExecutionInternalError(err.Error())
	}
	return rv.(Operator), nil
}

type builder struct {
}

// Scan

func (this *builder) VisitPrimaryScan(plan *plan.PrimaryScan) (interface{}, error) {
	return NewPrimaryScan(plan), nil
}

func (this *builder) VisitIndexScan(plan *plan.IndexScan) (interface{}, error) {
	return NewIndexScan(plan), nil
}

// Join

func (this *builder) VisitNLJoin(plan *plan.NLJoin) (interface{}, error) {
	child, err := plan.Child().Accept(this)
	if err != nil {
		return nil, err
	}
	return NewNLJoin(plan, child.(Operator)), nil
}

// Filter

func (this *builder) VisitFilter(plan *plan.Filter) (interface{}, error) {
	return NewFilter(plan), nil
}

// Sequence

func (this *builder) VisitSequence(plan *plan.Sequence) (interface{}, error) {
	children := make([]Operator, 0, len(plan.Children()))
	for _, pchild := range plan.Children() {
		child, err := pchild.Accept(this)
		if err != nil {
			return nil, err
		}
		children = append(children, child.(Operator))
	}
	return NewSequence(children...), nil
}
