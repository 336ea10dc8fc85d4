//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

import (
	"github.com/couchbase/nullpred/value"
)

/*
Logical NOT. NOT NULL is NULL.
*/
type Not struct {
	UnaryFunctionBase
}

func NewNot(operand Expression) *Not {
	rv := &Not{}
	rv.Init("not", operand)

	rv.expr = rv
	return rv
}

func (this *Not) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitNot(this)
}

func (this *Not) Type() value.Type { return value.BOOLEAN }

func (this *Not) Evaluate(item value.Value) (value.Value, error) {
	arg, err := this.operands[0].Evaluate(item)
	if err != nil {
		return nil, err
	}

	switch arg.Type() {
	case value.NULL:
		return arg, nil
	default:
		if arg.Truth() {
			return value.FALSE_VALUE, nil
		} else {
			return value.TRUE_VALUE, nil
		}
	}
}

func (this *Not) Copy() Expression {
	return NewNot(this.Operand().Copy())
}
