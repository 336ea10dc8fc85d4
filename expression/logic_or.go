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
Logical OR. TRUE if any operand is TRUE, else NULL if any operand is
NULL, else FALSE.
*/
type Or struct {
	FunctionBase
}

func NewOr(operands ...Expression) *Or {
	rv := &Or{}
	rv.Init("or", operands...)

	rv.expr = rv
	return rv
}

func (this *Or) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitOr(this)
}

func (this *Or) Type() value.Type { return value.BOOLEAN }

func (this *Or) Evaluate(item value.Value) (value.Value, error) {
	null := false
	for _, op := range this.operands {
		arg, err := op.Evaluate(item)
		if err != nil {
			return nil, err
		}

		switch arg.Type() {
		case value.NULL:
			null = true
		default:
			if arg.Truth() {
				return value.TRUE_VALUE, nil
			}
		}
	}

	if null {
		return value.NULL_VALUE, nil
	}

	return value.FALSE_VALUE, nil
}

func (this *Or) Copy() Expression {
	return NewOr(this.operands.Copy()...)
}
