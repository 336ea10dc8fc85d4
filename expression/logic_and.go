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
Logical AND. FALSE if any operand is FALSE, else NULL if any operand
is NULL, else TRUE.
*/
type And struct {
	FunctionBase
}

func NewAnd(operands ...Expression) *And {
	rv := &And{}
	rv.Init("and", operands...)

	rv.expr = rv
	return rv
}

func (this *And) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitAnd(this)
}

func (this *And) Type() value.Type { return value.BOOLEAN }

func (this *And) Evaluate(item value.Value) (value.Value, error) {
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
			if !arg.Truth() {
				return value.FALSE_VALUE, nil
			}
		}
	}

	if null {
		return value.NULL_VALUE, nil
	}

	return value.TRUE_VALUE, nil
}

func (this *And) Copy() Expression {
	return NewAnd(this.operands.Copy()...)
}

/*
Conjuncts flattens nested ANDs. A nil expression has no conjuncts.
*/
func Conjuncts(expr Expression) Expressions {
	switch expr := expr.(type) {
	case nil:
		return nil
	case *And:
		var rv Expressions
		for _, op := range expr.operands {
			rv = append(rv, Conjuncts(op)...)
		}
		return rv
	default:
		return Expressions{expr}
	}
}
