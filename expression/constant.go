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
Constant literal.
*/
type Constant struct {
	ExpressionBase
	value value.Value
}

var NULL_EXPR = NewConstant(value.NULL_VALUE)
var TRUE_EXPR = NewConstant(value.TRUE_VALUE)
var FALSE_EXPR = NewConstant(value.FALSE_VALUE)

func NewConstant(val interface{}) Expression {
	rv := &Constant{
		value: value.NewValue(val),
	}

	rv.expr = rv
	return rv
}

func (this *Constant) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitConstant(this)
}

func (this *Constant) Type() value.Type { return this.value.Type() }

func (this *Constant) Evaluate(item value.Value) (value.Value, error) {
	return this.value, nil
}

func (this *Constant) Value() value.Value {
	return this.value
}

func (this *Constant) EquivalentTo(other Expression) bool {
	switch other := other.(type) {
	case *Constant:
		return this.value.EquivalentTo(other.value)
	default:
		return false
	}
}

func (this *Constant) Copy() Expression {
	return this
}
