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
RowConstruct builds a row value (a, b, ...) from its operands.
*/
type RowConstruct struct {
	FunctionBase
}

func NewRowConstruct(operands ...Expression) *RowConstruct {
	rv := &RowConstruct{}
	rv.Init("row", operands...)

	rv.expr = rv
	return rv
}

func (this *RowConstruct) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitRowConstruct(this)
}

func (this *RowConstruct) Type() value.Type { return value.ROW }

func (this *RowConstruct) Evaluate(item value.Value) (value.Value, error) {
	elements := make(value.Values, len(this.operands))
	for i, op := range this.operands {
		val, err := op.Evaluate(item)
		if err != nil {
			return nil, err
		}

		elements[i] = val
	}

	return value.NewRowValue(elements), nil
}

/*
A row of constants is itself constant.
*/
func (this *RowConstruct) Value() value.Value {
	elements := make(value.Values, len(this.operands))
	for i, op := range this.operands {
		val := op.Value()
		if val == nil {
			return nil
		}

		elements[i] = val
	}

	return value.NewRowValue(elements)
}

func (this *RowConstruct) Copy() Expression {
	return NewRowConstruct(this.operands.Copy()...)
}
