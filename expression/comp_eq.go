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
Comparison term = . Equality with NULL on either side is NULL.
*/
type Eq struct {
	BinaryFunctionBase
}

func NewEq(first, second Expression) *Eq {
	rv := &Eq{}
	rv.Init("eq", first, second)

	rv.expr = rv
	return rv
}

func (this *Eq) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitEq(this)
}

func (this *Eq) Type() value.Type { return value.BOOLEAN }

func (this *Eq) Evaluate(item value.Value) (value.Value, error) {
	first, err := this.operands[0].Evaluate(item)
	if err != nil {
		return nil, err
	}

	second, err := this.operands[1].Evaluate(item)
	if err != nil {
		return nil, err
	}

	return first.Equals(second), nil
}

func (this *Eq) Copy() Expression {
	return NewEq(this.First().Copy(), this.Second().Copy())
}
