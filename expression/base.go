//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

import (
	"reflect"

	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/value"
)

/*
ExpressionBase is the base for every expression. expr points back at
the embedding expression so the shared methods can dispatch through
the interface.
*/
type ExpressionBase struct {
	expr Expression
}

func (this *ExpressionBase) String() string {
	return NewStringer().Visit(this.expr)
}

func (this *ExpressionBase) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.expr.String())
}

/*
Non-constant expressions have no static value.
*/
func (this *ExpressionBase) Value() value.Value {
	return nil
}

func (this *ExpressionBase) EquivalentTo(other Expression) bool {
	return this.equivalentTo(this.expr, other)
}

func (this *ExpressionBase) equivalentTo(expr, other Expression) bool {
	if other == nil || reflect.TypeOf(expr) != reflect.TypeOf(other) {
		return false
	}

	return expr.Children().EquivalentTo(other.Children())
}

func (this *ExpressionBase) DependsOn(other Expression) bool {
	return this.dependsOn(this.expr, other)
}

func (this *ExpressionBase) dependsOn(expr, other Expression) bool {
	if expr.EquivalentTo(other) {
		return true
	}

	for _, child := range expr.Children() {
		if child.DependsOn(other) {
			return true
		}
	}

	return false
}

func (this *ExpressionBase) Children() Expressions {
	return nil
}

func (this *ExpressionBase) MapChildren(mapper Mapper) error {
	return nil
}
