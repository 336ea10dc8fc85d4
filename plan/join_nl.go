//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package plan

import (
	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/expression"
)

/*
NLJoin joins every row produced so far with the rows of child, the
scan of the right-hand keyspace. For an outer join, a left row with no
match is extended with NULL for every column of alias.
*/
type NLJoin struct {
	outer    bool
	alias    string
	onclause expression.Expression
	child    Operator
}

func NewNLJoin(outer bool, alias string, onclause expression.Expression, child Operator) *NLJoin {
	return &NLJoin{
		outer:    outer,
		alias:    alias,
		onclause: onclause,
		child:    child,
	}
}

func (this *NLJoin) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitNLJoin(this)
}

func (this *NLJoin) Outer() bool {
	return this.outer
}

func (this *NLJoin) Alias() string {
	return this.alias
}

func (this *NLJoin) Onclause() expression.Expression {
	return this.onclause
}

func (this *NLJoin) Child() Operator {
	return this.child
}

func (this *NLJoin) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *NLJoin) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "NestedLoopJoin"}
	r["alias"] = this.alias
	if this.onclause != nil {
		r["on_clause"] = expression.NewStringer().Visit(this.onclause)
	}

	if this.outer {
		r["outer"] = this.outer
	}

	if f != nil {
		f(r)
	} else {
		r["~child"] = this.child
	}
	return r
}
