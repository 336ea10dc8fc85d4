//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package algebra

import (
	"github.com/couchbase/nullpred/expression"
)

/*
AnsiJoin is [LEFT [OUTER]] JOIN right ON onclause. The planner may
turn an outer join into an inner one; it does so on its own copy of
the flag, never on the statement.
*/
type AnsiJoin struct {
	right    *KeyspaceTerm
	outer    bool
	onclause expression.Expression
}

func NewAnsiJoin(right *KeyspaceTerm, outer bool, onclause expression.Expression) *AnsiJoin {
	return &AnsiJoin{right, outer, onclause}
}

func (this *AnsiJoin) Right() *KeyspaceTerm {
	return this.right
}

func (this *AnsiJoin) Alias() string {
	return this.right.Alias()
}

func (this *AnsiJoin) Outer() bool {
	return this.outer
}

func (this *AnsiJoin) Onclause() expression.Expression {
	return this.onclause
}

func (this *AnsiJoin) String() string {
	s := ""
	if this.outer {
		s += "LEFT OUTER "
	}
	s += "JOIN " + this.right.String()
	if this.onclause != nil {
		s += " ON " + this.onclause.String()
	}
	return s
}
