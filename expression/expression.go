//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package expression provides expression evaluation for query
predicates and the rewrites the planner applies to them.
*/
package expression

import (
	"fmt"

	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/value"
)

/*
The type Expressions is defined as a slice of Expression.
*/
type Expressions []Expression

/*
The Expression interface represents predicate expressions.
Expressions handed to evaluation are never mutated; mappers such as
NNF run on a Copy().
*/
type Expression interface {
	fmt.Stringer
	json.Marshaler

	/*
	   Visitor pattern.
	*/
	Accept(visitor Visitor) (interface{}, error)

	/*
	   Type() returns the static type of the result of this
	   Expression, or value.UNKNOWN when it has not been
	   resolved.
	*/
	Type() value.Type

	/*
	   Evaluate the expression for a given input. The input is an
	   OBJECT mapping each alias in scope to its current row.
	*/
	Evaluate(item value.Value) (value.Value, error)

	/*
	   Value() returns the static / constant value of this
	   Expression, or nil. Expressions that depend on data must
	   return nil.
	*/
	Value() value.Value

	/*
	   Indicates if this expression is equivalent to the other
	   expression. False negatives are allowed.
	*/
	EquivalentTo(other Expression) bool

	/*
	   Indicates if this expression depends on the other
	   expression. False negatives are allowed.
	*/
	DependsOn(other Expression) bool

	/*
	   Utility function that returns the children of the
	   expression. For expression a = b, a and b are the children.
	*/
	Children() Expressions

	/*
	   Utility function that takes in as input parameter a mapper
	   that maps the child expressions of this Expression. If
	   there is an error during the mapping, an error is returned.
	*/
	MapChildren(mapper Mapper) error

	/*
	   Deep copy.
	*/
	Copy() Expression
}

/*
Source is the planner-side owner of a column: the table filter the
column resolves to. Sources are compared by identity.
*/
type Source interface {
	Alias() string
}

func (this Expressions) Copy() Expressions {
	if this == nil {
		return nil
	}

	copies := make(Expressions, len(this))
	for i, expr := range this {
		if expr != nil {
			copies[i] = expr.Copy()
		}
	}

	return copies
}

func (this Expressions) EquivalentTo(other Expressions) bool {
	if len(this) != len(other) {
		return false
	}

	for i, expr := range this {
		if !expr.EquivalentTo(other[i]) {
			return false
		}
	}

	return true
}

func (this Expressions) String() string {
	s := NewStringer()
	for i, expr := range this {
		if i > 0 {
			s.WriteString(", ")
		}
		s.VisitShared(expr)
	}
	return s.String()
}
