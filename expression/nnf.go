//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

/*
NNF pushes NOT down to the leaves: double negation is removed, De
Morgan is applied to AND and OR, and NOT over a null test is replaced
by the opposite test where that is valid. Run it on a Copy(); it maps
children in place.
*/
type NNF struct {
	MapperBase
}

func NewNNF() *NNF {
	rv := &NNF{}
	rv.mapper = rv
	return rv
}

func (this *NNF) VisitNot(expr *Not) (interface{}, error) {
	var exp Expression = expr

	switch operand := expr.Operand().(type) {
	case *Not:
		exp = operand.Operand()
	case *And:
		operands := make(Expressions, len(operand.Operands()))
		for i, op := range operand.Operands() {
			operands[i] = NewNot(op)
		}

		exp = NewOr(operands...)
	case *Or:
		operands := make(Expressions, len(operand.Operands()))
		for i, op := range operand.Operands() {
			operands[i] = NewNot(op)
		}

		exp = NewAnd(operands...)
	case *IsNull:
		if not, ok := operand.NotIfPossible(); ok {
			exp = not
		}
	}

	if exp != Expression(expr) {
		return this.Map(exp)
	}

	return exp, exp.MapChildren(this)
}
