//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

/*
Negate returns an expression for NOT expr, using the opposite null
test when it is a valid replacement.
*/
func Negate(expr Expression) Expression {
	if pred, ok := expr.(*IsNull); ok {
		if not, ok := pred.NotIfPossible(); ok {
			return not
		}
	}

	return NewNot(expr)
}

func IsColumn(expr Expression) (*Column, bool) {
	col, ok := expr.(*Column)
	return col, ok
}

/*
OwningSource returns the source a column expression is bound to, or
nil if expr is not a bound column.
*/
func OwningSource(expr Expression) Source {
	if col, ok := expr.(*Column); ok {
		return col.source
	}

	return nil
}
