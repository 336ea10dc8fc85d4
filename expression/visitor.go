//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

/*
Visitor pattern.
*/
type Visitor interface {
	// Comparison
	VisitEq(expr *Eq) (interface{}, error)
	VisitIsNull(expr *IsNull) (interface{}, error)

	// Constant
	VisitConstant(expr *Constant) (interface{}, error)

	// Column
	VisitColumn(expr *Column) (interface{}, error)

	// Construction
	VisitRowConstruct(expr *RowConstruct) (interface{}, error)

	// Logic
	VisitAnd(expr *And) (interface{}, error)
	VisitNot(expr *Not) (interface{}, error)
	VisitOr(expr *Or) (interface{}, error)
}
