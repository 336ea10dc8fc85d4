//  Copyright 2018-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"github.com/couchbase/nullpred/expression"
)

/*
 * Check whether an expression is null-rejecting for a particular keyspace.
 *
 * This is used for OUTER JOIN to INNER JOIN transformation: the result of an
 * outer join may contain rows in which the subservient side is null-extended.
 * If a WHERE conjunct rejects every such row, the outer join can be converted
 * to an inner join.
 *
 * x IS NOT NULL rejects null-extended rows; x IS NULL accepts them.
 */
func nullRejExpr(chkNullRej *chkNullRej, expr expression.Expression) bool {
	res, err := expr.Accept(chkNullRej)
	if err != nil {
		return false
	}

	return res.(bool)
}

type chkNullRej struct {
	alias string
}

func newChkNullRej(alias string) *chkNullRej {
	return &chkNullRej{alias: alias}
}

func (this *chkNullRej) hasReferences(expr expression.Expression) bool {
	return referencesAlias(expr, this.alias)
}

/*
True if any column in expr belongs to alias.
*/
func referencesAlias(expr expression.Expression, alias string) bool {
	if col, ok := expression.IsColumn(expr); ok {
		return col.Alias() == alias
	}

	for _, child := range expr.Children() {
		if referencesAlias(child, alias) {
			return true
		}
	}

	return false
}

// Logic

func (this *chkNullRej) VisitAnd(expr *expression.And) (interface{}, error) {
	for _, op := range expr.Operands() {
		if op == nil {
			continue
		}

		// make sure the subterm references the keyspace
		if !this.hasReferences(op) {
			continue
		}

		res, err := op.Accept(this)
		if err != nil {
			return false, err
		}

		nullRej := res.(bool)
		if nullRej {
			return true, nil
		}
	}

	return false, nil
}

func (this *chkNullRej) VisitOr(expr *expression.Or) (interface{}, error) {
	for _, op := range expr.Operands() {
		if op == nil {
			continue
		}

		// make sure the subterm references the keyspace
		if !this.hasReferences(op) {
			return false, nil
		}

		res, err := op.Accept(this)
		if err != nil {
			return nil, err
		}

		nullRej := res.(bool)
		if !nullRej {
			return false, nil
		}
	}

	return true, nil
}

/*
NOT over a comparison stays NULL on null-extended rows; NOT over a
null test is decided by the test itself, which NNF has already
flipped where it could.
*/
func (this *chkNullRej) VisitNot(expr *expression.Not) (interface{}, error) {
	switch expr.Operand().(type) {
	case *expression.Eq:
		return expr.Operand().Accept(this)
	default:
		return false, nil
	}
}

// Comparison

/* equality with a null-extended column is NULL, which rejects the row */
func (this *chkNullRej) VisitEq(pred *expression.Eq) (interface{}, error) {
	return propagatesNull(pred.First(), this.alias) || propagatesNull(pred.Second(), this.alias), nil
}

/* IS NOT NULL is null rejecting, IS NULL is not */
func (this *chkNullRej) VisitIsNull(pred *expression.IsNull) (interface{}, error) {
	return pred.IsNegated() && propagatesNull(pred.Operand(), this.alias), nil
}

/*
True if expr is NULL whenever the columns of alias are, or, for a
row, has a NULL component then. False negatives are allowed.
*/
func propagatesNull(expr expression.Expression, alias string) bool {
	switch expr := expr.(type) {
	case *expression.Column:
		return expr.Alias() == alias
	case *expression.Eq:
		return propagatesNull(expr.First(), alias) || propagatesNull(expr.Second(), alias)
	case *expression.Not:
		return propagatesNull(expr.Operand(), alias)
	case *expression.RowConstruct:
		for _, op := range expr.Operands() {
			if propagatesNull(op, alias) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Constant

func (this *chkNullRej) VisitConstant(expr *expression.Constant) (interface{}, error) {
	return false, nil
}

// Column

func (this *chkNullRej) VisitColumn(expr *expression.Column) (interface{}, error) {
	return false, nil
}

// Construction

func (this *chkNullRej) VisitRowConstruct(expr *expression.RowConstruct) (interface{}, error) {
	return false, nil
}
