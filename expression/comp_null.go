//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

import (
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/value"
)

/*
IsNull is the predicate operand IS [NOT] NULL. The operand and the
negation flag are fixed at construction; rewrites build a new
predicate.

A row operand follows the all-or-nothing rule: (a, b) IS NULL holds
only when every component is NULL and (a, b) IS NOT NULL only when no
component is. A row mixing NULL and non-NULL components satisfies
neither, so the two forms are not complements of each other. An
empty row satisfies both.
*/
type IsNull struct {
	UnaryFunctionBase
	not bool
}

func NewIsNull(operand Expression) *IsNull {
	return NewNullPredicate(operand, false)
}

func NewIsNotNull(operand Expression) *IsNull {
	return NewNullPredicate(operand, true)
}

func NewNullPredicate(operand Expression, not bool) *IsNull {
	rv := &IsNull{
		not: not,
	}
	if not {
		rv.Init("isnotnull", operand)
	} else {
		rv.Init("isnull", operand)
	}

	rv.expr = rv
	return rv
}

func (this *IsNull) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitIsNull(this)
}

func (this *IsNull) Type() value.Type { return value.BOOLEAN }

func (this *IsNull) IsNegated() bool {
	return this.not
}

/*
The result is always TRUE or FALSE, never NULL.
*/
func (this *IsNull) Evaluate(item value.Value) (value.Value, error) {
	rv, err := this.Test(item)
	if err != nil {
		return nil, err
	}

	return value.NewBoolValue(rv), nil
}

func (this *IsNull) Test(item value.Value) (bool, error) {
	arg, err := this.operands[0].Evaluate(item)
	if err != nil {
		return false, errors.NewEvaluationError(err, this.name)
	}

	return this.apply(arg), nil
}

func (this *IsNull) apply(arg value.Value) bool {
	if arg == nil || arg.Type() != value.ROW {
		return value.IsNull(arg) != this.not
	}

	for _, e := range arg.Elements() {
		if value.IsNull(e) == this.not {
			return false
		}
	}

	return true
}

/*
NotIfPossible returns the predicate with the opposite flag, so that
NOT (x IS NULL) can be replaced by x IS NOT NULL. It is unavailable
when the operand is a row, where the two forms are not complements,
or when the operand type is not yet known and could turn out to be a
row.
*/
func (this *IsNull) NotIfPossible() (*IsNull, bool) {
	switch this.Operand().Type() {
	case value.UNKNOWN, value.ROW:
		return nil, false
	}

	return NewNullPredicate(this.Operand(), !this.not), true
}

func (this *IsNull) EquivalentTo(other Expression) bool {
	o, ok := other.(*IsNull)
	return ok && this.not == o.not && this.Operand().EquivalentTo(o.Operand())
}

func (this *IsNull) Copy() Expression {
	return NewNullPredicate(this.Operand().Copy(), this.not)
}
