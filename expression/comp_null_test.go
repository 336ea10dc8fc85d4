//  Copyright 2024-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

import (
	goerrors "errors"
	"testing"

	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/value"
)

var _ROW_ITEM = value.NewValue(map[string]interface{}{
	"t": map[string]interface{}{
		"a": nil,
		"b": 1,
		"c": nil,
		"d": "x",
	},
})

func col(name string) Expression {
	return NewColumn("t", name, value.UNKNOWN)
}

func TestIsNullScalar(t *testing.T) {
	var tests = []struct {
		operand Expression
		isNull  bool
	}{
		{NULL_EXPR, true},
		{NewConstant(0), false},
		{NewConstant(""), false},
		{FALSE_EXPR, false},
		{col("a"), true},
		{col("b"), false},
		{col("absent"), true},
		{NewColumn("u", "a", value.NUMBER), true},
	}

	for _, test := range tests {
		for _, not := range []bool{false, true} {
			pred := NewNullPredicate(test.operand, not)
			rv, err := pred.Evaluate(_ROW_ITEM)
			if err != nil {
				t.Fatalf("%v: unexpected error %v", pred, err)
			}

			expected := test.isNull != not
			if rv.Type() != value.BOOLEAN || rv.Truth() != expected {
				t.Errorf("%v: expected %v, got %v", pred, expected, rv)
			}
		}
	}
}

func TestIsNullScalarComplement(t *testing.T) {
	for _, operand := range (Expressions{NULL_EXPR, NewConstant(3), col("a"), col("d")}) {
		isNull, _ := NewIsNull(operand).Test(_ROW_ITEM)
		isNotNull, _ := NewIsNotNull(operand).Test(_ROW_ITEM)
		if isNull == isNotNull {
			t.Errorf("%v: IS NULL and IS NOT NULL must differ, both %v", operand, isNull)
		}
	}
}

func TestIsNullRow(t *testing.T) {
	var tests = []struct {
		operand   Expression
		isNull    bool
		isNotNull bool
	}{
		{NewRowConstruct(col("a"), col("c")), true, false},
		{NewRowConstruct(col("b"), col("d")), false, true},
		{NewRowConstruct(col("a"), col("b")), false, false},
		{NewRowConstruct(NewConstant(1), NULL_EXPR, NewConstant("a")), false, false},
		{NewRowConstruct(NULL_EXPR), true, false},
		{NewRowConstruct(), true, true},
		{NewConstant([]interface{}{nil, nil}), true, false},
	}

	for _, test := range tests {
		isNull, err := NewIsNull(test.operand).Test(_ROW_ITEM)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		isNotNull, err := NewIsNotNull(test.operand).Test(_ROW_ITEM)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if isNull != test.isNull || isNotNull != test.isNotNull {
			t.Errorf("%v: expected IS NULL %v, IS NOT NULL %v, got %v, %v",
				test.operand, test.isNull, test.isNotNull, isNull, isNotNull)
		}
	}
}

func TestIsNullUniformRowComplement(t *testing.T) {
	for _, operand := range []Expression{
		NewRowConstruct(col("a"), col("c")),
		NewRowConstruct(col("b"), col("d")),
		NewRowConstruct(NULL_EXPR),
		NewRowConstruct(NewConstant(1), NewConstant("x"), col("b")),
	} {
		isNull, err := NewIsNull(operand).Test(_ROW_ITEM)
		if err != nil {
			t.Fatalf("%v: unexpected error %v", operand, err)
		}
		isNotNull, err := NewIsNotNull(operand).Test(_ROW_ITEM)
		if err != nil {
			t.Fatalf("%v: unexpected error %v", operand, err)
		}
		if isNull == isNotNull {
			t.Errorf("%v: a uniform row must satisfy exactly one test, got %v for both", operand, isNull)
		}
	}
}

type failingExpr struct {
	ExpressionBase
}

var errFailing = goerrors.New("operand failed")

func newFailingExpr() *failingExpr {
	rv := &failingExpr{}
	rv.expr = rv
	return rv
}

func (this *failingExpr) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitConstant(NULL_EXPR.(*Constant))
}

func (this *failingExpr) Type() value.Type { return value.NUMBER }

func (this *failingExpr) Evaluate(item value.Value) (value.Value, error) {
	return nil, errFailing
}

func (this *failingExpr) Copy() Expression { return this }

func TestIsNullPropagatesOperandError(t *testing.T) {
	_, err := NewIsNotNull(newFailingExpr()).Evaluate(_ROW_ITEM)
	if err == nil {
		t.Fatalf("expected an error")
	}

	e, ok := err.(errors.Error)
	if !ok || e.Code() != errors.EVALUATION_ERROR {
		t.Errorf("expected an evaluation error, got %v", err)
	}
	if !goerrors.Is(err, errFailing) {
		t.Errorf("expected the operand error to be wrapped, got %v", err)
	}
}

func TestNotIfPossible(t *testing.T) {
	var tests = []struct {
		operand   Expression
		available bool
	}{
		{NewColumn("t", "a", value.NUMBER), true},
		{NewColumn("t", "b", value.NUMBER), true},
		{NewColumn("t", "d", value.STRING), true},
		{NewConstant(7), true},
		{NULL_EXPR, true},
		{NewColumn("t", "a", value.UNKNOWN), false},
		{NewColumn("t", "a", value.ROW), false},
		{NewRowConstruct(col("a"), col("b")), false},
	}

	for _, test := range tests {
		for _, not := range []bool{false, true} {
			pred := NewNullPredicate(test.operand, not)
			before := pred.String()

			rv, ok := pred.NotIfPossible()
			if ok != test.available {
				t.Errorf("%v: expected rewrite available %v, got %v", pred, test.available, ok)
				continue
			}

			if pred.IsNegated() != not || pred.String() != before {
				t.Errorf("%v: receiver changed by the rewrite", pred)
			}

			if !ok {
				if rv != nil {
					t.Errorf("%v: expected no predicate, got %v", pred, rv)
				}
				continue
			}

			if rv.IsNegated() == not || rv.Operand() != test.operand {
				t.Errorf("%v: expected the opposite test on the same operand, got %v", pred, rv)
			}

			back, ok := rv.NotIfPossible()
			if !ok || !back.EquivalentTo(pred) {
				t.Errorf("%v: expected the round trip to restore it, got %v", pred, back)
			}

			wasTrue, err := pred.Test(_ROW_ITEM)
			if err != nil {
				t.Fatalf("%v: unexpected error %v", pred, err)
			}
			after, err := rv.Test(_ROW_ITEM)
			if err != nil {
				t.Fatalf("%v: unexpected error %v", rv, err)
			}
			if wasTrue == after {
				t.Errorf("%v and %v must give opposite results, both %v", pred, rv, after)
			}
		}
	}
}

func TestNegate(t *testing.T) {
	typed := NewIsNull(NewColumn("t", "a", value.NUMBER))
	if s := Negate(typed).String(); s != "(t.a IS NOT NULL)" {
		t.Errorf("unexpected negation %s", s)
	}

	row := NewIsNull(NewRowConstruct(col("a"), col("b")))
	if s := Negate(row).String(); s != "(NOT ((t.a, t.b) IS NULL))" {
		t.Errorf("unexpected negation %s", s)
	}
}

func TestIsNullString(t *testing.T) {
	var tests = []struct {
		expr     Expression
		expected string
	}{
		{NewIsNull(NewColumn("t2", "id", value.NUMBER)), "(t2.id IS NULL)"},
		{NewIsNotNull(NewColumn("t2", "id", value.NUMBER)), "(t2.id IS NOT NULL)"},
		{NewIsNull(NewRowConstruct(col("a"), NewConstant("x"))), "((t.a, 'x') IS NULL)"},
		{NewIsNotNull(NewEq(col("a"), NewConstant(1))), "((t.a = 1) IS NOT NULL)"},
		{NewIsNull(NULL_EXPR), "(NULL IS NULL)"},
	}

	for _, test := range tests {
		if s := test.expr.String(); s != test.expected {
			t.Errorf("expected %s, got %s", test.expected, s)
		}
	}
}

func TestIsNullEquivalentTo(t *testing.T) {
	a := NewIsNull(col("a"))
	if !a.EquivalentTo(NewIsNull(col("a"))) {
		t.Errorf("expected %v to be equivalent to a fresh copy", a)
	}
	if a.EquivalentTo(NewIsNotNull(col("a"))) {
		t.Errorf("expected %v not to be equivalent to its negation", a)
	}
	if a.EquivalentTo(NewIsNull(col("b"))) {
		t.Errorf("expected %v not to be equivalent to a test on another column", a)
	}
	if !a.Copy().EquivalentTo(a) {
		t.Errorf("expected the copy of %v to be equivalent", a)
	}
}
