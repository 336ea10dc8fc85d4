//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

import (
	"fmt"
	"strings"

	"github.com/couchbase/nullpred/value"
)

const _INIT_BUF = 128

/*
Stringer renders expressions as SQL text. Every operator is
parenthesized so the text is unambiguous without precedence rules.
*/
type Stringer struct {
	buf strings.Builder
}

func (this *Stringer) WriteString(s string) {
	this.buf.WriteString(s)
}

func (this *Stringer) String() string {
	s := this.buf.String()
	this.buf.Reset()
	return s
}

func NewStringer() *Stringer {
	s := &Stringer{}
	s.buf.Grow(_INIT_BUF)
	return s
}

func (this *Stringer) Visit(expr Expression) string {
	this.VisitShared(expr)
	return this.String()
}

// this supresses returning the buffer so more can be written to it afterwards
func (this *Stringer) VisitShared(expr Expression) {
	_, err := expr.Accept(this)
	if err != nil {
		panic(fmt.Sprintf("Unexpected error in Stringer. expr: %T, error: %v", expr, err))
	}
}

// Comparison

func (this *Stringer) VisitEq(expr *Eq) (interface{}, error) {
	this.WriteString("(")
	this.VisitShared(expr.First())
	this.WriteString(" = ")
	this.VisitShared(expr.Second())
	this.WriteString(")")
	return nil, nil
}

func (this *Stringer) VisitIsNull(expr *IsNull) (interface{}, error) {
	this.WriteString("(")
	this.VisitShared(expr.Operand())
	if expr.IsNegated() {
		this.WriteString(" IS NOT NULL)")
	} else {
		this.WriteString(" IS NULL)")
	}
	return nil, nil
}

// Constant

func (this *Stringer) VisitConstant(expr *Constant) (interface{}, error) {
	switch expr.value.Type() {
	case value.NULL, value.BOOLEAN:
		this.WriteString(strings.ToUpper(expr.value.String()))
	default:
		this.WriteString(expr.value.String())
	}
	return nil, nil
}

// Column

func (this *Stringer) VisitColumn(expr *Column) (interface{}, error) {
	if expr.alias != "" {
		this.WriteString(expr.alias)
		this.WriteString(".")
	}
	this.WriteString(expr.name)
	return nil, nil
}

// Construction

func (this *Stringer) VisitRowConstruct(expr *RowConstruct) (interface{}, error) {
	this.WriteString("(")
	for i, op := range expr.operands {
		if i > 0 {
			this.WriteString(", ")
		}
		this.VisitShared(op)
	}
	this.WriteString(")")
	return nil, nil
}

// Logic

func (this *Stringer) VisitAnd(expr *And) (interface{}, error) {
	this.WriteString("(")
	for i, op := range expr.operands {
		if i > 0 {
			this.WriteString(" AND ")
		}
		this.VisitShared(op)
	}
	this.WriteString(")")
	return nil, nil
}

func (this *Stringer) VisitNot(expr *Not) (interface{}, error) {
	this.WriteString("(NOT ")
	this.VisitShared(expr.Operand())
	this.WriteString(")")
	return nil, nil
}

func (this *Stringer) VisitOr(expr *Or) (interface{}, error) {
	this.WriteString("(")
	for i, op := range expr.operands {
		if i > 0 {
			this.WriteString(" OR ")
		}
		this.VisitShared(op)
	}
	this.WriteString(")")
	return nil, nil
}
