//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

/*
Mapper is a Visitor that returns an Expression.
*/
type Mapper interface {
	Visitor

	Map(expr Expression) (Expression, error)
}

type MapFunc func(expr Expression) (Expression, error)

/*
MapperBase maps every child; embedders override the Visit methods
they rewrite.
*/
type MapperBase struct {
	mapper  Mapper
	mapFunc MapFunc
}

func NewMapper(mapFunc MapFunc) *MapperBase {
	rv := &MapperBase{
		mapFunc: mapFunc,
	}

	rv.mapper = rv
	return rv
}

func (this *MapperBase) SetMapper(mapper Mapper) {
	this.mapper = mapper
}

func (this *MapperBase) Map(expr Expression) (Expression, error) {
	exp, err := expr.Accept(this.mapper)
	if err != nil {
		return nil, err
	}

	return exp.(Expression), nil
}

func (this *MapperBase) visit(expr Expression) (interface{}, error) {
	if this.mapFunc != nil {
		return this.mapFunc(expr)
	} else {
		return expr, expr.MapChildren(this.mapper)
	}
}

// Comparison

func (this *MapperBase) VisitEq(expr *Eq) (interface{}, error) {
	return this.visit(expr)
}

func (this *MapperBase) VisitIsNull(expr *IsNull) (interface{}, error) {
	return this.visit(expr)
}

// Constant

func (this *MapperBase) VisitConstant(expr *Constant) (interface{}, error) {
	return this.visit(expr)
}

// Column

func (this *MapperBase) VisitColumn(expr *Column) (interface{}, error) {
	return this.visit(expr)
}

// Construction

func (this *MapperBase) VisitRowConstruct(expr *RowConstruct) (interface{}, error) {
	return this.visit(expr)
}

// Logic

func (this *MapperBase) VisitAnd(expr *And) (interface{}, error) {
	return this.visit(expr)
}

func (this *MapperBase) VisitNot(expr *Not) (interface{}, error) {
	return this.visit(expr)
}

func (this *MapperBase) VisitOr(expr *Or) (interface{}, error) {
	return this.visit(expr)
}
