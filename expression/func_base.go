//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

/*
FunctionBase is the base for operators over a list of operands.
*/
type FunctionBase struct {
	ExpressionBase
	name     string
	operands Expressions
}

func (this *FunctionBase) Init(name string, operands ...Expression) {
	this.name = name
	this.operands = operands
}

func (this *FunctionBase) Name() string {
	return this.name
}

func (this *FunctionBase) Operands() Expressions {
	return this.operands
}

func (this *FunctionBase) Children() Expressions {
	return this.operands
}

func (this *FunctionBase) MapChildren(mapper Mapper) error {
	for i, op := range this.operands {
		expr, err := mapper.Map(op)
		if err != nil {
			return err
		}

		this.operands[i] = expr
	}

	return nil
}

/*
Base for operators with exactly one operand.
*/
type UnaryFunctionBase struct {
	FunctionBase
}

func (this *UnaryFunctionBase) Operand() Expression {
	return this.operands[0]
}

/*
Base for operators with exactly two operands.
*/
type BinaryFunctionBase struct {
	FunctionBase
}

func (this *BinaryFunctionBase) First() Expression {
	return this.operands[0]
}

func (this *BinaryFunctionBase) Second() Expression {
	return this.operands[1]
}
