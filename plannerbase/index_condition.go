//  Copyright 2017-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package plannerbase

import (
	"fmt"

	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/value"
)

type Comparison int

const (
	EQUAL           = Comparison(iota) // column = key; a NULL key matches nothing
	EQUAL_NULL_SAFE                    // column <=> key; a NULL key matches NULL
)

func (this Comparison) String() string {
	switch this {
	case EQUAL:
		return "="
	case EQUAL_NULL_SAFE:
		return "<=>"
	default:
		return fmt.Sprintf("Comparison(%d)", int(this))
	}
}

/*
IndexCondition is an equality between a column and a constant that
an index on the column can answer. origin is the conjunct it was
derived from.
*/
type IndexCondition struct {
	comparison Comparison
	column     *expression.Column
	key        value.Value
	origin     expression.Expression
}

type IndexConditions []*IndexCondition

func NewIndexCondition(comparison Comparison, column *expression.Column, key value.Value,
	origin expression.Expression) *IndexCondition {
	return &IndexCondition{
		comparison: comparison,
		column:     column,
		key:        key,
		origin:     origin,
	}
}

func (this *IndexCondition) Comparison() Comparison {
	return this.comparison
}

func (this *IndexCondition) Column() *expression.Column {
	return this.column
}

func (this *IndexCondition) Key() value.Value {
	return this.key
}

func (this *IndexCondition) NullSafe() bool {
	return this.comparison == EQUAL_NULL_SAFE
}

func (this *IndexCondition) Origin() expression.Expression {
	return this.origin
}

/*
Matches reports whether a row whose column holds v satisfies the
condition.
*/
func (this *IndexCondition) Matches(v value.Value) bool {
	if v == nil {
		v = value.NULL_VALUE
	}

	switch this.comparison {
	case EQUAL_NULL_SAFE:
		return v.EquivalentTo(this.key)
	default:
		return v.Equals(this.key) == value.TRUE_VALUE
	}
}

func (this *IndexCondition) String() string {
	return this.column.String() + " " + this.comparison.String() + " " +
		expression.NewConstant(this.key).String()
}

func (this *IndexCondition) MarshalJSON() ([]byte, error) {
	r := map[string]interface{}{
		"column":     this.column.String(),
		"comparison": this.comparison.String(),
		"key":        this.key,
	}
	return json.Marshal(r)
}
