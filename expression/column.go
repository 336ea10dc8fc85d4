//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package expression

import (
	"github.com/couchbase/nullpred/value"
)

/*
Column is a direct reference alias.name to a column of a table in
scope. The declared type is value.UNKNOWN when the catalog does not
know it. Once bound, source is the table filter the column resolves
to.
*/
type Column struct {
	ExpressionBase
	alias  string
	name   string
	typ    value.Type
	source Source
}

func NewColumn(alias, name string, typ value.Type) *Column {
	rv := &Column{
		alias: alias,
		name:  name,
		typ:   typ,
	}

	rv.expr = rv
	return rv
}

/*
Bind returns a copy of the column owned by source.
*/
func (this *Column) Bind(source Source) *Column {
	rv := NewColumn(this.alias, this.name, this.typ)
	rv.source = source
	return rv
}

func (this *Column) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitColumn(this)
}

func (this *Column) Type() value.Type { return this.typ }

/*
An alias that is not in scope, or a row without the column, yields
NULL.
*/
func (this *Column) Evaluate(item value.Value) (value.Value, error) {
	if item == nil {
		return value.NULL_VALUE, nil
	}

	row := item
	if this.alias != "" {
		row, _ = item.Field(this.alias)
	}

	val, _ := row.Field(this.name)
	return val, nil
}

func (this *Column) EquivalentTo(other Expression) bool {
	switch other := other.(type) {
	case *Column:
		return this.alias == other.alias && this.name == other.name
	default:
		return false
	}
}

func (this *Column) Copy() Expression {
	rv := NewColumn(this.alias, this.name, this.typ)
	rv.source = this.source
	return rv
}

func (this *Column) Alias() string {
	return this.alias
}

func (this *Column) Name() string {
	return this.name
}

func (this *Column) Source() Source {
	return this.source
}
