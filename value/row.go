//  Copyright 2024-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package value

import (
	"strings"

	json "github.com/couchbase/go_json"
)

/*
rowValue is an ordered tuple of values, e.g. the result of
evaluating (a, b). A row is never itself NULL, even when every
component is.
*/
type rowValue struct {
	elements Values
}

func NewRowValue(elements Values) Value {
	rv := &rowValue{
		elements: make(Values, len(elements)),
	}
	for i, e := range elements {
		if e == nil {
			e = NULL_VALUE
		}
		rv.elements[i] = e
	}
	return rv
}

func newRowFromSlice(s []interface{}) Value {
	elements := make(Values, len(s))
	for i, e := range s {
		elements[i] = NewValue(e)
	}
	return &rowValue{elements: elements}
}

func (this *rowValue) String() string {
	var buf strings.Builder
	buf.WriteString("ROW(")
	for i, e := range this.elements {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.String())
	}
	buf.WriteString(")")
	return buf.String()
}

func (this *rowValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.elements)
}

func (this *rowValue) Type() Type { return ROW }

func (this *rowValue) Actual() interface{} {
	rv := make([]interface{}, len(this.elements))
	for i, e := range this.elements {
		rv[i] = e.Actual()
	}
	return rv
}

/*
Rows are equal when they have the same arity and every pair of
components is equal. A FALSE pair decides the result; otherwise a
NULL pair makes the result NULL.
*/
func (this *rowValue) Equals(other Value) Value {
	if other.Type() == NULL {
		return NULL_VALUE
	}

	o, ok := other.(*rowValue)
	if !ok || len(o.elements) != len(this.elements) {
		return FALSE_VALUE
	}

	null := false
	for i, e := range this.elements {
		eq := e.Equals(o.elements[i])
		switch eq.Type() {
		case NULL:
			null = true
		default:
			if !eq.Truth() {
				return FALSE_VALUE
			}
		}
	}

	if null {
		return NULL_VALUE
	}
	return TRUE_VALUE
}

func (this *rowValue) EquivalentTo(other Value) bool {
	o, ok := other.(*rowValue)
	if !ok || len(o.elements) != len(this.elements) {
		return false
	}

	for i, e := range this.elements {
		if !e.EquivalentTo(o.elements[i]) {
			return false
		}
	}
	return true
}

/*
Rows collate component by component; a shorter prefix sorts first.
*/
func (this *rowValue) Collate(other Value) int {
	o, ok := other.(*rowValue)
	if !ok {
		return collateTypes(ROW, other)
	}

	for i := 0; i < len(this.elements) && i < len(o.elements); i++ {
		if c := this.elements[i].Collate(o.elements[i]); c != 0 {
			return c
		}
	}
	return len(this.elements) - len(o.elements)
}

func (this *rowValue) Truth() bool {
	return len(this.elements) > 0
}

func (this *rowValue) Field(field string) (Value, bool) {
	return NULL_VALUE, false
}

func (this *rowValue) Elements() Values {
	return this.elements
}
