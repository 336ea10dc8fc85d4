//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package value

import (
	"sort"
	"strings"

	json "github.com/couchbase/go_json"
)

/*
objectValue maps field names to values. Documents of a keyspace and
the joined rows built by the executor (alias -> document) are
objects.
*/
type objectValue map[string]Value

func NewObjectValue(fields map[string]interface{}) Value {
	rv := make(objectValue, len(fields))
	for k, v := range fields {
		rv[k] = NewValue(v)
	}
	return rv
}

/*
NewScopeValue returns an empty object that the executor fills with
one field per keyspace alias.
*/
func NewScopeValue(capacity int) ObjectValue {
	return make(objectValue, capacity)
}

/*
ObjectValue is an object that can be extended in place. Only the
executor builds objects this way, before sharing them.
*/
type ObjectValue interface {
	Value
	SetField(field string, val Value)
	Fields() map[string]Value
}

func (this objectValue) String() string {
	return marshalString(this)
}

func (this objectValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Value(this))
}

func (this objectValue) Type() Type { return OBJECT }

func (this objectValue) Actual() interface{} {
	rv := make(map[string]interface{}, len(this))
	for k, v := range this {
		rv[k] = v.Actual()
	}
	return rv
}

func (this objectValue) Equals(other Value) Value {
	if other.Type() == NULL {
		return NULL_VALUE
	}
	return NewBoolValue(this.EquivalentTo(other))
}

func (this objectValue) EquivalentTo(other Value) bool {
	o, ok := other.(objectValue)
	if !ok || len(o) != len(this) {
		return false
	}

	for k, v := range this {
		ov, ok := o[k]
		if !ok || !v.EquivalentTo(ov) {
			return false
		}
	}
	return true
}

/*
Objects collate by size, then by sorted field names, then by field
values.
*/
func (this objectValue) Collate(other Value) int {
	o, ok := other.(objectValue)
	if !ok {
		return collateTypes(OBJECT, other)
	}

	if d := len(this) - len(o); d != 0 {
		return d
	}

	ours := sortedFields(this)
	theirs := sortedFields(o)
	for i, name := range ours {
		if c := strings.Compare(name, theirs[i]); c != 0 {
			return c
		}
	}

	for _, name := range ours {
		if c := this[name].Collate(o[name]); c != 0 {
			return c
		}
	}
	return 0
}

func (this objectValue) Truth() bool {
	return len(this) > 0
}

func (this objectValue) Field(field string) (Value, bool) {
	rv, ok := this[field]
	if !ok {
		return NULL_VALUE, false
	}
	return rv, true
}

func (this objectValue) Elements() Values {
	return nil
}

func (this objectValue) SetField(field string, val Value) {
	if val == nil {
		val = NULL_VALUE
	}
	this[field] = val
}

func (this objectValue) Fields() map[string]Value {
	return this
}

func sortedFields(obj objectValue) []string {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
