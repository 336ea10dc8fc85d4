//  Copyright 2014-Present Couchbase, Inc.
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

type stringValue string

var EMPTY_STRING_VALUE = NewValue("")

/*
String renders the value as a SQL string literal.
*/
func (this stringValue) String() string {
	return "'" + strings.ReplaceAll(string(this), "'", "''") + "'"
}

func (this stringValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(this))
}

func (this stringValue) Type() Type { return STRING }

func (this stringValue) Actual() interface{} {
	return string(this)
}

func (this stringValue) Equals(other Value) Value {
	switch other := other.(type) {
	case stringValue:
		return NewBoolValue(this == other)
	default:
		if other.Type() == NULL {
			return NULL_VALUE
		}
		return FALSE_VALUE
	}
}

func (this stringValue) EquivalentTo(other Value) bool {
	o, ok := other.(stringValue)
	return ok && this == o
}

func (this stringValue) Collate(other Value) int {
	switch other := other.(type) {
	case stringValue:
		return strings.Compare(string(this), string(other))
	default:
		return collateTypes(STRING, other)
	}
}

/*
The empty string is false.
*/
func (this stringValue) Truth() bool {
	return len(this) > 0
}

func (this stringValue) Field(field string) (Value, bool) {
	return NULL_VALUE, false
}

func (this stringValue) Elements() Values {
	return nil
}
