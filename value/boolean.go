//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package value

type boolValue bool

var FALSE_VALUE = NewValue(false)
var TRUE_VALUE = NewValue(true)

var _FALSE_BYTES = []byte("false")
var _TRUE_BYTES = []byte("true")

/*
NewBoolValue returns TRUE_VALUE or FALSE_VALUE.
*/
func NewBoolValue(b bool) Value {
	if b {
		return TRUE_VALUE
	}
	return FALSE_VALUE
}

func (this boolValue) String() string {
	if this {
		return "true"
	}
	return "false"
}

func (this boolValue) MarshalJSON() ([]byte, error) {
	if this {
		return _TRUE_BYTES, nil
	} else {
		return _FALSE_BYTES, nil
	}
}

func (this boolValue) Type() Type { return BOOLEAN }

func (this boolValue) Actual() interface{} {
	return bool(this)
}

func (this boolValue) Equals(other Value) Value {
	switch other := other.(type) {
	case boolValue:
		return NewBoolValue(this == other)
	default:
		if other.Type() == NULL {
			return NULL_VALUE
		}
		return FALSE_VALUE
	}
}

func (this boolValue) EquivalentTo(other Value) bool {
	o, ok := other.(boolValue)
	return ok && this == o
}

/*
false sorts before true.
*/
func (this boolValue) Collate(other Value) int {
	switch other := other.(type) {
	case boolValue:
		if this == other {
			return 0
		} else if !this {
			return -1
		} else {
			return 1
		}
	default:
		return collateTypes(BOOLEAN, other)
	}
}

func (this boolValue) Truth() bool {
	return bool(this)
}

func (this boolValue) Field(field string) (Value, bool) {
	return NULL_VALUE, false
}

func (this boolValue) Elements() Values {
	return nil
}
