//  Copyright 2016-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package value

import (
	"math"
	"strconv"

	json "github.com/couchbase/go_json"
)

type numberValue float64

var ZERO_VALUE = NewValue(0.0)
var ONE_VALUE = NewValue(1.0)

func (this numberValue) String() string {
	return strconv.FormatFloat(float64(this), 'f', -1, 64)
}

/*
NaN and infinities have no JSON form; they are rendered as strings.
*/
func (this numberValue) MarshalJSON() ([]byte, error) {
	f := float64(this)
	switch {
	case math.IsNaN(f):
		return json.Marshal("NaN")
	case math.IsInf(f, 1):
		return json.Marshal("+Infinity")
	case math.IsInf(f, -1):
		return json.Marshal("-Infinity")
	}
	return json.Marshal(f)
}

func (this numberValue) Type() Type { return NUMBER }

func (this numberValue) Actual() interface{} {
	return float64(this)
}

func (this numberValue) Equals(other Value) Value {
	switch other := other.(type) {
	case numberValue:
		return NewBoolValue(this == other)
	default:
		if other.Type() == NULL {
			return NULL_VALUE
		}
		return FALSE_VALUE
	}
}

func (this numberValue) EquivalentTo(other Value) bool {
	o, ok := other.(numberValue)
	return ok && this == o
}

func (this numberValue) Collate(other Value) int {
	switch other := other.(type) {
	case numberValue:
		switch {
		case this < other:
			return -1
		case this > other:
			return 1
		default:
			return 0
		}
	default:
		return collateTypes(NUMBER, other)
	}
}

func (this numberValue) Truth() bool {
	return this != 0 && !math.IsNaN(float64(this))
}

func (this numberValue) Field(field string) (Value, bool) {
	return NULL_VALUE, false
}

func (this numberValue) Elements() Values {
	return nil
}
