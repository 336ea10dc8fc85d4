//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package value

type nullValue struct {
}

/*
The single NULL value. Identity comparison against NULL_VALUE is
valid, but Type() == NULL is preferred.
*/
var NULL_VALUE Value = &nullValue{}

func NewNullValue() Value {
	return NULL_VALUE
}

var _NULL_BYTES = []byte("null")

func (this *nullValue) String() string {
	return "null"
}

func (this *nullValue) MarshalJSON() ([]byte, error) {
	return _NULL_BYTES, nil
}

func (this *nullValue) Type() Type { return NULL }

func (this *nullValue) Actual() interface{} {
	return nil
}

/*
NULL compared to anything is NULL.
*/
func (this *nullValue) Equals(other Value) Value {
	return NULL_VALUE
}

func (this *nullValue) EquivalentTo(other Value) bool {
	return other.Type() == NULL
}

func (this *nullValue) Collate(other Value) int {
	return collateTypes(NULL, other)
}

func (this *nullValue) Truth() bool {
	return false
}

func (this *nullValue) Field(field string) (Value, bool) {
	return NULL_VALUE, false
}

func (this *nullValue) Elements() Values {
	return nil
}
