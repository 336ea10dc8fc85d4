//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package value

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestTypeRecognition(t *testing.T) {

	var tests = []struct {
		input        interface{}
		expectedType Type
	}{
		{nil, NULL},
		{true, BOOLEAN},
		{3.65, NUMBER},
		{-3, NUMBER},
		{int64(7), NUMBER},
		{"hello", STRING},
		{[]interface{}{1, nil}, ROW},
		{Values{NULL_VALUE}, ROW},
		{map[string]interface{}{"id": 7}, OBJECT},
		{NULL_VALUE, NULL},
	}

	for _, test := range tests {
		val := NewValue(test.input)
		actualType := val.Type()
		if actualType != test.expectedType {
			t.Errorf("Expected type of %v to be %v, got %v", test.input, test.expectedType, actualType)
		}
	}
}

func TestEqualsIsThreeValued(t *testing.T) {
	var tests = []struct {
		first, second Value
		expected      Value
	}{
		{NewValue(1), NewValue(1), TRUE_VALUE},
		{NewValue(1), NewValue(2), FALSE_VALUE},
		{NewValue(1), NewValue("1"), FALSE_VALUE},
		{NewValue(1), NULL_VALUE, NULL_VALUE},
		{NULL_VALUE, NewValue(1), NULL_VALUE},
		{NULL_VALUE, NULL_VALUE, NULL_VALUE},
		{NewValue([]interface{}{1, 2}), NewValue([]interface{}{1, 2}), TRUE_VALUE},
		{NewValue([]interface{}{1, nil}), NewValue([]interface{}{1, 2}), NULL_VALUE},
		{NewValue([]interface{}{3, nil}), NewValue([]interface{}{1, 2}), FALSE_VALUE},
		{NewValue([]interface{}{1}), NewValue([]interface{}{1, 2}), FALSE_VALUE},
	}

	for _, test := range tests {
		actual := test.first.Equals(test.second)
		if actual != test.expected {
			t.Errorf("%v = %v: expected %v, got %v", test.first, test.second, test.expected, actual)
		}
	}
}

func TestEquivalentToIsNullSafe(t *testing.T) {
	if !NULL_VALUE.EquivalentTo(NULL_VALUE) {
		t.Errorf("expected NULL to be equivalent to NULL")
	}
	if NULL_VALUE.EquivalentTo(ZERO_VALUE) || ZERO_VALUE.EquivalentTo(NULL_VALUE) {
		t.Errorf("expected NULL not to be equivalent to 0")
	}

	a := NewValue([]interface{}{nil, "x"})
	b := NewValue([]interface{}{nil, "x"})
	if !a.EquivalentTo(b) {
		t.Errorf("expected %v to be equivalent to %v", a, b)
	}
}

func TestCollateOrder(t *testing.T) {
	ordered := Values{
		NULL_VALUE,
		FALSE_VALUE,
		TRUE_VALUE,
		NewValue(-1),
		NewValue(2.5),
		EMPTY_STRING_VALUE,
		NewValue("abc"),
		NewValue([]interface{}{nil}),
		NewValue([]interface{}{1}),
		NewValue([]interface{}{1, 2}),
		NewValue(map[string]interface{}{"a": 1}),
	}

	for i := 0; i < len(ordered); i++ {
		if c := ordered[i].Collate(ordered[i]); c != 0 {
			t.Errorf("expected %v to collate equal to itself, got %d", ordered[i], c)
		}
		for j := i + 1; j < len(ordered); j++ {
			if c := ordered[i].Collate(ordered[j]); c >= 0 {
				t.Errorf("expected %v < %v, got %d", ordered[i], ordered[j], c)
			}
			if c := ordered[j].Collate(ordered[i]); c <= 0 {
				t.Errorf("expected %v > %v, got %d", ordered[j], ordered[i], c)
			}
		}
	}
}

func TestRowElements(t *testing.T) {
	row := NewRowValue(Values{NewValue(1), nil, NewValue("a")})
	if row.Type() != ROW {
		t.Fatalf("expected ROW, got %v", row.Type())
	}

	expected := []interface{}{1.0, nil, "a"}
	if diff := pretty.Compare(row.Actual(), expected); diff != "" {
		t.Errorf("unexpected row contents (-got +want):\n%s", diff)
	}

	if row.Elements()[1] != NULL_VALUE {
		t.Errorf("expected nil component to become NULL_VALUE")
	}

	if NewValue(1).Elements() != nil || NULL_VALUE.Elements() != nil {
		t.Errorf("expected scalars to have no elements")
	}

	if row.String() != "ROW(1, null, 'a')" {
		t.Errorf("unexpected row text %s", row.String())
	}
}

func TestObjectField(t *testing.T) {
	doc := NewValue(map[string]interface{}{"id": 1, "name": nil})

	v, ok := doc.Field("id")
	if !ok || !v.EquivalentTo(ONE_VALUE) {
		t.Errorf("expected id 1, got %v", v)
	}

	v, ok = doc.Field("name")
	if !ok || v.Type() != NULL {
		t.Errorf("expected explicit null name, got %v %v", v, ok)
	}

	v, ok = doc.Field("absent")
	if ok || v.Type() != NULL {
		t.Errorf("expected absent field to read as NULL, got %v %v", v, ok)
	}

	scope := NewScopeValue(1)
	scope.SetField("t1", doc)
	v, _ = scope.Field("t1")
	if !v.EquivalentTo(doc) {
		t.Errorf("expected scope to carry the document")
	}
}

func TestMarshalJSON(t *testing.T) {
	var tests = []struct {
		input    Value
		expected string
	}{
		{NULL_VALUE, `null`},
		{TRUE_VALUE, `true`},
		{NewValue(1.5), `1.5`},
		{NewValue("it's"), `"it's"`},
		{NewValue([]interface{}{1, nil, "a"}), `[1,null,"a"]`},
	}

	for _, test := range tests {
		bytes, err := test.input.MarshalJSON()
		if err != nil {
			t.Errorf("unexpected error marshaling %v: %v", test.input, err)
			continue
		}
		if string(bytes) != test.expected {
			t.Errorf("expected %s, got %s", test.expected, string(bytes))
		}
	}
}

func TestTypeIsScalar(t *testing.T) {
	for _, typ := range []Type{NULL, BOOLEAN, NUMBER, STRING} {
		if !typ.IsScalar() {
			t.Errorf("expected %v to be scalar", typ)
		}
	}
	for _, typ := range []Type{UNKNOWN, ROW, OBJECT} {
		if typ.IsScalar() {
			t.Errorf("expected %v not to be scalar", typ)
		}
	}
}
