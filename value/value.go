//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package value represents the data model of the expression engine. It
is the in memory representation of the data in flight: NULL, scalars,
row (tuple) values and the objects that carry a row of a keyspace.
*/
package value

import (
	"fmt"
	"reflect"

	json "github.com/couchbase/go_json"
)

/*
The data types supported by Value.
*/
type Type int

/*
UNKNOWN is a static type only: it marks an expression whose type has
not been resolved yet. No runtime value ever has type UNKNOWN. The
remaining types are listed in collation order.
*/
const (
	UNKNOWN = Type(iota) // Unresolved static type
	NULL                 // Explicit null
	BOOLEAN              // Boolean
	NUMBER               // Number
	STRING               // String
	ROW                  // Row value, e.g. (a, b)
	OBJECT               // Named fields; carries documents and joined rows
)

func (this Type) String() string {
	return _TYPE_NAMES[this]
}

var _TYPE_NAMES = []string{
	UNKNOWN: "unknown",
	NULL:    "null",
	BOOLEAN: "boolean",
	NUMBER:  "number",
	STRING:  "string",
	ROW:     "row",
	OBJECT:  "object",
}

/*
IsScalar is true for the resolved, non composite types. NULL counts
as a scalar: a NULL operand is tested by the scalar rule.
*/
func (this Type) IsScalar() bool {
	switch this {
	case NULL, BOOLEAN, NUMBER, STRING:
		return true
	default:
		return false
	}
}

const _MARSHAL_ERROR = "Unexpected marshal error on valid data."

/*
Value collections
*/
type Values []Value

/*
The Value interface. Every variant of the data model implements it.
*/
type Value interface {
	/*
	   String marshaling.
	*/
	fmt.Stringer

	/*
	   JSON marshaling.
	*/
	json.Marshaler

	/*
	   Returns the type of the value.
	*/
	Type() Type

	/*
	   Native Go representation.
	*/
	Actual() interface{}

	/*
	   SQL equality. Returns NULL_VALUE if either side is NULL,
	   otherwise TRUE_VALUE or FALSE_VALUE.
	*/
	Equals(other Value) Value

	/*
	   Null-safe equivalence: NULL is equivalent to NULL.
	*/
	EquivalentTo(other Value) bool

	/*
	   Returns -int, 0 or +int depending on if the receiver sorts
	   less than, equal to, or greater than other. Types sort in
	   the order they are declared, so NULL sorts first.
	*/
	Collate(other Value) int

	/*
	   Boolean interpretation of the value.
	*/
	Truth() bool

	/*
	   Field access for OBJECT values. All other types return
	   NULL_VALUE, false.
	*/
	Field(field string) (Value, bool)

	/*
	   Components of a ROW value, nil for all other types.
	*/
	Elements() Values
}

/*
NewValue converts native Go data to a Value. Slices become ROW values
and string keyed maps become OBJECT values.
*/
func NewValue(val interface{}) Value {
	switch val := val.(type) {
	case nil:
		return NULL_VALUE
	case Value:
		return val
	case bool:
		return boolValue(val)
	case string:
		return stringValue(val)
	case float64:
		return numberValue(val)
	case float32:
		return numberValue(val)
	case int:
		return numberValue(val)
	case int32:
		return numberValue(val)
	case int64:
		return numberValue(val)
	case []interface{}:
		return newRowFromSlice(val)
	case Values:
		return NewRowValue(val)
	case []Value:
		return NewRowValue(val)
	case map[string]interface{}:
		return NewObjectValue(val)
	default:
		for _, c := range _CONVERSIONS {
			if reflect.TypeOf(val).ConvertibleTo(c) {
				return NewValue(reflect.ValueOf(val).Convert(c).Interface())
			}
		}

		panic(fmt.Sprintf("Cannot create value for type %T.", val))
	}
}

var _CONVERSIONS = []reflect.Type{
	reflect.TypeOf(0.0),
	reflect.TypeOf(""),
	reflect.TypeOf(false),
}

/*
IsNull is true for NULL_VALUE and for nil.
*/
func IsNull(val Value) bool {
	return val == nil || val.Type() == NULL
}

func marshalString(val Value) string {
	bytes, err := val.MarshalJSON()
	if err != nil {
		panic(_MARSHAL_ERROR)
	}
	return string(bytes)
}

func collateTypes(this Type, other Value) int {
	return int(this - other.Type())
}
