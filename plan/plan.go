//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package plan provides query plans.
*/
package plan

import (
	"fmt"

	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/value"
)

type Operators []Operator

type Operator interface {
	json.Marshaler // JSON encoding; used by EXPLAIN

	MarshalBase(f func(map[string]interface{})) map[string]interface{} // JSON encoding helper

	Accept(visitor Visitor) (interface{}, error) // Visitor pattern
}

/*
IndexSpan is the single-key probe an IndexScan performs.
*/
type IndexSpan interface {
	fmt.Stringer

	Key() value.Value
	NullSafe() bool
}

type Visitor interface {
	// Scan
	VisitPrimaryScan(op *PrimaryScan) (interface{}, error)
	VisitIndexScan(op *IndexScan) (interface{}, error)

	// Join
	VisitNLJoin(op *NLJoin) (interface{}, error)

	// Filter
	VisitFilter(op *Filter) (interface{}, error)

	// Sequence
	VisitSequence(op *Sequence) (interface{}, error)
}

/*
Explain renders an operator tree as indented JSON.
*/
func Explain(op Operator) (string, error) {
	b, err := json.MarshalIndent(op, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
