//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"fmt"

	base "github.com/couchbase/nullpred/plannerbase"
)

/*
Outcome of a planner decision point. DELEGATE means the decision point
did nothing and the general machinery keeps full responsibility for
the predicate; APPLIED means it acted.
*/
type Outcome int

const (
	DELEGATE = Outcome(iota)
	APPLIED
)

func (this Outcome) String() string {
	switch this {
	case DELEGATE:
		return "delegate"
	case APPLIED:
		return "applied"
	default:
		return fmt.Sprintf("Outcome(%d)", int(this))
	}
}

/*
SargResult is the outcome of index condition synthesis. Condition is
set only when Outcome is APPLIED.
*/
type SargResult struct {
	Outcome   Outcome
	Condition *base.IndexCondition
}

var _DELEGATE_SARG = SargResult{Outcome: DELEGATE}

func applied(cond *base.IndexCondition) SargResult {
	return SargResult{Outcome: APPLIED, Condition: cond}
}

/*
Pushdown is the outcome of filter pushdown.
*/
type Pushdown = Outcome
