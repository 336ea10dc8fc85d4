//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package errors

import (
	"fmt"
)

// Execution errors - errors that are created in the expression and execution packages

func NewExecutionPanicError(e error, msg string) Error {
	return &err{level: EXCEPTION, ICode: 5001, IKey: "execution.panic", ICause: e,
		InternalMsg: msg, InternalCaller: CallerN(1)}
}

func NewExecutionInternalError(what string) Error {
	return &err{level: EXCEPTION, ICode: 5002, IKey: "execution.internal_error",
		InternalMsg: fmt.Sprintf("Execution internal error: %v", what), InternalCaller: CallerN(1)}
}

const EVALUATION_ERROR = 5010

func NewEvaluationError(e error, termType string) Error {
	return &err{level: EXCEPTION, ICode: EVALUATION_ERROR, IKey: "execution.evaluation_error", ICause: e,
		InternalMsg: fmt.Sprintf("Error evaluating %s.", termType), InternalCaller: CallerN(1)}
}

const EXECUTION_CANCELLED = 5025

func NewExecutionCancelledError(e error) Error {
	return &err{level: EXCEPTION, ICode: EXECUTION_CANCELLED, IKey: "execution.cancelled", ICause: e,
		InternalMsg: "Execution cancelled", InternalCaller: CallerN(1)}
}
