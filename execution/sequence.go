//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package execution

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/logging"
	"github.com/couchbase/nullpred/plan"
	"github.com/couchbase/nullpred/value"
)

type Sequence struct {
	children []Operator
}

func NewSequence(children ...Operator) *Sequence {
	return &Sequence{children}
}

func (this *Sequence) Run(context *Context, input value.Values) (value.Values, errors.Error) {
	if err := this.prefetch(context); err != nil {
		return nil, err
	}

	rows := input
	for _, child := range this.children {
		var err errors.Error
		rows, err = child.Run(context, rows)
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

/*
Join children are independent of the rows flowing through the
sequence; their scans run concurrently before the pipeline starts.
*/
func (this *Sequence) prefetch(context *Context) errors.Error {
	var group errgroup.Group
	for _, child := range this.children {
		join, ok := child.(*NLJoin)
		if !ok {
			continue
		}
		group.Go(func() error {
			if err := join.prefetch(context); err != nil {
				return err
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		if e, ok := err.(errors.Error); ok {
			return e
		}
		return errors.NewExecutionInternalError(err.Error())
	}
	return nil
}

/*
Execute builds and runs a plan, returning the rows in scan order.
*/
func Execute(context *Context, op plan.Operator) (rows value.Values, err errors.Error) {
	defer func() {
		r := recover()
		if r != nil {
			logging.Severef("execution: request %s: panic running plan: %v", context.RequestId(), r)
			rows = nil
			err = errors.NewExecutionPanicError(nil, fmt.Sprintf("Panic: %v", r))
		}
	}()

	exec, err := Build(op)
	if err != nil {
		return nil, err
	}

	rows, err = exec.Run(context, nil)
	if err != nil {
		logging.Warna(func() string {
			return fmt.Sprintf("execution: request %s failed: %v", context.RequestId(), err)
		})
		return nil, err
	}

	logging.Debugf("execution: request %s: %d rows, %d scanned, %d filtered",
		context.RequestId(), len(rows), context.RowsScanned(), context.RowsFiltered())
	return rows, nil
}
