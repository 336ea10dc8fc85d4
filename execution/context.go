//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package execution runs plans against a datastore. Rows are OBJECT
values mapping each alias in scope to its document; a null-extended
alias maps to NULL.
*/
package execution

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/couchbase/nullpred/errors"
)

/*
Context carries the request context and the counters of one
execution.
*/
type Context struct {
	ctx          context.Context
	requestId    string
	rowsScanned  int64
	rowsFiltered int64
}

func NewContext(ctx context.Context) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		ctx:       ctx,
		requestId: uuid.New().String(),
	}
}

func (this *Context) RequestId() string {
	return this.requestId
}

func (this *Context) GoContext() context.Context {
	return this.ctx
}

/*
Checked between rows: a cancelled request stops at the next row.
*/
func (this *Context) Stopped() errors.Error {
	if err := this.ctx.Err(); err != nil {
		return errors.NewExecutionCancelledError(err)
	}
	return nil
}

func (this *Context) addScanned(n int) {
	atomic.AddInt64(&this.rowsScanned, int64(n))
}

func (this *Context) addFiltered(n int) {
	atomic.AddInt64(&this.rowsFiltered, int64(n))
}

func (this *Context) RowsScanned() int64 {
	return atomic.LoadInt64(&this.rowsScanned)
}

func (this *Context) RowsFiltered() int64 {
	return atomic.LoadInt64(&this.rowsFiltered)
}
