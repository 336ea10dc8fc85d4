//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package execution

import (
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/value"
)

/*
Operator produces the rows of one plan operator. input is the output
of the preceding operator in the sequence, nil for the first one.
*/
type Operator interface {
	Run(context *Context, input value.Values) (value.Values, errors.Error)
}
