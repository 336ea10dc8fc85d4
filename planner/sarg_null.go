//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/logging"
	base "github.com/couchbase/nullpred/plannerbase"
	"github.com/couchbase/nullpred/value"
)

/*
IndexConditionForNull turns column IS NULL into the null-safe index
condition column <=> NULL for filter. Ordinary equality with NULL
never matches, so only the null-safe form finds the NULL entries.

It delegates when the keyspace cannot be probed by comparison, when
the operand is not a column of filter, when the column is row typed,
and for IS NOT NULL, which no single equality can express.
*/
func IndexConditionForNull(pred *expression.IsNull, filter *base.TableFilter) SargResult {
	if !filter.Keyspace().IsQueryComparable() {
		logging.Tracef("planner: %v: keyspace %s has no comparison access", pred, filter.Keyspace().Name())
		return _DELEGATE_SARG
	}

	col, ok := expression.IsColumn(pred.Operand())
	if !ok {
		return _DELEGATE_SARG
	}

	if expression.OwningSource(col) != expression.Source(filter) {
		return _DELEGATE_SARG
	}

	if col.Type() == value.ROW {
		logging.Severef("%v", errors.NewPlanInternalError(
			"row typed column "+col.String()+" used as a null test operand"))
		return _DELEGATE_SARG
	}

	if pred.IsNegated() {
		return _DELEGATE_SARG
	}

	cond := base.NewIndexCondition(base.EQUAL_NULL_SAFE, col, value.NULL_VALUE, pred)
	filter.AddIndexCondition(cond)
	logging.Debugf("planner: index condition %v for %s", cond, filter.Alias())
	return applied(cond)
}
