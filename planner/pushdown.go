//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/logging"
	base "github.com/couchbase/nullpred/plannerbase"
)

/*
AddFilterConditions attaches a WHERE conjunct to filter so that the
scan of the table rejects rows early. outerJoin is true when filter is
the inner side of an outer join.

x IS NULL on the inner side of an outer join is never attached: it
holds on the null-extended rows the join produces, so removing inner
rows before the join would turn non-matching rows into null-extended
ones that pass it. Such a conjunct is left to the WHERE clause after
the join and DELEGATE is returned.

Other conjuncts on the inner side of an outer join are attached only
if they reject null-extended rows; the WHERE clause would drop those
rows anyway.
*/
func AddFilterConditions(expr expression.Expression, filter *base.TableFilter, outerJoin bool) Pushdown {
	if pred, ok := expr.(*expression.IsNull); ok && !pred.IsNegated() && outerJoin {
		logging.Debuga(func() string {
			return "planner: " + pred.String() + " kept after the outer join on " + filter.Alias()
		})
		return DELEGATE
	}

	if outerJoin && !nullRejExpr(newChkNullRej(filter.Alias()), expr) {
		logging.Debuga(func() string {
			return "planner: " + expr.String() + " does not reject null-extended rows of " + filter.Alias() + ", not pushed"
		})
		return DELEGATE
	}

	filter.AddFilterCondition(expr, outerJoin)
	return APPLIED
}
