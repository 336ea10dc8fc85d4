//  Copyright 2024-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"testing"

	json "github.com/couchbase/go_json"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/nullpred/algebra"
	"github.com/couchbase/nullpred/datastore/memory"
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/plan"
	base "github.com/couchbase/nullpred/plannerbase"
	"github.com/couchbase/nullpred/value"
)

func newTestStore(t *testing.T) *memory.Store {
	store := memory.NewDatastore()

	t1, err := store.CreateKeyspace("t1", true)
	require.Nil(t, err)
	t2, err := store.CreateKeyspace("t2", true)
	require.Nil(t, err)
	_, err = t2.CreateIndex("ix_t2_id", "id")
	require.Nil(t, err)
	_, err = t1.CreateIndex("ix_t1_id", "id")
	require.Nil(t, err)
	flat, err := store.CreateKeyspace("flat", false)
	require.Nil(t, err)
	_, err = flat.CreateIndex("ix_flat_id", "id")
	require.Nil(t, err)

	return store
}

func newTestFilter(t *testing.T, store *memory.Store, name string, outer bool) *base.TableFilter {
	ks, err := store.KeyspaceByName(name)
	require.Nil(t, err)
	return base.NewTableFilter(name, ks, outer, nil)
}

func TestIndexConditionForNull(t *testing.T) {
	store := newTestStore(t)
	t1 := newTestFilter(t, store, "t1", false)
	t2 := newTestFilter(t, store, "t2", false)
	flat := newTestFilter(t, store, "flat", false)

	id2 := expression.NewColumn("t2", "id", value.NUMBER).Bind(t2)

	var tests = []struct {
		name    string
		pred    *expression.IsNull
		filter  *base.TableFilter
		outcome Outcome
	}{
		{"column of the filter", expression.NewIsNull(id2), t2, APPLIED},
		{"unknown column type", expression.NewIsNull(expression.NewColumn("t2", "v", value.UNKNOWN).Bind(t2)), t2, APPLIED},
		{"keyspace without comparison access", expression.NewIsNull(expression.NewColumn("flat", "id", value.NUMBER).Bind(flat)), flat, DELEGATE},
		{"constant operand", expression.NewIsNull(expression.NULL_EXPR), t2, DELEGATE},
		{"row operand", expression.NewIsNull(expression.NewRowConstruct(id2, id2)), t2, DELEGATE},
		{"column of another filter", expression.NewIsNull(id2), t1, DELEGATE},
		{"unbound column", expression.NewIsNull(expression.NewColumn("t2", "id", value.NUMBER)), t2, DELEGATE},
		{"row typed column", expression.NewIsNull(expression.NewColumn("t2", "r", value.ROW).Bind(t2)), t2, DELEGATE},
		{"negated", expression.NewIsNotNull(id2), t2, DELEGATE},
	}

	for _, test := range tests {
		before := len(test.filter.IndexConditions())
		res := IndexConditionForNull(test.pred, test.filter)
		require.Equal(t, test.outcome, res.Outcome, test.name)

		switch res.Outcome {
		case APPLIED:
			require.NotNil(t, res.Condition, test.name)
			require.Equal(t, base.EQUAL_NULL_SAFE, res.Condition.Comparison(), test.name)
			require.True(t, res.Condition.NullSafe(), test.name)
			require.Equal(t, value.NULL, res.Condition.Key().Type(), test.name)
			require.Same(t, test.pred.Operand(), expression.Expression(res.Condition.Column()), test.name)
			require.Len(t, test.filter.IndexConditions(), before+1, test.name)
		case DELEGATE:
			require.Nil(t, res.Condition, test.name)
			require.Len(t, test.filter.IndexConditions(), before, test.name)
		}
	}
}

func TestIndexConditionMatches(t *testing.T) {
	col := expression.NewColumn("t2", "id", value.NUMBER)
	nullSafe := base.NewIndexCondition(base.EQUAL_NULL_SAFE, col, value.NULL_VALUE, nil)
	equal := base.NewIndexCondition(base.EQUAL, col, value.NULL_VALUE, nil)

	require.True(t, nullSafe.Matches(value.NULL_VALUE))
	require.True(t, nullSafe.Matches(nil))
	require.False(t, nullSafe.Matches(value.NewValue(0)))
	require.False(t, equal.Matches(value.NULL_VALUE))
	require.False(t, equal.Matches(value.NewValue(0)))

	require.Equal(t, "t2.id <=> NULL", nullSafe.String())
	require.Equal(t, "t2.id = 7", base.NewIndexCondition(base.EQUAL, col, value.NewValue(7), nil).String())

	b, err := json.Marshal(nullSafe)
	require.NoError(t, err)
	require.JSONEq(t, `{"column":"t2.id","comparison":"<=>","key":null}`, string(b))
}

func TestAddFilterConditions(t *testing.T) {
	store := newTestStore(t)
	t2 := newTestFilter(t, store, "t2", true)
	id := expression.NewColumn("t2", "id", value.NUMBER).Bind(t2)
	v := expression.NewColumn("t2", "v", value.NUMBER).Bind(t2)

	require.Equal(t, DELEGATE, AddFilterConditions(expression.NewIsNull(id), t2, true))
	require.Empty(t, t2.AllFilters())

	notRejecting := expression.NewOr(expression.NewEq(v, expression.NewConstant(1)), expression.NewIsNull(id))
	require.Equal(t, DELEGATE, AddFilterConditions(notRejecting, t2, true))
	require.Empty(t, t2.AllFilters())

	require.Equal(t, APPLIED, AddFilterConditions(expression.NewIsNotNull(id), t2, true))
	require.Len(t, t2.JoinFilters(), 1)
	require.True(t, t2.JoinFilters()[0].IsJoin())
	require.Empty(t, t2.Filters())

	inner := newTestFilter(t, store, "t2", false)
	require.Equal(t, APPLIED, AddFilterConditions(expression.NewIsNull(id), inner, false))
	require.Equal(t, APPLIED, AddFilterConditions(expression.NewIsNull(id), inner, false))
	require.Len(t, inner.Filters(), 1)
	require.Equal(t, "(t2.id IS NULL)", inner.AllFilters().Condition().String())
}

func TestNullRejection(t *testing.T) {
	id := expression.NewColumn("t2", "id", value.NUMBER)
	other := expression.NewColumn("t1", "id", value.NUMBER)

	var tests = []struct {
		expr    expression.Expression
		nullRej bool
	}{
		{expression.NewIsNotNull(id), true},
		{expression.NewIsNull(id), false},
		{expression.NewIsNotNull(other), false},
		{expression.NewEq(id, other), true},
		{expression.NewNot(expression.NewEq(id, other)), true},
		{expression.NewNot(expression.NewIsNull(expression.NewRowConstruct(id, other))), false},
		{expression.NewIsNotNull(expression.NewRowConstruct(id, other)), true},
		{expression.NewIsNotNull(expression.NewIsNull(id)), false},
		{expression.NewAnd(expression.NewIsNull(other), expression.NewIsNotNull(id)), true},
		{expression.NewOr(expression.NewIsNotNull(id), expression.NewIsNull(other)), false},
		{expression.NewOr(expression.NewIsNotNull(id), expression.NewEq(id, expression.NewConstant(1))), true},
	}

	for _, test := range tests {
		require.Equal(t, test.nullRej, nullRejExpr(newChkNullRej("t2"), test.expr), test.expr.String())
	}
}

func explain(t *testing.T, op plan.Operator) []map[string]interface{} {
	b, err := json.Marshal(op)
	require.NoError(t, err)

	var seq struct {
		Children []map[string]interface{} `json:"~children"`
	}
	require.NoError(t, json.Unmarshal(b, &seq))
	return seq.Children
}

func leftJoinT2(where expression.Expression) *algebra.Select {
	id1 := expression.NewColumn("t1", "id", value.NUMBER)
	id2 := expression.NewColumn("t2", "id", value.NUMBER)
	return algebra.NewSelect(algebra.NewKeyspaceTerm("t1", ""),
		[]*algebra.AnsiJoin{algebra.NewAnsiJoin(algebra.NewKeyspaceTerm("t2", ""), true, expression.NewEq(id1, id2))},
		where)
}

func TestBuildOuterJoinIsNull(t *testing.T) {
	store := newTestStore(t)
	where := expression.NewIsNull(expression.NewColumn("t2", "id", value.NUMBER))
	stmt := leftJoinT2(where)

	op, err := NewPlanner(store, DefaultConfig()).Build(stmt)
	require.Nil(t, err)

	ops := explain(t, op)
	require.Len(t, ops, 3)
	require.Equal(t, "PrimaryScan", ops[0]["#operator"])
	require.Equal(t, "NestedLoopJoin", ops[1]["#operator"])
	require.Equal(t, true, ops[1]["outer"])

	child := ops[1]["~child"].(map[string]interface{})
	require.Equal(t, "PrimaryScan", child["#operator"])
	require.NotContains(t, child, "filter")

	require.Equal(t, "Filter", ops[2]["#operator"])
	require.Equal(t, "(t2.id IS NULL)", ops[2]["condition"])

	// the statement is left as it was
	require.Equal(t, "(t2.id IS NULL)", stmt.Where().String())
	require.Nil(t, expression.OwningSource(where.Operand()))
}

func TestBuildOuterToInner(t *testing.T) {
	store := newTestStore(t)

	for _, where := range []expression.Expression{
		expression.NewIsNotNull(expression.NewColumn("t2", "id", value.NUMBER)),
		expression.NewNot(expression.NewIsNull(expression.NewColumn("t2", "id", value.NUMBER))),
	} {
		op, err := NewPlanner(store, DefaultConfig()).Build(leftJoinT2(where))
		require.Nil(t, err)

		ops := explain(t, op)
		require.Len(t, ops, 3)
		require.NotContains(t, ops[1], "outer", where.String())

		child := ops[1]["~child"].(map[string]interface{})
		require.Equal(t, "(t2.id IS NOT NULL)", child["filter"], where.String())
		require.Equal(t, "(t2.id IS NOT NULL)", ops[2]["condition"], where.String())
	}

	config := DefaultConfig()
	config.OuterToInner = false
	op, err := NewPlanner(store, config).Build(leftJoinT2(
		expression.NewIsNotNull(expression.NewColumn("t2", "id", value.NUMBER))))
	require.Nil(t, err)

	ops := explain(t, op)
	require.Equal(t, true, ops[1]["outer"])
	child := ops[1]["~child"].(map[string]interface{})
	require.Equal(t, "(t2.id IS NOT NULL)", child["filter"])
}

func TestBuildIndexScan(t *testing.T) {
	store := newTestStore(t)

	single := func(keyspace string, where expression.Expression) *algebra.Select {
		return algebra.NewSelect(algebra.NewKeyspaceTerm(keyspace, ""), nil, where)
	}

	op, err := NewPlanner(store, DefaultConfig()).Build(
		single("t2", expression.NewIsNull(expression.NewColumn("t2", "id", value.NUMBER))))
	require.Nil(t, err)
	ops := explain(t, op)
	require.Equal(t, "IndexScan", ops[0]["#operator"])
	require.Equal(t, "ix_t2_id", ops[0]["index"])
	require.Equal(t, "t2.id <=> NULL", ops[0]["span"])

	op, err = NewPlanner(store, DefaultConfig()).Build(
		single("t2", expression.NewEq(expression.NewConstant(3), expression.NewColumn("t2", "id", value.NUMBER))))
	require.Nil(t, err)
	ops = explain(t, op)
	require.Equal(t, "IndexScan", ops[0]["#operator"])
	require.Equal(t, "t2.id = 3", ops[0]["span"])

	for _, where := range []expression.Expression{
		expression.NewIsNotNull(expression.NewColumn("t2", "id", value.NUMBER)),
		expression.NewEq(expression.NewColumn("t2", "id", value.NUMBER), expression.NULL_EXPR),
	} {
		op, err = NewPlanner(store, DefaultConfig()).Build(single("t2", where))
		require.Nil(t, err)
		require.Equal(t, "PrimaryScan", explain(t, op)[0]["#operator"], where.String())
	}

	op, err = NewPlanner(store, DefaultConfig()).Build(
		single("flat", expression.NewIsNull(expression.NewColumn("flat", "id", value.NUMBER))))
	require.Nil(t, err)
	require.Equal(t, "PrimaryScan", explain(t, op)[0]["#operator"])

	config := DefaultConfig()
	config.IndexConditions = false
	op, err = NewPlanner(store, config).Build(
		single("t2", expression.NewIsNull(expression.NewColumn("t2", "id", value.NUMBER))))
	require.Nil(t, err)
	require.Equal(t, "PrimaryScan", explain(t, op)[0]["#operator"])
}

func TestBuildOnclauseIsNull(t *testing.T) {
	store := newTestStore(t)
	id1 := expression.NewColumn("t1", "id", value.NUMBER)
	v2 := expression.NewColumn("t2", "id", value.NUMBER)
	on := expression.NewAnd(expression.NewEq(id1, expression.NewConstant(1)), expression.NewIsNull(v2))
	stmt := algebra.NewSelect(algebra.NewKeyspaceTerm("t1", ""),
		[]*algebra.AnsiJoin{algebra.NewAnsiJoin(algebra.NewKeyspaceTerm("t2", ""), true, on)}, nil)

	op, err := NewPlanner(store, DefaultConfig()).Build(stmt)
	require.Nil(t, err)

	ops := explain(t, op)
	require.Len(t, ops, 2)
	child := ops[1]["~child"].(map[string]interface{})
	require.Equal(t, "IndexScan", child["#operator"])
	require.Equal(t, "t2.id <=> NULL", child["span"])
	require.Equal(t, "(t2.id IS NULL)", child["filter"])
}

func TestBuildErrors(t *testing.T) {
	store := newTestStore(t)
	p := NewPlanner(store, DefaultConfig())

	_, err := p.Build(algebra.NewSelect(algebra.NewKeyspaceTerm("nope", ""), nil, nil))
	require.NotNil(t, err)
	require.Equal(t, errors.ErrorCode(errors.KEYSPACE_NOT_FOUND), err.Code())

	_, err = p.Build(algebra.NewSelect(algebra.NewKeyspaceTerm("t1", ""),
		[]*algebra.AnsiJoin{algebra.NewAnsiJoin(algebra.NewKeyspaceTerm("t2", "t1"), false, nil)}, nil))
	require.NotNil(t, err)
	require.Equal(t, errors.ErrorCode(errors.DUPLICATE_ALIAS), err.Code())

	_, err = p.Build(algebra.NewSelect(algebra.NewKeyspaceTerm("t1", ""), nil,
		expression.NewIsNull(expression.NewColumn("t9", "id", value.NUMBER))))
	require.NotNil(t, err)
}
