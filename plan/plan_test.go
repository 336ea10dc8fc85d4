//  Copyright 2024-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package plan

import (
	"testing"

	json "github.com/couchbase/go_json"
	"github.com/kylelemons/godebug/pretty"

	"github.com/couchbase/nullpred/datastore/memory"
	"github.com/couchbase/nullpred/expression"
	"github.com/couchbase/nullpred/value"
)

type nullSpan struct{}

func (nullSpan) String() string   { return "t2.id <=> NULL" }
func (nullSpan) Key() value.Value { return value.NULL_VALUE }
func (nullSpan) NullSafe() bool   { return true }

func TestExplain(t *testing.T) {
	store := memory.NewDatastore()
	t1, err := store.CreateKeyspace("t1", true)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := store.CreateKeyspace("t2", true)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := t2.CreateIndex("ix_id", "id")
	if err != nil {
		t.Fatal(err)
	}

	id1 := expression.NewColumn("a", "id", value.NUMBER)
	id2 := expression.NewColumn("t2", "id", value.NUMBER)
	op := NewSequence(
		NewPrimaryScan(t1, "a", nil),
		NewNLJoin(true, "t2", expression.NewEq(id1, id2),
			NewIndexScan(idx, "t2", nullSpan{}, expression.NewIsNull(id2))),
		NewFilter(expression.NewIsNull(id2)),
	)

	s, err2 := Explain(op)
	if err2 != nil {
		t.Fatal(err2)
	}

	var actual interface{}
	if err := json.Unmarshal([]byte(s), &actual); err != nil {
		t.Fatalf("explain is not JSON: %v\n%s", err, s)
	}

	expected := map[string]interface{}{
		"#operator": "Sequence",
		"~children": []interface{}{
			map[string]interface{}{
				"#operator": "PrimaryScan",
				"keyspace":  "t1",
				"as":        "a",
			},
			map[string]interface{}{
				"#operator": "NestedLoopJoin",
				"alias":     "t2",
				"on_clause": "(a.id = t2.id)",
				"outer":     true,
				"~child": map[string]interface{}{
					"#operator": "IndexScan",
					"index":     "ix_id",
					"keyspace":  "t2",
					"span":      "t2.id <=> NULL",
					"filter":    "(t2.id IS NULL)",
				},
			},
			map[string]interface{}{
				"#operator": "Filter",
				"condition": "(t2.id IS NULL)",
			},
		},
	}

	if d := pretty.Compare(actual, expected); d != "" {
		t.Errorf("unexpected explain (-got +want):\n%s", d)
	}
}
