//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package plan

import (
	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/datastore"
	"github.com/couchbase/nullpred/expression"
)

/*
IndexScan probes a secondary index with a single span. filter is
applied to the fetched documents as for PrimaryScan.
*/
type IndexScan struct {
	index  datastore.Index
	alias  string
	span   IndexSpan
	filter expression.Expression
}

func NewIndexScan(index datastore.Index, alias string, span IndexSpan, filter expression.Expression) *IndexScan {
	return &IndexScan{
		index:  index,
		alias:  alias,
		span:   span,
		filter: filter,
	}
}

func (this *IndexScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitIndexScan(this)
}

func (this *IndexScan) Index() datastore.Index {
	return this.index
}

func (this *IndexScan) Keyspace() datastore.Keyspace {
	return this.index.Keyspace()
}

func (this *IndexScan) Alias() string {
	return this.alias
}

func (this *IndexScan) Span() IndexSpan {
	return this.span
}

func (this *IndexScan) Filter() expression.Expression {
	return this.filter
}

func (this *IndexScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *IndexScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "IndexScan"}
	r["index"] = this.index.Name()
	r["keyspace"] = this.Keyspace().Name()
	if this.alias != this.Keyspace().Name() {
		r["as"] = this.alias
	}
	r["span"] = this.span.String()

	if this.filter != nil {
		r["filter"] = expression.NewStringer().Visit(this.filter)
	}

	if f != nil {
		f(r)
	}
	return r
}
