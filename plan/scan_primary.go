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
PrimaryScan reads every document of a keyspace. filter, when set,
holds the conditions pushed down to this keyspace and is evaluated on
each document before it leaves the scan.
*/
type PrimaryScan struct {
	keyspace datastore.Keyspace
	alias    string
	filter   expression.Expression
}

func NewPrimaryScan(keyspace datastore.Keyspace, alias string, filter expression.Expression) *PrimaryScan {
	return &PrimaryScan{
		keyspace: keyspace,
		alias:    alias,
		filter:   filter,
	}
}

func (this *PrimaryScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitPrimaryScan(this)
}

func (this *PrimaryScan) Keyspace() datastore.Keyspace {
	return this.keyspace
}

func (this *PrimaryScan) Alias() string {
	return this.alias
}

func (this *PrimaryScan) Filter() expression.Expression {
	return this.filter
}

func (this *PrimaryScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *PrimaryScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "PrimaryScan"}
	r["keyspace"] = this.keyspace.Name()
	if this.alias != this.keyspace.Name() {
		r["as"] = this.alias
	}

	if this.filter != nil {
		r["filter"] = expression.NewStringer().Visit(this.filter)
	}

	if f != nil {
		f(r)
	}
	return r
}
