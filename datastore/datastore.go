//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package datastore provides the interfaces the planner and the
executor use to reach stored rows.
*/
package datastore

import (
	"context"

	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/value"
)

/*
Datastore is a collection of keyspaces.
*/
type Datastore interface {
	KeyspaceNames() []string
	KeyspaceByName(name string) (Keyspace, errors.Error)
}

/*
Keyspace is a table of documents, each a flat OBJECT of columns.
*/
type Keyspace interface {
	Name() string // Name of this keyspace

	// False for keyspaces whose indexes cannot be probed by
	// comparison; the planner then never builds index conditions
	// against them.
	IsQueryComparable() bool

	Indexes() []Index
	IndexByColumn(column string) (Index, bool)

	Count(ctx context.Context) (int, errors.Error)
	ScanAll(ctx context.Context) ([]Document, errors.Error)
}

/*
Index is a secondary index on a single column. NULL is indexed like
any other key.
*/
type Index interface {
	Name() string
	Column() string
	Keyspace() Keyspace

	// Lookup returns the documents whose column equals key. With
	// nullSafe a NULL key matches NULL entries (key <=> NULL);
	// without it a NULL key matches nothing (key = NULL).
	Lookup(ctx context.Context, key value.Value, nullSafe bool) ([]Document, errors.Error)
}

type Document struct {
	Key   string
	Value value.Value
}
