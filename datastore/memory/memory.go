//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package memory provides an in-memory datastore. Documents are kept in
a btree ordered by key and every secondary index in a btree ordered
by the collation of the indexed value, so that NULL entries sort
first and are found by the same range walk as any other key.
*/
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/btree"

	"github.com/couchbase/nullpred/datastore"
	"github.com/couchbase/nullpred/errors"
	"github.com/couchbase/nullpred/logging"
	"github.com/couchbase/nullpred/value"
)

const _BTREE_DEGREE = 16

var _ datastore.Datastore = (*Store)(nil)
var _ datastore.Keyspace = (*Keyspace)(nil)
var _ datastore.Index = (*index)(nil)

type Store struct {
	sync.RWMutex
	keyspaces map[string]*Keyspace
}

func NewDatastore() *Store {
	return &Store{
		keyspaces: make(map[string]*Keyspace),
	}
}

func (s *Store) KeyspaceNames() []string {
	s.RLock()
	defer s.RUnlock()

	rv := make([]string, 0, len(s.keyspaces))
	for name := range s.keyspaces {
		rv = append(rv, name)
	}
	sort.Strings(rv)
	return rv
}

func (s *Store) KeyspaceByName(name string) (datastore.Keyspace, errors.Error) {
	s.RLock()
	defer s.RUnlock()

	ks, ok := s.keyspaces[name]
	if !ok {
		return nil, errors.NewKeyspaceNotFoundError(nil, name)
	}
	return ks, nil
}

/*
CreateKeyspace adds an empty keyspace. A keyspace created with
comparable false refuses index conditions at plan time.
*/
func (s *Store) CreateKeyspace(name string, comparable bool) (*Keyspace, errors.Error) {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.keyspaces[name]; ok {
		return nil, errors.NewDuplicateKeyError(name)
	}

	ks := &Keyspace{
		name:       name,
		comparable: comparable,
		docs: btree.NewG(_BTREE_DEGREE, func(a, b datastore.Document) bool {
			return a.Key < b.Key
		}),
		indexes: make(map[string]*index),
	}
	s.keyspaces[name] = ks
	logging.Debugf("memory: created keyspace %s comparable=%v", name, comparable)
	return ks, nil
}

type Keyspace struct {
	sync.RWMutex
	name       string
	comparable bool
	docs       *btree.BTreeG[datastore.Document]
	indexes    map[string]*index
}

func (k *Keyspace) Name() string {
	return k.name
}

func (k *Keyspace) IsQueryComparable() bool {
	return k.comparable
}

func (k *Keyspace) Indexes() []datastore.Index {
	k.RLock()
	defer k.RUnlock()

	rv := make([]datastore.Index, 0, len(k.indexes))
	for _, name := range k.indexNames() {
		rv = append(rv, k.indexes[name])
	}
	return rv
}

func (k *Keyspace) indexNames() []string {
	names := make([]string, 0, len(k.indexes))
	for name := range k.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (k *Keyspace) IndexByColumn(column string) (datastore.Index, bool) {
	k.RLock()
	defer k.RUnlock()

	for _, name := range k.indexNames() {
		if idx := k.indexes[name]; idx.column == column {
			return idx, true
		}
	}
	return nil, false
}

func (k *Keyspace) Count(ctx context.Context) (int, errors.Error) {
	k.RLock()
	defer k.RUnlock()
	return k.docs.Len(), nil
}

func (k *Keyspace) ScanAll(ctx context.Context) ([]datastore.Document, errors.Error) {
	k.RLock()
	defer k.RUnlock()

	rv := make([]datastore.Document, 0, k.docs.Len())
	var err errors.Error
	k.docs.Ascend(func(doc datastore.Document) bool {
		if ctx.Err() != nil {
			err = errors.NewExecutionCancelledError(ctx.Err())
			return false
		}
		rv = append(rv, doc)
		return true
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

/*
Insert adds a document; columns absent from fields read as NULL.
*/
func (k *Keyspace) Insert(key string, fields map[string]interface{}) errors.Error {
	k.Lock()
	defer k.Unlock()

	doc := datastore.Document{Key: key, Value: value.NewObjectValue(fields)}
	if k.docs.Has(doc) {
		return errors.NewDuplicateKeyError(key)
	}

	k.docs.ReplaceOrInsert(doc)
	for _, idx := range k.indexes {
		idx.add(doc)
	}
	return nil
}

/*
CreateIndex builds a secondary index on column over the current
documents; later inserts maintain it.
*/
func (k *Keyspace) CreateIndex(name, column string) (datastore.Index, errors.Error) {
	k.Lock()
	defer k.Unlock()

	if _, ok := k.indexes[name]; ok {
		return nil, errors.NewDuplicateKeyError(name)
	}

	idx := &index{
		name:     name,
		column:   column,
		keyspace: k,
		entries:  btree.NewG(_BTREE_DEGREE, lessEntry),
	}
	k.docs.Ascend(func(doc datastore.Document) bool {
		idx.add(doc)
		return true
	})
	k.indexes[name] = idx
	logging.Infof("memory: created index %s on %s(%s), %d entries", name, k.name, column, idx.entries.Len())
	return idx, nil
}

type entry struct {
	key value.Value
	doc datastore.Document
}

func lessEntry(a, b entry) bool {
	if c := a.key.Collate(b.key); c != 0 {
		return c < 0
	}
	return a.doc.Key < b.doc.Key
}

type index struct {
	name     string
	column   string
	keyspace *Keyspace
	entries  *btree.BTreeG[entry]
}

func (i *index) Name() string {
	return i.name
}

func (i *index) Column() string {
	return i.column
}

func (i *index) Keyspace() datastore.Keyspace {
	return i.keyspace
}

func (i *index) String() string {
	return fmt.Sprintf("%s(%s)", i.name, i.column)
}

func (i *index) add(doc datastore.Document) {
	key, _ := doc.Value.Field(i.column)
	i.entries.ReplaceOrInsert(entry{key: key, doc: doc})
}

func (i *index) Lookup(ctx context.Context, key value.Value, nullSafe bool) ([]datastore.Document, errors.Error) {
	if key == nil {
		key = value.NULL_VALUE
	}
	if key.Type() == value.NULL && !nullSafe {
		return nil, nil
	}

	i.keyspace.RLock()
	defer i.keyspace.RUnlock()

	var rv []datastore.Document
	var err errors.Error
	i.entries.AscendGreaterOrEqual(entry{key: key}, func(e entry) bool {
		if e.key.Collate(key) != 0 {
			return false
		}
		if ctx.Err() != nil {
			err = errors.NewExecutionCancelledError(ctx.Err())
			return false
		}
		rv = append(rv, e.doc)
		return true
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}
