//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package errors

// Datastore errors - errors that are created in the datastore packages

const KEYSPACE_NOT_FOUND = 12003

func NewKeyspaceNotFoundError(e error, msg string) Error {
	return &err{level: EXCEPTION, ICode: KEYSPACE_NOT_FOUND, IKey: "datastore.keyspace_not_found", ICause: e,
		InternalMsg: "Keyspace not found " + msg, InternalCaller: CallerN(1)}
}

const INDEX_NOT_FOUND = 12016

func NewIndexNotFoundError(e error, msg string) Error {
	return &err{level: EXCEPTION, ICode: INDEX_NOT_FOUND, IKey: "datastore.index_not_found", ICause: e,
		InternalMsg: "Index not found " + msg, InternalCaller: CallerN(1)}
}

const DUPLICATE_KEY = 12009

func NewDuplicateKeyError(key string) Error {
	return &err{level: EXCEPTION, ICode: DUPLICATE_KEY, IKey: "datastore.duplicate_key",
		InternalMsg: "Duplicate key " + key, InternalCaller: CallerN(1)}
}
