//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package algebra provides the statement tree the planner consumes.
*/
package algebra

/*
KeyspaceTerm is a keyspace in the FROM clause, with an optional alias.
*/
type KeyspaceTerm struct {
	keyspace string
	as       string
}

func NewKeyspaceTerm(keyspace, as string) *KeyspaceTerm {
	return &KeyspaceTerm{keyspace, as}
}

func (this *KeyspaceTerm) Keyspace() string {
	return this.keyspace
}

func (this *KeyspaceTerm) As() string {
	return this.as
}

/*
Alias is the AS name, or the keyspace name when there is none.
*/
func (this *KeyspaceTerm) Alias() string {
	if this.as != "" {
		return this.as
	}
	return this.keyspace
}

func (this *KeyspaceTerm) String() string {
	if this.as != "" && this.as != this.keyspace {
		return this.keyspace + " AS " + this.as
	}
	return this.keyspace
}
