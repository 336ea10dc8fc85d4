//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package algebra

import (
	"strings"

	"github.com/couchbase/nullpred/expression"
)

/*
Select is SELECT * FROM from [joins...] [WHERE where].
*/
type Select struct {
	from  *KeyspaceTerm
	joins []*AnsiJoin
	where expression.Expression
}

func NewSelect(from *KeyspaceTerm, joins []*AnsiJoin, where expression.Expression) *Select {
	return &Select{
		from:  from,
		joins: joins,
		where: where,
	}
}

func (this *Select) From() *KeyspaceTerm {
	return this.from
}

func (this *Select) Joins() []*AnsiJoin {
	return this.joins
}

func (this *Select) Where() expression.Expression {
	return this.where
}

func (this *Select) String() string {
	var buf strings.Builder
	buf.WriteString("SELECT * FROM ")
	buf.WriteString(this.from.String())
	for _, join := range this.joins {
		buf.WriteString(" ")
		buf.WriteString(join.String())
	}
	if this.where != nil {
		buf.WriteString(" WHERE ")
		buf.WriteString(this.where.String())
	}
	return buf.String()
}
