//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package planner

import (
	"gopkg.in/yaml.v3"

	"github.com/couchbase/nullpred/errors"
)

/*
Config switches the rewrites of the planner. Every switch only trades
speed; the rows returned are the same either way.
*/
type Config struct {
	IndexConditions bool `yaml:"index_conditions"` // derive index conditions from WHERE conjuncts
	FilterPushdown  bool `yaml:"filter_pushdown"`  // attach WHERE conjuncts to table scans
	OuterToInner    bool `yaml:"outer_to_inner"`   // convert outer joins rejected by the WHERE clause
}

func DefaultConfig() Config {
	return Config{
		IndexConditions: true,
		FilterPushdown:  true,
		OuterToInner:    true,
	}
}

/*
ParseConfig reads planner settings from YAML. Switches left out of the
document keep their default.
*/
func ParseConfig(data []byte) (Config, errors.Error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.NewPlanError(err, "invalid planner settings")
	}
	return config, nil
}
