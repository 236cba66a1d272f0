// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import "strconv"

// BoolRule accepts booleans. With coercion enabled it also accepts the strings
// understood by [strconv.ParseBool].
type BoolRule struct {
	coerce bool
}

// Bool returns a strict boolean rule.
func (z *Z) Bool() *BoolRule {
	return &BoolRule{}
}

// BoolString returns a boolean rule that also parses "true", "false", "1", "0"
// and the other spellings accepted by strconv.ParseBool.
func (z *Z) BoolString() *BoolRule {
	return &BoolRule{coerce: true}
}

func (r *BoolRule) Parse(path Path, value any, present bool) (any, []Issue) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if r.coerce {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, invalid(path, `Invalid input: expected "true" or "false", received %q`, v)
			}
			return b, nil
		}
	}
	return nil, invalid(path, "Invalid input: expected boolean, received %s", received(value, present))
}
