// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxSafeInt is the largest integer a float64 (and a browser number)
// represents exactly.
const maxSafeInt = 1<<53 - 1

// NumberRule coerces its input to a number. Strings are parsed, numeric Go
// types are widened to float64.
type NumberRule struct {
	z       *Z
	integer bool
	checks  []check
}

// Number returns a coercing number rule producing float64 values.
func (z *Z) Number() *NumberRule {
	return &NumberRule{z: z}
}

func (r *NumberRule) with(tag, message string) *NumberRule {
	next := *r
	next.checks = append(append([]check(nil), r.checks...), check{tag: tag, message: message})
	return &next
}

// Int requires an integral value and produces int instead of float64.
func (r *NumberRule) Int() *NumberRule {
	next := *r
	next.integer = true
	return &next
}

// Min requires value >= n.
func (r *NumberRule) Min(n float64) *NumberRule {
	return r.with(fmt.Sprintf("gte=%v", n), fmt.Sprintf("Too small: expected number to be >=%v", n))
}

// Max requires value <= n.
func (r *NumberRule) Max(n float64) *NumberRule {
	return r.with(fmt.Sprintf("lte=%v", n), fmt.Sprintf("Too big: expected number to be <=%v", n))
}

func (r *NumberRule) Parse(path Path, value any, present bool) (any, []Issue) {
	f, ok := toFloat(value)
	if !ok {
		if present && value != nil {
			if _, isString := value.(string); !isString {
				return nil, invalid(path, "Invalid input: expected number, received %s", received(value, present))
			}
		}
		return nil, invalid(path, "Invalid input: expected number, received NaN")
	}
	if math.IsInf(f, 0) {
		return nil, invalid(path, "Invalid input: expected number, received Infinity")
	}
	if r.integer {
		switch {
		case f != math.Trunc(f):
			return nil, invalid(path, "Invalid input: expected int, received number")
		case f > maxSafeInt:
			return nil, invalid(path, "Too big: expected int to be <=%d", maxSafeInt)
		case f < -maxSafeInt:
			return nil, invalid(path, "Too small: expected int to be >=%d", -maxSafeInt)
		}
	}

	for _, c := range r.checks {
		if err := r.z.validate.Var(f, c.tag); err != nil {
			return nil, invalid(path, "%s", c.message)
		}
	}

	if r.integer {
		return int(f), nil
	}
	return f, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
