// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"slices"
	"strings"
)

// check is a validator tag, or an accept func for checks the tag syntax
// cannot express.
type check struct {
	tag     string
	accept  func(string) bool
	message string
}

// StringRule accepts string values and runs validator tags against them in
// declaration order. The first failing check is the only one reported.
type StringRule struct {
	z         *Z
	checks    []check
	transform func(string) (any, error)
}

// String returns a rule accepting any string.
func (z *Z) String() *StringRule {
	return &StringRule{z: z}
}

// Enum returns a string rule accepting exactly one of values.
func (z *Z) Enum(values ...string) *StringRule {
	return z.String().OneOf(values...)
}

func (r *StringRule) with(tag, message string) *StringRule {
	next := *r
	next.checks = append(append([]check(nil), r.checks...), check{tag: tag, message: message})
	return &next
}

// URL requires an absolute URL.
func (r *StringRule) URL() *StringRule {
	return r.with("url", "Invalid URL")
}

// Email requires an e-mail address.
func (r *StringRule) Email() *StringRule {
	return r.with("email", "Invalid email address")
}

// NonEmpty rejects the empty string.
func (r *StringRule) NonEmpty() *StringRule {
	return r.with("required", "Too small: expected string to have >=1 characters")
}

// Min requires at least n characters.
func (r *StringRule) Min(n int) *StringRule {
	return r.with(fmt.Sprintf("min=%d", n), fmt.Sprintf("Too small: expected string to have >=%d characters", n))
}

// Max allows at most n characters.
func (r *StringRule) Max(n int) *StringRule {
	return r.with(fmt.Sprintf("max=%d", n), fmt.Sprintf("Too big: expected string to have <=%d characters", n))
}

// OneOf restricts the value to values. Values may contain any character,
// including the separators of validator tags.
func (r *StringRule) OneOf(values ...string) *StringRule {
	values = slices.Clone(values)
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}

	next := *r
	next.checks = append(append([]check(nil), r.checks...), check{
		accept:  func(s string) bool { return slices.Contains(values, s) },
		message: "Invalid option: expected one of " + strings.Join(quoted, "|"),
	})
	return &next
}

// Matches applies a raw validator tag such as "hostname_port" or "uuid4".
func (r *StringRule) Matches(tag string) *StringRule {
	return r.with(tag, fmt.Sprintf("Invalid input: failed %q check", tag))
}

// Transform maps the validated string to another value. A returned error is
// reported as the field's issue.
func (r *StringRule) Transform(fn func(string) (any, error)) *StringRule {
	next := *r
	next.transform = fn
	return &next
}

func (r *StringRule) Parse(path Path, value any, present bool) (any, []Issue) {
	s, ok := value.(string)
	if !ok {
		return nil, invalid(path, "Invalid input: expected string, received %s", received(value, present))
	}

	for _, c := range r.checks {
		if c.accept != nil {
			if !c.accept(s) {
				return nil, invalid(path, "%s", c.message)
			}
			continue
		}
		if err := r.z.validate.Var(s, c.tag); err != nil {
			return nil, invalid(path, "%s", c.message)
		}
	}

	if r.transform != nil {
		out, err := r.transform(s)
		if err != nil {
			return nil, invalid(path, "%s", err.Error())
		}
		return out, nil
	}

	return s, nil
}
