// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Path locates a value inside the validated input. The zero Path is the root.
type Path []string

// String joins the path segments with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

func (p Path) child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Issue is a single validation failure.
type Issue struct {
	Path    Path
	Message string
}

// Error aggregates every issue found by [Parse].
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return "schema: invalid input: " + strings.Join(parts, "; ")
}

// Rule parses a single value. present is false when the key was missing from
// the input entirely. A rule returns the (possibly transformed) value or the
// issues describing why it was rejected.
type Rule interface {
	Parse(path Path, value any, present bool) (any, []Issue)
}

// Field binds a rule to a key. A Field built with [Check] has no key and runs
// against the whole parsed object instead.
type Field struct {
	Key  string
	Rule Rule

	check func(values map[string]any) error
}

// Key declares a keyed field.
func Key(name string, rule Rule) Field {
	return Field{Key: name, Rule: rule}
}

// Check declares a refinement over the parsed object. It runs only after every
// keyed field of the same shape parsed successfully, and its issue is reported
// at the shape's own path.
func Check(fn func(values map[string]any) error) Field {
	return Field{check: fn}
}

// Shape is an ordered list of fields. Issue order follows declaration order.
type Shape []Field

// Factory produces a shape from the validator handle.
type Factory func(z *Z) Shape

// Z is the handle passed to a [Factory]. It owns the validator instance shared
// by every rule it creates.
type Z struct {
	validate *validator.Validate
}

// New returns a fresh handle.
func New() *Z {
	return &Z{validate: validator.New()}
}

// Build runs factory against a fresh handle.
func Build(factory Factory) Shape {
	return factory(New())
}

// Parse validates values against shape. On success it returns a new map that
// holds only declared keys; on failure it returns every issue found.
func Parse(shape Shape, values map[string]any) (map[string]any, *Error) {
	out, issues := parseShape(nil, shape, values)
	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}
	return out, nil
}

// absentValue marks a key that must be left out of the parsed object.
type absentValue struct{}

func parseShape(path Path, shape Shape, values map[string]any) (map[string]any, []Issue) {
	out := make(map[string]any, len(shape))
	var issues []Issue

	for _, field := range shape {
		if field.check != nil {
			continue
		}
		raw, present := values[field.Key]
		parsed, fieldIssues := field.Rule.Parse(path.child(field.Key), raw, present)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		if _, skip := parsed.(absentValue); skip {
			continue
		}
		out[field.Key] = parsed
	}

	if len(issues) > 0 {
		return nil, issues
	}

	for _, field := range shape {
		if field.check == nil {
			continue
		}
		if err := field.check(out); err != nil {
			issues = append(issues, Issue{Path: path, Message: err.Error()})
		}
	}
	if len(issues) > 0 {
		return nil, issues
	}

	return out, nil
}

func invalid(path Path, format string, args ...any) []Issue {
	return []Issue{{Path: path, Message: fmt.Sprintf(format, args...)}}
}

// received names the JSON type of value the way error messages report it.
func received(value any, present bool) string {
	if !present {
		return "undefined"
	}
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case map[string]any, map[string]string:
		return "object"
	case []any, []string:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
