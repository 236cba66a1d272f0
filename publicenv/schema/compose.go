// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

// ObjectRule validates a nested mapping. Issues inside it carry dotted paths.
type ObjectRule struct {
	shape Shape
}

// Object returns a rule for a nested mapping described by shape.
func (z *Z) Object(shape Shape) *ObjectRule {
	return &ObjectRule{shape: shape}
}

func (r *ObjectRule) Parse(path Path, value any, present bool) (any, []Issue) {
	var values map[string]any
	switch v := value.(type) {
	case map[string]any:
		values = v
	case map[string]string:
		values = make(map[string]any, len(v))
		for k, s := range v {
			values[k] = s
		}
	default:
		return nil, invalid(path, "Invalid input: expected object, received %s", received(value, present))
	}

	out, issues := parseShape(path, r.shape, values)
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

type optionalRule struct {
	inner Rule
}

// Optional lets the key be missing or null. A missing key is left out of the
// parsed result.
func (z *Z) Optional(rule Rule) Rule {
	return optionalRule{inner: rule}
}

func (r optionalRule) Parse(path Path, value any, present bool) (any, []Issue) {
	if !present || value == nil {
		return absentValue{}, nil
	}
	return r.inner.Parse(path, value, present)
}

type defaultRule struct {
	inner Rule
	value any
}

// Default substitutes value when the key is missing or null. The default is
// returned as-is and is not run through rule.
func (z *Z) Default(rule Rule, value any) Rule {
	return defaultRule{inner: rule, value: value}
}

func (r defaultRule) Parse(path Path, value any, present bool) (any, []Issue) {
	if !present || value == nil {
		return r.value, nil
	}
	return r.inner.Parse(path, value, present)
}

type pipeRule struct {
	first, second Rule
}

// Pipe feeds the output of first into second.
func (z *Z) Pipe(first, second Rule) Rule {
	return pipeRule{first: first, second: second}
}

func (r pipeRule) Parse(path Path, value any, present bool) (any, []Issue) {
	out, issues := r.first.Parse(path, value, present)
	if len(issues) > 0 {
		return nil, issues
	}
	return r.second.Parse(path, out, true)
}

type customRule struct {
	fn func(value any) (any, error)
}

// Custom wraps an arbitrary parse function. The error text becomes the issue
// message.
func (z *Z) Custom(fn func(value any) (any, error)) Rule {
	return customRule{fn: fn}
}

func (r customRule) Parse(path Path, value any, _ bool) (any, []Issue) {
	out, err := r.fn(value)
	if err != nil {
		return nil, invalid(path, "%s", err.Error())
	}
	return out, nil
}
