// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package publicenv

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Values is the raw key-value bag captured from the process environment.
type Values map[string]any

// Snapshot is the immutable result of resolving an [Env]. The zero Snapshot
// is empty and ready to use. Accessors never hand out references to internal
// maps or slices.
type Snapshot struct {
	values map[string]any
}

func newSnapshot(values map[string]any) Snapshot {
	return Snapshot{values: cloneMap(values)}
}

// ParseSnapshot decodes a JSON object into a Snapshot.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return Snapshot{}, fmt.Errorf("error decoding snapshot: %w", err)
	}
	return Snapshot{values: values}, nil
}

// Get returns the value stored under key.
func (s Snapshot) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return cloneValue(v), ok
}

// String returns the value under key formatted as a string, or "" if absent.
func (s Snapshot) String(key string) string {
	v, ok := s.values[key]
	if !ok || v == nil {
		return ""
	}
	if str, isString := v.(string); isString {
		return str
	}
	return fmt.Sprint(v)
}

// Keys returns the keys in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (s Snapshot) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the snapshot holds no keys.
func (s Snapshot) IsEmpty() bool {
	return len(s.values) == 0
}

// Map returns a deep copy of the snapshot contents. It never returns nil.
func (s Snapshot) Map() map[string]any {
	out := cloneMap(s.values)
	if out == nil {
		out = map[string]any{}
	}
	return out
}

// MarshalJSON encodes the snapshot as a JSON object. An empty snapshot
// encodes as {}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.values)
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Values:
		return cloneMap(t)
	case map[string]string:
		out := make(map[string]any, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	default:
		return v
	}
}
