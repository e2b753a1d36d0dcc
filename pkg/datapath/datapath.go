// Package datapath holds utilities for traversing and rebuilding document trees.
//
// Document tree is a value decoded from JSON or YAML bytes: nested mappings
// (map[string]any, map[any]any) and sequences ([]any) with scalar leaves.
package datapath

import (
	"fmt"

	"github.com/sclavijosuero/svutils/pkg/issue"
)

// Clone returns deep copy of data. Returned tree shares no mappings nor
// sequences with the original, so it may be mutated freely.
func Clone(data any) any {
	switch d := data.(type) {
	case map[string]any:
		cp := make(map[string]any, len(d))
		for k, v := range d {
			cp[k] = Clone(v)
		}

		return cp
	case map[any]any:
		cp := make(map[any]any, len(d))
		for k, v := range d {
			cp[k] = Clone(v)
		}

		return cp
	case []any:
		cp := make([]any, len(d))
		for i, v := range d {
			cp[i] = Clone(v)
		}

		return cp
	default:
		return d
	}
}

// Normalize rewrites tree decoded from YAML into JSON compatible form -
// mappings with arbitrary keys become mappings with string keys.
func Normalize(data any) any {
	switch d := data.(type) {
	case map[any]any:
		m := make(map[string]any, len(d))
		for k, v := range d {
			m[fmt.Sprintf("%v", k)] = Normalize(v)
		}

		return m
	case map[string]any:
		m := make(map[string]any, len(d))
		for k, v := range d {
			m[k] = Normalize(v)
		}

		return m
	case []any:
		s := make([]any, len(d))
		for i, v := range d {
			s[i] = Normalize(v)
		}

		return s
	default:
		return d
	}
}

// Get reads value under given path. Second return value tells whether
// path points at existing location. Data is never mutated.
func Get(data any, path issue.Path) (any, bool) {
	node := data
	for _, segment := range path {
		switch s := segment.(type) {
		case string:
			switch m := node.(type) {
			case map[string]any:
				v, ok := m[s]
				if !ok {
					return nil, false
				}

				node = v
			case map[any]any:
				v, ok := m[s]
				if !ok {
					return nil, false
				}

				node = v
			default:
				return nil, false
			}
		case int:
			seq, ok := node.([]any)
			if !ok || s < 0 || s >= len(seq) {
				return nil, false
			}

			node = seq[s]
		default:
			return nil, false
		}
	}

	return node, true
}

// Set writes value under given path, creating intermediate mappings and
// sequences where the tree has none. Sequences grow as needed. Returned tree
// is the new root - it may differ from data when the root itself had to be
// replaced. Empty path replaces whole tree with value.
func Set(data any, path issue.Path, value any) any {
	if len(path) == 0 {
		return value
	}

	rest := path[1:]

	switch s := path[0].(type) {
	case string:
		switch m := data.(type) {
		case map[string]any:
			m[s] = Set(m[s], rest, value)
			return m
		case map[any]any:
			m[s] = Set(m[s], rest, value)
			return m
		default:
			return map[string]any{s: Set(nil, rest, value)}
		}
	case int:
		if s < 0 {
			return data
		}

		seq, ok := data.([]any)
		if !ok {
			seq = []any{}
		}

		for len(seq) <= s {
			seq = append(seq, nil)
		}

		seq[s] = Set(seq[s], rest, value)

		return seq
	default:
		return data
	}
}
