// Package objdiff computes the difference set between two decoded JSON objects.
package objdiff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Difference returns, for every key of a, the value b holds where it differs
// from a. Nested objects and arrays are compared recursively and kept only
// when they contain a difference. Keys starting with '$' are skipped and keys
// present only in b are ignored.
func Difference(a, b map[string]any) map[string]any {
	diff := map[string]any{}

	for key, av := range a {
		if strings.HasPrefix(key, "$") {
			continue
		}

		bv := b[key]
		if nested, ok := asObject(av); ok {
			other, _ := asObject(bv)
			diff[key] = Difference(nested, other)
			continue
		}

		if !cmp.Equal(av, bv) {
			diff[key] = bv
		}
	}

	for key, v := range diff {
		if obj, ok := asObject(v); ok && len(obj) == 0 {
			delete(diff, key)
		}
	}

	return diff
}

// DifferenceOf is Difference for any two JSON-encodable values
func DifferenceOf(a, b any) (map[string]any, error) {
	am, err := toObject(a)
	if err != nil {
		return nil, err
	}
	bm, err := toObject(b)
	if err != nil {
		return nil, err
	}
	return Difference(am, bm), nil
}

// asObject views maps and arrays as objects keyed by field name or index
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return nil, false
		}
		return t, true
	case []any:
		if t == nil {
			return nil, false
		}
		obj := make(map[string]any, len(t))
		for i, e := range t {
			obj[strconv.Itoa(i)] = e
		}
		return obj, true
	default:
		return nil, false
	}
}

func toObject(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%T is not an object: %w", v, err)
	}
	return obj, nil
}
