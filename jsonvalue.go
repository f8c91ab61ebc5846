package jsondiffpatch

import (
	"encoding/json"
	"sort"
)

// jsonKind classifies a Go value the way spec.md §3 classifies a JSON
// value: null, bool, number, string, array, object. This engine treats
// Go's native interface{}/map[string]interface{}/[]interface{} as the
// JSON value representation — the same shape encoding/json decodes
// into — since the spec places an actual JSON value library out of
// scope (spec.md §1) and the corpus (qri-io/deepdiff) makes the
// identical choice.
type jsonKind uint8

const (
	kindNull jsonKind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
	kindUnknown
)

func jsonType(v any) jsonKind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case string:
		return kindString
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return kindNumber
	default:
		return kindUnknown
	}
}

func isObject(v any) bool { return jsonType(v) == kindObject }
func isArray(v any) bool  { return jsonType(v) == kindArray }

// toFloat64 converts any Go numeric representation a JSON decoder might
// produce into a float64 for comparison purposes.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// deepEqual reports structural JSON equality: order-sensitive for
// arrays, order-insensitive for object keys, value-equal (not
// representation-equal) for numbers.
func deepEqual(a, b any) bool {
	ka, kb := jsonType(a), jsonType(b)
	if ka != kb {
		return false
	}
	switch ka {
	case kindNull:
		return true
	case kindBool:
		return a.(bool) == b.(bool)
	case kindString:
		return a.(string) == b.(string)
	case kindNumber:
		fa, _ := toFloat64(a)
		fb, _ := toFloat64(b)
		return fa == fb
	case kindArray:
		aa, bb := a.([]any), b.([]any)
		if len(aa) != len(bb) {
			return false
		}
		for i := range aa {
			if !deepEqual(aa[i], bb[i]) {
				return false
			}
		}
		return true
	case kindObject:
		ao, bo := a.(map[string]any), b.(map[string]any)
		if len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok || !deepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// unionKeys returns the sorted union of left's and right's object
// keys, giving diff.go's object dispatch a deterministic iteration
// order — the same determinism concern the teacher's
// computeEfficientDiff solves with sorted-key iteration.
func unionKeys(left, right map[string]any) []string {
	seen := make(map[string]struct{}, len(left)+len(right))
	keys := make([]string, 0, len(left)+len(right))
	for k := range left {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	for k := range right {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// cloneValue deep-copies a JSON value. Used by Options.CloneDiffValues
// and the exported Clone function. Structurally recursive rather than
// a json.Marshal/Unmarshal round trip (see DESIGN.md: a round trip
// would normalize numeric types and silently change equality
// semantics for values that never passed through encoding/json).
func cloneValue(v any) any {
	switch vv := v.(type) {
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
