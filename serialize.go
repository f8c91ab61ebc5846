package jsondiffpatch

import (
	"encoding/json"
	"sort"
)

// Wire-form magic tail numbers distinguishing the variants that share
// the outer array shape (spec.md §4.2). Grounded on
// original_source/src/types.rs's MAGIC_NUMBER_* constants.
const (
	wireMagicDeleted      = 0
	wireMagicTextDiff     = 2
	wireMagicArrayMoved   = 3
	wireArraySentinelKind = "a"
)

// Serialize renders d into its jsondiffpatch wire form: a plain Go
// value built from []any and map[string]any around the delta's carried
// values, with Go ints for the magic tail numbers, move indices and a
// StrictWire middle slot, ready for json.Marshal. Serializing a None delta is an error — invariant 1
// of spec.md §3 is that None is never emitted.
func Serialize(d *Delta, opts *Options) (any, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if d.None() {
		return nil, shapeErrorf("cannot serialize a None delta")
	}
	return serializeDelta(d, opts)
}

// SerializeJSON is Serialize followed by json.Marshal.
func SerializeJSON(d *Delta, opts *Options) ([]byte, error) {
	wire, err := Serialize(d, opts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

func serializeDelta(d *Delta, opts *Options) (any, error) {
	switch d.Kind {
	case KindAdded:
		return []any{d.Value}, nil

	case KindModified:
		return []any{d.Old, d.Value}, nil

	case KindDeleted:
		return []any{d.Value, middleSlot(opts), wireMagicDeleted}, nil

	case KindTextDiff:
		return []any{d.Text, middleSlot(opts), wireMagicTextDiff}, nil

	case KindMoved:
		// A Moved with no carried value serializes its first slot as
		// "" (not null) — original_source/src/types.rs's
		// to_serializable does the same
		// (moved_value.unwrap_or("".into())).
		var v any = ""
		if d.ValuePresent {
			v = d.Value
		}
		return []any{v, d.NewIndex, wireMagicArrayMoved}, nil

	case KindObject:
		out := make(map[string]any, len(d.Children))
		for k, child := range d.Children {
			if child.None() {
				continue
			}
			w, err := serializeDelta(child, opts)
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil

	case KindArray:
		out := map[string]any{"_t": wireArraySentinelKind}
		for _, op := range d.Items {
			if op.Delta.None() {
				continue
			}
			w, err := serializeDelta(op.Delta, opts)
			if err != nil {
				return nil, err
			}
			out[op.Key.WireKey()] = w
		}
		return out, nil

	default:
		return nil, internalLogicErrorf("unrecognized delta kind %v", d.Kind)
	}
}

// middleSlot returns the historical 0 when Options.StrictWire is set,
// otherwise the semantically cleaner null — spec.md §4.2/§9's explicit
// open question, resolved as a configurable choice per spec.md's own
// suggestion.
func middleSlot(opts *Options) any {
	if opts.StrictWire {
		return 0
	}
	return nil
}

// Deserialize parses a wire-form value (as produced by Serialize, or
// decoded from JSON via encoding/json) back into a Delta.
func Deserialize(wire any) (*Delta, error) {
	switch w := wire.(type) {
	case []any:
		return deserializeArrayShaped(w)
	case map[string]any:
		return deserializeObjectShaped(w)
	default:
		return nil, shapeErrorf("unrecognized wire delta shape %T", wire)
	}
}

// DeserializeJSON is json.Unmarshal followed by Deserialize.
func DeserializeJSON(data []byte) (*Delta, error) {
	var wire any
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, shapeErrorf("invalid JSON: %v", err)
	}
	return Deserialize(wire)
}

func deserializeArrayShaped(w []any) (*Delta, error) {
	switch len(w) {
	case 1:
		return Added(w[0]), nil
	case 2:
		return Modified(w[0], w[1]), nil
	case 3:
		tail, ok := toFloat64(w[2])
		if !ok {
			return nil, shapeErrorf("invalid delta tail marker %v", w[2])
		}
		switch int(tail) {
		case wireMagicDeleted:
			return Deleted(w[0]), nil
		case wireMagicTextDiff:
			text, ok := w[0].(string)
			if !ok {
				return nil, shapeErrorf("text diff payload must be a string")
			}
			return TextDiffDelta(text), nil
		case wireMagicArrayMoved:
			idx, ok := toFloat64(w[1])
			if !ok {
				return nil, shapeErrorf("move delta new_index must be a number")
			}
			// An empty-string first slot is the wire convention for
			// "no value carried" (see serializeDelta); this is lossy
			// if a moved value was ever legitimately the empty
			// string, a limitation inherent to the wire format itself.
			present := w[0] != nil && w[0] != ""
			return MovedDelta(int(idx), w[0], present), nil
		default:
			return nil, shapeErrorf("unrecognized delta tail marker %v", w[2])
		}
	default:
		return nil, shapeErrorf("array-shaped delta must have length 1, 2 or 3, got %d", len(w))
	}
}

func deserializeObjectShaped(w map[string]any) (*Delta, error) {
	if t, ok := w["_t"]; ok {
		ts, ok2 := t.(string)
		if !ok2 || ts != wireArraySentinelKind {
			return nil, shapeErrorf("unrecognized array delta sentinel %v", t)
		}
		items := make([]ArrayOp, 0, len(w)-1)
		for k, v := range w {
			if k == "_t" {
				continue
			}
			key, err := ParseIndexKey(k)
			if err != nil {
				return nil, err
			}
			child, err := Deserialize(v)
			if err != nil {
				return nil, err
			}
			items = append(items, ArrayOp{Key: key, Delta: child})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Key.Less(items[j].Key) })
		return ArrayDelta(items), nil
	}

	children := make(map[string]*Delta, len(w))
	for k, v := range w {
		child, err := Deserialize(v)
		if err != nil {
			return nil, err
		}
		children[k] = child
	}
	return ObjectDelta(children), nil
}
