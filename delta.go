package jsondiffpatch

// Kind discriminates the variants of Delta. The zero value, KindNone,
// is the identity delta: it is never serialized and never stored
// inside a finished Object or Array delta.
type Kind uint8

const (
	KindNone Kind = iota
	KindAdded
	KindDeleted
	KindModified
	KindTextDiff
	KindObject
	KindArray
	KindMoved
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindAdded:
		return "Added"
	case KindDeleted:
		return "Deleted"
	case KindModified:
		return "Modified"
	case KindTextDiff:
		return "TextDiff"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindMoved:
		return "Moved"
	default:
		return "Unknown"
	}
}

// ArrayOp is one entry of an Array delta: an addressed position paired
// with the change at that position.
type ArrayOp struct {
	Key   IndexKey
	Delta *Delta
}

// Delta is the sum type over the differences between two JSON values.
// It carries a Kind discriminant plus only the fields relevant to that
// kind, following the same technique the teacher's Delta/
// JSONPatchOperation types and qri-io/deepdiff's Delta/Operation pair
// use in place of an interface hierarchy.
type Delta struct {
	Kind Kind

	// Value holds: the new value for Added, the old value for Deleted,
	// the new value for Modified (see Old), and the moved value for
	// Moved (present only when carried; see ValuePresent).
	Value any

	// Old holds the old value for Modified.
	Old any

	// ValuePresent distinguishes "no moved value embedded" from "moved
	// value is the JSON null" for Moved deltas created with
	// IncludeValueOnMove.
	ValuePresent bool

	// Text holds the unidiff patch text for TextDiff.
	Text string

	// Children holds the per-key child deltas of an Object delta. A
	// finished Object delta never contains a KindNone child.
	Children map[string]*Delta

	// Items holds the per-index operations of an Array delta.
	Items []ArrayOp

	// NewIndex holds the destination index for a Moved delta.
	NewIndex int
}

// None reports whether d represents the identity delta.
func (d *Delta) None() bool {
	return d == nil || d.Kind == KindNone
}

// Added builds an Added delta.
func Added(v any) *Delta { return &Delta{Kind: KindAdded, Value: v} }

// Deleted builds a Deleted delta.
func Deleted(v any) *Delta { return &Delta{Kind: KindDeleted, Value: v} }

// Modified builds a Modified delta.
func Modified(old, new any) *Delta { return &Delta{Kind: KindModified, Old: old, Value: new} }

// TextDiffDelta builds a TextDiff delta carrying a unidiff patch.
func TextDiffDelta(patch string) *Delta { return &Delta{Kind: KindTextDiff, Text: patch} }

// ObjectDelta builds an Object delta from its children.
func ObjectDelta(children map[string]*Delta) *Delta {
	return &Delta{Kind: KindObject, Children: children}
}

// ArrayDelta builds an Array delta from its operations.
func ArrayDelta(items []ArrayOp) *Delta {
	return &Delta{Kind: KindArray, Items: items}
}

// MovedDelta builds a Moved delta. value is ignored unless present is
// true, matching the "moved value is optional" shape of spec.md §3.
func MovedDelta(newIndex int, value any, present bool) *Delta {
	return &Delta{Kind: KindMoved, NewIndex: newIndex, Value: value, ValuePresent: present}
}

// Equal reports whether a and b describe the same delta, recursively.
// Used by the serialization round-trip law and reverse(reverse(D))==D.
func Equal(a, b *Delta) bool {
	if a.None() && b.None() {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindAdded, KindDeleted:
		return deepEqual(a.Value, b.Value)
	case KindModified:
		return deepEqual(a.Old, b.Old) && deepEqual(a.Value, b.Value)
	case KindTextDiff:
		return a.Text == b.Text
	case KindMoved:
		if a.NewIndex != b.NewIndex || a.ValuePresent != b.ValuePresent {
			return false
		}
		if a.ValuePresent {
			return deepEqual(a.Value, b.Value)
		}
		return true
	case KindObject:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for k, av := range a.Children {
			bv, ok := b.Children[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if a.Items[i].Key != b.Items[i].Key {
				return false
			}
			if !Equal(a.Items[i].Delta, b.Items[i].Delta) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
