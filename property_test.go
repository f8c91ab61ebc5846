//go:build property

package jsondiffpatch

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// Property-based tests for the laws of spec.md §8. Run separately with:
// go test -tags=property . -run TestProperty

func drawJSONValue(t *rapid.T, depth int) any {
	if depth <= 0 {
		return drawJSONLeaf(t)
	}
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0, 1:
		return drawJSONLeaf(t)
	case 2:
		n := rapid.IntRange(0, 3).Draw(t, "arrlen")
		arr := make([]any, n)
		for i := 0; i < n; i++ {
			arr[i] = drawJSONValue(t, depth-1)
		}
		return arr
	default:
		n := rapid.IntRange(0, 3).Draw(t, "objlen")
		obj := make(map[string]any, n)
		for i := 0; i < n; i++ {
			key := rapid.StringMatching(`[a-e]{1,3}`).Draw(t, fmt.Sprintf("key%d", i))
			obj[key] = drawJSONValue(t, depth-1)
		}
		return obj
	}
}

func drawJSONLeaf(t *rapid.T) any {
	switch rapid.IntRange(0, 3).Draw(t, "leafkind") {
	case 0:
		return nil
	case 1:
		return rapid.Bool().Draw(t, "bool")
	case 2:
		return rapid.Float64Range(-1000, 1000).Draw(t, "num")
	default:
		return rapid.StringMatching(`[a-zA-Z0-9 ]{0,12}`).Draw(t, "str")
	}
}

func TestPropertyDiffPatchRecoversRight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		left := drawJSONValue(t, 2)
		right := drawJSONValue(t, 2)

		d := Diff(left, right, nil)
		patched, err := Patch(left, d, nil)
		if err != nil {
			t.Fatalf("Patch: %v", err)
		}
		if !deepEqual(patched, right) {
			t.Fatalf("patch(left, diff(left,right)) = %#v, want %#v", patched, right)
		}
	})
}

func TestPropertyReversePatchRecoversLeft(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		left := drawJSONValue(t, 2)
		right := drawJSONValue(t, 2)

		d := Diff(left, right, nil)
		reversed, err := Reverse(d, nil)
		if err != nil {
			t.Fatalf("Reverse: %v", err)
		}
		recovered, err := Patch(right, reversed, nil)
		if err != nil {
			t.Fatalf("Patch: %v", err)
		}
		if !deepEqual(recovered, left) {
			t.Fatalf("patch(right, reverse(diff(left,right))) = %#v, want %#v", recovered, left)
		}
	})
}

func TestPropertyReverseIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		left := drawJSONValue(t, 2)
		right := drawJSONValue(t, 2)

		d := Diff(left, right, nil)
		once, err := Reverse(d, nil)
		if err != nil {
			t.Fatalf("Reverse: %v", err)
		}
		twice, err := Reverse(once, nil)
		if err != nil {
			t.Fatalf("Reverse: %v", err)
		}
		if !Equal(d, twice) {
			t.Fatalf("reverse(reverse(D)) != D:\nD     = %#v\ntwice = %#v", d, twice)
		}
	})
}

func TestPropertyDiffSelfIsNone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawJSONValue(t, 2)
		if d := Diff(v, v, nil); !d.None() {
			t.Fatalf("diff(L, L) = %#v, want None", d)
		}
	})
}

func TestPropertyPatchNoneIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawJSONValue(t, 2)
		got, err := Patch(v, &Delta{Kind: KindNone}, nil)
		if err != nil {
			t.Fatalf("Patch: %v", err)
		}
		if !deepEqual(got, v) {
			t.Fatalf("patch(L, None) = %#v, want %#v", got, v)
		}
	})
}

func TestPropertySerializationRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		left := drawJSONValue(t, 2)
		right := drawJSONValue(t, 2)

		d := Diff(left, right, nil)
		if d.None() {
			return
		}
		wire, err := Serialize(d, nil)
		if err != nil {
			t.Fatalf("Serialize: %v", err)
		}
		got, err := Deserialize(wire)
		if err != nil {
			t.Fatalf("Deserialize: %v", err)
		}
		if !Equal(d, got) {
			t.Fatalf("deserialize(serialize(D)) != D:\nD   = %#v\ngot = %#v", d, got)
		}
	})
}
