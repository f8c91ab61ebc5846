package jsondiffpatch

import (
	"reflect"
	"testing"
)

func TestReverseLeafKinds(t *testing.T) {
	tests := []struct {
		name string
		d    *Delta
		want *Delta
	}{
		{"added becomes deleted", Added(float64(1)), Deleted(float64(1))},
		{"deleted becomes added", Deleted(float64(1)), Added(float64(1))},
		{"modified swaps old and new", Modified(float64(1), float64(2)), Modified(float64(2), float64(1))},
		{"none stays none", &Delta{Kind: KindNone}, &Delta{Kind: KindNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reverse(tt.d, nil)
			if err != nil {
				t.Fatalf("Reverse: %v", err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("Reverse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReverseMovedOutsideArrayFails(t *testing.T) {
	if _, err := Reverse(MovedDelta(1, nil, false), nil); err == nil {
		t.Fatal("expected an error reversing a bare Moved delta")
	}
}

func TestReverseObjectRecurses(t *testing.T) {
	d := ObjectDelta(map[string]*Delta{
		"a": Added(float64(1)),
		"b": Modified(float64(1), float64(2)),
	})
	got, err := Reverse(d, nil)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	want := ObjectDelta(map[string]*Delta{
		"a": Deleted(float64(1)),
		"b": Modified(float64(2), float64(1)),
	})
	if !Equal(got, want) {
		t.Errorf("Reverse() = %#v, want %#v", got, want)
	}
}

func TestReverseArrayDeleteBecomesAdd(t *testing.T) {
	d := ArrayDelta([]ArrayOp{
		{Key: IndexKey{Kind: RemovedOrMoved, Index: 1}, Delta: Deleted(float64(2))},
	})
	got, err := Reverse(d, nil)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	want := ArrayDelta([]ArrayOp{
		{Key: IndexKey{Kind: NewOrModified, Index: 1}, Delta: Added(float64(2))},
	})
	if !Equal(got, want) {
		t.Errorf("Reverse() = %#v, want %#v", got, want)
	}
}

func TestReverseArrayMoveSwapsDirection(t *testing.T) {
	d := ArrayDelta([]ArrayOp{
		{Key: IndexKey{Kind: RemovedOrMoved, Index: 0}, Delta: MovedDelta(2, "a", true)},
	})
	got, err := Reverse(d, nil)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	want := ArrayDelta([]ArrayOp{
		{Key: IndexKey{Kind: RemovedOrMoved, Index: 2}, Delta: MovedDelta(0, "a", true)},
	})
	if !Equal(got, want) {
		t.Errorf("Reverse() = %#v, want %#v", got, want)
	}
}

// TestReverseScenarios ports spec.md §8's "patch(R, reverse(diff(L,R))
// == L" law over scenarios S1-S4 and S7.
func TestReverseScenarios(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
	}{
		{"S1", `{"a":1,"b":2}`, `{"a":1,"b":3}`},
		{"S2", `{"x":1}`, `{"x":1,"y":2}`},
		{"S3", `[1,2,3]`, `[1,3]`},
		{"S4", `["a","b","c"]`, `["b","c","a"]`},
		{"S7", `{"a":{"b":1}}`, `{"a":{"b":2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := mustDecode(t, tt.left)
			right := mustDecode(t, tt.right)

			d := Diff(left, right, nil)

			patched, err := Patch(left, d, nil)
			if err != nil {
				t.Fatalf("Patch forward: %v", err)
			}
			if !deepEqual(patched, right) {
				t.Fatalf("Patch(left, diff(left,right)) = %#v, want %#v", patched, right)
			}

			reversed, err := Reverse(d, nil)
			if err != nil {
				t.Fatalf("Reverse: %v", err)
			}
			recovered, err := Patch(right, reversed, nil)
			if err != nil {
				t.Fatalf("Patch reverse: %v", err)
			}
			if !deepEqual(recovered, left) {
				t.Fatalf("Patch(right, reverse(diff(left,right))) = %#v, want %#v", recovered, left)
			}
		})
	}
}

func TestUnpatchIsDiffInverse(t *testing.T) {
	left := mustDecode(t, `{"items":["a","b","c"]}`)
	right := mustDecode(t, `{"items":["b","c","a","d"]}`)

	d := Diff(left, right, nil)
	recovered, err := Unpatch(right, d, nil)
	if err != nil {
		t.Fatalf("Unpatch: %v", err)
	}
	if !reflect.DeepEqual(recovered, left) {
		t.Errorf("Unpatch() = %#v, want %#v", recovered, left)
	}
}
