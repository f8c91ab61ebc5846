package jsondiffpatch

import (
	"strings"
	"testing"
)

func TestFormatTextStringContainsEachChange(t *testing.T) {
	d := ObjectDelta(map[string]*Delta{
		"a": Added(float64(1)),
		"b": Deleted(float64(2)),
		"c": Modified(float64(3), float64(4)),
	})

	out, err := FormatTextString(d, false)
	if err != nil {
		t.Fatalf("FormatTextString: %v", err)
	}

	for _, want := range []string{"Added", "$.a", "Deleted", "$.b", "Modified", "$.c"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestFormatTextArrayPaths(t *testing.T) {
	d := ArrayDelta([]ArrayOp{
		{Key: IndexKey{Kind: NewOrModified, Index: 0}, Delta: Added("x")},
		{Key: IndexKey{Kind: RemovedOrMoved, Index: 1}, Delta: Deleted("y")},
	})
	out, err := FormatTextString(d, false)
	if err != nil {
		t.Fatalf("FormatTextString: %v", err)
	}
	if !strings.Contains(out, "$[0]") || !strings.Contains(out, "$[_1]") {
		t.Errorf("output %q missing expected array paths", out)
	}
}

func TestFormatTextNoneProducesNoOutput(t *testing.T) {
	out, err := FormatTextString(&Delta{Kind: KindNone}, false)
	if err != nil {
		t.Fatalf("FormatTextString: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestFormatStats(t *testing.T) {
	s := Stats{Inserts: 1, Deletes: 2, Updates: 0, Moves: 1}
	out := FormatStats(s)
	for _, want := range []string{"1 insert", "2 deletes", "0 updates", "1 move"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatStats() = %q, missing %q", out, want)
		}
	}
}
