package jsondiffpatch

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if !o.DetectMove {
		t.Error("DetectMove should default to true")
	}
	if o.IncludeValueOnMove {
		t.Error("IncludeValueOnMove should default to false")
	}
	if o.TextDiffMinLength != DefaultTextDiffMinLength {
		t.Errorf("TextDiffMinLength = %d, want %d", o.TextDiffMinLength, DefaultTextDiffMinLength)
	}
	if o.CloneDiffValues || o.OmitRemovedValues || o.StrictWire {
		t.Error("CloneDiffValues, OmitRemovedValues and StrictWire should default to false")
	}
	if o.Logger == nil {
		t.Error("Logger should never be nil")
	}
}

func TestNewAppliesOptionsOverDefaults(t *testing.T) {
	o := New(
		WithDetectMove(false),
		WithIncludeValueOnMove(true),
		WithTextDiffMinLength(10),
		WithCloneDiffValues(true),
		WithOmitRemovedValues(true),
		WithStrictWire(true),
	)
	if o.DetectMove {
		t.Error("DetectMove should be false")
	}
	if !o.IncludeValueOnMove || !o.CloneDiffValues || !o.OmitRemovedValues || !o.StrictWire {
		t.Error("boolean options should all be true")
	}
	if o.TextDiffMinLength != 10 {
		t.Errorf("TextDiffMinLength = %d, want 10", o.TextDiffMinLength)
	}
}

func TestWithLoggerNilFallsBackToNop(t *testing.T) {
	o := New(WithLogger(nil))
	if _, ok := o.Logger.(nopLogger); !ok {
		t.Errorf("Logger = %T, want nopLogger after WithLogger(nil)", o.Logger)
	}
}
