// Package jsondiffpatch computes, applies, reverses and serializes
// structural deltas between JSON-shaped values, wire-compatible with
// the jsondiffpatch delta format. Grounded on
// original_source/src/diffpatcher.rs's DiffPatcher facade.
package jsondiffpatch

// Processor bundles a fixed set of Options with the Diff/Patch/Reverse
// operations, so callers configuring move detection, text-diff
// thresholds, or logging once don't need to thread Options through
// every call.
type Processor struct {
	opts *Options
}

// NewProcessor builds a Processor from the given options, applying
// DefaultOptions() first and letting opts override it.
func NewProcessor(opts ...Option) *Processor {
	return &Processor{opts: New(opts...)}
}

// Diff computes the delta that transforms left into right.
func (p *Processor) Diff(left, right any) *Delta {
	return Diff(left, right, p.opts)
}

// Patch applies delta to left, returning the resulting value.
func (p *Processor) Patch(left any, delta *Delta) (any, error) {
	return Patch(left, delta, p.opts)
}

// Reverse computes the inverse of delta.
func (p *Processor) Reverse(delta *Delta) (*Delta, error) {
	return Reverse(delta, p.opts)
}

// Unpatch applies the inverse of delta to right, recovering the
// original left value.
func (p *Processor) Unpatch(right any, delta *Delta) (any, error) {
	return Unpatch(right, delta, p.opts)
}

// Clone returns a deep, structurally independent copy of v.
func (p *Processor) Clone(v any) any {
	return Clone(v)
}

// Serialize renders delta into its wire form, honoring p's StrictWire
// setting.
func (p *Processor) Serialize(delta *Delta) (any, error) {
	return Serialize(delta, p.opts)
}
