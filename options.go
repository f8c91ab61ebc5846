package jsondiffpatch

// DefaultTextDiffMinLength is the minimum length, on both sides, a
// string pair must have before a TextDiff delta is attempted instead of
// a plain Modified.
const DefaultTextDiffMinLength = 60

// Options configures diffing, patching and serialization. The zero
// value is not meaningful on its own; use DefaultOptions or New.
type Options struct {
	// DetectMove attempts to recognize a paired array delete+add of a
	// structurally equal value as a single Moved entry.
	DetectMove bool

	// IncludeValueOnMove embeds the moved value alongside a Moved
	// record. When false, Moved carries no value.
	IncludeValueOnMove bool

	// TextDiffMinLength is the minimum byte length of both strings
	// before a TextDiff is attempted; shorter pairs fall back to
	// Modified.
	TextDiffMinLength int

	// CloneDiffValues deep-copies values embedded into a produced
	// delta, so the delta outlives the inputs it was computed from.
	CloneDiffValues bool

	// OmitRemovedValues elides the old-value payload of
	// Modified/Deleted/Moved deltas. This makes the delta smaller but
	// irreversible in the general case (see DESIGN.md).
	OmitRemovedValues bool

	// StrictWire switches the Deleted/TextDiff middle slot from the
	// default null to the historical 0, for byte compatibility with
	// the reference JS/TS jsondiffpatch implementation.
	StrictWire bool

	// Logger receives diagnostic warnings (currently: per-hunk
	// text-diff application failures). Defaults to a no-op logger.
	Logger Logger
}

// Option mutates an Options value produced by New or DefaultOptions.
type Option func(*Options)

// WithDetectMove toggles array move detection. Default true.
func WithDetectMove(detect bool) Option {
	return func(o *Options) { o.DetectMove = detect }
}

// WithIncludeValueOnMove toggles embedding the moved value. Default false.
func WithIncludeValueOnMove(include bool) Option {
	return func(o *Options) { o.IncludeValueOnMove = include }
}

// WithTextDiffMinLength sets the text-diff threshold. Default 60.
func WithTextDiffMinLength(n int) Option {
	return func(o *Options) { o.TextDiffMinLength = n }
}

// WithCloneDiffValues toggles deep-copying values embedded in deltas.
func WithCloneDiffValues(clone bool) Option {
	return func(o *Options) { o.CloneDiffValues = clone }
}

// WithOmitRemovedValues toggles eliding old-value payloads.
func WithOmitRemovedValues(omit bool) Option {
	return func(o *Options) { o.OmitRemovedValues = omit }
}

// WithStrictWire toggles historical `0`-for-null wire compatibility.
func WithStrictWire(strict bool) Option {
	return func(o *Options) { o.StrictWire = strict }
}

// WithLogger installs a Logger. A nil logger installs the no-op logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = nopLogger{}
		}
		o.Logger = l
	}
}

// DefaultOptions returns the engine's default configuration: move
// detection on, moved values omitted, a 60-byte text-diff threshold,
// no value cloning, no value omission, non-strict (null) wire slots,
// and a no-op logger.
func DefaultOptions() *Options {
	return &Options{
		DetectMove:         true,
		IncludeValueOnMove: false,
		TextDiffMinLength:  DefaultTextDiffMinLength,
		CloneDiffValues:    false,
		OmitRemovedValues:  false,
		StrictWire:         false,
		Logger:             nopLogger{},
	}
}

// New builds an Options starting from DefaultOptions and applying opts
// in order.
func New(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
