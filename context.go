package jsondiffpatch

// Context bundles one pipeline step's inputs, an optional result slot,
// and an early-exit flag, parameterized over the step's input type In
// and result type Result. This is the same shape as spec.md §4.1's
// context; the parent/root/next-sibling pointers present in
// original_source/src/context.rs are confirmed vestigial there (no
// behavior outside the runtime depends on them) and are dropped here,
// per spec.md §9.
type Context[In any, Result any] struct {
	Input   In
	result  *Result
	exiting bool
}

// NewContext builds a Context wrapping input, with no result set.
func NewContext[In any, Result any](input In) *Context[In, Result] {
	return &Context[In, Result]{Input: input}
}

// SetResult stores r as this context's result. Returns the context for
// chaining with Exit, mirroring set_result(...).exit() in the source
// material.
func (c *Context[In, Result]) SetResult(r Result) *Context[In, Result] {
	c.result = &r
	return c
}

// Exit marks the context as no longer accepting further result
// mutation from the current pipeline step. It does not prevent
// PostProcess from running.
func (c *Context[In, Result]) Exit() *Context[In, Result] {
	c.exiting = true
	return c
}

// Exiting reports whether Exit was called during Process.
func (c *Context[In, Result]) Exiting() bool {
	return c.exiting
}

// HasResult reports whether a result is currently stored.
func (c *Context[In, Result]) HasResult() bool {
	return c.result != nil
}

// Result returns the stored result without clearing it.
func (c *Context[In, Result]) Result() (Result, bool) {
	if c.result == nil {
		var zero Result
		return zero, false
	}
	return *c.result, true
}

// PopResult returns and clears the stored result.
func (c *Context[In, Result]) PopResult() (Result, bool) {
	if c.result == nil {
		var zero Result
		return zero, false
	}
	r := *c.result
	c.result = nil
	return r, true
}
