package jsondiffpatch

// Child names a context produced by Process, to be recursed into before
// PostProcess runs on the parent.
type Child[In any, Result any] struct {
	Name string
	Ctx  *Context[In, Result]
}

// Pipeline is a single operation executed against a context, grounded
// on original_source/src/processor.rs's Processor/Filter pair. process
// is the forward step; it may set a result, call Exit, and/or append
// children to be recursed into. postProcess runs after every produced
// child has itself been fully processed (recursively), letting their
// results be folded into the parent.
//
// Diff never fails, so its Pipeline always returns nil errors; Patch
// and Reverse return a typed error at the first violation (spec.md
// §7), which Run propagates immediately, aborting the remaining
// recursion.
type Pipeline[In any, Result any] interface {
	Process(ctx *Context[In, Result], children *[]Child[In, Result]) error
	PostProcess(ctx *Context[In, Result], children []Child[In, Result]) error
}

// Run executes p against ctx: process, then depth-first recurse into
// each child in emission order, then post-process the parent. This is
// the single recursion contract shared by the diff, patch and reverse
// pipelines.
func Run[In any, Result any](ctx *Context[In, Result], p Pipeline[In, Result]) error {
	var children []Child[In, Result]
	if err := p.Process(ctx, &children); err != nil {
		return err
	}
	for i := range children {
		if err := Run(children[i].Ctx, p); err != nil {
			return err
		}
	}
	return p.PostProcess(ctx, children)
}
