package jsondiffpatch

// diffInput is the per-context input pair for the diff pipeline.
type diffInput struct {
	Left, Right any
}

type diffContext = Context[diffInput, Delta]
type diffChild = Child[diffInput, Delta]

// diffPipeline implements the diff dispatch of spec.md §4.3: identity,
// appearance transitions, type-mismatch-or-primitive, string, array,
// object. Grounded on original_source/src/pipeline/diff_pipeline.rs
// for dispatch order and pkg/state/delta.go's computeDiff for the
// nil-check-first structure.
type diffPipeline struct {
	opts *Options
}

// Diff computes the delta that transforms left into right under opts.
// A nil opts uses DefaultOptions(). Diff never fails.
func Diff(left, right any, opts *Options) *Delta {
	if opts == nil {
		opts = DefaultOptions()
	}
	ctx := NewContext[diffInput, Delta](diffInput{Left: left, Right: right})
	p := &diffPipeline{opts: opts}
	_ = Run[diffInput, Delta](ctx, p)
	res, ok := ctx.PopResult()
	if !ok {
		return &Delta{Kind: KindNone}
	}
	d := res
	return &d
}

func (p *diffPipeline) Process(ctx *diffContext, children *[]diffChild) error {
	left, right := ctx.Input.Left, ctx.Input.Right

	if deepEqual(left, right) {
		ctx.SetResult(Delta{Kind: KindNone}).Exit()
		return nil
	}
	if left == nil && right != nil {
		ctx.SetResult(Delta{Kind: KindAdded, Value: p.maybeClone(right)}).Exit()
		return nil
	}
	if right == nil && left != nil {
		ctx.SetResult(*p.deletedValue(left)).Exit()
		return nil
	}

	lt, rt := jsonType(left), jsonType(right)
	if lt != rt || lt == kindBool || lt == kindNumber {
		ctx.SetResult(p.modifiedResult(left, right)).Exit()
		return nil
	}

	switch lt {
	case kindString:
		ctx.SetResult(*diffText(p.opts, left.(string), right.(string))).Exit()
	case kindArray:
		p.processArray(ctx, children, left.([]any), right.([]any))
	case kindObject:
		p.processObject(children, left.(map[string]any), right.(map[string]any))
	default:
		ctx.SetResult(Delta{Kind: KindNone}).Exit()
	}
	return nil
}

func (p *diffPipeline) PostProcess(ctx *diffContext, children []diffChild) error {
	switch {
	case isObject(ctx.Input.Left) && isObject(ctx.Input.Right):
		p.postProcessObject(ctx, children)
	case isArray(ctx.Input.Left) && isArray(ctx.Input.Right):
		p.postProcessArrayMerge(ctx, children)
	}
	return nil
}

func (p *diffPipeline) processObject(children *[]diffChild, left, right map[string]any) {
	for _, k := range unionKeys(left, right) {
		childCtx := NewContext[diffInput, Delta](diffInput{Left: left[k], Right: right[k]})
		*children = append(*children, diffChild{Name: k, Ctx: childCtx})
	}
}

func (p *diffPipeline) postProcessObject(ctx *diffContext, children []diffChild) {
	out := make(map[string]*Delta, len(children))
	for _, c := range children {
		res, ok := c.Ctx.PopResult()
		if !ok || res.Kind == KindNone {
			continue
		}
		d := res
		out[c.Name] = &d
	}
	if len(out) == 0 {
		ctx.SetResult(Delta{Kind: KindNone})
		return
	}
	ctx.SetResult(Delta{Kind: KindObject, Children: out})
}

func (p *diffPipeline) maybeClone(v any) any {
	if p.opts.CloneDiffValues {
		return cloneValue(v)
	}
	return v
}

func (p *diffPipeline) deletedValue(v any) *Delta {
	if p.opts.OmitRemovedValues {
		return Deleted(nil)
	}
	return Deleted(p.maybeClone(v))
}

func (p *diffPipeline) movedValue(v any, newIndex int) *Delta {
	if p.opts.IncludeValueOnMove && !p.opts.OmitRemovedValues {
		return MovedDelta(newIndex, p.maybeClone(v), true)
	}
	return MovedDelta(newIndex, nil, false)
}

func (p *diffPipeline) modifiedResult(left, right any) Delta {
	old := p.maybeClone(left)
	if p.opts.OmitRemovedValues {
		old = nil
	}
	return Delta{Kind: KindModified, Old: old, Value: p.maybeClone(right)}
}
