package jsondiffpatch

import "strconv"

// reverseInput is the per-context input for the reverse pipeline: just
// the delta being inverted — reverse needs no reference to the values
// it was computed from (spec.md §4.7).
type reverseInput struct {
	Delta *Delta
}

type reverseContext = Context[reverseInput, *Delta]
type reverseChild = Child[reverseInput, *Delta]

// reversePipeline implements the structural inversion of spec.md
// §4.2/§4.7. original_source/src/pipeline/reverse_pipeline.rs is
// explicitly incomplete there (its Object arm is `todo!()` and its
// Array arm reuses the forward handle_array against the wrong side of
// the patch); neither is followed here. This instead implements the
// inversion rules spec.md actually specifies, using
// original_source/src/types.rs only to confirm Delta field shapes.
type reversePipeline struct {
	opts *Options
}

// Reverse computes D⁻¹ such that Patch(R, D⁻¹) recovers L, given D was
// produced by Diff(L, R, opts). Returns ErrInvalidMoveDelta if d
// contains a Moved delta outside of an Array (which cannot be inverted
// in isolation).
func Reverse(d *Delta, opts *Options) (*Delta, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if d.None() {
		return &Delta{Kind: KindNone}, nil
	}
	ctx := NewContext[reverseInput, *Delta](reverseInput{Delta: d})
	p := &reversePipeline{opts: opts}
	if err := Run[reverseInput, *Delta](ctx, p); err != nil {
		return nil, err
	}
	res, ok := ctx.PopResult()
	if !ok {
		return &Delta{Kind: KindNone}, nil
	}
	return res, nil
}

// Unpatch applies reverse(delta) to right, recovering left. Grounded
// on original_source/src/diffpatcher.rs's unpatch = patch(reverse(delta)).
func Unpatch(right any, delta *Delta, opts *Options) (any, error) {
	reversed, err := Reverse(delta, opts)
	if err != nil {
		return nil, err
	}
	return Patch(right, reversed, opts)
}

func (p *reversePipeline) Process(ctx *reverseContext, children *[]reverseChild) error {
	d := ctx.Input.Delta
	if d == nil || d.Kind == KindNone {
		ctx.SetResult(&Delta{Kind: KindNone}).Exit()
		return nil
	}

	switch d.Kind {
	case KindAdded:
		ctx.SetResult(Deleted(d.Value)).Exit()
		return nil

	case KindDeleted:
		ctx.SetResult(Added(d.Value)).Exit()
		return nil

	case KindModified:
		ctx.SetResult(Modified(d.Value, d.Old)).Exit()
		return nil

	case KindTextDiff:
		reversed, err := reverseUnifiedPatch(d.Text)
		if err != nil {
			return err
		}
		ctx.SetResult(TextDiffDelta(reversed)).Exit()
		return nil

	case KindMoved:
		return ErrInvalidMoveDelta

	case KindObject:
		for k, child := range d.Children {
			childCtx := NewContext[reverseInput, *Delta](reverseInput{Delta: child})
			*children = append(*children, reverseChild{Name: k, Ctx: childCtx})
		}
		return nil

	case KindArray:
		return p.processArray(ctx, children, d)
	}

	return internalLogicErrorf("unrecognized delta kind %v", d.Kind)
}

// processArray inverts an Array delta: RemovedOrMoved/Deleted becomes
// NewOrModified/Added, NewOrModified/Added becomes RemovedOrMoved/
// Deleted, and a Moved's source/destination swap. Entries that carry a
// nested modification (anything else at a NewOrModified index) recurse
// and are re-keyed at the same index, since a content-only change
// does not shift array position (spec.md §4.4 steps 6–8).
func (p *reversePipeline) processArray(ctx *reverseContext, children *[]reverseChild, d *Delta) error {
	var items []ArrayOp
	for _, op := range d.Items {
		switch {
		case op.Key.Kind == RemovedOrMoved && op.Delta != nil && op.Delta.Kind == KindDeleted:
			items = append(items, ArrayOp{
				Key:   IndexKey{Kind: NewOrModified, Index: op.Key.Index},
				Delta: Added(op.Delta.Value),
			})

		case op.Key.Kind == NewOrModified && op.Delta != nil && op.Delta.Kind == KindAdded:
			items = append(items, ArrayOp{
				Key:   IndexKey{Kind: RemovedOrMoved, Index: op.Key.Index},
				Delta: Deleted(op.Delta.Value),
			})

		case op.Key.Kind == RemovedOrMoved && op.Delta != nil && op.Delta.Kind == KindMoved:
			items = append(items, ArrayOp{
				Key:   IndexKey{Kind: RemovedOrMoved, Index: op.Delta.NewIndex},
				Delta: MovedDelta(op.Key.Index, op.Delta.Value, op.Delta.ValuePresent),
			})

		case op.Key.Kind == NewOrModified && op.Delta != nil:
			childCtx := NewContext[reverseInput, *Delta](reverseInput{Delta: op.Delta})
			*children = append(*children, reverseChild{Name: strconv.Itoa(op.Key.Index), Ctx: childCtx})

		default:
			return internalLogicErrorf("unrecognized array delta entry at %s", op.Key.WireKey())
		}
	}
	ctx.SetResult(ArrayDelta(items)).Exit()
	return nil
}

func (p *reversePipeline) PostProcess(ctx *reverseContext, children []reverseChild) error {
	d := ctx.Input.Delta
	if d == nil {
		return nil
	}
	switch d.Kind {
	case KindObject:
		out := make(map[string]*Delta, len(children))
		for _, c := range children {
			res, _ := c.Ctx.PopResult()
			out[c.Name] = res
		}
		ctx.SetResult(ObjectDelta(out))

	case KindArray:
		if len(children) == 0 {
			return nil
		}
		existing, _ := ctx.Result()
		merged := append([]ArrayOp(nil), existing.Items...)
		for _, c := range children {
			idx, err := strconv.Atoi(c.Name)
			if err != nil {
				continue
			}
			res, _ := c.Ctx.PopResult()
			merged = append(merged, ArrayOp{Key: IndexKey{Kind: NewOrModified, Index: idx}, Delta: res})
		}
		ctx.SetResult(ArrayDelta(merged))
	}
	return nil
}
