package jsondiffpatch

import (
	"sort"
	"strconv"
)

// patchInput is the per-context input pair for the patch pipeline: the
// value being patched and the delta describing the change.
type patchInput struct {
	Left  any
	Delta *Delta
}

// patchResult distinguishes "produced this value" from "produced
// nothing" (a Deleted delta at this position) — the two cannot be
// conflated, since a JSON value of nil is itself meaningful (JSON
// null).
type patchResult struct {
	Value   any
	Present bool
}

type patchContext = Context[patchInput, patchResult]
type patchChild = Child[patchInput, patchResult]

// patchPipeline implements spec.md §4.6. Grounded closely on
// original_source/src/pipeline/patch_pipeline.rs, with one deliberate
// generalization documented in DESIGN.md and on applyArrayDelta below.
type patchPipeline struct {
	opts *Options
}

// Patch applies delta to left and returns the resulting value. A nil
// or KindNone delta returns left unchanged. A delta that deletes the
// root value returns (nil, nil).
func Patch(left any, delta *Delta, opts *Options) (any, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	ctx := NewContext[patchInput, patchResult](patchInput{Left: left, Delta: delta})
	p := &patchPipeline{opts: opts}
	if err := Run[patchInput, patchResult](ctx, p); err != nil {
		return nil, err
	}
	res, ok := ctx.PopResult()
	if !ok || !res.Present {
		return nil, nil
	}
	return res.Value, nil
}

func (p *patchPipeline) Process(ctx *patchContext, children *[]patchChild) error {
	left := ctx.Input.Left
	d := ctx.Input.Delta

	if d == nil || d.Kind == KindNone {
		ctx.SetResult(patchResult{Value: left, Present: true}).Exit()
		return nil
	}

	switch d.Kind {
	case KindAdded:
		ctx.SetResult(patchResult{Value: d.Value, Present: true}).Exit()
		return nil

	case KindModified:
		ctx.SetResult(patchResult{Value: d.Value, Present: true}).Exit()
		return nil

	case KindDeleted:
		// The key/slot is removed; surfaced to the parent Object/Array
		// post-process, or to the caller at the root.
		ctx.SetResult(patchResult{Present: false}).Exit()
		return nil

	case KindMoved:
		return internalLogicErrorf("Moved delta encountered outside an Array")

	case KindTextDiff:
		s, ok := left.(string)
		if !ok {
			return shapeErrorf("TextDiff delta against non-string value")
		}
		newText, err := applyTextDiff(p.opts, s, d.Text)
		if err != nil {
			return err
		}
		ctx.SetResult(patchResult{Value: newText, Present: true}).Exit()
		return nil

	case KindObject:
		leftObj, err := asObjectOrEmpty(left)
		if err != nil {
			return err
		}
		for k, child := range d.Children {
			childCtx := NewContext[patchInput, patchResult](patchInput{Left: leftObj[k], Delta: child})
			*children = append(*children, patchChild{Name: k, Ctx: childCtx})
		}
		return nil

	case KindArray:
		leftArr, ok := left.([]any)
		if !ok {
			return shapeErrorf("Array delta against non-array value")
		}
		newArray, modifications, err := applyArrayDelta(leftArr, d.Items)
		if err != nil {
			return err
		}
		for _, mod := range modifications {
			childCtx := NewContext[patchInput, patchResult](patchInput{Left: mod.value, Delta: mod.delta})
			*children = append(*children, patchChild{Name: strconv.Itoa(mod.index), Ctx: childCtx})
		}
		ctx.SetResult(patchResult{Value: newArray, Present: true}).Exit()
		return nil
	}

	return internalLogicErrorf("unrecognized delta kind %v", d.Kind)
}

func (p *patchPipeline) PostProcess(ctx *patchContext, children []patchChild) error {
	d := ctx.Input.Delta
	if d == nil {
		return nil
	}
	switch d.Kind {
	case KindObject:
		return p.postProcessObject(ctx, children)
	case KindArray:
		return p.postProcessArray(ctx, children)
	}
	return nil
}

func (p *patchPipeline) postProcessObject(ctx *patchContext, children []patchChild) error {
	if len(children) == 0 {
		ctx.SetResult(patchResult{Value: ctx.Input.Left, Present: true})
		return nil
	}
	leftObj, err := asObjectOrEmpty(ctx.Input.Left)
	if err != nil {
		return err
	}
	out := make(map[string]any, len(leftObj))
	for k, v := range leftObj {
		out[k] = v
	}
	for _, c := range children {
		res, ok := c.Ctx.PopResult()
		if ok && res.Present {
			out[c.Name] = res.Value
		} else {
			delete(out, c.Name)
		}
	}
	ctx.SetResult(patchResult{Value: out, Present: true})
	return nil
}

func (p *patchPipeline) postProcessArray(ctx *patchContext, children []patchChild) error {
	res, ok := ctx.Result()
	if !ok {
		return internalLogicErrorf("array patch result missing before post-process")
	}
	arr, ok := res.Value.([]any)
	if !ok {
		return shapeErrorf("array patch result is not an array")
	}
	for _, c := range children {
		idx, err := strconv.Atoi(c.Name)
		if err != nil {
			continue
		}
		cr, ok := c.Ctx.PopResult()
		if !ok || !cr.Present {
			continue
		}
		if idx >= 0 && idx < len(arr) {
			arr[idx] = cr.Value
		}
	}
	ctx.SetResult(patchResult{Value: arr, Present: true})
	return nil
}

func asObjectOrEmpty(v any) (map[string]any, error) {
	switch vv := v.(type) {
	case map[string]any:
		return vv, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, shapeErrorf("Object delta against non-object value")
	}
}

// arrayModification is a NewOrModified slot whose delta requires
// recursion (anything other than Added) rather than direct assignment.
type arrayModification struct {
	index int
	value any
	delta *Delta
}

// applyArrayDelta implements spec.md §4.6's two-phase array patch
// procedure. Grounded closely on
// original_source/src/pipeline/patch_pipeline.rs's handle_array for
// the index arithmetic (sort by IndexKey, process in descending order
// so removals don't shift not-yet-processed indices, then insert in
// ascending order against the shrunken array).
//
// One deliberate generalization from the Rust source: handle_array
// there only recurses when the NewOrModified slot's delta is literally
// Delta::Modified, erroring on anything else. That rejects a nested
// Object/Array/TextDiff delta at an array position — which
// arrays.go's postProcessArrayMerge can legitimately produce. This
// implementation instead treats any non-Added delta found at a
// NewOrModified index as a recursible modification, matching spec.md
// §4.6 step 4 and §4.4 step 8's general recursion contract. See
// DESIGN.md.
func applyArrayDelta(left []any, items []ArrayOp) ([]any, []arrayModification, error) {
	newArray := append([]any(nil), left...)

	type insertion struct {
		index int
		value any
	}
	var toInsert []insertion
	var modifications []arrayModification

	sorted := append([]ArrayOp(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key.Less(sorted[j].Key) })

	for i := len(sorted) - 1; i >= 0; i-- {
		op := sorted[i]
		switch op.Key.Kind {
		case RemovedOrMoved:
			idx := op.Key.Index
			if idx < 0 || idx >= len(newArray) {
				return nil, nil, indexOutOfBoundsError("remove", idx, len(newArray))
			}
			removedValue := newArray[idx]
			newArray = append(newArray[:idx], newArray[idx+1:]...)

			switch {
			case op.Delta == nil || op.Delta.Kind == KindDeleted:
				// dropped permanently
			case op.Delta.Kind == KindMoved:
				toInsert = append(toInsert, insertion{index: op.Delta.NewIndex, value: removedValue})
			default:
				return nil, nil, shapeErrorf("only Deleted or Moved may address a RemovedOrMoved array index")
			}

		case NewOrModified:
			idx := op.Key.Index
			switch {
			case op.Delta != nil && op.Delta.Kind == KindAdded:
				toInsert = append(toInsert, insertion{index: idx, value: op.Delta.Value})
			case op.Delta != nil:
				if idx < 0 || idx >= len(left) {
					return nil, nil, indexOutOfBoundsError("modify", idx, len(left))
				}
				modifications = append(modifications, arrayModification{index: idx, value: left[idx], delta: op.Delta})
			default:
				return nil, nil, shapeErrorf("missing delta at a NewOrModified array index")
			}
		}
	}

	sort.SliceStable(toInsert, func(i, j int) bool { return toInsert[i].index < toInsert[j].index })
	for _, ins := range toInsert {
		if ins.index < 0 || ins.index > len(newArray) {
			return nil, nil, indexOutOfBoundsError("insert", ins.index, len(newArray))
		}
		newArray = append(newArray, nil)
		copy(newArray[ins.index+1:], newArray[ins.index:])
		newArray[ins.index] = ins.value
	}

	return newArray, modifications, nil
}
