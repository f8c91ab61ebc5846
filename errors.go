package jsondiffpatch

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Patch and Reverse. Diff never fails.
var (
	ErrInvalidPatchShape   = errors.New("jsondiffpatch: invalid patch shape")
	ErrIndexOutOfBounds    = errors.New("jsondiffpatch: index out of bounds")
	ErrApplyTextDiffFailed = errors.New("jsondiffpatch: text diff application failed")
	ErrInternalLogic       = errors.New("jsondiffpatch: internal logic error")
	ErrInvalidMoveDelta    = errors.New("jsondiffpatch: move delta cannot be reversed in isolation")
)

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidPatchShape}, args...)...)
}

func indexOutOfBoundsError(op string, index, length int) error {
	return fmt.Errorf("%w: %s index %d, length %d", ErrIndexOutOfBounds, op, index, length)
}

func internalLogicErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInternalLogic}, args...)...)
}

func textDiffErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrApplyTextDiffFailed}, args...)...)
}
