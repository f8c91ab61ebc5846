package jsondiffpatch

// Clone returns a structurally independent deep copy of a JSON value
// (nil/bool/number/string/[]any/map[string]any). Exposed as part of
// the public API surface (spec.md §6); diff.go uses the same logic
// internally when Options.CloneDiffValues is set.
func Clone(v any) any {
	return cloneValue(v)
}
