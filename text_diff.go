package jsondiffpatch

import (
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffText implements spec.md §4.5: below the configured threshold,
// fall back to Modified; otherwise invoke the text-diff primitive and
// emit TextDiff. Grounded on
// original_source/src/pipeline/texts.rs, using
// github.com/sergi/go-diff/diffmatchpatch in place of
// diff_match_patch_rs (real-world usage of this library confirmed in
// other_examples/d037e558_shric-kubecfg__pkg-kubecfg-diff.go.go).
func diffText(opts *Options, l, r string) *Delta {
	minLen := opts.TextDiffMinLength
	if minLen <= 0 {
		minLen = DefaultTextDiffMinLength
	}
	if len(l) < minLen || len(r) < minLen {
		d := Modified(l, r)
		if opts.OmitRemovedValues {
			d.Old = nil
		}
		return d
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(l, r, false)
	patches := dmp.PatchMake(l, diffs)
	return TextDiffDelta(dmp.PatchToText(patches))
}

// applyTextDiff applies a TextDiff patch produced by diffText to left,
// per spec.md §4.6: a per-hunk application failure is logged and does
// not abort unless every hunk fails, in which case
// ErrApplyTextDiffFailed is returned.
func applyTextDiff(opts *Options, left, patchText string) (string, error) {
	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(patchText)
	if err != nil {
		return "", textDiffErrorf("parse patch: %v", err)
	}

	newText, results := dmp.PatchApply(patches, left)

	failed := 0
	for i, ok := range results {
		if !ok {
			failed++
			opts.Logger.Warn("text diff hunk failed to apply", map[string]any{
				"hunk":  i,
				"total": len(results),
			})
		}
	}
	if len(results) > 0 && failed == len(results) {
		return "", textDiffErrorf("all %d hunks failed to apply", failed)
	}
	return newText, nil
}

// patchHeaderRe matches a diffmatchpatch unidiff hunk header:
// "@@ -start[,len] +start[,len] @@" with optional trailing content.
var patchHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(.*)$`)

// reverseUnifiedPatch inverts a unidiff-style text patch line-by-line:
// '-' and '+' line prefixes are swapped, and each hunk header's two
// ranges are swapped. This is spec.md §4.2/§4.7's "TextDiff(p) →
// TextDiff(p') where p' is the reversed unidiff" and §9's open
// question — diffmatchpatch has no native patch-reversal call, so this
// is hand-written rather than grounded on a library function.
func reverseUnifiedPatch(patchText string) (string, error) {
	lines := strings.Split(patchText, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "@@ "):
			m := patchHeaderRe.FindStringSubmatch(line)
			if m == nil {
				return "", textDiffErrorf("cannot reverse patch header %q", line)
			}
			out = append(out, reverseHunkHeader(m))
		case strings.HasPrefix(line, "-"):
			out = append(out, "+"+line[1:])
		case strings.HasPrefix(line, "+"):
			out = append(out, "-"+line[1:])
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}

func reverseHunkHeader(m []string) string {
	oldStart, oldLen, newStart, newLen, trailing := m[1], m[2], m[3], m[4], m[5]
	var b strings.Builder
	b.WriteString("@@ -")
	b.WriteString(newStart)
	if newLen != "" {
		b.WriteString(",")
		b.WriteString(newLen)
	}
	b.WriteString(" +")
	b.WriteString(oldStart)
	if oldLen != "" {
		b.WriteString(",")
		b.WriteString(oldLen)
	}
	b.WriteString(" @@")
	b.WriteString(trailing)
	return b.String()
}
