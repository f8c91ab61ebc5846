package jsondiffpatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FormatTextString is a convenience wrapper around FormatText that
// returns a string instead of writing to an io.Writer. Grounded on
// qri-io/deepdiff's FormatPrettyString.
func FormatTextString(d *Delta, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatText(buf, d, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatText writes a human-readable report of d to w: one line per
// leaf change, labelled with its kind and its full path from the root
// ("$.a.b", "$[_1]"). Lines are not indented by depth; nesting shows
// only in the path. If colorTTY is
// true, insertions are green, deletions red, updates/moves blue.
// Grounded on qri-io/deepdiff's FormatPretty.
func FormatText(w io.Writer, d *Delta, colorTTY bool) error {
	var colors map[Kind]string
	if colorTTY {
		colors = map[Kind]string{
			KindAdded:    "\x1b[32m",
			KindDeleted:  "\x1b[31m",
			KindModified: "\x1b[34m",
			KindTextDiff: "\x1b[34m",
			KindMoved:    "\x1b[34m",
		}
	}
	return formatDelta(w, "$", d, 0, colors)
}

func formatDelta(w io.Writer, path string, d *Delta, indent int, colors map[Kind]string) error {
	if d == nil || d.Kind == KindNone {
		return nil
	}
	switch d.Kind {
	case KindObject:
		for _, k := range sortedKeys(d.Children) {
			if err := formatDelta(w, path+"."+k, d.Children[k], indent, colors); err != nil {
				return err
			}
		}
		return nil
	case KindArray:
		for _, op := range d.Items {
			child := op.Delta
			childPath := fmt.Sprintf("%s[%s]", path, op.Key.WireKey())
			if child != nil && (child.Kind == KindObject || child.Kind == KindArray) {
				if err := formatDelta(w, childPath, child, indent, colors); err != nil {
					return err
				}
				continue
			}
			if err := formatLeaf(w, childPath, child, indent, colors); err != nil {
				return err
			}
		}
		return nil
	default:
		return formatLeaf(w, path, d, indent, colors)
	}
}

func formatLeaf(w io.Writer, path string, d *Delta, indent int, colors map[Kind]string) error {
	if d == nil || d.Kind == KindNone {
		return nil
	}
	closeColor := ""
	if colors != nil {
		closeColor = "\x1b[0m"
	}
	data, err := summarizeLeaf(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%s%s %s: %s%s\n",
		strings.Repeat("  ", indent), colors[d.Kind], d.Kind, path, data, closeColor)
	return err
}

func summarizeLeaf(d *Delta) (string, error) {
	switch d.Kind {
	case KindAdded:
		return marshalCompact(d.Value)
	case KindDeleted:
		return marshalCompact(d.Value)
	case KindModified:
		oldStr, err := marshalCompact(d.Old)
		if err != nil {
			return "", err
		}
		newStr, err := marshalCompact(d.Value)
		if err != nil {
			return "", err
		}
		return oldStr + " -> " + newStr, nil
	case KindTextDiff:
		return d.Text, nil
	case KindMoved:
		return fmt.Sprintf("-> index %d", d.NewIndex), nil
	default:
		return "", nil
	}
}

func marshalCompact(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func sortedKeys(m map[string]*Delta) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatStats renders Stats as a one-line human-readable summary.
// Grounded on qri-io/deepdiff's formatStats.
func FormatStats(s Stats) string {
	insertWord := pluralize("insert", s.Inserts)
	deleteWord := pluralize("delete", s.Deletes)
	updateWord := pluralize("update", s.Updates)

	out := fmt.Sprintf("%d %s, %d %s, %d %s",
		s.Inserts, insertWord, s.Deletes, deleteWord, s.Updates, updateWord)
	if s.Moves > 0 {
		out += fmt.Sprintf(", %d %s", s.Moves, pluralize("move", s.Moves))
	}
	return out + "."
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
