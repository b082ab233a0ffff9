// Package fix provides the textual fix model and the conflict-aware
// application engine: replacements grouped into atomic edits, a
// first-come-first-served partition of edits into compatible and
// incompatible sets, and right-to-left splicing of the accepted
// replacements into current file contents.
package fix

import "github.com/yaklabco/gohtmlint/pkg/doc"

// Replacement deletes the text covered by Range and inserts Text in
// its place. A zero-width range is a pure insertion.
type Replacement struct {
	Range doc.SourceRange
	Text  string
}

// Edit is an ordered, non-empty sequence of replacements that applies
// atomically: either every replacement lands or none does. One edit may
// touch several disjoint ranges and may span multiple files.
type Edit []Replacement

// Replace builds a single-replacement edit.
func Replace(r doc.SourceRange, text string) Edit {
	return Edit{{Range: r, Text: text}}
}

// Delete builds an edit that removes the covered text.
func Delete(r doc.SourceRange) Edit {
	return Replace(r, "")
}

// Insert builds an edit that inserts text at pos.
func Insert(file string, pos doc.SourcePosition, text string) Edit {
	return Replace(doc.PointRange(file, pos), text)
}

// Files returns the distinct files the edit touches, in first-use order.
func (e Edit) Files() []string {
	var out []string
	seen := make(map[string]struct{}, 1)
	for _, r := range e {
		if _, ok := seen[r.Range.File]; ok {
			continue
		}
		seen[r.Range.File] = struct{}{}
		out = append(out, r.Range.File)
	}
	return out
}
