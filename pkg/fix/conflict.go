package fix

import "github.com/yaklabco/gohtmlint/pkg/doc"

// rangesConflict reports whether two ranges collide: same file and
// ranges equal or overlapping. Equality is checked first so that two
// identical zero-width ranges conflict; beyond that the half-open
// overlap test lets ranges touch at their boundaries, and lets a
// zero-width range sit on another range's edge, without conflicting.
func rangesConflict(a, b doc.SourceRange) bool {
	if a.File != b.File {
		return false
	}
	if a == b {
		return true
	}
	return doc.ComparePositions(a.Start, b.End) < 0 &&
		doc.ComparePositions(b.Start, a.End) < 0
}

// selfConflicts reports whether any two replacements within one edit
// collide with each other. Quadratic, which is fine at the handful of
// replacements a single fix carries.
func selfConflicts(e Edit) bool {
	for i := 1; i < len(e); i++ {
		for j := 0; j < i; j++ {
			if rangesConflict(e[i].Range, e[j].Range) {
				return true
			}
		}
	}
	return false
}

// Partition splits edits into the accepted set and the incompatible
// remainder. Acceptance is first-come-first-served in input order: an
// edit is accepted iff none of its replacements conflicts internally or
// with a replacement of an already-accepted edit. The result is
// deterministic for a fixed input order, and rejected edits can be
// retried on a later pass once the source has been re-analyzed.
func Partition(edits []Edit) (accepted, incompatible []Edit) {
	acceptedByFile := make(map[string][]Replacement)

	for _, e := range edits {
		if !acceptable(e, acceptedByFile) {
			incompatible = append(incompatible, e)
			continue
		}

		accepted = append(accepted, e)
		for _, r := range e {
			acceptedByFile[r.Range.File] = append(acceptedByFile[r.Range.File], r)
		}
	}

	return accepted, incompatible
}

// acceptable checks an edit against itself and against everything
// accepted so far.
func acceptable(e Edit, acceptedByFile map[string][]Replacement) bool {
	if selfConflicts(e) {
		return false
	}
	for _, r := range e {
		for _, prev := range acceptedByFile[r.Range.File] {
			if rangesConflict(r.Range, prev.Range) {
				return false
			}
		}
	}
	return true
}
