package lint

import "github.com/yaklabco/gohtmlint/pkg/doc"

// Filter returns the warnings that survive the documents' inline
// directives, preserving order.
//
// A directive affects a warning when it applies to the warning's code,
// sits in the same file, and ends strictly before the warning's range
// starts. The affecting directives fold in source order over a state that
// starts enabled; the warning survives iff the final state is enabled.
// A directive therefore never affects warnings at or before its own
// position, and a later enable always overrides an earlier disable.
func Filter(warnings []Warning, docs []*doc.Document) []Warning {
	var directives []doc.Directive
	for _, d := range docs {
		directives = append(directives, d.Directives...)
	}
	return filterWarnings(warnings, directives)
}

func filterWarnings(warnings []Warning, directives []doc.Directive) []Warning {
	if len(directives) == 0 || len(warnings) == 0 {
		return warnings
	}

	// Directive relevance depends only on the code, so the relevant
	// subset is computed once per distinct code.
	relevant := make(map[string][]doc.Directive)
	relevantFor := func(code string) []doc.Directive {
		if ds, ok := relevant[code]; ok {
			return ds
		}
		var ds []doc.Directive
		for _, d := range directives {
			if d.AppliesTo(code) {
				ds = append(ds, d)
			}
		}
		relevant[code] = ds
		return ds
	}

	kept := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		if warningEnabled(w, relevantFor(w.Code)) {
			kept = append(kept, w)
		}
	}
	return kept
}

// warningEnabled folds the relevant directives over one warning.
func warningEnabled(w Warning, directives []doc.Directive) bool {
	enabled := true
	for _, d := range directives {
		if d.Range.File != w.Range.File {
			continue
		}
		if doc.ComparePositions(d.Range.End, w.Range.Start) >= 0 {
			continue
		}
		switch d.Verb() {
		case doc.DirectiveEnable:
			enabled = true
		case doc.DirectiveDisable:
			enabled = false
		}
	}
	return enabled
}
