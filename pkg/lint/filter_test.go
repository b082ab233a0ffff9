package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/doc"
)

// directiveAt builds a directive spanning columns 0-24 of one line.
func directiveAt(file string, line int, args ...string) doc.Directive {
	return doc.Directive{
		Range: doc.SourceRange{
			File:  file,
			Start: doc.SourcePosition{Line: line, Column: 0},
			End:   doc.SourcePosition{Line: line, Column: 24},
		},
		Args: args,
	}
}

// warningAt builds a zero-width warning at the given position.
func warningAt(file, code string, line, col int) Warning {
	return Warning{
		Code:     code,
		Message:  code,
		Severity: doc.SeverityWarning,
		Range:    doc.PointRange(file, doc.SourcePosition{Line: line, Column: col}),
	}
}

func keptCodes(warnings []Warning) []string {
	codes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestFilter_NoDirectives(t *testing.T) {
	warnings := []Warning{
		warningAt("a.html", "rule-a", 0, 0),
		warningAt("a.html", "rule-b", 3, 2),
	}

	kept := filterWarnings(warnings, nil)
	assert.Equal(t, warnings, kept)
}

func TestFilter_DisableAllCodes(t *testing.T) {
	directives := []doc.Directive{directiveAt("a.html", 1, "disable")}
	warnings := []Warning{
		warningAt("a.html", "rule-a", 3, 0),
		warningAt("a.html", "rule-b", 4, 0),
	}

	kept := filterWarnings(warnings, directives)
	assert.Empty(t, kept)
}

func TestFilter_DisableSpecificCode(t *testing.T) {
	directives := []doc.Directive{directiveAt("a.html", 1, "disable", "rule-a")}
	warnings := []Warning{
		warningAt("a.html", "rule-a", 3, 0),
		warningAt("a.html", "rule-b", 4, 0),
	}

	kept := filterWarnings(warnings, directives)
	assert.Equal(t, []string{"rule-b"}, keptCodes(kept))
}

func TestFilter_DisableThenEnableOneCode(t *testing.T) {
	directives := []doc.Directive{
		directiveAt("a.html", 2, "disable"),
		directiveAt("a.html", 4, "enable", "dom-module-invalid-attrs"),
	}
	warnings := []Warning{
		warningAt("a.html", "dom-module-invalid-attrs", 5, 0),
		warningAt("a.html", "no-duplicate-ids", 5, 0),
	}

	kept := filterWarnings(warnings, directives)
	require.Len(t, kept, 1)
	assert.Equal(t, "dom-module-invalid-attrs", kept[0].Code)
}

func TestFilter_DirectiveOnlyAffectsLaterWarnings(t *testing.T) {
	directives := []doc.Directive{directiveAt("a.html", 2, "disable")}
	warnings := []Warning{
		warningAt("a.html", "rule-a", 1, 0),  // before the directive
		warningAt("a.html", "rule-a", 2, 10), // inside the directive's range
		warningAt("a.html", "rule-a", 2, 24), // exactly at the directive's end
		warningAt("a.html", "rule-a", 2, 30), // after the directive, same line
		warningAt("a.html", "rule-a", 3, 0),
	}

	kept := filterWarnings(warnings, directives)
	require.Len(t, kept, 3)
	assert.Equal(t, doc.SourcePosition{Line: 1, Column: 0}, kept[0].Range.Start)
	assert.Equal(t, doc.SourcePosition{Line: 2, Column: 10}, kept[1].Range.Start)
	assert.Equal(t, doc.SourcePosition{Line: 2, Column: 24}, kept[2].Range.Start)
}

func TestFilter_EnableReenables(t *testing.T) {
	directives := []doc.Directive{
		directiveAt("a.html", 1, "disable"),
		directiveAt("a.html", 3, "enable"),
	}
	warnings := []Warning{
		warningAt("a.html", "rule-a", 2, 0),
		warningAt("a.html", "rule-a", 5, 0),
	}

	kept := filterWarnings(warnings, directives)
	require.Len(t, kept, 1)
	assert.Equal(t, doc.SourcePosition{Line: 5, Column: 0}, kept[0].Range.Start)
}

func TestFilter_CrossFileDirectiveIgnored(t *testing.T) {
	directives := []doc.Directive{directiveAt("a.html", 0, "disable")}
	warnings := []Warning{warningAt("b.html", "rule-a", 5, 0)}

	kept := filterWarnings(warnings, directives)
	assert.Len(t, kept, 1)
}

// Two directives at the same position fold in discovery order, so the
// later-listed one wins for any code both apply to.
func TestFilter_SamePositionDirectives(t *testing.T) {
	disableAll := directiveAt("a.html", 1, "disable")
	enableOne := directiveAt("a.html", 1, "enable", "no-duplicate-ids")
	w := warningAt("a.html", "no-duplicate-ids", 3, 0)

	kept := filterWarnings([]Warning{w}, []doc.Directive{disableAll, enableOne})
	assert.Len(t, kept, 1, "later-listed enable should win")

	kept = filterWarnings([]Warning{w}, []doc.Directive{enableOne, disableAll})
	assert.Empty(t, kept, "later-listed disable should win")
}

func TestFilter_OrderPreserved(t *testing.T) {
	directives := []doc.Directive{directiveAt("a.html", 2, "disable", "rule-b")}
	warnings := []Warning{
		warningAt("a.html", "rule-c", 4, 0),
		warningAt("a.html", "rule-b", 4, 1),
		warningAt("a.html", "rule-a", 4, 2),
		warningAt("a.html", "rule-c", 5, 0),
	}

	kept := filterWarnings(warnings, directives)
	assert.Equal(t, []string{"rule-c", "rule-a", "rule-c"}, keptCodes(kept))
}

func TestFilter_CollectsDirectivesFromDocuments(t *testing.T) {
	d := doc.NewDocument("a.html", []byte("<p>x</p>\n<p>y</p>\n<p>z</p>\n"))
	d.Directives = []doc.Directive{directiveAt("a.html", 1, "disable")}

	warnings := []Warning{
		warningAt("a.html", "rule-a", 0, 0),
		warningAt("a.html", "rule-a", 2, 0),
	}

	kept := Filter(warnings, []*doc.Document{d})
	require.Len(t, kept, 1)
	assert.Equal(t, doc.SourcePosition{Line: 0, Column: 0}, kept[0].Range.Start)
}
