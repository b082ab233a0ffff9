package rules

import (
	"context"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// standardDoctype is the declaration every document should carry.
const standardDoctype = "<!DOCTYPE html>"

// DeprecatedDoctypeRule flags legacy and XHTML doctype declarations.
type DeprecatedDoctypeRule struct {
	lint.BaseRule
}

// NewDeprecatedDoctypeRule creates the deprecated-doctype rule.
func NewDeprecatedDoctypeRule() *DeprecatedDoctypeRule {
	return &DeprecatedDoctypeRule{
		BaseRule: lint.NewBaseRule(
			"deprecated-doctype",
			"Documents should use the standard HTML5 doctype",
		),
	}
}

// Check flags any doctype that is not the plain HTML5 form. Documents
// without a doctype are left alone.
func (r *DeprecatedDoctypeRule) Check(ctx context.Context, d *doc.Document) ([]lint.Warning, error) {
	dt := d.Doctype
	if dt == nil || isModernDoctype(dt.Raw) {
		return nil, nil
	}

	w := lint.NewWarning(r.Code(), dt.Range, "legacy doctype, replace with "+standardDoctype).
		WithEdit(fix.Replace(dt.Range, standardDoctype)).
		Build()
	return []lint.Warning{w}, nil
}

// isModernDoctype reports whether raw is the HTML5 doctype, allowing
// case differences and extra whitespace.
func isModernDoctype(raw string) bool {
	s := strings.TrimPrefix(raw, "<!")
	s = strings.TrimSuffix(s, ">")
	fields := strings.Fields(s)
	return len(fields) == 2 &&
		strings.EqualFold(fields[0], "doctype") &&
		strings.EqualFold(fields[1], "html")
}
