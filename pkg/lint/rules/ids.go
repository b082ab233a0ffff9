package rules

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// NoDuplicateIDsRule flags id values that appear on more than one
// element in a document. It offers no fix; renaming an id silently
// breaks whatever selects it.
type NoDuplicateIDsRule struct {
	lint.BaseRule
}

// NewNoDuplicateIDsRule creates the no-duplicate-ids rule.
func NewNoDuplicateIDsRule() *NoDuplicateIDsRule {
	return &NoDuplicateIDsRule{
		BaseRule: lint.NewBaseRule(
			"no-duplicate-ids",
			"id values must be unique within a document",
		),
	}
}

// Check reports the second and later elements carrying each id value.
// Empty id values are skipped.
func (r *NoDuplicateIDsRule) Check(ctx context.Context, d *doc.Document) ([]lint.Warning, error) {
	first := make(map[string]doc.SourceRange)
	var warnings []lint.Warning
	for _, el := range d.Elements {
		attr, ok := el.Attr("id")
		if !ok || attr.Value == "" {
			continue
		}
		prev, dup := first[attr.Value]
		if !dup {
			first[attr.Value] = attr.ValueRange
			continue
		}
		w := lint.NewWarning(r.Code(), attr.ValueRange,
			fmt.Sprintf("duplicate id %q, first used at %s", attr.Value, prev.Start)).
			WithSeverity(doc.SeverityError).
			Build()
		warnings = append(warnings, w)
	}
	return warnings, nil
}
