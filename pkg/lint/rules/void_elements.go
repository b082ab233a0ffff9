package rules

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// voidElements lists the tags that never take a closing tag, per the
// HTML living standard.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// VoidElementTrailingSlashRule flags "/>" on void elements, where the
// slash has no effect.
type VoidElementTrailingSlashRule struct {
	lint.BaseRule
}

// NewVoidElementTrailingSlashRule creates the void-element-trailing-slash rule.
func NewVoidElementTrailingSlashRule() *VoidElementTrailingSlashRule {
	return &VoidElementTrailingSlashRule{
		BaseRule: lint.NewBaseRule(
			"void-element-trailing-slash",
			"Void elements should not end with \"/>\"",
		),
	}
}

// Check flags each self-closing void element and offers to delete the
// slash together with any whitespace directly before it.
func (r *VoidElementTrailingSlashRule) Check(ctx context.Context, d *doc.Document) ([]lint.Warning, error) {
	var warnings []lint.Warning
	for _, el := range d.Elements {
		if !el.SelfClosing || !voidElements[el.TagName] {
			continue
		}
		w := lint.NewWarning(r.Code(), el.SlashRange,
			fmt.Sprintf("trailing slash on void element <%s>", el.TagName)).
			WithEdit(fix.Delete(el.SlashRange)).
			Build()
		warnings = append(warnings, w)
	}
	return warnings, nil
}
