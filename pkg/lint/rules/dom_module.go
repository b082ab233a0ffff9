package rules

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// DomModuleInvalidAttrsRule flags the deprecated name and is attributes
// on <dom-module> elements; modules are identified by id.
type DomModuleInvalidAttrsRule struct {
	lint.BaseRule
}

// NewDomModuleInvalidAttrsRule creates the dom-module-invalid-attrs rule.
func NewDomModuleInvalidAttrsRule() *DomModuleInvalidAttrsRule {
	return &DomModuleInvalidAttrsRule{
		BaseRule: lint.NewBaseRule(
			"dom-module-invalid-attrs",
			"dom-module elements should use id, not name or is",
		),
	}
}

// Check flags every name or is attribute on a dom-module start tag and
// offers to rename it to id.
func (r *DomModuleInvalidAttrsRule) Check(ctx context.Context, d *doc.Document) ([]lint.Warning, error) {
	var warnings []lint.Warning
	for _, el := range d.ElementsByTag("dom-module") {
		for _, attr := range el.Attrs {
			if attr.Name != "name" && attr.Name != "is" {
				continue
			}
			w := lint.NewWarning(r.Code(), attr.NameRange,
				fmt.Sprintf("%s is deprecated on <dom-module>, use id", attr.Name)).
				WithEdit(fix.Replace(attr.NameRange, "id")).
				Build()
			warnings = append(warnings, w)
		}
	}
	return warnings, nil
}
