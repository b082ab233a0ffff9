package rules

import "github.com/yaklabco/gohtmlint/pkg/lint"

// Collection codes.
const (
	// CollectionHTMLStyle groups the stylistic rules.
	CollectionHTMLStyle = "html-style"

	// CollectionRecommended is the default rule set.
	CollectionRecommended = "recommended"
)

// Builtin registers every built-in rule and collection on reg.
func Builtin(reg *lint.Registry) error {
	all := []lint.Rule{
		NewDeprecatedDoctypeRule(),
		NewVoidElementTrailingSlashRule(),
		NewDomModuleInvalidAttrsRule(),
		NewNoDuplicateIDsRule(),
	}
	for _, r := range all {
		if err := reg.Register(r); err != nil {
			return err
		}
	}

	collections := []lint.Collection{
		{
			Code:        CollectionHTMLStyle,
			Description: "Stylistic checks for modern HTML",
			Members:     []string{"deprecated-doctype", "void-element-trailing-slash"},
		},
		{
			Code:        CollectionRecommended,
			Description: "The default rule set",
			Members:     []string{CollectionHTMLStyle, "dom-module-invalid-attrs", "no-duplicate-ids"},
		},
	}
	for _, c := range collections {
		if err := reg.RegisterCollection(c); err != nil {
			return err
		}
	}
	return nil
}
