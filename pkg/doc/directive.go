package doc

import "slices"

// Directive verbs.
const (
	DirectiveEnable  = "enable"
	DirectiveDisable = "disable"
)

// Directive is an inline suppression marker discovered in source
// comments. Args[0] is the verb ("enable" or "disable"); any further
// args name the specific codes the directive applies to. An empty tail
// means the directive applies to every code.
type Directive struct {
	Range SourceRange
	Args  []string
}

// Verb returns the directive verb, or "" for a malformed directive.
func (d Directive) Verb() string {
	if len(d.Args) == 0 {
		return ""
	}
	return d.Args[0]
}

// AppliesTo reports whether the directive covers the given code:
// either it names no codes at all, or it lists this one.
func (d Directive) AppliesTo(code string) bool {
	if len(d.Args) <= 1 {
		return true
	}
	return slices.Contains(d.Args[1:], code)
}
