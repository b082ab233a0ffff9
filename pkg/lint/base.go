package lint

// BaseRule provides the descriptive half of the Rule interface.
// Embed this in rule implementations and add a Check method.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	code string // Unique identifier (e.g., "deprecated-doctype")
	desc string // Detailed description
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(code, desc string) BaseRule {
	return BaseRule{
		code: code,
		desc: desc,
	}
}

// Code returns the unique identifier for this rule.
func (r *BaseRule) Code() string {
	return r.code
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}
