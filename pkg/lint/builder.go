package lint

import (
	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
)

// WarningBuilder helps construct Warning values.
type WarningBuilder struct {
	w Warning
}

// NewWarning starts building a warning for the given rule code and range.
// The severity defaults to warning.
func NewWarning(code string, r doc.SourceRange, message string) *WarningBuilder {
	return &WarningBuilder{
		w: Warning{
			Code:     code,
			Message:  message,
			Severity: doc.SeverityWarning,
			Range:    r,
		},
	}
}

// WithSeverity sets the severity.
func (b *WarningBuilder) WithSeverity(s doc.Severity) *WarningBuilder {
	b.w.Severity = s
	return b
}

// WithFix attaches the replacements that repair the issue as one atomic edit.
func (b *WarningBuilder) WithFix(replacements ...fix.Replacement) *WarningBuilder {
	edit := fix.Edit(replacements)
	b.w.Fix = &edit
	return b
}

// WithEdit attaches a prebuilt edit.
func (b *WarningBuilder) WithEdit(edit fix.Edit) *WarningBuilder {
	b.w.Fix = &edit
	return b
}

// Build returns the constructed Warning.
func (b *WarningBuilder) Build() Warning {
	return b.w
}
