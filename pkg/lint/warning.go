package lint

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
)

// Warning represents a single lint issue found in a document.
type Warning struct {
	// Code is the identifier of the rule that produced this warning.
	Code string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the warning. It is advisory
	// only and never changes how the engine treats the warning.
	Severity doc.Severity

	// Range is the source region the warning is about.
	Range doc.SourceRange

	// Fix holds the edit that repairs the issue (nil when not fixable).
	Fix *fix.Edit
}

// HasFix returns true if this warning carries a non-empty fix.
func (w *Warning) HasFix() bool {
	return w.Fix != nil && len(*w.Fix) > 0
}

// String renders the warning in path:line:col form.
func (w *Warning) String() string {
	return fmt.Sprintf("%s:%s: %s %s: %s", w.Range.File, w.Range.Start, w.Severity, w.Code, w.Message)
}

// WarningError is a rule failure that already knows the warning to report.
// A rule returning it aborts its own check, but the carried warning
// surfaces verbatim instead of the generic internal failure warning.
type WarningError struct {
	Warning Warning
}

// Error implements the error interface.
func (e *WarningError) Error() string {
	return fmt.Sprintf("%s: %s", e.Warning.Code, e.Warning.Message)
}
