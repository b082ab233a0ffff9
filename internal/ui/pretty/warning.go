package pretty

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// FormatWarning formats one warning as a single listing line:
//
//	path:line:col: severity code message
//
// Line and column are printed one-based for editors and humans; the
// engine stores them zero-indexed.
func (s *Styles) FormatWarning(w lint.Warning) string {
	location := fmt.Sprintf("%s:%s",
		s.FilePath.Render(w.Range.File),
		s.Location.Render(fmt.Sprintf("%d:%d", w.Range.Start.Line+1, w.Range.Start.Column+1)),
	)

	return fmt.Sprintf("%s: %s %s %s",
		location,
		s.FormatSeverity(w.Severity),
		s.RuleCode.Render(w.Code),
		s.Message.Render(w.Message),
	)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev doc.Severity) string {
	switch sev {
	case doc.SeverityError:
		return s.Error.Render("error")
	case doc.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}
