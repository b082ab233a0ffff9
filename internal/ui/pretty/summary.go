package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.Warnings == 0 {
		msg := s.Success.Render("No issues found") + s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesLinted))
		// Show fixes applied even when no issues remain
		if stats.EditsApplied > 0 {
			msg += ", " + s.Success.Render(appliedPhrase(stats))
		}
		return msg + "\n"
	}

	var parts []string

	// Total issues
	issueWord := "issues"
	if stats.Warnings == 1 {
		issueWord = "issue"
	}

	// Build severity breakdown
	var severityParts []string
	if errors := stats.BySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.BySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}

	// Main count with severity breakdown
	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.Warnings, issueWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.Warnings, issueWord))
	}

	// Files with issues
	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	// Fixable count
	if stats.Fixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.Fixable)))
	}

	// Edits applied (if any)
	if stats.EditsApplied > 0 {
		parts = append(parts, s.Success.Render(appliedPhrase(stats)))
	}

	// Edits skipped for overlapping ranges; a rerun may pick them up.
	if stats.EditsPending > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d pending (rerun --fix)", stats.EditsPending)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// appliedPhrase describes applied edits. Edits that were computed but
// never persisted, as in a dry run, say so instead of claiming a write.
func appliedPhrase(stats runner.Stats) string {
	if stats.FilesWritten == 0 {
		return fmt.Sprintf("%d fixed (not written)", stats.EditsApplied)
	}
	fileWord := wordFiles
	if stats.FilesWritten == 1 {
		fileWord = wordFile
	}
	return fmt.Sprintf("%d fixed in %d %s", stats.EditsApplied, stats.FilesWritten, fileWord)
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesLinted)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Warning.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.CacheHits > 0 || stats.CacheMisses > 0 {
		builder.WriteString("  Cache:             " +
			s.SummaryValue.Render(fmt.Sprintf("%d hits, %d misses", stats.CacheHits, stats.CacheMisses)) + "\n")
	}

	builder.WriteString("\n")

	// Warnings by severity
	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.Warnings)) + "\n")

	if errors := stats.BySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.BySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}

	// Fix pass outcome
	if stats.EditsApplied > 0 || stats.EditsPending > 0 {
		builder.WriteString("\n")
		builder.WriteString("  Edits applied:     " +
			s.Success.Render(strconv.Itoa(stats.EditsApplied)) + "\n")
		if stats.EditsPending > 0 {
			builder.WriteString("  Edits pending:     " +
				s.Warning.Render(strconv.Itoa(stats.EditsPending)) + "\n")
		}
		builder.WriteString("  Passes:            " +
			s.SummaryValue.Render(strconv.Itoa(stats.Passes)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.BySeverity["error"] > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case stats.BySeverity["warning"] > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
