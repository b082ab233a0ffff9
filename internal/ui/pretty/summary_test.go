package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gohtmlint/internal/ui/pretty"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

func TestFormatSummaryOneLine_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesLinted: 3}

	got := styles.FormatSummaryOneLine(stats)
	assert.Equal(t, "No issues found (3 files checked)\n", got)
}

func TestFormatSummaryOneLine_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:     4,
		FilesWithIssues: 2,
		Warnings:        3,
		Fixable:         2,
		BySeverity:      map[string]int{"error": 1, "warning": 2},
	}

	got := styles.FormatSummaryOneLine(stats)
	assert.Equal(t, "3 issues (1 errors, 2 warnings), in 2 files, 2 fixable\n", got)
}

func TestFormatSummaryOneLine_SingleIssue(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:     1,
		FilesWithIssues: 1,
		Warnings:        1,
		BySeverity:      map[string]int{"warning": 1},
	}

	got := styles.FormatSummaryOneLine(stats)
	assert.Equal(t, "1 issue (1 warnings), in 1 file\n", got)
}

func TestFormatSummaryOneLine_FixesApplied(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:  2,
		EditsApplied: 3,
		FilesWritten: 1,
	}

	got := styles.FormatSummaryOneLine(stats)
	assert.Equal(t, "No issues found (2 files checked), 3 fixed in 1 file\n", got)
}

func TestFormatSummaryOneLine_DryRunFixes(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:  2,
		EditsApplied: 3,
		FilesWritten: 0,
	}

	got := styles.FormatSummaryOneLine(stats)
	assert.Equal(t, "No issues found (2 files checked), 3 fixed (not written)\n", got)
}

func TestFormatSummaryOneLine_EditsPending(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:     1,
		FilesWithIssues: 1,
		Warnings:        2,
		BySeverity:      map[string]int{"warning": 2},
		EditsApplied:    1,
		EditsPending:    1,
		FilesWritten:    1,
	}

	got := styles.FormatSummaryOneLine(stats)
	assert.Contains(t, got, "1 pending (rerun --fix)")
}

func TestFormatSummary_Passed(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesLinted: 5}

	got := styles.FormatSummary(stats)
	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "Files checked:     5")
	assert.Contains(t, got, "Total issues:      0")
	assert.Contains(t, got, "Lint passed")
	assert.NotContains(t, got, "Files with issues")
}

func TestFormatSummary_FailedWithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:     3,
		FilesWithIssues: 2,
		Warnings:        4,
		BySeverity:      map[string]int{"error": 1, "warning": 3},
		CacheHits:       2,
		CacheMisses:     1,
	}

	got := styles.FormatSummary(stats)
	assert.Contains(t, got, "Files with issues: 2")
	assert.Contains(t, got, "Errors:          1")
	assert.Contains(t, got, "Warnings:        3")
	assert.Contains(t, got, "Cache:             2 hits, 1 misses")
	assert.Contains(t, got, "Lint failed with errors")
}

func TestFormatSummary_FixRun(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesLinted:  2,
		FilesWritten: 2,
		EditsApplied: 5,
		EditsPending: 1,
		Passes:       3,
	}

	got := styles.FormatSummary(stats)
	assert.Contains(t, got, "Files written:     2")
	assert.Contains(t, got, "Edits applied:     5")
	assert.Contains(t, got, "Edits pending:     1")
	assert.Contains(t, got, "Passes:            3")
	assert.Contains(t, got, "Lint passed")
}

func TestFormatSummary_FileErrorsFail(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesLinted: 1, FilesErrored: 1}

	got := styles.FormatSummary(stats)
	assert.Contains(t, got, "Lint failed with errors")
}
