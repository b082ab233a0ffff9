package runner

import "github.com/yaklabco/gohtmlint/pkg/lint"

// FileError records a file that could not be processed. The run
// continues past it; the error surfaces here and in the stats.
type FileError struct {
	Path string
	Err  error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	// In package mode it counts the documents the traversal reached.
	FilesDiscovered int

	// FilesLinted is the number of files that produced a lint result,
	// from a fresh pass or from the cache.
	FilesLinted int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one surviving
	// warning.
	FilesWithIssues int

	// CacheHits and CacheMisses count cache lookups. Both stay zero when
	// caching is disabled or the run bypasses the cache.
	CacheHits   int
	CacheMisses int

	// Warnings is the number of warnings that survived directive
	// filtering.
	Warnings int

	// Fixable is the number of surviving warnings that carry a fix.
	Fixable int

	// BySeverity maps severity values to surviving warning counts.
	BySeverity map[string]int

	// Passes is the number of lint passes performed (1 outside fix mode).
	Passes int

	// EditsApplied counts edits applied cleanly across all fix passes.
	EditsApplied int

	// EditsPending counts edits still rejected as incompatible on the
	// final fix pass. They may apply cleanly on a rerun.
	EditsPending int

	// FilesWritten is the number of files persisted to disk.
	FilesWritten int

	// FilesSkipped is the number of files that changed but were not
	// written, for example because they were modified mid-run.
	FilesSkipped int
}

// Result is the overall outcome of one run.
type Result struct {
	// RunID identifies this run in logs and cache entries.
	RunID string

	// Files lists the processed file paths in the order their results
	// appear in Warnings.
	Files []string

	// Warnings holds the surviving warnings in document order.
	Warnings []lint.Warning

	// Written lists the paths persisted to disk (fix mode only), sorted.
	Written []string

	// Skipped maps paths that changed but were not written to the reason
	// (fix mode only).
	Skipped map[string]string

	// FileErrors lists files that could not be processed.
	FileErrors []FileError

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any warnings survived.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.Warnings > 0
}

// HasFailures reports whether any error-severity warnings survived or
// any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.BySeverity["error"] > 0 || r.Stats.FilesErrored > 0
}

// newResult creates a Result with initialized maps.
func newResult(runID string) *Result {
	return &Result{
		RunID:   runID,
		Skipped: make(map[string]string),
		Stats:   Stats{BySeverity: make(map[string]int)},
	}
}

// tally folds the surviving warnings into the stats. It runs once,
// after the warning list is final.
func (r *Result) tally() {
	filesWithIssues := make(map[string]struct{})
	for _, w := range r.Warnings {
		r.Stats.Warnings++
		if w.HasFix() {
			r.Stats.Fixable++
		}

		severity := string(w.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.BySeverity[severity]++

		filesWithIssues[w.Range.File] = struct{}{}
	}
	r.Stats.FilesWithIssues = len(filesWithIssues)
	r.Stats.FilesErrored = len(r.FileErrors)
}
