// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldReason     = "reason"
	FieldWorkingDir = "working_dir"
	FieldRunID      = "run_id"

	// Configuration fields.
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldRules  = "rules"

	// Run statistics fields.
	FieldFilesLinted   = "files_linted"
	FieldWarningsTotal = "warnings_total"
	FieldEditsApplied  = "edits_applied"
	FieldPasses        = "passes"
	FieldCacheHits     = "cache_hits"
	FieldCacheMisses   = "cache_misses"

	// Watch fields.
	FieldEvent = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
