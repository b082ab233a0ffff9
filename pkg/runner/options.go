// Package runner provides multi-file linting orchestration: discovery,
// concurrent lint passes, package traversal, and fix runs over the
// shared engine.
package runner

import (
	"runtime"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

// Options controls discovery and run behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// glob patterns. If empty, the current process working directory is used.
	WorkingDir string

	// IncludeGlobs select files during directory walks, relative to
	// WorkingDir. Empty defaults to config.DefaultInclude(). Explicitly
	// listed files bypass this filter.
	IncludeGlobs []string

	// ExcludeGlobs skip files or directories, relative to WorkingDir.
	// They apply to walks and to explicitly listed files alike.
	ExcludeGlobs []string

	// ExternalGlobs mark installed dependencies (vendored documents).
	// Walks skip them like excludes; in package mode they decide which
	// loaded documents rules do not run on.
	ExternalGlobs []string

	// Entrypoints switches the run to package mode: instead of walking
	// directories, the linter traverses the reference closure of these
	// paths (slash-separated, relative to WorkingDir).
	Entrypoints []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent lint workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// RunID correlates log lines and cache entries for this run.
	// Empty generates a fresh one.
	RunID string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// FromConfig derives runner options from resolved configuration. Paths
// and RunID stay empty; callers set them per invocation.
func FromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		IncludeGlobs:   cfg.Include,
		ExcludeGlobs:   cfg.Exclude,
		ExternalGlobs:  cfg.External,
		Entrypoints:    cfg.Entrypoints,
		FollowSymlinks: cfg.FollowSymlinks,
		Jobs:           cfg.Jobs,
		Config:         cfg,
	}
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveIncludes returns the walk patterns to use, defaulting if empty.
func (o Options) effectiveIncludes() []string {
	if len(o.IncludeGlobs) == 0 {
		return config.DefaultInclude()
	}
	return o.IncludeGlobs
}

// effectiveExcludes returns the skip patterns for discovery. External
// globs count: vendored documents are reachable through package
// traversal only.
func (o Options) effectiveExcludes() []string {
	out := make([]string, 0, len(o.ExcludeGlobs)+len(o.ExternalGlobs))
	out = append(out, o.ExcludeGlobs...)
	out = append(out, o.ExternalGlobs...)
	return out
}

// effectiveJobs returns the worker count, bounded by the file count.
func (o Options) effectiveJobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > files {
		jobs = files
	}
	return jobs
}
