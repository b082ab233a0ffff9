package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/fsutil"
	"github.com/yaklabco/gohtmlint/pkg/loader"
)

// DefaultMaxFixPasses is the maximum number of fix passes to prevent
// infinite loops. Applying one pass of edits can unblock edits that were
// rejected as incompatible, so fixing iterates until the file set is
// stable.
const DefaultMaxFixPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun computes fixed content without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// MaxPasses limits the number of fix iterations.
	// Set to 0 to use DefaultMaxFixPasses.
	MaxPasses int
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Fix:                 false,
		DryRun:              false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// PipelineResult contains the result of processing a file set through the
// pipeline.
type PipelineResult struct {
	// Warnings holds the surviving warnings of the final pass.
	Warnings []Warning

	// Passes is the number of lint passes performed.
	Passes int

	// Applied counts edits applied cleanly across all passes.
	Applied int

	// Incompatible counts edits still rejected on the final fixing pass.
	// They may apply cleanly on a rerun.
	Incompatible int

	// Files maps each path whose content changed to its final content.
	Files map[string][]byte

	// Written lists the paths persisted to disk, sorted.
	Written []string

	// BackedUp lists the paths for which a backup was created, sorted.
	BackedUp []string

	// Skipped maps paths that changed but were not written to the reason.
	Skipped map[string]string
}

// Modified reports whether any file content changed.
func (pr *PipelineResult) Modified() bool {
	return len(pr.Files) > 0
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case len(pr.Skipped) > 0:
		return fmt.Sprintf("fixed %d file(s), skipped %d", len(pr.Written), len(pr.Skipped))
	case len(pr.Written) > 0:
		return fmt.Sprintf("fixed %d file(s), %d edit(s) applied", len(pr.Written), pr.Applied)
	case pr.Modified():
		return fmt.Sprintf("%d edit(s) pending", pr.Applied)
	case len(pr.Warnings) > 0:
		return "issues found"
	default:
		return "ok"
	}
}

// Pipeline orchestrates lint and fix passes over a set of files.
type Pipeline struct {
	// Parser parses current file content between passes.
	Parser Parser

	// Linter runs the resolved rule set.
	Linter *Linter
}

// NewPipeline creates a pipeline from a parser and a resolved rule set.
func NewPipeline(parser Parser, rules []Rule) *Pipeline {
	return &Pipeline{
		Parser: parser,
		Linter: NewLinter(rules),
	}
}

// ProcessFiles runs the full pipeline for the given files.
//
// The pipeline performs the following steps:
//  1. Read and hash the original files.
//  2. Lint every file and filter warnings through inline directives.
//  3. In fix mode, collect the surviving fixes in warning order, apply
//     the maximal compatible subset in memory, and re-lint the files
//     that changed. Repeat until stable or MaxPasses.
//  4. Check for concurrent modifications, create backups, and write the
//     changed contents atomically (skipped in dry-run mode).
func (p *Pipeline) ProcessFiles(ctx context.Context, paths []string, opts PipelineOptions) (*PipelineResult, error) {
	contents := make(map[string][]byte, len(paths))
	infos := make(map[string]*fsutil.FileInfo, len(paths))
	for _, pth := range paths {
		content, info, err := fsutil.ReadFile(ctx, pth)
		if err != nil {
			return nil, categorizeError(err)
		}
		contents[pth] = content
		infos[pth] = info
	}

	result, err := p.process(ctx, paths, contents, opts)
	if err != nil {
		return nil, err
	}
	if !result.Modified() || opts.DryRun {
		return result, nil
	}

	changed := make([]string, 0, len(result.Files))
	for pth := range result.Files {
		changed = append(changed, pth)
	}
	slices.Sort(changed)

	for _, pth := range changed {
		modified, err := p.checkModified(ctx, infos[pth], opts.StrictRaceDetection)
		if err != nil {
			return nil, err
		}
		if modified {
			result.Skipped[pth] = "file modified during processing"
			continue
		}

		if opts.Backup.Enabled {
			created, err := fsutil.CreateBackup(ctx, pth, opts.Backup)
			if err != nil {
				return nil, fmt.Errorf("create backup: %w", err)
			}
			if created {
				result.BackedUp = append(result.BackedUp, pth)
			}
		}

		if err := fsutil.WriteAtomic(ctx, pth, result.Files[pth], infos[pth].Mode); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailure, pth, err)
		}
		result.Written = append(result.Written, pth)
	}
	return result, nil
}

// ProcessContents runs lint and fix passes over in-memory content without
// touching the filesystem. Keys of files are document paths. This is
// useful for testing or when content is already loaded.
func (p *Pipeline) ProcessContents(ctx context.Context, files map[string][]byte, opts PipelineOptions) (*PipelineResult, error) {
	paths := make([]string, 0, len(files))
	contents := make(map[string][]byte, len(files))
	for pth, content := range files {
		paths = append(paths, pth)
		contents[pth] = content
	}
	slices.Sort(paths)

	return p.process(ctx, paths, contents, opts)
}

// process is the shared lint and fix loop. It owns the contents map and
// mutates it as passes apply edits.
func (p *Pipeline) process(ctx context.Context, paths []string, contents map[string][]byte, opts PipelineOptions) (*PipelineResult, error) {
	result := &PipelineResult{
		Files:   make(map[string][]byte),
		Skipped: make(map[string]string),
	}

	originals := make(map[string][]byte, len(paths))
	for pth, content := range contents {
		originals[pth] = content
	}

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	docs := make(map[string]*doc.Document, len(paths))
	prefiltered := make(map[string][]Warning, len(paths))
	dirty := slices.Clone(paths)

	var survivors []Warning
	for range maxPasses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		// Re-lint only the files whose content changed last pass.
		for _, pth := range dirty {
			d, err := p.Parser.Parse(ctx, pth, contents[pth])
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrParseFailure, pth, err)
			}
			ws, err := p.Linter.LintDocuments(ctx, []*doc.Document{d})
			if err != nil {
				return nil, err
			}
			docs[pth] = d
			prefiltered[pth] = ws
		}
		result.Passes++

		// Filtering always looks at the whole set: directives in an
		// untouched file still govern warnings found there.
		ordered := make([]*doc.Document, 0, len(paths))
		var merged []Warning
		for _, pth := range paths {
			ordered = append(ordered, docs[pth])
			merged = append(merged, prefiltered[pth]...)
		}
		survivors = Filter(merged, ordered)

		if !opts.Fix {
			break
		}

		var edits []fix.Edit
		for _, w := range survivors {
			if w.HasFix() {
				edits = append(edits, *w.Fix)
			}
		}
		if len(edits) == 0 {
			result.Incompatible = 0
			break
		}

		applied, err := fix.Apply(ctx, loader.NewMemory(contents), edits)
		if err != nil {
			return nil, fmt.Errorf("apply fixes: %w", err)
		}
		result.Applied += len(applied.Applied)
		result.Incompatible = len(applied.Incompatible)
		if len(applied.Applied) == 0 {
			break
		}

		dirty = dirty[:0]
		for pth, content := range applied.Files {
			contents[pth] = content
			dirty = append(dirty, pth)
		}
		slices.Sort(dirty)
	}

	result.Warnings = survivors
	for _, pth := range paths {
		if !bytes.Equal(contents[pth], originals[pth]) {
			result.Files[pth] = contents[pth]
		}
	}
	return result, nil
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil || !cfg.FixOptions.Backup {
		return fsutil.BackupConfig{Enabled: false, Mode: fsutil.BackupModeNone}
	}
	return fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Fix:                 cfg.Fix,
		DryRun:              cfg.DryRun,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
		MaxPasses:           cfg.FixOptions.MaxPasses,
	}
}
