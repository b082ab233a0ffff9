package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/yaklabco/gohtmlint/internal/cache"
	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fsutil"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// Runner orchestrates multi-file linting over a parser and a resolved
// rule set.
type Runner struct {
	// Parser builds document snapshots from file content.
	Parser lint.Parser

	// Linter runs the resolved rule set.
	Linter *lint.Linter

	// Cache holds per-file results between runs. Nil disables caching.
	Cache *cache.Cache
}

// New creates a Runner. c may be nil to disable result caching.
func New(parser lint.Parser, linter *lint.Linter, c *cache.Cache) *Runner {
	return &Runner{Parser: parser, Linter: linter, Cache: c}
}

// Run processes the files selected by opts and returns their surviving
// warnings with aggregate stats.
//
// Three modes:
//   - Lint: discovered files are read and linted concurrently (cache
//     consulted per file), then directive filtering runs over the whole
//     set.
//   - Fix (opts.Config.Fix): the discovered set goes through the fix
//     pipeline, which iterates lint and apply passes and persists
//     changed files. The cache is bypassed.
//   - Package (opts.Entrypoints non-empty): the linter traverses the
//     reference closure of the entrypoints instead of walking
//     directories. Fix does not apply in this mode.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	if len(opts.Entrypoints) > 0 {
		return r.runPackage(ctx, opts, runID)
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := newResult(runID)
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	if opts.Config != nil && opts.Config.Fix {
		return r.runFix(ctx, opts, files, result)
	}
	return r.runLint(ctx, opts, runID, files, result)
}

// runLint lints files concurrently and filters the assembled warnings.
func (r *Runner) runLint(ctx context.Context, opts Options, runID string, files []string, result *Result) (*Result, error) {
	rulesetHash := cache.RulesetHash(ruleCodes(r.Linter.Rules()))

	workCh := make(chan string)
	outCh := make(chan fileOutcome)

	var wg sync.WaitGroup
	for range opts.effectiveJobs(len(files)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, runID, rulesetHash)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect by path and reassemble in
	// input order so document order stays deterministic.
	outcomes := make(map[string]fileOutcome, len(files))
	for out := range outCh {
		outcomes[out.path] = out
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	cacheEnabled := r.Cache != nil
	var docs []*doc.Document
	var merged []lint.Warning
	for _, path := range files {
		out, ok := outcomes[path]
		if !ok {
			continue
		}
		if out.err != nil {
			result.FileErrors = append(result.FileErrors, FileError{Path: path, Err: out.err})
			continue
		}

		result.Files = append(result.Files, path)
		result.Stats.FilesLinted++
		if out.hit {
			result.Stats.CacheHits++
		} else if cacheEnabled {
			result.Stats.CacheMisses++
		}

		docs = append(docs, out.doc)
		merged = append(merged, out.warnings...)
	}

	// Filtering always runs fresh, cache hits included: a directive in
	// one file can govern warnings from another pass over the same set.
	result.Warnings = lint.Filter(merged, docs)
	result.Stats.Passes = 1
	result.tally()
	return result, nil
}

// runFix hands the discovered set to the fix pipeline.
func (r *Runner) runFix(ctx context.Context, opts Options, files []string, result *Result) (*Result, error) {
	pipeline := &lint.Pipeline{Parser: r.Parser, Linter: r.Linter}
	pr, err := pipeline.ProcessFiles(ctx, files, lint.PipelineOptionsFromConfig(opts.Config))
	if err != nil {
		return nil, err
	}

	result.Files = files
	result.Warnings = pr.Warnings
	result.Written = pr.Written
	result.Skipped = pr.Skipped
	result.Stats.FilesLinted = len(files)
	result.Stats.Passes = pr.Passes
	result.Stats.EditsApplied = pr.Applied
	result.Stats.EditsPending = pr.Incompatible
	result.Stats.FilesWritten = len(pr.Written)
	result.Stats.FilesSkipped = len(pr.Skipped)
	result.tally()
	return result, nil
}

// runPackage traverses the reference closure of the entrypoints.
func (r *Runner) runPackage(ctx context.Context, opts Options, runID string) (*Result, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	src := NewDirSource(workDir, r.Parser, opts.ExternalGlobs)
	pres, err := r.Linter.LintPackage(ctx, src, opts.Entrypoints)
	if err != nil {
		return nil, err
	}

	result := newResult(runID)
	for _, d := range pres.Documents {
		result.Files = append(result.Files, d.Path)
	}
	result.Stats.FilesDiscovered = len(pres.Documents)
	result.Stats.FilesLinted = len(pres.Documents)
	result.Stats.Passes = 1
	result.Warnings = lint.Filter(pres.Warnings, pres.Documents)
	result.tally()
	return result, nil
}

// fileOutcome is one worker's result for one file.
type fileOutcome struct {
	path     string
	doc      *doc.Document
	warnings []lint.Warning
	hit      bool
	err      error
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- fileOutcome, runID string, rulesetHash [32]byte) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out := r.lintFile(ctx, path, runID, rulesetHash)

		select {
		case <-ctx.Done():
			return
		case outCh <- out:
		}
	}
}

// lintFile produces the pre-filter result for one file, through the
// cache when possible.
func (r *Runner) lintFile(ctx context.Context, path, runID string, rulesetHash [32]byte) fileOutcome {
	out := fileOutcome{path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		out.err = err
		return out
	}

	key := cache.Key(rulesetHash, path, info.Hash)
	if entry, ok := r.Cache.Get(key); ok {
		out.hit = true
		out.warnings = entry.Warnings()
		out.doc = &doc.Document{
			Path:       path,
			Directives: entry.Directives(),
			Refs:       entry.Refs(),
		}
		return out
	}

	d, err := r.Parser.Parse(ctx, path, content)
	if err != nil {
		out.err = err
		return out
	}
	ws, err := r.Linter.LintDocuments(ctx, []*doc.Document{d})
	if err != nil {
		out.err = err
		return out
	}
	out.doc = d
	out.warnings = ws

	// Cache writes are best effort; a failed Put costs one relint.
	_ = r.Cache.Put(key, cache.NewEntry(runID, ws, d))

	return out
}

// ruleCodes lists the codes of a resolved rule set.
func ruleCodes(rules []lint.Rule) []string {
	codes := make([]string, 0, len(rules))
	for _, rule := range rules {
		codes = append(codes, rule.Code())
	}
	return codes
}
