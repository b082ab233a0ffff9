package lint

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/doc"
)

// Warning codes produced by the linter itself rather than by a rule.
const (
	// CodeInternalError marks a rule that returned an error or panicked.
	CodeInternalError = "internal-lint-error"

	// CodeBrokenReference marks a local reference whose target could not
	// be loaded during package traversal.
	CodeBrokenReference = "broken-reference"
)

// Source loads documents on demand during package traversal.
//
// The lint package defines this interface in the consuming package so the
// engine stays decoupled from filesystem layout. The runner provides the
// usual implementation.
type Source interface {
	// Load parses the document at path. Paths are slash-separated and
	// relative to the package root.
	Load(ctx context.Context, path string) (*doc.Document, error)

	// External reports whether path belongs to an installed dependency
	// rather than to the package under analysis. External documents are
	// parsed and their adapter diagnostics surface, but rules do not run
	// on them.
	External(path string) bool
}

// PackageResult is the outcome of a package traversal before directive
// filtering.
type PackageResult struct {
	// Documents holds every reachable document in traversal order,
	// external dependencies included.
	Documents []*doc.Document

	// Warnings holds the pre-filter warnings in document order.
	Warnings []Warning
}

// Linter runs a resolved rule set over documents.
type Linter struct {
	rules []Rule
}

// NewLinter creates a linter that runs the given rules in order.
func NewLinter(rules []Rule) *Linter {
	return &Linter{rules: rules}
}

// Rules returns the rule set the linter runs, in execution order.
func (l *Linter) Rules() []Rule {
	return l.rules
}

// LintDocuments lints an already-materialized document list.
//
// Warnings concatenate in document order. Within one document the
// adapter's own diagnostics come first, then rule warnings in rule order.
// A failing rule never aborts the pass: its error or panic becomes a
// single warning (see CodeInternalError), or surfaces the carried warning
// when the failure is a WarningError.
func (l *Linter) LintDocuments(ctx context.Context, docs []*doc.Document) ([]Warning, error) {
	var warnings []Warning
	for _, d := range docs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ws, err := l.lintDocument(ctx, d, true)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, ws...)
	}
	return warnings, nil
}

// LintPackage lints the closure of documents reachable from the entry
// points via local references. References that leave the filesystem
// (scheme or host URLs) are not followed. An entrypoint that cannot be
// loaded is an error; a local reference to an unloadable document becomes
// a warning (see CodeBrokenReference) at the reference site.
func (l *Linter) LintPackage(ctx context.Context, src Source, entrypoints []string) (*PackageResult, error) {
	type target struct {
		path string
		from *doc.SourceRange // nil for entrypoints
	}

	queue := make([]target, 0, len(entrypoints))
	for _, e := range entrypoints {
		queue = append(queue, target{path: path.Clean(e)})
	}

	res := &PackageResult{}
	seen := make(map[string]bool)

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next.path] {
			continue
		}
		seen[next.path] = true

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		d, err := src.Load(ctx, next.path)
		if err != nil {
			if next.from == nil {
				return nil, fmt.Errorf("load entrypoint %s: %w", next.path, err)
			}
			res.Warnings = append(res.Warnings, Warning{
				Code:     CodeBrokenReference,
				Message:  fmt.Sprintf("cannot load %s: %v", next.path, err),
				Severity: doc.SeverityError,
				Range:    *next.from,
			})
			continue
		}

		ws, err := l.lintDocument(ctx, d, !src.External(next.path))
		if err != nil {
			return nil, err
		}
		res.Documents = append(res.Documents, d)
		res.Warnings = append(res.Warnings, ws...)

		for _, ref := range d.Refs {
			local, ok := ref.LocalPath()
			if !ok {
				continue
			}
			from := ref.Range
			queue = append(queue, target{path: resolveRef(next.path, local), from: &from})
		}
	}
	return res, nil
}

// lintDocument produces the pre-filter warnings for one document.
func (l *Linter) lintDocument(ctx context.Context, d *doc.Document, runRules bool) ([]Warning, error) {
	var warnings []Warning

	for _, diag := range d.Diagnostics {
		warnings = append(warnings, Warning{
			Code:     diag.Code,
			Message:  diag.Message,
			Severity: diag.Severity,
			Range:    diag.Range,
		})
	}

	if !runRules {
		return warnings, nil
	}

	for _, rule := range l.rules {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ws, err := checkRule(ctx, rule, d)
		if err != nil {
			warnings = append(warnings, failureWarning(rule, d, err))
			continue
		}
		warnings = append(warnings, ws...)
	}
	return warnings, nil
}

// checkRule runs one rule, converting a panic into an error so a broken
// rule cannot take down the whole pass.
func checkRule(ctx context.Context, rule Rule, d *doc.Document) (warnings []Warning, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			warnings = nil
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return rule.Check(ctx, d)
}

// failureWarning converts a rule failure into the warning that reports it.
// The generic form anchors at the document start with a zero-width range.
func failureWarning(rule Rule, d *doc.Document, err error) Warning {
	var we *WarningError
	if errors.As(err, &we) {
		return we.Warning
	}
	return Warning{
		Code:     CodeInternalError,
		Message:  fmt.Sprintf("rule %s failed: %v", rule.Code(), err),
		Severity: doc.SeverityWarning,
		Range:    doc.PointRange(d.Path, doc.SourcePosition{}),
	}
}

// resolveRef resolves a reference target against the path of the document
// it appears in. A leading slash addresses the package root.
func resolveRef(from, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Clean(path.Join(path.Dir(from), target))
}
