package fix

import (
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/loader"
)

// Loader fetches current file contents for splicing. *loader.FS and
// *loader.Memory both implement it.
type Loader interface {
	Load(ctx context.Context, path string) (*loader.File, error)
}

// Result is the outcome of one engine invocation. It is never
// persisted; callers write Files back to storage themselves.
type Result struct {
	// Applied lists the accepted and spliced edits, in input order.
	Applied []Edit

	// Incompatible lists the edits rejected for conflicting with an
	// earlier edit. They are expected outcomes, not errors: retry them
	// on a later pass once the source has been re-analyzed.
	Incompatible []Edit

	// Files maps each touched file to its new contents. Files with no
	// accepted replacements are absent.
	Files map[string][]byte
}

// Apply partitions edits first-come-first-served and splices the
// accepted replacements into the affected files' current contents. A
// replacement that no longer maps onto its file (stale range) fails the
// whole application step; partial output is never returned.
func Apply(ctx context.Context, ld Loader, edits []Edit) (*Result, error) {
	accepted, incompatible := Partition(edits)

	byFile := make(map[string][]Replacement)
	var order []string
	for _, e := range accepted {
		for _, r := range e {
			if _, ok := byFile[r.Range.File]; !ok {
				order = append(order, r.Range.File)
			}
			byFile[r.Range.File] = append(byFile[r.Range.File], r)
		}
	}

	result := &Result{
		Applied:      accepted,
		Incompatible: incompatible,
		Files:        make(map[string][]byte, len(order)),
	}

	for _, path := range order {
		file, err := ld.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}

		content, err := spliceFile(file, byFile[path])
		if err != nil {
			return nil, err
		}
		result.Files[path] = content
	}

	return result, nil
}

// spliceFile applies one file's replacements strictly right to left,
// descending by end then start position. Splicing at a later offset
// never shifts the offsets of replacements still pending, so no
// recomputation pass is needed.
func spliceFile(file *loader.File, reps []Replacement) ([]byte, error) {
	sorted := slices.Clone(reps)
	slices.SortFunc(sorted, func(a, b Replacement) int {
		if c := doc.ComparePositions(b.Range.End, a.Range.End); c != 0 {
			return c
		}
		return doc.ComparePositions(b.Range.Start, a.Range.Start)
	})

	content := slices.Clone(file.Contents())
	for _, r := range sorted {
		start, end, err := file.Offsets(r.Range)
		if err != nil {
			return nil, fmt.Errorf("apply fix at %s: %w", r.Range, err)
		}
		content = splice(content, start, end, r.Text)
	}

	return content, nil
}

func splice(content []byte, start, end int, text string) []byte {
	out := make([]byte, 0, len(content)-(end-start)+len(text))
	out = append(out, content[:start]...)
	out = append(out, text...)
	out = append(out, content[end:]...)
	return out
}
