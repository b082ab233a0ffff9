package runner

import (
	"context"
	"path/filepath"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fsutil"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// DirSource adapts a directory tree to lint.Source for package
// traversal. Document paths stay slash-separated and relative to Base,
// so ranges report package-relative locations.
type DirSource struct {
	// Base is the package root directory.
	Base string

	// Parser builds document snapshots from loaded content.
	Parser lint.Parser

	// ExternalGlobs mark paths as installed dependencies. Matching
	// documents are still parsed but rules do not run on them.
	ExternalGlobs []string
}

// NewDirSource creates a source rooted at base.
func NewDirSource(base string, parser lint.Parser, externalGlobs []string) *DirSource {
	return &DirSource{Base: base, Parser: parser, ExternalGlobs: externalGlobs}
}

// Load reads and parses the document at the package-relative path.
func (s *DirSource) Load(ctx context.Context, path string) (*doc.Document, error) {
	abs := filepath.Join(s.Base, filepath.FromSlash(path))
	content, _, err := fsutil.ReadFile(ctx, abs)
	if err != nil {
		return nil, err
	}
	return s.Parser.Parse(ctx, path, content)
}

// External reports whether path matches any external glob.
func (s *DirSource) External(path string) bool {
	return matchesAny(path, s.ExternalGlobs)
}
