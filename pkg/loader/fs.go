package loader

import (
	"context"
	"path/filepath"

	"github.com/yaklabco/gohtmlint/pkg/fsutil"
)

// FS loads files from the filesystem, resolving relative paths against
// a base directory. Every Load re-reads from disk so offsets always
// reflect current contents.
type FS struct {
	base string
}

// NewFS creates a filesystem loader. An empty base resolves relative
// paths against the working directory.
func NewFS(base string) *FS {
	return &FS{base: base}
}

// Load reads the file identified by path.
func (l *FS) Load(ctx context.Context, path string) (*File, error) {
	resolved := path
	if l.base != "" && !filepath.IsAbs(path) {
		resolved = filepath.Join(l.base, path)
	}

	content, _, err := fsutil.ReadFile(ctx, resolved)
	if err != nil {
		return nil, err
	}

	// The file keeps the caller's identifier so ranges computed against
	// it keep matching.
	return NewFile(path, content), nil
}
