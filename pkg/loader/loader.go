// Package loader fetches current file contents for the edit engine and
// converts source ranges to absolute byte offsets immediately before
// splicing. Implementations exist for the filesystem and for in-memory
// content.
package loader

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/doc"
)

// ErrStaleRange indicates a range that does not map onto the file's
// current contents, usually because the file changed after the warning
// carrying the range was computed.
var ErrStaleRange = errors.New("range does not map to current file contents")

// File is one loaded file: its contents plus offset conversion.
type File struct {
	path    string
	content []byte
	lines   *doc.LineIndex
}

// NewFile wraps already-materialized content.
func NewFile(path string, content []byte) *File {
	return &File{
		path:    path,
		content: content,
		lines:   doc.NewLineIndex(content),
	}
}

// Path returns the identifier the file was loaded under.
func (f *File) Path() string {
	return f.path
}

// Contents returns the loaded bytes. Callers must not mutate them.
func (f *File) Contents() []byte {
	return f.content
}

// Offsets converts r to [start, end) byte offsets in the current
// contents. Any range that does not map cleanly reports ErrStaleRange.
func (f *File) Offsets(r doc.SourceRange) (int, int, error) {
	if r.File != f.path {
		return 0, 0, fmt.Errorf("%w: range belongs to %s, file is %s", ErrStaleRange, r.File, f.path)
	}

	start, ok := f.lines.OffsetOf(r.Start)
	if !ok {
		return 0, 0, fmt.Errorf("%w: start %s out of bounds in %s", ErrStaleRange, r.Start, f.path)
	}

	end, ok := f.lines.OffsetOf(r.End)
	if !ok {
		return 0, 0, fmt.Errorf("%w: end %s out of bounds in %s", ErrStaleRange, r.End, f.path)
	}

	if end < start {
		return 0, 0, fmt.Errorf("%w: inverted range %s", ErrStaleRange, r)
	}

	return start, end, nil
}
