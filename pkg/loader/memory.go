package loader

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/fsutil"
)

// Memory serves files from an in-memory map. Used by tests and by
// callers that apply edits to content that never touched disk.
type Memory struct {
	files map[string][]byte
}

// NewMemory creates a loader over the given contents. The map is not
// copied; callers hand over ownership.
func NewMemory(files map[string][]byte) *Memory {
	if files == nil {
		files = make(map[string][]byte)
	}
	return &Memory{files: files}
}

// Store adds or replaces one file's contents.
func (m *Memory) Store(path string, content []byte) {
	m.files[path] = content
}

// Load returns the stored contents for path.
func (m *Memory) Load(ctx context.Context, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fsutil.ErrNotFound, path)
	}

	return NewFile(path, content), nil
}
