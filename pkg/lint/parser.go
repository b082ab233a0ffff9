package lint

import (
	"context"

	"github.com/yaklabco/gohtmlint/pkg/doc"
)

// Parser parses HTML content into a Document.
//
// The lint package defines this interface in the consuming package;
// implementations (e.g., parser/nethtml) provide the concrete parsing
// logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw HTML bytes into a fully-populated Document.
	//
	// The path is a logical identifier carried into ranges and
	// diagnostics; it must not be used for I/O. Recoverable syntax
	// problems are reported through the document's Diagnostics, so a
	// non-nil error means the content could not be analyzed at all.
	Parse(ctx context.Context, path string, content []byte) (*doc.Document, error)
}
