// Package lint provides the rule engine, registry, and directive filter for gohtmlint.
package lint

import (
	"context"

	"github.com/yaklabco/gohtmlint/pkg/doc"
)

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// Code returns the unique identifier for this rule (e.g., "no-duplicate-ids").
	Code() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Check executes the rule against the given document and returns warnings.
	//
	// Rules must:
	//   - Return warnings for each violation found.
	//   - Treat the document as read-only; rules share one snapshot per pass.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	Check(ctx context.Context, d *doc.Document) ([]Warning, error)
}
