package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/loader"
	"github.com/yaklabco/gohtmlint/pkg/parser/nethtml"
)

// checkRule parses input and runs one rule over the document.
func checkRule(t *testing.T, rule lint.Rule, input string) []lint.Warning {
	t.Helper()

	d, err := nethtml.New().Parse(context.Background(), "test.html", []byte(input))
	require.NoError(t, err)

	warnings, err := rule.Check(context.Background(), d)
	require.NoError(t, err)
	return warnings
}

// applyFixes splices every fix carried by warnings into input.
func applyFixes(t *testing.T, input string, warnings []lint.Warning) string {
	t.Helper()

	var edits []fix.Edit
	for _, w := range warnings {
		if w.HasFix() {
			edits = append(edits, *w.Fix)
		}
	}

	ld := loader.NewMemory(map[string][]byte{"test.html": []byte(input)})
	result, err := fix.Apply(context.Background(), ld, edits)
	require.NoError(t, err)
	require.Empty(t, result.Incompatible)

	fixed, ok := result.Files["test.html"]
	if !ok {
		return input
	}
	return string(fixed)
}
