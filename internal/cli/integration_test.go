package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/internal/cli"
)

// legacyDoctypeHTML declares an XHTML doctype on line 1, which triggers
// deprecated-doctype.
const legacyDoctypeHTML = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html>
<head><title>demo</title></head>
<body><p>hello</p></body>
</html>
`

// trailingSlashHTML self-closes a <br>, which triggers
// void-element-trailing-slash.
const trailingSlashHTML = `<!DOCTYPE html>
<html>
<head><title>demo</title></head>
<body>
<br/>
</body>
</html>
`

// duplicateIDsHTML reuses an id value, which triggers no-duplicate-ids
// at error severity.
const duplicateIDsHTML = `<!DOCTYPE html>
<html>
<head><title>demo</title></head>
<body>
<div id="content"></div>
<div id="content"></div>
</body>
</html>
`

// cleanHTML passes every built-in rule.
const cleanHTML = `<!DOCTYPE html>
<html>
<head><title>demo</title></head>
<body><p>hello</p></body>
</html>
`

// minimalConfig pins the rule selection so user or project
// configuration never leaks into a test.
const minimalConfig = "rules:\n  - recommended\n"

// writeHTML writes an HTML fixture into a fresh temp directory and
// returns its path.
func writeHTML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCommand executes the root command with the given arguments and
// returns the combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_LintReportsWarnings(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "legacy.html", legacyDoctypeHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", htmlFile)

	// Warnings alone do not fail the run.
	require.NoError(t, err)
	assert.Contains(t, output, "deprecated-doctype")
	assert.Contains(t, output, "legacy doctype, replace with <!DOCTYPE html>")
	assert.Contains(t, output, ":1:1: warning")
	assert.Contains(t, output, "1 issue")
	assert.Contains(t, output, "1 fixable")
}

func TestIntegration_StrictTreatsWarningsAsErrors(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "legacy.html", legacyDoctypeHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", "--strict", htmlFile)

	require.ErrorIs(t, err, cli.ErrLintWarningsFound)
	assert.Contains(t, output, "deprecated-doctype")
}

func TestIntegration_DuplicateIDsFailTheRun(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "dupes.html", duplicateIDsHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", htmlFile)

	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, output, "no-duplicate-ids")
	assert.Contains(t, output, `duplicate id "content"`)
	assert.Contains(t, output, "error")
}

func TestIntegration_DisableFlagSuppressesRule(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "slash.html", trailingSlashHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never",
		"--disable", "void-element-trailing-slash", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "No issues found")
	assert.NotContains(t, output, "void-element-trailing-slash")
}

func TestIntegration_ConfigDisableSuppressesRule(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "slash.html", trailingSlashHTML)
	cfgFile := writeConfig(t, "rules:\n  - recommended\ndisable:\n  - void-element-trailing-slash\n")

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "No issues found")
}

func TestIntegration_InlineDirectiveSuppressesWarning(t *testing.T) {
	t.Parallel()

	const html = `<!DOCTYPE html>
<html>
<head><title>demo</title></head>
<body>
<!-- gohtmlint disable void-element-trailing-slash -->
<br/>
</body>
</html>
`
	htmlFile := writeHTML(t, "suppressed.html", html)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "No issues found")
	assert.NotContains(t, output, "void-element-trailing-slash")
}

func TestIntegration_InlineEnableOverridesDisable(t *testing.T) {
	t.Parallel()

	const html = `<!DOCTYPE html>
<html>
<head><title>demo</title></head>
<body>
<!-- gohtmlint disable void-element-trailing-slash -->
<!-- gohtmlint enable void-element-trailing-slash -->
<br/>
</body>
</html>
`
	htmlFile := writeHTML(t, "reenabled.html", html)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "void-element-trailing-slash")
	assert.Contains(t, output, "trailing slash on void element <br>")
}

func TestIntegration_FixRewritesFile(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "slash.html", trailingSlashHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", "--fix", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "No issues found")
	assert.Contains(t, output, "1 fixed in 1 file")

	fixed, readErr := os.ReadFile(htmlFile)
	require.NoError(t, readErr)
	want := strings.Replace(trailingSlashHTML, "<br/>", "<br>", 1)
	assert.Equal(t, want, string(fixed))
}

func TestIntegration_DryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "slash.html", trailingSlashHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never",
		"--fix", "--dry-run", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "1 fixed (not written)")

	content, readErr := os.ReadFile(htmlFile)
	require.NoError(t, readErr)
	assert.Equal(t, trailingSlashHTML, string(content))
}

func TestIntegration_CleanFilePasses(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "clean.html", cleanHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "No issues found")
}

func TestIntegration_LintDirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.html"), []byte(cleanHTML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.html"), []byte(trailingSlashHTML), 0644))
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", tmpDir)

	require.NoError(t, err)
	assert.Contains(t, output, "b.html")
	assert.NotContains(t, output, "a.html")
	assert.Contains(t, output, "void-element-trailing-slash")
	assert.Contains(t, output, "in 1 file")
}

func TestIntegration_SummaryBlock(t *testing.T) {
	t.Parallel()

	htmlFile := writeHTML(t, "legacy.html", legacyDoctypeHTML)
	cfgFile := writeConfig(t, minimalConfig)

	output, err := runCommand(t, "lint", "--config", cfgFile, "--color", "never", "--summary", htmlFile)

	require.NoError(t, err)
	assert.Contains(t, output, "Summary")
	assert.Contains(t, output, "Files checked:")
	assert.Contains(t, output, "Total issues:")
	assert.Contains(t, output, "Lint completed with warnings")
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "gohtmlint.yml")

	_, err := runCommand(t, "init", "--output", outPath)
	require.NoError(t, err)

	content, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "rules:")
	assert.Contains(t, string(content), "- recommended")

	// A second run must not clobber the file without --force; stdin is
	// not a terminal here, so there is no prompt to fall back to.
	_, err = runCommand(t, "init", "--output", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestIntegration_RulesListingJSON(t *testing.T) {
	t.Parallel()

	output, err := runCommand(t, "rules", "--format", "json")

	require.NoError(t, err)
	for _, code := range []string{
		"deprecated-doctype",
		"void-element-trailing-slash",
		"dom-module-invalid-attrs",
		"no-duplicate-ids",
	} {
		assert.Contains(t, output, code)
	}
	assert.Contains(t, output, "recommended")
	assert.Contains(t, output, "html-style")
}
