package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gohtmlint/pkg/runner"
)

// writeTree creates the given files under dir with placeholder content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlFile := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlFile, []byte("<p>hi</p>"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{htmlFile},
		WorkingDir: dir,
	}

	files, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}

	if files[0] != htmlFile {
		t.Errorf("expected %s, got %s", htmlFile, files[0])
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":     "<p>a</p>",
		"docs/guide.htm": "<p>b</p>",
		"docs/notes.md":  "# notes",
		"src/main.go":    "package main",
		"style.css":      "body {}",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Should find only HTML files, sorted.
	expected := []string{
		filepath.Join(dir, "docs/guide.htm"),
		filepath.Join(dir, "index.html"),
	}

	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}

	for i, exp := range expected {
		if discovered[i] != exp {
			t.Errorf("file[%d] = %s, want %s", i, discovered[i], exp)
		}
	}
}

func TestDiscover_DefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "page.html"), []byte("<p>x</p>"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	opts := runner.Options{
		Paths:      nil, // Should default to "."
		WorkingDir: dir,
	}

	files, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":      "<p>a</p>",
		"docs/guide.html": "<p>b</p>",
		"docs/api.html":   "<p>c</p>",
		"docs/readme.txt": "plain text",
		"src/page.html":   "<p>d</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		IncludeGlobs: []string{"docs/**"},
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Only HTML files under docs/: the include glob admits readme.txt
	// but classification rejects it.
	if len(discovered) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(discovered), discovered)
	}

	for _, f := range discovered {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("filepath.Rel error: %v", err)
		}
		if !hasPrefix(rel, "docs") {
			t.Errorf("unexpected file outside docs: %s", rel)
		}
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":             "<p>a</p>",
		"vendor/pkg/doc.html":    "<p>b</p>",
		"node_modules/lib.html":  "<p>c</p>",
		"docs/guide.html":        "<p>d</p>",
		"docs/generated/out.htm": "<p>e</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "node_modules/**", "docs/generated/**"},
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "docs/guide.html"),
		filepath.Join(dir, "index.html"),
	}

	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}

	for i, exp := range expected {
		if discovered[i] != exp {
			t.Errorf("file[%d] = %s, want %s", i, discovered[i], exp)
		}
	}
}

func TestDiscover_ExternalGlobsSkippedInWalks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":                 "<p>a</p>",
		"bower_components/x/ui.html": "<p>b</p>",
		"node_modules/y/widget.html": "<p>c</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:         []string{"."},
		WorkingDir:    dir,
		ExternalGlobs: []string{"bower_components/**", "node_modules/**"},
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(discovered) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(discovered), discovered)
	}
	if filepath.Base(discovered[0]) != "index.html" {
		t.Errorf("expected index.html, got %s", discovered[0])
	}
}

func TestDiscover_ExplicitFileBypassesIncludes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"page.html":       "<p>a</p>",
		"docs/guide.html": "<p>b</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:        []string{"page.html"},
		WorkingDir:   dir,
		IncludeGlobs: []string{"docs/**"},
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(discovered) != 1 || filepath.Base(discovered[0]) != "page.html" {
		t.Fatalf("expected page.html, got %v", discovered)
	}
}

func TestDiscover_ExplicitFileStillExcluded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"build/out.html": "<p>a</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:        []string{"build/out.html"},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"build/**"},
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(discovered) != 0 {
		t.Fatalf("expected no files, got %v", discovered)
	}
}

func TestDiscover_ExtensionlessSniff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"homepage": "<!DOCTYPE html>\n<html><body></body></html>",
		"LICENSE":  "Copyright. Permission is hereby granted to use this software.",
	})

	ctx := context.Background()

	// An explicitly named extensionless file is sniffed from content.
	discovered, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{"homepage"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(discovered) != 1 {
		t.Fatalf("expected homepage to be discovered, got %v", discovered)
	}

	// Prose does not sniff as HTML.
	discovered, err = runner.Discover(ctx, runner.Options{
		Paths:      []string{"LICENSE"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(discovered) != 0 {
		t.Fatalf("expected LICENSE to be skipped, got %v", discovered)
	}
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":        "<p>a</p>",
		".hidden.html":      "<p>b</p>",
		".git/config.html":  "<p>c</p>",
		"docs/.secret.html": "<p>d</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Should only find non-hidden index.html.
	if len(discovered) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(discovered), discovered)
	}

	if filepath.Base(discovered[0]) != "index.html" {
		t.Errorf("expected index.html, got %s", filepath.Base(discovered[0]))
	}
}

func TestDiscover_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"z.html": "<p></p>",
		"a.html": "<p></p>",
		"m.html": "<p></p>",
		"b.html": "<p></p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}

	// Run discovery multiple times.
	results := make([][]string, 0, 5)
	for range 5 {
		discovered, err := runner.Discover(ctx, opts)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		results = append(results, discovered)
	}

	// All results should be identical.
	for runIdx := 1; runIdx < len(results); runIdx++ {
		if len(results[runIdx]) != len(results[0]) {
			t.Errorf("run %d has different length: %d vs %d", runIdx, len(results[runIdx]), len(results[0]))
			continue
		}
		for fileIdx := range results[runIdx] {
			if results[runIdx][fileIdx] != results[0][fileIdx] {
				t.Errorf("run %d, file %d differs: %s vs %s", runIdx, fileIdx, results[runIdx][fileIdx], results[0][fileIdx])
			}
		}
	}

	// Verify sorted order.
	for sortIdx := 1; sortIdx < len(results[0]); sortIdx++ {
		if results[0][sortIdx] < results[0][sortIdx-1] {
			t.Errorf("files not sorted: %s should come after %s", results[0][sortIdx-1], results[0][sortIdx])
		}
	}
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>x</p>"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	opts := runner.Options{
		// Same file via different paths.
		Paths:      []string{"index.html", "./index.html", "index.html"},
		WorkingDir: dir,
	}

	files, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file (deduplicated), got %d: %v", len(files), files)
	}
}

func TestDiscover_MultiplePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"docs/index.html":   "<p>a</p>",
		"guides/index.html": "<p>b</p>",
		"notes/index.html":  "<p>c</p>",
	})

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"docs", "guides"},
		WorkingDir: dir,
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Should find files only in docs and guides, not notes.
	if len(discovered) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(discovered), discovered)
	}

	for _, f := range discovered {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("filepath.Rel error: %v", err)
		}
		if !hasPrefix(rel, "docs") && !hasPrefix(rel, "guides") {
			t.Errorf("unexpected file: %s", rel)
		}
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"nonexistent"},
		WorkingDir: dir,
	}

	_, err := runner.Discover(ctx, opts)
	if err == nil {
		t.Fatal("expected error for non-existent path")
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.html": "<p></p>",
		"b.html": "<p></p>",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}

	_, err := runner.Discover(ctx, opts)
	if err == nil {
		t.Log("no error returned, cancellation may not have been caught early")
	}
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Create real file.
	realFile := filepath.Join(dir, "real.html")
	if err := os.WriteFile(realFile, []byte("<p>x</p>"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// Create file symlink.
	linkFile := filepath.Join(dir, "link.html")
	if err := os.Symlink(realFile, linkFile); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Should find both the real file and the symlink.
	if len(discovered) != 2 {
		t.Errorf("expected 2 files, got %d: %v", len(discovered), discovered)
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Create a real subdirectory with a file.
	realDir := filepath.Join(dir, "real")
	if err := os.MkdirAll(realDir, 0755); err != nil {
		t.Fatalf("setup mkdir real: %v", err)
	}
	if err := os.WriteFile(filepath.Join(realDir, "doc.html"), []byte("<p>x</p>"), 0644); err != nil {
		t.Fatalf("setup write real: %v", err)
	}

	// Create external directory (outside the walk root) with a different file.
	externalDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(externalDir, "external.html"), []byte("<p>y</p>"), 0644); err != nil {
		t.Fatalf("setup write external: %v", err)
	}

	// Create a symlink inside dir pointing to the external directory.
	linkDir := filepath.Join(dir, "linked")
	if err := os.Symlink(externalDir, linkDir); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	// Test without following symlinks - should only find real/doc.html.
	ctx := context.Background()
	opts := runner.Options{
		Paths:          []string{"."},
		WorkingDir:     dir,
		FollowSymlinks: false,
	}

	discovered, err := runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(discovered) != 1 {
		t.Errorf("expected 1 file without FollowSymlinks, got %d: %v", len(discovered), discovered)
	}

	// Verify the file is from real/, not linked/.
	if len(discovered) == 1 && !strings.Contains(discovered[0], "real") {
		t.Errorf("expected file from real/, got: %v", discovered[0])
	}

	// Test with following symlinks - should find both files.
	opts.FollowSymlinks = true
	discovered, err = runner.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Should find 2 files: real/doc.html and the external file via symlink.
	if len(discovered) != 2 {
		t.Errorf("expected 2 files with FollowSymlinks, got %d: %v", len(discovered), discovered)
	}

	// Verify we found both files.
	foundReal, foundExternal := false, false
	for _, f := range discovered {
		if strings.HasSuffix(f, "doc.html") {
			foundReal = true
		}
		if strings.HasSuffix(f, "external.html") {
			foundExternal = true
		}
	}
	if !foundReal || !foundExternal {
		t.Errorf("expected to find both doc.html and external.html, got: %v", discovered)
	}
}

// hasPrefix checks if path starts with prefix as a path component.
func hasPrefix(path, prefix string) bool {
	path = filepath.ToSlash(path)
	prefix = filepath.ToSlash(prefix)
	return path == prefix || len(path) > len(prefix) && path[:len(prefix)+1] == prefix+"/"
}
