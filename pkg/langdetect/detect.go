// Package langdetect classifies file content so discovery can decide
// whether a candidate file is HTML. It uses go-enry for classification,
// with fast-path checks for unmistakably HTML content.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langHTML = "html"
	langText = "text"
)

// htmlExtensions are treated as HTML without looking at content.
var htmlExtensions = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
}

// htmlPrefixes are leading constructs that identify HTML content on
// their own.
var htmlPrefixes = [][]byte{
	[]byte("<!doctype"),
	[]byte("<html"),
	[]byte("<head"),
	[]byte("<body"),
	[]byte("<template"),
	[]byte("<dom-module"),
}

// IsHTML reports whether the file at path with the given content should
// be linted as HTML. A known extension decides on its own; content
// classification covers extensionless and unknown-extension files.
func IsHTML(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if htmlExtensions[ext] {
		return true
	}
	if ext != "" {
		if lang, safe := enry.GetLanguageByExtension(filepath.Base(path)); safe {
			return normalize(lang) == langHTML
		}
	}
	return Detect(content) == langHTML
}

// Detect classifies content, returning a lowercase language name or
// "text" when classification is not safe.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	if looksLikeHTML(content) {
		return langHTML
	}

	candidates := []string{"HTML", "XML", "JavaScript", "CSS", "JSON", "Markdown", "Text"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}
	return langText
}

// looksLikeHTML reports obviously-HTML content without consulting the
// classifier.
func looksLikeHTML(content []byte) bool {
	lowered := bytes.ToLower(bytes.TrimSpace(content))
	for _, prefix := range htmlPrefixes {
		if bytes.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
