package config

import (
	"bytes"
	"fmt"
)

// RuleInfo carries the rule metadata a full template renders.
type RuleInfo struct {
	Code        string
	Description string
}

// TemplateOptions controls template generation.
type TemplateOptions struct {
	// Full appends a documented entry for every rule in Rules.
	Full bool

	// Rules is the metadata listed by a full template. The caller
	// supplies it from its registry.
	Rules []RuleInfo
}

// GenerateTemplate renders a starter .gohtmlint.yaml. The uncommented
// lines form a valid configuration on their own.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gohtmlint configuration
# See: https://github.com/yaklabco/gohtmlint

# Rule and collection codes to run.
rules:
  - recommended

# Codes to exclude from the selection above.
# disable:
#   - void-element-trailing-slash

# Files to lint (glob patterns).
# include:
#   - "**/*.html"
#   - "**/*.htm"

# Files to skip (glob patterns).
# exclude:
#   - "build/**"

# Documents that are loaded and followed but never linted.
# external:
#   - "bower_components/**"
#   - "node_modules/**"

# Package-mode entrypoints, relative to the package root.
# entrypoints:
#   - index.html

# Number of parallel workers (0 = one per CPU).
# jobs: 0

# Colored output: auto, always, or never.
# color: auto

# Log verbosity: debug, info, warn, or error.
# log_level: info

# Fix application.
# fix:
#   backup: false
#   max_passes: 10

# Lint result cache.
# cache:
#   enabled: false
`)

	if opts.Full && len(opts.Rules) > 0 {
		buf.WriteString("\n# Available rules:\n")
		for _, r := range opts.Rules {
			fmt.Fprintf(&buf, "#   %s: %s\n", r.Code, r.Description)
		}
	}

	return buf.Bytes()
}
