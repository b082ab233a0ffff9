// Package config defines the configuration types for gohtmlint. These
// are plain data structures; loading and precedence live in
// internal/configloader.
package config

// FixConfig controls fix application.
type FixConfig struct {
	// Backup enables sidecar backups of files before rewriting them.
	Backup bool `yaml:"backup"`

	// MaxPasses bounds the lint, fix, re-lint loop. Zero means the
	// built-in default.
	MaxPasses int `yaml:"max_passes"`
}

// CacheConfig controls the lint result cache.
type CacheConfig struct {
	// Enabled turns the cache on.
	Enabled bool `yaml:"enabled"`

	// Dir overrides the cache directory. Empty means the user cache
	// directory.
	Dir string `yaml:"dir"`
}

// Config is the root configuration.
type Config struct {
	// Rules lists the rule and collection codes to run.
	Rules []string `yaml:"rules"`

	// Disable lists rule and collection codes to exclude from Rules.
	Disable []string `yaml:"disable"`

	// Include lists glob patterns for files to lint.
	Include []string `yaml:"include"`

	// Exclude lists glob patterns for files to skip.
	Exclude []string `yaml:"exclude"`

	// External lists glob patterns for documents that are loaded and
	// followed during package traversal but not linted, such as
	// vendored dependencies.
	External []string `yaml:"external"`

	// Entrypoints lists the documents package-mode traversal starts
	// from, relative to the package root.
	Entrypoints []string `yaml:"entrypoints"`

	// FollowSymlinks makes discovery descend into symlinked directories.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// Jobs is the number of parallel workers. Zero means one per CPU.
	Jobs int `yaml:"jobs"`

	// Color controls colored output: "auto", "always" or "never".
	Color string `yaml:"color"`

	// LogLevel sets the log verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// FixOptions controls fix application.
	FixOptions FixConfig `yaml:"fix"`

	// Cache controls the lint result cache.
	Cache CacheConfig `yaml:"cache"`

	// CLI-level options, never persisted.

	// Fix enables applying fixes.
	Fix bool `yaml:"-"`

	// DryRun computes fixes without writing files.
	DryRun bool `yaml:"-"`
}

// Defaults for scalar settings.
const (
	DefaultColor    = "auto"
	DefaultLogLevel = "info"
)

// DefaultRules is the rule selection when none is configured.
func DefaultRules() []string {
	return []string{"recommended"}
}

// DefaultInclude is the discovery pattern set when none is configured.
func DefaultInclude() []string {
	return []string{"**/*.html", "**/*.htm"}
}

// DefaultExternal lists directories conventionally holding vendored
// documents.
func DefaultExternal() []string {
	return []string{"bower_components/**", "node_modules/**"}
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Rules:    DefaultRules(),
		Include:  DefaultInclude(),
		External: DefaultExternal(),
		Color:    DefaultColor,
		LogLevel: DefaultLogLevel,
	}
}
