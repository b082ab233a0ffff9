package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

// envVarPrefix is the prefix for all gohtmlint environment variables.
const envVarPrefix = "GOHTMLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"RULES":           {field: "rules", typ: envTypeSlice},
	"DISABLE":         {field: "disable", typ: envTypeSlice},
	"INCLUDE":         {field: "include", typ: envTypeSlice},
	"EXCLUDE":         {field: "exclude", typ: envTypeSlice},
	"EXTERNAL":        {field: "external", typ: envTypeSlice},
	"ENTRYPOINTS":     {field: "entrypoints", typ: envTypeSlice},
	"FOLLOW_SYMLINKS": {field: "follow_symlinks", typ: envTypeBool},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"COLOR":           {field: "color", typ: envTypeString},
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString},
	"FIX_BACKUP":      {field: "fix.backup", typ: envTypeBool},
	"FIX_MAX_PASSES":  {field: "fix.max_passes", typ: envTypeInt},
	"CACHE_ENABLED":   {field: "cache.enabled", typ: envTypeBool},
	"CACHE_DIR":       {field: "cache.dir", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOHTMLINT_ (e.g., GOHTMLINT_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "color":
		cfg.Color = value
	case "log_level":
		cfg.LogLevel = value
	case "cache.dir":
		cfg.Cache.Dir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "follow_symlinks":
		cfg.FollowSymlinks = value
	case "fix.backup":
		cfg.FixOptions.Backup = value
	case "cache.enabled":
		cfg.Cache.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "fix.max_passes":
		cfg.FixOptions.MaxPasses = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "rules":
		cfg.Rules = value
	case "disable":
		cfg.Disable = value
	case "include":
		cfg.Include = value
	case "exclude":
		cfg.Exclude = value
	case "external":
		cfg.External = value
	case "entrypoints":
		cfg.Entrypoints = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOHTMLINT_RULES":           "Comma-separated rule and collection codes to run",
		"GOHTMLINT_DISABLE":         "Comma-separated rule and collection codes to exclude",
		"GOHTMLINT_INCLUDE":         "Comma-separated glob patterns for files to lint",
		"GOHTMLINT_EXCLUDE":         "Comma-separated glob patterns for files to skip",
		"GOHTMLINT_EXTERNAL":        "Comma-separated glob patterns for external documents",
		"GOHTMLINT_ENTRYPOINTS":     "Comma-separated entrypoints for package mode",
		"GOHTMLINT_FOLLOW_SYMLINKS": "Follow directory symlinks during discovery: true or false",
		"GOHTMLINT_JOBS":            "Number of parallel workers (0 = auto)",
		"GOHTMLINT_COLOR":           "Colored output: auto, always, or never",
		"GOHTMLINT_LOG_LEVEL":       "Log verbosity: debug, info, warn, or error",
		"GOHTMLINT_FIX_BACKUP":      "Write sidecar backups before fixing: true or false",
		"GOHTMLINT_FIX_MAX_PASSES":  "Maximum fix passes per file set (0 = default)",
		"GOHTMLINT_CACHE_ENABLED":   "Enable the lint result cache: true or false",
		"GOHTMLINT_CACHE_DIR":       "Override the lint result cache directory",
	}
}
