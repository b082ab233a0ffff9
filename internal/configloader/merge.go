package configloader

import "github.com/yaklabco/gohtmlint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	// Booleans: these are tricky because false is the zero value.
	// A true in override wins; a config file cannot unset a lower layer.
	if override.FollowSymlinks {
		result.FollowSymlinks = override.FollowSymlinks
	}
	if override.Fix {
		result.Fix = override.Fix
	}
	if override.DryRun {
		result.DryRun = override.DryRun
	}

	// Fix options: merge individual fields
	if override.FixOptions.Backup {
		result.FixOptions.Backup = override.FixOptions.Backup
	}
	if override.FixOptions.MaxPasses != 0 {
		result.FixOptions.MaxPasses = override.FixOptions.MaxPasses
	}

	// Cache: merge individual fields
	if override.Cache.Enabled {
		result.Cache.Enabled = override.Cache.Enabled
	}
	if override.Cache.Dir != "" {
		result.Cache.Dir = override.Cache.Dir
	}

	// Slices: override replaces base entirely if non-nil
	if override.Rules != nil {
		result.Rules = override.Rules
	}
	if override.Disable != nil {
		result.Disable = override.Disable
	}
	if override.Include != nil {
		result.Include = override.Include
	}
	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}
	if override.External != nil {
		result.External = override.External
	}
	if override.Entrypoints != nil {
		result.Entrypoints = override.Entrypoints
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
