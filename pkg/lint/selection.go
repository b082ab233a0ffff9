package lint

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

// Select resolves the configured rule and collection codes into the
// concrete execution set.
//
// The enabled codes expand through the registry first, then explicitly
// disabled codes (which may also name collections) are removed. Unknown
// codes on either list are configuration errors.
func Select(reg *Registry, cfg *config.Config) ([]Rule, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	rules, err := reg.Rules(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("resolve rules: %w", err)
	}
	if len(cfg.Disable) == 0 {
		return rules, nil
	}

	drop, err := reg.Rules(cfg.Disable)
	if err != nil {
		return nil, fmt.Errorf("resolve disabled rules: %w", err)
	}
	disabled := make(map[string]bool, len(drop))
	for _, rule := range drop {
		disabled[rule.Code()] = true
	}

	kept := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if !disabled[rule.Code()] {
			kept = append(kept, rule)
		}
	}
	return kept, nil
}
