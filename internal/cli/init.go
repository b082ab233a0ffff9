package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gohtmlint/internal/logging"
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/fsutil"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/lint/rules"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gohtmlint configuration file",
		Long: `Create a new .gohtmlint.yml configuration file in the current directory
with sensible defaults. The file can be customized to select rules and
collections, tune discovery globs, and configure fixing and caching.

Examples:
  gohtmlint init                     Create minimal .gohtmlint.yml
  gohtmlint init --full              Create config with all rules documented
  gohtmlint init --output conf.yml   Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate template with all rules documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gohtmlint.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gohtmlint.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		overwrite, err := confirmOverwrite(cmd, flags.force, outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("keeping existing file", logging.FieldPath, outputPath)
			return nil
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	opts := config.TemplateOptions{Full: flags.full}
	if flags.full {
		opts.Rules, err = builtinRuleInfos()
		if err != nil {
			return err
		}
	}

	content := config.GenerateTemplate(opts)

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("the template documents every available rule")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'gohtmlint rules' to see all available rules")

	return nil
}

// confirmOverwrite decides whether an existing file may be replaced.
// Without --force it asks on a terminal and refuses anywhere else, so a
// script never clobbers a config by accident.
func confirmOverwrite(cmd *cobra.Command, force bool, path string) (bool, error) {
	if force {
		return true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("file %q already exists; use --force to overwrite", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Overwrite? [y/N] ", path)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// builtinRuleInfos lists rule metadata for the full template.
func builtinRuleInfos() ([]config.RuleInfo, error) {
	registry := lint.NewRegistry()
	if err := rules.Builtin(registry); err != nil {
		return nil, fmt.Errorf("register rules: %w", err)
	}

	var infos []config.RuleInfo
	for _, code := range registry.Codes() {
		if rule, ok := registry.Rule(code); ok {
			infos = append(infos, config.RuleInfo{Code: code, Description: rule.Description()})
		}
	}
	return infos, nil
}
