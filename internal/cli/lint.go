package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gohtmlint/internal/cache"
	"github.com/yaklabco/gohtmlint/internal/configloader"
	"github.com/yaklabco/gohtmlint/internal/logging"
	"github.com/yaklabco/gohtmlint/internal/ui/pretty"
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/lint/rules"
	"github.com/yaklabco/gohtmlint/pkg/parser/nethtml"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

type lintFlags struct {
	rules   []string
	disable []string
	include []string
	exclude []string
	pkg     bool
	watch   bool
	strict  bool
	summary bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint HTML files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint HTML files for correctness and style issues.

By default, lints all .html and .htm files in the current directory and
subdirectories. Specify paths to lint specific files or directories.
With --package, arguments are entrypoints and the linter follows
references from them instead of walking directories.

Examples:
  gohtmlint lint                       # Lint current directory
  gohtmlint lint src/                  # Lint src directory
  gohtmlint lint index.html            # Lint single file
  gohtmlint lint --fix                 # Lint and auto-fix issues
  gohtmlint lint --fix --dry-run       # Show fixes without applying
  gohtmlint lint --package index.html  # Lint the package of index.html
  gohtmlint lint --watch               # Relint on file changes
  gohtmlint lint --strict              # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Slice flags land on the CLI config layer. Unset flags stay nil,
	// which the merge treats as not provided.
	cliCfg.Rules = flags.rules
	cliCfg.Disable = flags.disable
	cliCfg.Include = flags.include
	cliCfg.Exclude = flags.exclude

	// The color flag is persistent on the root command; it joins the
	// CLI layer only when given, so a configured color can win otherwise.
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		cliCfg.Color = f.Value.String()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// --debug wins over the configured level.
	debugEnabled, err := cmd.Flags().GetBool("debug")
	if err != nil {
		debugEnabled = false
	}
	if !debugEnabled && finalCfg.LogLevel != "" {
		logging.SetLevel(finalCfg.LogLevel)
	}

	// Fix rewrites the discovered file list in place. Package traversal
	// loads documents outside that list and watch runs unattended, so
	// neither combines with it.
	if finalCfg.Fix && flags.pkg {
		return fmt.Errorf("%w: --fix cannot be combined with --package", ErrInvalidUsage)
	}
	if finalCfg.Fix && flags.watch {
		return fmt.Errorf("%w: --fix cannot be combined with --watch", ErrInvalidUsage)
	}

	registry := lint.NewRegistry()
	if err := rules.Builtin(registry); err != nil {
		return fmt.Errorf("register rules: %w", err)
	}

	selected, err := lint.Select(registry, finalCfg)
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	logger.Debug("configuration loaded",
		logging.FieldRules, len(selected),
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	var store *cache.Cache
	if finalCfg.Cache.Enabled {
		store, err = cache.Open(finalCfg.Cache.Dir)
		if err != nil {
			// A broken cache costs relints, not the run.
			logger.Warn("cache disabled", logging.FieldError, err)
		}
	}

	lintRunner := runner.New(nethtml.New(), lint.NewLinter(selected), store)

	runOpts := runner.FromConfig(finalCfg)
	runOpts.Paths = args
	runOpts.WorkingDir = workDir
	if flags.pkg {
		if len(args) > 0 {
			eps := make([]string, len(args))
			for i, a := range args {
				eps[i] = filepath.ToSlash(a)
			}
			runOpts.Entrypoints = eps
			runOpts.Paths = nil
		}
		if len(runOpts.Entrypoints) == 0 {
			return fmt.Errorf("%w: --package needs entrypoints as arguments or in configuration", ErrInvalidUsage)
		}
	} else {
		// Configured entrypoints switch to package traversal only when
		// asked for.
		runOpts.Entrypoints = nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(finalCfg.Color, os.Stdout))

	if flags.watch {
		relint := func(ctx context.Context) {
			result, err := lintRunner.Run(ctx, runOpts)
			if err != nil {
				logger.Error("lint run failed", logging.FieldError, err)
				return
			}
			printLintResult(cmd, styles, logger, result, flags)
		}
		return runWatch(logging.WithLogger(ctx, logger), workDir, relint)
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	logger.Debug("lint run complete",
		logging.FieldRunID, result.RunID,
		logging.FieldFilesLinted, result.Stats.FilesLinted,
		logging.FieldWarningsTotal, result.Stats.Warnings,
		logging.FieldEditsApplied, result.Stats.EditsApplied,
		logging.FieldPasses, result.Stats.Passes,
		logging.FieldCacheHits, result.Stats.CacheHits,
		logging.FieldCacheMisses, result.Stats.CacheMisses,
	)

	printLintResult(cmd, styles, logger, result, flags)

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitLintErrors:
		return ErrLintIssuesFound
	case ExitLintWarnings:
		return ErrLintWarningsFound
	case ExitIOError:
		return ErrFilesFailed
	}
	return nil
}

// printLintResult writes the warning listing and the trailing summary.
func printLintResult(cmd *cobra.Command, styles *pretty.Styles, logger *log.Logger, result *runner.Result, flags *lintFlags) {
	out := cmd.OutOrStdout()

	for _, w := range result.Warnings {
		fmt.Fprintln(out, styles.FormatWarning(w))
	}

	for _, fe := range result.FileErrors {
		logger.Error("skipping file", logging.FieldPath, fe.Path, logging.FieldError, fe.Err)
	}
	for _, path := range slices.Sorted(maps.Keys(result.Skipped)) {
		logger.Warn("file not written", logging.FieldPath, path, logging.FieldReason, result.Skipped[path])
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out)
	}
	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "compute fixes without writing files")
	cmd.Flags().BoolVar(&cfg.FixOptions.Backup, "backup", false, "create backups before writing fixed files")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&cfg.Cache.Enabled, "cache", false, "cache lint results between runs")
	cmd.Flags().StringSliceVar(&flags.rules, "rules", nil, "rule or collection codes to run")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule or collection codes to exclude")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns for files to lint")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns for files to skip")
	cmd.Flags().BoolVar(&flags.pkg, "package", false, "lint the reference closure of the entrypoints")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "watch for file changes and relint")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print the detailed summary block")
}
