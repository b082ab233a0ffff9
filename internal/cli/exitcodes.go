package cli

import (
	"errors"

	"github.com/yaklabco/gohtmlint/pkg/runner"
)

// Exit codes for gohtmlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (when strict mode).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors commands return from Execute; the caller maps them to
// exit codes with ExitCodeForError.
var (
	// ErrLintIssuesFound signals error-severity lint findings.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrLintWarningsFound signals warning-severity findings in strict mode.
	ErrLintWarningsFound = errors.New("lint warnings found")

	// ErrFilesFailed signals files that could not be read or parsed.
	ErrFilesFailed = errors.New("some files could not be processed")

	// ErrInvalidUsage signals flags or arguments that cannot be combined.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfigLoad signals configuration that could not be loaded.
	ErrConfigLoad = errors.New("failed to load configuration")
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.BySeverity["error"] > 0 {
		return ExitLintErrors
	}
	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}
	if strict && result.Stats.BySeverity["warning"] > 0 {
		return ExitLintWarnings
	}
	return ExitSuccess
}

// ExitCodeForError maps an Execute error to the process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintIssuesFound):
		return ExitLintErrors
	case errors.Is(err, ErrLintWarningsFound):
		return ExitLintWarnings
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// IsLintOutcome reports whether err signals a lint outcome rather than a
// failure. Outcome errors set the exit code; they carry nothing worth
// logging beyond the listing already printed.
func IsLintOutcome(err error) bool {
	return errors.Is(err, ErrLintIssuesFound) ||
		errors.Is(err, ErrLintWarningsFound) ||
		errors.Is(err, ErrFilesFailed)
}
