package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gohtmlint/internal/ui/pretty"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/lint/rules"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// collectionInfo represents a collection in JSON output.
type collectionInfo struct {
	Code        string   `json:"code"`
	Members     []string `json:"members"`
	Description string   `json:"description"`
}

// rulesListing is the JSON document the rules command emits.
type rulesListing struct {
	Rules       []ruleInfo       `json:"rules"`
	Collections []collectionInfo `json:"collections"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules and collections",
		Long: `List all available lint rules and the collections that group them.

Rule and collection codes go in the "rules" and "disable" lists of the
configuration file, or in the --rules and --disable flags of lint.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := lint.NewRegistry()
			if err := rules.Builtin(registry); err != nil {
				return fmt.Errorf("register rules: %w", err)
			}

			ruleRows, collectionRows := pretty.RowsFromRegistry(registry)

			if flags.format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), ruleRows, collectionRows)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
			formatter := pretty.NewTableFormatter(styles, terminalWidth())

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatRulesTable(ruleRows))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatCollectionsTable(collectionRows))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON writes the listing as a JSON document.
func outputRulesJSON(w io.Writer, ruleRows []pretty.RuleRow, collectionRows []pretty.CollectionRow) error {
	listing := rulesListing{
		Rules:       make([]ruleInfo, 0, len(ruleRows)),
		Collections: make([]collectionInfo, 0, len(collectionRows)),
	}
	for _, row := range ruleRows {
		listing.Rules = append(listing.Rules, ruleInfo{
			Code:        row.Code,
			Description: row.Description,
		})
	}
	for _, row := range collectionRows {
		listing.Collections = append(listing.Collections, collectionInfo{
			Code:        row.Code,
			Members:     row.Members,
			Description: row.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listing); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// terminalWidth returns the stdout width, or 0 when stdout is not a
// terminal so the formatter falls back to its default.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
