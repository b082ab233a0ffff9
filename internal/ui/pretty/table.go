package pretty

import (
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minCodeWidth     = 12
	minMembersWidth  = 16
	minDescWidth     = 30
	heavySeparator   = "="
	defaultTermWidth = 100
)

// RuleRow represents a single rule in the listing.
type RuleRow struct {
	Code        string
	Description string
}

// CollectionRow represents a single collection in the listing.
type CollectionRow struct {
	Code        string
	Members     []string
	Description string
}

// RowsFromRegistry collects listing rows from a registry in code order.
func RowsFromRegistry(reg *lint.Registry) ([]RuleRow, []CollectionRow) {
	var rules []RuleRow
	var collections []CollectionRow

	for _, code := range reg.Codes() {
		if rule, ok := reg.Rule(code); ok {
			rules = append(rules, RuleRow{
				Code:        code,
				Description: rule.Description(),
			})
			continue
		}
		if c, ok := reg.Collection(code); ok {
			collections = append(collections, CollectionRow{
				Code:        c.Code,
				Members:     c.Members,
				Description: c.Description,
			})
		}
	}

	return rules, collections
}

// TableFormatter formats the rules and collections listing as styled tables.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatRulesTable formats registered rules as a styled table.
func (t *TableFormatter) FormatRulesTable(rows []RuleRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.ruleColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(
		" " + pad("CODE", widths.code) + "  " + pad("DESCRIPTION", widths.desc) + " "))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths.total()))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(" ")
		builder.WriteString(t.styles.RuleCode.Render(pad(row.Code, widths.code)))
		builder.WriteString("  ")
		builder.WriteString(truncateString(row.Description, widths.desc))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths.total()))
	builder.WriteString("\n")

	return builder.String()
}

// FormatCollectionsTable formats registered collections as a styled table.
func (t *TableFormatter) FormatCollectionsTable(rows []CollectionRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.collectionColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(
		" " + pad("COLLECTION", widths.code) + "  " + pad("MEMBERS", widths.members) + "  " + pad("DESCRIPTION", widths.desc) + " "))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths.total()))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(" ")
		builder.WriteString(t.styles.RuleCode.Render(pad(row.Code, widths.code)))
		builder.WriteString("  ")
		builder.WriteString(pad(truncateString(strings.Join(row.Members, ", "), widths.members), widths.members))
		builder.WriteString("  ")
		builder.WriteString(truncateString(row.Description, widths.desc))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths.total()))
	builder.WriteString("\n")

	return builder.String()
}

type ruleColumnWidths struct {
	code int
	desc int
}

func (w ruleColumnWidths) total() int {
	return w.code + w.desc + tablePadding*2
}

// ruleColumnWidths sizes the CODE column to its content and gives the
// rest of the terminal to the description.
func (t *TableFormatter) ruleColumnWidths(rows []RuleRow) ruleColumnWidths {
	widths := ruleColumnWidths{code: minCodeWidth, desc: minDescWidth}

	for _, row := range rows {
		if len(row.Code) > widths.code {
			widths.code = len(row.Code)
		}
		if len(row.Description) > widths.desc {
			widths.desc = len(row.Description)
		}
	}

	if widths.total() > t.termWidth {
		excess := widths.total() - t.termWidth
		widths.desc = max(minDescWidth, widths.desc-excess)
	}

	return widths
}

type collectionColumnWidths struct {
	code    int
	members int
	desc    int
}

func (w collectionColumnWidths) total() int {
	return w.code + w.members + w.desc + tablePadding*3
}

func (t *TableFormatter) collectionColumnWidths(rows []CollectionRow) collectionColumnWidths {
	widths := collectionColumnWidths{code: minCodeWidth, members: minMembersWidth, desc: minDescWidth}

	for _, row := range rows {
		if len(row.Code) > widths.code {
			widths.code = len(row.Code)
		}
		members := strings.Join(row.Members, ", ")
		if len(members) > widths.members {
			widths.members = len(members)
		}
		if len(row.Description) > widths.desc {
			widths.desc = len(row.Description)
		}
	}

	// Constrain to terminal width, squeezing members before description.
	if widths.total() > t.termWidth {
		excess := widths.total() - t.termWidth
		widths.members = max(minMembersWidth, widths.members-excess)
	}
	if widths.total() > t.termWidth {
		excess := widths.total() - t.termWidth
		widths.desc = max(minDescWidth, widths.desc-excess)
	}

	return widths
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(width int) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, width))
}

// pad left-aligns str in a field of width runes.
func pad(str string, width int) string {
	if len(str) >= width {
		return str
	}
	return str + strings.Repeat(" ", width-len(str))
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
