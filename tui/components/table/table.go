package table

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/tui/theme"
)

// Options configures a styled table.
type Options struct {
	ShowRowNumbers bool
	Bordered       bool
	// Highlight marks the row whose record has this id.
	Highlight records.ID
	Theme     *theme.Theme
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		Bordered: true,
		Theme:    theme.DefaultTheme,
	}
}

// NewStyledTable creates a lipgloss table with the theme's header and row
// styles. Row 0 is the header.
func NewStyledTable(opts Options) *ltable.Table {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	table := ltable.New()
	if opts.Bordered {
		table = table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(t.TableBorder)
	} else {
		table = table.Border(lipgloss.HiddenBorder())
	}

	return table.StyleFunc(func(row, col int) lipgloss.Style {
		if row == ltable.HeaderRow {
			return t.TableHeader
		}
		return t.TableRow
	})
}

// RenderRecords renders records as an ID / Name / Surname table in store order.
func RenderRecords(recs []records.Record, opts Options) string {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	headers := []string{"ID", "NAME", "SURNAME"}
	if opts.ShowRowNumbers {
		headers = append([]string{"#"}, headers...)
	}

	table := NewStyledTable(opts).Headers(headers...)
	highlighted := -1
	for i, r := range recs {
		row := []string{r.ID.String(), r.Name, r.Surname}
		if opts.ShowRowNumbers {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		table = table.Row(row...)
		if !opts.Highlight.IsNone() && r.ID == opts.Highlight {
			highlighted = i
		}
	}

	if highlighted >= 0 {
		table = table.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return t.TableHeader
			case row == highlighted:
				return t.TableRow.Inherit(t.Highlight)
			default:
				return t.TableRow
			}
		})
	}

	return table.String()
}
