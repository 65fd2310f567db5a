package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
)

var (
	colorPrimary     = lipgloss.Color("#8BC34A")
	colorMuted       = lipgloss.Color("#7a8599")
	colorDestructive = lipgloss.Color("#e53935")
	colorWarning     = lipgloss.Color("#FFC107")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	errorStyle   = lipgloss.NewStyle().Foreground(colorDestructive).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorWarning).Padding(0, 1)
)

func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// table renders rows as left-aligned columns separated by two spaces.
func table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	line := func(cells []string, style *lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			s := lipgloss.NewStyle().Width(widths[i])
			if style != nil {
				s = s.Inherit(*style)
			}
			parts[i] = s.Render(c)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}

	line(headers, &headerStyle)
	for _, row := range rows {
		line(row, nil)
	}
	return b.String()
}

func renderItems(items []listapi.Item, total int, sortable bool, now time.Time) string {
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		category := ""
		if it.Category != nil {
			category = it.Category.Title
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(it.ID, 10),
			it.Title,
			it.Status,
			strconv.Itoa(it.Sort),
			category,
			humanize.RelTime(it.UpdatedAt, now, "ago", "from now"),
		})
	}

	var b strings.Builder
	b.WriteString(table([]string{"#", "ID", "TITLE", "STATUS", "SORT", "CATEGORY", "UPDATED"}, rows))
	b.WriteString(footer(len(items), total))
	if !sortable {
		b.WriteString(mutedStyle.Render("filters active: reordering disabled"))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderRecords(records []listapi.Record, total int, selected func(int64) bool, now time.Time) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		mark := " "
		switch {
		case selected != nil && selected(r.ID):
			mark = "x"
		case !r.Eligible:
			mark = "-"
		}
		rows = append(rows, []string{
			"[" + mark + "]",
			strconv.FormatInt(r.ID, 10),
			r.Reference,
			r.CustomerName,
			amount(r.AmountCents),
			r.Status,
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		})
	}

	var b strings.Builder
	b.WriteString(table([]string{"SEL", "ID", "REFERENCE", "CUSTOMER", "AMOUNT", "STATUS", "CREATED"}, rows))
	b.WriteString(footer(len(records), total))
	return b.String()
}

func footer(shown, total int) string {
	return mutedStyle.Render(fmt.Sprintf("showing %s of %s", humanize.Comma(int64(shown)), humanize.Comma(int64(total)))) + "\n"
}

// amount formats cents as a decimal with thousands separators.
func amount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}
