package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kurumalab/carfit/internal/model"
	"github.com/kurumalab/carfit/internal/quote"
)

// FormatMoney renders a currency amount with thousands separators.
func FormatMoney(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if negative {
		return "¥-" + b.String()
	}
	return "¥" + b.String()
}

// RenderSearchTable lays out a search result for the terminal: one line
// per grade with the three derived cost columns and the popularity rank.
func RenderSearchTable(rows []model.SearchRow) string {
	if len(rows) == 0 {
		return WarningStyle.Render("No grades match your category and budget. Try widening your search.")
	}

	headers := []string{"#", "Grade", "Real cost/mo", "Spend/mo", "Resale", "Rank"}
	cells := make([][]string, 0, len(rows))
	for i, row := range rows {
		marker := strconv.Itoa(i + 1)
		if row.Selected {
			marker = SuccessIcon + " " + marker
		}
		cells = append(cells, []string{
			marker,
			row.NameDesc,
			FormatMoney(row.MonthlyRealCost),
			FormatMoney(row.MonthlyTotalCost),
			FormatMoney(row.ResaleValue),
			strconv.Itoa(row.Rank),
		})
	}
	return renderColumns(headers, cells)
}

// RenderLifecycle lays out the comparison view: the spend curve per
// elapsed year and the cost-item breakdown for each chosen grade.
func RenderLifecycle(series []quote.LifecycleSeries) string {
	var sections []string
	for _, s := range series {
		headers := []string{"Year", "Cumulative spend", "Spend/yr"}
		cells := make([][]string, 0, len(s.Points))
		for _, point := range s.Points {
			cells = append(cells, []string{
				strconv.Itoa(point.Year),
				FormatMoney(point.CumulativeSpend),
				FormatMoney(point.AnnualSpend),
			})
		}

		var items strings.Builder
		for _, item := range s.Items {
			fmt.Fprintf(&items, "%s: %s  ", item.Label, FormatMoney(item.Amount))
		}

		sections = append(sections, RenderBox(s.Label,
			lipgloss.JoinVertical(lipgloss.Left,
				renderColumns(headers, cells),
				SubtleStyle.Render(strings.TrimSpace(items.String())),
			)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderColumns renders a padded text table with a styled header row.
func renderColumns(headers []string, cells [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	renderRow := func(row []string, style lipgloss.Style) string {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = style.Width(widths[i] + 2).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	lines := make([]string, 0, len(cells)+1)
	lines = append(lines, renderRow(headers, TableHeaderStyle))
	for _, row := range cells {
		lines = append(lines, renderRow(row, TableCellStyle))
	}
	return strings.Join(lines, "\n")
}
