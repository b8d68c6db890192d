package tui

import (
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#818cf8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c084fc")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	idStyle     = cellStyle.Foreground(lipgloss.Color("#f472b6")).Align(lipgloss.Right)
)

// Table renders a rounded, coloured table. The first column holds selection numbers.
func Table(t *domain.Table) string {
	if t == nil {
		return ""
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return idStyle
			default:
				return cellStyle
			}
		}).
		Headers(t.Headers...).
		Rows(t.Rows...).
		String()
}
