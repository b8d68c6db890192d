package runner

import (
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PlainTable renders a table with aligned columns and no colour.
func PlainTable(t *domain.Table) string {
	if t == nil {
		return ""
	}
	cell := lipgloss.NewStyle().PaddingRight(2)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(t.Headers...).
		Rows(t.Rows...).
		String()
}
