package commands

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"moneysaving/internal/core"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// newTable renders rows under headers; columns listed in numeric are right-aligned.
func newTable(headers []string, rows [][]string, numeric ...int) string {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}

func transactionTable(txs []core.Transaction) string {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			strconv.FormatInt(tx.ID, 10),
			core.FormatDate(tx.Date),
			tx.Title,
			core.FormatAmount(tx.Signed()),
			tx.Source,
			tx.Purpose,
		})
	}
	return newTable([]string{"ID", "Date", "Title", "Amount", "Source", "Purpose"}, rows, 0, 3)
}

func totalsRow(label string, income, expense, balance float64) []string {
	return []string{label, core.FormatAmount(income), core.FormatAmount(expense), core.FormatAmount(balance)}
}
