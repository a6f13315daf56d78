package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/ledger"
	"github.com/centsible/centsible/internal/model"
)

const chartWidth = 24

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("centsible"))
	b.WriteString("\n")
	b.WriteString(m.periodHeader())
	b.WriteString("\n\n")

	visible := m.visible()
	b.WriteString(m.summaryLine(visible))
	b.WriteString("\n\n")
	b.WriteString(m.chart())
	b.WriteString("\n")
	b.WriteString(m.transactionList(visible))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))

	return b.String()
}

func (m Model) periodHeader() string {
	var label, unitName string
	switch m.unit {
	case ledger.UnitDay:
		unitName = "day"
		label = m.current.Format("Monday, January 2 2006")
	case ledger.UnitWeek:
		unitName = "week"
		label = fmt.Sprintf("Week of %s", m.current.Format("January 2, 2006"))
	case ledger.UnitMonth:
		unitName = "month"
		label = m.current.Format("January 2006")
	default:
		unitName = "year"
		label = m.current.Format("2006")
	}

	header := fmt.Sprintf("‹ %s ›", label)
	if !ledger.CanGoNext(m.unit, m.current, m.now()) {
		header = fmt.Sprintf("‹ %s", label)
	}
	return header + cli.SubtleStyle.Render(fmt.Sprintf("  (%s view)", unitName))
}

func (m Model) summaryLine(visible []model.Transaction) string {
	income := ledger.Sum(visible, model.TypeIncome)
	expense := ledger.Sum(visible, model.TypeExpense)
	net := income - expense

	netStyle := cli.IncomeStyle
	if net < 0 {
		netStyle = cli.ExpenseStyle
	}

	return fmt.Sprintf("Income %s   Expenses %s   Net %s",
		cli.IncomeStyle.Render(fmt.Sprintf("%.2f", income)),
		cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", expense)),
		netStyle.Render(fmt.Sprintf("%+.2f", net)),
	)
}

// chart renders the net-flow series for the browsed period as
// horizontal bars, empty buckets included.
func (m Model) chart() string {
	var points []ledger.Point
	switch m.unit {
	case ledger.UnitWeek:
		points = ledger.DailySeriesForWeek(m.transactions, m.current)
	case ledger.UnitYear:
		points = ledger.MonthlySeries(m.transactions, m.current.Year())
	case ledger.UnitMonth:
		points = ledger.DailySeriesForMonth(m.transactions, m.current)
	default:
		return ""
	}

	var maxAbs float64
	for _, p := range points {
		if abs := absFloat(p.Net); abs > maxAbs {
			maxAbs = abs
		}
	}

	var b strings.Builder
	for _, p := range points {
		bar := ""
		if maxAbs > 0 {
			width := int(absFloat(p.Net) / maxAbs * chartWidth)
			style := cli.IncomeStyle
			if p.Net < 0 {
				style = cli.ExpenseStyle
			}
			bar = style.Render(strings.Repeat("█", width))
		}
		fmt.Fprintf(&b, "%4s %s\n", p.Label, bar)
	}
	return b.String()
}

func (m Model) transactionList(visible []model.Transaction) string {
	if len(visible) == 0 {
		return cli.SubtleStyle.Render("No transactions in this period.")
	}

	var b strings.Builder
	for _, group := range ledger.GroupByDay(visible, m.now()) {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(group.Label))
		b.WriteString("\n")
		for _, txn := range group.Transactions {
			cat := m.lookupCategory(txn.Category, txn.Type)
			fmt.Fprintf(&b, "  %s  %s", cli.CategoryBadge(cat, txn.Category), cli.Amount(txn.Type, txn.Amount))
			if txn.Notes != "" {
				b.WriteString(cli.SubtleStyle.Render("  " + txn.Notes))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// lookupCategory returns nil for dangling references; the badge then
// renders with fallback emoji and gray.
func (m Model) lookupCategory(name string, txnType model.TransactionType) *model.Category {
	if cat, ok := m.catLookup[catKey{name: name, typ: txnType}]; ok {
		return &cat
	}
	return nil
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
