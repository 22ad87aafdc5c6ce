package agenda

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// CalendarCell is one slot of the month grid. Leading slots before the 1st have Day 0.
type CalendarCell struct {
	Date         string
	Day          int
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Count        int
}

// IsBlank reports whether the cell only pads the first week.
func (c CalendarCell) IsBlank() bool {
	return c.Day == 0
}

// Calendar is a month grid whose weeks start on Sunday.
type Calendar struct {
	Year  int
	Month int
	Label string
	Cells []CalendarCell
}

// BuildCalendar lays out the agenda's month as a Sunday-first grid with per-day totals.
func BuildCalendar(a Agenda) Calendar {
	first := time.Date(a.Year, time.Month(a.Month), 1, 0, 0, 0, 0, time.UTC)
	blanks := int(first.Weekday())
	days := valueobject.DaysInMonth(a.Year, a.Month)

	cells := make([]CalendarCell, blanks, blanks+days)
	for day := 1; day <= days; day++ {
		key := valueobject.FormatDateKey(a.Year, a.Month, day)
		incomes, expenses := a.Day(key)
		cells = append(cells, CalendarCell{
			Date:         key,
			Day:          day,
			IncomeTotal:  sum(incomes),
			ExpenseTotal: sum(expenses),
			Count:        len(incomes) + len(expenses),
		})
	}

	return Calendar{
		Year:  a.Year,
		Month: a.Month,
		Label: MonthLabel(a.Year, a.Month),
		Cells: cells,
	}
}

// MonthLabel renders a month as "March 2024".
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month), year)
}

func sum(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(entity.NormalizeAmount(tx.Amount))
	}
	return total
}
