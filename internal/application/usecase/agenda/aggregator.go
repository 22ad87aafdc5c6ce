// Package agenda contains the calendar use cases.
package agenda

import (
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// Agenda groups the transactions of one month by date-key.
type Agenda struct {
	Year           int
	Month          int // 1-12
	ExpensesByDate map[string][]entity.Transaction
	IncomesByDate  map[string][]entity.Transaction
}

// BuildAgenda places every transaction on a day of year/month.
// Recurring transactions land on their recurrence day, clamped to the length of the
// month. Non-recurring transactions appear on their own date only when it falls in
// year/month; undated ones are left out. Each day keeps the order of the source lists.
func BuildAgenda(expenses, incomes []entity.Transaction, year, month int) Agenda {
	return Agenda{
		Year:           year,
		Month:          month,
		ExpensesByDate: groupByDate(expenses, year, month),
		IncomesByDate:  groupByDate(incomes, year, month),
	}
}

// Day returns the incomes and expenses placed on dateKey.
func (a Agenda) Day(dateKey string) (incomes, expenses []entity.Transaction) {
	return a.IncomesByDate[dateKey], a.ExpensesByDate[dateKey]
}

func groupByDate(txs []entity.Transaction, year, month int) map[string][]entity.Transaction {
	byDate := make(map[string][]entity.Transaction)
	for _, tx := range txs {
		key, ok := placement(tx, year, month)
		if !ok {
			continue
		}
		byDate[key] = append(byDate[key], tx)
	}
	return byDate
}

func placement(tx entity.Transaction, year, month int) (string, bool) {
	if tx.Recurring {
		day := valueobject.ClampDay(year, month, tx.RecurrenceDay())
		return valueobject.FormatDateKey(year, month, day), true
	}
	d, ok := tx.DateKey()
	if !ok || d.Year != year || d.Month != month {
		return "", false
	}
	return d.String(), true
}
