// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// SalaryDay is the day of the month the salary is assumed to be paid.
const SalaryDay = 1

// TotalsOptions parameterizes ComputeMonthlyTotals.
type TotalsOptions struct {
	// IncludeFuture subtracts the net future outflow from savings.
	IncludeFuture  bool
	InitialBalance decimal.Decimal
	// Now decides what "this month" and "today" mean. It is read in its own location.
	Now time.Time
}

// ComputeMonthlyTotals derives the dashboard figures of the month containing opts.Now.
// It is a pure function of its arguments.
func ComputeMonthlyTotals(salary decimal.Decimal, expenses, incomes []entity.Transaction, opts TotalsOptions) entity.MonthlyTotals {
	today := valueobject.DateKeyFromTime(opts.Now)
	salary = entity.NormalizeAmount(salary)
	balance := entity.NormalizeAmount(opts.InitialBalance)

	incomeThisMonth := salary.Add(sumThisMonth(incomes, today))
	expenseThisMonth := sumThisMonth(expenses, today)
	futureIncome := sumFuture(incomes, today)
	futureExpense := sumFuture(expenses, today)

	remaining := ProjectRemaining(salary, expenses, incomes, balance, opts.Now)

	savings := incomeThisMonth.Sub(expenseThisMonth)
	if opts.IncludeFuture {
		if net := futureExpense.Sub(futureIncome); net.IsPositive() {
			savings = savings.Sub(net)
		}
	}

	return entity.MonthlyTotals{
		IncomeThisMonth:    incomeThisMonth,
		ExpenseThisMonth:   expenseThisMonth,
		FutureIncome:       futureIncome,
		FutureExpense:      futureExpense,
		IncomeRemaining:    remaining.IncomeRemaining,
		ExpenseRemaining:   remaining.ExpenseRemaining,
		ProjectedRemaining: remaining.ProjectedRemaining,
		Savings:            savings,
		AvailableNow:       balance.Add(incomeThisMonth).Sub(expenseThisMonth),
	}
}

// ProjectRemaining itemizes what is still expected from today to the end of the month:
// recurring items whose day is today or later, non-recurring items dated in this month
// from today on, and the salary when today is the salary day.
func ProjectRemaining(salary decimal.Decimal, expenses, incomes []entity.Transaction, initialBalance decimal.Decimal, now time.Time) entity.ProjectionBreakdown {
	today := valueobject.DateKeyFromTime(now)

	incomeItems := remainingItems(incomes, today)
	if salary = entity.NormalizeAmount(salary); today.Day == SalaryDay && salary.IsPositive() {
		incomeItems = append([]entity.ProjectionItem{{
			Name:   "Salary",
			Amount: salary,
			Reason: entity.ProjectionReasonSalary,
			Day:    SalaryDay,
		}}, incomeItems...)
	}
	expenseItems := remainingItems(expenses, today)

	incomeRemaining := sumItems(incomeItems)
	expenseRemaining := sumItems(expenseItems)

	return entity.ProjectionBreakdown{
		IncomeItems:        incomeItems,
		ExpenseItems:       expenseItems,
		IncomeRemaining:    incomeRemaining,
		ExpenseRemaining:   expenseRemaining,
		ProjectedRemaining: entity.NormalizeAmount(initialBalance).Add(incomeRemaining).Sub(expenseRemaining),
	}
}

func remainingItems(txs []entity.Transaction, today valueobject.DateKey) []entity.ProjectionItem {
	items := make([]entity.ProjectionItem, 0)
	for _, tx := range txs {
		var day int
		var reason entity.ProjectionReason
		if tx.Recurring {
			day = valueobject.ClampDay(today.Year, today.Month, tx.RecurrenceDay())
			reason = entity.ProjectionReasonRecurring
		} else {
			d, ok := tx.DateKey()
			if !ok || !d.SameMonth(today) {
				continue
			}
			day = d.Day
			reason = entity.ProjectionReasonScheduled
		}
		if day < today.Day {
			continue
		}
		items = append(items, entity.ProjectionItem{
			TransactionID: tx.ID,
			Name:          tx.Name,
			Category:      tx.Category,
			Amount:        entity.NormalizeAmount(tx.Amount),
			Reason:        reason,
			Day:           day,
		})
	}
	return items
}

// sumThisMonth adds recurring transactions and the non-recurring ones dated in today's month.
func sumThisMonth(txs []entity.Transaction, today valueobject.DateKey) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Recurring {
			total = total.Add(entity.NormalizeAmount(tx.Amount))
			continue
		}
		if d, ok := tx.DateKey(); ok && d.SameMonth(today) {
			total = total.Add(entity.NormalizeAmount(tx.Amount))
		}
	}
	return total
}

// sumFuture adds the non-recurring transactions dated in a later month than today.
func sumFuture(txs []entity.Transaction, today valueobject.DateKey) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Recurring {
			continue
		}
		if d, ok := tx.DateKey(); ok && d.After(today) && !d.SameMonth(today) {
			total = total.Add(entity.NormalizeAmount(tx.Amount))
		}
	}
	return total
}

func sumItems(items []entity.ProjectionItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
