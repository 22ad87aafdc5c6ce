// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// MonthlyTotals holds the derived figures of the dashboard for the current month.
type MonthlyTotals struct {
	IncomeThisMonth    decimal.Decimal
	ExpenseThisMonth   decimal.Decimal
	FutureIncome       decimal.Decimal
	FutureExpense      decimal.Decimal
	IncomeRemaining    decimal.Decimal
	ExpenseRemaining   decimal.Decimal
	ProjectedRemaining decimal.Decimal
	Savings            decimal.Decimal
	AvailableNow       decimal.Decimal
}

// ProjectionReason explains why an item counts towards the rest of the month.
type ProjectionReason string

const (
	ProjectionReasonSalary    ProjectionReason = "salary"
	ProjectionReasonRecurring ProjectionReason = "recurring"
	ProjectionReasonScheduled ProjectionReason = "scheduled"
)

// ProjectionItem is one income or expense still expected before the end of the month.
type ProjectionItem struct {
	TransactionID string
	Name          string
	Category      string
	Amount        decimal.Decimal
	Reason        ProjectionReason
	Day           int
}

// ProjectionBreakdown itemizes the remaining-month projection.
type ProjectionBreakdown struct {
	IncomeItems        []ProjectionItem
	ExpenseItems       []ProjectionItem
	IncomeRemaining    decimal.Decimal
	ExpenseRemaining   decimal.Decimal
	ProjectedRemaining decimal.Decimal
}
