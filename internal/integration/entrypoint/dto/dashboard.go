package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// TotalsResponse represents the dashboard totals of the active month.
type TotalsResponse struct {
	Today              string          `json:"today"`
	IncomeThisMonth    decimal.Decimal `json:"income_this_month"`
	ExpenseThisMonth   decimal.Decimal `json:"expense_this_month"`
	FutureIncome       decimal.Decimal `json:"future_income"`
	FutureExpense      decimal.Decimal `json:"future_expense"`
	IncomeRemaining    decimal.Decimal `json:"income_remaining"`
	ExpenseRemaining   decimal.Decimal `json:"expense_remaining"`
	ProjectedRemaining decimal.Decimal `json:"projected_remaining"`
	Savings            decimal.Decimal `json:"savings"`
	AvailableNow       decimal.Decimal `json:"available_now"`
}

// ProjectionItemResponse is one expected income or expense.
type ProjectionItemResponse struct {
	TransactionID string          `json:"transaction_id,omitempty"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	Day           int             `json:"day"`
}

// ProjectionResponse represents the remaining-month projection.
type ProjectionResponse struct {
	Today              string                   `json:"today"`
	InitialBalance     decimal.Decimal          `json:"initial_balance"`
	IncomeItems        []ProjectionItemResponse `json:"income_items"`
	ExpenseItems       []ProjectionItemResponse `json:"expense_items"`
	IncomeRemaining    decimal.Decimal          `json:"income_remaining"`
	ExpenseRemaining   decimal.Decimal          `json:"expense_remaining"`
	ProjectedRemaining decimal.Decimal          `json:"projected_remaining"`
}

// ToTotalsResponse converts the output of the get-totals use case.
func ToTotalsResponse(out *dashboard.GetTotalsOutput) TotalsResponse {
	t := out.Totals
	return TotalsResponse{
		Today:              out.Today,
		IncomeThisMonth:    t.IncomeThisMonth,
		ExpenseThisMonth:   t.ExpenseThisMonth,
		FutureIncome:       t.FutureIncome,
		FutureExpense:      t.FutureExpense,
		IncomeRemaining:    t.IncomeRemaining,
		ExpenseRemaining:   t.ExpenseRemaining,
		ProjectedRemaining: t.ProjectedRemaining,
		Savings:            t.Savings,
		AvailableNow:       t.AvailableNow,
	}
}

// ToProjectionResponse converts the output of the get-projection use case.
func ToProjectionResponse(out *dashboard.GetProjectionOutput) ProjectionResponse {
	b := out.Breakdown
	return ProjectionResponse{
		Today:              out.Today,
		InitialBalance:     out.InitialBalance,
		IncomeItems:        toProjectionItems(b.IncomeItems),
		ExpenseItems:       toProjectionItems(b.ExpenseItems),
		IncomeRemaining:    b.IncomeRemaining,
		ExpenseRemaining:   b.ExpenseRemaining,
		ProjectedRemaining: b.ProjectedRemaining,
	}
}

func toProjectionItems(items []entity.ProjectionItem) []ProjectionItemResponse {
	out := make([]ProjectionItemResponse, len(items))
	for i, it := range items {
		out[i] = ProjectionItemResponse{
			TransactionID: it.TransactionID,
			Name:          it.Name,
			Category:      it.Category,
			Amount:        it.Amount,
			Reason:        string(it.Reason),
			Day:           it.Day,
		}
	}
	return out
}
