package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// AgendaViewResponse is the calendar cursor.
type AgendaViewResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	MonthKey     string `json:"month_key"`
	SelectedDate string `json:"selected_date,omitempty"`
}

// StateResponse represents the full state of the active month.
type StateResponse struct {
	Salary         decimal.Decimal       `json:"salary"`
	InitialBalance decimal.Decimal       `json:"initial_balance"`
	Expenses       []TransactionResponse `json:"expenses"`
	Incomes        []TransactionResponse `json:"incomes"`
	View           AgendaViewResponse    `json:"view"`
	Categories     []CategoryResponse    `json:"categories"`
}

// AmountResponse echoes the stored amount after normalization.
type AmountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToAgendaViewResponse converts the agenda cursor.
func ToAgendaViewResponse(v entity.AgendaView) AgendaViewResponse {
	return AgendaViewResponse{
		Year:         v.Year,
		Month:        v.Month,
		MonthKey:     v.MonthKey(),
		SelectedDate: v.SelectedDate,
	}
}

// ToStateResponse converts the output of the get-state use case.
func ToStateResponse(out *profile.GetStateOutput) StateResponse {
	return StateResponse{
		Salary:         out.State.Salary,
		InitialBalance: out.State.InitialBalance,
		Expenses:       ToTransactionResponses(out.State.Expenses),
		Incomes:        ToTransactionResponses(out.State.Incomes),
		View:           ToAgendaViewResponse(out.View),
		Categories:     ToCategoryResponses(out.Categories),
	}
}
