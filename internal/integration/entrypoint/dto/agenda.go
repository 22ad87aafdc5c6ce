package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/agenda"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// ChangeMonthRequest represents the request body for moving the active month.
type ChangeMonthRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

// SelectDateRequest represents the request body for selecting a day. A null date clears the selection.
type SelectDateRequest struct {
	Date *string `json:"date"`
}

// CalendarCellResponse is one cell of the month grid. Blank cells have no date.
type CalendarCellResponse struct {
	Date         string          `json:"date,omitempty"`
	Day          int             `json:"day,omitempty"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Count        int             `json:"count"`
}

// DayResponse lists the transactions of one day.
type DayResponse struct {
	Date     string                `json:"date"`
	Incomes  []TransactionResponse `json:"incomes"`
	Expenses []TransactionResponse `json:"expenses"`
}

// AgendaResponse represents the agenda of one month.
type AgendaResponse struct {
	Year     int                    `json:"year"`
	Month    int                    `json:"month"`
	Label    string                 `json:"label"`
	View     AgendaViewResponse     `json:"view"`
	Cells    []CalendarCellResponse `json:"cells"`
	Selected *DayResponse           `json:"selected,omitempty"`
}

// ArchiveResponse represents one archived month.
type ArchiveResponse struct {
	MonthKey string                `json:"month_key"`
	Expenses []TransactionResponse `json:"expenses"`
	Incomes  []TransactionResponse `json:"incomes"`
	Months   []string              `json:"months"`
}

// ToAgendaResponse converts the output of the get-agenda use case.
func ToAgendaResponse(out *agenda.GetAgendaOutput) AgendaResponse {
	cells := make([]CalendarCellResponse, len(out.Calendar.Cells))
	for i, c := range out.Calendar.Cells {
		cells[i] = CalendarCellResponse{
			Date:         c.Date,
			Day:          c.Day,
			IncomeTotal:  c.IncomeTotal,
			ExpenseTotal: c.ExpenseTotal,
			Count:        c.Count,
		}
	}

	resp := AgendaResponse{
		Year:  out.Calendar.Year,
		Month: out.Calendar.Month,
		Label: out.Calendar.Label,
		View:  ToAgendaViewResponse(out.View),
		Cells: cells,
	}
	shown := valueobject.MonthKeyOf(out.Calendar.Year, out.Calendar.Month)
	if out.View.SelectedDate != "" && strings.HasPrefix(out.View.SelectedDate, shown) {
		resp.Selected = &DayResponse{
			Date:     out.View.SelectedDate,
			Incomes:  ToTransactionResponses(out.SelectedIncomes),
			Expenses: ToTransactionResponses(out.SelectedExpenses),
		}
	}
	return resp
}

// ToArchiveResponse converts the output of the get-archive use case.
func ToArchiveResponse(out *agenda.GetArchiveOutput) ArchiveResponse {
	months := out.Months
	if months == nil {
		months = []string{}
	}
	return ArchiveResponse{
		MonthKey: out.MonthKey,
		Expenses: ToTransactionResponses(out.Bucket.Expenses),
		Incomes:  ToTransactionResponses(out.Bucket.Incomes),
		Months:   months,
	}
}
