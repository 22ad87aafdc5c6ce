package agenda

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// GetAgendaInput represents the input for reading the agenda.
// A zero Year or Month falls back to the active month.
type GetAgendaInput struct {
	UserID string
	Year   int
	Month  int
}

// GetAgendaOutput represents the agenda of one month.
type GetAgendaOutput struct {
	View     entity.AgendaView
	Agenda   Agenda
	Calendar Calendar
	// Selected lists the transactions of the selected day when it lies in the shown month.
	SelectedIncomes  []entity.Transaction
	SelectedExpenses []entity.Transaction
}

// GetAgendaUseCase builds the per-day view of a month.
type GetAgendaUseCase struct {
	sessions *ledger.Sessions
}

// NewGetAgendaUseCase creates a new GetAgendaUseCase instance.
func NewGetAgendaUseCase(sessions *ledger.Sessions) *GetAgendaUseCase {
	return &GetAgendaUseCase{
		sessions: sessions,
	}
}

// Execute builds the agenda. Reading a month other than the active one does not move the cursor.
func (uc *GetAgendaUseCase) Execute(ctx context.Context, input GetAgendaInput) (*GetAgendaOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	view := store.AgendaView()
	year, month := view.Year, view.Month
	if input.Year != 0 {
		year = input.Year
	}
	if input.Month != 0 {
		month = input.Month
	}
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	expenses, incomes := store.MonthTransactions(year, month)
	agenda := BuildAgenda(expenses, incomes, year, month)

	out := &GetAgendaOutput{
		View:     view,
		Agenda:   agenda,
		Calendar: BuildCalendar(agenda),
	}
	if view.SelectedDate != "" {
		out.SelectedIncomes, out.SelectedExpenses = agenda.Day(view.SelectedDate)
	}
	return out, nil
}
