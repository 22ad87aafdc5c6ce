package agenda

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// SelectDateInput represents the input for selecting an agenda day.
// An empty Date clears the selection.
type SelectDateInput struct {
	UserID string
	Date   string
}

// SelectDateUseCase sets the day new transactions default to.
type SelectDateUseCase struct {
	sessions *ledger.Sessions
}

// NewSelectDateUseCase creates a new SelectDateUseCase instance.
func NewSelectDateUseCase(sessions *ledger.Sessions) *SelectDateUseCase {
	return &SelectDateUseCase{
		sessions: sessions,
	}
}

// Execute selects the day and returns the cursor.
func (uc *SelectDateUseCase) Execute(ctx context.Context, input SelectDateInput) (*entity.AgendaView, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	store.SelectDate(input.Date)
	view := store.AgendaView()
	return &view, nil
}
