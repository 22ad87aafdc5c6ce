package agenda

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// ChangeMonthInput represents the input for moving the agenda to another month.
type ChangeMonthInput struct {
	UserID string
	Year   int
	Month  int
}

// ChangeMonthUseCase moves the active month, archiving the outgoing one.
type ChangeMonthUseCase struct {
	sessions *ledger.Sessions
}

// NewChangeMonthUseCase creates a new ChangeMonthUseCase instance.
func NewChangeMonthUseCase(sessions *ledger.Sessions) *ChangeMonthUseCase {
	return &ChangeMonthUseCase{
		sessions: sessions,
	}
}

// Execute changes the active month and returns the new cursor.
func (uc *ChangeMonthUseCase) Execute(ctx context.Context, input ChangeMonthInput) (*entity.AgendaView, error) {
	if err := validateMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := store.ChangeActiveMonth(ctx, input.Year, input.Month); err != nil {
		slog.Warn("Failed to change active month",
			"user_id", store.UserID(), "year", input.Year, "month", input.Month, "error", err)
		return nil, err
	}

	view := store.AgendaView()
	return &view, nil
}
