// Package profile contains use cases for the user's salary, balance and active state.
package profile

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// GetStateInput represents the input for reading the active state.
type GetStateInput struct {
	UserID string
}

// GetStateOutput represents the active month state and the agenda cursor.
type GetStateOutput struct {
	State      entity.FinancialState
	View       entity.AgendaView
	Categories []entity.Category
}

// GetStateUseCase reads the user's active state.
type GetStateUseCase struct {
	sessions *ledger.Sessions
}

// NewGetStateUseCase creates a new GetStateUseCase instance.
func NewGetStateUseCase(sessions *ledger.Sessions) *GetStateUseCase {
	return &GetStateUseCase{
		sessions: sessions,
	}
}

// Execute returns the active state.
func (uc *GetStateUseCase) Execute(ctx context.Context, input GetStateInput) (*GetStateOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{
		State:      store.ActiveState(),
		View:       store.AgendaView(),
		Categories: store.Categories(),
	}, nil
}
