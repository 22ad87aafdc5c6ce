package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetProjectionInput represents the input for the remaining-month projection.
type GetProjectionInput struct {
	UserID string
}

// GetProjectionOutput represents the itemized remaining-month projection.
type GetProjectionOutput struct {
	Breakdown      entity.ProjectionBreakdown
	InitialBalance decimal.Decimal
	Today          string
}

// GetProjectionUseCase itemizes what is still expected before the end of the month.
type GetProjectionUseCase struct {
	sessions *ledger.Sessions
	clock    adapter.Clock
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(sessions *ledger.Sessions, clock adapter.Clock) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute builds the projection breakdown.
func (uc *GetProjectionUseCase) Execute(ctx context.Context, input GetProjectionInput) (*GetProjectionOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	state := store.ActiveState()
	breakdown := ProjectRemaining(state.Salary, state.Expenses, state.Incomes, state.InitialBalance, now)

	return &GetProjectionOutput{
		Breakdown:      breakdown,
		InitialBalance: entity.NormalizeAmount(state.InitialBalance),
		Today:          valueobject.DateKeyFromTime(now).String(),
	}, nil
}
