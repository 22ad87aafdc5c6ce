// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetTotalsInput represents the input for getting the monthly totals.
type GetTotalsInput struct {
	UserID        string
	IncludeFuture bool
}

// GetTotalsOutput represents the output of getting the monthly totals.
type GetTotalsOutput struct {
	Totals entity.MonthlyTotals
	// Today is the date the totals were computed for.
	Today string
}

// GetTotalsUseCase computes the dashboard figures from the user's active state.
type GetTotalsUseCase struct {
	sessions *ledger.Sessions
	clock    adapter.Clock
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(sessions *ledger.Sessions, clock adapter.Clock) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute computes the monthly totals.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	state := store.ActiveState()
	totals := ComputeMonthlyTotals(state.Salary, state.Expenses, state.Incomes, TotalsOptions{
		IncludeFuture:  input.IncludeFuture,
		InitialBalance: state.InitialBalance,
		Now:            now,
	})

	return &GetTotalsOutput{
		Totals: totals,
		Today:  valueobject.DateKeyFromTime(now).String(),
	}, nil
}
