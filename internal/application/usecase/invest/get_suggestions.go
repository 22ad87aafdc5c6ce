package invest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
)

// GetSuggestionsInput represents the input for investment suggestions.
type GetSuggestionsInput struct {
	UserID string
	Risk   string
}

// GetSuggestionsOutput represents the allocation and advice for this month's savings.
type GetSuggestionsOutput struct {
	Savings    decimal.Decimal
	Allocation Allocation
	Advice     []Advice
}

// GetSuggestionsUseCase derives investment suggestions from the monthly totals.
type GetSuggestionsUseCase struct {
	sessions *ledger.Sessions
	clock    adapter.Clock
}

// NewGetSuggestionsUseCase creates a new GetSuggestionsUseCase instance.
func NewGetSuggestionsUseCase(sessions *ledger.Sessions, clock adapter.Clock) *GetSuggestionsUseCase {
	return &GetSuggestionsUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute computes this month's savings and the matching suggestions.
func (uc *GetSuggestionsUseCase) Execute(ctx context.Context, input GetSuggestionsInput) (*GetSuggestionsOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	state := store.ActiveState()
	totals := dashboard.ComputeMonthlyTotals(state.Salary, state.Expenses, state.Incomes, dashboard.TotalsOptions{
		InitialBalance: state.InitialBalance,
		Now:            uc.clock.Now(),
	})

	return &GetSuggestionsOutput{
		Savings:    totals.Savings,
		Allocation: SuggestAllocation(totals.Savings, ParseRiskProfile(input.Risk)),
		Advice:     AnalyzeInvestments(totals.Savings, state.Expenses),
	}, nil
}
