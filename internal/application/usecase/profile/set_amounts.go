package profile

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/ledger"
)

// SetAmountInput represents the input for the salary and initial balance setters.
type SetAmountInput struct {
	UserID string
	Amount decimal.Decimal
}

// SetAmountOutput returns the stored amount after normalization.
type SetAmountOutput struct {
	Amount decimal.Decimal
}

// SetSalaryUseCase stores the monthly salary.
type SetSalaryUseCase struct {
	sessions *ledger.Sessions
}

// NewSetSalaryUseCase creates a new SetSalaryUseCase instance.
func NewSetSalaryUseCase(sessions *ledger.Sessions) *SetSalaryUseCase {
	return &SetSalaryUseCase{
		sessions: sessions,
	}
}

// Execute stores the salary. Negative amounts are stored as zero.
func (uc *SetSalaryUseCase) Execute(ctx context.Context, input SetAmountInput) (*SetAmountOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	amount, err := store.SetSalary(ctx, input.Amount)
	if err != nil {
		return nil, err
	}
	return &SetAmountOutput{Amount: amount}, nil
}

// SetInitialBalanceUseCase stores the current account balance the projection starts from.
type SetInitialBalanceUseCase struct {
	sessions *ledger.Sessions
}

// NewSetInitialBalanceUseCase creates a new SetInitialBalanceUseCase instance.
func NewSetInitialBalanceUseCase(sessions *ledger.Sessions) *SetInitialBalanceUseCase {
	return &SetInitialBalanceUseCase{
		sessions: sessions,
	}
}

// Execute stores the initial balance. Negative amounts are stored as zero.
func (uc *SetInitialBalanceUseCase) Execute(ctx context.Context, input SetAmountInput) (*SetAmountOutput, error) {
	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	amount, err := store.SetInitialBalance(ctx, input.Amount)
	if err != nil {
		return nil, err
	}
	return &SetAmountOutput{Amount: amount}, nil
}
