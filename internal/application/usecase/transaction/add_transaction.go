// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// AddTransactionInput represents the input for adding a transaction.
type AddTransactionInput struct {
	UserID string
	Kind   entity.TransactionKind
	Draft  entity.TransactionDraft
}

// AddTransactionOutput represents the output of adding a transaction.
type AddTransactionOutput struct {
	Transaction entity.Transaction
	// Archived is true when the transaction was filed under another month.
	Archived bool
	MonthKey string
}

// AddTransactionUseCase handles adding expenses and incomes.
type AddTransactionUseCase struct {
	sessions *ledger.Sessions
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(sessions *ledger.Sessions) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		sessions: sessions,
	}
}

// Execute adds the transaction to the user's ledger.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	tx, archived, err := store.AddTransaction(ctx, input.Kind, input.Draft)
	if err != nil {
		return nil, err
	}

	monthKey := store.AgendaView().MonthKey()
	if archived {
		monthKey = tx.MonthKey()
	}
	return &AddTransactionOutput{
		Transaction: tx,
		Archived:    archived,
		MonthKey:    monthKey,
	}, nil
}
