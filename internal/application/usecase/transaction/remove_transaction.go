// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// RemoveTransactionInput represents the input for transaction removal.
type RemoveTransactionInput struct {
	UserID        string
	Kind          entity.TransactionKind
	TransactionID string
}

// RemoveTransactionUseCase handles transaction removal logic.
type RemoveTransactionUseCase struct {
	sessions *ledger.Sessions
}

// NewRemoveTransactionUseCase creates a new RemoveTransactionUseCase instance.
func NewRemoveTransactionUseCase(sessions *ledger.Sessions) *RemoveTransactionUseCase {
	return &RemoveTransactionUseCase{
		sessions: sessions,
	}
}

// Execute removes the transaction from the active month.
func (uc *RemoveTransactionUseCase) Execute(ctx context.Context, input RemoveTransactionInput) error {
	if err := validateKind(input.Kind); err != nil {
		return err
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return err
	}

	removed, err := store.RemoveTransaction(ctx, input.Kind, input.TransactionID)
	if err != nil {
		return err
	}
	if !removed {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found in the active month",
			domainerror.ErrTransactionNotFound,
		)
	}
	return nil
}
