// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	UserID        string
	Kind          entity.TransactionKind
	TransactionID string
	Patch         entity.TransactionPatch
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
// Only transactions of the active month are editable.
type UpdateTransactionUseCase struct {
	sessions *ledger.Sessions
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(sessions *ledger.Sessions) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		sessions: sessions,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	store, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	tx, found, err := store.UpdateTransaction(ctx, input.Kind, input.TransactionID, input.Patch)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found in the active month",
			domainerror.ErrTransactionNotFound,
		)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
