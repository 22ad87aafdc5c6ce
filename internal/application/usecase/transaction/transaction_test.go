package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/persistence"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestSessions() *ledger.Sessions {
	clock := fixedClock{now: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)}
	return ledger.NewSessions(persistence.NewMemoryStateStore(), clock, "compta:v1")
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want entity.TransactionKind
		ok   bool
	}{
		{"expenses", entity.TransactionKindExpense, true},
		{"expense", entity.TransactionKindExpense, true},
		{" Incomes ", entity.TransactionKindIncome, true},
		{"income", entity.TransactionKindIncome, true},
		{"savings", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if !tt.ok {
				var ledgerErr *domainerror.LedgerError
				require.True(t, errors.As(err, &ledgerErr))
				assert.Equal(t, domainerror.ErrCodeInvalidTransactionKind, ledgerErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions()
	uc := NewAddTransactionUseCase(sessions)

	t.Run("current month goes to the active list", func(t *testing.T) {
		out, err := uc.Execute(ctx, AddTransactionInput{
			UserID: "user-1",
			Kind:   entity.TransactionKindExpense,
			Draft:  entity.TransactionDraft{Name: "Groceries", Amount: decimal.NewFromInt(42), Date: "2024-03-10"},
		})
		require.NoError(t, err)
		assert.False(t, out.Archived)
		assert.Equal(t, "2024-03", out.MonthKey)
		assert.NotEmpty(t, out.Transaction.ID)
	})

	t.Run("other month goes to the archive", func(t *testing.T) {
		out, err := uc.Execute(ctx, AddTransactionInput{
			UserID: "user-1",
			Kind:   entity.TransactionKindIncome,
			Draft:  entity.TransactionDraft{Name: "Refund", Amount: decimal.NewFromInt(15), Date: "2024-06-01"},
		})
		require.NoError(t, err)
		assert.True(t, out.Archived)
		assert.Equal(t, "2024-06", out.MonthKey)

		store, err := sessions.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, store.ActiveState().Incomes, 0)
		assert.Len(t, store.ArchiveBucket("2024-06").Incomes, 1)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := uc.Execute(ctx, AddTransactionInput{UserID: "user-1", Kind: "transfer"})
		assert.ErrorIs(t, err, domainerror.ErrInvalidTransactionKind)
	})
}

func TestUpdateAndRemoveTransactionUseCases(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions()

	added, err := NewAddTransactionUseCase(sessions).Execute(ctx, AddTransactionInput{
		UserID: "user-1",
		Kind:   entity.TransactionKindExpense,
		Draft:  entity.TransactionDraft{Name: "Gym", Amount: decimal.NewFromInt(30), Recurring: true},
	})
	require.NoError(t, err)
	id := added.Transaction.ID

	update := NewUpdateTransactionUseCase(sessions)
	remove := NewRemoveTransactionUseCase(sessions)

	t.Run("update merges the patch", func(t *testing.T) {
		amount := decimal.NewFromInt(35)
		out, err := update.Execute(ctx, UpdateTransactionInput{
			UserID:        "user-1",
			Kind:          entity.TransactionKindExpense,
			TransactionID: id,
			Patch:         entity.TransactionPatch{Amount: &amount},
		})
		require.NoError(t, err)
		assert.Equal(t, "35", out.Transaction.Amount.String())
		assert.Equal(t, "Gym", out.Transaction.Name)
	})

	t.Run("update with the wrong kind is not found", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateTransactionInput{
			UserID:        "user-1",
			Kind:          entity.TransactionKindIncome,
			TransactionID: id,
		})
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, remove.Execute(ctx, RemoveTransactionInput{
			UserID:        "user-1",
			Kind:          entity.TransactionKindExpense,
			TransactionID: id,
		}))

		err := remove.Execute(ctx, RemoveTransactionInput{
			UserID:        "user-1",
			Kind:          entity.TransactionKindExpense,
			TransactionID: id,
		})
		var ledgerErr *domainerror.LedgerError
		require.True(t, errors.As(err, &ledgerErr))
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, ledgerErr.Code)
	})
}
