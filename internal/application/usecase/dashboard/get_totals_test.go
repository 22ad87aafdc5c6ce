package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestGetTotalsAndProjectionUseCases(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: march(5)}
	sessions := ledger.NewSessions(persistence.NewMemoryStateStore(), clock, "compta:v1")

	store, err := sessions.Get(ctx, "user-1")
	require.NoError(t, err)
	_, err = store.SetSalary(ctx, dec("3000"))
	require.NoError(t, err)
	_, err = store.SetInitialBalance(ctx, dec("500"))
	require.NoError(t, err)
	_, _, err = store.AddTransaction(ctx, entity.TransactionKindExpense, entity.TransactionDraft{
		Name: "Rent", Amount: decimal.NewFromInt(1000), Recurring: true, RecurringStart: "2024-01-01",
	})
	require.NoError(t, err)
	_, _, err = store.AddTransaction(ctx, entity.TransactionKindIncome, entity.TransactionDraft{
		Name: "Bonus", Amount: decimal.NewFromInt(200), Date: "2024-03-20",
	})
	require.NoError(t, err)

	totals, err := NewGetTotalsUseCase(sessions, clock).Execute(ctx, GetTotalsInput{UserID: "user-1"})
	require.NoError(t, err)
	require.Equal(t, "2024-03-05", totals.Today)
	assertAmount(t, "ProjectedRemaining", totals.Totals.ProjectedRemaining, "700")
	assertAmount(t, "IncomeThisMonth", totals.Totals.IncomeThisMonth, "3200")

	projection, err := NewGetProjectionUseCase(sessions, clock).Execute(ctx, GetProjectionInput{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, projection.Breakdown.IncomeItems, 1)
	require.Equal(t, "Bonus", projection.Breakdown.IncomeItems[0].Name)
	require.Empty(t, projection.Breakdown.ExpenseItems)
	assertAmount(t, "InitialBalance", projection.InitialBalance, "500")
}
