package agenda

import (
	"context"
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

func newTestSessions(t *testing.T) (*ledger.Sessions, *ledger.Store) {
	t.Helper()
	clock := fixedClock{now: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)}
	sessions := ledger.NewSessions(persistence.NewMemoryStateStore(), clock, "compta:v1")
	store, err := sessions.Get(context.Background(), "user-1")
	require.NoError(t, err)
	return sessions, store
}

func addExpense(t *testing.T, store *ledger.Store, draft entity.TransactionDraft) {
	t.Helper()
	_, _, err := store.AddTransaction(context.Background(), entity.TransactionKindExpense, draft)
	require.NoError(t, err)
}

func TestGetAgendaUseCase(t *testing.T) {
	ctx := context.Background()
	sessions, store := newTestSessions(t)
	addExpense(t, store, entity.TransactionDraft{Name: "Rent", Amount: decimal.NewFromInt(900), Recurring: true, RecurringStart: "2024-01-31"})
	addExpense(t, store, entity.TransactionDraft{Name: "Coffee", Amount: decimal.NewFromInt(3), Date: "2024-03-02"})
	addExpense(t, store, entity.TransactionDraft{Name: "Hotel", Amount: decimal.NewFromInt(250), Date: "2024-04-18"})

	uc := NewGetAgendaUseCase(sessions)

	t.Run("active month", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetAgendaInput{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Agenda.Month)
		assert.Len(t, out.Agenda.ExpensesByDate["2024-03-31"], 1)
		assert.Len(t, out.Agenda.ExpensesByDate["2024-03-02"], 1)
		assert.Equal(t, "March 2024", out.Calendar.Label)
	})

	t.Run("archived month is readable without moving", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetAgendaInput{UserID: "user-1", Year: 2024, Month: 4})
		require.NoError(t, err)
		assert.Len(t, out.Agenda.ExpensesByDate["2024-04-30"], 1)
		assert.Len(t, out.Agenda.ExpensesByDate["2024-04-18"], 1)
		assert.Equal(t, "2024-03", out.View.MonthKey())
	})

	t.Run("selected day", func(t *testing.T) {
		_, err := NewSelectDateUseCase(sessions).Execute(ctx, SelectDateInput{UserID: "user-1", Date: "2024-03-02"})
		require.NoError(t, err)

		out, err := uc.Execute(ctx, GetAgendaInput{UserID: "user-1"})
		require.NoError(t, err)
		require.Len(t, out.SelectedExpenses, 1)
		assert.Equal(t, "Coffee", out.SelectedExpenses[0].Name)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetAgendaInput{UserID: "user-1", Year: 2024, Month: 13})
		assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
	})

	t.Run("year past 9999", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetAgendaInput{UserID: "user-1", Year: 10000, Month: 1})
		assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
	})
}

func TestChangeMonthUseCase(t *testing.T) {
	ctx := context.Background()
	sessions, store := newTestSessions(t)
	addExpense(t, store, entity.TransactionDraft{Name: "Coffee", Amount: decimal.NewFromInt(3), Date: "2024-03-02"})
	store.SelectDate("2024-03-02")

	uc := NewChangeMonthUseCase(sessions)

	view, err := uc.Execute(ctx, ChangeMonthInput{UserID: "user-1", Year: 2024, Month: 4})
	require.NoError(t, err)
	assert.Equal(t, "2024-04", view.MonthKey())
	assert.Empty(t, view.SelectedDate)
	assert.Empty(t, store.ActiveState().Expenses)
	assert.Len(t, store.ArchiveBucket("2024-03").Expenses, 1)

	_, err = uc.Execute(ctx, ChangeMonthInput{UserID: "user-1", Year: 2024, Month: 0})
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
	assert.Equal(t, "2024-04", store.AgendaView().MonthKey())

	_, err = uc.Execute(ctx, ChangeMonthInput{UserID: "user-1", Year: 10000, Month: 1})
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
	assert.Equal(t, "2024-04", store.AgendaView().MonthKey())
}

func TestSelectDateUseCase(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newTestSessions(t)
	uc := NewSelectDateUseCase(sessions)

	view, err := uc.Execute(ctx, SelectDateInput{UserID: "user-1", Date: "2024-03-09"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", view.SelectedDate)

	view, err = uc.Execute(ctx, SelectDateInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Empty(t, view.SelectedDate)
}

func TestGetArchiveUseCase(t *testing.T) {
	ctx := context.Background()
	sessions, store := newTestSessions(t)
	addExpense(t, store, entity.TransactionDraft{Name: "Hotel", Amount: decimal.NewFromInt(250), Date: "2024-04-18"})

	uc := NewGetArchiveUseCase(sessions)

	out, err := uc.Execute(ctx, GetArchiveInput{UserID: "user-1", MonthKey: "2024-04"})
	require.NoError(t, err)
	assert.Len(t, out.Bucket.Expenses, 1)
	assert.Equal(t, []string{"2024-04"}, out.Months)

	empty, err := uc.Execute(ctx, GetArchiveInput{UserID: "user-1", MonthKey: "2023-01"})
	require.NoError(t, err)
	assert.Empty(t, empty.Bucket.Expenses)
	assert.Empty(t, empty.Bucket.Incomes)

	for _, key := range []string{"2024-4", "2024-13", "april"} {
		_, err := uc.Execute(ctx, GetArchiveInput{UserID: "user-1", MonthKey: key})
		assert.ErrorIs(t, err, domainerror.ErrInvalidMonthKey, key)
	}
}
