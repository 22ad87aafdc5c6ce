package category

import (
	"context"
	"strings"
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

func categoryNames(cats []entity.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Name)
	}
	return out
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions()
	uc := NewCreateCategoryUseCase(sessions)

	t.Run("creates with defaults", func(t *testing.T) {
		out, err := uc.Execute(ctx, CreateCategoryInput{UserID: "user-1", Name: "  Pets "})
		require.NoError(t, err)
		assert.True(t, out.Created)
		assert.Equal(t, "Pets", out.Category.Name)
		assert.Equal(t, entity.DefaultCategoryIcon, out.Category.Icon)
		assert.NotEmpty(t, out.Category.Color)
	})

	t.Run("duplicate returns the existing entry", func(t *testing.T) {
		out, err := uc.Execute(ctx, CreateCategoryInput{UserID: "user-1", Name: "RENT", Color: "#000000"})
		require.NoError(t, err)
		assert.False(t, out.Created)
		assert.Equal(t, "Rent", out.Category.Name)
	})

	tests := []struct {
		name  string
		input CreateCategoryInput
		want  error
	}{
		{"empty name", CreateCategoryInput{Name: "   "}, domainerror.ErrMissingCategoryFields},
		{"long name", CreateCategoryInput{Name: strings.Repeat("x", MaxCategoryNameLength+1)}, domainerror.ErrCategoryNameTooLong},
		{"bad color", CreateCategoryInput{Name: "Books", Color: "blue"}, domainerror.ErrInvalidColorFormat},
		{"long icon", CreateCategoryInput{Name: "Books", Icon: strings.Repeat("i", MaxIconLength+1)}, domainerror.ErrCategoryIconTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = "user-1"
			_, err := uc.Execute(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRenameCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions()
	store, err := sessions.Get(ctx, "user-1")
	require.NoError(t, err)
	_, _, err = store.AddTransaction(ctx, entity.TransactionKindExpense, entity.TransactionDraft{
		Name: "March rent", Category: "Rent", Amount: decimal.NewFromInt(900), Date: "2024-03-01",
	})
	require.NoError(t, err)
	_, _, err = store.AddTransaction(ctx, entity.TransactionKindExpense, entity.TransactionDraft{
		Name: "May rent", Category: "Rent", Amount: decimal.NewFromInt(900), Date: "2024-05-01",
	})
	require.NoError(t, err)

	uc := NewRenameCategoryUseCase(sessions)
	out, err := uc.Execute(ctx, RenameCategoryInput{UserID: "user-1", OldName: "Rent", NewName: "Housing"})
	require.NoError(t, err)
	assert.True(t, out.Renamed)
	assert.Contains(t, categoryNames(out.Categories), "Housing")
	assert.NotContains(t, categoryNames(out.Categories), "Rent")

	assert.Equal(t, "Housing", store.ActiveState().Expenses[0].Category)
	assert.Equal(t, "Housing", store.ArchiveBucket("2024-05").Expenses[0].Category)

	same, err := uc.Execute(ctx, RenameCategoryInput{UserID: "user-1", OldName: "Housing", NewName: "Housing"})
	require.NoError(t, err)
	assert.False(t, same.Renamed)

	_, err = uc.Execute(ctx, RenameCategoryInput{UserID: "user-1", OldName: "Housing", NewName: ""})
	assert.ErrorIs(t, err, domainerror.ErrMissingCategoryFields)
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions()
	store, err := sessions.Get(ctx, "user-1")
	require.NoError(t, err)
	for _, name := range []string{"Bus", "Metro"} {
		_, _, err = store.AddTransaction(ctx, entity.TransactionKindExpense, entity.TransactionDraft{
			Name: name, Category: "Transport", Amount: decimal.NewFromInt(2), Date: "2024-03-03",
		})
		require.NoError(t, err)
	}

	uc := NewDeleteCategoryUseCase(sessions)
	require.NoError(t, uc.Execute(ctx, DeleteCategoryInput{UserID: "user-1", Name: "Transport", Replacement: "Other"}))

	for _, tx := range store.ActiveState().Expenses {
		assert.Equal(t, "Other", tx.Category)
	}
	assert.NotContains(t, categoryNames(store.Categories()), "Transport")

	err = uc.Execute(ctx, DeleteCategoryInput{UserID: "user-1", Name: "Transport"})
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)

	_, _, err = store.AddTransaction(ctx, entity.TransactionKindExpense, entity.TransactionDraft{
		Name: "Taxi", Category: "Transport", Amount: decimal.NewFromInt(15), Date: "2024-03-04",
	})
	require.NoError(t, err)
	require.NoError(t, uc.Execute(ctx, DeleteCategoryInput{UserID: "user-1", Name: "Transport", Replacement: "Other"}))
	assert.Equal(t, "Other", store.ActiveState().Expenses[0].Category)
}

func TestListCategoriesUseCase(t *testing.T) {
	out, err := NewListCategoriesUseCase(newTestSessions()).Execute(context.Background(), ListCategoriesInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategoryNames, categoryNames(out.Categories))
}
