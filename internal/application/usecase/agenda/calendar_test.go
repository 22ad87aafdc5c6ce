package agenda

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestBuildCalendar(t *testing.T) {
	expenses := []entity.Transaction{
		{Name: "Coffee", Amount: decimal.RequireFromString("3.50"), Date: "2024-03-02"},
		{Name: "Lunch", Amount: decimal.RequireFromString("12"), Date: "2024-03-02"},
	}
	incomes := []entity.Transaction{
		{Name: "Salary bonus", Amount: decimal.NewFromInt(100), Date: "2024-03-02"},
	}

	cal := BuildCalendar(BuildAgenda(expenses, incomes, 2024, 3))

	if cal.Label != "March 2024" {
		t.Errorf("Label = %q, want March 2024", cal.Label)
	}
	// March 1st 2024 is a Friday.
	if len(cal.Cells) != 5+31 {
		t.Fatalf("len(Cells) = %d, want 36", len(cal.Cells))
	}
	for i := 0; i < 5; i++ {
		if !cal.Cells[i].IsBlank() {
			t.Errorf("cell %d should be blank: %+v", i, cal.Cells[i])
		}
	}

	first := cal.Cells[5]
	if first.Day != 1 || first.Date != "2024-03-01" || first.Count != 0 {
		t.Errorf("first day cell = %+v", first)
	}

	second := cal.Cells[6]
	if second.Count != 3 {
		t.Errorf("Count = %d, want 3", second.Count)
	}
	if !second.ExpenseTotal.Equal(decimal.RequireFromString("15.5")) {
		t.Errorf("ExpenseTotal = %s, want 15.5", second.ExpenseTotal)
	}
	if !second.IncomeTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("IncomeTotal = %s, want 100", second.IncomeTotal)
	}

	if last := cal.Cells[len(cal.Cells)-1]; last.Date != "2024-03-31" {
		t.Errorf("last cell = %+v", last)
	}
}

func TestBuildCalendar_MonthStartingOnSunday(t *testing.T) {
	cal := BuildCalendar(BuildAgenda(nil, nil, 2024, 9))
	if len(cal.Cells) != 30 || cal.Cells[0].Day != 1 {
		t.Errorf("September 2024 should start without blanks, got %d cells starting with %+v", len(cal.Cells), cal.Cells[0])
	}
}
