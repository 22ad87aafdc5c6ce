// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// ParseKind maps "expense(s)" and "income(s)" to a transaction kind.
func ParseKind(s string) (entity.TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "expenses":
		return entity.TransactionKindExpense, nil
	case "income", "incomes":
		return entity.TransactionKindIncome, nil
	}
	return "", domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidTransactionKind,
		"kind must be 'expenses' or 'incomes'",
		domainerror.ErrInvalidTransactionKind,
	)
}

func validateKind(kind entity.TransactionKind) error {
	if kind.IsValid() {
		return nil
	}
	_, err := ParseKind(string(kind))
	return err
}
