// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// TransactionKind tells which list a transaction belongs to.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindExpense || k == TransactionKindIncome
}

// Transaction is an expense or an income. Both share the same shape; the kind is given
// by the list holding the record.
type Transaction struct {
	ID             string
	Name           string
	Category       string // soft reference to a Category name
	Amount         decimal.Decimal
	Date           string // YYYY-MM-DD, empty when unset
	Recurring      bool
	RecurringStart string // YYYY-MM-DD, empty when unset
	RecurringEnd   string // YYYY-MM-DD, empty when unset
}

// TransactionDraft carries the user-entered fields of a transaction before it gets an ID.
type TransactionDraft struct {
	Name           string
	Category       string
	Amount         decimal.Decimal
	Date           string
	Recurring      bool
	RecurringStart string
	RecurringEnd   string
}

// TransactionPatch is an id-addressed partial update. Nil fields are left untouched.
type TransactionPatch struct {
	Name           *string
	Category       *string
	Amount         *decimal.Decimal
	Date           *string
	Recurring      *bool
	RecurringStart *string
	RecurringEnd   *string
}

// NewTransaction creates a Transaction with a fresh ID from a draft, normalizing its fields.
func NewTransaction(draft TransactionDraft) Transaction {
	t := Transaction{
		ID:             uuid.NewString(),
		Name:           draft.Name,
		Category:       draft.Category,
		Amount:         draft.Amount,
		Date:           draft.Date,
		Recurring:      draft.Recurring,
		RecurringStart: draft.RecurringStart,
		RecurringEnd:   draft.RecurringEnd,
	}
	t.Normalize()
	return t
}

// Normalize coerces malformed user input to safe defaults: negative amounts become zero
// and unparseable dates are cleared.
func (t *Transaction) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Category = strings.TrimSpace(t.Category)
	t.Amount = NormalizeAmount(t.Amount)
	t.Date = normalizeDate(t.Date)
	t.RecurringStart = normalizeDate(t.RecurringStart)
	t.RecurringEnd = normalizeDate(t.RecurringEnd)
}

// Apply merges a patch into the transaction. The ID never changes.
func (t *Transaction) Apply(patch TransactionPatch) {
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Recurring != nil {
		t.Recurring = *patch.Recurring
	}
	if patch.RecurringStart != nil {
		t.RecurringStart = *patch.RecurringStart
	}
	if patch.RecurringEnd != nil {
		t.RecurringEnd = *patch.RecurringEnd
	}
	t.Normalize()
}

// DateKey returns the parsed date of the transaction.
func (t Transaction) DateKey() (valueobject.DateKey, bool) {
	if t.Date == "" {
		return valueobject.DateKey{}, false
	}
	return valueobject.ParseDateKey(t.Date)
}

// MonthKey returns the YYYY-MM key of the transaction date, or "" when it has none.
func (t Transaction) MonthKey() string {
	return valueobject.MonthKey(t.Date)
}

// RecurrenceDay is the day-of-month a recurring transaction falls on: the day of
// RecurringStart when set, else the day of Date, else 1.
func (t Transaction) RecurrenceDay() int {
	for _, s := range []string{t.RecurringStart, t.Date} {
		if d, ok := valueobject.ParseDateKey(s); ok && d.Day > 0 {
			return d.Day
		}
	}
	return 1
}

// NormalizeAmount clamps an amount to be non-negative.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// ParseAmount converts loosely typed user input (number, numeric string, nil) to an amount.
// Anything that is not a number yields zero.
func ParseAmount(v interface{}) decimal.Decimal {
	var amount decimal.Decimal
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		amount = decimal.NewFromFloat(x)
	case int:
		amount = decimal.NewFromInt(int64(x))
	case int64:
		amount = decimal.NewFromInt(x)
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero
		}
		amount = d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(x, ",", ".")))
		if err != nil {
			return decimal.Zero
		}
		amount = d
	case decimal.Decimal:
		amount = x
	default:
		return decimal.Zero
	}
	return NormalizeAmount(amount)
}

func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	d, ok := valueobject.ParseDateKey(s)
	if !ok {
		return ""
	}
	return d.String()
}
