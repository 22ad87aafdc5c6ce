// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// FinancialState is the editable state of the active month.
type FinancialState struct {
	Salary         decimal.Decimal
	InitialBalance decimal.Decimal
	Expenses       []Transaction
	Incomes        []Transaction
}

// List returns the active list for the given kind.
func (s *FinancialState) List(kind TransactionKind) []Transaction {
	if kind == TransactionKindIncome {
		return s.Incomes
	}
	return s.Expenses
}

// SetList replaces the active list for the given kind.
func (s *FinancialState) SetList(kind TransactionKind, list []Transaction) {
	if list == nil {
		list = []Transaction{}
	}
	if kind == TransactionKindIncome {
		s.Incomes = list
		return
	}
	s.Expenses = list
}

// Clone returns a deep copy that shares no slices with s.
func (s FinancialState) Clone() FinancialState {
	return FinancialState{
		Salary:         s.Salary,
		InitialBalance: s.InitialBalance,
		Expenses:       cloneTransactions(s.Expenses),
		Incomes:        cloneTransactions(s.Incomes),
	}
}

// MonthBucket holds the non-recurring transactions of one archived month.
type MonthBucket struct {
	Expenses []Transaction
	Incomes  []Transaction
}

// List returns the bucket list for the given kind.
func (b *MonthBucket) List(kind TransactionKind) []Transaction {
	if kind == TransactionKindIncome {
		return b.Incomes
	}
	return b.Expenses
}

// Len returns the number of transactions in the bucket.
func (b *MonthBucket) Len() int {
	return len(b.Expenses) + len(b.Incomes)
}

// Archive maps a month-key (YYYY-MM) to the transactions of a non-active month.
type Archive map[string]*MonthBucket

// Bucket returns a copy of the bucket for monthKey, empty when absent.
func (a Archive) Bucket(monthKey string) MonthBucket {
	b, ok := a[monthKey]
	if !ok || b == nil {
		return MonthBucket{Expenses: []Transaction{}, Incomes: []Transaction{}}
	}
	return MonthBucket{
		Expenses: cloneTransactions(b.Expenses),
		Incomes:  cloneTransactions(b.Incomes),
	}
}

// Append adds transactions at the end of the bucket for monthKey, creating it if needed.
func (a Archive) Append(monthKey string, kind TransactionKind, txs ...Transaction) {
	if len(txs) == 0 {
		return
	}
	b, ok := a[monthKey]
	if !ok || b == nil {
		b = &MonthBucket{}
		a[monthKey] = b
	}
	if kind == TransactionKindIncome {
		b.Incomes = append(b.Incomes, txs...)
		return
	}
	b.Expenses = append(b.Expenses, txs...)
}

// Take removes the bucket for monthKey and returns its content.
func (a Archive) Take(monthKey string) MonthBucket {
	b := a.Bucket(monthKey)
	delete(a, monthKey)
	return b
}

// Keys returns the month-keys of the archive in ascending order.
func (a Archive) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of archived transactions across all buckets.
func (a Archive) Count() int {
	n := 0
	for _, b := range a {
		if b != nil {
			n += b.Len()
		}
	}
	return n
}

// Clone returns a deep copy of the archive.
func (a Archive) Clone() Archive {
	out := make(Archive, len(a))
	for k, b := range a {
		if b == nil {
			continue
		}
		out[k] = &MonthBucket{
			Expenses: cloneTransactions(b.Expenses),
			Incomes:  cloneTransactions(b.Incomes),
		}
	}
	return out
}

// AgendaView is the calendar cursor: the active month and the selected day, if any.
type AgendaView struct {
	Year         int
	Month        int // 1-12
	SelectedDate string
}

// MonthKey returns the YYYY-MM key of the viewed month.
func (v AgendaView) MonthKey() string {
	return valueobject.MonthKeyOf(v.Year, v.Month)
}

func cloneTransactions(in []Transaction) []Transaction {
	out := make([]Transaction, len(in))
	copy(out, in)
	return out
}
