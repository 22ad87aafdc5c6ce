package ledger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// Schema versions of the persisted records.
const (
	StateSchemaVersion      = 1
	ArchiveSchemaVersion    = 1
	CategoriesSchemaVersion = 2
)

// PublicUserID namespaces the state of a visitor that is not signed in.
const PublicUserID = "public"

// Keys are the three storage keys of one user namespace.
type Keys struct {
	State      string
	Archive    string
	Categories string
}

// KeysFor returns the storage keys of userID under prefix.
func KeysFor(prefix, userID string) Keys {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = PublicUserID
	}
	base := prefix + ":" + userID
	return Keys{
		State:      base,
		Archive:    base + ":monthly",
		Categories: base + ":categories",
	}
}

// amount decodes numbers, numeric strings and garbage alike; garbage becomes zero.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(a).MarshalJSON()
}

func (a *amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		*a = amount(decimal.Zero)
		return nil
	}
	*a = amount(entity.ParseAmount(raw))
	return nil
}

// looseString accepts strings and numbers; anything else decodes to "".
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = looseString(num.String())
		return nil
	}
	*s = ""
	return nil
}

type transactionRecord struct {
	ID             looseString `json:"id"`
	Name           looseString `json:"name"`
	Category       looseString `json:"category"`
	Amount         amount      `json:"amount"`
	Date           looseString `json:"date,omitempty"`
	Recurring      bool        `json:"recurring"`
	RecurringStart looseString `json:"recurringStart,omitempty"`
	RecurringEnd   looseString `json:"recurringEnd,omitempty"`
}

type stateRecord struct {
	Version        int             `json:"version"`
	Salary         amount          `json:"salary"`
	InitialBalance amount          `json:"initialBalance"`
	ActiveMonth    string          `json:"activeMonth,omitempty"`
	Expenses       json.RawMessage `json:"expenses"`
	Incomes        json.RawMessage `json:"incomes"`
}

type bucketRecord struct {
	Expenses json.RawMessage `json:"expenses"`
	Incomes  json.RawMessage `json:"incomes"`
}

type archiveRecord struct {
	Version int                     `json:"version"`
	Buckets map[string]bucketRecord `json:"buckets"`
}

// legacyArchiveRecord is the unversioned layout keyed by kind first, then month.
type legacyArchiveRecord struct {
	Expenses map[string]json.RawMessage `json:"expenses"`
	Incomes  map[string]json.RawMessage `json:"incomes"`
}

type categoryRecord struct {
	Name  looseString `json:"name"`
	Color looseString `json:"color,omitempty"`
	Icon  looseString `json:"icon,omitempty"`
}

type categoriesRecord struct {
	Version    int              `json:"version"`
	Categories []categoryRecord `json:"categories"`
}

// savedState is the decoded main record.
type savedState struct {
	State       entity.FinancialState
	ActiveMonth string
}

func encodeState(state entity.FinancialState, activeMonth string) ([]byte, error) {
	expenses, err := json.Marshal(toTransactionRecords(state.Expenses))
	if err != nil {
		return nil, err
	}
	incomes, err := json.Marshal(toTransactionRecords(state.Incomes))
	if err != nil {
		return nil, err
	}
	return json.Marshal(stateRecord{
		Version:        StateSchemaVersion,
		Salary:         amount(state.Salary),
		InitialBalance: amount(state.InitialBalance),
		ActiveMonth:    activeMonth,
		Expenses:       expenses,
		Incomes:        incomes,
	})
}

// decodeState reads a main record. Malformed documents and fields fall back to empty values.
func decodeState(data []byte) (savedState, bool) {
	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return savedState{State: emptyState()}, false
	}
	activeMonth := rec.ActiveMonth
	if !isMonthKey(activeMonth) {
		if activeMonth != "" {
			slog.Warn("Ignoring stored active month with invalid key", "month_key", activeMonth)
		}
		activeMonth = ""
	}
	return savedState{
		State: entity.FinancialState{
			Salary:         entity.NormalizeAmount(decimal.Decimal(rec.Salary)),
			InitialBalance: entity.NormalizeAmount(decimal.Decimal(rec.InitialBalance)),
			Expenses:       decodeTransactions(rec.Expenses),
			Incomes:        decodeTransactions(rec.Incomes),
		},
		ActiveMonth: activeMonth,
	}, true
}

func encodeArchive(archive entity.Archive) ([]byte, error) {
	rec := archiveRecord{Version: ArchiveSchemaVersion, Buckets: make(map[string]bucketRecord, len(archive))}
	for _, key := range archive.Keys() {
		bucket := archive.Bucket(key)
		if bucket.Len() == 0 {
			continue
		}
		expenses, err := json.Marshal(toTransactionRecords(bucket.Expenses))
		if err != nil {
			return nil, err
		}
		incomes, err := json.Marshal(toTransactionRecords(bucket.Incomes))
		if err != nil {
			return nil, err
		}
		rec.Buckets[key] = bucketRecord{Expenses: expenses, Incomes: incomes}
	}
	return json.Marshal(rec)
}

// decodeArchive reads an archive record. migrated is true when the document used the
// unversioned layout and should be written back.
func decodeArchive(data []byte) (archive entity.Archive, migrated bool) {
	archive = entity.Archive{}

	var rec archiveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return archive, false
	}
	if rec.Version >= ArchiveSchemaVersion || rec.Buckets != nil {
		for key, bucket := range rec.Buckets {
			if !isMonthKey(key) {
				warnDroppedBucket(key, len(bucket.Expenses)+len(bucket.Incomes))
				continue
			}
			archive.Append(key, entity.TransactionKindExpense, decodeTransactions(bucket.Expenses)...)
			archive.Append(key, entity.TransactionKindIncome, decodeTransactions(bucket.Incomes)...)
		}
		return archive, false
	}

	var legacy legacyArchiveRecord
	if err := json.Unmarshal(data, &legacy); err != nil {
		return archive, false
	}
	for key, list := range legacy.Expenses {
		if !isMonthKey(key) {
			warnDroppedBucket(key, len(list))
			continue
		}
		archive.Append(key, entity.TransactionKindExpense, decodeTransactions(list)...)
	}
	for key, list := range legacy.Incomes {
		if !isMonthKey(key) {
			warnDroppedBucket(key, len(list))
			continue
		}
		archive.Append(key, entity.TransactionKindIncome, decodeTransactions(list)...)
	}
	return archive, true
}

// warnDroppedBucket reports a bucket whose key cannot be addressed. size is the byte
// length of its raw transaction arrays.
func warnDroppedBucket(key string, size int) {
	slog.Warn("Dropping archive bucket with invalid month key", "month_key", key, "bytes", size)
}

func encodeCategories(registry *Registry) ([]byte, error) {
	rec := categoriesRecord{Version: CategoriesSchemaVersion, Categories: []categoryRecord{}}
	for _, c := range registry.List() {
		rec.Categories = append(rec.Categories, categoryRecord{
			Name:  looseString(c.Name),
			Color: looseString(c.Color),
			Icon:  looseString(c.Icon),
		})
	}
	return json.Marshal(rec)
}

// decodeCategories reads a categories record. Version 1 was a bare array mixing plain
// names and {name,color,icon} objects; it is converted and reported as migrated.
func decodeCategories(data []byte) (registry *Registry, migrated bool, ok bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, false, false
		}
		categories := make([]entity.Category, 0, len(items))
		for _, item := range items {
			var name string
			if err := json.Unmarshal(item, &name); err == nil {
				categories = append(categories, entity.Category{Name: name})
				continue
			}
			var c categoryRecord
			if err := json.Unmarshal(item, &c); err == nil {
				categories = append(categories, toCategory(c))
			}
		}
		return NewRegistry(categories), true, true
	}

	var rec categoriesRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil || rec.Categories == nil {
		return nil, false, false
	}
	categories := make([]entity.Category, 0, len(rec.Categories))
	for _, c := range rec.Categories {
		categories = append(categories, toCategory(c))
	}
	return NewRegistry(categories), false, true
}

func decodeTransactions(raw json.RawMessage) []entity.Transaction {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []entity.Transaction{}
	}
	out := make([]entity.Transaction, 0, len(items))
	for i, item := range items {
		var r transactionRecord
		if json.Unmarshal(item, &r) != nil {
			continue
		}
		tx := entity.Transaction{
			ID:             string(r.ID),
			Name:           string(r.Name),
			Category:       string(r.Category),
			Amount:         decimal.Decimal(r.Amount),
			Date:           string(r.Date),
			Recurring:      r.Recurring,
			RecurringStart: string(r.RecurringStart),
			RecurringEnd:   string(r.RecurringEnd),
		}
		if tx.ID == "" {
			tx.ID = "legacy-" + strconv.Itoa(i)
		}
		tx.Normalize()
		out = append(out, tx)
	}
	return out
}

func toTransactionRecords(txs []entity.Transaction) []transactionRecord {
	out := make([]transactionRecord, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionRecord{
			ID:             looseString(tx.ID),
			Name:           looseString(tx.Name),
			Category:       looseString(tx.Category),
			Amount:         amount(tx.Amount),
			Date:           looseString(tx.Date),
			Recurring:      tx.Recurring,
			RecurringStart: looseString(tx.RecurringStart),
			RecurringEnd:   looseString(tx.RecurringEnd),
		})
	}
	return out
}

func toCategory(c categoryRecord) entity.Category {
	return entity.Category{Name: string(c.Name), Color: string(c.Color), Icon: string(c.Icon)}
}

func emptyState() entity.FinancialState {
	return entity.FinancialState{
		Salary:         decimal.Zero,
		InitialBalance: decimal.Zero,
		Expenses:       []entity.Transaction{},
		Incomes:        []entity.Transaction{},
	}
}

func isMonthKey(key string) bool {
	_, _, ok := valueobject.ParseMonthKey(key)
	return ok
}
