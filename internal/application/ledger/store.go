package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

type recordSet uint8

const (
	recordState recordSet = 1 << iota
	recordArchive
	recordCategories
)

// data is everything a Store persists, plus the transient selected date.
type data struct {
	state       entity.FinancialState
	archive     entity.Archive
	registry    *Registry
	activeYear  int
	activeMonth int
	selected    string
}

func (d *data) clone() *data {
	return &data{
		state:       d.state.Clone(),
		archive:     d.archive.Clone(),
		registry:    d.registry.Clone(),
		activeYear:  d.activeYear,
		activeMonth: d.activeMonth,
		selected:    d.selected,
	}
}

func (d *data) activeKey() string {
	return valueobject.MonthKeyOf(d.activeYear, d.activeMonth)
}

// Store owns the financial state of one user namespace.
// Every mutation is applied to a copy, persisted with a single atomic Save, and only
// then made visible. Operations on one Store are serialized.
type Store struct {
	mu     sync.Mutex
	states adapter.StateStore
	clock  adapter.Clock
	prefix string
	userID string
	keys   Keys
	d      *data
}

// NewStore creates a Store holding empty defaults for the public namespace.
// Call Reload to read a user's persisted records.
func NewStore(states adapter.StateStore, clock adapter.Clock, prefix string) *Store {
	s := &Store{
		states: states,
		clock:  clock,
		prefix: prefix,
		userID: PublicUserID,
		keys:   KeysFor(prefix, PublicUserID),
	}
	s.d = s.defaults()
	return s
}

func (s *Store) defaults() *data {
	now := s.clock.Now()
	return &data{
		state:       emptyState(),
		archive:     entity.Archive{},
		registry:    DefaultRegistry(),
		activeYear:  now.Year(),
		activeMonth: int(now.Month()),
	}
}

// UserID returns the namespace the store currently holds.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Reload replaces the in-memory state with the three persisted records of userID.
// Missing records start from defaults. Records in a previous schema are migrated and
// written back. On a read failure the store keeps its current state.
func (s *Store) Reload(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = PublicUserID
	}
	keys := KeysFor(s.prefix, userID)
	logger := slog.With("user_id", userID)

	next := s.defaults()
	var migrated recordSet

	raw, found, err := s.states.Load(ctx, keys.State)
	if err != nil {
		return domainerror.NewPersistenceError("failed to load state", err)
	}
	if found {
		saved, ok := decodeState(raw)
		if !ok {
			logger.Warn("Discarding unreadable state record", "key", keys.State)
		}
		next.state = saved.State
		if y, m, ok := valueobject.ParseMonthKey(saved.ActiveMonth); ok {
			next.activeYear, next.activeMonth = y, m
		}
	}

	raw, found, err = s.states.Load(ctx, keys.Archive)
	if err != nil {
		return domainerror.NewPersistenceError("failed to load archive", err)
	}
	if found {
		archive, legacy := decodeArchive(raw)
		next.archive = archive
		if legacy {
			migrated |= recordArchive
		}
	}

	raw, found, err = s.states.Load(ctx, keys.Categories)
	if err != nil {
		return domainerror.NewPersistenceError("failed to load categories", err)
	}
	if found {
		registry, legacy, ok := decodeCategories(raw)
		switch {
		case !ok:
			logger.Warn("Discarding unreadable categories record", "key", keys.Categories)
		case legacy:
			next.registry = registry
			migrated |= recordCategories
		default:
			next.registry = registry
		}
	}

	if migrated != 0 {
		if err := s.persist(ctx, keys, next, migrated); err != nil {
			return err
		}
		logger.Info("Migrated stored records to current schema",
			"archive", migrated&recordArchive != 0,
			"categories", migrated&recordCategories != 0,
		)
	}

	s.userID = userID
	s.keys = keys
	s.d = next
	return nil
}

// ActiveState returns a copy of the active month state.
func (s *Store) ActiveState() entity.FinancialState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.state.Clone()
}

// AgendaView returns the calendar cursor.
func (s *Store) AgendaView() entity.AgendaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.AgendaView{Year: s.d.activeYear, Month: s.d.activeMonth, SelectedDate: s.d.selected}
}

// ArchiveBucket returns a copy of the archived transactions of monthKey.
// The active month is never archived, so its bucket is empty.
func (s *Store) ArchiveBucket(monthKey string) entity.MonthBucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.archive.Bucket(monthKey)
}

// ArchiveMonths returns the month-keys that hold archived transactions, ascending.
func (s *Store) ArchiveMonths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.d.archive))
	for _, k := range s.d.archive.Keys() {
		if s.d.archive[k] != nil && s.d.archive[k].Len() > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// MonthTransactions returns what the agenda shows for year/month. For the active month
// these are the active lists. For any other month they are the recurring active
// transactions followed by that month's archive bucket.
func (s *Store) MonthTransactions(year, month int) (expenses, incomes []entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.d.state.Clone()
	monthKey := valueobject.MonthKeyOf(year, month)
	if monthKey == s.d.activeKey() {
		return state.Expenses, state.Incomes
	}

	bucket := s.d.archive.Bucket(monthKey)
	return append(recurringOnly(state.Expenses), bucket.Expenses...),
		append(recurringOnly(state.Incomes), bucket.Incomes...)
}

func recurringOnly(list []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(list))
	for _, tx := range list {
		if tx.Recurring {
			out = append(out, tx)
		}
	}
	return out
}

// Categories returns the registry in order.
func (s *Store) Categories() []entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.registry.List()
}

// AddTransaction creates a transaction from draft. An undated draft takes the selected
// date. A non-recurring transaction dated outside the active month goes straight to its
// archive bucket; everything else is prepended to the active list.
func (s *Store) AddTransaction(ctx context.Context, kind entity.TransactionKind, draft entity.TransactionDraft) (entity.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	if strings.TrimSpace(draft.Date) == "" && next.selected != "" {
		draft.Date = next.selected
	}
	tx := entity.NewTransaction(draft)

	if monthKey := tx.MonthKey(); !tx.Recurring && monthKey != "" && monthKey != next.activeKey() {
		next.archive.Append(monthKey, kind, tx)
		if err := s.commit(ctx, next, recordArchive); err != nil {
			return entity.Transaction{}, false, err
		}
		slog.Debug("Routed transaction to archive",
			"user_id", s.userID, "kind", kind, "month_key", monthKey, "id", tx.ID)
		return tx, true, nil
	}

	list := next.state.List(kind)
	next.state.SetList(kind, append([]entity.Transaction{tx}, list...))
	if err := s.commit(ctx, next, recordState); err != nil {
		return entity.Transaction{}, false, err
	}
	return tx, false, nil
}

// UpdateTransaction merges patch into the active transaction with the given id.
// found is false, and nothing is written, when no active transaction matches.
func (s *Store) UpdateTransaction(ctx context.Context, kind entity.TransactionKind, id string, patch entity.TransactionPatch) (entity.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	list := next.state.List(kind)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Apply(patch)
		if err := s.commit(ctx, next, recordState); err != nil {
			return entity.Transaction{}, true, err
		}
		return list[i], true, nil
	}
	return entity.Transaction{}, false, nil
}

// RemoveTransaction deletes the active transaction with the given id.
func (s *Store) RemoveTransaction(ctx context.Context, kind entity.TransactionKind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	list := next.state.List(kind)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		kept := append(list[:i:i], list[i+1:]...)
		next.state.SetList(kind, kept)
		return true, s.commit(ctx, next, recordState)
	}
	return false, nil
}

// ChangeActiveMonth moves the agenda to year/month. Non-recurring transactions of the
// outgoing month are appended to its archive bucket, the incoming month's bucket is
// loaded into the active lists, and the selected date is cleared. Both records are
// written in one Save; no intermediate state is ever visible.
// Months outside 1-12 roll over into adjacent years; a year that ends up outside
// 0-9999 cannot be keyed and is rejected.
func (s *Store) ChangeActiveMonth(ctx context.Context, year, month int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), int(first.Month())
	if !valueobject.ValidYearMonth(year, month) {
		return domainerror.NewLedgerError(domainerror.ErrCodeInvalidMonth,
			"year must be between 0 and 9999", domainerror.ErrInvalidMonth)
	}

	next := s.d.clone()
	outgoing := next.activeKey()
	incoming := valueobject.MonthKeyOf(year, month)
	next.selected = ""
	if incoming == outgoing {
		s.d = next
		return nil
	}

	var archived, loaded int
	bucket := next.archive.Take(incoming)
	for _, kind := range []entity.TransactionKind{entity.TransactionKindExpense, entity.TransactionKindIncome} {
		kept, outgoingTxs := partition(next.state.List(kind), outgoing)
		next.archive.Append(outgoing, kind, outgoingTxs...)

		incomingTxs := bucket.List(kind)
		next.state.SetList(kind, append(kept, incomingTxs...))

		archived += len(outgoingTxs)
		loaded += len(incomingTxs)
	}
	next.activeYear, next.activeMonth = year, month

	if err := s.commit(ctx, next, recordState|recordArchive); err != nil {
		return err
	}
	slog.Debug("Changed active month",
		"user_id", s.userID, "from", outgoing, "to", incoming, "archived", archived, "loaded", loaded)
	return nil
}

// partition splits an active list into the transactions that stay active (recurring,
// undated, or dated in another month) and the non-recurring ones of monthKey.
func partition(list []entity.Transaction, monthKey string) (kept, archived []entity.Transaction) {
	kept = make([]entity.Transaction, 0, len(list))
	for _, tx := range list {
		if !tx.Recurring && tx.MonthKey() == monthKey {
			archived = append(archived, tx)
			continue
		}
		kept = append(kept, tx)
	}
	return kept, archived
}

// SelectDate sets the agenda's selected day. An empty or malformed date clears it.
// The selection is transient and never persisted.
func (s *Store) SelectDate(dateKey string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.d.selected = ""
	if d, ok := valueobject.ParseDateKey(strings.TrimSpace(dateKey)); ok {
		s.d.selected = d.String()
	}
	return s.d.selected
}

// SetSalary stores the monthly salary. Negative amounts become zero.
func (s *Store) SetSalary(ctx context.Context, salary decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	next.state.Salary = entity.NormalizeAmount(salary)
	return next.state.Salary, s.commit(ctx, next, recordState)
}

// SetInitialBalance stores the balance the projection starts from. Negative amounts become zero.
func (s *Store) SetInitialBalance(ctx context.Context, balance decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	next.state.InitialBalance = entity.NormalizeAmount(balance)
	return next.state.InitialBalance, s.commit(ctx, next, recordState)
}

// AddCategory registers a category. Empty and duplicate names are ignored.
func (s *Store) AddCategory(ctx context.Context, category entity.Category) (entity.Category, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	c, added := next.registry.Add(category)
	if !added {
		return entity.Category{}, false, nil
	}
	if err := s.commit(ctx, next, recordCategories); err != nil {
		return entity.Category{}, false, err
	}
	return c, true, nil
}

// RenameCategory renames a category and relabels every transaction, active and archived,
// that referenced the old name. Transactions are matched on both the registry's spelling
// and the caller's, which differ only in case.
func (s *Store) RenameCategory(ctx context.Context, oldName, newName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.d.clone()
	from, to, ok := next.registry.Rename(oldName, newName)
	if !ok {
		return false, nil
	}
	relabel(next, to, from, strings.TrimSpace(oldName))
	return true, s.commit(ctx, next, recordState|recordArchive|recordCategories)
}

// DeleteCategory removes a category. With a replacement, every transaction that used it
// is relabeled, including when the name is no longer registered, so orphans left by an
// earlier delete can still be reassigned. Without one the transactions keep the orphaned
// name. deleted reports whether the registry held the name; relabeled counts the
// transactions that moved.
func (s *Store) DeleteCategory(ctx context.Context, name, replacement string) (deleted bool, relabeled int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	next := s.d.clone()
	stored, deleted := next.registry.Delete(name)

	var records recordSet
	if deleted {
		records |= recordCategories
	}
	if replacement = strings.TrimSpace(replacement); replacement != "" {
		if relabeled = relabel(next, replacement, stored, name); relabeled > 0 {
			records |= recordState | recordArchive
		}
	}
	if records == 0 {
		return false, 0, nil
	}
	if err := s.commit(ctx, next, records); err != nil {
		return deleted, 0, err
	}
	return deleted, relabeled, nil
}

// relabel moves every transaction whose category is one of from to to and returns how
// many changed.
func relabel(d *data, to string, from ...string) int {
	matches := func(category string) bool {
		for _, f := range from {
			if f != "" && f != to && category == f {
				return true
			}
		}
		return false
	}

	n := 0
	swap := func(list []entity.Transaction) {
		for i := range list {
			if matches(list[i].Category) {
				list[i].Category = to
				n++
			}
		}
	}
	swap(d.state.Expenses)
	swap(d.state.Incomes)
	for _, b := range d.archive {
		if b == nil {
			continue
		}
		swap(b.Expenses)
		swap(b.Incomes)
	}
	return n
}

// commit persists the given records of next and swaps it in on success.
func (s *Store) commit(ctx context.Context, next *data, records recordSet) error {
	if err := s.persist(ctx, s.keys, next, records); err != nil {
		slog.Error("Failed to persist ledger state", "user_id", s.userID, "error", err)
		return err
	}
	s.d = next
	return nil
}

func (s *Store) persist(ctx context.Context, keys Keys, d *data, records recordSet) error {
	var batch []adapter.Record
	if records&recordState != 0 {
		value, err := encodeState(d.state, d.activeKey())
		if err != nil {
			return domainerror.NewPersistenceError("failed to encode state", err)
		}
		batch = append(batch, adapter.Record{Key: keys.State, Value: value})
	}
	if records&recordArchive != 0 {
		value, err := encodeArchive(d.archive)
		if err != nil {
			return domainerror.NewPersistenceError("failed to encode archive", err)
		}
		batch = append(batch, adapter.Record{Key: keys.Archive, Value: value})
	}
	if records&recordCategories != 0 {
		value, err := encodeCategories(d.registry)
		if err != nil {
			return domainerror.NewPersistenceError("failed to encode categories", err)
		}
		batch = append(batch, adapter.Record{Key: keys.Categories, Value: value})
	}
	if err := s.states.Save(ctx, batch...); err != nil {
		return domainerror.NewPersistenceError("failed to save state", err)
	}
	return nil
}
