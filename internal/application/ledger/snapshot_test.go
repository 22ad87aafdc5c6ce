package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestKeysFor(t *testing.T) {
	keys := KeysFor("compta:v1", "abc")
	assert.Equal(t, "compta:v1:abc", keys.State)
	assert.Equal(t, "compta:v1:abc:monthly", keys.Archive)
	assert.Equal(t, "compta:v1:abc:categories", keys.Categories)

	assert.Equal(t, "compta:v1:public", KeysFor("compta:v1", "").State)
}

func TestDecodeStateTolerance(t *testing.T) {
	raw := `{
		"salary": "3000",
		"initialBalance": -50,
		"activeMonth": "2024-13",
		"expenses": [
			{"id": 17, "name": "Rent", "category": "Rent", "amount": "1000", "recurring": true, "recurringStart": "2024-01-01"},
			{"id": "b", "name": "Coffee", "amount": "abc", "date": "2024-03-02T22:00:00.000Z"},
			42
		],
		"incomes": {"not": "an array"}
	}`

	saved, ok := decodeState([]byte(raw))
	require.True(t, ok)
	assert.Equal(t, "3000", saved.State.Salary.String())
	assert.True(t, saved.State.InitialBalance.IsZero())
	assert.Empty(t, saved.ActiveMonth)
	assert.Empty(t, saved.State.Incomes)

	require.Len(t, saved.State.Expenses, 2)
	rent := saved.State.Expenses[0]
	assert.Equal(t, "17", rent.ID)
	assert.True(t, rent.Recurring)
	assert.Equal(t, "1000", rent.Amount.String())

	coffee := saved.State.Expenses[1]
	assert.True(t, coffee.Amount.IsZero())
	assert.Equal(t, "2024-03-02", coffee.Date)
}

func TestDecodeStateGarbage(t *testing.T) {
	saved, ok := decodeState([]byte("{not json"))
	assert.False(t, ok)
	assert.NotNil(t, saved.State.Expenses)
	assert.NotNil(t, saved.State.Incomes)
}

func TestArchiveRoundTrip(t *testing.T) {
	archive := entity.Archive{}
	archive.Append("2024-02", entity.TransactionKindExpense, entity.Transaction{ID: "a", Name: "Bus", Date: "2024-02-03"})
	archive.Append("2024-05", entity.TransactionKindIncome, entity.Transaction{ID: "b", Name: "Gift", Date: "2024-05-09"})

	data, err := encodeArchive(archive)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, ArchiveSchemaVersion, doc["version"])

	decoded, migrated := decodeArchive(data)
	assert.False(t, migrated)
	assert.Equal(t, []string{"2024-02", "2024-05"}, decoded.Keys())
	assert.Equal(t, "a", decoded.Bucket("2024-02").Expenses[0].ID)
	assert.Equal(t, "b", decoded.Bucket("2024-05").Incomes[0].ID)
}

func TestDecodeLegacyArchive(t *testing.T) {
	raw := `{
		"expenses": {"2024-02": [{"id": "a", "name": "Bus", "amount": 2, "date": "2024-02-03"}], "garbage": [{"id": "x"}]},
		"incomes": {"2024-05": [{"id": "b", "name": "Gift", "amount": 20, "date": "2024-05-09"}]}
	}`

	archive, migrated := decodeArchive([]byte(raw))
	assert.True(t, migrated)
	assert.Equal(t, []string{"2024-02", "2024-05"}, archive.Keys())
	assert.Equal(t, 2, archive.Count())
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestDecodeArchiveInvalidKeys(t *testing.T) {
	logs := captureLogs(t)
	raw := `{"version":1,"buckets":{
		"2024-02": {"expenses": [{"id": "a", "name": "Bus", "date": "2024-02-03"}], "incomes": []},
		"2024-13": {"expenses": [{"id": "x", "name": "Ghost", "date": "2024-13-05"}], "incomes": []},
		"10000-01": {"expenses": [], "incomes": [{"id": "y"}]}
	}}`

	archive, migrated := decodeArchive([]byte(raw))
	assert.False(t, migrated)
	assert.Equal(t, []string{"2024-02"}, archive.Keys())
	assert.Contains(t, logs.String(), "Dropping archive bucket with invalid month key")
	assert.Contains(t, logs.String(), "month_key=2024-13")
	assert.Contains(t, logs.String(), "month_key=10000-01")
}

func TestDecodeCategories(t *testing.T) {
	t.Run("current schema", func(t *testing.T) {
		raw := `{"version":2,"categories":[{"name":"Rent","color":"#111111","icon":"home"}]}`
		registry, migrated, ok := decodeCategories([]byte(raw))
		require.True(t, ok)
		assert.False(t, migrated)
		assert.Equal(t, []entity.Category{{Name: "Rent", Color: "#111111", Icon: "home"}}, registry.List())
	})

	t.Run("legacy bare array of strings and objects", func(t *testing.T) {
		raw := `["Rent", {"name": "Food", "color": "#222222"}, "rent", "", 7]`
		registry, migrated, ok := decodeCategories([]byte(raw))
		require.True(t, ok)
		assert.True(t, migrated)
		assert.Equal(t, []string{"Rent", "Food"}, names(registry.List()))
		assert.Equal(t, entity.PaletteColor(0), registry.List()[0].Color)
		assert.Equal(t, "#222222", registry.List()[1].Color)
		assert.Equal(t, entity.DefaultCategoryIcon, registry.List()[1].Icon)
	})

	t.Run("unreadable", func(t *testing.T) {
		_, _, ok := decodeCategories([]byte(`{"version": "two"}`))
		assert.False(t, ok)
	})
}

func TestReloadMigratesLegacyRecords(t *testing.T) {
	ctx := context.Background()
	states := newMemoryStates()
	keys := KeysFor(testPrefix, "user-1")
	states.put(keys.Categories, `["Rent", "Food"]`)
	states.put(keys.Archive, `{"expenses": {"2024-02": [{"id": "a", "name": "Bus", "date": "2024-02-03"}]}, "incomes": {}}`)

	store := NewStore(states, clockAt(2024, time.March, 5), testPrefix)
	require.NoError(t, store.Reload(ctx, "user-1"))

	assert.Equal(t, []string{"Rent", "Food"}, names(store.Categories()))
	assert.Len(t, store.ArchiveBucket("2024-02").Expenses, 1)

	var categories categoriesRecord
	require.NoError(t, json.Unmarshal([]byte(states.get(keys.Categories)), &categories))
	assert.Equal(t, CategoriesSchemaVersion, categories.Version)
	assert.Len(t, categories.Categories, 2)

	var archive archiveRecord
	require.NoError(t, json.Unmarshal([]byte(states.get(keys.Archive)), &archive))
	assert.Equal(t, ArchiveSchemaVersion, archive.Version)
	assert.Contains(t, archive.Buckets, "2024-02")

	saves := states.saves
	require.NoError(t, store.Reload(ctx, "user-1"))
	assert.Equal(t, saves, states.saves, "a migrated record is written back only once")
}
