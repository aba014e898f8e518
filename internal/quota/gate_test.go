// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

//go:build !integration && !acceptance

package quota

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techair/mediakit"
)

func quiet() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func newTestGate(t *testing.T, path string, limit int, now func() time.Time) *Gate {
	t.Helper()

	store, err := NewFileStore(
		WithFileStoreLogger(quiet()),
		WithFileStorePath(path),
		WithFileStoreNow(now),
	)
	require.NoError(t, err)

	gate, err := NewGate(
		WithGateLogger(quiet()),
		WithGateStore(store),
		WithGateCap(limit),
		WithGateNow(now),
	)
	require.NoError(t, err)

	return gate
}

func readRecord(t *testing.T, path string) mediakit.UsageRecord {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record mediakit.UsageRecord
	require.NoError(t, json.Unmarshal(data, &record))
	return record
}

func TestGate_AllowsUpToCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	gate := newTestGate(t, path, 5, fixedClock(2025, time.January))

	for i := 1; i <= 5; i++ {
		allowed, err := gate.CheckAndReserve(context.Background())
		require.NoError(t, err)
		assert.True(t, allowed, "call %d should be admitted", i)

		record := readRecord(t, path)
		assert.Equal(t, i, record.Count)
		assert.Equal(t, "2025-01", record.Month)
	}
}

func TestGate_DeniesBeyondCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	gate := newTestGate(t, path, 2, fixedClock(2025, time.January))

	// Scenario from the safety design: cap=2, fresh store.
	allowed, err := gate.CheckAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, readRecord(t, path).Count)

	allowed, err = gate.CheckAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, readRecord(t, path).Count)

	allowed, err = gate.CheckAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 2, readRecord(t, path).Count)

	// Still denied on later attempts, count pinned at the cap.
	allowed, err = gate.CheckAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 2, readRecord(t, path).Count)
}

func TestGate_MonthRolloverResetsCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")

	seed := mediakit.UsageRecord{Month: "2024-12", Count: 2}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	// Cap already exhausted last month; a new month starts fresh.
	gate := newTestGate(t, path, 2, fixedClock(2025, time.January))

	allowed, err := gate.CheckAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, allowed)

	record := readRecord(t, path)
	assert.Equal(t, "2025-01", record.Month)
	assert.Equal(t, 1, record.Count)
}

func TestGate_MissingStoreEqualsZeroRecord(t *testing.T) {
	dir := t.TempDir()
	now := fixedClock(2025, time.March)

	missing := newTestGate(t, filepath.Join(dir, "missing.json"), 3, now)

	explicitPath := filepath.Join(dir, "explicit.json")
	seed := mediakit.UsageRecord{Month: "2025-03", Count: 0}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(explicitPath, data, 0o600))
	explicit := newTestGate(t, explicitPath, 3, now)

	allowedMissing, err := missing.CheckAndReserve(context.Background())
	require.NoError(t, err)
	allowedExplicit, err := explicit.CheckAndReserve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, allowedExplicit, allowedMissing)
	assert.Equal(t, readRecord(t, explicitPath), readRecord(t, filepath.Join(dir, "missing.json")))
}

func TestGate_DeniedCallDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")

	seed := mediakit.UsageRecord{Month: "2025-01", Count: 4}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	gate := newTestGate(t, path, 4, fixedClock(2025, time.January))

	allowed, err := gate.CheckAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, allowed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, raw, "denied call must leave the store byte-identical")
}

func TestGate_CorruptStoreHalts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	gate := newTestGate(t, path, 5, fixedClock(2025, time.January))

	allowed, err := gate.CheckAndReserve(context.Background())
	require.Error(t, err)
	assert.False(t, allowed)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestGate_NegativeCountIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"month":"2025-01","count":-3}`), 0o600))

	gate := newTestGate(t, path, 5, fixedClock(2025, time.January))

	_, err := gate.CheckAndReserve(context.Background())
	require.Error(t, err)
}

func TestGate_UsageIsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")

	seed := mediakit.UsageRecord{Month: "2024-12", Count: 7}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	gate := newTestGate(t, path, 10, fixedClock(2025, time.January))

	record, err := gate.Usage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-01", record.Month)
	assert.Equal(t, 0, record.Count, "rollover is applied logically")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, raw, "Usage must not persist anything")
}

func TestFileStore_LoadMissingSynthesizesCurrentMonth(t *testing.T) {
	store, err := NewFileStore(
		WithFileStoreLogger(quiet()),
		WithFileStorePath(filepath.Join(t.TempDir(), "usage.json")),
		WithFileStoreNow(fixedClock(2025, time.August)),
	)
	require.NoError(t, err)

	record, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mediakit.UsageRecord{Month: "2025-08", Count: 0}, record)
}
