package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"tradefit/internal/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "tradefit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRecord(id, symbol string, createdAt time.Time) scan.Record {
	return scan.Record{
		ID:               id,
		CreatedAt:        createdAt,
		Symbol:           symbol,
		TotalValue:       10000,
		SleepHours:       8,
		ExerciseMinutes:  100,
		HealthFactor:     1.0,
		HealthAlert:      "🟢 Optimal",
		HealthNote:       "note",
		HealthGuidance:   "guidance",
		BankrollMode:     "auto",
		BankrollPct:      0.1,
		BankrollAmount:   1000,
		RiskPerTradePct:  0.05,
		RiskPerTrade:     50,
		StopLossUsedPct:  0.01,
		FinalPositionUSD: 1000,
		EntryPrice:       50.1234567,
		EstShares:        19.9507,
		StopLossPerShare: 0.501234567,
		StopLossLevel:    49.62222,
		RiskPerShare:     0.501234567,
		ATR:              1.37,
		HasATR:           true,
		SizingPolicy:     "capped",
	}
}

func TestInsertAndGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := sampleRecord("rec-1", "AAPL", time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, s.Insert(ctx, &want))

	got, err := s.Get(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, scan.ErrNotFound)
}

func TestInsert_NilATRSurvivesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("rec-2", "TSLA", time.Now().UTC().Truncate(time.Millisecond))
	rec.ATR = 0
	rec.HasATR = false
	require.NoError(t, s.Insert(ctx, &rec))

	got, err := s.Get(ctx, "rec-2")
	require.NoError(t, err)
	assert.False(t, got.HasATR)
	assert.Zero(t, got.ATR)
}

func TestList_OrderFilterAndPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 5; i++ {
		sym := "AAPL"
		if i%2 == 1 {
			sym = "TSLA"
		}
		rec := sampleRecord(fmt.Sprintf("rec-%d", i), sym, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, s.Insert(ctx, &rec))
	}

	t.Run("newest first", func(t *testing.T) {
		rows, err := s.List(ctx, scan.ListOptions{Limit: 10})
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, "rec-4", rows[0].ID)
		assert.Equal(t, "rec-0", rows[4].ID)
	})

	t.Run("symbol filter", func(t *testing.T) {
		rows, err := s.List(ctx, scan.ListOptions{Limit: 10, Symbol: "TSLA"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.Equal(t, "TSLA", r.Symbol)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		rows, err := s.List(ctx, scan.ListOptions{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "rec-2", rows[0].ID)
		assert.Equal(t, "rec-1", rows[1].ID)
	})
}
