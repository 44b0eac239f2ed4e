// Package sqlite persists scan records in a sqlite database via gorm.
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tradefit/internal/scan"
	"tradefit/internal/store/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

var _ scan.RecordStore = (*Store)(nil)

func New(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&cache=shared", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewFromDB(db)
}

func NewFromDB(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm db cannot be nil")
	}
	if err := db.AutoMigrate(&model.ScanRecordModel{}); err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(2)
		sqlDB.SetMaxIdleConns(2)
	}
	return &Store{db: db}, nil
}

func (s *Store) Insert(ctx context.Context, rec *scan.Record) error {
	if rec == nil {
		return fmt.Errorf("record cannot be nil")
	}
	row, err := toModel(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *Store) List(ctx context.Context, opts scan.ListOptions) ([]scan.Record, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	q := s.db.WithContext(ctx).Model(&model.ScanRecordModel{}).
		Order("created_at DESC").
		Limit(limit).
		Offset(opts.Offset)
	if sym := strings.TrimSpace(opts.Symbol); sym != "" {
		q = q.Where("symbol = ?", strings.ToUpper(sym))
	}
	var rows []model.ScanRecordModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]scan.Record, 0, len(rows))
	for i := range rows {
		out = append(out, fromModel(&rows[i]))
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (scan.Record, error) {
	var row model.ScanRecordModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scan.Record{}, scan.ErrNotFound
		}
		return scan.Record{}, err
	}
	return fromModel(&row), nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toModel(rec *scan.Record) (*model.ScanRecordModel, error) {
	inputJSON, err := json.Marshal(scan.Input{
		TradeSymbol:     rec.Symbol,
		TotalValue:      rec.TotalValue,
		SleepHours:      rec.SleepHours,
		ExerciseMinutes: rec.ExerciseMinutes,
	})
	if err != nil {
		return nil, err
	}
	row := &model.ScanRecordModel{
		ID:            rec.ID,
		CreatedAtUnix: rec.CreatedAt.UnixMilli(),
		Symbol:        rec.Symbol,

		TotalValue:      rec.TotalValue,
		SleepHours:      rec.SleepHours,
		ExerciseMinutes: rec.ExerciseMinutes,

		HealthFactor:   rec.HealthFactor,
		HealthAlert:    rec.HealthAlert,
		HealthNote:     rec.HealthNote,
		HealthGuidance: rec.HealthGuidance,

		BankrollMode:   rec.BankrollMode,
		BankrollPct:    rec.BankrollPct,
		BankrollAmount: rec.BankrollAmount,

		RiskPerTradePct:  rec.RiskPerTradePct,
		RiskPerTrade:     rec.RiskPerTrade,
		StopLossUsedPct:  rec.StopLossUsedPct,
		FinalPositionUSD: rec.FinalPositionUSD,
		EntryPrice:       rec.EntryPrice,
		EstShares:        rec.EstShares,
		StopLossPerShare: rec.StopLossPerShare,
		StopLossLevel:    rec.StopLossLevel,
		RiskPerShare:     rec.RiskPerShare,
		SizingPolicy:     rec.SizingPolicy,

		InputJSON: inputJSON,
	}
	if rec.HasATR {
		atr := rec.ATR
		row.ATR = &atr
	}
	return row, nil
}

func fromModel(row *model.ScanRecordModel) scan.Record {
	rec := scan.Record{
		ID:        row.ID,
		CreatedAt: time.UnixMilli(row.CreatedAtUnix).UTC(),
		Symbol:    row.Symbol,

		TotalValue:      row.TotalValue,
		SleepHours:      row.SleepHours,
		ExerciseMinutes: row.ExerciseMinutes,

		HealthFactor:   row.HealthFactor,
		HealthAlert:    row.HealthAlert,
		HealthNote:     row.HealthNote,
		HealthGuidance: row.HealthGuidance,

		BankrollMode:   row.BankrollMode,
		BankrollPct:    row.BankrollPct,
		BankrollAmount: row.BankrollAmount,

		RiskPerTradePct:  row.RiskPerTradePct,
		RiskPerTrade:     row.RiskPerTrade,
		StopLossUsedPct:  row.StopLossUsedPct,
		FinalPositionUSD: row.FinalPositionUSD,
		EntryPrice:       row.EntryPrice,
		EstShares:        row.EstShares,
		StopLossPerShare: row.StopLossPerShare,
		StopLossLevel:    row.StopLossLevel,
		RiskPerShare:     row.RiskPerShare,
		SizingPolicy:     row.SizingPolicy,
	}
	if row.ATR != nil {
		rec.ATR = *row.ATR
		rec.HasATR = true
	}
	return rec
}
