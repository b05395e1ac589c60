// Package prices reads the latest known price of each stock from the
// stock_prices time series.
package prices

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockfolio/internal/models"
)

// Store reads price bars from the database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a price store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LatestBars returns the most recent bar of each stock that has one,
// keyed by stock ID.
func (s *Store) LatestBars(ctx context.Context, stockIDs []string) (map[string]models.StockPrice, error) {
	result := make(map[string]models.StockPrice, len(stockIDs))
	if len(stockIDs) == 0 {
		return result, nil
	}

	db := s.db.WithContext(ctx)
	subq := db.Model(&models.StockPrice{}).
		Select("stock_id, MAX(date) as max_date").
		Where("stock_id IN ?", stockIDs).
		Group("stock_id")

	var bars []models.StockPrice
	err := db.Table("stock_prices sp").
		Select("sp.*").
		Joins("INNER JOIN (?) latest ON sp.stock_id = latest.stock_id AND sp.date = latest.max_date", subq).
		Scan(&bars).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query latest prices: %w", err)
	}

	for _, bar := range bars {
		result[bar.StockID] = bar
	}
	return result, nil
}

// LatestPrices returns the close of each stock's most recent bar. Stocks
// without any bar are absent from the map.
func (s *Store) LatestPrices(ctx context.Context, stockIDs []string) (map[string]decimal.Decimal, error) {
	bars, err := s.LatestBars(ctx, stockIDs)
	if err != nil {
		return nil, err
	}
	closes := make(map[string]decimal.Decimal, len(bars))
	for id, bar := range bars {
		closes[id] = bar.Close
	}
	return closes, nil
}

// History returns up to limit bars of one stock, newest first.
func (s *Store) History(ctx context.Context, stockID string, limit int) ([]models.StockPrice, error) {
	var bars []models.StockPrice
	err := s.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		Order("date DESC").
		Limit(limit).
		Find(&bars).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	return bars, nil
}
