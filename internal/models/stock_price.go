package models

import (
	"time"

	"stockfolio/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockPrice is one daily OHLC bar for a stock. The bar with the latest
// date supplies the stock's current price.
// This is immutable time-series data — no Base embed, no soft deletes.
type StockPrice struct {
	ID      string          `gorm:"type:uuid;primaryKey" json:"id"`
	StockID string          `gorm:"type:uuid;not null;uniqueIndex:uq_stock_prices_stock_date" json:"stock_id"`
	Date    time.Time       `gorm:"not null;uniqueIndex:uq_stock_prices_stock_date" json:"date"`
	Open    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"open"`
	High    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"high"`
	Low     decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"low"`
	Close   decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"close"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *StockPrice) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
