package models

import (
	"time"

	"stockfolio/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PortfolioSnapshot represents a point-in-time valuation of the wallet and holdings.
// This is immutable time-series data — no Base embed, no soft deletes.
type PortfolioSnapshot struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	RecordedAt  time.Time       `gorm:"not null;index" json:"recorded_at"`
	CashBalance decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"cash_balance"`
	Invested    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"invested"`
	MarketValue decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"market_value"`
	NetWorth    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"net_worth"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *PortfolioSnapshot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
