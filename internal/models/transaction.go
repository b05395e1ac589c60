package models

import (
	"time"

	"stockfolio/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TradeSide is the direction of a trade.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// Transaction is the audit record of one executed trade.
// Rows are append-only — no Base embed, no soft deletes.
type Transaction struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	StockID    string          `gorm:"type:uuid;not null;index" json:"stock_id"`
	Price      decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"price"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"total_price"`
	BuySell    TradeSide       `gorm:"column:buy_sell;not null" json:"buy_sell"`
	Date       time.Time       `gorm:"not null;index" json:"date"`

	// Relationships
	Stock Stock `gorm:"foreignKey:StockID" json:"stock"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New()
	}
	return nil
}
