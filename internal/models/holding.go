package models

import (
	"time"

	"stockfolio/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Holding is the aggregate position in one stock. TotalPriceBought is the
// cost basis of the shares currently held; the value and profit/loss
// columns are cached and refreshed whenever a price is known.
// Rows are hard-deleted when the quantity reaches zero.
type Holding struct {
	ID                string          `gorm:"type:uuid;primaryKey" json:"id"`
	StockID           string          `gorm:"type:uuid;not null;uniqueIndex" json:"stock_id"`
	Quantity          int64           `gorm:"not null" json:"quantity"`
	TotalPriceBought  decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"total_price_bought"`
	TotalCurrentValue decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"total_current_value"`
	ProfitLoss        decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"profit_loss"`
	ProfitLossPercent decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"profit_loss_percent"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	CurrentPrice *decimal.Decimal `gorm:"-" json:"current_price,omitempty"` // Populated at query time from stock_prices

	// Relationships
	Stock Stock `gorm:"foreignKey:StockID" json:"stock"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (h *Holding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New()
	}
	return nil
}
