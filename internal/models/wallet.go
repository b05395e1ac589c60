package models

import (
	"time"

	"stockfolio/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet is the portfolio's cash balance. The store holds exactly one row.
type Wallet struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName keeps the singular table name used by the schema.
func (Wallet) TableName() string { return "wallet" }

// BeforeCreate hook generates a UUIDv7 for new records
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New()
	}
	return nil
}
