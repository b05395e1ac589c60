package models

import (
	"time"

	"stockfolio/internal/uuid"

	"gorm.io/gorm"
)

// WatchlistEntry marks a stock as watched. At most one entry per stock.
type WatchlistEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	StockID   string    `gorm:"type:uuid;not null;uniqueIndex" json:"stock_id"`
	StockName string    `gorm:"not null" json:"stock_name"`
	AddedAt   time.Time `gorm:"not null" json:"added_at"`

	// Relationships
	Stock Stock `gorm:"foreignKey:StockID" json:"stock"`
}

// TableName keeps the singular table name used by the schema.
func (WatchlistEntry) TableName() string { return "watchlist" }

// BeforeCreate hook generates a UUIDv7 and the added timestamp for new records
func (w *WatchlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New()
	}
	if w.AddedAt.IsZero() {
		w.AddedAt = time.Now()
	}
	return nil
}
