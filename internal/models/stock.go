package models

// Stock is a tradable instrument. Stocks are reference data: they are
// created by the ingestion pipeline and never changed by trading.
type Stock struct {
	Base
	Symbol string `gorm:"not null;uniqueIndex" json:"symbol"`
	Name   string `gorm:"not null" json:"name"`

	// Populated at query time from stock_prices
	LatestPrice *StockPrice `gorm:"-" json:"latest_price,omitempty"`
}
