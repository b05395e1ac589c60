package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"stockfolio/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// CreateTestStock creates a stock with a unique symbol.
func CreateTestStock(t *testing.T, db *gorm.DB) *models.Stock {
	t.Helper()
	n := nextID()
	return CreateTestStockWithSymbol(t, db, fmt.Sprintf("TST%d", n), fmt.Sprintf("Test Stock %d", n))
}

// CreateTestStockWithSymbol creates a stock with the given symbol and name.
func CreateTestStockWithSymbol(t *testing.T, db *gorm.DB, symbol, name string) *models.Stock {
	t.Helper()

	stock := &models.Stock{Symbol: symbol, Name: name}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestPrice records a daily bar whose open, high, low and close all
// equal closePrice.
func CreateTestPrice(t *testing.T, db *gorm.DB, stockID string, date time.Time, closePrice string) *models.StockPrice {
	t.Helper()

	p := Dec(closePrice)
	bar := &models.StockPrice{
		StockID: stockID,
		Date:    date,
		Open:    p,
		High:    p,
		Low:     p,
		Close:   p,
	}
	if err := db.Create(bar).Error; err != nil {
		t.Fatalf("failed to create test price: %v", err)
	}
	return bar
}

// CreateTestWallet creates the wallet row with the given balance.
func CreateTestWallet(t *testing.T, db *gorm.DB, balance string) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{Balance: Dec(balance)}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// CreateTestHolding creates a holding with the given quantity and cost
// basis. Its cached value columns start at the cost basis.
func CreateTestHolding(t *testing.T, db *gorm.DB, stockID string, quantity int64, cost string) *models.Holding {
	t.Helper()

	c := Dec(cost)
	holding := &models.Holding{
		StockID:           stockID,
		Quantity:          quantity,
		TotalPriceBought:  c,
		TotalCurrentValue: c,
		ProfitLoss:        decimal.Zero,
		ProfitLossPercent: decimal.Zero,
	}
	if err := db.Omit(clause.Associations).Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestTransaction records a trade without touching wallet or holdings.
func CreateTestTransaction(t *testing.T, db *gorm.DB, stockID string, side models.TradeSide, quantity int64, price string, date time.Time) *models.Transaction {
	t.Helper()

	p := Dec(price)
	txn := &models.Transaction{
		StockID:    stockID,
		Price:      p,
		Quantity:   quantity,
		TotalPrice: p.Mul(decimal.NewFromInt(quantity)),
		BuySell:    side,
		Date:       date,
	}
	if err := db.Omit(clause.Associations).Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestWatchlistEntry puts a stock on the watchlist.
func CreateTestWatchlistEntry(t *testing.T, db *gorm.DB, stock *models.Stock) *models.WatchlistEntry {
	t.Helper()

	entry := &models.WatchlistEntry{StockID: stock.ID, StockName: stock.Name}
	if err := db.Omit(clause.Associations).Create(entry).Error; err != nil {
		t.Fatalf("failed to create test watchlist entry: %v", err)
	}
	return entry
}

// CreateTestSnapshot records a portfolio snapshot at the given time.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, recordedAt time.Time, netWorth string) *models.PortfolioSnapshot {
	t.Helper()

	snap := &models.PortfolioSnapshot{
		RecordedAt:  recordedAt,
		CashBalance: Dec(netWorth),
		Invested:    decimal.Zero,
		MarketValue: decimal.Zero,
		NetWorth:    Dec(netWorth),
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}
