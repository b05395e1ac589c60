package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockfolio/internal/ledger"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// LedgerServicer is the contract of the trade and cash-flow engine.
type LedgerServicer interface {
	Buy(ctx context.Context, stockID string, quantity int64, price decimal.Decimal) (*ledger.TradeResult, error)
	Sell(ctx context.Context, stockID string, quantity int64, price decimal.Decimal) (*ledger.TradeResult, error)
	AdjustWallet(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error)
	RevalueHoldings(ctx context.Context, lookup ledger.PriceLookup) ([]models.Holding, error)
	Stats(ctx context.Context, lookup ledger.PriceLookup) (*ledger.PortfolioStats, error)
}

var _ LedgerServicer = (*ledger.Engine)(nil)

// StockDetail is a stock with its recent price history, newest first.
type StockDetail struct {
	Stock  models.Stock        `json:"stock"`
	Prices []models.StockPrice `json:"prices"`
}

// StockPriceInput is one daily bar to ingest.
type StockPriceInput struct {
	StockID string
	Date    time.Time
	Open    decimal.Decimal
	High    decimal.Decimal
	Low     decimal.Decimal
	Close   decimal.Decimal
}

// StockServicer defines the contract for stock reference data and prices.
type StockServicer interface {
	ListStocks(ctx context.Context, search string, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error)
	GetStockDetail(ctx context.Context, id string) (*StockDetail, error)
	CreateStock(ctx context.Context, symbol, name string) (*models.Stock, error)
	RecordPrices(ctx context.Context, prices []StockPriceInput) (int, error)
}

// WalletServicer defines the contract for reading the wallet.
type WalletServicer interface {
	GetWallet(ctx context.Context) (*models.Wallet, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Side     *models.TradeSide
	StockID  string
	FromDate *time.Time
	ToDate   *time.Time
}

// TransactionServicer defines the contract for reading trade history.
type TransactionServicer interface {
	ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ExportTransactions(ctx context.Context, filter TransactionFilter) ([]byte, error)
}

// WatchlistServicer defines the contract for the watchlist.
type WatchlistServicer interface {
	ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, stockID string) (*models.WatchlistEntry, error)
	RemoveFromWatchlist(ctx context.Context, stockID string) error
}

// SnapshotServicer defines the contract for portfolio snapshots.
type SnapshotServicer interface {
	RecordSnapshot(ctx context.Context, recordedAt time.Time) (*models.PortfolioSnapshot, error)
	GetSnapshots(ctx context.Context, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
