// Package ledger applies trades and cash movements to the portfolio. It is
// the only writer of the wallet balance and the holdings table, and every
// mutation it makes runs as one unit of work.
package ledger

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockfolio/internal/database"
	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/events"
	"stockfolio/internal/logger"
	"stockfolio/internal/models"
)

// TradeResult is the outcome of a committed buy or sell. Holding is nil
// when a sell closed the position.
type TradeResult struct {
	Balance     decimal.Decimal     `json:"balance"`
	Transaction *models.Transaction `json:"transaction"`
	Holding     *models.Holding     `json:"holding"`
}

// PortfolioStats summarizes the holdings at current prices.
type PortfolioStats struct {
	TotalInvested          decimal.Decimal `json:"total_invested"`
	TotalCurrentValue      decimal.Decimal `json:"total_current_value"`
	TotalProfitLoss        decimal.Decimal `json:"total_profit_loss"`
	TotalProfitLossPercent decimal.Decimal `json:"total_profit_loss_percent"`
	TotalStocks            int             `json:"total_stocks"`
}

// Engine executes trades against the portfolio behind a unit of work.
type Engine struct {
	uow       database.UnitOfWork
	prices    PriceLookup
	publisher events.Publisher
	now       func() time.Time
}

// NewEngine creates an engine. prices is the lookup used by revaluation
// when the caller passes none; publisher may be nil.
func NewEngine(uow database.UnitOfWork, prices PriceLookup, publisher events.Publisher) *Engine {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Engine{
		uow:       uow,
		prices:    prices,
		publisher: publisher,
		now:       time.Now,
	}
}

func validateTrade(stockID string, quantity int64, price decimal.Decimal) error {
	if stockID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "stock_id is required")
	}
	if quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	if !price.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be greater than zero")
	}
	if !fitsMoneyScale(price) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "price must have at most 4 decimal places")
	}
	return nil
}

// lockWallet reads the wallet row with a write lock. Every mutation takes
// this lock first, which serializes trades and cash movements.
func lockWallet(tx *gorm.DB) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := database.ForUpdate(tx).Order("created_at ASC").First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wallet, nil
}

func setBalance(tx *gorm.DB, wallet *models.Wallet, balance decimal.Decimal) error {
	if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).Update("balance", balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	wallet.Balance = balance
	return nil
}

// lockHolding returns the holding for stockID, or nil when none exists.
func lockHolding(tx *gorm.DB, stockID string) (*models.Holding, error) {
	var holding models.Holding
	if err := database.ForUpdate(tx).Where("stock_id = ?", stockID).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

func saveValuation(tx *gorm.DB, h *models.Holding) error {
	err := tx.Model(&models.Holding{}).Where("id = ?", h.ID).Updates(map[string]interface{}{
		"quantity":            h.Quantity,
		"total_price_bought":  h.TotalPriceBought,
		"total_current_value": h.TotalCurrentValue,
		"profit_loss":         h.ProfitLoss,
		"profit_loss_percent": h.ProfitLossPercent,
	}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func recordTrade(tx *gorm.DB, stockID string, side models.TradeSide, quantity int64, price, total decimal.Decimal, at time.Time) (*models.Transaction, error) {
	txn := &models.Transaction{
		StockID:    stockID,
		Price:      price,
		Quantity:   quantity,
		TotalPrice: total,
		BuySell:    side,
		Date:       at,
	}
	if err := tx.Omit(clause.Associations).Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// Buy purchases quantity shares of a stock at price, paying from the wallet.
func (e *Engine) Buy(ctx context.Context, stockID string, quantity int64, price decimal.Decimal) (*TradeResult, error) {
	if err := validateTrade(stockID, quantity, price); err != nil {
		return nil, err
	}
	total := tradeTotal(price, quantity)

	var result *TradeResult
	var stock models.Stock
	err := e.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", stockID).First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStockNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		wallet, err := lockWallet(tx)
		if err != nil {
			return err
		}
		if wallet.Balance.LessThan(total) {
			return apperrors.ErrInsufficientFunds
		}

		holding, err := lockHolding(tx, stockID)
		if err != nil {
			return err
		}

		txn, err := recordTrade(tx, stockID, models.TradeSideBuy, quantity, price, total, e.now())
		if err != nil {
			return err
		}
		if err := setBalance(tx, wallet, wallet.Balance.Sub(total)); err != nil {
			return err
		}

		if holding == nil {
			opened := openPosition(stockID, quantity, total)
			if err := tx.Omit(clause.Associations).Create(&opened).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			holding = &opened
		} else {
			addToPosition(holding, quantity, price, total)
			if err := saveValuation(tx, holding); err != nil {
				return err
			}
		}

		holding.Stock = stock
		txn.Stock = stock
		result = &TradeResult{Balance: wallet.Balance, Transaction: txn, Holding: holding}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, result, stock)
	return result, nil
}

// Sell disposes of quantity shares of a held stock at price, crediting the
// wallet. The remaining shares keep their average cost.
func (e *Engine) Sell(ctx context.Context, stockID string, quantity int64, price decimal.Decimal) (*TradeResult, error) {
	if err := validateTrade(stockID, quantity, price); err != nil {
		return nil, err
	}
	proceeds := tradeTotal(price, quantity)

	var result *TradeResult
	var stock models.Stock
	err := e.uow.Do(ctx, func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx)
		if err != nil {
			return err
		}

		holding, err := lockHolding(tx, stockID)
		if err != nil {
			return err
		}
		if holding == nil {
			return apperrors.WithMessage(apperrors.ErrInsufficientHoldings, "Stock is not held")
		}
		if holding.Quantity < quantity {
			return apperrors.ErrInsufficientHoldings
		}

		if err := tx.Where("id = ?", stockID).First(&stock).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		txn, err := recordTrade(tx, stockID, models.TradeSideSell, quantity, price, proceeds, e.now())
		if err != nil {
			return err
		}
		if err := setBalance(tx, wallet, wallet.Balance.Add(proceeds)); err != nil {
			return err
		}

		txn.Stock = stock
		result = &TradeResult{Balance: wallet.Balance, Transaction: txn}

		if reducePosition(holding, quantity, price) {
			if err := tx.Where("id = ?", holding.ID).Delete(&models.Holding{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		}
		if err := saveValuation(tx, holding); err != nil {
			return err
		}
		holding.Stock = stock
		result.Holding = holding
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, result, stock)
	return result, nil
}

// AdjustWallet adds delta to the wallet balance. A negative delta is a
// withdrawal and fails when it would overdraw the wallet.
func (e *Engine) AdjustWallet(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	if delta.IsZero() {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be zero")
	}
	if !fitsMoneyScale(delta) {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most 4 decimal places")
	}

	var balance decimal.Decimal
	err := e.uow.Do(ctx, func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx)
		if err != nil {
			return err
		}
		next := wallet.Balance.Add(delta)
		if next.IsNegative() {
			return apperrors.ErrInsufficientFunds
		}
		if err := setBalance(tx, wallet, next); err != nil {
			return err
		}
		balance = next
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	logger.Get().Infow("wallet adjusted", "delta", delta.String(), "balance", balance.String())
	return balance, nil
}

// RevalueHoldings refreshes the cached valuation of every holding whose
// stock has a price in lookup and returns all holdings ordered by
// profit/loss percent, highest first. A nil lookup uses the engine's
// default.
func (e *Engine) RevalueHoldings(ctx context.Context, lookup PriceLookup) ([]models.Holding, error) {
	if lookup == nil {
		lookup = e.prices
	}

	stockIDs, err := e.heldStockIDs(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := e.lookupPrices(ctx, lookup, stockIDs)
	if err != nil {
		return nil, err
	}

	var holdings []models.Holding
	err = e.uow.Do(ctx, func(tx *gorm.DB) error {
		if _, err := lockWallet(tx); err != nil {
			return err
		}
		if err := tx.Preload("Stock").Find(&holdings).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range holdings {
			price, ok := prices[holdings[i].StockID]
			if !ok {
				continue
			}
			revalue(&holdings[i], price)
			if err := saveValuation(tx, &holdings[i]); err != nil {
				return err
			}
			p := price
			holdings[i].CurrentPrice = &p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByPerformance(holdings)
	return holdings, nil
}

// Stats totals the holdings at current prices without writing anything.
// Holdings without a price count toward the invested total only.
func (e *Engine) Stats(ctx context.Context, lookup PriceLookup) (*PortfolioStats, error) {
	if lookup == nil {
		lookup = e.prices
	}

	var holdings []models.Holding
	if err := e.uow.Reader(ctx).Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	ids := make([]string, len(holdings))
	for i, h := range holdings {
		ids[i] = h.StockID
	}
	prices, err := e.lookupPrices(ctx, lookup, ids)
	if err != nil {
		return nil, err
	}

	stats := &PortfolioStats{
		TotalInvested:     decimal.Zero,
		TotalCurrentValue: decimal.Zero,
		TotalStocks:       len(holdings),
	}
	for _, h := range holdings {
		stats.TotalInvested = stats.TotalInvested.Add(h.TotalPriceBought)
		if price, ok := prices[h.StockID]; ok {
			stats.TotalCurrentValue = stats.TotalCurrentValue.Add(tradeTotal(price, h.Quantity))
		}
	}
	stats.TotalProfitLoss = stats.TotalCurrentValue.Sub(stats.TotalInvested)
	stats.TotalProfitLossPercent = percentOf(stats.TotalProfitLoss, stats.TotalInvested)
	return stats, nil
}

func (e *Engine) heldStockIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := e.uow.Reader(ctx).Model(&models.Holding{}).Pluck("stock_id", &ids).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ids, nil
}

func (e *Engine) lookupPrices(ctx context.Context, lookup PriceLookup, ids []string) (map[string]decimal.Decimal, error) {
	if lookup == nil || len(ids) == 0 {
		return map[string]decimal.Decimal{}, nil
	}
	prices, err := lookup.LatestPrices(ctx, ids)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prices, nil
}

func sortByPerformance(holdings []models.Holding) {
	sort.SliceStable(holdings, func(i, j int) bool {
		a, b := holdings[i].ProfitLossPercent, holdings[j].ProfitLossPercent
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return holdings[i].Stock.Symbol < holdings[j].Stock.Symbol
	})
}

func (e *Engine) publish(ctx context.Context, result *TradeResult, stock models.Stock) {
	txn := result.Transaction
	logger.Get().Infow("trade executed",
		"transaction_id", txn.ID,
		"symbol", stock.Symbol,
		"side", txn.BuySell,
		"quantity", txn.Quantity,
		"price", txn.Price.String(),
		"balance", result.Balance.String(),
	)

	event := events.TradeEvent{
		EventType:     events.EventTypeTradeExecuted,
		TransactionID: txn.ID,
		StockID:       txn.StockID,
		Symbol:        stock.Symbol,
		Side:          string(txn.BuySell),
		Quantity:      txn.Quantity,
		Price:         txn.Price,
		TotalPrice:    txn.TotalPrice,
		Balance:       result.Balance,
		Timestamp:     txn.Date,
	}
	if err := e.publisher.PublishTrade(ctx, event); err != nil {
		logger.Get().Warnw("failed to publish trade event", "transaction_id", txn.ID, "error", err)
	}
}
