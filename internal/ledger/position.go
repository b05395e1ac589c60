package ledger

import (
	"github.com/shopspring/decimal"

	"stockfolio/internal/models"
)

// moneyScale matches the numeric(20,4) and numeric(12,4) columns, so what a
// trade returns equals what the store keeps.
const moneyScale = 4

var hundred = decimal.NewFromInt(100)

// fitsMoneyScale reports whether d is exactly representable in a money
// column. Trailing zeros beyond the scale are allowed.
func fitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyScale))
}

// tradeTotal is price × quantity.
func tradeTotal(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity)).Round(moneyScale)
}

// percentOf returns pl as a percentage of cost, or zero when cost is zero.
func percentOf(pl, cost decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return pl.Div(cost).Mul(hundred).Round(moneyScale)
}

// openPosition returns a new holding for a first buy valued at the trade
// price.
func openPosition(stockID string, quantity int64, total decimal.Decimal) models.Holding {
	return models.Holding{
		StockID:           stockID,
		Quantity:          quantity,
		TotalPriceBought:  total,
		TotalCurrentValue: total,
		ProfitLoss:        decimal.Zero,
		ProfitLossPercent: decimal.Zero,
	}
}

// addToPosition folds a buy into h and revalues it at the trade price.
func addToPosition(h *models.Holding, quantity int64, price, total decimal.Decimal) {
	h.Quantity += quantity
	h.TotalPriceBought = h.TotalPriceBought.Add(total)
	revalue(h, price)
}

// reducePosition removes quantity shares from h at the weighted-average
// cost and revalues the remainder at the trade price. It reports whether
// the position is now closed.
func reducePosition(h *models.Holding, quantity int64, price decimal.Decimal) bool {
	remaining := h.Quantity - quantity
	if remaining == 0 {
		h.Quantity = 0
		h.TotalPriceBought = decimal.Zero
		h.TotalCurrentValue = decimal.Zero
		h.ProfitLoss = decimal.Zero
		h.ProfitLossPercent = decimal.Zero
		return true
	}

	avgCost := h.TotalPriceBought.Div(decimal.NewFromInt(h.Quantity))
	h.Quantity = remaining
	h.TotalPriceBought = decimal.NewFromInt(remaining).Mul(avgCost).Round(moneyScale)
	revalue(h, price)
	return false
}

// revalue recomputes the cached value and profit/loss columns of h at price.
func revalue(h *models.Holding, price decimal.Decimal) {
	h.TotalCurrentValue = tradeTotal(price, h.Quantity)
	h.ProfitLoss = h.TotalCurrentValue.Sub(h.TotalPriceBought)
	h.ProfitLossPercent = percentOf(h.ProfitLoss, h.TotalPriceBought)
}
