package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceLookup resolves the current price of stocks. Stocks without a known
// price are absent from the returned map.
type PriceLookup interface {
	LatestPrices(ctx context.Context, stockIDs []string) (map[string]decimal.Decimal, error)
}

// PriceMap is a fixed set of prices keyed by stock ID.
type PriceMap map[string]decimal.Decimal

// LatestPrices implements PriceLookup.
func (m PriceMap) LatestPrices(_ context.Context, stockIDs []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(stockIDs))
	for _, id := range stockIDs {
		if p, ok := m[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
