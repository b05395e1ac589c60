package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stockfolio/internal/models"
)

func TestTransactions(t *testing.T) {
	txns := []models.Transaction{
		{
			Price:      decimal.RequireFromString("60"),
			Quantity:   4,
			TotalPrice: decimal.RequireFromString("240"),
			BuySell:    models.TradeSideSell,
			Date:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			Stock:      models.Stock{Symbol: "ACME", Name: "Acme Corp"},
		},
		{
			Price:      decimal.RequireFromString("50.25"),
			Quantity:   10,
			TotalPrice: decimal.RequireFromString("502.5"),
			BuySell:    models.TradeSideBuy,
			Date:       time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			Stock:      models.Stock{Symbol: "ACME", Name: "Acme Corp"},
		},
	}

	data, err := Transactions(txns)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"2026-03-02 10:00:00", "ACME", "Acme Corp", "sell", "4", "60", "240"}, rows[1])
	assert.Equal(t, "buy", rows[2][3])
	assert.Equal(t, "50.25", rows[2][5])
	assert.Equal(t, "502.5", rows[2][6])
}

func TestTransactions_Empty(t *testing.T) {
	data, err := Transactions(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
