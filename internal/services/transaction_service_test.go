package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/report"
	"stockfolio/internal/testutil"
)

func TestListTransactions(t *testing.T) {
	t.Run("newest_first_with_stock", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		stock := testutil.CreateTestStockWithSymbol(t, db, "ACME", "Acme Corp")

		base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideBuy, 10, "50", base)
		testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideSell, 4, "60", base.Add(time.Hour))

		result, err := svc.ListTransactions(context.Background(), pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 transactions, got %d", result.TotalItems)
		}
		if result.Data[0].BuySell != models.TradeSideSell {
			t.Errorf("expected newest (sell) first, got %s", result.Data[0].BuySell)
		}
		if result.Data[0].Stock.Symbol != "ACME" {
			t.Errorf("expected stock preloaded, got %q", result.Data[0].Stock.Symbol)
		}
	})

	t.Run("filter_by_side", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		stock := testutil.CreateTestStock(t, db)

		testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideBuy, 1, "1", time.Now())
		testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideBuy, 2, "1", time.Now())
		testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideSell, 1, "1", time.Now())

		side := models.TradeSideBuy
		result, err := svc.ListTransactions(context.Background(), pagination.PageRequest{}, TransactionFilter{Side: &side})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 buys, got %d", result.TotalItems)
		}
		for _, txn := range result.Data {
			if txn.BuySell != models.TradeSideBuy {
				t.Errorf("unexpected side %s", txn.BuySell)
			}
		}
	})

	t.Run("filter_by_stock_and_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		a := testutil.CreateTestStock(t, db)
		b := testutil.CreateTestStock(t, db)

		jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		mar := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, a.ID, models.TradeSideBuy, 1, "1", jan)
		testutil.CreateTestTransaction(t, db, a.ID, models.TradeSideBuy, 1, "1", mar)
		testutil.CreateTestTransaction(t, db, b.ID, models.TradeSideBuy, 1, "1", mar)

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		result, err := svc.ListTransactions(context.Background(), pagination.PageRequest{}, TransactionFilter{StockID: a.ID, FromDate: &from})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 transaction, got %d", result.TotalItems)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		stock := testutil.CreateTestStock(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideBuy, 1, "1", time.Now().Add(time.Duration(i)*time.Minute))
		}

		result, err := svc.ListTransactions(context.Background(), pagination.PageRequest{Page: 2, PageSize: 2}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
	})
}

func TestExportTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	stock := testutil.CreateTestStockWithSymbol(t, db, "ACME", "Acme Corp")

	testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideBuy, 10, "50", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestTransaction(t, db, stock.ID, models.TradeSideSell, 4, "60", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	data, err := svc.ExportTransactions(context.Background(), TransactionFilter{})
	testutil.AssertNoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	testutil.AssertNoError(t, err)
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "ACME" || rows[1][3] != "sell" {
		t.Errorf("expected newest sell of ACME first, got %v", rows[1])
	}
}
