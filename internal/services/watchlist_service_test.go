package services

import (
	"context"
	"testing"

	"stockfolio/internal/models"
	"stockfolio/internal/testutil"
)

func TestAddToWatchlist(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWatchlistService(db)
		stock := testutil.CreateTestStockWithSymbol(t, db, "ACME", "Acme Corp")

		entry, err := svc.AddToWatchlist(context.Background(), stock.ID)
		testutil.AssertNoError(t, err)

		if entry.StockName != "Acme Corp" {
			t.Errorf("expected stock name Acme Corp, got %s", entry.StockName)
		}
		if entry.AddedAt.IsZero() {
			t.Error("expected added_at to be set")
		}
	})

	t.Run("duplicate_is_conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWatchlistService(db)
		stock := testutil.CreateTestStock(t, db)

		_, err := svc.AddToWatchlist(context.Background(), stock.ID)
		testutil.AssertNoError(t, err)
		_, err = svc.AddToWatchlist(context.Background(), stock.ID)
		testutil.AssertAppError(t, err, "WATCHLIST_DUPLICATE")

		var count int64
		db.Model(&models.WatchlistEntry{}).Count(&count)
		if count != 1 {
			t.Errorf("expected watchlist size 1, got %d", count)
		}
	})

	t.Run("unknown_stock", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWatchlistService(db)

		_, err := svc.AddToWatchlist(context.Background(), "0190a1b2-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "STOCK_NOT_FOUND")
	})
}

func TestListWatchlist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewWatchlistService(db)

	first := testutil.CreateTestStock(t, db)
	second := testutil.CreateTestStock(t, db)
	testutil.CreateTestPrice(t, db, second.ID, day(4), "42")

	_, err := svc.AddToWatchlist(context.Background(), first.ID)
	testutil.AssertNoError(t, err)
	_, err = svc.AddToWatchlist(context.Background(), second.ID)
	testutil.AssertNoError(t, err)

	entries, err := svc.ListWatchlist(context.Background())
	testutil.AssertNoError(t, err)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].StockID != second.ID {
		t.Errorf("expected most recently added first")
	}
	if entries[0].Stock.LatestPrice == nil || !entries[0].Stock.LatestPrice.Close.Equal(testutil.Dec("42")) {
		t.Errorf("expected latest close 42 on watched stock")
	}
	if entries[1].Stock.LatestPrice != nil {
		t.Error("expected no price for unpriced stock")
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	t.Run("removes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWatchlistService(db)
		stock := testutil.CreateTestStock(t, db)
		testutil.CreateTestWatchlistEntry(t, db, stock)

		testutil.AssertNoError(t, svc.RemoveFromWatchlist(context.Background(), stock.ID))

		entries, err := svc.ListWatchlist(context.Background())
		testutil.AssertNoError(t, err)
		if len(entries) != 0 {
			t.Errorf("expected empty watchlist, got %d", len(entries))
		}

		// Removing lets the stock be added again.
		_, err = svc.AddToWatchlist(context.Background(), stock.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("not_watched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWatchlistService(db)
		stock := testutil.CreateTestStock(t, db)

		err := svc.RemoveFromWatchlist(context.Background(), stock.ID)
		testutil.AssertAppError(t, err, "WATCHLIST_ENTRY_NOT_FOUND")
	})
}
