package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"stockfolio/internal/database"
	"stockfolio/internal/ledger"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/testutil"
)

func TestRecordSnapshot(t *testing.T) {
	t.Run("values_cash_and_holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestWallet(t, db, "740")
		priced := testutil.CreateTestStock(t, db)
		unpriced := testutil.CreateTestStock(t, db)
		testutil.CreateTestHolding(t, db, priced.ID, 6, "300")
		testutil.CreateTestHolding(t, db, unpriced.ID, 2, "40")

		svc := NewSnapshotService(db, ledger.PriceMap{priced.ID: testutil.Dec("70")})
		at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		snap, err := svc.RecordSnapshot(context.Background(), at)
		testutil.AssertNoError(t, err)

		checks := map[string][2]string{
			"cash":     {"740", snap.CashBalance.String()},
			"invested": {"340", snap.Invested.String()},
			"market":   {"460", snap.MarketValue.String()},
			"net":      {"1200", snap.NetWorth.String()},
		}
		for name, c := range checks {
			if !testutil.Dec(c[0]).Equal(testutil.Dec(c[1])) {
				t.Errorf("%s: expected %s, got %s", name, c[0], c[1])
			}
		}
	})

	t.Run("same_time_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		wallet := testutil.CreateTestWallet(t, db, "100")
		svc := NewSnapshotService(db, ledger.PriceMap{})
		at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		_, err := svc.RecordSnapshot(context.Background(), at)
		testutil.AssertNoError(t, err)

		db.Model(wallet).Update("balance", testutil.Dec("250"))
		snap, err := svc.RecordSnapshot(context.Background(), at)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.PortfolioSnapshot{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 snapshot, got %d", count)
		}
		var stored models.PortfolioSnapshot
		db.First(&stored, "id = ?", snap.ID)
		if !stored.NetWorth.Equal(testutil.Dec("250")) {
			t.Errorf("expected net worth 250, got %s", stored.NetWorth)
		}
	})

	t.Run("trade_during_snapshot_is_not_half_counted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestWallet(t, db, "1000")
		stock := testutil.CreateTestStock(t, db)
		engine := ledger.NewEngine(database.NewUnitOfWork(db), nil, nil)
		svc := NewSnapshotService(db, ledger.PriceMap{stock.ID: testutil.Dec("10")})

		// Once the snapshot has read the wallet, start a buy and give it a
		// chance to commit before the holdings are read.
		var armed atomic.Bool
		buyDone := make(chan error, 1)
		err := db.Callback().Query().After("gorm:query").Register("test:trade_between_reads", func(tx *gorm.DB) {
			if tx.Statement.Table != "wallet" || !armed.CompareAndSwap(true, false) {
				return
			}
			go func() {
				_, err := engine.Buy(context.Background(), stock.ID, 10, testutil.Dec("10"))
				buyDone <- err
			}()
			select {
			case err := <-buyDone:
				buyDone <- err
			case <-time.After(300 * time.Millisecond):
			}
		})
		testutil.AssertNoError(t, err)

		armed.Store(true)
		snap, err := svc.RecordSnapshot(context.Background(), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, <-buyDone)

		testutil.AssertDecimal(t, "cash", "1000", snap.CashBalance)
		testutil.AssertDecimal(t, "market", "0", snap.MarketValue)
		testutil.AssertDecimal(t, "net", "1000", snap.NetWorth)
	})

	t.Run("missing_wallet", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db, nil)

		_, err := svc.RecordSnapshot(context.Background(), time.Now())
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})
}

func TestGetSnapshots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSnapshotService(db, nil)

	for d := 1; d <= 5; d++ {
		testutil.CreateTestSnapshot(t, db, day(d), "100")
	}

	result, err := svc.GetSnapshots(context.Background(), day(2), day(4), pagination.PageRequest{})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 3 {
		t.Fatalf("expected 3 snapshots, got %d", result.TotalItems)
	}
	if !result.Data[0].RecordedAt.Equal(day(4)) {
		t.Errorf("expected newest first, got %v", result.Data[0].RecordedAt)
	}
}
