package services

import (
	"context"
	"testing"

	"stockfolio/internal/testutil"
)

func TestGetWallet(t *testing.T) {
	t.Run("returns_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestWallet(t, db, "1234.56")

		wallet, err := NewWalletService(db).GetWallet(context.Background())
		testutil.AssertNoError(t, err)
		if !wallet.Balance.Equal(testutil.Dec("1234.56")) {
			t.Errorf("expected balance 1234.56, got %s", wallet.Balance)
		}
	})

	t.Run("missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewWalletService(db).GetWallet(context.Background())
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})
}
