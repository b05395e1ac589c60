package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/services"
)

// --- mock wallet service ---

type mockWalletService struct {
	getWalletFn func(ctx context.Context) (*models.Wallet, error)
}

func (m *mockWalletService) GetWallet(ctx context.Context) (*models.Wallet, error) {
	if m.getWalletFn != nil {
		return m.getWalletFn(ctx)
	}
	return &models.Wallet{Balance: decimal.Zero}, nil
}

var _ services.WalletServicer = (*mockWalletService)(nil)

func setupWalletRouter(handler *WalletHandler) *gin.Engine {
	r := gin.New()
	r.GET("/wallet", handler.GetWallet)
	r.POST("/wallet/deposit", handler.Deposit)
	r.POST("/wallet/withdraw", handler.Withdraw)
	return r
}

func TestWalletHandler_GetWallet(t *testing.T) {
	t.Run("returns the balance", func(t *testing.T) {
		svc := &mockWalletService{getWalletFn: func(context.Context) (*models.Wallet, error) {
			return &models.Wallet{ID: "w", Balance: decimal.RequireFromString("1000.5")}, nil
		}}
		r := setupWalletRouter(NewWalletHandler(svc, &mockLedger{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/wallet", "")

		assertStatus(t, rec, http.StatusOK)
		if got := parseJSON(t, rec)["balance"]; got != "1000.5" {
			t.Errorf("expected balance \"1000.5\", got %v", got)
		}
	})

	t.Run("returns 500 when the wallet is missing", func(t *testing.T) {
		svc := &mockWalletService{getWalletFn: func(context.Context) (*models.Wallet, error) {
			return nil, apperrors.ErrWalletNotFound
		}}
		r := setupWalletRouter(NewWalletHandler(svc, &mockLedger{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/wallet", "")

		assertStatus(t, rec, http.StatusInternalServerError)
		assertErrorCode(t, parseJSON(t, rec), "WALLET_NOT_FOUND")
	})
}

func TestWalletHandler_Adjust(t *testing.T) {
	t.Run("deposit passes a positive delta", func(t *testing.T) {
		var got decimal.Decimal
		eng := &mockLedger{adjustWalletFn: func(_ context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
			got = delta
			return decimal.RequireFromString("1250"), nil
		}}
		audit := &mockAuditService{}
		r := setupWalletRouter(NewWalletHandler(&mockWalletService{}, eng, audit))

		rec := doRequest(r, "POST", "/wallet/deposit", `{"amount":"250"}`)

		assertStatus(t, rec, http.StatusOK)
		if !got.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected delta 250, got %s", got)
		}
		if bal := parseJSON(t, rec)["balance"]; bal != "1250" {
			t.Errorf("expected balance \"1250\", got %v", bal)
		}
		if a := audit.actions(); len(a) != 1 || a[0] != "DEPOSIT" {
			t.Errorf("expected DEPOSIT audit entry, got %v", a)
		}
	})

	t.Run("withdraw passes a negative delta", func(t *testing.T) {
		var got decimal.Decimal
		eng := &mockLedger{adjustWalletFn: func(_ context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
			got = delta
			return decimal.RequireFromString("750"), nil
		}}
		audit := &mockAuditService{}
		r := setupWalletRouter(NewWalletHandler(&mockWalletService{}, eng, audit))

		rec := doRequest(r, "POST", "/wallet/withdraw", `{"amount":250}`)

		assertStatus(t, rec, http.StatusOK)
		if !got.Equal(decimal.NewFromInt(-250)) {
			t.Errorf("expected delta -250, got %s", got)
		}
		if a := audit.actions(); len(a) != 1 || a[0] != "WITHDRAW" {
			t.Errorf("expected WITHDRAW audit entry, got %v", a)
		}
	})

	t.Run("withdraw beyond balance returns 422", func(t *testing.T) {
		eng := &mockLedger{adjustWalletFn: func(context.Context, decimal.Decimal) (decimal.Decimal, error) {
			return decimal.Zero, apperrors.ErrInsufficientFunds
		}}
		r := setupWalletRouter(NewWalletHandler(&mockWalletService{}, eng, &mockAuditService{}))

		rec := doRequest(r, "POST", "/wallet/withdraw", `{"amount":"5000"}`)

		assertStatus(t, rec, http.StatusUnprocessableEntity)
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_FUNDS")
	})

	for _, body := range []string{`{}`, `{"amount":"0"}`, `{"amount":"-10"}`, `{"amount":"abc"}`} {
		t.Run("rejects "+body, func(t *testing.T) {
			r := setupWalletRouter(NewWalletHandler(&mockWalletService{}, &mockLedger{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/wallet/deposit", body)

			assertStatus(t, rec, http.StatusBadRequest)
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}
