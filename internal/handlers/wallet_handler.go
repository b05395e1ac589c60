package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockfolio/internal/services"
)

// WalletHandler handles wallet balance requests.
type WalletHandler struct {
	walletService services.WalletServicer
	ledger        services.LedgerServicer
	auditService  services.AuditServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer, engine services.LedgerServicer, auditService services.AuditServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService, ledger: engine, auditService: auditService}
}

// AmountRequest represents a deposit or withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"string" example:"250.00"`
}

// BalanceResponse carries the wallet balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"740.00"`
}

// GetWallet handles reading the wallet balance.
// @Summary     Get wallet
// @Tags        wallet
// @Produce     json
// @Success     200 {object} BalanceResponse "Current balance"
// @Failure     500 {object} ErrorResponse   "Wallet not initialized"
// @Router      /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletService.GetWallet(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{Balance: wallet.Balance})
}

// Deposit handles adding cash to the wallet.
// @Summary     Deposit cash
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Param       request body     AmountRequest true "Amount to deposit"
// @Success     200     {object} BalanceResponse "New balance"
// @Failure     400     {object} ErrorResponse   "Invalid input"
// @Router      /wallet/deposit [post]
func (h *WalletHandler) Deposit(c *gin.Context) {
	h.adjust(c, "DEPOSIT", false)
}

// Withdraw handles taking cash out of the wallet.
// @Summary     Withdraw cash
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Param       request body     AmountRequest true "Amount to withdraw"
// @Success     200     {object} BalanceResponse "New balance"
// @Failure     400     {object} ErrorResponse   "Invalid input"
// @Failure     422     {object} ErrorResponse   "Insufficient funds"
// @Router      /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.adjust(c, "WITHDRAW", true)
}

func (h *WalletHandler) adjust(c *gin.Context, action string, withdraw bool) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	delta := req.Amount
	if withdraw {
		delta = delta.Neg()
	}

	balance, err := h.ledger.AdjustWallet(c.Request.Context(), delta)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(action, "wallet", "", c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "balance": balance.String()})

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}
