package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockfolio/internal/ledger"
	"stockfolio/internal/models"
	"stockfolio/internal/services"
)

// TradeHandler handles buy and sell requests.
type TradeHandler struct {
	ledger       services.LedgerServicer
	auditService services.AuditServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(engine services.LedgerServicer, auditService services.AuditServicer) *TradeHandler {
	return &TradeHandler{ledger: engine, auditService: auditService}
}

// TradeRequest represents the request payload for a buy or sell.
type TradeRequest struct {
	StockID  string          `json:"stock_id" binding:"required,uuid"`
	Quantity int64           `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price" binding:"required,gt=0" swaggertype:"string" example:"50.00"`
}

// Buy handles purchasing shares.
// @Summary     Buy stock
// @Description Buy shares at the given price, paying from the wallet
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body     TradeRequest       true "Trade"
// @Success     201     {object} ledger.TradeResult "New balance, transaction and holding"
// @Failure     400     {object} ErrorResponse      "Invalid input"
// @Failure     404     {object} ErrorResponse      "Stock not found"
// @Failure     422     {object} ErrorResponse      "Insufficient funds"
// @Router      /transactions/buy [post]
func (h *TradeHandler) Buy(c *gin.Context) {
	h.trade(c, models.TradeSideBuy)
}

// Sell handles selling shares.
// @Summary     Sell stock
// @Description Sell held shares at the given price, crediting the wallet
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body     TradeRequest       true "Trade"
// @Success     201     {object} ledger.TradeResult "New balance, transaction and remaining holding"
// @Failure     400     {object} ErrorResponse      "Invalid input"
// @Failure     422     {object} ErrorResponse      "Insufficient holdings"
// @Router      /transactions/sell [post]
func (h *TradeHandler) Sell(c *gin.Context) {
	h.trade(c, models.TradeSideSell)
}

func (h *TradeHandler) trade(c *gin.Context, side models.TradeSide) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var (
		result *ledger.TradeResult
		err    error
	)
	if side == models.TradeSideBuy {
		result, err = h.ledger.Buy(c.Request.Context(), req.StockID, req.Quantity, req.Price)
	} else {
		result, err = h.ledger.Sell(c.Request.Context(), req.StockID, req.Quantity, req.Price)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	action := "BUY_STOCK"
	if side == models.TradeSideSell {
		action = "SELL_STOCK"
	}
	h.auditService.Log(action, "transaction", result.Transaction.ID, c.ClientIP(),
		map[string]interface{}{
			"stock_id": req.StockID,
			"quantity": req.Quantity,
			"price":    req.Price.String(),
		})

	c.JSON(http.StatusCreated, result)
}
