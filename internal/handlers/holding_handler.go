package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockfolio/internal/ledger"
	"stockfolio/internal/services"
)

// HoldingHandler handles holding and portfolio summary requests.
type HoldingHandler struct {
	ledger services.LedgerServicer
	prices ledger.PriceLookup
}

// NewHoldingHandler creates a new HoldingHandler valuing holdings through prices.
func NewHoldingHandler(engine services.LedgerServicer, prices ledger.PriceLookup) *HoldingHandler {
	return &HoldingHandler{ledger: engine, prices: prices}
}

// ListHoldings handles listing holdings revalued at the latest prices.
// @Summary     List holdings
// @Description Revalue every holding at its latest close and list them by profit/loss percent, highest first
// @Tags        holdings
// @Produce     json
// @Success     200 {object} map[string][]models.Holding "Holdings"
// @Failure     500 {object} ErrorResponse "Internal error"
// @Router      /holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
	holdings, err := h.ledger.RevalueHoldings(c.Request.Context(), h.prices)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}

// GetStats handles the portfolio summary.
// @Summary     Portfolio stats
// @Description Totals of cost basis, current value and profit/loss over all holdings
// @Tags        holdings
// @Produce     json
// @Success     200 {object} ledger.PortfolioStats "Portfolio totals"
// @Failure     500 {object} ErrorResponse "Internal error"
// @Router      /holdings/stats [get]
func (h *HoldingHandler) GetStats(c *gin.Context) {
	stats, err := h.ledger.Stats(c.Request.Context(), h.prices)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
