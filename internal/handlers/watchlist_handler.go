package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockfolio/internal/services"
)

// WatchlistHandler handles watchlist requests.
type WatchlistHandler struct {
	watchlistService services.WatchlistServicer
	auditService     services.AuditServicer
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService services.WatchlistServicer, auditService services.AuditServicer) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, auditService: auditService}
}

// AddToWatchlistRequest represents the request payload for watching a stock.
type AddToWatchlistRequest struct {
	StockID string `json:"stock_id" binding:"required,uuid"`
}

// ListWatchlist handles listing watched stocks.
// @Summary     List watchlist
// @Description Watched stocks, most recently added first, with their latest bar
// @Tags        watchlist
// @Produce     json
// @Success     200 {object} map[string][]models.WatchlistEntry "Watchlist"
// @Router      /watchlist [get]
func (h *WatchlistHandler) ListWatchlist(c *gin.Context) {
	entries, err := h.watchlistService.ListWatchlist(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}

// AddToWatchlist handles watching a stock.
// @Summary     Add to watchlist
// @Tags        watchlist
// @Accept      json
// @Produce     json
// @Param       request body     AddToWatchlistRequest true "Stock to watch"
// @Success     201     {object} map[string]models.WatchlistEntry "Created entry"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Stock not found"
// @Failure     409     {object} ErrorResponse "Already watched"
// @Router      /watchlist [post]
func (h *WatchlistHandler) AddToWatchlist(c *gin.Context) {
	var req AddToWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.watchlistService.AddToWatchlist(c.Request.Context(), req.StockID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("WATCH_STOCK", "watchlist", entry.StockID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// RemoveFromWatchlist handles un-watching a stock.
// @Summary     Remove from watchlist
// @Tags        watchlist
// @Param       stock_id path string true "Stock ID"
// @Success     204 "Removed"
// @Failure     400 {object} ErrorResponse "Invalid stock ID"
// @Failure     404 {object} ErrorResponse "Not watched"
// @Router      /watchlist/{stock_id} [delete]
func (h *WatchlistHandler) RemoveFromWatchlist(c *gin.Context) {
	stockID, err := parsePathID(c, "stock_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.watchlistService.RemoveFromWatchlist(c.Request.Context(), stockID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UNWATCH_STOCK", "watchlist", stockID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
