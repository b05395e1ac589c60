package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
)

// StockHandler handles stock browsing and stock ingestion requests.
type StockHandler struct {
	stockService services.StockServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService services.StockServicer) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// ListStocksQuery holds the query parameters of ListStocks.
type ListStocksQuery struct {
	pagination.PageRequest
	Search string `form:"search"`
}

// ListStocks handles listing stocks.
// @Summary     List stocks
// @Description Paginated stocks ordered by symbol, optionally filtered by a case-insensitive symbol or name substring. Each stock carries its latest daily bar.
// @Tags        stocks
// @Produce     json
// @Param       search    query string false "Symbol or name substring"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Stock] "Paginated stocks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	var q ListStocksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.stockService.ListStocks(c.Request.Context(), q.Search, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStock handles retrieving one stock with its recent prices.
// @Summary     Get stock
// @Description Stock details and its last 30 daily bars, newest first
// @Tags        stocks
// @Produce     json
// @Param       id  path     string true "Stock ID"
// @Success     200 {object} services.StockDetail "Stock with price history"
// @Failure     400 {object} ErrorResponse "Invalid stock ID"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.stockService.GetStockDetail(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateStockRequest represents the request payload for creating a stock.
type CreateStockRequest struct {
	Symbol string `json:"symbol" binding:"required,stock_symbol"`
	Name   string `json:"name" binding:"required,max=255"`
}

// CreateStock handles stock creation from the ingestion pipeline.
// @Summary     Create stock
// @Description Register a tradable stock (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string             true "Pipeline API key"
// @Param       request   body   CreateStockRequest true "Stock"
// @Success     201 {object} map[string]models.Stock "Created stock"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Duplicate symbol"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /pipeline/stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	stock, err := h.stockService.CreateStock(c.Request.Context(), req.Symbol, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"stock": stock})
}

// PriceBarRequest is one daily bar in a RecordPrices payload.
type PriceBarRequest struct {
	StockID string          `json:"stock_id" binding:"required,uuid"`
	Date    string          `json:"date" binding:"required"`
	Open    decimal.Decimal `json:"open" binding:"required,gt=0" swaggertype:"string"`
	High    decimal.Decimal `json:"high" binding:"required,gt=0" swaggertype:"string"`
	Low     decimal.Decimal `json:"low" binding:"required,gt=0" swaggertype:"string"`
	Close   decimal.Decimal `json:"close" binding:"required,gt=0" swaggertype:"string"`
}

// RecordPricesRequest represents the request payload for price ingestion.
type RecordPricesRequest struct {
	Prices []PriceBarRequest `json:"prices" binding:"required,min=1,max=1000,dive"`
}

// RecordPrices handles bulk price ingestion.
// @Summary     Record prices
// @Description Insert daily bars, skipping any (stock, date) already stored (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string              true "Pipeline API key"
// @Param       request   body   RecordPricesRequest true "Daily bars"
// @Success     200 {object} map[string]int "Inserted bar count"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /pipeline/prices [post]
func (h *StockHandler) RecordPrices(c *gin.Context) {
	var req RecordPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	input := make([]services.StockPriceInput, 0, len(req.Prices))
	for _, p := range req.Prices {
		date, err := parseFlexibleTime(p.Date)
		if err != nil {
			respondWithError(c, bindError(err))
			return
		}
		input = append(input, services.StockPriceInput{
			StockID: p.StockID,
			Date:    date.UTC().Truncate(24 * time.Hour),
			Open:    p.Open,
			High:    p.High,
			Low:     p.Low,
			Close:   p.Close,
		})
	}

	count, err := h.stockService.RecordPrices(c.Request.Context(), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices_recorded": count})
}
