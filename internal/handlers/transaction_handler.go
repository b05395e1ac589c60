package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/report"
	"stockfolio/internal/services"
)

// TransactionHandler handles trade history requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionQuery holds the query parameters shared by the list and export endpoints.
type TransactionQuery struct {
	pagination.PageRequest
	Side     string `form:"side" binding:"omitempty,trade_side"`
	StockID  string `form:"stock_id" binding:"omitempty,uuid"`
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
}

// parseTransactionQuery binds the query string and converts it to a filter.
func parseTransactionQuery(c *gin.Context) (TransactionQuery, services.TransactionFilter, error) {
	var q TransactionQuery
	var filter services.TransactionFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, filter, bindError(err)
	}

	if q.Side != "" {
		side := models.TradeSide(q.Side)
		filter.Side = &side
	}
	filter.StockID = q.StockID

	var err error
	if filter.FromDate, err = parseOptionalTime(c, "from_date"); err != nil {
		return q, filter, err
	}
	if filter.ToDate, err = parseOptionalTime(c, "to_date"); err != nil {
		return q, filter, err
	}
	return q, filter, nil
}

// ListTransactions handles listing the trade history.
// @Summary     List transactions
// @Description Paginated trade history, newest first
// @Tags        transactions
// @Produce     json
// @Param       side      query string false "buy or sell"
// @Param       stock_id  query string false "Stock ID"
// @Param       from_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	q, filter, err := parseTransactionQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), q.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportTransactions handles downloading the trade history as a spreadsheet.
// @Summary     Export transactions
// @Description XLSX workbook of every matching trade, newest first
// @Tags        transactions
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       side      query string false "buy or sell"
// @Param       stock_id  query string false "Stock ID"
// @Param       from_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {file} file "Workbook"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	_, filter, err := parseTransactionQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.transactionService.ExportTransactions(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType, data)
}
