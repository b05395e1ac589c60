package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/report"
)

// transactionService reads the trade history. Trades themselves are
// written by the ledger engine.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

func (s *transactionService) filtered(ctx context.Context, filter TransactionFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Transaction{})
	if filter.Side != nil {
		query = query.Where("buy_sell = ?", *filter.Side)
	}
	if filter.StockID != "" {
		query = query.Where("stock_id = ?", filter.StockID)
	}
	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	return query
}

// ListTransactions returns a page of trades, newest first, with their stock.
func (s *transactionService) ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var totalItems int64
	if err := s.filtered(ctx, filter).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := s.filtered(ctx, filter).
		Preload("Stock").
		Order("date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(txns, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ExportTransactions renders every matching trade as an XLSX workbook.
func (s *transactionService) ExportTransactions(ctx context.Context, filter TransactionFilter) ([]byte, error) {
	var txns []models.Transaction
	if err := s.filtered(ctx, filter).Preload("Stock").Order("date DESC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	data, err := report.Transactions(txns)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}
