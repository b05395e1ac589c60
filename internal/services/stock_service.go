package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/logger"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/prices"
)

// PriceHistoryLength is how many bars GetStockDetail returns.
const PriceHistoryLength = 30

// PriceInvalidator drops cached prices after new bars are recorded.
type PriceInvalidator interface {
	Invalidate(ctx context.Context, stockIDs []string) error
}

// likeEscaper makes % and _ in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// stockService handles stock reference data and price ingestion.
type stockService struct {
	db          *gorm.DB
	prices      *prices.Store
	invalidator PriceInvalidator
}

// NewStockService creates a new StockServicer. invalidator may be nil.
func NewStockService(db *gorm.DB, invalidator PriceInvalidator) StockServicer {
	return &stockService{db: db, prices: prices.NewStore(db), invalidator: invalidator}
}

// ListStocks returns stocks whose symbol or name contains search, ordered by
// symbol, each with its latest bar.
func (s *stockService) ListStocks(ctx context.Context, search string, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Stock{})
	if term := strings.TrimSpace(search); term != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		base = base.Where(`LOWER(symbol) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\'`, like, like)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stocks []models.Stock
	if err := base.Order("symbol ASC").Scopes(pagination.Paginate(page)).Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.attachLatestBars(ctx, stocks); err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(stocks, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetStockDetail returns a stock with its latest PriceHistoryLength bars.
func (s *stockService) GetStockDetail(ctx context.Context, id string) (*StockDetail, error) {
	var stock models.Stock
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	history, err := s.prices.History(ctx, stock.ID, PriceHistoryLength)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(history) > 0 {
		latest := history[0]
		stock.LatestPrice = &latest
	}

	return &StockDetail{Stock: stock, Prices: history}, nil
}

// CreateStock creates a new stock record.
func (s *stockService) CreateStock(ctx context.Context, symbol, name string) (*models.Stock, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	name = strings.TrimSpace(name)
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}

	stock := &models.Stock{Symbol: symbol, Name: name}
	if err := s.db.WithContext(ctx).Create(stock).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateStock
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stock, nil
}

// RecordPrices inserts price bars, skipping any (stock, date) already
// stored, and returns how many were inserted. All bars are rejected when
// one references an unknown stock.
func (s *stockService) RecordPrices(ctx context.Context, input []StockPriceInput) (int, error) {
	if len(input) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Prices array is empty")
	}

	ids := make([]string, 0, len(input))
	seen := make(map[string]bool, len(input))
	for _, p := range input {
		if !p.Low.LessThanOrEqual(p.High) {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Low must not exceed high")
		}
		if !seen[p.StockID] {
			seen[p.StockID] = true
			ids = append(ids, p.StockID)
		}
	}

	count := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var known int64
		if err := tx.Model(&models.Stock{}).Where("id IN ?", ids).Count(&known).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if int(known) != len(ids) {
			return apperrors.ErrStockNotFound
		}

		for _, p := range input {
			bar := models.StockPrice{
				StockID: p.StockID,
				Date:    p.Date,
				Open:    p.Open,
				High:    p.High,
				Low:     p.Low,
				Close:   p.Close,
			}
			result := tx.Where("stock_id = ? AND date = ?", bar.StockID, bar.Date).FirstOrCreate(&bar)
			if result.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
			}
			if result.RowsAffected > 0 {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if count > 0 && s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, ids); err != nil {
			logger.Get().Warnw("failed to invalidate cached prices", "error", err)
		}
	}
	return count, nil
}

func (s *stockService) attachLatestBars(ctx context.Context, stocks []models.Stock) error {
	if len(stocks) == 0 {
		return nil
	}
	ids := make([]string, len(stocks))
	for i := range stocks {
		ids[i] = stocks[i].ID
	}
	bars, err := s.prices.LatestBars(ctx, ids)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range stocks {
		if bar, ok := bars[stocks[i].ID]; ok {
			b := bar
			stocks[i].LatestPrice = &b
		}
	}
	return nil
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
