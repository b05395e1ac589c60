package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/prices"
)

type watchlistService struct {
	db     *gorm.DB
	prices *prices.Store
}

// NewWatchlistService creates a new WatchlistServicer.
func NewWatchlistService(db *gorm.DB) WatchlistServicer {
	return &watchlistService{db: db, prices: prices.NewStore(db)}
}

// ListWatchlist returns every entry, most recently added first, with the
// stock's latest bar.
func (s *watchlistService) ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := s.db.WithContext(ctx).Preload("Stock").Order("added_at DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]string, len(entries))
	for i := range entries {
		ids[i] = entries[i].StockID
	}
	bars, err := s.prices.LatestBars(ctx, ids)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range entries {
		if bar, ok := bars[entries[i].StockID]; ok {
			b := bar
			entries[i].Stock.LatestPrice = &b
		}
	}
	return entries, nil
}

// AddToWatchlist starts watching a stock. A stock can be watched once.
func (s *watchlistService) AddToWatchlist(ctx context.Context, stockID string) (*models.WatchlistEntry, error) {
	db := s.db.WithContext(ctx)

	var stock models.Stock
	if err := db.Where("id = ?", stockID).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var existing int64
	if err := db.Model(&models.WatchlistEntry{}).Where("stock_id = ?", stockID).Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrWatchlistDuplicate
	}

	entry := &models.WatchlistEntry{StockID: stock.ID, StockName: stock.Name}
	if err := db.Omit(clause.Associations).Create(entry).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrWatchlistDuplicate
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entry.Stock = stock
	return entry, nil
}

// RemoveFromWatchlist stops watching a stock.
func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, stockID string) error {
	result := s.db.WithContext(ctx).Where("stock_id = ?", stockID).Delete(&models.WatchlistEntry{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrWatchlistNotFound
	}
	return nil
}
