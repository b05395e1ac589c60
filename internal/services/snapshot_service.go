package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockfolio/internal/database"
	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/ledger"
	"stockfolio/internal/logger"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// snapshotService records point-in-time valuations of the portfolio.
type snapshotService struct {
	db     *gorm.DB
	prices ledger.PriceLookup
}

// NewSnapshotService creates a new SnapshotServicer valuing holdings
// through lookup.
func NewSnapshotService(db *gorm.DB, lookup ledger.PriceLookup) SnapshotServicer {
	return &snapshotService{db: db, prices: lookup}
}

// RecordSnapshot values the wallet and holdings and stores the result. A
// snapshot already stored for recordedAt is overwritten.
func (s *snapshotService) RecordSnapshot(ctx context.Context, recordedAt time.Time) (*models.PortfolioSnapshot, error) {
	snapshot, err := s.computeSnapshot(ctx, recordedAt)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var existing models.PortfolioSnapshot
	if err := db.Where("recorded_at = ?", recordedAt).First(&existing).Error; err == nil {
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"cash_balance": snapshot.CashBalance,
			"invested":     snapshot.Invested,
			"market_value": snapshot.MarketValue,
			"net_worth":    snapshot.NetWorth,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.ID = existing.ID
	} else if err := db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("portfolio snapshot recorded",
		"recorded_at", recordedAt,
		"net_worth", snapshot.NetWorth.String(),
	)
	return snapshot, nil
}

// computeSnapshot values holdings at their latest price. A holding whose
// stock has no price keeps its last cached value. The wallet and holdings
// are read under the wallet lock so no trade lands between the two reads.
func (s *snapshotService) computeSnapshot(ctx context.Context, recordedAt time.Time) (*models.PortfolioSnapshot, error) {
	var wallet models.Wallet
	var holdings []models.Holding
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.ForUpdate(tx).Order("created_at ASC").First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrWalletNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Find(&holdings).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	latest := map[string]decimal.Decimal{}
	if len(holdings) > 0 && s.prices != nil {
		ids := make([]string, len(holdings))
		for i := range holdings {
			ids[i] = holdings[i].StockID
		}
		if latest, err = s.prices.LatestPrices(ctx, ids); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	invested := decimal.Zero
	marketValue := decimal.Zero
	for _, h := range holdings {
		invested = invested.Add(h.TotalPriceBought)
		if price, ok := latest[h.StockID]; ok {
			marketValue = marketValue.Add(price.Mul(decimal.NewFromInt(h.Quantity)))
		} else {
			marketValue = marketValue.Add(h.TotalCurrentValue)
		}
	}

	return &models.PortfolioSnapshot{
		RecordedAt:  recordedAt,
		CashBalance: wallet.Balance,
		Invested:    invested,
		MarketValue: marketValue.Round(4),
		NetWorth:    wallet.Balance.Add(marketValue).Round(4),
	}, nil
}

// GetSnapshots returns paginated snapshots within a date range, newest first.
func (s *snapshotService) GetSnapshots(
	ctx context.Context,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.PortfolioSnapshot{}).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.PortfolioSnapshot
	if err := base.Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
