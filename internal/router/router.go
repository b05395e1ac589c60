// Package router assembles the gin engine: middleware, ops endpoints and
// the /api/v1 routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stockfolio/internal/handlers"
	"stockfolio/internal/ledger"
	"stockfolio/internal/middleware"
	"stockfolio/internal/services"
)

// Deps are the collaborators behind the HTTP routes.
type Deps struct {
	Ledger       services.LedgerServicer
	Prices       ledger.PriceLookup
	Stocks       services.StockServicer
	Wallet       services.WalletServicer
	Transactions services.TransactionServicer
	Watchlist    services.WatchlistServicer
	Snapshots    services.SnapshotServicer
	Audit        services.AuditServicer

	// PipelineAPIKey guards the ingestion routes. Empty disables them.
	PipelineAPIKey string
}

// New builds the router.
func New(deps Deps) *gin.Engine {
	stockHandler := handlers.NewStockHandler(deps.Stocks)
	walletHandler := handlers.NewWalletHandler(deps.Wallet, deps.Ledger, deps.Audit)
	tradeHandler := handlers.NewTradeHandler(deps.Ledger, deps.Audit)
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions)
	holdingHandler := handlers.NewHoldingHandler(deps.Ledger, deps.Prices)
	watchlistHandler := handlers.NewWatchlistHandler(deps.Watchlist, deps.Audit)
	snapshotHandler := handlers.NewSnapshotHandler(deps.Snapshots)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	stocks := v1.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.GET("/:id", stockHandler.GetStock)

	wallet := v1.Group("/wallet")
	wallet.GET("", walletHandler.GetWallet)
	wallet.POST("/deposit", walletHandler.Deposit)
	wallet.POST("/withdraw", walletHandler.Withdraw)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.POST("/buy", tradeHandler.Buy)
	transactions.POST("/sell", tradeHandler.Sell)

	holdings := v1.Group("/holdings")
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/stats", holdingHandler.GetStats)

	watchlist := v1.Group("/watchlist")
	watchlist.GET("", watchlistHandler.ListWatchlist)
	watchlist.POST("", watchlistHandler.AddToWatchlist)
	watchlist.DELETE("/:stock_id", watchlistHandler.RemoveFromWatchlist)

	snapshots := v1.Group("/snapshots")
	snapshots.GET("", snapshotHandler.GetSnapshots)
	snapshots.POST("", snapshotHandler.RecordSnapshot)

	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(deps.PipelineAPIKey))
	pipeline.POST("/stocks", stockHandler.CreateStock)
	pipeline.POST("/prices", stockHandler.RecordPrices)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
