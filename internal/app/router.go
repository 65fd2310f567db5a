package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/backoffice/internal/adapter/postgres/collection"
	"github.com/heartmarshall/backoffice/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/backoffice/internal/config"
	"github.com/heartmarshall/backoffice/internal/domain"
	"github.com/heartmarshall/backoffice/internal/service/bulk"
	"github.com/heartmarshall/backoffice/internal/service/listing"
	"github.com/heartmarshall/backoffice/internal/service/ordering"
	"github.com/heartmarshall/backoffice/internal/transport/dataloader"
	"github.com/heartmarshall/backoffice/internal/transport/middleware"
	"github.com/heartmarshall/backoffice/internal/transport/rest"
)

// NewHandler builds the full HTTP handler: repositories, services, handlers
// and the middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	// Infrastructure.
	txm := postgres.NewTxManager(pool)

	// Repositories.
	categories := collection.New(pool, domain.EntityCategories)
	articles := collection.New(pool, domain.EntityArticles)
	galleries := collection.New(pool, domain.EntityGalleries)
	courses := collection.New(pool, domain.EntityCourses)
	commissions := ledger.New(pool, domain.EntityCommissions)
	orders := ledger.New(pool, domain.EntityOrders)

	// Services.
	listService := listing.NewService(logger, cfg.Listing, dataloader.NewCategoryResolver(categories), listing.Repos{
		Categories:  categories,
		Articles:    articles,
		Galleries:   galleries,
		Courses:     courses,
		Commissions: commissions,
		Orders:      orders,
	})
	orderingService := ordering.NewService(logger, txm, categories, articles, galleries, courses)
	bulkService := bulk.NewService(logger, cfg.Bulk, commissions, orders)

	// Handlers.
	listHandler := rest.NewListHandler(listService, logger)
	reorderHandler := rest.NewReorderHandler(orderingService, logger)
	bulkHandler := rest.NewBulkHandler(bulkService, logger)
	healthHandler := rest.NewHealthHandler(pool, Version)

	reads := middleware.Middleware(dataloader.Middleware(&dataloader.Repos{Category: categories}))
	writes := limiter.Limit(cfg.Server.MutationsPerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /api/{entity}", reads(http.HandlerFunc(listHandler.List)))
	mux.Handle("POST /api/{entity}/bulk-update-sort", writes(http.HandlerFunc(reorderHandler.BulkUpdateSort)))
	mux.Handle("POST /api/{entity}/bulk-update/{action}", writes(http.HandlerFunc(bulkHandler.BulkUpdate)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
