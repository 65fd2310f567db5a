// Command resort renumbers the sort ranks of every sortable collection to a
// contiguous 1..N, keeping the current order. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/backoffice/internal/adapter/postgres/collection"
	"github.com/heartmarshall/backoffice/internal/app"
	"github.com/heartmarshall/backoffice/internal/config"
	"github.com/heartmarshall/backoffice/internal/domain"
	"github.com/heartmarshall/backoffice/internal/service/ordering"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := ordering.NewService(logger, postgres.NewTxManager(pool),
		collection.New(pool, domain.EntityCategories),
		collection.New(pool, domain.EntityArticles),
		collection.New(pool, domain.EntityGalleries),
		collection.New(pool, domain.EntityCourses),
	)

	failed := false
	for _, e := range domain.SortableEntities() {
		n, err := svc.Compact(ctx, e)
		if err != nil {
			logger.Error("resort failed", slog.String("entity", e.String()), slog.String("error", err.Error()))
			failed = true
			continue
		}
		logger.Info("resort completed", slog.String("entity", e.String()), slog.Int("rows", n))
	}

	if failed {
		os.Exit(1)
	}
}
