// Package bulk applies status transitions to ledger records in bulk.
package bulk

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/backoffice/internal/config"
	"github.com/heartmarshall/backoffice/internal/domain"
)

type ledgerRepo interface {
	Entity() domain.Entity
	TransitionByIDs(ctx context.Context, ids []int64, tr domain.Transition) (int, error)
	TransitionByFilter(ctx context.Context, filter domain.ListFilter, tr domain.Transition) (int, error)
}

// Service provides bulk actions over ledger collections.
type Service struct {
	repos map[domain.Entity]ledgerRepo
	cfg   config.BulkConfig
	log   *slog.Logger
}

// NewService creates a new bulk service.
func NewService(log *slog.Logger, cfg config.BulkConfig, repos ...ledgerRepo) *Service {
	s := &Service{
		repos: make(map[domain.Entity]ledgerRepo, len(repos)),
		cfg:   cfg,
		log:   log.With("service", "bulk"),
	}
	for _, r := range repos {
		s.repos[r.Entity()] = r
	}
	return s
}
