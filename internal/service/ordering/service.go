// Package ordering persists user-defined display order of sortable collections.
package ordering

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// MaxReorderItems bounds one reorder request.
const MaxReorderItems = 5000

type collectionRepo interface {
	Entity() domain.Entity
	IDs(ctx context.Context) ([]int64, error)
	BulkUpdateSort(ctx context.Context, items []domain.ReorderItem) (int, error)
	Compact(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides reorder and compaction of sortable collections.
type Service struct {
	collections map[domain.Entity]collectionRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new ordering service. Repositories are keyed by the
// entity they report.
func NewService(
	log *slog.Logger,
	tx txManager,
	collections ...collectionRepo,
) *Service {
	s := &Service{
		collections: make(map[domain.Entity]collectionRepo, len(collections)),
		tx:          tx,
		log:         log.With("service", "ordering"),
	}
	for _, c := range collections {
		s.collections[c.Entity()] = c
	}
	return s
}
