// Package listing serves filtered, paginated reads of admin collections.
package listing

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/backoffice/internal/config"
	"github.com/heartmarshall/backoffice/internal/domain"
)

// RelationCategory is the only populate key: an article's category.
const RelationCategory = "category"

type itemRepo interface {
	Entity() domain.Entity
	List(ctx context.Context, filter domain.ListFilter) ([]domain.OrderedItem, int, error)
}

type recordRepo interface {
	Entity() domain.Entity
	List(ctx context.Context, filter domain.ListFilter) ([]domain.LedgerRecord, int, error)
}

type categoryLoader interface {
	LoadMany(ctx context.Context, ids []int64) (map[int64]*domain.OrderedItem, error)
}

// Service provides list operations for sortable and ledger collections.
type Service struct {
	items      map[domain.Entity]itemRepo
	records    map[domain.Entity]recordRepo
	categories categoryLoader
	cfg        config.ListingConfig
	log        *slog.Logger
}

// Repos holds the repositories the service reads from, one per collection.
// Nil fields leave that collection unserved.
type Repos struct {
	Categories  itemRepo
	Articles    itemRepo
	Galleries   itemRepo
	Courses     itemRepo
	Commissions recordRepo
	Orders      recordRepo
}

// NewService creates a new listing service.
func NewService(log *slog.Logger, cfg config.ListingConfig, categories categoryLoader, repos Repos) *Service {
	var items []itemRepo
	for _, r := range []itemRepo{repos.Categories, repos.Articles, repos.Galleries, repos.Courses} {
		if r != nil {
			items = append(items, r)
		}
	}
	var records []recordRepo
	for _, r := range []recordRepo{repos.Commissions, repos.Orders} {
		if r != nil {
			records = append(records, r)
		}
	}
	return newService(log, cfg, categories, items, records)
}

// newService keys repositories by the entity they report.
func newService(
	log *slog.Logger,
	cfg config.ListingConfig,
	categories categoryLoader,
	items []itemRepo,
	records []recordRepo,
) *Service {
	s := &Service{
		items:      make(map[domain.Entity]itemRepo, len(items)),
		records:    make(map[domain.Entity]recordRepo, len(records)),
		categories: categories,
		cfg:        cfg,
		log:        log.With("service", "listing"),
	}
	for _, r := range items {
		s.items[r.Entity()] = r
	}
	for _, r := range records {
		s.records[r.Entity()] = r
	}
	return s
}

// resolveLimit turns the requested limit into the one sent to the repository.
// 0 means the default page, -1 the unbounded cap, anything else is clamped.
func (s *Service) resolveLimit(limit int) int {
	switch {
	case limit == 0:
		return s.cfg.DefaultLimit
	case limit == domain.UnboundedLimit:
		return s.cfg.UnboundedMax
	case limit > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	}
	return limit
}
