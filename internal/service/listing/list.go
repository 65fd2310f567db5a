package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// ListItems returns a page of a sortable collection and the total match count.
// A limit of -1 returns the whole collection up to the unbounded cap.
func (s *Service) ListItems(ctx context.Context, input ListInput) ([]domain.OrderedItem, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	repo, ok := s.items[input.Entity]
	if !ok {
		return nil, 0, domain.NewValidationError("entity", fmt.Sprintf("%s is not a sortable collection", input.Entity))
	}

	limit := s.resolveLimit(input.Limit)
	filter := input.filter(limit)
	items, total, err := repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", input.Entity, err)
	}

	if input.Limit == domain.UnboundedLimit && total > len(items)+filter.Offset {
		s.log.WarnContext(ctx, "unbounded list truncated",
			slog.String("entity", input.Entity.String()),
			slog.Int("total", total),
			slog.Int("cap", limit),
		)
	}

	if filter.Populates(RelationCategory) {
		if err := s.populateCategories(ctx, items); err != nil {
			return nil, 0, err
		}
	}

	return items, total, nil
}

// ListRecords returns a page of a ledger collection and the total match count.
func (s *Service) ListRecords(ctx context.Context, input ListInput) ([]domain.LedgerRecord, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	repo, ok := s.records[input.Entity]
	if !ok {
		return nil, 0, domain.NewValidationError("entity", fmt.Sprintf("%s is not a ledger collection", input.Entity))
	}

	records, total, err := repo.List(ctx, input.filter(s.resolveLimit(input.Limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", input.Entity, err)
	}

	return records, total, nil
}

func (s *Service) populateCategories(ctx context.Context, items []domain.OrderedItem) error {
	seen := make(map[int64]bool)
	var ids []int64
	for _, it := range items {
		if it.CategoryID != nil && !seen[*it.CategoryID] {
			seen[*it.CategoryID] = true
			ids = append(ids, *it.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cats, err := s.categories.LoadMany(ctx, ids)
	if err != nil {
		return fmt.Errorf("populate categories: %w", err)
	}

	for i := range items {
		if items[i].CategoryID != nil {
			items[i].Category = cats[*items[i].CategoryID]
		}
	}
	return nil
}
