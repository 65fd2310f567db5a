package ordering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// Reorder replaces the sort ranks of a whole collection.
// The request must name every row of the collection exactly once; a stale
// or partial list fails with domain.ErrConflict and changes nothing.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	repo, ok := s.collections[input.Entity]
	if !ok {
		return 0, fmt.Errorf("%s: %w", input.Entity, domain.ErrNotFound)
	}

	var updated int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := repo.IDs(txCtx)
		if err != nil {
			return fmt.Errorf("get %s ids: %w", input.Entity, err)
		}

		if err := sameIDSet(current, input.Items); err != nil {
			return fmt.Errorf("reorder %s: %w", input.Entity, err)
		}

		updated, err = repo.BulkUpdateSort(txCtx, input.Items)
		if err != nil {
			return fmt.Errorf("update %s sort: %w", input.Entity, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "collection reordered",
		slog.String("entity", input.Entity.String()),
		slog.Int("items", updated),
	)

	return updated, nil
}

// Compact renumbers a collection to contiguous ranks 1..N keeping its order.
func (s *Service) Compact(ctx context.Context, entity domain.Entity) (int, error) {
	repo, ok := s.collections[entity]
	if !ok {
		return 0, fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	var changed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Lock the rows so a concurrent reorder waits for the renumbering.
		if _, err := repo.IDs(txCtx); err != nil {
			return fmt.Errorf("lock %s: %w", entity, err)
		}
		var err error
		changed, err = repo.Compact(txCtx)
		if err != nil {
			return fmt.Errorf("compact %s: %w", entity, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "collection compacted",
		slog.String("entity", entity.String()),
		slog.Int("changed", changed),
	)

	return changed, nil
}

func sameIDSet(current []int64, items []domain.ReorderItem) error {
	if len(current) != len(items) {
		return fmt.Errorf("%w: got %d items, collection has %d", domain.ErrConflict, len(items), len(current))
	}
	known := make(map[int64]bool, len(current))
	for _, id := range current {
		known[id] = true
	}
	for _, it := range items {
		if !known[it.ID] {
			return fmt.Errorf("%w: id %d is not in the collection", domain.ErrConflict, it.ID)
		}
	}
	return nil
}
