package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// ---------------------------------------------------------------------------
// Category by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newCategoryBatchFn(repo categoryRepo) dataloader.BatchFunc[int64, *domain.OrderedItem] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.OrderedItem] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.OrderedItem](len(keys), err)
		}

		byID := make(map[int64]*domain.OrderedItem, len(rows))
		for i := range rows {
			c := rows[i] // copy to avoid aliasing
			byID[c.ID] = &c
		}

		return mapResults(keys, byID, nilValue[*domain.OrderedItem])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, found map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[V any]() V {
	var zero V
	return zero
}
