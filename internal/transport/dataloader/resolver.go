package dataloader

import (
	"context"
	"errors"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// CategoryResolver resolves article categories for the listing service. It
// batches through the request's loaders when Middleware installed them and
// queries the repository directly otherwise.
type CategoryResolver struct {
	repo categoryRepo
}

// NewCategoryResolver creates a resolver with a repository fallback.
func NewCategoryResolver(repo categoryRepo) *CategoryResolver {
	return &CategoryResolver{repo: repo}
}

// LoadMany returns the categories found for ids, keyed by ID. Unknown IDs are
// absent from the map.
func (r *CategoryResolver) LoadMany(ctx context.Context, ids []int64) (map[int64]*domain.OrderedItem, error) {
	out := make(map[int64]*domain.OrderedItem, len(ids))

	loaders, ok := lookup(ctx)
	if !ok {
		rows, err := r.repo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			c := rows[i]
			out[c.ID] = &c
		}
		return out, nil
	}

	values, errs := loaders.CategoryByID.LoadMany(ctx, ids)()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	for i, id := range ids {
		if values[i] != nil {
			out[id] = values[i]
		}
	}
	return out, nil
}
