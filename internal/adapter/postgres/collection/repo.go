// Package collection implements persistence for sortable collections
// (categories, articles, galleries, courses) using PostgreSQL.
// All four tables share one layout, so a Repo is bound to a table at construction.
package collection

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/backoffice/internal/domain"
)

// Repo provides ordered item persistence for one sortable table.
type Repo struct {
	pool   *pgxpool.Pool
	entity domain.Entity
}

// New creates a repository bound to the table of a sortable entity.
// It panics on a non-sortable entity: the table name is interpolated into SQL.
func New(pool *pgxpool.Pool, entity domain.Entity) *Repo {
	if !entity.IsSortable() {
		panic(fmt.Sprintf("collection: %q is not a sortable entity", entity))
	}
	return &Repo{pool: pool, entity: entity}
}

// Entity returns the collection the repository is bound to.
func (r *Repo) Entity() domain.Entity { return r.entity }

func (r *Repo) table() string { return string(r.entity) }

func (r *Repo) columns() []string {
	category := "NULL::bigint AS category_id"
	if r.entity == domain.EntityArticles {
		category = "category_id"
	}
	return []string{"id", "title", "slug", "status", "sort", category, "created_at", "updated_at"}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns items matching the filter and the total number of matches.
// A non-positive Limit returns every match; callers cap it beforehand.
func (r *Repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.OrderedItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := r.conditions(filter)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From(r.table()).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count %s: %w", r.table(), err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, r.table(), nil)
	}

	sb := postgres.Builder().
		Select(r.columns()...).
		From(r.table()).
		Where(where).
		OrderBy(orderBy(filter)...)
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sb = sb.Offset(uint64(filter.Offset))
	}

	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list %s: %w", r.table(), err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, r.table(), nil)
	}

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, r.table(), nil)
	}

	return items, total, nil
}

// GetByIDs returns the items with the given IDs in unspecified order.
// Missing IDs are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.OrderedItem, error) {
	if len(ids) == 0 {
		return []domain.OrderedItem{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(r.columns()...).
		From(r.table()).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", r.table(), err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, r.table(), nil)
	}

	items, err := scanItems(rows)
	if err != nil {
		return nil, postgres.MapError(err, r.table(), nil)
	}
	return items, nil
}

// IDs returns every ID of the collection in display order and locks the rows
// for the rest of the surrounding transaction.
func (r *Repo) IDs(ctx context.Context) ([]int64, error) {
	sql := fmt.Sprintf(`SELECT id FROM %s ORDER BY sort, id FOR UPDATE`, r.table())

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql)
	if err != nil {
		return nil, postgres.MapError(err, r.table(), nil)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, postgres.MapError(err, r.table(), nil)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// bulkUpdateSortSQL writes every rank in one statement.
const bulkUpdateSortSQL = `
UPDATE %s AS t
SET sort = v.sort, updated_at = now()
FROM unnest($1::bigint[], $2::int[]) AS v(id, sort)
WHERE t.id = v.id`

// BulkUpdateSort assigns the given ranks and returns the number of rows updated.
// IDs that do not exist are ignored.
func (r *Repo) BulkUpdateSort(ctx context.Context, items []domain.ReorderItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	ids := make([]int64, len(items))
	sorts := make([]int32, len(items))
	for i, it := range items {
		ids[i] = it.ID
		sorts[i] = int32(it.Sort)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).
		Exec(ctx, fmt.Sprintf(bulkUpdateSortSQL, r.table()), ids, sorts)
	if err != nil {
		return 0, postgres.MapError(err, r.table(), nil)
	}

	return int(tag.RowsAffected()), nil
}

// compactSQL renumbers ranks to 1..N following the current (sort, id) order.
const compactSQL = `
UPDATE %[1]s AS t
SET sort = r.rn, updated_at = now()
FROM (SELECT id, row_number() OVER (ORDER BY sort, id) AS rn FROM %[1]s) AS r
WHERE t.id = r.id AND t.sort <> r.rn`

// Compact makes ranks contiguous and returns the number of rows changed.
func (r *Repo) Compact(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, fmt.Sprintf(compactSQL, r.table()))
	if err != nil {
		return 0, postgres.MapError(err, r.table(), nil)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func (r *Repo) conditions(f domain.ListFilter) squirrel.And {
	where := squirrel.And{}
	if f.Search != nil && *f.Search != "" {
		pattern := postgres.SearchPattern(*f.Search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"slug": pattern},
		})
	}
	if f.Status != nil && *f.Status != "" {
		where = append(where, squirrel.Eq{"status": *f.Status})
	}
	if f.CategoryID != nil && r.entity == domain.EntityArticles {
		where = append(where, squirrel.Eq{"category_id": *f.CategoryID})
	}
	return where
}

// orderBy always ends with id so pages are stable.
func orderBy(f domain.ListFilter) []string {
	field := f.SortBy
	if field == "" || !slices.Contains(domain.SortFieldsFor(domain.EntityCategories), field) {
		field = "sort"
	}
	dir := postgres.SortDirection(f.SortOrder)
	if field == "id" {
		return []string{"id " + dir}
	}
	return []string{field + " " + dir, "id " + dir}
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItems(rows pgx.Rows) ([]domain.OrderedItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrderedItem, error) {
		var (
			it         domain.OrderedItem
			status     string
			categoryID pgtype.Int8
		)
		if err := row.Scan(&it.ID, &it.Title, &it.Slug, &status, &it.Sort, &categoryID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return it, err
		}
		it.Status = domain.ItemStatus(status)
		if categoryID.Valid {
			id := categoryID.Int64
			it.CategoryID = &id
		}
		return it, nil
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.OrderedItem{}
	}
	return items, nil
}
