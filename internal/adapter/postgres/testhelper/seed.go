package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItems inserts one active item per title into the table of a sortable
// entity, with sort ranks 1..N in the given order. Returns the persisted items.
func SeedItems(t *testing.T, pool *pgxpool.Pool, entity domain.Entity, titles ...string) []domain.OrderedItem {
	t.Helper()
	ctx := context.Background()

	items := make([]domain.OrderedItem, 0, len(titles))
	for i, title := range titles {
		it := domain.OrderedItem{
			Title:  title,
			Slug:   fmt.Sprintf("%s-%s", title, uniqueSuffix()),
			Status: domain.ItemStatusActive,
			Sort:   i + 1,
		}
		err := pool.QueryRow(ctx,
			fmt.Sprintf(`INSERT INTO %s (title, slug, status, sort) VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at, updated_at`, entity),
			it.Title, it.Slug, string(it.Status), it.Sort,
		).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			t.Fatalf("testhelper: SeedItems insert %s[%d]: %v", entity, i, err)
		}
		items = append(items, it)
	}
	return items
}

// SetItem overrides sort, status and category of an already seeded item.
func SetItem(t *testing.T, pool *pgxpool.Pool, entity domain.Entity, id int64, sort int, status domain.ItemStatus, categoryID *int64) {
	t.Helper()

	sql := fmt.Sprintf(`UPDATE %s SET sort = $2, status = $3 WHERE id = $1`, entity)
	args := []any{id, sort, string(status)}
	if entity == domain.EntityArticles {
		sql = `UPDATE articles SET sort = $2, status = $3, category_id = $4 WHERE id = $1`
		args = append(args, categoryID)
	}
	if _, err := pool.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("testhelper: SetItem %s %d: %v", entity, id, err)
	}
}

// SeedRecord inserts a ledger record with the given status and amount.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, entity domain.Entity, customer string, status domain.RecordStatus, amountCents int64) domain.LedgerRecord {
	t.Helper()

	rec := domain.LedgerRecord{
		Reference:    "REF-" + uniqueSuffix(),
		CustomerName: customer,
		AmountCents:  amountCents,
		Status:       status,
	}
	err := pool.QueryRow(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (reference, customer_name, amount_cents, status)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`, entity),
		rec.Reference, rec.CustomerName, rec.AmountCents, string(rec.Status),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert %s: %v", entity, err)
	}
	return rec
}

// Sorts returns id → sort for every row of a sortable table.
func Sorts(t *testing.T, pool *pgxpool.Pool, entity domain.Entity) map[int64]int {
	t.Helper()

	rows, err := pool.Query(context.Background(), fmt.Sprintf(`SELECT id, sort FROM %s`, entity))
	if err != nil {
		t.Fatalf("testhelper: Sorts %s: %v", entity, err)
	}
	defer rows.Close()

	out := make(map[int64]int)
	for rows.Next() {
		var (
			id   int64
			sort int
		)
		if err := rows.Scan(&id, &sort); err != nil {
			t.Fatalf("testhelper: Sorts scan: %v", err)
		}
		out[id] = sort
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: Sorts rows: %v", err)
	}
	return out
}

// Statuses returns id → status for every row of a ledger table.
func Statuses(t *testing.T, pool *pgxpool.Pool, entity domain.Entity) map[int64]domain.RecordStatus {
	t.Helper()

	rows, err := pool.Query(context.Background(), fmt.Sprintf(`SELECT id, status FROM %s`, entity))
	if err != nil {
		t.Fatalf("testhelper: Statuses %s: %v", entity, err)
	}
	defer rows.Close()

	out := make(map[int64]domain.RecordStatus)
	for rows.Next() {
		var (
			id     int64
			status string
		)
		if err := rows.Scan(&id, &status); err != nil {
			t.Fatalf("testhelper: Statuses scan: %v", err)
		}
		out[id] = domain.RecordStatus(status)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: Statuses rows: %v", err)
	}
	return out
}
