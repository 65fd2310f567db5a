// Package ledger implements persistence for status-bearing records
// (commissions, orders) using PostgreSQL.
package ledger

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

var columns = []string{
	"id", "reference", "customer_name", "amount_cents", "status", "settled_at", "created_at", "updated_at",
}

// Repo provides ledger record persistence for one table.
type Repo struct {
	pool   *pgxpool.Pool
	entity domain.Entity
}

// New creates a repository bound to the table of a ledger entity.
// It panics on a non-ledger entity: the table name is interpolated into SQL.
func New(pool *pgxpool.Pool, entity domain.Entity) *Repo {
	if !entity.IsLedger() {
		panic(fmt.Sprintf("ledger: %q is not a ledger entity", entity))
	}
	return &Repo{pool: pool, entity: entity}
}

// Entity returns the collection the repository is bound to.
func (r *Repo) Entity() domain.Entity { return r.entity }

func (r *Repo) table() string { return string(r.entity) }

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns records matching the filter, newest first by default, and the
// total number of matches. A non-positive Limit returns every match.
func (r *Repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.LedgerRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := conditions(filter)

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
		Select(columns...).
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

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, r.table(), nil)
	}

	return records, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// TransitionByIDs moves the listed records from tr.From to tr.To.
// Records in any other status are left alone. Returns the number changed.
func (r *Repo) TransitionByIDs(ctx context.Context, ids []int64, tr domain.Transition) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.transition(ctx, squirrel.Expr("id = ANY(?)", ids), tr)
}

// TransitionByFilter moves every record matching the filter from tr.From to
// tr.To. Pagination fields of the filter are ignored. Returns the number changed.
func (r *Repo) TransitionByFilter(ctx context.Context, filter domain.ListFilter, tr domain.Transition) (int, error) {
	return r.transition(ctx, conditions(filter), tr)
}

func (r *Repo) transition(ctx context.Context, target squirrel.Sqlizer, tr domain.Transition) (int, error) {
	ub := postgres.Builder().
		Update(r.table()).
		Set("status", string(tr.To)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(target).
		Where(squirrel.Eq{"status": string(tr.From)})
	if tr.To != domain.RecordStatusCancelled {
		ub = ub.Set("settled_at", squirrel.Expr("now()"))
	}

	sql, args, err := ub.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build transition %s: %w", r.table(), err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.table(), nil)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func conditions(f domain.ListFilter) squirrel.And {
	where := squirrel.And{}
	if f.Search != nil && *f.Search != "" {
		pattern := postgres.SearchPattern(*f.Search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"reference": pattern},
			squirrel.ILike{"customer_name": pattern},
		})
	}
	if f.Status != nil && *f.Status != "" {
		where = append(where, squirrel.Eq{"status": *f.Status})
	}
	return where
}

func orderBy(f domain.ListFilter) []string {
	field := f.SortBy
	if field == "" || !slices.Contains(domain.SortFieldsFor(domain.EntityOrders), field) {
		return []string{"created_at DESC", "id DESC"}
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

func scanRecords(rows pgx.Rows) ([]domain.LedgerRecord, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerRecord, error) {
		var (
			rec       domain.LedgerRecord
			status    string
			settledAt pgtype.Timestamptz
		)
		if err := row.Scan(&rec.ID, &rec.Reference, &rec.CustomerName, &rec.AmountCents,
			&status, &settledAt, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return rec, err
		}
		rec.Status = domain.RecordStatus(status)
		if settledAt.Valid {
			t := settledAt.Time
			rec.SettledAt = &t
		}
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.LedgerRecord{}
	}
	return records, nil
}
