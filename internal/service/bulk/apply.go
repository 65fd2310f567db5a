package bulk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// Result reports the outcome of a bulk action.
type Result struct {
	Affected int
	Message  string
}

// Apply runs the action against the selected ids or, in All mode, against every
// record matching the filter. Only eligible (pending) records change; the rest
// are skipped and not counted.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (Result, error) {
	if err := input.Validate(s.cfg.MaxSelected); err != nil {
		return Result{}, err
	}

	tr, ok := domain.TransitionFor(input.Entity, input.Action)
	if !ok {
		return Result{}, fmt.Errorf("%s cannot %s: %w", input.Entity, input.Action, domain.ErrUnsupported)
	}

	repo, ok := s.repos[input.Entity]
	if !ok {
		return Result{}, fmt.Errorf("%s: %w", input.Entity, domain.ErrNotFound)
	}

	var (
		affected int
		err      error
	)
	if input.Mode == domain.BulkModeSelected {
		affected, err = repo.TransitionByIDs(ctx, input.IDs, tr)
	} else {
		affected, err = repo.TransitionByFilter(ctx, input.filter(), tr)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", input.Action, input.Entity, err)
	}

	s.log.InfoContext(ctx, "bulk action applied",
		slog.String("entity", input.Entity.String()),
		slog.String("action", input.Action.String()),
		slog.String("mode", input.Mode.String()),
		slog.Int("requested", len(input.IDs)),
		slog.Int("affected", affected),
	)

	return Result{
		Affected: affected,
		Message:  fmt.Sprintf("%d %s marked as %s", affected, input.Entity, tr.To),
	}, nil
}
