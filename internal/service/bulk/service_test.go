package bulk

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/heartmarshall/backoffice/internal/config"
	"github.com/heartmarshall/backoffice/internal/domain"
)

//go:generate moq -out repo_mock_test.go -pkg bulk . ledgerRepo

func ptr[T any](v T) *T { return &v }

func newRepo(entity domain.Entity) *ledgerRepoMock {
	return &ledgerRepoMock{
		EntityFunc: func() domain.Entity { return entity },
		TransitionByIDsFunc: func(ctx context.Context, ids []int64, tr domain.Transition) (int, error) {
			return len(ids), nil
		},
		TransitionByFilterFunc: func(ctx context.Context, filter domain.ListFilter, tr domain.Transition) (int, error) {
			return 7, nil
		},
	}
}

// newTestService creates a Service capped at three selected ids.
func newTestService(t *testing.T, repos ...ledgerRepo) *Service {
	t.Helper()
	return NewService(slog.Default(), config.BulkConfig{MaxSelected: 3}, repos...)
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("expected field error on %q, got %+v", field, ve.Errors)
}

func TestApply_Selected(t *testing.T) {
	t.Parallel()

	repo := newRepo(domain.EntityCommissions)
	svc := newTestService(t, repo)

	res, err := svc.Apply(context.Background(), ApplyInput{
		Entity: domain.EntityCommissions,
		Action: domain.BulkActionPay,
		Mode:   domain.BulkModeSelected,
		IDs:    []int64{5, 7},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Affected != 2 {
		t.Errorf("Affected = %d, want 2", res.Affected)
	}
	if res.Message != "2 commissions marked as paid" {
		t.Errorf("Message = %q", res.Message)
	}

	calls := repo.TransitionByIDsCalls()
	if len(calls) != 1 {
		t.Fatalf("TransitionByIDs calls = %d, want 1", len(calls))
	}
	want := domain.Transition{From: domain.RecordStatusPending, To: domain.RecordStatusPaid}
	if calls[0].Tr != want {
		t.Errorf("transition = %+v, want %+v", calls[0].Tr, want)
	}
	if len(repo.TransitionByFilterCalls()) != 0 {
		t.Error("Selected mode must not touch the filter path")
	}
}

func TestApply_AllUsesFilter(t *testing.T) {
	t.Parallel()

	repo := newRepo(domain.EntityOrders)
	svc := newTestService(t, repo)

	res, err := svc.Apply(context.Background(), ApplyInput{
		Entity: domain.EntityOrders,
		Action: domain.BulkActionComplete,
		Mode:   domain.BulkModeAll,
		Search: ptr("acme"),
		Status: ptr("pending"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Affected != 7 {
		t.Errorf("Affected = %d, want 7", res.Affected)
	}

	calls := repo.TransitionByFilterCalls()
	if len(calls) != 1 {
		t.Fatalf("TransitionByFilter calls = %d, want 1", len(calls))
	}
	f := calls[0].Filter
	if f.Search == nil || *f.Search != "acme" || f.Status == nil || *f.Status != "pending" {
		t.Errorf("filter not forwarded: %+v", f)
	}
	if calls[0].Tr.To != domain.RecordStatusCompleted {
		t.Errorf("To = %s, want completed", calls[0].Tr.To)
	}
	if len(repo.TransitionByIDsCalls()) != 0 {
		t.Error("All mode must not send ids")
	}
}

func TestApply_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input ApplyInput
		field string
	}{
		{"sortable entity", ApplyInput{Entity: domain.EntityArticles, Action: domain.BulkActionCancel, Mode: domain.BulkModeAll}, "entity"},
		{"unknown action", ApplyInput{Entity: domain.EntityOrders, Action: "refund", Mode: domain.BulkModeAll}, "action"},
		{"unknown mode", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: "Some"}, "mode"},
		{"selected without ids", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: domain.BulkModeSelected}, "ids"},
		{"selected over cap", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: domain.BulkModeSelected, IDs: []int64{1, 2, 3, 4}}, "ids"},
		{"selected duplicate", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: domain.BulkModeSelected, IDs: []int64{1, 1}}, "ids[1]"},
		{"selected zero id", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: domain.BulkModeSelected, IDs: []int64{0}}, "ids[0]"},
		{"all with ids", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: domain.BulkModeAll, IDs: []int64{1}}, "ids"},
		{"bad status filter", ApplyInput{Entity: domain.EntityOrders, Action: domain.BulkActionCancel, Mode: domain.BulkModeAll, Status: ptr("active")}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newRepo(domain.EntityOrders)
			svc := newTestService(t, repo)

			_, err := svc.Apply(context.Background(), tt.input)
			assertValidation(t, err, tt.field)
			if len(repo.TransitionByIDsCalls())+len(repo.TransitionByFilterCalls()) != 0 {
				t.Error("invalid input must not reach the repository")
			}
		})
	}
}

func TestApply_UnsupportedAction(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newRepo(domain.EntityOrders))

	_, err := svc.Apply(context.Background(), ApplyInput{
		Entity: domain.EntityOrders,
		Action: domain.BulkActionPay,
		Mode:   domain.BulkModeAll,
	})
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestApply_UnregisteredEntity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newRepo(domain.EntityOrders))

	_, err := svc.Apply(context.Background(), ApplyInput{
		Entity: domain.EntityCommissions,
		Action: domain.BulkActionPay,
		Mode:   domain.BulkModeAll,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApply_RepoError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("db down")
	repo := newRepo(domain.EntityCommissions)
	repo.TransitionByIDsFunc = func(ctx context.Context, ids []int64, tr domain.Transition) (int, error) {
		return 0, dbErr
	}
	svc := newTestService(t, repo)

	_, err := svc.Apply(context.Background(), ApplyInput{
		Entity: domain.EntityCommissions,
		Action: domain.BulkActionCancel,
		Mode:   domain.BulkModeSelected,
		IDs:    []int64{1},
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
}
