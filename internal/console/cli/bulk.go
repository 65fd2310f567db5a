package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/backoffice/internal/console/bulk"
	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/console/notify"
	"github.com/heartmarshall/backoffice/internal/console/selection"
	"github.com/heartmarshall/backoffice/internal/domain"
)

var errAborted = errors.New("aborted")

func newBulkCmd(a *App) *cobra.Command {
	var (
		ids    []int64
		search string
		status string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "bulk <entity> <action>",
		Short: "Apply pay, cancel or complete to selected or all matching records",
		Long: `Without --ids the action applies to every record matching --search and
--status on the server. With --ids only those records are selected; records
that are not pending cannot be selected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := parseEntity(args[0], domain.Entity.IsLedger, "ledger")
			if err != nil {
				return err
			}
			action := domain.BulkAction(strings.ToLower(args[1]))
			if _, ok := domain.TransitionFor(entity, action); !ok {
				return fmt.Errorf("%s does not support %q", entity, args[1])
			}

			ctx := cmd.Context()
			q := listapi.Query{Search: search, Status: status}
			store := selection.NewStore(a.cfg.MaxSelected, nil)

			matching, err := a.selectRecords(ctx, entity, q, ids, store)
			if err != nil {
				return err
			}

			rec := notify.NewRecorder(termNotifier{w: out(cmd)})
			refresh := bulk.RefreshFunc(func(ctx context.Context, q listapi.Query) error {
				resp, err := a.client.ListRecords(ctx, entity, q)
				if err != nil {
					return err
				}
				fmt.Fprint(out(cmd), renderRecords(resp.Items, resp.Count, nil, time.Now()))
				return nil
			})
			ctrl := bulk.New(entity, action, a.client, store, rec, refresh, a.log)

			conf := ctrl.Prepare(q, matching)
			fmt.Fprintln(out(cmd), renderConfirmation(entity, action, conf))
			if !conf.Enabled {
				return fmt.Errorf("no %s to %s", entity, action)
			}
			if !yes {
				ok, err := confirm(cmd.InOrStdin(), out(cmd))
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}

			if _, err := ctrl.Confirm(ctx, conf); err != nil {
				return fmt.Errorf("%s %s failed", entity, action)
			}
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "record ids to select (comma-separated)")
	cmd.Flags().StringVar(&search, "search", "", "filter for All mode")
	cmd.Flags().StringVar(&status, "status", "", "status filter for All mode")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// selectRecords returns the number of records q matches and, when ids are
// given, selects them in store the way a user would tick their checkboxes.
func (a *App) selectRecords(ctx context.Context, entity domain.Entity, q listapi.Query, ids []int64, store *selection.Store) (int, error) {
	if len(ids) == 0 {
		probe := q
		probe.Limit = 1
		resp, err := a.client.ListRecords(ctx, entity, probe)
		if err != nil {
			return 0, fmt.Errorf("list %s: %s", entity, listapi.UserMessage(err))
		}
		return resp.Count, nil
	}

	view := q
	view.Limit = domain.UnboundedLimit
	resp, err := a.client.ListRecords(ctx, entity, view)
	if err != nil {
		return 0, fmt.Errorf("list %s: %s", entity, listapi.UserMessage(err))
	}

	rows := make(map[int64]listapi.Record, len(resp.Items))
	for _, r := range resp.Items {
		rows[r.ID] = r
	}
	for _, id := range ids {
		row, ok := rows[id]
		if !ok {
			return 0, fmt.Errorf("%s %d not found", entity, id)
		}
		if store.Has(id) {
			continue
		}
		if err := store.Toggle(row); err != nil {
			return 0, fmt.Errorf("select %s %d: %w", entity, id, err)
		}
	}
	return resp.Count, nil
}

func renderConfirmation(entity domain.Entity, action domain.BulkAction, conf bulk.Confirmation) string {
	var target string
	if conf.Mode == domain.BulkModeSelected {
		target = fmt.Sprintf("%d selected %s", conf.Count, entity)
	} else {
		target = fmt.Sprintf("all %d %s", conf.Count, entity)
		if f := conf.Query.Filter().Encode(); f != "" {
			target += " matching " + f
		}
	}

	body := fmt.Sprintf("%s %s\nmode: %s", warnStyle.Render(strings.ToUpper(action.String())), target, conf.Mode)
	return boxStyle.Render(body)
}

func confirm(in io.Reader, w io.Writer) (bool, error) {
	fmt.Fprint(w, "Proceed? [y/N] ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
