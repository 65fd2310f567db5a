package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/console/notify"
	"github.com/heartmarshall/backoffice/internal/console/reorder"
	"github.com/heartmarshall/backoffice/internal/domain"
)

func newMoveCmd(a *App) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "move <entity>",
		Short: "Move a row of a sortable collection to a new position",
		Long: `Move replays a drag gesture: it picks up the row at --from, hovers every row
on the way to --to and drops it there. Positions are 1-based and refer to the
unfiltered collection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := parseEntity(args[0], domain.Entity.IsSortable, "sortable")
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			q := listapi.Unbounded()
			resp, err := a.client.ListItems(ctx, entity, q)
			if err != nil {
				return fmt.Errorf("list %s: %s", entity, listapi.UserMessage(err))
			}
			n := len(resp.Items)
			if from < 1 || from > n || to < 1 || to > n {
				return fmt.Errorf("positions must be between 1 and %d", n)
			}
			if resp.Count > n {
				return fmt.Errorf("%s has %d rows but only %d were returned; reordering needs the whole collection", entity, resp.Count, n)
			}

			rec := notify.NewRecorder(termNotifier{w: out(cmd)})
			ctrl := reorder.New(entity, a.client, rec, a.log)
			ctrl.Load(resp.Items, q)

			src, dst := from-1, to-1
			ctrl.DragStart(src)
			step := 1
			if dst < src {
				step = -1
			}
			for i := src; i != dst; {
				i += step
				ctrl.DragOver(i)
			}
			moved := ctrl.DragEnd(ctx, src)
			ctrl.Wait()

			if errs := rec.Errors(); len(errs) > 0 {
				return fmt.Errorf("reorder %s failed", entity)
			}
			if !moved {
				fmt.Fprintln(out(cmd), mutedStyle.Render("nothing to move"))
				return nil
			}

			rec.Success(ctx, fmt.Sprintf("moved %q to position %d", resp.Items[src].Title, to))
			fmt.Fprint(out(cmd), renderItems(ctrl.Items(), resp.Count, true, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "current 1-based position")
	cmd.Flags().IntVar(&to, "to", 0, "target 1-based position")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
