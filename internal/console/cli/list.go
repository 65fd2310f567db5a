package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/domain"
)

type listFlags struct {
	search   string
	status   string
	sort     string
	limit    int
	page     int
	category int64
	populate []string
}

func (f listFlags) query() listapi.Query {
	return listapi.Query{
		Search:     f.search,
		Status:     f.status,
		Sort:       f.sort,
		CategoryID: f.category,
		Populate:   f.populate,
		Limit:      f.limit,
		Page:       f.page,
	}
}

func newListCmd(a *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "List a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := parseEntity(args[0], nil, "")
			if err != nil {
				return err
			}
			return a.printList(cmd.Context(), cmd, entity, f.query())
		},
	}

	cmd.Flags().StringVar(&f.search, "search", "", "full-text filter")
	cmd.Flags().StringVar(&f.status, "status", "", "status filter")
	cmd.Flags().StringVar(&f.sort, "sort", "", `sort as "field" or "field:asc|desc"`)
	cmd.Flags().IntVar(&f.limit, "limit", 0, "page size, -1 for the whole collection")
	cmd.Flags().IntVar(&f.page, "page", 0, "1-based page number")
	cmd.Flags().Int64Var(&f.category, "category", 0, "category id (articles)")
	cmd.Flags().StringSliceVar(&f.populate, "populate", nil, "relations to include (category)")
	return cmd
}

func (a *App) printList(ctx context.Context, cmd *cobra.Command, entity domain.Entity, q listapi.Query) error {
	if entity.IsSortable() {
		resp, err := a.client.ListItems(ctx, entity, q)
		if err != nil {
			return fmt.Errorf("list %s: %s", entity, listapi.UserMessage(err))
		}
		fmt.Fprint(out(cmd), renderItems(resp.Items, resp.Count, q.IsSortable(), time.Now()))
		return nil
	}

	resp, err := a.client.ListRecords(ctx, entity, q)
	if err != nil {
		return fmt.Errorf("list %s: %s", entity, listapi.UserMessage(err))
	}
	fmt.Fprint(out(cmd), renderRecords(resp.Items, resp.Count, nil, time.Now()))
	return nil
}
