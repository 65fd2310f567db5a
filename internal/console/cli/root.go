// Package cli implements the back-office console: list views, drag-style
// reordering and bulk actions driven against the list API.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/backoffice/internal/app"
	"github.com/heartmarshall/backoffice/internal/config"
	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/domain"
)

// App carries flags and the dependencies built from them.
type App struct {
	BaseURL string
	Verbose bool
	NoColor bool

	cfg    *config.ConsoleConfig
	log    *slog.Logger
	client *listapi.Client
}

// NewRootCmd builds the console command tree.
func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:          "console",
		Short:        "Back-office console for sortable collections and ledger bulk actions",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Show the first page of pending commissions
  console list commissions --status pending

  # Move the third category to the top
  console move categories --from 3 --to 1

  # Mark two commissions as paid
  console bulk commissions pay --ids 5,7 --yes
`),
	}

	cmd.PersistentFlags().StringVar(&a.BaseURL, "base-url", "", "list API base URL (overrides console.base_url)")
	cmd.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "log API calls")
	cmd.PersistentFlags().BoolVar(&a.NoColor, "no-color", false, "disable styled output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}

	cmd.AddCommand(
		newListCmd(a),
		newMoveCmd(a),
		newBulkCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *App) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.LoadConsole()
	if err != nil {
		return err
	}
	if a.BaseURL != "" {
		cfg.BaseURL = a.BaseURL
	}
	a.cfg = cfg

	level := "warn"
	if a.Verbose {
		level = "debug"
	}
	a.log = app.NewLogger(config.LogConfig{Level: level, Format: "text"})
	a.client = listapi.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, a.log)

	if a.NoColor {
		disableColor()
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the console version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return err
		},
	}
}

// parseEntity validates the entity argument against the wanted kind.
func parseEntity(arg string, want func(domain.Entity) bool, kind string) (domain.Entity, error) {
	e := domain.Entity(strings.ToLower(strings.TrimSpace(arg)))
	if !e.IsValid() {
		return "", fmt.Errorf("unknown collection %q", arg)
	}
	if want != nil && !want(e) {
		return "", fmt.Errorf("%s is not a %s collection", e, kind)
	}
	return e, nil
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
