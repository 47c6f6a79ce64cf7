package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashbook/ledger"
	"github.com/robinvdvleuten/cashbook/web"
)

type WebCmd struct {
	Username string `help:"Ledger owner." arg:""`
	Port     int    `help:"Port to listen on." default:"8080"`
	Create   bool   `help:"Automatically create the ledger file if it doesn't exist (no confirmation prompt)." short:"c"`
	ReadOnly bool   `help:"Enable read-only mode (no write operations allowed)." short:"r"`
	NoWatch  bool   `help:"Disable the file watcher and live reload events."`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.telemetryContext(ctx, fmt.Sprintf("web %s:%d", cmd.Username, cmd.Port))
	defer report()

	ledgerFile, err := filepath.Abs(ledger.PathFor(globals.Dir, cmd.Username))
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(ledgerFile); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access file: %w", err)
		}

		shouldCreate := cmd.Create
		if !shouldCreate {
			confirmed, err := promptYesNo(ctx, fmt.Sprintf("Ledger %q does not exist. Create it?", ledgerFile))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			shouldCreate = confirmed
		}
		if !shouldCreate {
			return fmt.Errorf("ledger does not exist: %s", ledgerFile)
		}

		store, err := ledger.Open(ledgerFile)
		if err != nil {
			return err
		}
		if err := store.Save(); err != nil {
			return err
		}

		printInfof(ctx.Stdout, "Created empty ledger file: %s", pathStyle.Render(ledgerFile))
	}

	server := web.New(cmd.Port, ledgerFile)
	server.ReadOnly = cmd.ReadOnly
	server.WatchEnabled = !cmd.NoWatch
	server.Version = Version

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving ledger: %s", pathStyle.Render(ledgerFile))

	if cmd.ReadOnly {
		printInfof(ctx.Stdout, "Server running in READ-ONLY mode")
	}

	return server.Start(runCtx)
}
