package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashbook/ledger"
	"github.com/robinvdvleuten/cashbook/output"
	"github.com/robinvdvleuten/cashbook/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Dir       string `help:"Directory holding the per-user ledger files." default:"." type:"existingdir"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Menu    MenuCmd    `cmd:"" default:"withargs" help:"Run the interactive ledger menu."`
	Balance BalanceCmd `cmd:"" help:"Show a user's balance with income and expense totals."`
	Add     AddCmd     `cmd:"" help:"Add a record to a user's ledger."`
	Edit    EditCmd    `cmd:"" help:"Edit a record by its index."`
	Search  SearchCmd  `cmd:"" help:"Search records by category, date and/or amount."`
	Web     WebCmd     `cmd:"" help:"Serve a user's ledger over HTTP."`
	Doctor  DoctorCmd  `cmd:"" help:"Doctor utilities for debugging ledger files."`
}

// telemetryContext wires a timing collector into the returned context
// when --telemetry is set. The returned report function writes the
// collected timings to stderr and is safe to call more than once.
func (g *Globals) telemetryContext(ctx *kong.Context, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !g.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)
	rootTimer := collector.Start(name)

	var once sync.Once
	report := func() {
		once.Do(func() {
			rootTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		})
	}
	return runCtx, report
}

// openStore loads a user's ledger from the configured directory.
func openStore(runCtx context.Context, globals *Globals, username string) (*ledger.Store, error) {
	timer := telemetry.StartTimer(runCtx, "load ledger")
	defer timer.End()

	return ledger.Open(ledger.PathFor(globals.Dir, username))
}
