package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/cashbook/ledger"
)

// DoctorCmd provides doctor utilities for debugging ledger files.
type DoctorCmd struct {
	Dump DumpCmd `cmd:"" help:"Dump a user's records as the store parses them."`
	Path PathCmd `cmd:"" help:"Print the resolved ledger file path for a user."`
}

// DumpCmd prints the parsed record sequence, which is handy when a
// ledger file behaves unexpectedly: what you see is exactly what the
// store loaded.
type DumpCmd struct {
	Username string `help:"Ledger owner." arg:""`
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	store, err := ledger.Open(ledger.PathFor(globals.Dir, cmd.Username))
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(store.Records())

	return nil
}

// PathCmd prints where the ledger file for a user lives.
type PathCmd struct {
	Username string `help:"Ledger owner." arg:""`
}

// Run executes the path command.
func (cmd *PathCmd) Run(ctx *kong.Context, globals *Globals) error {
	path, err := filepath.Abs(ledger.PathFor(globals.Dir, cmd.Username))
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	_, _ = fmt.Fprintln(ctx.Stdout, path)

	return nil
}
