package cli

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashbook/ledger"
	"github.com/robinvdvleuten/cashbook/telemetry"
)

type EditCmd struct {
	Username    string `help:"Ledger owner." arg:""`
	Index       int    `help:"Index of the record to edit." arg:""`
	Date        string `help:"New date (YYYY-MM-DD)."`
	Category    string `help:"New category: Income or Expense."`
	Amount      int64  `help:"New amount; zero or omitted keeps the stored amount."`
	Description string `help:"New description; empty keeps the stored description."`
}

func (cmd *EditCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.telemetryContext(ctx, fmt.Sprintf("edit %s %d", cmd.Username, cmd.Index))
	defer report()

	update := ledger.Update{
		Date:        cmd.Date,
		Amount:      cmd.Amount,
		Description: cmd.Description,
	}

	if cmd.Date != "" {
		if err := validateDate(cmd.Date); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
	}
	if cmd.Category != "" {
		category, err := ledger.ParseCategory(cmd.Category)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
		update.Category = category
	}
	if cmd.Amount < 0 {
		printError(ctx.Stderr, "amount must not be negative")
		return NewCommandError(1)
	}

	store, err := openStore(runCtx, globals, cmd.Username)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	timer := telemetry.StartTimer(runCtx, "edit record")
	err = store.Edit(cmd.Index, update)
	timer.End()

	if err != nil {
		var indexErr *ledger.IndexError
		if errors.As(err, &indexErr) {
			printError(ctx.Stderr, indexErr.Error())
			return NewCommandError(1)
		}
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Updated record %d", cmd.Index))

	return nil
}
