package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashbook/ledger"
	"github.com/robinvdvleuten/cashbook/telemetry"
)

type AddCmd struct {
	Username    string `help:"Ledger owner." arg:""`
	Amount      int64  `help:"Record amount (non-negative whole number)." required:""`
	Category    string `help:"Record category: Income or Expense." required:""`
	Date        string `help:"Record date (YYYY-MM-DD); defaults to today."`
	Description string `help:"Free-form description."`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.telemetryContext(ctx, fmt.Sprintf("add %s", cmd.Username))
	defer report()

	// The store persists whatever it is handed, so all validation
	// happens here.
	category, err := ledger.ParseCategory(cmd.Category)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}
	if cmd.Amount < 0 {
		printError(ctx.Stderr, "amount must not be negative")
		return NewCommandError(1)
	}
	date := cmd.Date
	if date == "" {
		date = today()
	} else if err := validateDate(date); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	store, err := openStore(runCtx, globals, cmd.Username)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	timer := telemetry.StartTimer(runCtx, "append record")
	err = store.Add(ledger.Record{
		Date:        date,
		Category:    category,
		Amount:      cmd.Amount,
		Description: cmd.Description,
	})
	timer.End()

	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added record %d to %s", store.Len()-1, pathStyle.Render(store.Path())))

	return nil
}
