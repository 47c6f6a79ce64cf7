package cli

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashbook/telemetry"
)

type BalanceCmd struct {
	Username string `help:"Ledger owner." arg:""`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.telemetryContext(ctx, fmt.Sprintf("balance %s", cmd.Username))
	defer report()

	store, err := openStore(runCtx, globals, cmd.Username)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	timer := telemetry.StartTimer(runCtx, "compute balance")
	balance, income, expense := store.Balance()
	timer.End()

	_, _ = fmt.Fprintf(ctx.Stdout, "Balance: %s, Income: %s, Expense: %s\n",
		strconv.FormatInt(balance, 10),
		incomeStyle.Render(strconv.FormatInt(income, 10)),
		expenseStyle.Render(strconv.FormatInt(expense, 10)),
	)

	return nil
}
