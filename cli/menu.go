package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/robinvdvleuten/cashbook/ledger"
)

// Menu choices. The order mirrors the classic numbered menu.
const (
	choiceBalance = "balance"
	choiceAdd     = "add"
	choiceEdit    = "edit"
	choiceSearch  = "search"
	choiceExit    = "exit"
)

type MenuCmd struct {
	Username string `help:"Ledger owner; prompted for interactively when omitted." arg:"" optional:""`
}

func (cmd *MenuCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		return fmt.Errorf("the interactive menu requires a terminal; use the balance, add, edit and search commands instead")
	}

	username, err := resolveUsername(ctx, globals.Dir, cmd.Username)
	if err != nil {
		return err
	}

	store, err := ledger.Open(ledger.PathFor(globals.Dir, username))
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printInfof(ctx.Stdout, "Ledger: %s", pathStyle.Render(store.Path()))

	for {
		var choice string
		err := huh.NewSelect[string]().
			Title("What would you like to do?").
			Options(
				huh.NewOption("Show balance", choiceBalance),
				huh.NewOption("Add a record", choiceAdd),
				huh.NewOption("Edit a record", choiceEdit),
				huh.NewOption("Search records", choiceSearch),
				huh.NewOption("Exit", choiceExit),
			).
			Value(&choice).
			Run()
		if err != nil {
			return err
		}

		switch choice {
		case choiceBalance:
			showBalance(ctx, store)
		case choiceAdd:
			err = addRecord(ctx, store)
		case choiceEdit:
			err = editRecord(ctx, store)
		case choiceSearch:
			err = searchRecords(ctx, store)
		case choiceExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// resolveUsername picks the ledger owner. A username whose file does not
// exist yet prompts for confirmation before a new ledger is started;
// declining loops back to the username prompt, like the original
// bootstrap flow.
func resolveUsername(ctx *kong.Context, dir, username string) (string, error) {
	for {
		if username == "" {
			err := huh.NewInput().
				Title("Username").
				Validate(validateUsername).
				Value(&username).
				Run()
			if err != nil {
				return "", fmt.Errorf("failed to read username: %w", err)
			}
		}

		if _, err := os.Stat(ledger.PathFor(dir, username)); err == nil {
			return username, nil
		}

		create, err := promptYesNo(ctx, fmt.Sprintf("No ledger found for %q. Start a new one?", username))
		if err != nil {
			return "", err
		}
		if create {
			return username, nil
		}
		username = ""
	}
}

func validateUsername(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("username must not be empty")
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("username must not contain path separators")
	}
	return nil
}

func showBalance(ctx *kong.Context, store *ledger.Store) {
	balance, income, expense := store.Balance()
	_, _ = fmt.Fprintf(ctx.Stdout, "Balance: %s, Income: %s, Expense: %s\n",
		strconv.FormatInt(balance, 10),
		incomeStyle.Render(strconv.FormatInt(income, 10)),
		expenseStyle.Render(strconv.FormatInt(expense, 10)),
	)
}

// addRecord collects a new record and appends it. The date is always
// today; the original menu never asked for one.
func addRecord(ctx *kong.Context, store *ledger.Store) error {
	record := ledger.Record{Date: today()}

	err := huh.NewSelect[ledger.Category]().
		Title("Category").
		Options(
			huh.NewOption("Income", ledger.Income),
			huh.NewOption("Expense", ledger.Expense),
		).
		Value(&record.Category).
		Run()
	if err != nil {
		return err
	}

	var amount string
	err = huh.NewInput().
		Title("Amount").
		Validate(func(s string) error {
			_, err := parseAmount(s)
			return err
		}).
		Value(&amount).
		Run()
	if err != nil {
		return err
	}
	record.Amount, _ = parseAmount(amount)

	err = huh.NewInput().
		Title("Description").
		Value(&record.Description).
		Run()
	if err != nil {
		return err
	}

	if err := store.Add(record); err != nil {
		printError(ctx.Stderr, err.Error())
		return nil
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added record %d", store.Len()-1))
	return nil
}

// editRecord collects an index plus the fields to change. Empty answers
// keep the stored values, so an amount cannot be edited to 0 and a
// description cannot be cleared here.
func editRecord(ctx *kong.Context, store *ledger.Store) error {
	if store.Len() == 0 {
		printInfof(ctx.Stdout, "The ledger has no records to edit.")
		return nil
	}

	var indexInput string
	err := huh.NewInput().
		Title(fmt.Sprintf("Record index (0-%d)", store.Len()-1)).
		Validate(func(s string) error {
			index, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("enter a record index")
			}
			if index < 0 || index >= store.Len() {
				return fmt.Errorf("no record with index %d", index)
			}
			return nil
		}).
		Value(&indexInput).
		Run()
	if err != nil {
		return err
	}
	index, _ := strconv.Atoi(indexInput)

	var update ledger.Update

	err = huh.NewSelect[ledger.Category]().
		Title("New category").
		Options(
			huh.NewOption("Keep current", ledger.Category("")),
			huh.NewOption("Income", ledger.Income),
			huh.NewOption("Expense", ledger.Expense),
		).
		Value(&update.Category).
		Run()
	if err != nil {
		return err
	}

	err = huh.NewInput().
		Title("New date (empty keeps current)").
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			return validateDate(s)
		}).
		Value(&update.Date).
		Run()
	if err != nil {
		return err
	}

	var amount string
	err = huh.NewInput().
		Title("New amount (empty keeps current)").
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			_, err := parseAmount(s)
			return err
		}).
		Value(&amount).
		Run()
	if err != nil {
		return err
	}
	if amount != "" {
		update.Amount, _ = parseAmount(amount)
	}

	err = huh.NewInput().
		Title("New description (empty keeps current)").
		Value(&update.Description).
		Run()
	if err != nil {
		return err
	}

	if err := store.Edit(index, update); err != nil {
		printError(ctx.Stderr, err.Error())
		return nil
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Updated record %d", index))
	return nil
}

// searchRecords collects the filter criteria and prints matches.
func searchRecords(ctx *kong.Context, store *ledger.Store) error {
	var filter ledger.Filter

	err := huh.NewSelect[ledger.Category]().
		Title("Category").
		Options(
			huh.NewOption("Any", ledger.Category("")),
			huh.NewOption("Income", ledger.Income),
			huh.NewOption("Expense", ledger.Expense),
		).
		Value(&filter.Category).
		Run()
	if err != nil {
		return err
	}

	err = huh.NewInput().
		Title("Date: YYYY, YYYY-MM or YYYY-MM-DD (empty matches all dates)").
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			return validateSearchDate(s)
		}).
		Value(&filter.Date).
		Run()
	if err != nil {
		return err
	}

	var amount string
	err = huh.NewInput().
		Title("Amount (empty matches all amounts)").
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			_, err := parseAmount(s)
			return err
		}).
		Value(&amount).
		Run()
	if err != nil {
		return err
	}
	if amount != "" {
		filter.Amount, _ = parseAmount(amount)
	}

	matches := matchRecords(store, filter)
	if len(matches) == 0 {
		printInfof(ctx.Stdout, "No records match.")
		return nil
	}

	renderRecords(ctx.Stdout, matches)
	return nil
}
