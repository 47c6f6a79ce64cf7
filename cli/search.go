package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/cashbook/ledger"
	"github.com/robinvdvleuten/cashbook/telemetry"
)

type SearchCmd struct {
	Username string `help:"Ledger owner." arg:""`
	Category string `help:"Match category: Income or Expense."`
	Date     string `help:"Match date: YYYY, YYYY-MM or YYYY-MM-DD."`
	Amount   int64  `help:"Match exact amount."`
}

func (cmd *SearchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.telemetryContext(ctx, fmt.Sprintf("search %s", cmd.Username))
	defer report()

	filter := ledger.Filter{
		Date:   cmd.Date,
		Amount: cmd.Amount,
	}

	if cmd.Category != "" {
		category, err := ledger.ParseCategory(cmd.Category)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
		filter.Category = category
	}
	if cmd.Date != "" {
		if err := validateSearchDate(cmd.Date); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
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

	timer := telemetry.StartTimer(runCtx, "match records")
	matches := matchRecords(store, filter)
	timer.End()

	if len(matches) == 0 {
		printInfof(ctx.Stdout, "No records match.")
		return nil
	}

	renderRecords(ctx.Stdout, matches)

	return nil
}

// indexedRecord pairs a record with its position in the full ledger,
// since the index is the record's only identity.
type indexedRecord struct {
	index  int
	record ledger.Record
}

// matchRecords filters the full ledger while keeping original indexes.
func matchRecords(store *ledger.Store, f ledger.Filter) []indexedRecord {
	var matches []indexedRecord
	for index, record := range store.Records() {
		if f.Matches(record) {
			matches = append(matches, indexedRecord{index: index, record: record})
		}
	}
	return matches
}

// renderRecords writes records as an aligned table. Column widths are
// measured with runewidth so descriptions in wide scripts line up.
func renderRecords(w io.Writer, records []indexedRecord) {
	indexWidth := runewidth.StringWidth("ID")
	amountWidth := runewidth.StringWidth("AMOUNT")
	categoryWidth := runewidth.StringWidth("CATEGORY")
	dateWidth := len(ledger.DateFormat)

	for _, m := range records {
		if n := len(strconv.Itoa(m.index)); n > indexWidth {
			indexWidth = n
		}
		if n := len(strconv.FormatInt(m.record.Amount, 10)); n > amountWidth {
			amountWidth = n
		}
		if n := runewidth.StringWidth(string(m.record.Category)); n > categoryWidth {
			categoryWidth = n
		}
	}

	header := fmt.Sprintf("%*s  %-*s  %-*s  %*s  %s",
		indexWidth, "ID",
		dateWidth, "DATE",
		categoryWidth, "CATEGORY",
		amountWidth, "AMOUNT",
		"DESCRIPTION",
	)
	_, _ = fmt.Fprintln(w, headerStyle.Render(header))

	for _, m := range records {
		category := categoryStyle(m.record.Category).
			Render(runewidth.FillRight(string(m.record.Category), categoryWidth))

		_, _ = fmt.Fprintf(w, "%*d  %-*s  %s  %*d  %s\n",
			indexWidth, m.index,
			dateWidth, m.record.Date,
			category,
			amountWidth, m.record.Amount,
			m.record.Description,
		)
	}
}
