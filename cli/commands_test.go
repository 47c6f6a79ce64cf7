package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/cashbook/ledger"
)

// runCommand parses and runs a cashbook command line against dir,
// capturing stdout and stderr.
func runCommand(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	var root struct {
		Commands
	}
	var stdout, stderr bytes.Buffer

	parser, err := kong.New(&root,
		kong.Name("cashbook"),
		kong.Writers(&stdout, &stderr),
		kong.Bind(&root.Globals),
	)
	assert.NoError(t, err)

	kctx, err := parser.Parse(append([]string{"--dir", dir}, args...))
	assert.NoError(t, err)

	runErr := kctx.Run()
	return stdout.String(), stderr.String(), runErr
}

func seedLedger(t *testing.T, dir, username string) *ledger.Store {
	t.Helper()

	store, err := ledger.Open(ledger.PathFor(dir, username))
	assert.NoError(t, err)
	assert.NoError(t, store.Add(ledger.Record{Date: "2024-05-02", Category: ledger.Income, Amount: 30000, Description: "Salary"}))
	assert.NoError(t, store.Add(ledger.Record{Date: "2024-05-03", Category: ledger.Expense, Amount: 1500, Description: "Groceries"}))
	return store
}

func TestBalanceCmd(t *testing.T) {
	dir := t.TempDir()
	seedLedger(t, dir, "alice")

	stdout, _, err := runCommand(t, dir, "balance", "alice")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Balance: 28500"))
	assert.True(t, strings.Contains(stdout, "30000"))
	assert.True(t, strings.Contains(stdout, "1500"))
}

func TestBalanceCmd_EmptyLedger(t *testing.T) {
	stdout, _, err := runCommand(t, t.TempDir(), "balance", "nobody")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Balance: 0, Income: 0, Expense: 0"))
}

func TestAddCmd(t *testing.T) {
	t.Run("WithExplicitDate", func(t *testing.T) {
		dir := t.TempDir()

		stdout, _, err := runCommand(t, dir, "add", "bob",
			"--amount", "250", "--category", "Expense",
			"--date", "2024-07-01", "--description", "Bus ticket")
		assert.NoError(t, err)
		assert.True(t, strings.Contains(stdout, "Added record 0"))

		store, err := ledger.Open(ledger.PathFor(dir, "bob"))
		assert.NoError(t, err)
		assert.Equal(t, 1, store.Len())
		assert.Equal(t, ledger.Record{
			Date:        "2024-07-01",
			Category:    ledger.Expense,
			Amount:      250,
			Description: "Bus ticket",
		}, store.Records()[0])
	})

	t.Run("DefaultsDateToToday", func(t *testing.T) {
		dir := t.TempDir()

		_, _, err := runCommand(t, dir, "add", "bob", "--amount", "10", "--category", "Income")
		assert.NoError(t, err)

		store, err := ledger.Open(ledger.PathFor(dir, "bob"))
		assert.NoError(t, err)
		assert.Equal(t, today(), store.Records()[0].Date)
	})

	t.Run("RejectsBadCategory", func(t *testing.T) {
		dir := t.TempDir()

		_, stderr, err := runCommand(t, dir, "add", "bob", "--amount", "10", "--category", "Savings")
		assert.Error(t, err)

		var cmdErr *CommandError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 1, cmdErr.ExitCode())
		assert.True(t, strings.Contains(stderr, "Savings"))
	})

	t.Run("RejectsBadDate", func(t *testing.T) {
		dir := t.TempDir()

		_, stderr, err := runCommand(t, dir, "add", "bob", "--amount", "10", "--category", "Income", "--date", "01/07/2024")
		assert.Error(t, err)
		assert.True(t, strings.Contains(stderr, "invalid date"))
	})
}

func TestEditCmd(t *testing.T) {
	t.Run("UpdatesSuppliedFields", func(t *testing.T) {
		dir := t.TempDir()
		seedLedger(t, dir, "alice")

		stdout, _, err := runCommand(t, dir, "edit", "alice", "1", "--amount", "2000", "--description", "Weekly groceries")
		assert.NoError(t, err)
		assert.True(t, strings.Contains(stdout, "Updated record 1"))

		store, err := ledger.Open(ledger.PathFor(dir, "alice"))
		assert.NoError(t, err)
		got := store.Records()[1]
		assert.Equal(t, int64(2000), got.Amount)
		assert.Equal(t, "Weekly groceries", got.Description)
		assert.Equal(t, "2024-05-03", got.Date)
		assert.Equal(t, ledger.Expense, got.Category)
	})

	t.Run("OutOfRangeIndex", func(t *testing.T) {
		dir := t.TempDir()
		seedLedger(t, dir, "alice")

		_, stderr, err := runCommand(t, dir, "edit", "alice", "7", "--amount", "2000")
		assert.Error(t, err)

		var cmdErr *CommandError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 1, cmdErr.ExitCode())
		assert.True(t, strings.Contains(stderr, "no record with index 7"))
	})
}

func TestSearchCmd(t *testing.T) {
	dir := t.TempDir()
	store := seedLedger(t, dir, "alice")
	assert.NoError(t, store.Add(ledger.Record{Date: "2024-06-11", Category: ledger.Expense, Amount: 1500, Description: "Обед"}))

	t.Run("ByCategory", func(t *testing.T) {
		stdout, _, err := runCommand(t, dir, "search", "alice", "--category", "Expense")
		assert.NoError(t, err)
		assert.True(t, strings.Contains(stdout, "Groceries"))
		assert.True(t, strings.Contains(stdout, "Обед"))
		assert.False(t, strings.Contains(stdout, "Salary"))
	})

	t.Run("ByPartialDate", func(t *testing.T) {
		stdout, _, err := runCommand(t, dir, "search", "alice", "--date", "2024-05")
		assert.NoError(t, err)
		assert.True(t, strings.Contains(stdout, "Salary"))
		assert.True(t, strings.Contains(stdout, "Groceries"))
		assert.False(t, strings.Contains(stdout, "Обед"))
	})

	t.Run("NoMatches", func(t *testing.T) {
		stdout, _, err := runCommand(t, dir, "search", "alice", "--date", "1999")
		assert.NoError(t, err)
		assert.True(t, strings.Contains(stdout, "No records match."))
	})

	t.Run("RejectsBadDate", func(t *testing.T) {
		_, stderr, err := runCommand(t, dir, "search", "alice", "--date", "2024-5")
		assert.Error(t, err)
		assert.True(t, strings.Contains(stderr, "invalid date"))
	})
}

func TestMenuCmd_RequiresTerminal(t *testing.T) {
	// Test processes have no TTY on stdin, so the menu must refuse to
	// start and point at the scriptable commands instead.
	_, _, err := runCommand(t, t.TempDir(), "menu", "alice")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "requires a terminal"))
}

func TestDoctorPathCmd(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCommand(t, dir, "doctor", "path", "alice")
	assert.NoError(t, err)

	want, err2 := filepath.Abs(ledger.PathFor(dir, "alice"))
	assert.NoError(t, err2)
	assert.Equal(t, want, strings.TrimSpace(stdout))
}

func TestDoctorDumpCmd(t *testing.T) {
	dir := t.TempDir()
	seedLedger(t, dir, "alice")

	stdout, _, err := runCommand(t, dir, "doctor", "dump", "alice")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Salary"))
	assert.True(t, strings.Contains(stdout, "30000"))
}

func TestTelemetryFlag(t *testing.T) {
	dir := t.TempDir()
	seedLedger(t, dir, "alice")

	_, stderr, err := runCommand(t, dir, "--telemetry", "balance", "alice")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stderr, "balance alice"))
	assert.True(t, strings.Contains(stderr, "load ledger"))
}
