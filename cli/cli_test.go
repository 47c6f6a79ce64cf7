package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/cashbook/ledger"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2024-05-02"))
	assert.Error(t, validateDate("2024-05"))
	assert.Error(t, validateDate("02-05-2024"))
	assert.Error(t, validateDate("2024-13-01"))
	assert.Error(t, validateDate(""))
}

func TestValidateSearchDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"Year", "2024", true},
		{"YearMonth", "2024-05", true},
		{"FullDate", "2024-05-02", true},
		{"UnpaddedMonth", "2024-5", false},
		{"BadMonth", "2024-13", false},
		{"BadDay", "2024-02-30", false},
		{"TooLong", "2024-05-02-01", false},
		{"Garbage", "yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSearchDate(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("1500")
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), amount)

	amount, err = parseAmount("0")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), amount)

	_, err = parseAmount("-5")
	assert.Error(t, err)

	_, err = parseAmount("12.50")
	assert.Error(t, err)

	_, err = parseAmount("lots")
	assert.Error(t, err)
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, validateUsername("alice"))
	assert.Error(t, validateUsername(""))
	assert.Error(t, validateUsername("   "))
	assert.Error(t, validateUsername("../etc/passwd"))
	assert.Error(t, validateUsername(`c:\users`))
}

func TestMatchRecords_KeepsLedgerIndexes(t *testing.T) {
	dir := t.TempDir()
	store := seedLedger(t, dir, "alice")
	assert.NoError(t, store.Add(ledger.Record{Date: "2024-06-11", Category: ledger.Expense, Amount: 700, Description: "Coffee"}))

	matches := matchRecords(store, ledger.Filter{Category: ledger.Expense})
	assert.Equal(t, 2, len(matches))
	assert.Equal(t, 1, matches[0].index)
	assert.Equal(t, 2, matches[1].index)
}

func TestRenderRecords(t *testing.T) {
	records := []indexedRecord{
		{index: 0, record: ledger.Record{Date: "2024-05-02", Category: ledger.Income, Amount: 30000, Description: "Salary"}},
		{index: 12, record: ledger.Record{Date: "2024-05-03", Category: ledger.Expense, Amount: 1500, Description: "Продукты"}},
	}

	var buf bytes.Buffer
	renderRecords(&buf, records)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))

	assert.True(t, strings.Contains(lines[0], "ID"))
	assert.True(t, strings.Contains(lines[0], "DESCRIPTION"))
	assert.True(t, strings.Contains(lines[1], "Salary"))
	assert.True(t, strings.Contains(lines[2], "Продукты"))
	// Amounts are right-aligned to a shared column width.
	assert.True(t, strings.Contains(lines[1], "30000"))
	assert.True(t, strings.Contains(lines[2], " 1500"))
}
