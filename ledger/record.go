package ledger

import (
	"fmt"
	"strings"
)

// DateFormat is the calendar date layout used throughout: ISO 8601 (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Category classifies a record as money coming in or going out. The two
// constants below are also the exact literals stored in ledger files.
type Category string

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	}
	return "", fmt.Errorf(`unexpected category %q (want "Income" or "Expense")`, s)
}

// Record is a single income or expense entry. A record carries no stable
// identifier; its identity is its position in the ledger sequence, and
// positions are reassigned from scratch on every load.
//
// The persisted field name for Amount is "price", kept for compatibility
// with existing ledger files.
type Record struct {
	Date        string   `json:"date"`
	Category    Category `json:"category"`
	Amount      int64    `json:"price"`
	Description string   `json:"description"`
}

// matchesDate reports whether the record's date begins with the given
// partial date. Both sides are split on "-" and the record's leading
// components must equal the query's components in order: "2024" matches
// the whole year, "2024-05" the whole month, "2024-05-02" that day only.
func (r Record) matchesDate(query string) bool {
	have := strings.Split(r.Date, "-")
	want := strings.Split(query, "-")
	if len(want) > len(have) {
		return false
	}
	for i, part := range want {
		if have[i] != part {
			return false
		}
	}
	return true
}
