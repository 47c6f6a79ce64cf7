package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRecordMatchesDate(t *testing.T) {
	r := Record{Date: "2024-05-02", Category: Expense, Amount: 1500}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"Year", "2024", true},
		{"YearMonth", "2024-05", true},
		{"FullDate", "2024-05-02", true},
		{"WrongYear", "2023", false},
		{"WrongMonth", "2024-06", false},
		{"WrongDay", "2024-05-03", false},
		{"QueryLongerThanDate", "2024-05-02-extra", false},
		// Components compare as strings, so "05" and "5" are distinct.
		{"UnpaddedMonth", "2024-5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.matchesDate(tt.query))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Income")
	assert.NoError(t, err)
	assert.Equal(t, Income, c)

	c, err = ParseCategory("Expense")
	assert.NoError(t, err)
	assert.Equal(t, Expense, c)

	_, err = ParseCategory("income")
	assert.Error(t, err)

	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestFilterMatches(t *testing.T) {
	r := Record{Date: "2024-05-02", Category: Income, Amount: 30000, Description: "Salary"}

	assert.True(t, Filter{}.Matches(r))
	assert.True(t, Filter{Category: Income, Date: "2024-05", Amount: 30000}.Matches(r))
	assert.False(t, Filter{Category: Expense}.Matches(r))
	assert.False(t, Filter{Amount: 1}.Matches(r))
	assert.False(t, Filter{Date: "2025"}.Matches(r))
}
