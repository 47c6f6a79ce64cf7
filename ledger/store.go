// Package ledger implements a single-user income/expense ledger backed by
// one JSON file per user. The file holds the full ordered record sequence
// and is rewritten after every mutation; there is no append-only log and
// no transactional batching.
//
// The store performs no validation of record values. Date format,
// category choice and amount sign are the caller's responsibility, and
// the store will happily persist whatever it is given.
//
// Example usage:
//
//	store, err := ledger.Open(ledger.PathFor(".", "alice"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = store.Add(ledger.Record{
//	    Date:        "2024-05-02",
//	    Category:    ledger.Income,
//	    Amount:      30000,
//	    Description: "Salary",
//	})
//
//	balance, income, expense := store.Balance()
package ledger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"
)

// PathFor returns the ledger file path for a username inside dir,
// following the one-file-per-user convention "<username>.json".
func PathFor(dir, username string) string {
	return filepath.Join(dir, username+".json")
}

// Update describes an in-place edit of one record. Zero-valued fields
// leave the stored field unchanged. A consequence is that Edit cannot
// set an amount to 0 or clear a text field to empty; that asymmetry is
// kept on purpose so existing ledgers behave as they always have.
type Update struct {
	Date        string
	Category    Category
	Amount      int64
	Description string
}

// Filter selects records in Search. Zero-valued criteria act as
// wildcards. Date may be a full date or a leading part of one, such as
// "2024" or "2024-05".
type Filter struct {
	Category Category
	Date     string
	Amount   int64
}

// Matches reports whether a single record satisfies every supplied
// criterion of the filter.
func (f Filter) Matches(r Record) bool {
	if f.Category != "" && f.Category != r.Category {
		return false
	}
	if f.Date != "" && !r.matchesDate(f.Date) {
		return false
	}
	if f.Amount != 0 && f.Amount != r.Amount {
		return false
	}
	return true
}

// Store holds one user's ordered record sequence and the file backing
// it. Records are appended or edited in place, never deleted, and the
// whole sequence is persisted after each mutation.
//
// A Store is not safe for concurrent use: one user, one process, one
// ledger file.
type Store struct {
	path    string
	records []Record
}

// Open creates a store backed by path and loads it. A missing file is a
// valid empty ledger, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records in the ledger.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the record sequence in storage order.
func (s *Store) Records() []Record {
	return slices.Clone(s.records)
}

// Load replaces the in-memory sequence with the file's contents,
// reassigning every record index. Malformed content fails the whole
// load with a *ReadError; a single bad entry is not skipped.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = nil
			return nil
		}
		return &ReadError{Path: s.path, Err: err}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return &ReadError{Path: s.path, Err: err}
	}

	s.records = records
	return nil
}

// Save serializes the full sequence back to the file, replacing prior
// contents. The output is indented for hand inspection and non-ASCII
// text is written literally rather than escaped. Failure returns a
// *WriteError; the in-memory records are not rolled back.
func (s *Store) Save() error {
	records := s.records
	if records == nil {
		// An empty ledger is stored as an empty array, not null.
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

// Add appends a record at the next index and persists the sequence.
// The new record's index is the ledger's length before the call.
func (s *Store) Add(r Record) error {
	s.records = append(s.records, r)
	return s.Save()
}

// Edit overwrites the record at index with the non-zero fields of u and
// persists the sequence. An out-of-bounds index returns an *IndexError
// and leaves the ledger untouched.
func (s *Store) Edit(index int, u Update) error {
	if index < 0 || index >= len(s.records) {
		return &IndexError{Index: index, Len: len(s.records)}
	}

	r := &s.records[index]
	if u.Date != "" {
		r.Date = u.Date
	}
	if u.Category != "" {
		r.Category = u.Category
	}
	if u.Amount != 0 {
		r.Amount = u.Amount
	}
	if u.Description != "" {
		r.Description = u.Description
	}

	return s.Save()
}

// Search returns the subsequence of records matching every supplied
// criterion, in storage order.
func (s *Store) Search(f Filter) []Record {
	var results []Record
	for _, r := range s.records {
		if f.Matches(r) {
			results = append(results, r)
		}
	}
	return results
}

// Balance sums the ledger and returns total income minus total expense
// alongside both totals. An empty ledger yields three zeros.
func (s *Store) Balance() (balance, income, expense int64) {
	for _, r := range s.records {
		switch r.Category {
		case Income:
			income += r.Amount
		case Expense:
			expense += r.Amount
		}
	}
	return income - expense, income, expense
}
