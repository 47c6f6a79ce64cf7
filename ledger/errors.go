package ledger

import "fmt"

// Error types for ledger storage and lookup failures.

// ReadError is returned when a ledger file cannot be read or parsed.
// A missing file is not a ReadError; it is a valid empty ledger.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: cannot read ledger: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when the ledger file cannot be written. The
// in-memory records keep the mutation that triggered the save; there is
// no rollback.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: cannot write ledger: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IndexError is returned when an operation targets a record index
// outside the ledger's bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no record with index %d (ledger holds %d records)", e.Index, e.Len)
}
