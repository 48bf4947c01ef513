// Package failure defines the fatal error kinds raised while diffing.
//
// Every kind aborts the run. Nothing in the diff engine retries or recovers:
// a diff tool that guesses past a malformed or unsorted input produces a
// report nobody can trust.
//
// # Kinds
//
//   - InvalidKeySpec: a matching key field is not a non-negative integer.
//   - IndexOutOfRange: a key or data column index exceeds a row's length.
//   - UnsortedKey: a side's composite keys decrease between two data rows.
//   - DuplicateKey: uniqueness was requested and two consecutive rows share a key.
//
// Errors carry structured context (side, row number, decoded keys, key spec)
// instead of pre-formatted text. The CLI layer decides how to print them and
// which exit code to use.
//
// # Usage
//
//	if errors.Is(err, failure.ErrUnsortedKey) {
//	    var fe *failure.Error
//	    errors.As(err, &fe)
//	    fmt.Println(fe.CurrentKey, fe.PreviousKey)
//	}
package failure
