package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags a fatal error.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindInvalidKeySpec  Kind = "invalid_key_spec"
	KindIndexOutOfRange Kind = "index_out_of_range"
	KindUnsortedKey     Kind = "unsorted_key"
	KindDuplicateKey    Kind = "duplicate_key"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrInvalidKeySpec  = errors.New("invalid matching key spec")
	ErrIndexOutOfRange = errors.New("column index out of range")
	ErrUnsortedKey     = errors.New("matching keys are not sorted")
	ErrDuplicateKey    = errors.New("matching keys are not unique")
)

// UnsortedHint is attached to unsorted-key errors.
const UnsortedHint = "if the key is a number without zero padding, specify its max width after a colon, e.g. -k0:8"

// Error is the structured form of every fatal diff error.
// Fields that do not apply to a kind are left zero.
type Error struct {
	Kind Kind

	// Side is "left" or "right"; Label is the input name on that side.
	Side  string
	Label string

	// RowNumber is the 1-based data row number (header excluded).
	RowNumber int

	// Row is the offending row, for IndexOutOfRange.
	Row []string
	// Index is the offending column index and Columns the row's actual length.
	Index   int
	Columns int

	// CurrentKey and PreviousKey are decoded composite keys.
	CurrentKey  []string
	PreviousKey []string

	// KeySpec is the textual matching key spec in effect.
	KeySpec string

	// Value is the rejected input for InvalidKeySpec.
	Value string

	Hint string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.sentinel().Error())

	switch e.Kind {
	case KindInvalidKeySpec:
		fmt.Fprintf(&b, " [value=%q]", e.Value)
	case KindIndexOutOfRange:
		fmt.Fprintf(&b, " [index=%d, number of columns=%d", e.Index, e.Columns)
		e.writeLocation(&b)
		if e.KeySpec != "" {
			fmt.Fprintf(&b, ", matching-key-spec=%s", e.KeySpec)
		}
		fmt.Fprintf(&b, ", row=%q]", e.Row)
	case KindUnsortedKey, KindDuplicateKey:
		fmt.Fprintf(&b, " [current_key=%q, previous_key=%q", e.CurrentKey, e.PreviousKey)
		e.writeLocation(&b)
		fmt.Fprintf(&b, ", matching-key-spec=%s]", e.KeySpec)
	}

	if e.Hint != "" {
		b.WriteString(" ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *Error) writeLocation(b *strings.Builder) {
	if e.Side != "" {
		fmt.Fprintf(b, ", side=%s", e.Side)
	}
	if e.Label != "" {
		fmt.Fprintf(b, ", input=%s", e.Label)
	}
	if e.RowNumber > 0 {
		fmt.Fprintf(b, ", row_number=%d", e.RowNumber)
	}
}

// Unwrap exposes the kind sentinel so errors.Is works on wrapped errors.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindInvalidKeySpec:
		return ErrInvalidKeySpec
	case KindIndexOutOfRange:
		return ErrIndexOutOfRange
	case KindUnsortedKey:
		return ErrUnsortedKey
	case KindDuplicateKey:
		return ErrDuplicateKey
	default:
		return errors.New("diff failure")
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// ExitCode maps a failure kind to a process exit status.
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindInvalidKeySpec:
		return 2
	case KindIndexOutOfRange:
		return 3
	case KindUnsortedKey:
		return 4
	case KindDuplicateKey:
		return 5
	default:
		return 1
	}
}
