package rowsource

import (
	"errors"
	"io"
)

// ErrNotRewindable is returned by producers that cannot restart.
var ErrNotRewindable = errors.New("row producer cannot be rewound")

// RowProducer yields raw rows one at a time.
type RowProducer interface {
	// Next returns the next row, or io.EOF when there are no more rows.
	Next() ([]string, error)
	// Rewind restarts the producer at its first row.
	Rewind() error
}

// SliceProducer serves rows from memory. Useful for tests and small fixtures.
type SliceProducer struct {
	rows [][]string
	pos  int
}

// NewSliceProducer returns a producer over rows.
func NewSliceProducer(rows [][]string) *SliceProducer {
	return &SliceProducer{rows: rows}
}

func (p *SliceProducer) Next() ([]string, error) {
	if p.pos >= len(p.rows) {
		return nil, io.EOF
	}
	row := p.rows[p.pos]
	p.pos++
	return row, nil
}

func (p *SliceProducer) Rewind() error {
	p.pos = 0
	return nil
}
