package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Reader produces rows from a delimited file. It satisfies
// rowsource.RowProducer.
type Reader struct {
	rs      io.ReadSeeker
	dialect Dialect
	enc     encoding.Encoding

	csv  *csv.Reader
	line int
}

// NewReader reads rs with dialect d, decoding from enc. A nil enc means UTF-8.
func NewReader(rs io.ReadSeeker, d Dialect, enc encoding.Encoding) *Reader {
	r := &Reader{rs: rs, dialect: d, enc: enc}
	r.build()
	return r
}

func (r *Reader) build() {
	var in io.Reader = transform.NewReader(r.rs, unicode.BOMOverride(decoder(r.enc)))
	if r.swapsQuote() {
		in = transform.NewReader(in, runes.Map(r.swap))
	}

	cr := csv.NewReader(in)
	cr.Comma = r.dialect.Delimiter
	if cr.Comma == 0 {
		cr.Comma = ','
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = r.dialect.SkipInitialSpace

	r.csv = cr
	r.line = 0
}

// swapsQuote reports whether the quote has to be exchanged with '"', the
// only quote encoding/csv understands.
func (r *Reader) swapsQuote() bool {
	q := r.dialect.Quote
	return q != 0 && q != '"'
}

func (r *Reader) swap(c rune) rune {
	switch c {
	case r.dialect.Quote:
		return '"'
	case '"':
		return r.dialect.Quote
	}
	return c
}

// Next returns the next record, or io.EOF.
func (r *Reader) Next() ([]string, error) {
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	r.line++

	if r.swapsQuote() {
		for i, field := range record {
			record[i] = strings.Map(r.swap, field)
		}
	}
	return record, nil
}

// Rewind seeks back to the start of the file and restarts parsing.
func (r *Reader) Rewind() error {
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to start: %w", err)
	}
	r.build()
	return nil
}

// Records returns the number of records read since the last rewind.
func (r *Reader) Records() int { return r.line }

// Dialect returns the dialect the reader parses with.
func (r *Reader) Dialect() Dialect { return r.dialect }
