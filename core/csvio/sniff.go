package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrSniffFailed is returned when no delimiter gives consistent rows.
var ErrSniffFailed = errors.New("could not determine delimiter")

// Candidate delimiters in order of preference.
var delimiters = []rune{',', '\t', ';', '|', ':'}

const (
	// minConsistency is the share of sample rows that must agree on a field count.
	minConsistency = 0.9
	// headerRows limits how many rows take part in header voting.
	headerRows = 20
)

// ReadSample reads up to size bytes from rs and seeks back to the start.
func ReadSample(rs io.ReadSeeker, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := io.ReadFull(rs, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to start: %w", err)
	}
	return buf[:n], nil
}

// SniffFile reads a sample of rs in encoding enc, sniffs it and leaves rs at
// the start.
func SniffFile(rs io.ReadSeeker, size int, enc encoding.Encoding) (Dialect, error) {
	sample, err := ReadSample(rs, size)
	if err != nil {
		return Dialect{}, err
	}
	if decoded, _, err := transform.Bytes(unicode.BOMOverride(decoder(enc)), sample); err == nil {
		sample = decoded
	}
	return Sniff(sample)
}

// Sniff guesses the dialect of a UTF-8 sample, header presence included.
// A truncated last line is ignored.
func Sniff(sample []byte) (Dialect, error) {
	text := string(sample)
	text = strings.TrimPrefix(text, "\ufeff")
	if !strings.HasSuffix(text, "\n") {
		if i := strings.LastIndexByte(text, '\n'); i >= 0 {
			text = text[:i+1]
		}
	}
	if strings.TrimSpace(text) == "" {
		return Dialect{}, ErrSniffFailed
	}

	d := Dialect{
		Quote:          guessQuote(text),
		LineTerminator: "\n",
	}
	if strings.Contains(text, "\r\n") {
		d.LineTerminator = "\r\n"
	}

	var (
		best      rune
		bestScore float64
		bestRows  [][]string
	)
	for _, delim := range delimiters {
		rows := parseSample(text, delim, d.Quote)
		score := consistency(rows)
		if score > bestScore {
			best, bestScore, bestRows = delim, score, rows
		}
	}
	if bestScore < minConsistency {
		return Dialect{}, ErrSniffFailed
	}

	d.Delimiter = best
	d.SkipInitialSpace = skipsSpace(text, best)
	d.HasHeader = hasHeader(bestRows)

	return d, nil
}

// guessQuote picks the quote character that appears next to field
// boundaries most often, defaulting to '"'.
func guessQuote(text string) rune {
	score := func(q byte) int {
		n := 0
		for i := 0; i < len(text); i++ {
			if text[i] != q {
				continue
			}
			before := i == 0 || isBoundary(text[i-1])
			after := i == len(text)-1 || isBoundary(text[i+1])
			if before || after {
				n++
			}
		}
		return n
	}
	if score('\'') > score('"') {
		return '\''
	}
	return '"'
}

func isBoundary(b byte) bool {
	switch b {
	case '\n', '\r', ' ':
		return true
	}
	for _, d := range delimiters {
		if rune(b) == d {
			return true
		}
	}
	return false
}

func parseSample(text string, delim, quote rune) [][]string {
	swap := func(c rune) rune {
		switch {
		case quote == '"':
			return c
		case c == quote:
			return '"'
		case c == '"':
			return quote
		}
		return c
	}

	r := csv.NewReader(strings.NewReader(strings.Map(swap, text)))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

// consistency is the share of rows having the most common field count,
// or 0 when that count is 1.
func consistency(rows [][]string) float64 {
	if len(rows) == 0 {
		return 0
	}
	counts := make(map[int]int)
	mode, modeCount := 0, 0
	for _, row := range rows {
		counts[len(row)]++
		if c := counts[len(row)]; c > modeCount || (c == modeCount && len(row) > mode) {
			mode, modeCount = len(row), c
		}
	}
	if mode < 2 {
		return 0
	}
	return float64(modeCount) / float64(len(rows))
}

func skipsSpace(text string, delim rune) bool {
	first, _, _ := strings.Cut(text, "\n")
	withSpace := strings.Count(first, string(delim)+" ")
	return withSpace > 0 && withSpace == strings.Count(first, string(delim))
}

// hasHeader votes column by column. A column is typed by the data rows
// below the first one: numeric, or a fixed length. A first row cell that
// does not fit its column type is a vote for a header.
func hasHeader(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}
	header := rows[0]

	const numeric = -1
	types := make(map[int]int, len(header))
	dropped := make(map[int]bool)

	limit := min(len(rows), headerRows+1)
	for _, row := range rows[1:limit] {
		if len(row) != len(header) {
			continue
		}
		for col, v := range row {
			if dropped[col] {
				continue
			}
			t := utf8.RuneCountInString(v)
			if isNumber(v) {
				t = numeric
			}
			if prev, ok := types[col]; ok && prev != t {
				delete(types, col)
				dropped[col] = true
				continue
			}
			types[col] = t
		}
	}

	votes := 0
	for col, t := range types {
		switch {
		case t == numeric && isNumber(header[col]):
			votes--
		case t == numeric:
			votes++
		case utf8.RuneCountInString(header[col]) != t:
			votes++
		default:
			votes--
		}
	}
	return votes > 0
}

func isNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
