package csvio

import (
	"fmt"
	"strings"
)

// Dialect describes how a delimited file is laid out.
type Dialect struct {
	Delimiter rune
	Quote     rune
	// LineTerminator is informational; both LF and CRLF are accepted on read.
	LineTerminator   string
	SkipInitialSpace bool
	// HasHeader is only meaningful for sniffed dialects.
	HasHeader bool
}

// DefaultDialect is comma separated, double quoted, LF terminated, and skips
// spaces after a delimiter.
func DefaultDialect() Dialect {
	return Dialect{
		Delimiter:        ',',
		Quote:            '"',
		LineTerminator:   "\n",
		SkipInitialSpace: true,
	}
}

var separators = map[string]rune{
	"COMMA":     ',',
	"TAB":       '\t',
	"SEMICOLON": ';',
	"PIPE":      '|',
}

var lineSeparators = map[string]string{
	"LF":   "\n",
	"CRLF": "\r\n",
}

// ParseSeparator resolves a column separator name such as "TAB".
func ParseSeparator(name string) (rune, error) {
	if r, ok := separators[strings.ToUpper(name)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown column separator %q (expected COMMA, TAB, SEMICOLON or PIPE)", name)
}

// ParseLineSeparator resolves "LF" or "CRLF".
func ParseLineSeparator(name string) (string, error) {
	if s, ok := lineSeparators[strings.ToUpper(name)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown line separator %q (expected LF or CRLF)", name)
}

// ParseQuote accepts a single '"' or '\'' character.
func ParseQuote(s string) (rune, error) {
	switch s {
	case `"`:
		return '"', nil
	case `'`:
		return '\'', nil
	}
	return 0, fmt.Errorf("unsupported quote character %q", s)
}

// SeparatorName returns the name of a column separator, or the quoted rune
// for one without a name.
func SeparatorName(r rune) string {
	for name, v := range separators {
		if v == r {
			return name
		}
	}
	return fmt.Sprintf("%q", r)
}

// LineSeparatorName returns "LF", "CRLF" or the quoted string.
func LineSeparatorName(s string) string {
	for name, v := range lineSeparators {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("%q", s)
}

func (d Dialect) String() string {
	return fmt.Sprintf("column_separator=%s, line_separator=%s, quote_char=%q, skip_initial_space=%t",
		SeparatorName(d.Delimiter), LineSeparatorName(d.LineTerminator), d.Quote, d.SkipInitialSpace)
}

// HeaderMode decides whether the first row is a header.
type HeaderMode string

const (
	// HeaderAuto takes the sniffed answer.
	HeaderAuto HeaderMode = "auto"
	HeaderYes  HeaderMode = "y"
	HeaderNo   HeaderMode = "n"
)

// ParseHeaderMode accepts "", "auto", "y", "yes", "n" and "no".
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return HeaderAuto, nil
	case "y", "yes":
		return HeaderYes, nil
	case "n", "no":
		return HeaderNo, nil
	}
	return "", fmt.Errorf("invalid header mode %q (expected y, n or auto)", s)
}

// Resolve returns the header decision given the sniffed one.
func (m HeaderMode) Resolve(sniffed bool) bool {
	switch m {
	case HeaderYes:
		return true
	case HeaderNo:
		return false
	default:
		return sniffed
	}
}
