package diff

import (
	"fmt"
	"strconv"
	"strings"

	"csvdiff/core/config"
	"csvdiff/core/csvio"
	"csvdiff/feature/report"
)

// SideOptions describes one input.
type SideOptions struct {
	// Path is a file path, s3://bucket/key, sql:<query> or table:<name>.
	Path     string
	Encoding string

	// Dialect settings used when sniffing is skipped or fails.
	ColumnSeparator string
	LineSeparator   string
	QuoteChar       string
	NoSkipSpace     bool
}

// Options configures a run.
type Options struct {
	Left  SideOptions
	Right SideOptions

	MatchingKeys  string
	UniqueKey     bool
	IgnoreColumns string

	// Header is y, n or auto.
	Header               string
	SniffingSize         int
	ForceIndividualSpecs bool

	Report report.Options

	// JSONPath receives the summary; it may be an s3:// location.
	JSONPath string
}

// OptionsFromConfig fills Options from the configured defaults.
func OptionsFromConfig(cfg config.DiffConfig, left, right string) Options {
	leftEnc, rightEnc := cfg.EncodingLHS, cfg.EncodingRHS
	if cfg.Encoding != "" {
		leftEnc, rightEnc = cfg.Encoding, cfg.Encoding
	}

	return Options{
		Left: SideOptions{
			Path:            left,
			Encoding:        leftEnc,
			ColumnSeparator: cfg.ColumnSeparatorLHS,
			LineSeparator:   cfg.LineSeparatorLHS,
			QuoteChar:       cfg.QuoteCharLHS,
			NoSkipSpace:     cfg.NoSkipSpaceLHS,
		},
		Right: SideOptions{
			Path:            right,
			Encoding:        rightEnc,
			ColumnSeparator: cfg.ColumnSeparatorRHS,
			LineSeparator:   cfg.LineSeparatorRHS,
			QuoteChar:       cfg.QuoteCharRHS,
			NoSkipSpace:     cfg.NoSkipSpaceRHS,
		},
		MatchingKeys:         cfg.MatchingKeys,
		UniqueKey:            cfg.UniqueKey,
		IgnoreColumns:        cfg.IgnoreColumns,
		Header:               cfg.Header,
		SniffingSize:         cfg.SniffingSize,
		ForceIndividualSpecs: cfg.ForceIndividualSpecs,
		Report: report.Options{
			Vertical:       cfg.Vertical,
			ShowCount:      cfg.ShowCount,
			DifferenceOnly: cfg.DifferenceOnly,
			AllLines:       cfg.AllLines,
			ShowContext:    cfg.ShowContext,
		},
	}
}

// Dialect builds the configured dialect of one side.
func (o SideOptions) Dialect() (csvio.Dialect, error) {
	d := csvio.DefaultDialect()

	if o.ColumnSeparator != "" {
		sep, err := csvio.ParseSeparator(o.ColumnSeparator)
		if err != nil {
			return d, err
		}
		d.Delimiter = sep
	}
	if o.LineSeparator != "" {
		ls, err := csvio.ParseLineSeparator(o.LineSeparator)
		if err != nil {
			return d, err
		}
		d.LineTerminator = ls
	}
	if o.QuoteChar != "" {
		q, err := csvio.ParseQuote(o.QuoteChar)
		if err != nil {
			return d, err
		}
		d.Quote = q
	}
	d.SkipInitialSpace = !o.NoSkipSpace

	return d, nil
}

// ParseIndices parses a comma separated list of column indices such as
// "3,7". Empty elements are skipped.
func ParseIndices(text string) ([]int, error) {
	var indices []int
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid column index %q in %q", part, text)
		}
		indices = append(indices, n)
	}
	return indices, nil
}
