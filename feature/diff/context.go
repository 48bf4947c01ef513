package diff

import (
	"strconv"

	"csvdiff/core/csvio"
	"csvdiff/core/matchkey"
	"csvdiff/feature/report"
)

// contextLines describes a run for the -x report section and debug logs.
func contextLines(opts Options, ro report.Options, spec matchkey.Spec, ignore []int, left, right *input) []report.ContextLine {
	b := strconv.FormatBool
	style := "Two facing (Horizontal)"
	if ro.Vertical {
		style = "Vertical"
	}

	lines := []report.ContextLine{
		{Name: "File Path on the Left-Hand Side", Value: opts.Left.Path},
		{Name: "File Path on the Right-Hand Side", Value: opts.Right.Path},
		{Name: "Matching Key Indices", Value: spec.String()},
		{Name: "Matching Key Is Unique?", Value: b(opts.UniqueKey)},
		{Name: "Column Indices to Ignore", Value: report.FormatInts(ignore)},
		{Name: "with Header? (Left-Hand Side)", Value: b(left.header)},
		{Name: "with Header? (Right-Hand Side)", Value: b(right.header)},
		{Name: "Report Style", Value: style},
		{Name: "Show Count?", Value: b(ro.ShowCount)},
		{Name: "Show Difference Only?", Value: b(ro.DifferenceOnly)},
		{Name: "Show All?", Value: b(ro.AllLines)},
		{Name: "Show Context?", Value: b(ro.ShowContext)},
		{Name: "File Encoding for Left-Hand Side", Value: orDash(left.encoding)},
		{Name: "File Encoding for Right-Hand Side", Value: orDash(right.encoding)},
		{Name: "CSV Sniffing Size", Value: strconv.Itoa(opts.SniffingSize)},
		report.Section("csv analysis conditions"),
		{Name: "Forces Individual Specified Conditions?", Value: b(opts.ForceIndividualSpecs)},
	}

	for _, side := range []struct {
		suffix string
		in     *input
	}{{"lhs", left}, {"rhs", right}} {
		lines = append(lines, dialectLines(side.suffix, side.in)...)
	}
	return lines
}

func dialectLines(suffix string, in *input) []report.ContextLine {
	if in.dialect == nil {
		return []report.ContextLine{{Name: "source_for_" + suffix, Value: "database query"}}
	}
	d := in.dialect
	return []report.ContextLine{
		{Name: "sniffed_for_" + suffix, Value: strconv.FormatBool(in.sniffed)},
		{Name: "column_separator_for_" + suffix, Value: csvio.SeparatorName(d.Delimiter)},
		{Name: "line_separator_for_" + suffix, Value: csvio.LineSeparatorName(d.LineTerminator)},
		{Name: "quote_char_for_" + suffix, Value: string(d.Quote)},
		{Name: "skips_space_after_column_separator_for_" + suffix, Value: strconv.FormatBool(d.SkipInitialSpace)},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
