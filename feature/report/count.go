package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCount prints the count section when opts.ShowCount is set.
func WriteCount(w io.Writer, opts Options, s *Summary) error {
	if !opts.ShowCount {
		return nil
	}

	digits := 0
	for _, n := range []int{s.Same, s.LeftOnly, s.RightOnly, s.Differences} {
		digits = max(digits, len(strconv.Itoa(n)))
	}
	num := func(n int) string { return rightJustified(strconv.Itoa(n), digits) }

	p := &printer{w: w}
	p.blank()
	p.line("● Count & Row number")
	p.line("same lines           : %s", num(s.Same))
	p.line("left side only    (%s): %s :-- Row Numbers      -->: %s", MarkLeftOnly, num(s.LeftOnly), FormatInts(s.LeftOnlyRows))
	p.line("right side only   (%s): %s :-- Row Numbers      -->: %s", MarkRightOnly, num(s.RightOnly), FormatInts(s.RightOnlyRows))
	p.line("with differences  (%s): %s :-- Row Number Pairs -->: %s", MarkHasDiff, num(s.Differences), formatPairs(s.DifferenceRows))
	return p.err
}

func formatPairs(pairs []RowPair) string {
	parts := make([]string, len(pairs))
	for i, pair := range pairs {
		parts[i] = fmt.Sprintf("(%d, %d)", pair.Left, pair.Right)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
