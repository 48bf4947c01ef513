package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Marks printed in front of or between rows.
const (
	MarkLeftOnly        = "<"
	MarkRightOnly       = ">"
	MarkHasDiff         = "!"
	MarkNoDiff          = " "
	MarkNoDiffExpressly = "="
)

var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	return c
}()

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return cells.StringWidth(s)
}

// RowWidth is the display width of a row as FormatRow renders it.
func RowWidth(row []string) int {
	return Width(FormatRow(row))
}

// FormatRow renders a row as a bracketed list of quoted fields.
func FormatRow(row []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(v))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatInts renders numbers as [1, 2, 3].
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func leftJustified(s string, width int) string {
	if pad := width - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func rightJustified(s string, width int) string {
	if pad := width - Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) blank() {
	p.line("")
}
