package report

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"csvdiff/core/reconcile"
	"csvdiff/core/rowsource"
)

// Detail is a reporter that prints individual rows.
type Detail interface {
	reconcile.Handler
	// WriteHeading prints the section title and the input names.
	WriteHeading(leftName, rightName string) error
}

// NewDetail picks the vertical or horizontal reporter. size may be nil when
// opts.NeedsSizeInfo is false.
func NewDetail(w io.Writer, opts Options, size *reconcile.SizeInfo) Detail {
	if opts.Vertical {
		return NewVertical(w, opts)
	}
	if size == nil {
		size = &reconcile.SizeInfo{}
	}
	return NewHorizontal(w, opts, *size)
}

const (
	diffColumnsGuide  = "Column indices with difference"
	diffColumnsPrefix = "  @ "
	markPadding       = "  "
)

// Horizontal prints the two sides facing each other.
type Horizontal struct {
	p    *printer
	opts Options

	leftNumber, leftRow   int
	rightNumber, rightRow int
}

// NewHorizontal lays out columns from the pre-scan sizes.
func NewHorizontal(w io.Writer, opts Options, size reconcile.SizeInfo) *Horizontal {
	return &Horizontal{
		p:           &printer{w: w},
		opts:        opts,
		leftNumber:  len(strconv.Itoa(size.LeftMaxRowNumber)),
		leftRow:     size.LeftMaxRowWidth,
		rightNumber: len(strconv.Itoa(size.RightMaxRowNumber)),
		rightRow:    size.RightMaxRowWidth,
	}
}

func (h *Horizontal) leftWidth() int  { return h.leftNumber + 1 + h.leftRow }
func (h *Horizontal) rightWidth() int { return h.rightNumber + 1 + h.rightRow }

func (h *Horizontal) markArea(mark string) string {
	return markPadding + mark + markPadding
}

func (h *Horizontal) WriteHeading(leftName, rightName string) error {
	if !h.opts.ShowsDetails() {
		return nil
	}
	contentHeading(h.p, h.opts)

	markWidth := len(markPadding)*2 + 1
	division := strings.Repeat("-", h.leftWidth()+markWidth+h.rightWidth()+len(diffColumnsPrefix)+len(diffColumnsGuide))

	h.p.line("%s", division)
	h.p.line("%s%s%s%s%s",
		leftJustified(filepath.Base(leftName), h.leftWidth()),
		strings.Repeat(" ", markWidth),
		leftJustified(filepath.Base(rightName), h.rightWidth()),
		strings.Repeat(" ", len(diffColumnsPrefix)),
		diffColumnsGuide)
	h.p.line("%s", division)
	return h.p.err
}

func (h *Horizontal) side(number, numberWidth int, row []string, rowWidth int) string {
	return rightJustified(strconv.Itoa(number), numberWidth) + " " + leftJustified(FormatRow(row), rowWidth)
}

func (h *Horizontal) OnLeftOnly(left rowsource.RowFact) error {
	if !h.opts.ShowsDetails() {
		return nil
	}
	h.p.line("%s%s", h.side(left.RowNumber, h.leftNumber, left.Row, h.leftRow), h.markArea(MarkLeftOnly))
	return h.p.err
}

func (h *Horizontal) OnRightOnly(right rowsource.RowFact) error {
	if !h.opts.ShowsDetails() {
		return nil
	}
	h.p.line("%s%s%s",
		strings.Repeat(" ", h.leftWidth()),
		h.markArea(MarkRightOnly),
		h.side(right.RowNumber, h.rightNumber, right.Row, h.rightRow))
	return h.p.err
}

func (h *Horizontal) OnMatched(left, right rowsource.RowFact, result reconcile.ValueDiffResult) error {
	if !h.opts.showsMatched(result.HasDifference()) {
		return nil
	}

	mark, columns := MarkNoDiff, ""
	if result.HasDifference() {
		mark, columns = MarkHasDiff, diffColumnsPrefix+FormatInts(result.Columns)
	}
	h.p.line("%s%s%s%s",
		h.side(left.RowNumber, h.leftNumber, left.Row, h.leftRow),
		h.markArea(mark),
		h.side(right.RowNumber, h.rightNumber, right.Row, h.rightRow),
		columns)
	return h.p.err
}

const (
	leftMark  = "L"
	rightMark = "R"
)

// Vertical prints one side per line.
type Vertical struct {
	p    *printer
	opts Options
}

func NewVertical(w io.Writer, opts Options) *Vertical {
	return &Vertical{p: &printer{w: w}, opts: opts}
}

func (v *Vertical) WriteHeading(leftName, rightName string) error {
	if !v.opts.ShowsDetails() {
		return nil
	}
	contentHeading(v.p, v.opts)

	division := strings.Repeat("-", 80)
	v.p.line("%s", division)
	v.p.line("%s %s", leftMark, filepath.Base(leftName))
	v.p.line("%s %s", rightMark, filepath.Base(rightName))
	v.p.line("%s", division)
	return v.p.err
}

func (v *Vertical) OnLeftOnly(left rowsource.RowFact) error {
	if !v.opts.ShowsDetails() {
		return nil
	}
	v.p.line("%s %s %d %s", MarkLeftOnly, leftMark, left.RowNumber, FormatRow(left.Row))
	return v.p.err
}

func (v *Vertical) OnRightOnly(right rowsource.RowFact) error {
	if !v.opts.ShowsDetails() {
		return nil
	}
	v.p.line("%s %s %d %s", MarkRightOnly, rightMark, right.RowNumber, FormatRow(right.Row))
	return v.p.err
}

func (v *Vertical) OnMatched(left, right rowsource.RowFact, result reconcile.ValueDiffResult) error {
	if !v.opts.showsMatched(result.HasDifference()) {
		return nil
	}

	if result.HasDifference() {
		v.p.line("%s @ %s", MarkHasDiff, FormatInts(result.Columns))
	} else {
		v.p.line("%s", MarkNoDiffExpressly)
	}

	width := max(len(strconv.Itoa(left.RowNumber)), len(strconv.Itoa(right.RowNumber)))
	v.p.line("  %s %s %s", leftMark, rightJustified(strconv.Itoa(left.RowNumber), width), FormatRow(left.Row))
	v.p.line("  %s %s %s", rightMark, rightJustified(strconv.Itoa(right.RowNumber), width), FormatRow(right.Row))
	return v.p.err
}
