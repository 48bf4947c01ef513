package reconcile

import (
	"fmt"

	"csvdiff/core/rowsource"
)

// Scan runs the pre-pass over both sources and resets them afterwards.
// In ScanDeep mode measure gives the display width of a row; nil counts
// the bytes of its fields.
func Scan(left, right Source, mode ScanMode, measure func([]string) int) (ScanResult, error) {
	if measure == nil {
		measure = rowBytes
	}

	l, err := left.Next()
	if err != nil {
		return ScanResult{}, err
	}
	r, err := right.Next()
	if err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{Columns: columnsOf(l, r)}

	if mode == ScanDeep {
		size := &SizeInfo{}
		if size.LeftMaxRowWidth, err = drainWidth(left, l, measure); err != nil {
			return ScanResult{}, err
		}
		if size.RightMaxRowWidth, err = drainWidth(right, r, measure); err != nil {
			return ScanResult{}, err
		}
		size.LeftMaxRowNumber = left.RowNumber()
		size.RightMaxRowNumber = right.RowNumber()
		result.Size = size
	}

	if err := left.Reset(); err != nil {
		return ScanResult{}, fmt.Errorf("failed to reset after pre-scan: %w", err)
	}
	if err := right.Reset(); err != nil {
		return ScanResult{}, fmt.Errorf("failed to reset after pre-scan: %w", err)
	}

	return result, nil
}

func columnsOf(l, r rowsource.RowFact) int {
	if len(l.Row) > 0 {
		return len(l.Row)
	}
	return len(r.Row)
}

func drainWidth(src Source, first rowsource.RowFact, measure func([]string) int) (int, error) {
	widest := 0
	for fact := first; !fact.IsEnd(); {
		widest = max(widest, measure(fact.Row))

		var err error
		if fact, err = src.Next(); err != nil {
			return 0, err
		}
	}
	return widest, nil
}

func rowBytes(row []string) int {
	n := 0
	for _, v := range row {
		n += len(v)
	}
	return n
}
