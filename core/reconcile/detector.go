package reconcile

import (
	"sort"

	"csvdiff/core/failure"
	"csvdiff/core/rowsource"
)

// Detector finds differing columns in matched pairs.
type Detector struct {
	targets []int
}

// NewDetector compares columns 0..columns-1 minus key and ignored columns.
// Ignored indices beyond the column count are harmless.
func NewDetector(columns int, keyIndices, ignoreIndices []int) *Detector {
	excluded := make(map[int]struct{}, len(keyIndices)+len(ignoreIndices))
	for _, i := range keyIndices {
		excluded[i] = struct{}{}
	}
	for _, i := range ignoreIndices {
		excluded[i] = struct{}{}
	}

	targets := make([]int, 0, columns)
	for i := 0; i < columns; i++ {
		if _, skip := excluded[i]; !skip {
			targets = append(targets, i)
		}
	}
	sort.Ints(targets)

	return &Detector{targets: targets}
}

// Targets returns the compared column indices in ascending order.
func (d *Detector) Targets() []int {
	return d.targets
}

// Detect compares left and right as plain strings on every target column.
func (d *Detector) Detect(left, right []string) (ValueDiffResult, error) {
	var columns []int
	for _, i := range d.targets {
		if i >= len(left) {
			return ValueDiffResult{}, outOfRange(rowsource.Left, left, i)
		}
		if i >= len(right) {
			return ValueDiffResult{}, outOfRange(rowsource.Right, right, i)
		}
		if left[i] != right[i] {
			columns = append(columns, i)
		}
	}
	return ValueDiffResult{Columns: columns}, nil
}

func outOfRange(side rowsource.Side, row []string, index int) error {
	return &failure.Error{
		Kind:    failure.KindIndexOutOfRange,
		Side:    string(side),
		Row:     row,
		Index:   index,
		Columns: len(row),
		Hint:    "the number of columns may not be aligned across rows; check the csv data",
	}
}
