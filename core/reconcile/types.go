package reconcile

import "csvdiff/core/rowsource"

// Source is the part of rowsource.Source the engine and scanner use.
type Source interface {
	Next() (rowsource.RowFact, error)
	Reset() error
	RowNumber() int
}

// ValueDiffResult lists the columns whose values differ in a matched pair.
type ValueDiffResult struct {
	// Columns holds differing column indices in ascending order.
	Columns []int `json:"columns"`
}

// HasDifference reports whether any compared column differs.
func (r ValueDiffResult) HasDifference() bool {
	return len(r.Columns) > 0
}

// Handler consumes classification events in key order.
type Handler interface {
	// OnLeftOnly is called for a row whose key has no counterpart on the right.
	OnLeftOnly(left rowsource.RowFact) error

	// OnRightOnly is called for a row whose key has no counterpart on the left.
	OnRightOnly(right rowsource.RowFact) error

	// OnMatched is called for a pair of rows sharing a key.
	OnMatched(left, right rowsource.RowFact, result ValueDiffResult) error
}

// ScanMode selects how much the pre-scan measures.
type ScanMode int

const (
	// ScanLight only learns the column count.
	ScanLight ScanMode = iota
	// ScanDeep also drains both sides to collect SizeInfo.
	ScanDeep
)

// ScanResult holds what the pre-scan learned.
type ScanResult struct {
	// Columns is the length of the first data row (left side first).
	Columns int

	// Size is set in ScanDeep mode only.
	Size *SizeInfo
}

// SizeInfo carries the metrics needed to align a two-column report.
type SizeInfo struct {
	LeftMaxRowNumber  int
	LeftMaxRowWidth   int
	RightMaxRowNumber int
	RightMaxRowWidth  int
}
