package report

import (
	"csvdiff/core/reconcile"
	"csvdiff/core/rowsource"
)

// RowPair locates a matched pair with differences.
type RowPair struct {
	Left    int   `json:"left"`
	Right   int   `json:"right"`
	Columns []int `json:"columns"`
}

// Summary is the machine-readable result of a run.
type Summary struct {
	RunID   string `json:"run_id,omitempty"`
	Left    string `json:"left,omitempty"`
	Right   string `json:"right,omitempty"`
	KeySpec string `json:"key_spec,omitempty"`

	Same        int `json:"same"`
	LeftOnly    int `json:"left_only"`
	RightOnly   int `json:"right_only"`
	Differences int `json:"differences"`

	LeftOnlyRows   []int     `json:"left_only_rows"`
	RightOnlyRows  []int     `json:"right_only_rows"`
	DifferenceRows []RowPair `json:"difference_rows"`
}

// HasDifference reports whether the inputs differ at all.
func (s *Summary) HasDifference() bool {
	return s.LeftOnly+s.RightOnly+s.Differences > 0
}

// Counter tallies classification events.
type Counter struct {
	summary Summary
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{summary: Summary{
		LeftOnlyRows:   []int{},
		RightOnlyRows:  []int{},
		DifferenceRows: []RowPair{},
	}}
}

func (c *Counter) OnLeftOnly(left rowsource.RowFact) error {
	c.summary.LeftOnly++
	c.summary.LeftOnlyRows = append(c.summary.LeftOnlyRows, left.RowNumber)
	return nil
}

func (c *Counter) OnRightOnly(right rowsource.RowFact) error {
	c.summary.RightOnly++
	c.summary.RightOnlyRows = append(c.summary.RightOnlyRows, right.RowNumber)
	return nil
}

func (c *Counter) OnMatched(left, right rowsource.RowFact, result reconcile.ValueDiffResult) error {
	if !result.HasDifference() {
		c.summary.Same++
		return nil
	}
	c.summary.Differences++
	c.summary.DifferenceRows = append(c.summary.DifferenceRows, RowPair{
		Left:    left.RowNumber,
		Right:   right.RowNumber,
		Columns: result.Columns,
	})
	return nil
}

// Summary returns the counts so far. Pairs are in left row order.
func (c *Counter) Summary() *Summary {
	s := c.summary
	return &s
}
