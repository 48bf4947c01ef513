package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csvdiff/core/matchkey"
	"csvdiff/core/reconcile"
	"csvdiff/core/rowsource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fact(side rowsource.Side, n int, row ...string) rowsource.RowFact {
	return rowsource.RowFact{Side: side, RowNumber: n, Row: row, Key: matchkey.RealKey(row[0])}
}

func diff(columns ...int) reconcile.ValueDiffResult {
	return reconcile.ValueDiffResult{Columns: columns}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		count     bool
		details   bool
		needsSize bool
	}{
		{name: "NothingSelected", opts: Options{}, count: true},
		{name: "DifferenceOnly", opts: Options{DifferenceOnly: true}, details: true, needsSize: true},
		{name: "AllVertical", opts: Options{AllLines: true, Vertical: true}, details: true},
		{name: "CountKept", opts: Options{AllLines: true, ShowCount: true}, count: true, details: true, needsSize: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.opts.Normalize()
			assert.Equal(t, tt.count, o.ShowCount)
			assert.Equal(t, tt.details, o.ShowsDetails())
			assert.Equal(t, tt.needsSize, o.NeedsSizeInfo())
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, `["1", "a b", "say \"hi\""]`, FormatRow([]string{"1", "a b", `say "hi"`}))
	assert.Equal(t, `[]`, FormatRow([]string{}))
	assert.Equal(t, "[1, 3]", FormatInts([]int{1, 3}))
	assert.Equal(t, "[]", FormatInts(nil))

	assert.Equal(t, 3, Width("abc"))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 2, Width("α"), "ambiguous width counts as two")
	assert.Equal(t, "日本  ", leftJustified("日本", 6))
	assert.Equal(t, "  日本", rightJustified("日本", 6))
	assert.Equal(t, "toolong", leftJustified("toolong", 3))
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	var h reconcile.Handler = c

	require.NoError(t, h.OnMatched(fact(rowsource.Left, 1, "1", "a"), fact(rowsource.Right, 1, "1", "a"), diff()))
	require.NoError(t, h.OnLeftOnly(fact(rowsource.Left, 2, "2", "b")))
	require.NoError(t, h.OnMatched(fact(rowsource.Left, 3, "3", "c"), fact(rowsource.Right, 2, "3", "x"), diff(1)))
	require.NoError(t, h.OnRightOnly(fact(rowsource.Right, 3, "4", "d")))

	s := c.Summary()
	assert.Equal(t, 1, s.Same)
	assert.Equal(t, 1, s.LeftOnly)
	assert.Equal(t, 1, s.RightOnly)
	assert.Equal(t, 1, s.Differences)
	assert.Equal(t, []int{2}, s.LeftOnlyRows)
	assert.Equal(t, []int{3}, s.RightOnlyRows)
	assert.Equal(t, []RowPair{{Left: 3, Right: 2, Columns: []int{1}}}, s.DifferenceRows)
	assert.True(t, s.HasDifference())

	assert.False(t, NewCounter().Summary().HasDifference())
}

func TestWriteCount(t *testing.T) {
	s := &Summary{
		Same:           10,
		LeftOnly:       1,
		Differences:    1,
		LeftOnlyRows:   []int{2},
		RightOnlyRows:  []int{},
		DifferenceRows: []RowPair{{Left: 3, Right: 4, Columns: []int{1}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCount(&buf, Options{ShowCount: true}, s))
	assert.Equal(t, "\n"+
		"● Count & Row number\n"+
		"same lines           : 10\n"+
		"left side only    (<):  1 :-- Row Numbers      -->: [2]\n"+
		"right side only   (>):  0 :-- Row Numbers      -->: []\n"+
		"with differences  (!):  1 :-- Row Number Pairs -->: [(3, 4)]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCount(&buf, Options{}, s))
	assert.Empty(t, buf.String())
}

func TestHeading(t *testing.T) {
	context := []ContextLine{
		{Name: "Matching Key Indices", Value: "0:8"},
		Section("csv analysis conditions"),
		{Name: "column_separator_for_lhs", Value: "COMMA"},
	}

	var buf bytes.Buffer
	require.NoError(t, Heading(&buf, Options{}, context))
	assert.Equal(t, "\n============ Report ============\n", buf.String())

	buf.Reset()
	require.NoError(t, Heading(&buf, Options{ShowContext: true}, context))
	assert.Equal(t, "\n============ Report ============\n"+
		"\n● Context\n"+
		"Matching Key Indices: 0:8\n"+
		"--- csv analysis conditions ---\n"+
		"column_separator_for_lhs: COMMA\n", buf.String())
}

func TestHorizontal(t *testing.T) {
	size := reconcile.SizeInfo{LeftMaxRowNumber: 2, LeftMaxRowWidth: 10, RightMaxRowNumber: 2, RightMaxRowWidth: 10}

	var buf bytes.Buffer
	h := NewDetail(&buf, Options{DifferenceOnly: true}, &size)
	require.IsType(t, &Horizontal{}, h)

	require.NoError(t, h.WriteHeading("/data/left.csv", "right.csv"))
	require.NoError(t, h.OnMatched(fact(rowsource.Left, 1, "1", "a"), fact(rowsource.Right, 1, "1", "z"), diff(1)))
	require.NoError(t, h.OnMatched(fact(rowsource.Left, 2, "2", "b"), fact(rowsource.Right, 2, "2", "b"), diff()))
	require.NoError(t, h.OnLeftOnly(fact(rowsource.Left, 2, "2", "b")))
	require.NoError(t, h.OnRightOnly(fact(rowsource.Right, 2, "3", "c")))

	division := strings.Repeat("-", 63)
	assert.Equal(t, "\n● Differences\n"+
		division+"\n"+
		"left.csv     "+"    "+"right.csv   "+"    "+"Column indices with difference\n"+
		division+"\n"+
		`1 ["1", "a"]  !  1 ["1", "z"]  @ [1]`+"\n"+
		`2 ["2", "b"]  <  `+"\n"+
		strings.Repeat(" ", 12)+`  >  2 ["3", "c"]`+"\n", buf.String())
}

func TestHorizontal_AllLinesShowsEqualPairs(t *testing.T) {
	size := reconcile.SizeInfo{LeftMaxRowNumber: 1, LeftMaxRowWidth: 10, RightMaxRowNumber: 1, RightMaxRowWidth: 10}

	var buf bytes.Buffer
	h := NewHorizontal(&buf, Options{AllLines: true}, size)
	require.NoError(t, h.OnMatched(fact(rowsource.Left, 1, "1", "a"), fact(rowsource.Right, 1, "1", "a"), diff()))
	assert.Equal(t, `1 ["1", "a"]     1 ["1", "a"]`+"\n", buf.String())
}

func TestVertical(t *testing.T) {
	var buf bytes.Buffer
	v := NewDetail(&buf, Options{AllLines: true, Vertical: true}, nil)
	require.IsType(t, &Vertical{}, v)

	require.NoError(t, v.WriteHeading("left.csv", "/tmp/right.csv"))
	require.NoError(t, v.OnMatched(fact(rowsource.Left, 9, "1", "a"), fact(rowsource.Right, 10, "1", "z"), diff(1)))
	require.NoError(t, v.OnMatched(fact(rowsource.Left, 10, "2", "b"), fact(rowsource.Right, 11, "2", "b"), diff()))
	require.NoError(t, v.OnLeftOnly(fact(rowsource.Left, 11, "3", "c")))
	require.NoError(t, v.OnRightOnly(fact(rowsource.Right, 12, "4", "d")))

	division := strings.Repeat("-", 80)
	assert.Equal(t, "\n● All\n"+
		division+"\n"+
		"L left.csv\n"+
		"R right.csv\n"+
		division+"\n"+
		"! @ [1]\n"+
		`  L  9 ["1", "a"]`+"\n"+
		`  R 10 ["1", "z"]`+"\n"+
		"=\n"+
		`  L 10 ["2", "b"]`+"\n"+
		`  R 11 ["2", "b"]`+"\n"+
		`< L 11 ["3", "c"]`+"\n"+
		`> R 12 ["4", "d"]`+"\n", buf.String())
}

func TestDetail_CountOnlyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	for _, d := range []Detail{
		NewHorizontal(&buf, Options{ShowCount: true}, reconcile.SizeInfo{}),
		NewVertical(&buf, Options{ShowCount: true}),
	} {
		require.NoError(t, d.WriteHeading("l", "r"))
		require.NoError(t, d.OnLeftOnly(fact(rowsource.Left, 1, "1")))
		require.NoError(t, d.OnRightOnly(fact(rowsource.Right, 1, "2")))
		require.NoError(t, d.OnMatched(fact(rowsource.Left, 2, "3"), fact(rowsource.Right, 2, "3"), diff(0)))
	}
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDetail_WriteErrors(t *testing.T) {
	v := NewVertical(failingWriter{}, Options{AllLines: true})
	err := v.OnLeftOnly(fact(rowsource.Left, 1, "1"))
	assert.EqualError(t, err, "disk full")
}

func TestWriteJSON(t *testing.T) {
	s := NewCounter().Summary()
	s.RunID = "run-1"
	s.Same = 2

	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, WriteJSON(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, float64(2), decoded["same"])
	assert.Equal(t, []any{}, decoded["left_only_rows"])
}
