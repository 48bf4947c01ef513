package reconcile

import (
	"errors"
	"testing"

	"csvdiff/core/matchkey"
	"csvdiff/core/rowsource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	left := [][]string{{"1", "a"}, {"2", "bbbb"}, {"3", "c"}}
	right := [][]string{{"1", "a", "extra"}, {"4", "dd"}}

	t.Run("Light", func(t *testing.T) {
		l := source(t, rowsource.Left, false, left...)
		r := source(t, rowsource.Right, false, right...)

		res, err := Scan(l, r, ScanLight, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Columns)
		assert.Nil(t, res.Size)
		assert.Equal(t, 0, l.RowNumber())
		assert.Equal(t, 0, r.RowNumber())
	})

	t.Run("Deep", func(t *testing.T) {
		l := source(t, rowsource.Left, false, left...)
		r := source(t, rowsource.Right, false, right...)

		res, err := Scan(l, r, ScanDeep, nil)
		require.NoError(t, err)
		require.NotNil(t, res.Size)
		assert.Equal(t, SizeInfo{
			LeftMaxRowNumber:  3,
			LeftMaxRowWidth:   5,
			RightMaxRowNumber: 2,
			RightMaxRowWidth:  7,
		}, *res.Size)

		fact, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, 1, fact.RowNumber)
		assert.Equal(t, []string{"1", "a"}, fact.Row)
	})

	t.Run("CustomMeasure", func(t *testing.T) {
		l := source(t, rowsource.Left, false, left...)
		r := source(t, rowsource.Right, false, right...)

		res, err := Scan(l, r, ScanDeep, func(row []string) int { return len(row) * 10 })
		require.NoError(t, err)
		assert.Equal(t, 20, res.Size.LeftMaxRowWidth)
		assert.Equal(t, 30, res.Size.RightMaxRowWidth)
	})
}

func TestScan_Columns(t *testing.T) {
	tests := []struct {
		name  string
		left  [][]string
		right [][]string
		want  int
	}{
		{name: "FromLeft", left: [][]string{{"1", "a", "b"}}, right: [][]string{{"1"}}, want: 3},
		{name: "FromRightWhenLeftEmpty", right: [][]string{{"1", "a"}}, want: 2},
		{name: "BothEmpty", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := source(t, rowsource.Left, false, tt.left...)
			r := source(t, rowsource.Right, false, tt.right...)

			res, err := Scan(l, r, ScanLight, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Columns)
		})
	}
}

type stuckSource struct {
	fact     rowsource.RowFact
	resetErr error
}

func (s *stuckSource) Next() (rowsource.RowFact, error) { return s.fact, nil }
func (s *stuckSource) Reset() error                     { return s.resetErr }
func (s *stuckSource) RowNumber() int                   { return 0 }

func TestScan_ResetFailure(t *testing.T) {
	boom := errors.New("cannot rewind")
	l := source(t, rowsource.Left, false, []string{"1"})
	r := &stuckSource{
		fact:     rowsource.RowFact{Side: rowsource.Right, Key: matchkey.End},
		resetErr: boom,
	}

	_, err := Scan(l, r, ScanLight, nil)
	assert.ErrorIs(t, err, boom)
}
