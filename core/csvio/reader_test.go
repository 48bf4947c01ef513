package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func readAll(t *testing.T, r *Reader) [][]string {
	t.Helper()
	var rows [][]string
	for {
		row, err := r.Next()
		if err == io.EOF {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestReader_Next(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dialect func(*Dialect)
		want    [][]string
	}{
		{
			name:  "RaggedRowsAndQuotes",
			input: "a,b\n\"x, y\",z\n1,2,3\n",
			want:  [][]string{{"a", "b"}, {"x, y", "z"}, {"1", "2", "3"}},
		},
		{
			name:  "SkipsSpaceAfterSeparator",
			input: "a, b\n",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:    "KeepsSpaceAfterSeparator",
			input:   "a, b\n",
			dialect: func(d *Dialect) { d.SkipInitialSpace = false },
			want:    [][]string{{"a", " b"}},
		},
		{
			name:  "StripsByteOrderMark",
			input: "\ufeffid,name\n1,x\n",
			want:  [][]string{{"id", "name"}, {"1", "x"}},
		},
		{
			name:    "Tab",
			input:   "a\tb,c\n",
			dialect: func(d *Dialect) { d.Delimiter = '\t' },
			want:    [][]string{{"a", "b,c"}},
		},
		{
			name:    "SingleQuote",
			input:   "'x, y',\"q\"\n",
			dialect: func(d *Dialect) { d.Quote = '\'' },
			want:    [][]string{{"x, y", `"q"`}},
		},
		{
			name:  "CRLF",
			input: "a,b\r\nc,d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "LazyQuotes",
			input: "a\"b,c\n",
			want:  [][]string{{`a"b`, "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDialect()
			if tt.dialect != nil {
				tt.dialect(&d)
			}
			r := NewReader(strings.NewReader(tt.input), d, nil)
			assert.Equal(t, tt.want, readAll(t, r))
		})
	}
}

func TestReader_Rewind(t *testing.T) {
	r := NewReader(strings.NewReader("\ufeff1,a\n2,b\n"), DefaultDialect(), nil)

	first := readAll(t, r)
	assert.Equal(t, 2, r.Records())

	require.NoError(t, r.Rewind())
	assert.Equal(t, 0, r.Records())
	assert.Equal(t, first, readAll(t, r))
}

func TestReader_DecodesShiftJIS(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String("名前,値\n山田,１\n")
	require.NoError(t, err)

	enc, err := LookupEncoding("shift_jis")
	require.NoError(t, err)

	r := NewReader(strings.NewReader(encoded), DefaultDialect(), enc)
	assert.Equal(t, [][]string{{"名前", "値"}, {"山田", "１"}}, readAll(t, r))
}
