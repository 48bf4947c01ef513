package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeparator(t *testing.T) {
	for name, want := range map[string]rune{"COMMA": ',', "tab": '\t', "SEMICOLON": ';', "PIPE": '|'} {
		got, err := ParseSeparator(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseSeparator("SPACE")
	assert.Error(t, err)
}

func TestParseLineSeparator(t *testing.T) {
	lf, err := ParseLineSeparator("LF")
	require.NoError(t, err)
	assert.Equal(t, "\n", lf)

	crlf, err := ParseLineSeparator("crlf")
	require.NoError(t, err)
	assert.Equal(t, "\r\n", crlf)

	_, err = ParseLineSeparator("CR")
	assert.Error(t, err)
}

func TestSeparatorNames(t *testing.T) {
	assert.Equal(t, "TAB", SeparatorName('\t'))
	assert.Equal(t, "':'", SeparatorName(':'))
	assert.Equal(t, "CRLF", LineSeparatorName("\r\n"))
}

func TestHeaderMode(t *testing.T) {
	tests := []struct {
		input   string
		want    HeaderMode
		sniffed bool
		header  bool
	}{
		{input: "", want: HeaderAuto, sniffed: true, header: true},
		{input: "auto", want: HeaderAuto, sniffed: false, header: false},
		{input: "y", want: HeaderYes, sniffed: false, header: true},
		{input: "no", want: HeaderNo, sniffed: true, header: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseHeaderMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.header, mode.Resolve(tt.sniffed))
		})
	}

	_, err := ParseHeaderMode("maybe")
	assert.Error(t, err)
}
