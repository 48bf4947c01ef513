package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name       string
		sample     string
		delimiter  rune
		quote      rune
		terminator string
		skipSpace  bool
		header     bool
	}{
		{
			name:       "CommaWithHeader",
			sample:     "id,name,price\n1,apple,100\n2,banana,250\n3,cherry,300\n",
			delimiter:  ',',
			quote:      '"',
			terminator: "\n",
			header:     true,
		},
		{
			name:       "TabWithoutHeader",
			sample:     "1\talpha\n2\tbeta\n3\tgamma\n",
			delimiter:  '\t',
			quote:      '"',
			terminator: "\n",
		},
		{
			name:       "SpaceAfterSeparator",
			sample:     "1, 2, 3\n4, 5, 6\n",
			delimiter:  ',',
			quote:      '"',
			terminator: "\n",
			skipSpace:  true,
		},
		{
			name:       "CRLF",
			sample:     "a,b\r\n1,2\r\n",
			delimiter:  ',',
			quote:      '"',
			terminator: "\r\n",
			header:     true,
		},
		{
			name:       "TruncatedLastLine",
			sample:     "a|b\n1|2\n3|2\n4",
			delimiter:  '|',
			quote:      '"',
			terminator: "\n",
			header:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Sniff([]byte(tt.sample))
			require.NoError(t, err)
			assert.Equal(t, tt.delimiter, d.Delimiter)
			assert.Equal(t, tt.quote, d.Quote)
			assert.Equal(t, tt.terminator, d.LineTerminator)
			assert.Equal(t, tt.skipSpace, d.SkipInitialSpace)
			assert.Equal(t, tt.header, d.HasHeader)
		})
	}
}

func TestSniff_SingleQuote(t *testing.T) {
	d, err := Sniff([]byte("'a; b';x\n'c';y\n"))
	require.NoError(t, err)
	assert.Equal(t, ';', d.Delimiter)
	assert.Equal(t, '\'', d.Quote)
}

func TestSniff_Fails(t *testing.T) {
	for _, sample := range []string{"", "\n\n", "hello\nworld\n"} {
		_, err := Sniff([]byte(sample))
		assert.ErrorIs(t, err, ErrSniffFailed, "%q", sample)
	}
}

func TestReadSample(t *testing.T) {
	rs := strings.NewReader("0123456789")

	sample, err := ReadSample(rs, 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(sample))

	rest, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(rest), "reader is back at the start")

	sample, err = ReadSample(rs, 64)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(sample))
}

func TestSniffFile_Decodes(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String("番号;名前カナ\n1;山田\n2;鈴木\n")
	require.NoError(t, err)

	rs := strings.NewReader(encoded)
	d, err := SniffFile(rs, 4096, japanese.ShiftJIS)
	require.NoError(t, err)
	assert.Equal(t, ';', d.Delimiter)
	assert.True(t, d.HasHeader)

	pos, err := rs.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}
