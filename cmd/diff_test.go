package cmd

import (
	"testing"

	"csvdiff/core/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDiffFlags(t *testing.T) {
	defaults := config.DiffConfig{
		MatchingKeys:       "0",
		EncodingLHS:        "utf8",
		EncodingRHS:        "utf8",
		Header:             "auto",
		SniffingSize:       4096,
		ColumnSeparatorLHS: "COMMA",
		ColumnSeparatorRHS: "COMMA",
		QuoteCharLHS:       `"`,
		QuoteCharRHS:       `"`,
	}

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, d config.DiffConfig)
	}{
		{
			name: "unset flags keep the configuration",
			args: nil,
			check: func(t *testing.T, d config.DiffConfig) {
				assert.Equal(t, defaults, d)
			},
		},
		{
			name: "short flags",
			args: []string{"-k", "0:8,3", "-u", "-d", "-x", "-H", "y", "-S", "1024"},
			check: func(t *testing.T, d config.DiffConfig) {
				assert.Equal(t, "0:8,3", d.MatchingKeys)
				assert.True(t, d.UniqueKey)
				assert.True(t, d.DifferenceOnly)
				assert.True(t, d.ShowContext)
				assert.Equal(t, "y", d.Header)
				assert.Equal(t, 1024, d.SniffingSize)
			},
		},
		{
			name: "per side flags",
			args: []string{"--column-separator-for-lhs", "TAB", "--encoding-for-rhs", "cp932"},
			check: func(t *testing.T, d config.DiffConfig) {
				assert.Equal(t, "TAB", d.ColumnSeparatorLHS)
				assert.Equal(t, "COMMA", d.ColumnSeparatorRHS)
				assert.Equal(t, "cp932", d.EncodingRHS)
			},
		},
		{
			name: "shared flags win",
			args: []string{"--quote-char-for-lhs", `"`, "--quote-char", "'", "--column-separator", "SEMICOLON"},
			check: func(t *testing.T, d config.DiffConfig) {
				assert.Equal(t, "'", d.QuoteCharLHS)
				assert.Equal(t, "'", d.QuoteCharRHS)
				assert.Equal(t, "SEMICOLON", d.ColumnSeparatorLHS)
				assert.Equal(t, "SEMICOLON", d.ColumnSeparatorRHS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{}
			c.Flags().AddFlagSet(diffCmd.Flags())
			// Changed marks persist on the shared flags, so reset them.
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
			require.NoError(t, c.Flags().Parse(tt.args))

			d := defaults
			applyDiffFlags(c.Flags(), &d)
			tt.check(t, d)
		})
	}
}

func TestDiffFlagsExclusive(t *testing.T) {
	RootCmd.SetArgs([]string{"diff", "-d", "-a", "left.csv", "right.csv"})
	err := RootCmd.Execute()
	assert.ErrorContains(t, err, "none of the others can be")
}
