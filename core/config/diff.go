package config

// DiffConfig holds the defaults of a diff run. Command flags that are set
// explicitly take precedence over these values.
type DiffConfig struct {
	// MatchingKeys is the key spec, e.g. "0:8,3".
	MatchingKeys string `mapstructure:"matching_keys" default:"0"`
	// UniqueKey rejects repeated keys.
	UniqueKey bool `mapstructure:"unique_key" default:"false"`
	// IgnoreColumns lists column indices excluded from comparison, e.g. "3,7".
	IgnoreColumns string `mapstructure:"ignore_columns" default:""`

	// Encoding applies to both sides when set.
	Encoding    string `mapstructure:"encoding" default:""`
	EncodingLHS string `mapstructure:"encoding_lhs" default:"utf8"`
	EncodingRHS string `mapstructure:"encoding_rhs" default:"utf8"`

	// Header is y, n or auto.
	Header       string `mapstructure:"header" default:"auto"`
	SniffingSize int    `mapstructure:"sniffing_size" default:"4096"`
	// ForceIndividualSpecs skips sniffing and uses the dialect settings below.
	ForceIndividualSpecs bool `mapstructure:"force_individual_specs" default:"false"`

	ColumnSeparatorLHS string `mapstructure:"column_separator_lhs" default:"COMMA"`
	ColumnSeparatorRHS string `mapstructure:"column_separator_rhs" default:"COMMA"`
	LineSeparatorLHS   string `mapstructure:"line_separator_lhs" default:"LF"`
	LineSeparatorRHS   string `mapstructure:"line_separator_rhs" default:"LF"`
	QuoteCharLHS       string `mapstructure:"quote_char_lhs" default:"\""`
	QuoteCharRHS       string `mapstructure:"quote_char_rhs" default:"\""`
	NoSkipSpaceLHS     bool   `mapstructure:"no_skip_space_lhs" default:"false"`
	NoSkipSpaceRHS     bool   `mapstructure:"no_skip_space_rhs" default:"false"`

	Vertical       bool `mapstructure:"vertical" default:"false"`
	ShowCount      bool `mapstructure:"show_count" default:"false"`
	DifferenceOnly bool `mapstructure:"difference_only" default:"false"`
	AllLines       bool `mapstructure:"all_lines" default:"false"`
	ShowContext    bool `mapstructure:"show_context" default:"false"`
}
