package cmd

import (
	"context"
	"fmt"
	"os"

	"csvdiff/core/config"
	"csvdiff/core/database"
	"csvdiff/core/history"
	"csvdiff/core/logger"
	"csvdiff/core/storage"
	"csvdiff/feature/diff"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// diffFlags holds the flags of the diff command. Only flags set on the
// command line override the configuration.
var diffFlags struct {
	encoding, encodingLHS, encodingRHS string

	matchingKeys  string
	uniqueKey     bool
	ignoreColumns string

	vertical, showCount, differenceOnly, allLines, showContext bool

	header               string
	sniffingSize         int
	forceIndividualSpecs bool

	columnSeparator, columnSeparatorLHS, columnSeparatorRHS string
	lineSeparator, lineSeparatorLHS, lineSeparatorRHS       string
	quoteChar, quoteCharLHS, quoteCharRHS                   string
	noSkipSpace, noSkipSpaceLHS, noSkipSpaceRHS             bool

	jsonPath    string
	historyPath string
}

var diffCmd = &cobra.Command{
	Use:   "diff LHS RHS",
	Short: "Compare two key-sorted inputs",
	Long: `Compare two inputs sorted by the same matching key.

An input is a file path, an object location (s3://bucket/key), a query
(sql:SELECT ...) or a table (table:name) read through the configured database.

Examples:
  # Count matched, left-only, right-only and differing rows
  csvdiff diff old.csv new.csv

  # Key on column 0 padded to 8 digits and column 3, print differences only
  csvdiff diff -k0:8,3 -d old.csv new.csv

  # Compare a Shift_JIS export with a table and save the summary
  csvdiff diff -e cp932 export.csv table:items --json summary.json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	f := diffCmd.Flags()

	f.StringVarP(&diffFlags.encoding, "encoding", "e", "", "Encoding of both inputs, overrides the per-side encodings")
	f.StringVar(&diffFlags.encodingLHS, "encoding-for-lhs", "utf8", "Encoding of the left-hand side")
	f.StringVar(&diffFlags.encodingRHS, "encoding-for-rhs", "utf8", "Encoding of the right-hand side")

	f.StringVarP(&diffFlags.matchingKeys, "matching-keys", "k", "0", "Matching key indices with optional max widths, e.g. 0:8,3")
	f.BoolVarP(&diffFlags.uniqueKey, "unique-key", "u", false, "Fail when a matching key repeats")
	f.StringVarP(&diffFlags.ignoreColumns, "ignore-columns", "i", "", "Column indices excluded from comparison, e.g. 3,7")

	f.BoolVarP(&diffFlags.vertical, "vertical-style", "v", false, "Print each side on its own line")
	f.BoolVarP(&diffFlags.showCount, "show-count", "c", false, "Print counts and row numbers")
	f.BoolVarP(&diffFlags.differenceOnly, "show-difference-only", "d", false, "Print rows with differences")
	f.BoolVarP(&diffFlags.allLines, "show-all-lines", "a", false, "Print all rows")
	f.BoolVarP(&diffFlags.showContext, "show-context-from-arguments", "x", false, "Print the run conditions")
	diffCmd.MarkFlagsMutuallyExclusive("show-difference-only", "show-all-lines")

	f.StringVarP(&diffFlags.header, "header", "H", "auto", "Whether the inputs have a header row: y, n or auto")
	f.IntVarP(&diffFlags.sniffingSize, "sniffing-size", "S", 4096, "Bytes read to guess the dialect")
	f.BoolVarP(&diffFlags.forceIndividualSpecs, "force-individual-specs", "F", false, "Use the dialect flags instead of guessing")

	f.StringVar(&diffFlags.columnSeparator, "column-separator", "", "Column separator of both inputs: COMMA, TAB, SEMICOLON or PIPE")
	f.StringVar(&diffFlags.columnSeparatorLHS, "column-separator-for-lhs", "COMMA", "Column separator of the left-hand side")
	f.StringVar(&diffFlags.columnSeparatorRHS, "column-separator-for-rhs", "COMMA", "Column separator of the right-hand side")
	f.StringVar(&diffFlags.lineSeparator, "line-separator", "", "Line separator of both inputs: LF or CRLF")
	f.StringVar(&diffFlags.lineSeparatorLHS, "line-separator-for-lhs", "LF", "Line separator of the left-hand side")
	f.StringVar(&diffFlags.lineSeparatorRHS, "line-separator-for-rhs", "LF", "Line separator of the right-hand side")
	f.StringVar(&diffFlags.quoteChar, "quote-char", "", `Quote character of both inputs: " or '`)
	f.StringVar(&diffFlags.quoteCharLHS, "quote-char-for-lhs", `"`, "Quote character of the left-hand side")
	f.StringVar(&diffFlags.quoteCharRHS, "quote-char-for-rhs", `"`, "Quote character of the right-hand side")
	f.BoolVar(&diffFlags.noSkipSpace, "no-skip-space-after-column-separator", false, "Keep spaces after column separators in both inputs")
	f.BoolVar(&diffFlags.noSkipSpaceLHS, "no-skip-space-after-column-separator-for-lhs", false, "Keep spaces after column separators in the left-hand side")
	f.BoolVar(&diffFlags.noSkipSpaceRHS, "no-skip-space-after-column-separator-for-rhs", false, "Keep spaces after column separators in the right-hand side")

	f.StringVar(&diffFlags.jsonPath, "json", "", "Write a JSON summary to this file or s3:// location")
	f.StringVar(&diffFlags.historyPath, "history", "", "Record the run in this history file")

	RootCmd.AddCommand(diffCmd)
}

// applyDiffFlags copies explicitly set flags over the configured defaults.
// Shared flags are applied after the per-side ones and win.
func applyDiffFlags(fs *pflag.FlagSet, d *config.DiffConfig) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}

	set("encoding-for-lhs", func() { d.EncodingLHS = diffFlags.encodingLHS })
	set("encoding-for-rhs", func() { d.EncodingRHS = diffFlags.encodingRHS })
	set("encoding", func() { d.Encoding = diffFlags.encoding })

	set("matching-keys", func() { d.MatchingKeys = diffFlags.matchingKeys })
	set("unique-key", func() { d.UniqueKey = diffFlags.uniqueKey })
	set("ignore-columns", func() { d.IgnoreColumns = diffFlags.ignoreColumns })

	set("vertical-style", func() { d.Vertical = diffFlags.vertical })
	set("show-count", func() { d.ShowCount = diffFlags.showCount })
	set("show-difference-only", func() { d.DifferenceOnly = diffFlags.differenceOnly })
	set("show-all-lines", func() { d.AllLines = diffFlags.allLines })
	set("show-context-from-arguments", func() { d.ShowContext = diffFlags.showContext })

	set("header", func() { d.Header = diffFlags.header })
	set("sniffing-size", func() { d.SniffingSize = diffFlags.sniffingSize })
	set("force-individual-specs", func() { d.ForceIndividualSpecs = diffFlags.forceIndividualSpecs })

	set("column-separator-for-lhs", func() { d.ColumnSeparatorLHS = diffFlags.columnSeparatorLHS })
	set("column-separator-for-rhs", func() { d.ColumnSeparatorRHS = diffFlags.columnSeparatorRHS })
	set("column-separator", func() {
		d.ColumnSeparatorLHS, d.ColumnSeparatorRHS = diffFlags.columnSeparator, diffFlags.columnSeparator
	})
	set("line-separator-for-lhs", func() { d.LineSeparatorLHS = diffFlags.lineSeparatorLHS })
	set("line-separator-for-rhs", func() { d.LineSeparatorRHS = diffFlags.lineSeparatorRHS })
	set("line-separator", func() {
		d.LineSeparatorLHS, d.LineSeparatorRHS = diffFlags.lineSeparator, diffFlags.lineSeparator
	})
	set("quote-char-for-lhs", func() { d.QuoteCharLHS = diffFlags.quoteCharLHS })
	set("quote-char-for-rhs", func() { d.QuoteCharRHS = diffFlags.quoteCharRHS })
	set("quote-char", func() {
		d.QuoteCharLHS, d.QuoteCharRHS = diffFlags.quoteChar, diffFlags.quoteChar
	})
	set("no-skip-space-after-column-separator-for-lhs", func() { d.NoSkipSpaceLHS = diffFlags.noSkipSpaceLHS })
	set("no-skip-space-after-column-separator-for-rhs", func() { d.NoSkipSpaceRHS = diffFlags.noSkipSpaceRHS })
	set("no-skip-space-after-column-separator", func() {
		d.NoSkipSpaceLHS, d.NoSkipSpaceRHS = diffFlags.noSkipSpace, diffFlags.noSkipSpace
	})
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyDiffFlags(cmd.Flags(), &cfg.Diff)
	if cmd.Flags().Changed("history") {
		cfg.History.Path = diffFlags.historyPath
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc := diff.NewService(l,
		func() (*gorm.DB, error) {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to database: %w", err)
			}
			return db, nil
		},
		func() (storage.Client, error) {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to storage: %w", err)
			}
			return client, nil
		},
	)

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		svc.WithHistory(store)
	}

	opts := diff.OptionsFromConfig(cfg.Diff, args[0], args[1])
	opts.JSONPath = diffFlags.jsonPath

	summary, err := svc.Run(ctx, opts, os.Stdout)
	if err != nil {
		return err
	}

	l.Debug("Summary", zap.String("run_id", summary.RunID), zap.Bool("has_difference", summary.HasDifference()))
	return nil
}
