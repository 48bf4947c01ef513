package cmd

import (
	"context"
	"fmt"

	"csvdiff/core/logger"
	"csvdiff/feature/diff"

	"github.com/spf13/cobra"
)

var (
	sniffEncoding string
	sniffSize     int
)

var sniffCmd = &cobra.Command{
	Use:   "sniff FILE",
	Short: "Guess the dialect of a delimited file",
	Long: `Print the column separator, quote character, line separator and header
guess that diff would use for FILE.`,
	Args: cobra.ExactArgs(1),
	RunE: runSniff,
}

func init() {
	sniffCmd.Flags().StringVarP(&sniffEncoding, "encoding", "e", "utf8", "Encoding of the file")
	sniffCmd.Flags().IntVarP(&sniffSize, "sniffing-size", "S", 4096, "Bytes read to guess the dialect")

	RootCmd.AddCommand(sniffCmd)
}

func runSniff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc := diff.NewService(l, nil, nil)
	d, err := svc.SniffFile(context.Background(), args[0], sniffSize, sniffEncoding)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dialect: %s\n", d)
	fmt.Fprintf(out, "has header: %t\n", d.HasHeader)
	return nil
}
