package cmd

import (
	"fmt"
	"text/tabwriter"

	"csvdiff/core/history"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyFile  string
)

var historyCmd = &cobra.Command{
	Use:   "history [RUN_ID]",
	Short: "List recorded diff runs",
	Long: `List the runs recorded in the history file, newest first, or show one
run in detail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyFile, "history", "", "History file, defaults to HISTORY_PATH")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := cfg.History.Path
	if historyFile != "" {
		path = historyFile
	}
	if path == "" {
		return fmt.Errorf("no history file configured")
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		r, err := store.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run:         %s\n", r.RunID)
		fmt.Fprintf(out, "started:     %s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "duration:    %s\n", r.Duration)
		fmt.Fprintf(out, "left:        %s\n", r.Left)
		fmt.Fprintf(out, "right:       %s\n", r.Right)
		fmt.Fprintf(out, "keys:        %s\n", r.KeySpec)
		fmt.Fprintf(out, "same:        %d\n", r.Same)
		fmt.Fprintf(out, "left only:   %d\n", r.LeftOnly)
		fmt.Fprintf(out, "right only:  %d\n", r.RightOnly)
		fmt.Fprintf(out, "differences: %d\n", r.Differences)
		if !r.Succeeded() {
			fmt.Fprintf(out, "failure:     %s\n", r.Failure)
			fmt.Fprintf(out, "error:       %s\n", r.Error)
		}
		return nil
	}

	records, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tLEFT\tRIGHT\tSAME\tLEFT ONLY\tRIGHT ONLY\tDIFFS\tSTATUS")
	for _, r := range records {
		status := "ok"
		if !r.Succeeded() {
			status = r.Failure
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Left, r.Right,
			r.Same, r.LeftOnly, r.RightOnly, r.Differences, status)
	}
	return tw.Flush()
}
