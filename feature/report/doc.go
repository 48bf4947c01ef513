// Package report renders the outcome of a diff run.
//
// Every reporter is a reconcile.Handler, so the engine drives them directly:
//
//   - Counter tallies same, left-only, right-only and differing rows and
//     keeps their row numbers for the count section and the JSON summary.
//   - Horizontal prints both sides next to each other, aligned on the
//     widest row of each side. It needs the sizes from a deep pre-scan.
//   - Vertical prints one side per line and needs no pre-scan sizes.
//
// Lines are marked '<' for left-only, '>' for right-only, '!' for a matched
// pair with differences and ' ' (or '=' in vertical style) for an equal pair.
// Widths are measured in terminal cells with East Asian ambiguous characters
// counted as two.
//
// # Usage
//
//	opts := report.Options{DifferenceOnly: true}.Normalize()
//	counter := report.NewCounter()
//	detail := report.NewDetail(os.Stdout, opts, scan.Size)
//	_ = detail.WriteHeading("left.csv", "right.csv")
//	err := engine.Run(left, right, reconcile.Handlers(counter, detail))
//	_ = report.WriteCount(os.Stdout, opts, counter.Summary())
package report
