// Package diff runs a complete comparison of two key-sorted inputs.
//
// The Service opens both inputs, works out their dialect and header, runs
// the pre-scan, merges the two sides through the reconcile engine and writes
// the report. A run can also export a JSON summary and append a record to
// the run history.
//
// # Inputs
//
// Each side is one of:
//   - a local file path
//   - s3://bucket/key, read through core/storage
//   - sql:<query>, read through core/database; the query must sort by the key
//   - table:<name>, a whole table ordered by the key columns
//
// Standard input ("-") is rejected because the pre-scan has to read every
// input twice.
//
// # Dialects
//
// Unless ForceIndividualSpecs is set, the dialect of each file is sniffed
// from its first SniffingSize bytes. When sniffing fails a warning is logged
// and the configured separators are used instead.
//
// # Usage
//
//	svc := diff.NewService(logger, openDB, openStorage)
//	summary, err := svc.Run(ctx, opts, os.Stdout)
package diff
