// Package reconcile pairs the rows of two key-ordered inputs and reports which
// rows exist on one side only and which matched rows differ.
//
// The package consists of three parts:
//
// 1. Engine: a sorted merge join over two rowsource.Source streams. Each step
// emits exactly one event, left-only, right-only or matched, in ascending key
// order. Every row of both sides appears in exactly one event.
//
// 2. Detector: compares a matched pair column by column, skipping key columns
// and ignored columns, and returns the ascending list of differing indices.
//
// 3. Scan: a pre-pass over both sources that learns the shared column count
// and, for aligned layouts, the widest row and highest row number per side.
// It resets both sources before returning so the real pass starts clean.
//
// The engine does no validation of its own. Ordering, uniqueness and index
// violations surface from the sources or the detector and abort the run.
//
// # Usage Example
//
//	scan, err := reconcile.Scan(left, right, reconcile.ScanLight, nil)
//	detector := reconcile.NewDetector(scan.Columns, spec.Indices(), ignored)
//	err = reconcile.NewEngine(detector).Run(left, right, handler)
package reconcile
