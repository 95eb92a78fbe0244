// Package solo holds the pure algebra over single fiber.Outcome values:
// mapping a completed value, merging two outcomes and folding an outcome into
// a concrete value. Nothing here waits or starts goroutines; the compose
// package lifts these rules onto handles.
//
// Key operations:
// - Map: transform a Completed value, pass Failed/Terminated through
// - ZipWith/Zip: merge two outcomes without dropping any cause
// - Fold: collapse an outcome via one handler per variant
package solo
