// Package core contains the engine behind fiber handles: the single-writer
// outcome slot, Fork which runs a body on its own goroutine, context options
// for logging and tracing, and channel helpers. Combinators live in compose;
// this package only guarantees that every fiber is resolved exactly once.
package core
