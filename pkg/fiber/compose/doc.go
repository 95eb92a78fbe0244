// Package compose builds new fiber handles out of existing ones. A composed
// handle has no outcome slot of its own: observing it observes its components
// and merges their outcomes with the rules of the solo package, and
// interrupting it interrupts the components one after another, left first.
//
// Key constructs:
// - Map, ZipWith, Zip, ZipRight (*>), ZipLeft (<*): handle combinators
// - Point, Resolved: handles over an already known outcome
// - InterruptAll, JoinAll: ordered aggregates over many handles
package compose
