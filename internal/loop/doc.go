// Package loop implements the iteration drivers the Cyon code generator
// emits calls to. A loop body is handed to a driver as a closure; because
// the body runs behind a call boundary, native break/continue cannot cross
// it, so bodies signal through the Runtime instead and the driver polls the
// signal before every step.
//
// # Drivers
//
// Every loop shape shares one skeleton: push a control level, then per step
// check break, check continue (and clear it), invoke the body, advance; pop
// the level on exit. The shapes differ only in eligibility and advance:
//
//   - ForRange - counted half-open range, ascending or descending
//   - While - condition re-evaluated before each step
//   - DoWhile - body first, condition after; body runs at least once
//   - EachInt64, EachString - foreach over a fixed sequence
//   - Nested2D - rows x cols with an independent inner control level
//   - Forever - unbounded, terminates only via a break signal
//   - Repeat - fixed step count
//
// # Signaling
//
// Runtime.Break and Runtime.Continue always target the innermost active
// level. There is no depth-addressable signaling: inside a Nested2D body the
// inner loop's level is on top, so signals affect the inner loop only.
//
// # Concurrency
//
// A Runtime is single-threaded: drivers run their bodies synchronously and
// nesting follows the call stack. Use one Runtime per goroutine; a shared
// stats.Recorder is the only safe point of sharing.
package loop
