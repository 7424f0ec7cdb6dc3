// Package control implements the per-loop control stack that carries
// break/continue signals from a loop body to the driver supervising it.
//
// Generated code cannot use native break/continue across the callback
// boundary, so a body signals through the stack instead: each active loop
// owns one level, signals always land on the innermost (top) level, and the
// driver consults the top level before every step. The stack is an explicit
// object rather than process-wide state so that independent runtimes can
// execute in isolation.
package control

import (
	"errors"
	"fmt"
)

// DefaultMaxDepth is the nesting capacity used when none is configured.
const DefaultMaxDepth = 1024

// ErrDepthExceeded is returned by Push when the stack is already at
// capacity. The caller may keep executing its loop, but the loop cannot be
// individually signaled: break/continue land on the shallower level that is
// still on top.
var ErrDepthExceeded = errors.New("control: loop nesting depth exceeded")

// State is the control flag for one active loop level.
type State uint8

const (
	// Normal means the level has no pending signal.
	Normal State = iota
	// Break requests termination of the level's loop.
	Break
	// Continue requests skipping to the loop's next step.
	Continue
	// Return is reserved by the generated-code contract. No driver acts
	// on it.
	Return
)

var stateNames = [...]string{"normal", "break", "continue", "return"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// Stack is a bounded stack of per-loop control states. One level is pushed
// when a driver starts and popped exactly once when it exits. All signal and
// query operations apply to the top level and are safe no-ops when the stack
// is empty.
//
// A Stack is not safe for concurrent use. Nesting is a call-stack-shaped
// concept: each logical thread of execution owns its own Stack.
type Stack struct {
	levels []State
	max    int
}

// NewStack creates a Stack with the given nesting capacity. A maxDepth of
// zero or less selects DefaultMaxDepth.
func NewStack(maxDepth int) *Stack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Stack{
		levels: make([]State, 0, maxDepth),
		max:    maxDepth,
	}
}

// Depth returns the number of active levels.
func (s *Stack) Depth() int {
	return len(s.levels)
}

// Cap returns the nesting capacity.
func (s *Stack) Cap() int {
	return s.max
}

// Push appends a fresh Normal level. At capacity it returns
// ErrDepthExceeded and leaves the existing levels untouched.
func (s *Stack) Push() error {
	if len(s.levels) >= s.max {
		return ErrDepthExceeded
	}
	s.levels = append(s.levels, Normal)
	return nil
}

// Pop discards the top level. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.levels) > 0 {
		s.levels = s.levels[:len(s.levels)-1]
	}
}

// SignalBreak marks the innermost active loop for termination.
func (s *Stack) SignalBreak() {
	if n := len(s.levels); n > 0 {
		s.levels[n-1] = Break
	}
}

// SignalContinue marks the innermost active loop to skip to its next step.
func (s *Stack) SignalContinue() {
	if n := len(s.levels); n > 0 {
		s.levels[n-1] = Continue
	}
}

// ShouldBreak reports whether the top level has a pending break.
func (s *Stack) ShouldBreak() bool {
	n := len(s.levels)
	return n > 0 && s.levels[n-1] == Break
}

// ShouldContinue reports whether the top level has a pending continue.
func (s *Stack) ShouldContinue() bool {
	n := len(s.levels)
	return n > 0 && s.levels[n-1] == Continue
}

// ClearFlags resets the top level to Normal. Drivers call this after
// consuming a continue signal.
func (s *Stack) ClearFlags() {
	if n := len(s.levels); n > 0 {
		s.levels[n-1] = Normal
	}
}
