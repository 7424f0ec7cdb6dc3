// Package stats collects execution counters for the loop runtime.
//
// The counters are purely observational: drivers bump them as loops run, an
// operator reads them through Snapshot, and nothing in the runtime consults
// them for control decisions.
package stats

import (
	"fmt"
	"sync"
)

// Recorder accumulates loop execution counters. A Recorder may be shared by
// several runtimes, so its methods are safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	iterations uint64
	breaks     uint64
	continues  uint64
}

// NewRecorder creates a Recorder with all counters at zero.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset zeroes all counters.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iterations = 0
	r.breaks = 0
	r.continues = 0
}

// RecordIteration counts one attempted loop step.
func (r *Recorder) RecordIteration() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iterations++
}

// RecordBreak counts one break signal consumed by a driver.
func (r *Recorder) RecordBreak() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breaks++
}

// RecordContinue counts one continue signal consumed by a driver.
func (r *Recorder) RecordContinue() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.continues++
}

// Snapshot returns a read-only copy of the counters.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		TotalIterations: r.iterations,
		BreaksHit:       r.breaks,
		ContinuesHit:    r.continues,
	}
}

// Snapshot is a point-in-time copy of the execution counters.
type Snapshot struct {
	TotalIterations uint64
	BreaksHit       uint64
	ContinuesHit    uint64
}

// String renders the diagnostics report. The output is deterministic given
// the snapshot.
func (s Snapshot) String() string {
	return fmt.Sprintf(
		"=== Loop Statistics ===\nTotal iterations: %d\nBreak statements: %d\nContinue statements: %d",
		s.TotalIterations, s.BreaksHit, s.ContinuesHit,
	)
}
