package loop

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Luka12-dev/Cyon-sub001/internal/control"
	"github.com/Luka12-dev/Cyon-sub001/internal/logging"
	"github.com/Luka12-dev/Cyon-sub001/internal/stats"
)

// Sentinel errors for invalid driver arguments. A driver returning one of
// these has performed zero iterations and left the control stack untouched.
var (
	ErrNilBody      = errors.New("loop: nil body")
	ErrNilCondition = errors.New("loop: nil condition")
)

// Runtime supervises callback-driven loops. It owns the control stack the
// drivers and bodies communicate through, records execution statistics, and
// logs degraded-mode conditions.
type Runtime struct {
	id    string
	stack *control.Stack
	stats *stats.Recorder
	log   *logging.Logger
}

// Options holds configuration for creating a Runtime. The zero value is
// usable: defaults are applied for every unset field.
type Options struct {
	MaxDepth int             // control stack capacity; 0 selects control.DefaultMaxDepth
	Stats    *stats.Recorder // shared recorder; nil allocates a fresh one
	Logger   *logging.Logger // nil uses the package default logger
}

// New creates a Runtime with explicit options.
func New(opts Options) *Runtime {
	rec := opts.Stats
	if rec == nil {
		rec = stats.NewRecorder()
	}
	lg := opts.Logger
	if lg == nil {
		lg = logging.Default()
	}
	id := uuid.NewString()
	return &Runtime{
		id:    id,
		stack: control.NewStack(opts.MaxDepth),
		stats: rec,
		log:   lg.With("runtime", id),
	}
}

// ID returns the runtime's correlation ID.
func (r *Runtime) ID() string {
	return r.id
}

// Stats returns the runtime's recorder.
func (r *Runtime) Stats() *stats.Recorder {
	return r.stats
}

// Depth returns the number of loops currently active on the runtime.
func (r *Runtime) Depth() int {
	return r.stack.Depth()
}

// Break requests termination of the innermost active loop. Outside any loop
// it is a no-op.
func (r *Runtime) Break() {
	r.stack.SignalBreak()
}

// Continue requests that the innermost active loop skip to its next step.
// Outside any loop it is a no-op.
func (r *Runtime) Continue() {
	r.stack.SignalContinue()
}

// enter pushes a control level for a starting driver. It returns false when
// the stack is at capacity: the loop still runs, but unsupervised, meaning
// its body shares signal flags with the enclosing level and the driver must
// not pop on exit.
func (r *Runtime) enter() bool {
	if err := r.stack.Push(); err != nil {
		r.log.Warn("loop running unsupervised", "err", err, "depth", r.stack.Depth())
		return false
	}
	return true
}

// leave pops the driver's level. Deferred by every driver so the pop
// happens on all exit paths, including a panicking body.
func (r *Runtime) leave(supervised bool) {
	if supervised {
		r.stack.Pop()
	}
}

// step performs the per-step bookkeeping shared by every driver: it counts
// the attempted step, then consumes any pending signal on the top level.
// run reports whether the body is eligible this step; halt reports whether
// the loop must terminate.
func (r *Runtime) step() (run, halt bool) {
	r.stats.RecordIteration()
	if r.stack.ShouldBreak() {
		r.stats.RecordBreak()
		return false, true
	}
	if r.stack.ShouldContinue() {
		r.stack.ClearFlags()
		r.stats.RecordContinue()
		return false, false
	}
	return true, false
}
