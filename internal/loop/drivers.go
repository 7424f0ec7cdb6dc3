package loop

import (
	"github.com/Luka12-dev/Cyon-sub001/internal/ranges"
)

// ForRange runs body for each value of the half-open range [start, stop)
// advancing by step. The sign of step selects the direction; a zero step
// fails with ranges.ErrZeroStep before any level is pushed. A continue
// signal skips the body but still advances the counter.
func (r *Runtime) ForRange(start, stop, step int64, body func(i int64)) error {
	if body == nil {
		return ErrNilBody
	}
	it, err := ranges.New(start, stop, step)
	if err != nil {
		return err
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for i, ok := it.Next(); ok; i, ok = it.Next() {
		run, halt := r.step()
		if halt {
			break
		}
		if !run {
			continue
		}
		body(i)
	}
	return nil
}

// While runs body while cond evaluates true. The condition is re-evaluated
// before every step, including the first.
func (r *Runtime) While(cond func() bool, body func()) error {
	if cond == nil {
		return ErrNilCondition
	}
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for cond() {
		run, halt := r.step()
		if halt {
			break
		}
		if !run {
			continue
		}
		body()
	}
	return nil
}

// DoWhile runs body, then re-runs it while cond evaluates true. The body
// always runs at least once.
func (r *Runtime) DoWhile(cond func() bool, body func()) error {
	if cond == nil {
		return ErrNilCondition
	}
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for {
		run, halt := r.step()
		if halt {
			break
		}
		if run {
			body()
		}
		if !cond() {
			break
		}
	}
	return nil
}

// EachInt64 runs body for each element of items in order.
func (r *Runtime) EachInt64(items []int64, body func(v int64)) error {
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for _, v := range items {
		run, halt := r.step()
		if halt {
			break
		}
		if !run {
			continue
		}
		body(v)
	}
	return nil
}

// EachString runs body for each element of items in order.
func (r *Runtime) EachString(items []string, body func(s string)) error {
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for _, s := range items {
		run, halt := r.step()
		if halt {
			break
		}
		if !run {
			continue
		}
		body(s)
	}
	return nil
}

// Nested2D runs body for every (row, col) pair of a rows x cols grid. The
// column loop holds its own control level, so a signal from inside the body
// affects the column loop only: a break ends the current row's columns, a
// continue skips one column. The row loop's level is reachable only between
// rows and keeps its own break/continue flags.
func (r *Runtime) Nested2D(rows, cols int64, body func(row, col int64)) error {
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for i := int64(0); i < rows; i++ {
		r.stats.RecordIteration()
		if r.stack.ShouldBreak() {
			r.stats.RecordBreak()
			break
		}

		func() {
			inner := r.enter()
			defer r.leave(inner)
			for j := int64(0); j < cols; j++ {
				run, halt := r.step()
				if halt {
					break
				}
				if !run {
					continue
				}
				body(i, j)
			}
		}()

		if r.stack.ShouldContinue() {
			r.stack.ClearFlags()
			r.stats.RecordContinue()
			continue
		}
	}
	return nil
}

// Forever runs body until it signals a break. There is no other
// termination: the caller's body must call Break eventually.
func (r *Runtime) Forever(body func()) error {
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for {
		run, halt := r.step()
		if halt {
			break
		}
		if !run {
			continue
		}
		body()
	}
	return nil
}

// Repeat runs body the given number of times, passing the zero-based step
// index. A non-positive count performs zero iterations.
func (r *Runtime) Repeat(times int64, body func(i int64)) error {
	if body == nil {
		return ErrNilBody
	}

	supervised := r.enter()
	defer r.leave(supervised)

	for i := int64(0); i < times; i++ {
		run, halt := r.step()
		if halt {
			break
		}
		if !run {
			continue
		}
		body(i)
	}
	return nil
}
