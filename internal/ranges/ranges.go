// Package ranges provides the half-open integer range iterator used by the
// counted-range loop driver and by generated code that needs manual
// pull-based iteration.
package ranges

import "errors"

// ErrZeroStep is returned by New when the step is zero.
var ErrZeroStep = errors.New("ranges: step must be non-zero")

// Iterator walks a half-open integer interval: ascending ranges yield values
// strictly below stop, descending ranges strictly above it. The stop value
// itself is never yielded. Once exhausted, an Iterator stays exhausted until
// Reset.
type Iterator struct {
	start    int64
	stop     int64
	step     int64
	current  int64
	finished bool
}

// New creates an Iterator over [start, stop) advancing by step. The sign of
// step determines the direction; a zero step fails with ErrZeroStep.
func New(start, stop, step int64) (*Iterator, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	return &Iterator{
		start:   start,
		stop:    stop,
		step:    step,
		current: start,
	}, nil
}

// Next returns the next value and true, or zero and false once the iterator
// is exhausted.
func (it *Iterator) Next() (int64, bool) {
	if it.finished {
		return 0, false
	}
	if it.step > 0 {
		if it.current >= it.stop {
			it.finished = true
			return 0, false
		}
	} else {
		if it.current <= it.stop {
			it.finished = true
			return 0, false
		}
	}
	v := it.current
	it.current += it.step
	return v, true
}

// Reset restores the iterator to its start so it can be consumed again.
func (it *Iterator) Reset() {
	it.current = it.start
	it.finished = false
}
