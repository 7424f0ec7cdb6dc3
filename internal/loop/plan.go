package loop

// DefaultUnrollThreshold is the largest iteration count the code generator
// considers fully unrollable when no threshold is configured.
const DefaultUnrollThreshold = 8

// Hint is advisory planning metadata for the code generator. The drivers
// themselves never consult it.
type Hint struct {
	IterationCount uint64
	EnableUnroll   bool
	UnrollFactor   uint64
}

// Analyze returns the planning hint for a loop with a known iteration count,
// using DefaultUnrollThreshold.
func Analyze(iterations uint64) Hint {
	return AnalyzeWithThreshold(iterations, DefaultUnrollThreshold)
}

// AnalyzeWithThreshold returns the planning hint for a loop with a known
// iteration count. Unrolling is suggested iff the count does not exceed the
// threshold, in which case the unroll factor is the count itself.
func AnalyzeWithThreshold(iterations, threshold uint64) Hint {
	h := Hint{IterationCount: iterations}
	h.EnableUnroll = iterations <= threshold
	if h.EnableUnroll {
		h.UnrollFactor = iterations
	} else {
		h.UnrollFactor = 1
	}
	return h
}
