package sim

import "time"

// Totals - Monotonically increasing totals for one collision resolution technique within a run
type Totals struct {
	Probes  int64
	Elapsed time.Duration
}

// RunningMetrics - Per technique running totals, owned by one Sampler for the duration of a run
// and reset when the run starts
type RunningMetrics struct {
	Chaining  Totals
	Linear    Totals
	Quadratic Totals
	Double    Totals
}

// Record - Immutable snapshot of the running totals at a sample point. It is constructed by the
// Sampler, handed to the emitter once, and then discarded. The record always carries all fields,
// whether the scale and timing columns are presented is up to the emitter.
type Record struct {
	InsertionIndex int64
	LoadFactor     float64
	Scale          string
	Distribution   string
	Chaining       Totals
	Linear         Totals
	Quadratic      Totals
	Double         Totals
}

// Emitter - Interface for the reporting collaborator receiving one Record per sample point
type Emitter interface {
	Emit(record Record) error
}
