package sim

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/keygen"
	"github.com/gostonefire/hashsim/internal/table"
)

// State - The Sampler lifecycle state
type State int

// Sampler lifecycle states. A Sampler moves Idle -> Running -> Finished exactly once.
const (
	Idle State = iota
	Running
	Finished
)

// SamplerConf - Is a struct to be passed in the call to NewSampler and contains configuration
// for one run.
//   - Capacity is the table capacity, expected to already be prime adjusted
//   - Insertions is the length of the insertion sequence
//   - SampleStep is the interval between periodic sample points
//   - FirstSamples is the number of leading insertions that are always sampled
//   - Scale is an optional label identifying the scale dimension of the run
type SamplerConf struct {
	Capacity     int64
	Insertions   int64
	SampleStep   int64
	FirstSamples int64
	Scale        string
}

// Sampler - Drives one simulation run: a fixed length insertion sequence fed in lock-step to a
// chained table and three open addressing tables, with running totals snapshotted at sample
// points. One Sampler corresponds to one (distribution, scale) pair and exclusively owns its
// tables, metrics and key generator.
type Sampler struct {
	conf      SamplerConf
	keys      keygen.KeyGenerator
	chained   *table.ChainedTable
	linear    *table.OpenAddressTable
	quadratic *table.OpenAddressTable
	double    *table.OpenAddressTable
	metrics   RunningMetrics
	emitter   Emitter
	log       *zap.SugaredLogger
	state     State
	gated     bool
}

// NewSampler - Returns a pointer to a new Sampler instance in state Idle
//   - conf holds the run parameters
//   - keys is the key generator for the run, exclusively owned by this Sampler
//   - chained, linear, quadratic and double are freshly initialized tables, exclusively owned by this Sampler
//   - emitter receives one Record per sample point
//   - logger takes all diagnostic messages, they never mix with emitted records
func NewSampler(
	conf SamplerConf,
	keys keygen.KeyGenerator,
	chained *table.ChainedTable,
	linear, quadratic, double *table.OpenAddressTable,
	emitter Emitter,
	logger *zap.SugaredLogger,
) *Sampler {
	return &Sampler{
		conf:      conf,
		keys:      keys,
		chained:   chained,
		linear:    linear,
		quadratic: quadratic,
		double:    double,
		emitter:   emitter,
		log:       logger,
		state:     Idle,
	}
}

// State - Returns the current lifecycle state
func (S *Sampler) State() State {
	return S.state
}

// Run - Executes the insertion sequence from start to finish. Insertions are strictly sequential,
// every insertion completes before the next begins. Can only be called once per Sampler.
//
// Open addressing probe sequence exhaustion is a soft failure: it is logged, the key is dropped
// for that technique, and the run continues. Once any open addressing table reports NearFull all
// three stop receiving keys for the remainder of the run while chaining keeps receiving every key,
// so their running totals freeze. That is a deliberate measurement boundary, not an error.
//
// It returns:
//   - err is a standard error if the Sampler was not Idle or if the emitter failed, nil otherwise
func (S *Sampler) Run() (err error) {
	if S.state != Idle {
		err = fmt.Errorf("sampler can only run once, current state is %d", S.state)
		return
	}
	S.state = Running

	distribution := S.keys.Distribution().String()
	S.log.Infow("run started",
		"distribution", distribution,
		"scale", S.conf.Scale,
		"capacity", S.conf.Capacity,
		"insertions", S.conf.Insertions,
	)

	for i := int64(1); i <= S.conf.Insertions; i++ {
		key := S.keys.Next(i - 1)

		start := time.Now()
		probes := S.chained.Insert(key)
		S.metrics.Chaining.Elapsed += time.Since(start)
		S.metrics.Chaining.Probes += probes

		if !S.gated && (S.linear.NearFull() || S.quadratic.NearFull() || S.double.NearFull()) {
			S.gated = true
			S.log.Infow("open addressing tables near full, chaining continues alone",
				"distribution", distribution,
				"insertionIndex", i,
				"occupied", S.linear.Occupied(),
			)
		}

		if !S.gated {
			S.insertOpenAddressing(S.linear, &S.metrics.Linear, crt.LinearProbing, key, i)
			S.insertOpenAddressing(S.quadratic, &S.metrics.Quadratic, crt.QuadraticProbing, key, i)
			S.insertOpenAddressing(S.double, &S.metrics.Double, crt.DoubleHashing, key, i)
		}

		if S.isSamplePoint(i) {
			record := Record{
				InsertionIndex: i,
				LoadFactor:     float64(i) / float64(S.conf.Capacity),
				Scale:          S.conf.Scale,
				Distribution:   distribution,
				Chaining:       S.metrics.Chaining,
				Linear:         S.metrics.Linear,
				Quadratic:      S.metrics.Quadratic,
				Double:         S.metrics.Double,
			}
			err = S.emitter.Emit(record)
			if err != nil {
				err = fmt.Errorf("error while emitting metrics record: %s", err)
				return
			}
		}
	}

	S.state = Finished

	S.log.Infow("run finished",
		"distribution", distribution,
		"scale", S.conf.Scale,
		"chainedRecords", S.chained.Records(),
		"longestChain", S.chained.LongestChain(),
		"linearOccupied", S.linear.Occupied(),
		"quadraticOccupied", S.quadratic.Occupied(),
		"doubleOccupied", S.double.Occupied(),
		"gated", S.gated,
	)

	return
}

// Metrics - Returns a copy of the running totals, mainly for inspection after a run
func (S *Sampler) Metrics() RunningMetrics {
	return S.metrics
}

// insertOpenAddressing - Times and performs one insertion into an open addressing table and folds
// the outcome into its totals. Probe sequence exhaustion is logged and swallowed, the probes spent
// scanning still count.
func (S *Sampler) insertOpenAddressing(t *table.OpenAddressTable, totals *Totals, technique int, key int64, insertionIndex int64) {
	start := time.Now()
	probes, err := t.Insert(key)
	totals.Elapsed += time.Since(start)
	totals.Probes += probes

	if err != nil {
		if errors.Is(err, crt.ProbeSequenceExhausted{}) {
			S.log.Warnw("probe sequence exhausted, key dropped for technique",
				"technique", crt.TechniqueLabel(technique),
				"key", key,
				"insertionIndex", insertionIndex,
			)
		} else {
			S.log.Errorw("unexpected insert error",
				"technique", crt.TechniqueLabel(technique),
				"key", key,
				"error", err,
			)
		}
	}
}

// isSamplePoint - Returns true when a metrics record shall be emitted after insertion i.
// The first FirstSamples insertions, every SampleStep-th insertion and the final insertion
// are sample points.
func (S *Sampler) isSamplePoint(i int64) bool {
	if i <= S.conf.FirstSamples {
		return true
	}
	if S.conf.SampleStep > 0 && i%S.conf.SampleStep == 0 {
		return true
	}

	return i == S.conf.Insertions
}
