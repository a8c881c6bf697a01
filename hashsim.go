package hashsim

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/hash"
	"github.com/gostonefire/hashsim/internal/keygen"
	"github.com/gostonefire/hashsim/internal/sim"
	"github.com/gostonefire/hashsim/internal/table"
)

// RunSpec - Identifies one simulation run as a (distribution, scale) pair
//   - Distribution selects the key distribution model
//   - Scale multiplies both table capacity and insertion count, 1 runs at the configured sizes
type RunSpec struct {
	Distribution crt.Distribution
	Scale        int64
}

// Config - Holds the full simulation configuration
//   - Capacity is the requested table capacity, adjusted to the nearest equal or higher prime at construction
//   - Insertions is the length of the insertion sequence per run
//   - SampleCount is the desired number of periodic sample points, the step becomes Insertions/SampleCount
//   - FirstSamples is the number of leading insertions that are always sampled
//   - NearFullThreshold is the open addressing fill fraction at which further insertions are gated
//   - Timed adds the per technique time columns to the output
//   - WithScale adds the scale label column to the output
//   - Seed makes runs deterministic when non-zero, 0 reseeds every run from the wall clock
//   - SkewStride and SkewBound parameterize the skewed distribution
//   - WorstCaseSlot is the slot all worst case keys hash to
//   - Runs is the sequence of (distribution, scale) pairs to execute, strictly in order
type Config struct {
	Capacity          int64
	Insertions        int64
	SampleCount       int64
	FirstSamples      int64
	NearFullThreshold float64
	Timed             bool
	WithScale         bool
	Seed              int64
	SkewStride        int64
	SkewBound         int64
	WorstCaseSlot     int64
	Runs              []RunSpec
}

// DefaultConfig - Returns a Config mirroring the classic measurement setup: a 10000 slot table
// filled to load factor 1 with 100 periodic samples, all three distributions at scale 1
func DefaultConfig() Config {
	return Config{
		Capacity:          10000,
		Insertions:        10000,
		SampleCount:       100,
		FirstSamples:      10,
		NearFullThreshold: 0.95,
		SkewStride:        7,
		SkewBound:         100,
		WorstCaseSlot:     100,
		Runs: []RunSpec{
			{Distribution: crt.Uniform, Scale: 1},
			{Distribution: crt.Skewed, Scale: 1},
			{Distribution: crt.WorstCase, Scale: 1},
		},
	}
}

// SimulationInfo - Information structure containing some information about the simulation created
//   - Capacity is the prime adjusted table capacity at scale 1
//   - SecondaryPrime is the prime used by the double hashing step function
//   - SampleStep is the distance between periodic sample points at scale 1
//   - NumberOfRuns is the number of (distribution, scale) pairs to execute
type SimulationInfo struct {
	Capacity       int64
	SecondaryPrime int64
	SampleStep     int64
	NumberOfRuns   int
}

// Simulation - The main implementation struct, executes a plan of runs against fresh per run
// table storage and feeds one emitter with metrics records
type Simulation struct {
	conf    Config
	emitter sim.Emitter
	log     *zap.SugaredLogger
}

// New - Returns a new Simulation prepared to execute the configured runs.
//   - conf holds the simulation configuration, see Config
//   - emitter receives one metrics record per sample point, typically a CSV sink
//   - logger takes diagnostic messages, they are never interleaved with emitted records
//
// It returns:
//   - simulation is a pointer to a Simulation struct
//   - simulationInfo is a SimulationInfo struct containing some data regarding the simulation created
//   - err is a normal go Error which should be nil if everything went ok
func New(conf Config, emitter sim.Emitter, logger *zap.Logger) (
	simulation *Simulation,
	simulationInfo SimulationInfo,
	err error,
) {

	// Check if capacity is valid
	if conf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if insertions is valid
	if conf.Insertions <= 0 {
		err = fmt.Errorf("insertions must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the sample count is valid
	if conf.SampleCount <= 0 || conf.SampleCount > conf.Insertions {
		err = fmt.Errorf("sample count must be between 1 and the number of insertions")
		return
	}

	// Check if the near full threshold is valid
	if conf.NearFullThreshold <= 0 || conf.NearFullThreshold > 1 {
		err = fmt.Errorf("near full threshold must be above 0 (zero) and at most 1")
		return
	}

	// Check if the skew parameters are valid
	if conf.SkewStride <= 0 || conf.SkewBound <= 0 {
		err = fmt.Errorf("skew stride and skew bound must be positive values higher than 0 (zero)")
		return
	}

	// Check if there is anything to run
	if len(conf.Runs) == 0 {
		err = fmt.Errorf("at least one (distribution, scale) run must be given")
		return
	}
	for _, spec := range conf.Runs {
		if spec.Scale < 1 {
			err = fmt.Errorf("run scale must be at least 1, got %d", spec.Scale)
			return
		}
	}

	if emitter == nil {
		err = fmt.Errorf("an emitter must be given, it receives the metrics records")
		return
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	simulation = &Simulation{
		conf:    conf,
		emitter: emitter,
		log:     logger.Sugar(),
	}

	doubleAlgorithm := hash.NewDoubleHashAlgorithm(conf.Capacity)

	simulationInfo = SimulationInfo{
		Capacity:       doubleAlgorithm.GetTableSize(),
		SecondaryPrime: doubleAlgorithm.GetSecondaryPrime(),
		SampleStep:     conf.Insertions / conf.SampleCount,
		NumberOfRuns:   len(conf.Runs),
	}

	return
}

// Run - Executes all configured runs strictly sequentially. Every run gets fresh table storage,
// fresh running metrics and a fresh key generator, no state crosses run boundaries.
//
// It returns:
//   - err is a standard error if a run or the emitter failed, nil otherwise
func (S *Simulation) Run() (err error) {
	for _, spec := range S.conf.Runs {
		err = S.runOne(spec)
		if err != nil {
			err = fmt.Errorf("error while executing %s run at scale %d: %s", spec.Distribution, spec.Scale, err)
			return
		}
	}

	return
}

// runOne - Executes a single (distribution, scale) run with freshly constructed components
func (S *Simulation) runOne(spec RunSpec) (err error) {
	capacity := S.conf.Capacity * spec.Scale
	insertions := S.conf.Insertions * spec.Scale

	chainingAlgorithm := hash.NewSeparateChainingHashAlgorithm(capacity)
	primeCapacity := chainingAlgorithm.GetTableSize()

	seed := S.conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	var keys keygen.KeyGenerator
	switch spec.Distribution {
	case crt.Uniform:
		keys = keygen.NewUniform(rnd)
	case crt.Skewed:
		keys = keygen.NewSkewed(rnd, S.conf.SkewStride, S.conf.SkewBound)
	case crt.WorstCase:
		keys = keygen.NewWorstCase(S.conf.WorstCaseSlot, primeCapacity)
	default:
		err = fmt.Errorf("unknown distribution %d", spec.Distribution)
		return
	}

	conf := sim.SamplerConf{
		Capacity:     primeCapacity,
		Insertions:   insertions,
		SampleStep:   insertions / S.conf.SampleCount,
		FirstSamples: S.conf.FirstSamples,
		Scale:        fmt.Sprintf("%dx", spec.Scale),
	}

	sampler := sim.NewSampler(
		conf,
		keys,
		table.NewChainedTable(chainingAlgorithm),
		table.NewOpenAddressTable(hash.NewLinearProbingHashAlgorithm(capacity), S.conf.NearFullThreshold),
		table.NewOpenAddressTable(hash.NewQuadraticProbingHashAlgorithm(capacity), S.conf.NearFullThreshold),
		table.NewOpenAddressTable(hash.NewDoubleHashAlgorithm(capacity), S.conf.NearFullThreshold),
		S.emitter,
		S.log,
	)

	err = sampler.Run()

	return
}
