//go:build unit

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/gostonefire/hashsim/internal/hash"
	"github.com/gostonefire/hashsim/internal/keygen"
	"github.com/gostonefire/hashsim/internal/table"
)

// captureEmitter - Collects emitted records for inspection
type captureEmitter struct {
	records []Record
}

func (C *captureEmitter) Emit(record Record) error {
	C.records = append(C.records, record)
	return nil
}

// newTestSampler - Returns a Sampler over fresh tables of the given capacity together with its
// capture emitter
func newTestSampler(conf SamplerConf, keys keygen.KeyGenerator, nearFullThreshold float64) (*Sampler, *captureEmitter) {
	emitter := &captureEmitter{}
	sampler := NewSampler(
		conf,
		keys,
		table.NewChainedTable(hash.NewSeparateChainingHashAlgorithm(conf.Capacity)),
		table.NewOpenAddressTable(hash.NewLinearProbingHashAlgorithm(conf.Capacity), nearFullThreshold),
		table.NewOpenAddressTable(hash.NewQuadraticProbingHashAlgorithm(conf.Capacity), nearFullThreshold),
		table.NewOpenAddressTable(hash.NewDoubleHashAlgorithm(conf.Capacity), nearFullThreshold),
		emitter,
		zap.NewNop().Sugar(),
	)

	return sampler, emitter
}

func TestSampler_Run(t *testing.T) {
	t.Run("emits records at the configured sample points", func(t *testing.T) {
		// Prepare
		conf := SamplerConf{Capacity: 10007, Insertions: 100, SampleStep: 20, FirstSamples: 10}
		sampler, emitter := newTestSampler(conf, keygen.NewWorstCase(100, 10007), 0.95)

		// Execute
		err := sampler.Run()

		// Check
		assert.NoError(t, err, "run succeeds")

		var indices []int64
		for _, record := range emitter.records {
			indices = append(indices, record.InsertionIndex)
		}
		expected := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 40, 60, 80, 100}
		assert.Equal(t, expected, indices, "first ten, every step and the final insertion")
	})

	t.Run("load factor is exactly index over capacity", func(t *testing.T) {
		// Prepare
		conf := SamplerConf{Capacity: 13, Insertions: 10, SampleStep: 2, FirstSamples: 3}
		sampler, emitter := newTestSampler(conf, keygen.NewWorstCase(5, 13), 0.95)

		// Execute
		err := sampler.Run()

		// Check
		assert.NoError(t, err, "run succeeds")
		for _, record := range emitter.records {
			assert.Equalf(t, float64(record.InsertionIndex)/13.0, record.LoadFactor,
				"exact load factor at insertion %d", record.InsertionIndex)
		}
	})

	t.Run("worst case totals grow quadratically while sampled", func(t *testing.T) {
		// Prepare
		conf := SamplerConf{Capacity: 10007, Insertions: 50, SampleStep: 0, FirstSamples: 0}
		sampler, emitter := newTestSampler(conf, keygen.NewWorstCase(100, 10007), 0.95)

		// Execute
		err := sampler.Run()

		// Check
		// Only the final insertion is a sample point with step 0 and no leading samples.
		assert.NoError(t, err, "run succeeds")
		assert.Len(t, emitter.records, 1, "only the final sample point")

		final := emitter.records[0]
		assert.Equal(t, int64(50), final.InsertionIndex, "final insertion sampled")
		// The nth colliding key costs n probes, for chaining and linear probing alike.
		assert.Equal(t, int64(50*51/2), final.Chaining.Probes, "chaining probe total")
		assert.Equal(t, int64(50*51/2), final.Linear.Probes, "linear probing probe total")
	})

	t.Run("near full gating freezes open addressing totals", func(t *testing.T) {
		// Prepare
		// Threshold 0.5 of 13 slots gates open addressing after 6 occupied, while all
		// 13 insertions keep flowing into the chained table.
		conf := SamplerConf{Capacity: 13, Insertions: 13, SampleStep: 1, FirstSamples: 0}
		sampler, emitter := newTestSampler(conf, keygen.NewWorstCase(5, 13), 0.5)

		// Execute
		err := sampler.Run()

		// Check
		assert.NoError(t, err, "run succeeds")
		assert.Len(t, emitter.records, 13, "one record per insertion")

		frozen := emitter.records[5]
		for _, record := range emitter.records[6:] {
			assert.Equal(t, frozen.Linear.Probes, record.Linear.Probes, "linear total frozen after gating")
			assert.Equal(t, frozen.Quadratic.Probes, record.Quadratic.Probes, "quadratic total frozen after gating")
			assert.Equal(t, frozen.Double.Probes, record.Double.Probes, "double total frozen after gating")
		}

		var previousChaining int64
		for _, record := range emitter.records {
			assert.Greater(t, record.Chaining.Probes, previousChaining, "chaining total keeps growing")
			previousChaining = record.Chaining.Probes
		}
	})

	t.Run("moves through the lifecycle states exactly once", func(t *testing.T) {
		// Prepare
		conf := SamplerConf{Capacity: 13, Insertions: 5, SampleStep: 1, FirstSamples: 0}
		sampler, _ := newTestSampler(conf, keygen.NewWorstCase(5, 13), 0.95)
		assert.Equal(t, Idle, sampler.State(), "starts in Idle")

		// Execute
		err := sampler.Run()

		// Check
		assert.NoError(t, err, "first run succeeds")
		assert.Equal(t, Finished, sampler.State(), "finished after the run")

		err = sampler.Run()
		assert.Error(t, err, "second run rejected")
	})
}
