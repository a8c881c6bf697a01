//go:build unit

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("adjusts table size to nearest prime", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(11), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("stays within table range for positive and negative keys", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10007)
		tableSize := h.GetTableSize()

		// Execute and Check
		for _, key := range []int64{0, 1, 42, -42, 10006, -10006, 123456789, -123456789} {
			bucketNo := h.HashFunc1(key)
			assert.GreaterOrEqualf(t, bucketNo, int64(0), "bucket not negative for key %d", key)
			assert.Lessf(t, bucketNo, tableSize, "bucket less than table size for key %d", key)
		}
	})

	t.Run("is the remainder of the absolute key", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(13)

		// Execute and Check
		assert.Equal(t, int64(5), h.HashFunc1(18), "18 mod 13 is 5")
		assert.Equal(t, int64(5), h.HashFunc1(-18), "abs(-18) mod 13 is 5")
	})
}

func TestLinearProbingHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table visiting every slot once", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)
		tableSize := h.GetTableSize()

		bucketNo := h.HashFunc1(379)

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(bucketNo, 0, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})

	t.Run("probes consecutive slots", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(13)
		bucketNo := h.HashFunc1(11)

		// Execute and Check
		assert.Equal(t, int64(11), h.ProbeIteration(bucketNo, 0, 0), "first probe at primary index")
		assert.Equal(t, int64(12), h.ProbeIteration(bucketNo, 0, 1), "second probe one step further")
		assert.Equal(t, int64(0), h.ProbeIteration(bucketNo, 0, 2), "third probe wraps around")
	})
}
