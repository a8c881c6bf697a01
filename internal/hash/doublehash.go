package hash

// DoubleHashAlgorithm - Bucket selection for the Double Hashing collision resolution technique.
// A secondary hash function produces a per key step width, so keys colliding on the primary index
// still follow different probe sequences.
type DoubleHashAlgorithm struct {
	tableSize      int64
	secondaryPrime int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance.
// The requested table size is adjusted to the nearest equal or higher prime, and the secondary
// prime is picked as the largest prime below the adjusted table size.
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	size := NearestPrimeAtOrAbove(tableSize)
	return &DoubleHashAlgorithm{
		tableSize:      size,
		secondaryPrime: LargestPrimeBelow(size),
	}
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key int64) int64 {
	return AbsKey(key) % D.tableSize
}

// HashFunc2 - Given key it generates the probe step width, R - (abs(key) mod R) with R the
// secondary prime. The result lies in [1, R], but a clamp keeps the invariant of a non-zero
// step should the choice of R ever change.
func (D *DoubleHashAlgorithm) HashFunc2(key int64) int64 {
	step := D.secondaryPrime - AbsKey(key)%D.secondaryPrime
	if step == 0 {
		step = 1
	}

	return step
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// GetSecondaryPrime - Returns the prime used by HashFunc2
func (D *DoubleHashAlgorithm) GetSecondaryPrime() int64 {
	return D.secondaryPrime
}

// ProbeIteration - Implements Double Hashing, index = (hf1 + i*hf2) mod tableSize
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}
