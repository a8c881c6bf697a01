package hash

// QuadraticProbingHashAlgorithm - Bucket selection for the Quadratic Probing collision resolution
// technique, probing at quadratically growing offsets from the primary hash index.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance.
// The requested table size is adjusted to the nearest equal or higher prime. With a prime table size
// the first (tableSize+1)/2 iterations are guaranteed to land on distinct slots.
func NewQuadraticProbingHashAlgorithm(tableSize int64) *QuadraticProbingHashAlgorithm {
	return &QuadraticProbingHashAlgorithm{tableSize: NearestPrimeAtOrAbove(tableSize)}
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return AbsKey(key) % Q.tableSize
}

// HashFunc2 - Not used in quadratic probing collision resolution, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing, index = (hf1 + i*i) mod tableSize
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*iteration) % Q.tableSize
}
