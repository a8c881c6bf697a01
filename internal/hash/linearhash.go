package hash

// LinearProbingHashAlgorithm - Bucket selection for the Linear Probing collision resolution
// technique, probing consecutive slots from the primary hash index.
type LinearProbingHashAlgorithm struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance.
// The requested table size is adjusted to the nearest equal or higher prime.
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	return &LinearProbingHashAlgorithm{tableSize: NearestPrimeAtOrAbove(tableSize)}
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return AbsKey(key) % L.tableSize
}

// HashFunc2 - Not used in linear probing collision resolution, returns a dummy value
func (L *LinearProbingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing, index = (hf1 + i) mod tableSize.
// Both inputs are below tableSize so a single wrap subtraction replaces the modulus.
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
