package hash

// SeparateChainingHashAlgorithm - Bucket selection for the Separate Chaining collision resolution
// technique. Only the primary hash function is in use, colliding keys are chained within a bucket
// so there is no probe iteration.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance.
// The requested table size is adjusted to the nearest equal or higher prime.
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	return &SeparateChainingHashAlgorithm{tableSize: NearestPrimeAtOrAbove(tableSize)}
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm) HashFunc1(key int64) int64 {
	return AbsKey(key) % O.tableSize
}

// HashFunc2 - Not used in separate chaining collision resolution, returns a dummy value
func (O *SeparateChainingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (O *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return O.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution, returns a dummy value
func (O *SeparateChainingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return 0
}
