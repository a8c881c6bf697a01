package hashfunc

// HashAlgorithm - Interface over the per technique hash arithmetic. One implementation exists per
// collision resolution technique, all operating on signed integer keys over a fixed table size.
type HashAlgorithm interface {
	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
	// Implementations must stay within that range also for negative keys.
	HashFunc1(key int64) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the
	// value from HashFunc1 in calls to ProbeIteration. The function is only meaningful for the
	// Double Hashing collision resolution technique, other implementations return a dummy value.
	// A Double Hashing implementation must never return 0, that would degenerate the probe
	// sequence to repeatedly visiting the same slot.
	HashFunc2(key int64) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// Implementations may adjust the requested size at construction (e.g. to the nearest prime),
	// so this must return the actual size in effect.
	GetTableSize() int64

	// ProbeIteration - Returns a candidate slot index given values from HashFunc1 and HashFunc2 in iteration.
	// Since this function is called repeatedly in a collision resolution situation, and the actual hash
	// values from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function
	// takes those values rather than the actual key as input.
	// The function is not used for the Separate Chaining collision resolution technique.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
