package table

import (
	"github.com/gostonefire/hashsim/interfaces"
)

// ChainedTable - Separate chaining hash table. Each of the tableSize buckets holds an ordered
// sequence of keys, new keys are appended at the tail. Chains grow unboundedly, so the table
// tolerates load factors above 1 and Insert never fails.
type ChainedTable struct {
	hashAlgorithm hashfunc.HashAlgorithm
	buckets       [][]int64
	records       int64
}

// NewChainedTable - Returns a pointer to a new ChainedTable instance
//   - hashAlgorithm is the bucket selection algorithm, its table size decides the number of buckets
func NewChainedTable(hashAlgorithm hashfunc.HashAlgorithm) *ChainedTable {
	return &ChainedTable{
		hashAlgorithm: hashAlgorithm,
		buckets:       make([][]int64, hashAlgorithm.GetTableSize()),
	}
}

// Insert - Appends key at the tail of its bucket chain.
// It returns:
//   - probes is 1 for reaching the bucket plus one per existing chain node traversed before the append
func (C *ChainedTable) Insert(key int64) (probes int64) {
	bucketNo := C.hashAlgorithm.HashFunc1(key)

	probes = 1 + int64(len(C.buckets[bucketNo]))
	C.buckets[bucketNo] = append(C.buckets[bucketNo], key)
	C.records++

	return
}

// Records - Returns the total number of keys inserted
func (C *ChainedTable) Records() int64 {
	return C.records
}

// ChainLength - Returns the number of keys chained at bucketNo
func (C *ChainedTable) ChainLength(bucketNo int64) int64 {
	return int64(len(C.buckets[bucketNo]))
}

// LongestChain - Returns the length of the longest chain in the table
func (C *ChainedTable) LongestChain() (longest int64) {
	for _, bucket := range C.buckets {
		if int64(len(bucket)) > longest {
			longest = int64(len(bucket))
		}
	}

	return
}
