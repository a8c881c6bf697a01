package table

import (
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/interfaces"
)

// slot - One entry in the flat slot array, either empty or holding exactly one inserted key
type slot struct {
	occupied bool
	key      int64
}

// OpenAddressTable - Open addressing hash table over a single flat slot array. The probing policy
// is whatever the supplied hash algorithm implements, each policy under measurement gets its own
// independently initialized instance of the same size.
type OpenAddressTable struct {
	hashAlgorithm hashfunc.HashAlgorithm
	slots         []slot
	occupied      int64
	nearFullAt    int64
}

// NewOpenAddressTable - Returns a pointer to a new OpenAddressTable instance
//   - hashAlgorithm is the probing algorithm, its table size decides the number of slots
//   - nearFullThreshold is the fill fraction (0 exclusive to 1 inclusive) at which NearFull starts reporting true
func NewOpenAddressTable(hashAlgorithm hashfunc.HashAlgorithm, nearFullThreshold float64) *OpenAddressTable {
	tableSize := hashAlgorithm.GetTableSize()
	nearFullAt := int64(nearFullThreshold * float64(tableSize))
	if nearFullAt < 1 {
		nearFullAt = 1
	}

	return &OpenAddressTable{
		hashAlgorithm: hashAlgorithm,
		slots:         make([]slot, tableSize),
		nearFullAt:    nearFullAt,
	}
}

// Insert - Places key in the first empty slot along its probe sequence.
// The slot at iteration 0 is probe number 1, each occupied slot encountered adds one probe.
// The probe sequence is bounded by the table size.
// It returns:
//   - probes is the total number of slots examined, including the successful one
//   - err is a crt.ProbeSequenceExhausted if no empty slot was found within tableSize probes, in
//     which case the key is dropped but the probes spent scanning are still reported
func (T *OpenAddressTable) Insert(key int64) (probes int64, err error) {
	hf1Value := T.hashAlgorithm.HashFunc1(key)
	hf2Value := T.hashAlgorithm.HashFunc2(key)
	tableSize := T.hashAlgorithm.GetTableSize()

	for i := int64(0); i < tableSize; i++ {
		probes++
		slotNo := T.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)

		if !T.slots[slotNo].occupied {
			T.slots[slotNo] = slot{occupied: true, key: key}
			T.occupied++
			return
		}
	}

	err = crt.ProbeSequenceExhausted{}

	return
}

// NearFull - Returns true once the number of occupied slots has reached the configured fill
// threshold. The caller is expected to stop feeding keys at that point, chains of occupied slots
// close to full make probe costs explode and drown the measurement.
func (T *OpenAddressTable) NearFull() bool {
	return T.occupied >= T.nearFullAt
}

// Occupied - Returns the number of occupied slots
func (T *OpenAddressTable) Occupied() int64 {
	return T.occupied
}

// SlotKey - Returns the key at slotNo and whether the slot is occupied
func (T *OpenAddressTable) SlotKey(slotNo int64) (key int64, occupied bool) {
	key = T.slots[slotNo].key
	occupied = T.slots[slotNo].occupied

	return
}
