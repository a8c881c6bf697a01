package keygen

import (
	"math/rand"

	"github.com/gostonefire/hashsim/crt"
)

// KeyGenerator - Interface over the key distribution models. A generator is an infinite sequence,
// Next never fails and may return duplicate keys.
type KeyGenerator interface {
	// Next - Returns the next key in the sequence.
	//   - index is the zero based position in the insertion sequence, some models derive part of the key from it
	Next(index int64) int64

	// Distribution - Returns the distribution model the generator implements
	Distribution() crt.Distribution
}

// Uniform - Generates keys drawn from the full signed integer range, spreading evenly over the
// primary hash range. Models the best case input.
type Uniform struct {
	rnd *rand.Rand
}

// NewUniform - Returns a pointer to a new Uniform key generator
//   - rnd is the pseudo-random source, owned by the caller and shared within one run
func NewUniform(rnd *rand.Rand) *Uniform {
	return &Uniform{rnd: rnd}
}

// Next - Returns a key drawn from the full signed integer range
func (U *Uniform) Next(index int64) int64 {
	return int64(U.rnd.Uint64())
}

// Distribution - Returns crt.Uniform
func (U *Uniform) Distribution() crt.Distribution {
	return crt.Uniform
}

// Skewed - Generates keys that cluster in a restricted band of indices after the table modulus,
// index*stride plus a small random offset. Models realistic partially clustered input.
type Skewed struct {
	rnd    *rand.Rand
	stride int64
	bound  int64
}

// NewSkewed - Returns a pointer to a new Skewed key generator
//   - rnd is the pseudo-random source, owned by the caller and shared within one run
//   - stride is the distance between cluster centers
//   - bound is the exclusive upper limit of the random offset added to each key
func NewSkewed(rnd *rand.Rand, stride, bound int64) *Skewed {
	return &Skewed{rnd: rnd, stride: stride, bound: bound}
}

// Next - Returns index*stride plus a random offset below bound
func (S *Skewed) Next(index int64) int64 {
	return index*S.stride + S.rnd.Int63n(S.bound)
}

// Distribution - Returns crt.Skewed
func (S *Skewed) Distribution() crt.Distribution {
	return crt.Skewed
}

// WorstCase - Generates keys whose primary hash is constant, every key in the sequence collides
// on the same slot. Models the adversarial input that maximizes chain and probe sequence lengths.
type WorstCase struct {
	target    int64
	tableSize int64
}

// NewWorstCase - Returns a pointer to a new WorstCase key generator
//   - target is the slot all generated keys hash to, must be less than tableSize
//   - tableSize is the prime capacity of the tables under measurement
func NewWorstCase(target, tableSize int64) *WorstCase {
	return &WorstCase{target: target % tableSize, tableSize: tableSize}
}

// Next - Returns target + index*tableSize, which reduces to target under the table modulus
func (W *WorstCase) Next(index int64) int64 {
	return W.target + index*W.tableSize
}

// Distribution - Returns crt.WorstCase
func (W *WorstCase) Distribution() crt.Distribution {
	return crt.WorstCase
}
