package ledger

import (
	"github.com/cespare/xxhash/v2"
)

const (
	// dnaModulus keeps dna values at 16 decimal digits.
	dnaModulus uint64 = 1e16
)

// DeriveDNA produces a zombie's dna from its name and the server salt. The
// result is truncated to 16 decimal digits and the low two digits are zeroed;
// trait decoding reserves that slot. Pure function of its inputs, so creation
// is fully reproducible.
func DeriveDNA(name, salt string) uint64 {
	dna := xxhash.Sum64String(name+"\x00"+salt) % dnaModulus
	return dna - dna%100
}

// MixDNA combines two dna values into offspring dna: the average of both,
// renormalized to the same 16-digit multiple-of-100 shape as created dna.
func MixDNA(a, b uint64) uint64 {
	mixed := (a/2 + b/2) % dnaModulus
	return mixed - mixed%100
}
