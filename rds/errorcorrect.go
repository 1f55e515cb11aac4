package rds

import "sync"

// errorKey is the lookup key for the error-correction table: a received
// syndrome paired with the offset we expected to see.
type errorKey struct {
	syndrome uint16
	expected Offset
}

var (
	errorTableOnce sync.Once
	errorTable     map[errorKey]uint32
)

// buildErrorLookupTable precomputes, for every real offset and every
// single-bit or two-adjacent-bit error pattern across all 26 bit
// positions, the syndrome that a block corrupted by that pattern would
// produce — keyed by (syndrome, offset) and mapping to the 26-bit error
// vector to XOR back in (IEC 62106:2015 section B.3.1).
//
// Kopitz & Marks 1999, "RDS: The Radio Data System", p. 224: correction
// is intentionally restricted to bursts of one or two adjacent bits, the
// standard's trade-off between correction power and the risk of
// miscorrecting under Gaussian noise.
func buildErrorLookupTable() map[errorKey]uint32 {
	table := make(map[errorKey]uint32, len(realOffsets)*(blockLength+blockLength-1))
	for _, offset := range realOffsets {
		word := uint32(offsetWords[offset])
		for _, errorBits := range [2]uint32{0b1, 0b11} {
			for shift := uint(0); shift < blockLength; shift++ {
				errorVector := (errorBits << shift) & blockBitmask
				syn := syndrome(errorVector ^ word)
				table[errorKey{syn, offset}] = errorVector
			}
		}
	}
	return table
}

func lookupErrorTable() map[errorKey]uint32 {
	errorTableOnce.Do(func() {
		errorTable = buildErrorLookupTable()
	})
	return errorTable
}

// correctBurstErrors attempts to recover a block corrupted by a burst of
// at most two adjacent bit errors, given the offset we expected to
// receive (EN 50067:1998, section B.2.2). It returns the corrected raw
// word and whether correction succeeded; the block is left unmodified on
// failure.
func correctBurstErrors(block Block, expectedOffset Offset) (corrected uint32, ok bool) {
	syn := syndrome(block.Raw)
	errVec, found := lookupErrorTable()[errorKey{syn, expectedOffset}]
	if !found {
		return block.Raw, false
	}
	return block.Raw ^ errVec, true
}
