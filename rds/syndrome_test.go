package rds

import "testing"

// An error-free block carrying sixteen zero data bits has its checkword
// equal to the bare offset word, since the code is linear: all-zero data
// has an all-zero checkword, leaving only the offset word.
func TestSyndromeRecognizesOffsetWords(t *testing.T) {
	for offset, word := range offsetWords {
		b := blockFromRaw(uint32(word))
		if b.Offset != offset {
			t.Errorf("blockFromRaw(%010b) recognized offset %v, want %v", word, b.Offset, offset)
		}
	}
}

func TestSyndromeChangesOnDataBitFlip(t *testing.T) {
	// Flipping one data bit of a clean offset-A block must change the
	// syndrome; a guard against a parity-check loop that ignores data bits.
	a := uint32(offsetWords[OffsetA])
	b := a ^ (1 << 15)
	if syndrome(a) == syndrome(b) {
		t.Errorf("syndrome(%026b) == syndrome(%026b), expected a single flipped data bit to change the syndrome", a, b)
	}
}
