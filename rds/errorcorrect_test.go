package rds

import "testing"

func TestCorrectBurstErrorsSingleBit(t *testing.T) {
	clean := uint32(offsetWords[OffsetA])

	for shift := uint(0); shift < blockLength; shift++ {
		corruptedRaw := (clean ^ (1 << shift)) & blockBitmask
		corrupted := blockFromRaw(corruptedRaw)

		correctedRaw, ok := correctBurstErrors(corrupted, OffsetA)
		if !ok {
			t.Errorf("shift=%d: correctBurstErrors() failed to correct a single-bit error", shift)
			continue
		}
		if correctedRaw != clean {
			t.Errorf("shift=%d: corrected raw = %026b, want %026b", shift, correctedRaw, clean)
		}
	}
}

func TestCorrectBurstErrorsTwoAdjacentBits(t *testing.T) {
	clean := uint32(offsetWords[OffsetB])

	for shift := uint(0); shift < blockLength-1; shift++ {
		corruptedRaw := (clean ^ (0b11 << shift)) & blockBitmask
		corrupted := blockFromRaw(corruptedRaw)

		correctedRaw, ok := correctBurstErrors(corrupted, OffsetB)
		if !ok {
			t.Errorf("shift=%d: correctBurstErrors() failed to correct a two-adjacent-bit error", shift)
			continue
		}
		if correctedRaw != clean {
			t.Errorf("shift=%d: corrected raw = %026b, want %026b", shift, correctedRaw, clean)
		}
	}
}

func TestCorrectBurstErrorsGivesUpOnWrongOffset(t *testing.T) {
	clean := uint32(offsetWords[OffsetD])
	corrupted := blockFromRaw((clean ^ (1 << 2)) & blockBitmask)

	if _, ok := correctBurstErrors(corrupted, OffsetA); ok {
		t.Errorf("correctBurstErrors() succeeded against the wrong expected offset")
	}
}
