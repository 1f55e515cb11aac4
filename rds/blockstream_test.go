package rds

import "testing"

// pushRaw feeds a BlockStream the 26 bits of raw, most-significant bit
// first, mirroring how a demodulator would present a block's bits in
// transmission order.
func pushRaw(s *BlockStream, raw uint32) {
	for shift := int(blockLength) - 1; shift >= 0; shift-- {
		s.PushBit((raw>>uint(shift))&1 == 1)
	}
}

// pushCleanGroup feeds the 4*26 bits of an all-zero-data group, one
// clean block per offset in A/B/C/D order.
func pushCleanGroup(s *BlockStream) {
	pushRaw(s, uint32(offsetWords[OffsetA]))
	pushRaw(s, uint32(offsetWords[OffsetB]))
	pushRaw(s, uint32(offsetWords[OffsetC]))
	pushRaw(s, uint32(offsetWords[OffsetD]))
}

func TestBlockStreamAcquiresSyncAndAssemblesGroups(t *testing.T) {
	s := NewBlockStream()
	if s.IsInSync() {
		t.Fatalf("a fresh BlockStream should start out of sync")
	}

	var groups []Group
	for i := 0; i < 25; i++ {
		pushCleanGroup(s)
		for s.HasGroupReady() {
			groups = append(groups, s.PopGroup())
		}
	}

	if !s.IsInSync() {
		t.Fatalf("BlockStream never acquired sync over twenty-five repeated clean groups")
	}
	if len(groups) == 0 {
		t.Fatalf("no groups were assembled")
	}

	last := groups[len(groups)-1]
	for n := 1; n <= 4; n++ {
		if !last.Has(n) {
			t.Errorf("block %d missing from a group assembled once in sync", n)
		}
		if last.BlockAt(n) != 0 {
			t.Errorf("block %d data = %#04x, want 0", n, last.BlockAt(n))
		}
	}
	if !last.HasBLER() {
		t.Errorf("an assembled group should carry a BLER")
	}
	if !last.HasTime() {
		t.Errorf("an assembled group should carry a reception timestamp")
	}
}

func TestBlockStreamCorrectsSingleBitErrors(t *testing.T) {
	s := NewBlockStream()

	for i := 0; i < 25; i++ {
		pushCleanGroup(s)
		for s.HasGroupReady() {
			s.PopGroup()
		}
	}
	if !s.IsInSync() {
		t.Fatalf("BlockStream failed to reach sync before the corrupted group")
	}

	// Corrupt one bit inside block A of the next group; the synchronizer
	// should still deliver that block (corrected) once in sync.
	pushRaw(s, uint32(offsetWords[OffsetA])^(1<<5))
	pushRaw(s, uint32(offsetWords[OffsetB]))
	pushRaw(s, uint32(offsetWords[OffsetC]))
	pushRaw(s, uint32(offsetWords[OffsetD]))

	if !s.HasGroupReady() {
		t.Fatalf("expected a group after a correctable single-bit error")
	}
	g := s.PopGroup()
	if !g.Has(1) {
		t.Errorf("block 1 should have been recovered via burst-error correction")
	}
	if g.BlockAt(1) != 0 {
		t.Errorf("corrected block 1 data = %#04x, want 0", g.BlockAt(1))
	}
	if g.NumErrors() == 0 {
		t.Errorf("NumErrors() should count the corrected block")
	}
}
