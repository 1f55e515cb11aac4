package rds

import (
	"strconv"
	"time"
)

// GroupVersion distinguishes the A and B variants of a group type.
type GroupVersion int

const (
	VersionA GroupVersion = iota
	VersionB
)

func (v GroupVersion) String() string {
	if v == VersionB {
		return "B"
	}
	return "A"
}

// GroupType is the (number, version) pair carried in bits 15..11 of
// block 2 (or, in the type-(15,B) corner case, block 4).
type GroupType struct {
	Number  int
	Version GroupVersion
}

// groupTypeFromBits decodes a GroupType from the top 5 bits of a block's
// 16-bit data word: 4 bits of group number followed by 1 version bit
// (0 = A, 1 = B).
func groupTypeFromBits(bits5 uint16) GroupType {
	return GroupType{
		Number:  int(bits5 >> 1),
		Version: GroupVersion(bits5 & 0x1),
	}
}

func (t GroupType) String() string {
	return strconv.Itoa(t.Number) + t.Version.String()
}

// numBlocks is the number of slots in a group.
const numBlocks = 4

// Group is a fully- or partially-assembled four-block RDS group plus the
// reception metadata the dispatcher and typed decoders rely on. Once
// emitted via BlockStream.PopGroup, a Group is never mutated again.
type Group struct {
	blocks [numBlocks]Block

	typ       GroupType
	hasType   bool
	hasCPrime bool
	noOffsets bool

	bler    float64
	hasBLER bool

	rxTime  time.Time
	hasTime bool
}

// SetNoOffsets marks this Group as assembled from pre-framed input (spec
// §6): the upstream source delivered blocks without telling us their
// offsets, so the relaxed has_type rules of spec §4.3 apply.
func (g *Group) SetNoOffsets() {
	g.noOffsets = true
}

// setBlock installs a block into the given 1-based slot and updates the
// type-detection state machine described in spec §4.3.
func (g *Group) setBlock(blockNum int, b Block) {
	g.blocks[blockNum-1] = b

	switch blockNum {
	case 2:
		g.typ = groupTypeFromBits(getBits(b.Data, 11, 5))
		if g.typ.Version == VersionA {
			g.hasType = true
		} else {
			g.hasType = g.hasCPrime || g.noOffsets
		}
	case 4:
		if g.hasCPrime && !g.hasType {
			potential := groupTypeFromBits(getBits(b.Data, 11, 5))
			if potential.Number == 15 && potential.Version == VersionB {
				g.typ = potential
				g.hasType = true
			}
		}
	}

	if b.Offset == OffsetCPrime {
		g.hasCPrime = true
		if g.Has(2) {
			g.hasType = g.typ.Version == VersionB
		}
	}
}

// Has reports whether the given 1-based slot was received (error-free or
// corrected).
func (g *Group) Has(blockNum int) bool {
	return g.blocks[blockNum-1].IsReceived
}

// Block1..Block4 return the 16-bit data word of the corresponding slot.
// Callers must check Has(n) before trusting the value.
func (g *Group) Block1() uint16 { return g.blocks[0].Data }
func (g *Group) Block2() uint16 { return g.blocks[1].Data }
func (g *Group) Block3() uint16 { return g.blocks[2].Data }
func (g *Group) Block4() uint16 { return g.blocks[3].Data }

// BlockAt returns the data word for 1-based slot n.
func (g *Group) BlockAt(n int) uint16 { return g.blocks[n-1].Data }

// IsEmpty reports whether no slot was received.
func (g *Group) IsEmpty() bool {
	return !(g.Has(1) || g.Has(2) || g.Has(3) || g.Has(4))
}

// HasPI reports whether the Programme Identifier is available: either
// slot 1 was received, or slot 3 was received tagged C' (spec §3).
func (g *Group) HasPI() bool {
	return g.blocks[0].IsReceived ||
		(g.blocks[2].IsReceived && g.blocks[2].Offset == OffsetCPrime)
}

// PI returns the Programme Identifier. Callers must check HasPI first;
// if neither source is available this returns 0.
func (g *Group) PI() uint16 {
	if g.blocks[0].IsReceived {
		return g.blocks[0].Data
	}
	if g.blocks[2].IsReceived && g.blocks[2].Offset == OffsetCPrime {
		return g.blocks[2].Data
	}
	return 0
}

// HasType reports whether the group's (number, version) has been
// determined yet (spec §4.3).
func (g *Group) HasType() bool { return g.hasType }

// Type returns the group's (number, version) pair. Not meaningful unless
// HasType() is true.
func (g *Group) Type() GroupType { return g.typ }

// NumErrors counts slots that either weren't received or were received
// with (corrected) errors.
func (g *Group) NumErrors() int {
	n := 0
	for _, b := range g.blocks {
		if b.HadErrors || !b.IsReceived {
			n++
		}
	}
	return n
}

// BLER returns the running-average block error rate that BlockStream
// attaches when it assembles the group. The Dispatcher attaches none, so
// groups from NewPreFramedGroup or ParseHexGroup carry no BLER. Not
// meaningful unless HasBLER() is true.
func (g *Group) BLER() float64 { return g.bler }
func (g *Group) HasBLER() bool { return g.hasBLER }

func (g *Group) setBLER(b float64) {
	g.bler = b
	g.hasBLER = true
}

// RxTime returns the wall-clock time the group was assembled. Not
// meaningful unless HasTime() is true.
func (g *Group) RxTime() time.Time { return g.rxTime }
func (g *Group) HasTime() bool     { return g.hasTime }

func (g *Group) setTime(t time.Time) {
	g.rxTime = t
	g.hasTime = true
}

// getBits extracts an n-bit field from word, starting at bit position
// startingAt counted from the LSB (IEC 62106's bit numbering).
func getBits(word uint16, startingAt, n uint) uint16 {
	return (word >> startingAt) & ((1 << n) - 1)
}

// getBits32 extracts an n-bit field (n<=32) from the concatenation of
// word1 (high 16 bits) and word2 (low 16 bits), starting at startingAt
// counted from the LSB of that 32-bit value.
func getBits32(word1, word2 uint16, startingAt, n uint) uint32 {
	v := (uint32(word1) << 16) | uint32(word2)
	return (v >> startingAt) & (1<<n - 1)
}
