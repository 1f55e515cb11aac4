package rds

import (
	"fmt"
	"strconv"
	"strings"
)

// missingBlockSentinel is the literal written for a block whose
// IsReceived flag is false (spec §6).
const missingBlockSentinel = "----"

// HexString renders a Group in the canonical on-wire capture format used
// by replay tools (spec §6): four 4-hex-nybble uppercase words separated
// by single spaces, with any unreceived block written as "----".
func HexString(g Group) string {
	words := make([]string, numBlocks)
	for i := 0; i < numBlocks; i++ {
		if g.Has(i + 1) {
			words[i] = fmt.Sprintf("%04X", g.BlockAt(i+1))
		} else {
			words[i] = missingBlockSentinel
		}
	}
	return strings.Join(words, " ")
}

// NewPreFramedGroup builds a Group straight from four already-aligned,
// already error-corrected data words, for front ends whose hardware
// (an FM tuner chip's own RDS registers, say) delivers whole groups
// rather than a raw demodulated bitstream (spec §6, pre-framed input
// mode).
func NewPreFramedGroup(b1, b2, b3, b4 uint16) Group {
	var g Group
	g.SetNoOffsets()
	g.setBlock(1, Block{Data: b1, Offset: OffsetA, IsReceived: true})
	g.setBlock(2, Block{Data: b2, Offset: OffsetB, IsReceived: true})
	g.setBlock(3, Block{Data: b3, Offset: OffsetC, IsReceived: true})
	g.setBlock(4, Block{Data: b4, Offset: OffsetD, IsReceived: true})
	return g
}

// ParseHexGroup parses one line of the ASCII capture format (spec §6): four
// whitespace-separated hex blocks, tolerating lowercase hex and the
// "----" sentinel for missing blocks. Trailing metadata (a timestamp
// column, say) is ignored. The returned Group enters pre-framed input
// mode (NoOffsets set), bypassing the synchronizer entirely.
func ParseHexGroup(line string) (Group, error) {
	fields := strings.Fields(line)
	if len(fields) < numBlocks {
		return Group{}, fmt.Errorf("rds: malformed capture line %q: need %d blocks, got %d", line, numBlocks, len(fields))
	}

	var g Group
	g.SetNoOffsets()

	offsetsInOrder := []Offset{OffsetA, OffsetB, OffsetC, OffsetD}
	for i := 0; i < numBlocks; i++ {
		word := fields[i]
		if word == missingBlockSentinel {
			continue
		}
		v, err := strconv.ParseUint(word, 16, 16)
		if err != nil {
			return Group{}, fmt.Errorf("rds: malformed capture block %q: %w", word, err)
		}
		g.setBlock(i+1, Block{
			Data:       uint16(v),
			Offset:     offsetsInOrder[i],
			IsReceived: true,
		})
	}
	return g, nil
}
