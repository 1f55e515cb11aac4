package rds

// Offset identifies a block's position within an RDS group (IEC 62106
// Annex B). Offset words A, B, C, C' and D are added (XOR) to the
// checkword by the transmitter; the decoder recovers them by matching
// the received block's syndrome.
type Offset int

const (
	OffsetInvalid Offset = iota
	OffsetA
	OffsetB
	OffsetC
	OffsetCPrime
	OffsetD
)

func (o Offset) String() string {
	switch o {
	case OffsetA:
		return "A"
	case OffsetB:
		return "B"
	case OffsetC:
		return "C"
	case OffsetCPrime:
		return "C'"
	case OffsetD:
		return "D"
	default:
		return "invalid"
	}
}

// BlockNumber returns the 1-based group slot (1..4) that this offset
// fills. A and invalid both map to slot 1, matching the original
// decoder's getBlockNumberForOffset default.
func (o Offset) BlockNumber() int {
	switch o {
	case OffsetA:
		return 1
	case OffsetB:
		return 2
	case OffsetC, OffsetCPrime:
		return 3
	case OffsetD:
		return 4
	default:
		return 1
	}
}

// Next returns the offset expected to follow this one in the standard
// A->B->C->D->A cycle. C' advances the same way C does.
func (o Offset) Next() Offset {
	switch o {
	case OffsetA:
		return OffsetB
	case OffsetB:
		return OffsetC
	case OffsetC, OffsetCPrime:
		return OffsetD
	case OffsetD:
		return OffsetA
	default:
		return OffsetA
	}
}

// offsetWords holds the 10-bit value XORed into the checkword for each
// real offset (IEC 62106:2015 Table B.1).
var offsetWords = map[Offset]uint16{
	OffsetA:      0b0011111100,
	OffsetB:      0b0110011000,
	OffsetC:      0b0101101000,
	OffsetCPrime: 0b1101010000,
	OffsetD:      0b0110110100,
}

// realOffsets lists the offsets with a defined offset word, in a stable
// order used when building the error-correction table.
var realOffsets = []Offset{OffsetA, OffsetB, OffsetC, OffsetCPrime, OffsetD}

// offsetForSyndrome maps a received block's 10-bit syndrome to the offset
// it indicates for an error-free reception (IEC 62106:2015 section B.3.1,
// Table B.1).
func offsetForSyndrome(syndrome uint16) Offset {
	switch syndrome {
	case 0b1111011000:
		return OffsetA
	case 0b1111010100:
		return OffsetB
	case 0b1001011100:
		return OffsetC
	case 0b1111001100:
		return OffsetCPrime
	case 0b1001011000:
		return OffsetD
	default:
		return OffsetInvalid
	}
}
