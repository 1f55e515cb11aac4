package rds

// blockLength is the width, in bits, of an RDS block: a 16-bit
// information word followed by a 10-bit checkword.
const blockLength = 26

// blockBitmask keeps only the low 26 bits of a shift register.
const blockBitmask = uint32(1)<<blockLength - 1

// checkwordLength is the width, in bits, of the checkword appended to
// each 16-bit information word.
const checkwordLength = 10

// parityCheckMatrix is H from IEC 62106 Annex B: the 10 identity rows
// followed by the 16 generator rows, each expressed as a 10-bit row
// vector. Row r applies to bit 25-r of the received word, so row 0 goes
// with the first-transmitted (most significant) bit.
var parityCheckMatrix = [blockLength]uint16{
	0b1000000000,
	0b0100000000,
	0b0010000000,
	0b0001000000,
	0b0000100000,
	0b0000010000,
	0b0000001000,
	0b0000000100,
	0b0000000010,
	0b0000000001,
	0b1011011100,
	0b0101101110,
	0b0010110111,
	0b1010000111,
	0b1110011111,
	0b1100010011,
	0b1101010101,
	0b1101110110,
	0b0110111011,
	0b1000000001,
	0b1111011100,
	0b0111101110,
	0b0011110111,
	0b1010100111,
	0b1110001111,
	0b1100011011,
}

// syndrome computes the 10-bit parity-check result for a 26-bit word by
// XORing together every row of the parity-check matrix whose
// corresponding bit in vec is 1 (EN 50067:1998 section B.1.1).
func syndrome(vec uint32) uint16 {
	var result uint16
	for k := 0; k < len(parityCheckMatrix); k++ {
		if (vec>>uint(k))&1 == 1 {
			result ^= parityCheckMatrix[len(parityCheckMatrix)-1-k]
		}
	}
	return result
}
