package rds

import "testing"

func TestOffsetForSyndrome(t *testing.T) {
	tests := []struct {
		syndrome uint16
		expected Offset
	}{
		{0b1111011000, OffsetA},
		{0b1111010100, OffsetB},
		{0b1001011100, OffsetC},
		{0b1111001100, OffsetCPrime},
		{0b1001011000, OffsetD},
		{0, OffsetInvalid},
		{0b0101010101, OffsetInvalid},
	}

	for _, test := range tests {
		if got := offsetForSyndrome(test.syndrome); got != test.expected {
			t.Errorf("offsetForSyndrome(%010b) = %v, want %v", test.syndrome, got, test.expected)
		}
	}
}

func TestOffsetNext(t *testing.T) {
	tests := []struct {
		o        Offset
		expected Offset
	}{
		{OffsetA, OffsetB},
		{OffsetB, OffsetC},
		{OffsetC, OffsetD},
		{OffsetCPrime, OffsetD},
		{OffsetD, OffsetA},
	}

	for _, test := range tests {
		if got := test.o.Next(); got != test.expected {
			t.Errorf("%v.Next() = %v, want %v", test.o, got, test.expected)
		}
	}
}

func TestOffsetBlockNumber(t *testing.T) {
	tests := []struct {
		o        Offset
		expected int
	}{
		{OffsetA, 1},
		{OffsetB, 2},
		{OffsetC, 3},
		{OffsetCPrime, 3},
		{OffsetD, 4},
	}

	for _, test := range tests {
		if got := test.o.BlockNumber(); got != test.expected {
			t.Errorf("%v.BlockNumber() = %d, want %d", test.o, got, test.expected)
		}
	}
}

func TestOffsetString(t *testing.T) {
	if OffsetCPrime.String() != "C'" {
		t.Errorf("OffsetCPrime.String() = %q, want %q", OffsetCPrime.String(), "C'")
	}
	if OffsetInvalid.String() != "invalid" {
		t.Errorf("OffsetInvalid.String() = %q, want %q", OffsetInvalid.String(), "invalid")
	}
}
