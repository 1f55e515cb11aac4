package rds

import "testing"

func TestCallsignFromPINorthAmericanK(t *testing.T) {
	cs := CallsignFromPI(5000) // bits 8-11 and 0-7 both nonzero, below the W boundary
	if cs[0] != 'K' {
		t.Errorf("CallsignFromPI(5000)[0] = %q, want 'K' (PI below the W-station boundary)", cs[0])
	}
}

func TestCallsignFromPINorthAmericanW(t *testing.T) {
	cs := CallsignFromPI(21672)
	if cs[0] != 'W' {
		t.Errorf("CallsignFromPI(21672)[0] = %q, want 'W' (PI at the W-station boundary)", cs[0])
	}
}

func TestCallsignFromPIEuropeanLocal(t *testing.T) {
	cs := CallsignFromPI(0x1000) // bits 8-11 clear: European local broadcast range
	if cs[0] != 'A' {
		t.Errorf("CallsignFromPI(0x1000)[0] = %q, want 'A' (European local broadcast range)", cs[0])
	}
}

func TestCallsignFromPIOutOfRangeIsBlank(t *testing.T) {
	cs := CallsignFromPI(0x0234)
	zero := [4]byte{}
	if cs != zero {
		t.Errorf("CallsignFromPI(0x0234) = %v, want a blank callsign for an unassigned PI", cs)
	}
}

func TestProgramTypeTablesHaveThirtyTwoEntries(t *testing.T) {
	if len(ProgramTypeNamesNA) != 32 {
		t.Errorf("ProgramTypeNamesNA has %d entries, want 32", len(ProgramTypeNamesNA))
	}
	if len(ProgramTypeNamesEU) != 32 {
		t.Errorf("ProgramTypeNamesEU has %d entries, want 32", len(ProgramTypeNamesEU))
	}
	for i, name := range ProgramTypeNamesNA {
		if name == "" {
			t.Errorf("ProgramTypeNamesNA[%d] is empty", i)
		}
	}
}
