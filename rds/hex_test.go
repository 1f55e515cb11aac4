package rds

import "testing"

func TestHexStringRoundTrip(t *testing.T) {
	line := "3ABC 0469 E0E0 5450"
	g, err := ParseHexGroup(line)
	if err != nil {
		t.Fatalf("ParseHexGroup(%q) returned an error: %v", line, err)
	}
	if got := HexString(g); got != line {
		t.Errorf("HexString(ParseHexGroup(%q)) = %q, want %q", line, got, line)
	}
}

func TestParseHexGroupMissingBlocks(t *testing.T) {
	g, err := ParseHexGroup("3ABC ---- E0E0 5450")
	if err != nil {
		t.Fatalf("ParseHexGroup with a missing block returned an error: %v", err)
	}
	if g.Has(2) {
		t.Errorf("block 2 should not be marked received")
	}
	if !g.Has(1) || !g.Has(3) || !g.Has(4) {
		t.Errorf("blocks 1, 3 and 4 should be marked received")
	}
	if got := HexString(g); got != "3ABC ---- E0E0 5450" {
		t.Errorf("HexString() = %q, want the missing block preserved as ----", got)
	}
}

func TestParseHexGroupLowercase(t *testing.T) {
	g, err := ParseHexGroup("3abc 0469 e0e0 5450")
	if err != nil {
		t.Fatalf("ParseHexGroup should tolerate lowercase hex: %v", err)
	}
	if g.Block1() != 0x3ABC {
		t.Errorf("Block1() = %#04x, want 0x3abc", g.Block1())
	}
}

func TestParseHexGroupTooFewFields(t *testing.T) {
	if _, err := ParseHexGroup("3ABC 0469"); err == nil {
		t.Errorf("expected an error for a line with fewer than four blocks")
	}
}

func TestParseHexGroupMalformedHex(t *testing.T) {
	if _, err := ParseHexGroup("ZZZZ 0469 E0E0 5450"); err == nil {
		t.Errorf("expected an error for a non-hex block")
	}
}

func TestNewPreFramedGroupHasType(t *testing.T) {
	// Block 2's top 5 bits: group 0, version A (00000).
	g := NewPreFramedGroup(0x1234, 0x0000, 0xBEEF, 0xCAFE)
	if !g.HasType() {
		t.Fatalf("a pre-framed group with a block 2 should have a determined type")
	}
	if g.Type().Number != 0 || g.Type().Version != VersionA {
		t.Errorf("Type() = %v, want group 0A", g.Type())
	}
	if !g.HasPI() || g.PI() != 0x1234 {
		t.Errorf("PI() = %#04x, want 0x1234", g.PI())
	}
}
