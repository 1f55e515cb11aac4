package rds

import "testing"

func TestDispatcherCreatesOneStationPerPI(t *testing.T) {
	d := NewDispatcher(nil)

	g1, _ := ParseHexGroup("1001 0000 0000 0000")
	g2, _ := ParseHexGroup("1001 0000 0000 0000")
	g3, _ := ParseHexGroup("2002 0000 0000 0000")

	st1 := d.Dispatch(g1)
	st2 := d.Dispatch(g2)
	st3 := d.Dispatch(g3)

	if st1 != st2 {
		t.Errorf("two groups with the same PI should be routed to the same Station")
	}
	if st3 == st1 {
		t.Errorf("a different PI should get its own Station")
	}
	if st1.PI != 0x1001 {
		t.Errorf("st1.PI = %#04x, want 0x1001", st1.PI)
	}
}

func TestDispatcherRejectsDisallowedPI(t *testing.T) {
	policy := func(pi uint16) bool { return pi == 0x1001 }
	d := NewDispatcher(policy)

	allowed, _ := ParseHexGroup("1001 0000 0000 0000")
	rejected, _ := ParseHexGroup("2002 0000 0000 0000")

	if st := d.Dispatch(allowed); st == nil {
		t.Errorf("an allowed PI should produce a Station")
	}
	if st := d.Dispatch(rejected); st != nil {
		t.Errorf("a disallowed PI should be dropped")
	}
	if _, ok := d.Station(0x2002); ok {
		t.Errorf("a dropped PI should never get a Station entry")
	}
}

func TestDispatcherToleratesOneMissingPI(t *testing.T) {
	d := NewDispatcher(nil)

	withPI, _ := ParseHexGroup("1001 0000 0000 0000")
	st := d.Dispatch(withPI)
	if st == nil {
		t.Fatalf("precondition: first group should produce a Station")
	}

	// A group with no block 1 and no C' block 3 carries no PI at all;
	// the dispatcher should still route it to the last-seen station once.
	var noPI Group
	noPI.SetNoOffsets()
	noPI.setBlock(2, Block{Data: 0x0000, Offset: OffsetB, IsReceived: true})

	st2 := d.Dispatch(noPI)
	if st2 != st {
		t.Errorf("a single PI-less group should still route to the last station")
	}

	st3 := d.Dispatch(noPI)
	if st3 != nil {
		t.Errorf("a second consecutive PI-less group should be dropped")
	}
}

func TestDispatcherDropsEmptyGroup(t *testing.T) {
	d := NewDispatcher(nil)
	if st := d.Dispatch(Group{}); st != nil {
		t.Errorf("an entirely empty group should be dropped")
	}
}
