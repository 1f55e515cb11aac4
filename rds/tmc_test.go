package rds

import "testing"

func TestCollectingTMCAccumulatesMessages(t *testing.T) {
	var c CollectingTMC

	c.ReceiveSystemGroup(0x1234)
	c.ReceiveUserGroup(5, 0xBEEF, 0xCAFE)
	c.ReceiveUserGroup(6, 0x0001, 0x0002)

	if len(c.SystemMessages) != 1 || c.SystemMessages[0] != 0x1234 {
		t.Errorf("SystemMessages = %v, want [0x1234]", c.SystemMessages)
	}
	if len(c.UserMessages) != 2 {
		t.Fatalf("UserMessages has %d entries, want 2", len(c.UserMessages))
	}
	if c.UserMessages[0] != (RawTMCMessage{Variant: 5, Block3: 0xBEEF, Block4: 0xCAFE}) {
		t.Errorf("UserMessages[0] = %+v, want variant 5 / 0xBEEF / 0xCAFE", c.UserMessages[0])
	}
}

func TestStationForwardsTMCToCollaborator(t *testing.T) {
	var c CollectingTMC
	st := NewStation(0x1001)
	st.TMC = &c

	// Group 3A registering TMC under its own 8A system identifier.
	block2 := uint16(6)<<11 | uint16(8)<<1 // type 3A, claiming group 8A
	g3A := NewPreFramedGroup(0x1001, block2, 0x1122, 0xCD46)
	st.receive(g3A, nil)

	if len(c.SystemMessages) != 1 || c.SystemMessages[0] != 0x1122 {
		t.Fatalf("expected the 3A group's message forwarded as a TMC system group, got %v", c.SystemMessages)
	}

	// Now a real 8A group should be routed as a TMC user group. Block 2's
	// top 5 bits encode type 8A as number<<1|version = 16.
	block2User := uint16(16)<<11 | uint16(5) // type 8A, variant 5
	g8A := NewPreFramedGroup(0x1001, block2User, 0xBEEF, 0xCAFE)
	st.receive(g8A, nil)

	if len(c.UserMessages) != 1 {
		t.Fatalf("expected one TMC user message, got %d", len(c.UserMessages))
	}
	if c.UserMessages[0].Variant != 5 || c.UserMessages[0].Block3 != 0xBEEF || c.UserMessages[0].Block4 != 0xCAFE {
		t.Errorf("UserMessages[0] = %+v, want variant 5 / 0xBEEF / 0xCAFE", c.UserMessages[0])
	}
}
