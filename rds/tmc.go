package rds

// Traffic Message Channel event/location tables (ISO 14819-1) are a
// large, separately-maintained decoding layer; this package only carries
// raw TMC messages as far as the TMCCollaborator seam in station.go and
// does not interpret them (spec §9, group 8A).

// RawTMCMessage is one user-group TMC message as received, before any
// ISO 14819-1 decoding.
type RawTMCMessage struct {
	Variant        uint16
	Block3, Block4 uint16
}

// CollectingTMC is a minimal TMCCollaborator that just remembers every
// system and user group it was handed, for a caller that wants to log
// or replay TMC traffic without pulling in a full ISO 14819-1 decoder.
type CollectingTMC struct {
	SystemMessages []uint16
	UserMessages   []RawTMCMessage
}

func (c *CollectingTMC) ReceiveSystemGroup(message uint16) {
	c.SystemMessages = append(c.SystemMessages, message)
}

func (c *CollectingTMC) ReceiveUserGroup(variant uint16, block3, block4 uint16) {
	c.UserMessages = append(c.UserMessages, RawTMCMessage{Variant: variant, Block3: block3, Block4: block4})
}
