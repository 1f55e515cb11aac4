package rds

// PIPolicy decides whether a station identified by PI should be
// processed at all. Returning false drops every group bearing that PI
// before a Station is ever created for it (spec §4.4 step 2).
type PIPolicy func(pi uint16) bool

// AllowAllStations is the default PIPolicy: every PI is accepted.
func AllowAllStations(uint16) bool { return true }

// Dispatcher is the group dispatcher of spec §4.4: the only core
// component that reads group content. It does not attach BLER/rx_time:
// BlockStream does that when it assembles a group, and pre-framed groups
// carry neither. It checks the PI
// policy, and — if the group's type is known — routes it to exactly one
// typed handler, keeping one Station per PI it has seen (spec §9: "
// Dispatcher -> Station-by-PI (keyed lookup)").
type Dispatcher struct {
	policy   PIPolicy
	stations map[uint16]*Station

	lastPI uint16
	hadPI  bool
}

// NewDispatcher returns a Dispatcher using the given PI policy. A nil
// policy is equivalent to AllowAllStations.
func NewDispatcher(policy PIPolicy) *Dispatcher {
	if policy == nil {
		policy = AllowAllStations
	}
	return &Dispatcher{
		policy:   policy,
		stations: make(map[uint16]*Station),
	}
}

// Station returns the accumulator state for a PI, if one has been
// created for it yet.
func (d *Dispatcher) Station(pi uint16) (*Station, bool) {
	st, ok := d.stations[pi]
	return st, ok
}

// Dispatch routes one assembled Group. It returns the Station that
// processed it, or nil if the group was dropped (no identifiable PI with
// no recent fallback, or the PI policy rejected it) or was empty.
func (d *Dispatcher) Dispatch(g Group) *Station {
	if g.IsEmpty() {
		return nil
	}

	pi, ok := d.resolvePI(g)
	if !ok {
		return nil
	}
	if !d.policy(pi) {
		return nil
	}

	st, exists := d.stations[pi]
	if !exists {
		st = NewStation(pi)
		d.stations[pi] = st
	}

	st.receive(g, d)
	return st
}

// resolvePI implements the "allow one group with missed PI" tolerance
// from the original decoder's Station::updateAndPrint: a group missing
// its PI is still processed against whichever station we were last
// tracking, but two consecutive PI-less groups in a row are dropped.
func (d *Dispatcher) resolvePI(g Group) (uint16, bool) {
	if g.HasPI() {
		d.lastPI = g.PI()
		d.hadPI = true
		return d.lastPI, true
	}
	if d.hadPI {
		d.hadPI = false
		return d.lastPI, true
	}
	return 0, false
}
