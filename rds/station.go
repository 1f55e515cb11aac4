package rds

import (
	"fmt"
	"strings"
)

// maxDebugNotes bounds the Debug slice so a station stuck producing the
// same "TODO"/"invalid" note doesn't grow without limit over a long run.
const maxDebugNotes = 20

// DICodes tracks the four Decoder Identification flags carried one at a
// time, keyed by the 2-bit segment address in type 0 groups' block 2
// (IEC 62106:2015 Annex G).
type DICodes struct {
	Stereo         bool
	ArtificialHead bool
	Compressed     bool
	DynamicPTY     bool
}

func (d *DICodes) set(segmentAddress int, value bool) {
	switch segmentAddress {
	case 0:
		d.DynamicPTY = value
	case 1:
		d.Compressed = value
	case 2:
		d.ArtificialHead = value
	case 3:
		d.Stereo = value
	}
}

// PagerInfo is the radio-paging configuration optionally carried in
// type 1A groups (IEC 62106:2015 Annex M).
type PagerInfo struct {
	PagingCode int
	Interval   int
	PAC        int
	OPC        int
	ECC        int
	CCF        int
}

// decodeBlock4 fills in PAC/OPC or ECC/CCF from a 1A block 4 that carries
// no PIN (spec §9, group 1/1A).
func (p *PagerInfo) decodeBlock4(block4 uint16) {
	subType := getBits(block4, 10, 1)
	if subType == 0 {
		p.PAC = int(getBits(block4, 4, 6))
		p.OPC = int(getBits(block4, 0, 4))
		return
	}
	switch getBits(block4, 8, 2) {
	case 0:
		p.ECC = int(getBits(block4, 0, 6))
	case 3:
		p.CCF = int(getBits(block4, 0, 4))
	}
}

// RadiotextPlusTag is one decoded RT+ tag: a content type paired with the
// substring of the current RadioText it annotates.
type RadiotextPlusTag struct {
	ContentType int
	Text        string
}

// EONEntry accumulates what an Enhanced Other Networks group (type 14)
// has told us about a network other than the one we're tuned to, keyed
// by that network's own PI.
type EONEntry struct {
	PS                 *RDSString
	AltFreqs           AltFreqList
	TP, HasTP          bool
	TA, HasTA          bool
	PTY                int
	HasPTY             bool
	FreqKHz            int
	HasFreq            bool
	LinkageSet         int
	HasLinkage         bool
	PIN                uint16
	HasPIN             bool
	BroadcasterData    uint16
	HasBroadcasterData bool
}

func newEONEntry() *EONEntry {
	return &EONEntry{PS: NewRDSString(8)}
}

// TMCCollaborator is the seam spec §9 leaves for Traffic Message Channel
// decoding (group 8A and its ODA variants): a caller that wants TMC
// support plugs one in, and Station forwards the raw system/user group
// fields to it without this package knowing the TMC message format.
type TMCCollaborator interface {
	ReceiveSystemGroup(message uint16)
	ReceiveUserGroup(variant uint16, block3, block4 uint16)
}

// Station accumulates everything the dispatcher has learned about one
// broadcast carrier identified by a PI code. Its fields are written only
// by Station.receive and its helpers; callers should treat a *Station
// read from Dispatcher.Station as read-only.
type Station struct {
	PI uint16

	HasGroupType bool
	GroupType    GroupType

	TrafficProgram    bool
	HasTrafficProgram bool
	ProgramType       int
	HasProgramType    bool

	TrafficAnnouncement    bool
	HasTrafficAnnouncement bool
	IsMusic                bool
	HasIsMusic             bool
	DI                     DICodes

	ProgramService *RDSString

	altFreqList              AltFreqList
	AltFrequenciesA          []int
	AltFrequenciesBTuned     int
	AltFrequenciesBSame      []int
	AltFrequenciesBRegional  []int
	HasAltFrequencies        bool

	ProgramItemNumber uint16
	HasPIN            bool
	Pager             PagerInfo
	HasLinkage        bool
	ECC               byte
	HasECC            bool
	CountryCode       byte
	TMCID             uint16
	HasTMCID          bool
	LanguageCode      int
	HasLanguage       bool
	EWS               uint16
	HasEWS            bool

	radiotext               *RDSString
	hasRadiotextABFlag      bool
	radiotextABFlag         bool
	prevPotentialRadiotext  string
	RadioText               string
	HasRadioText            bool

	odaAppForGroup    map[GroupType]uint16
	HasRadiotextPlus  bool
	rtPlusToggle      bool
	rtPlusItemRunning bool
	RadiotextPlusTags []RadiotextPlusTag

	ptyName          *RDSString
	hasPtyNameABFlag bool
	ptyNameABFlag    bool
	PTYName          string
	HasPTYName       bool

	ClockTime    string
	HasClockTime bool

	fullTDC           *RDSString
	TransparentData   [4]byte
	HasTransparentData bool

	InHouseData []uint16

	EON map[uint16]*EONEntry

	TMC TMCCollaborator

	Debug []string
}

// NewStation returns a freshly initialized Station for the given PI.
func NewStation(pi uint16) *Station {
	return &Station{
		PI:             pi,
		ProgramService: NewRDSString(8),
		radiotext:      NewRDSString(64),
		ptyName:        NewRDSString(8),
		fullTDC:        NewRDSString(4),
		odaAppForGroup: make(map[GroupType]uint16),
		EON:            make(map[uint16]*EONEntry),
	}
}

func (s *Station) debug(format string, args ...interface{}) {
	if len(s.Debug) >= maxDebugNotes {
		s.Debug = s.Debug[1:]
	}
	s.Debug = append(s.Debug, fmt.Sprintf(format, args...))
}

// receive is the dispatcher's single entry point into a Station: it
// records the common fields every group type can carry, then — if the
// group's type was determined — routes to exactly one typed decoder
// (spec §4.4, grounded on the original decoder's Station::updateAndPrint
// dispatch table).
func (s *Station) receive(g Group, d *Dispatcher) {
	s.decodeBasics(g)

	if !g.HasType() {
		return
	}
	s.HasGroupType = true
	s.GroupType = g.Type()
	t := g.Type()

	switch {
	case t.Number == 0:
		s.decodeType0(g)
	case t.Number == 1:
		s.decodeType1(g)
	case t.Number == 2:
		s.decodeType2(g)
	case t.Number == 3 && t.Version == VersionA:
		s.decodeType3A(g)
	case t.Number == 4 && t.Version == VersionA:
		s.decodeType4A(g)
	case t.Number == 10 && t.Version == VersionA:
		s.decodeType10A(g)
	case t.Number == 14:
		s.decodeType14(g)
	case t.Number == 15 && t.Version == VersionB:
		s.decodeType15B(g)
	case s.odaAppForGroup[t] != 0:
		s.decodeODAGroup(g)
	case t.Number == 5:
		s.decodeType5(g)
	case t.Number == 6:
		s.decodeType6(g)
	case t.Number == 7 && t.Version == VersionA:
		s.debug("TODO: 7A radio paging")
	case t.Number == 8 && t.Version == VersionA:
		s.decodeType8A(g)
	case t.Number == 9 && t.Version == VersionA:
		s.debug("TODO: 9A emergency warning systems")
	default:
		// ODA-only slots (3B, 4B, 7B, 8B, 9B, 10B, 11A/B, 12A/B, 13B) with
		// nothing registered against them yet.
		s.decodeODAGroup(g)
	}
}

func (s *Station) decodeBasics(g Group) {
	switch {
	case g.Has(2):
		pty := getBits(g.Block2(), 5, 5)
		s.ProgramType = int(pty)
		s.HasProgramType = true
		s.TrafficProgram = getBits(g.Block2(), 10, 1) != 0
		s.HasTrafficProgram = true
	case g.Type().Number == 15 && g.Type().Version == VersionB && g.Has(4):
		pty := getBits(g.Block4(), 5, 5)
		s.ProgramType = int(pty)
		s.HasProgramType = true
		s.TrafficProgram = getBits(g.Block4(), 10, 1) != 0
		s.HasTrafficProgram = true
	}
}

// decodeType0: basic tuning and switching information.
func (s *Station) decodeType0(g Group) {
	segmentAddress := int(getBits(g.Block2(), 0, 2))
	s.DI.set(segmentAddress, getBits(g.Block2(), 2, 1) != 0)
	s.TrafficAnnouncement = getBits(g.Block2(), 4, 1) != 0
	s.HasTrafficAnnouncement = true
	s.IsMusic = getBits(g.Block2(), 3, 1) != 0
	s.HasIsMusic = true

	if !g.Has(3) {
		if s.altFreqList.IsMethodB() {
			s.altFreqList.Clear()
		}
		return
	}

	if g.Type().Version == VersionA {
		s.altFreqList.Insert(int(getBits(g.Block3(), 8, 8)))
		s.altFreqList.Insert(int(getBits(g.Block3(), 0, 8)))
		s.collectAltFrequencies()
	}

	if !g.Has(4) {
		return
	}

	s.ProgramService.SetPair(segmentAddress*2,
		RDSChar{Code: byte(getBits(g.Block4(), 8, 8))},
		RDSChar{Code: byte(getBits(g.Block4(), 0, 8))})
}

// collectAltFrequencies finishes a completed AF list and classifies it
// as Method A or B (spec §4.5/§9; grounded on Station::decodeType0's
// duplicate-detection heuristic for noisy Method B receptions).
func (s *Station) collectAltFrequencies() {
	if !s.altFreqList.IsComplete() {
		return
	}
	raw := s.altFreqList.GetRawList()

	if s.altFreqList.IsMethodB() {
		tuned := raw[0]
		seenAlt := make(map[int]bool)
		seenRegional := make(map[int]bool)
		var alt, regional []int

		for i := 1; i+1 < len(raw); i += 2 {
			f1, f2 := raw[i], raw[i+1]
			other := f2
			if f1 != tuned {
				other = f1
			}
			if f1 < f2 {
				alt = append(alt, other)
				seenAlt[other] = true
			} else {
				regional = append(regional, other)
				seenRegional[other] = true
			}
		}

		expected := len(raw) / 2
		unique := len(seenAlt) + len(seenRegional)
		if unique == expected {
			s.AltFrequenciesBTuned = tuned
			s.AltFrequenciesBSame = alt
			s.AltFrequenciesBRegional = regional
			s.HasAltFrequencies = true
		}
	} else {
		s.AltFrequenciesA = append([]int(nil), raw...)
		s.HasAltFrequencies = true
	}

	s.altFreqList.Clear()
}

// decodeType1: programme item number and slow labelling codes.
func (s *Station) decodeType1(g Group) {
	if !(g.Has(3) && g.Has(4)) {
		return
	}

	pin := g.Block4()
	if pin != 0 {
		day := getBits(pin, 11, 5)
		hour := getBits(pin, 6, 5)
		minute := getBits(pin, 0, 6)
		if day >= 1 && hour <= 24 && minute <= 59 {
			s.ProgramItemNumber = pin
			s.HasPIN = true
		} else {
			s.debug("invalid PIN")
		}
	}

	if g.Type().Version != VersionA {
		return
	}

	s.Pager.PagingCode = int(getBits(g.Block2(), 2, 3))
	if s.Pager.PagingCode != 0 {
		s.Pager.Interval = int(getBits(g.Block2(), 0, 2))
	}
	s.HasLinkage = getBits(g.Block3(), 15, 1) != 0

	switch getBits(g.Block3(), 12, 3) {
	case 0:
		if s.Pager.PagingCode != 0 {
			s.Pager.OPC = int(getBits(g.Block3(), 8, 4))
			if g.Has(4) && getBits(g.Block4(), 11, 5) == 0 {
				s.Pager.decodeBlock4(g.Block4())
			}
		}
		s.ECC = byte(getBits(g.Block3(), 0, 8))
		s.CountryCode = byte(getBits(g.PI(), 12, 4))
		s.HasECC = s.ECC != 0
	case 1:
		s.TMCID = getBits(g.Block3(), 0, 12)
		s.HasTMCID = true
	case 2:
		if s.Pager.PagingCode != 0 {
			s.Pager.PAC = int(getBits(g.Block3(), 0, 6))
			s.Pager.OPC = int(getBits(g.Block3(), 8, 4))
			if g.Has(4) && getBits(g.Block4(), 11, 5) == 0 {
				s.Pager.decodeBlock4(g.Block4())
			}
		}
	case 3:
		// Language name tables (IEC 62106:2015 Annex J) are a locale lookup,
		// left to a caller that wants one; only the raw code is kept here.
		s.LanguageCode = int(getBits(g.Block3(), 0, 8))
		s.HasLanguage = true
	case 7:
		s.EWS = getBits(g.Block3(), 0, 12)
		s.HasEWS = true
	default:
		s.debug("TODO: SLC variant %d", getBits(g.Block3(), 12, 3))
	}
}

// decodeType2: RadioText.
func (s *Station) decodeType2(g Group) {
	if !(g.Has(3) && g.Has(4)) {
		return
	}

	step := 4
	if g.Type().Version != VersionA {
		step = 2
	}
	position := int(getBits(g.Block2(), 0, 4)) * step

	abChanged := s.radiotextABChanged(getBits(g.Block2(), 4, 1) != 0)

	var potential string
	hasPotential := position == 0 &&
		s.radiotext.GetReceivedLength() > 1 &&
		!s.radiotext.IsComplete() &&
		!s.radiotext.HasPreviouslyReceivedTerminators()

	if hasPotential {
		potential = strings.TrimRight(s.radiotext.String(), " ")
		if potential != s.prevPotentialRadiotext {
			hasPotential = false
		}
		s.prevPotentialRadiotext = potential
	}

	if abChanged {
		s.radiotext.Clear()
	}

	if g.Type().Version == VersionA {
		s.radiotext.Resize(64)
		s.radiotext.SetPair(position,
			RDSChar{Code: byte(getBits(g.Block3(), 8, 8))},
			RDSChar{Code: byte(getBits(g.Block3(), 0, 8))})
	} else {
		s.radiotext.Resize(32)
	}

	if g.Has(4) {
		offset := position
		if g.Type().Version == VersionA {
			offset += 2
		}
		s.radiotext.SetPair(offset,
			RDSChar{Code: byte(getBits(g.Block4(), 8, 8))},
			RDSChar{Code: byte(getBits(g.Block4(), 0, 8))})
	}

	switch {
	case s.radiotext.IsComplete():
		s.RadioText = strings.TrimRight(s.radiotext.GetLastCompleteString(), " ")
		s.HasRadioText = true
	case hasPotential:
		s.RadioText = strings.TrimRight(potential, " ")
		s.HasRadioText = true
	}
}

func (s *Station) radiotextABChanged(flag bool) bool {
	if !s.hasRadiotextABFlag {
		s.hasRadiotextABFlag = true
		s.radiotextABFlag = flag
		return false
	}
	changed := flag != s.radiotextABFlag
	s.radiotextABFlag = flag
	return changed
}

// decodeType3A: Open Data Application registration.
func (s *Station) decodeType3A(g Group) {
	if !(g.Has(3) && g.Has(4)) || g.Type().Version != VersionA {
		return
	}

	odaGroup := groupTypeFromBits(getBits(g.Block2(), 0, 5))
	odaMessage := g.Block3()
	appID := g.Block4()

	s.odaAppForGroup[odaGroup] = appID

	switch appID {
	case 0xCD46, 0xCD47:
		if s.TMC != nil {
			s.TMC.ReceiveSystemGroup(odaMessage)
		} else {
			s.debug("TMC app registered but no TMC collaborator attached")
		}
	case 0x4BD7:
		s.HasRadiotextPlus = true
		s.rtPlusToggle = getBits(odaMessage, 12, 1) != 0
		s.rtPlusItemRunning = getBits(odaMessage, 8, 1) != 0
	case 0x0093:
		// DAB cross-reference message bits go unused here.
	default:
		s.debug("TODO: unimplemented ODA app 0x%04X for group %s", appID, odaGroup)
	}
}

// decodeType4A: clock time and date, IEC 62106:2015 section 6.1.5.6. The
// modified Julian date conversion is copied arithmetic, not a guess: it
// comes straight from the standard's worked example.
func (s *Station) decodeType4A(g Group) {
	if !(g.Has(3) && g.Has(4)) {
		return
	}

	mjd := getBits32(g.Block2(), g.Block3(), 1, 17)

	yearUTC := int((float64(mjd) - 15078.2) / 365.25)
	monthUTC := int((float64(mjd) - 14956.1 - float64(int(float64(yearUTC)*365.25))) / 30.6001)
	dayUTC := int(float64(mjd) - 14956 - float64(int(float64(yearUTC)*365.25)) - float64(int(float64(monthUTC)*30.6001)))
	if monthUTC == 14 || monthUTC == 15 {
		yearUTC++
		monthUTC -= 12
	}
	yearUTC += 1900
	monthUTC--

	hourUTC := int(getBits32(g.Block3(), g.Block4(), 12, 5))
	minuteUTC := int(getBits(g.Block4(), 6, 6))

	sign := 1.0
	if getBits(g.Block4(), 5, 1) != 0 {
		sign = -1.0
	}
	localOffset := sign * float64(getBits(g.Block4(), 0, 5)) / 2.0

	if hourUTC > 23 || minuteUTC > 59 || absFloat(trunc(localOffset)) > 14.0 {
		s.debug("invalid date/time")
		return
	}

	offsetHour := int(absFloat(trunc(localOffset)))
	offsetMin := int((localOffset - trunc(localOffset)) * 60.0)
	sign2 := "+"
	if localOffset < 0 {
		sign2 = "-"
	}
	if offsetHour == 0 && offsetMin == 0 {
		s.ClockTime = fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00Z", yearUTC, monthUTC, dayUTC, hourUTC, minuteUTC)
	} else {
		s.ClockTime = fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00%s%02d:%02d",
			yearUTC, monthUTC, dayUTC, hourUTC, minuteUTC, sign2, offsetHour, absInt(offsetMin))
	}
	s.HasClockTime = true
}

func trunc(f float64) float64 {
	if f < 0 {
		return -float64(int(-f))
	}
	return float64(int(f))
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// decodeType5: transparent data channels.
func (s *Station) decodeType5(g Group) {
	address := int(getBits(g.Block2(), 0, 5))

	var data [4]byte
	if g.Type().Version == VersionA {
		if !(g.Has(3) && g.Has(4)) {
			return
		}
		data = [4]byte{
			byte(getBits(g.Block3(), 8, 8)), byte(getBits(g.Block3(), 0, 8)),
			byte(getBits(g.Block4(), 8, 8)), byte(getBits(g.Block4(), 0, 8)),
		}
		s.fullTDC.SetPair(address*4, RDSChar{Code: data[0]}, RDSChar{Code: data[1]})
		s.fullTDC.SetPair(address*4+2, RDSChar{Code: data[2]}, RDSChar{Code: data[3]})
	} else {
		if !g.Has(4) {
			return
		}
		data[0] = byte(getBits(g.Block4(), 8, 8))
		data[1] = byte(getBits(g.Block4(), 0, 8))
	}

	s.TransparentData = data
	s.HasTransparentData = true
}

// decodeType6: in-house applications, whose payload format is left to
// the broadcaster (spec §9, group 6: opaque passthrough).
func (s *Station) decodeType6(g Group) {
	s.InHouseData = s.InHouseData[:0]
	s.InHouseData = append(s.InHouseData, getBits(g.Block2(), 0, 5))

	if g.Type().Version == VersionA {
		if g.Has(3) {
			s.InHouseData = append(s.InHouseData, g.Block3())
			if g.Has(4) {
				s.InHouseData = append(s.InHouseData, g.Block4())
			}
		}
	} else if g.Has(4) {
		s.InHouseData = append(s.InHouseData, g.Block4())
	}
}

// decodeType8A forwards TMC user groups to an attached collaborator
// (spec §9, group 8A: out of core scope beyond this handoff).
func (s *Station) decodeType8A(g Group) {
	if !(g.Has(2) && g.Has(3) && g.Has(4)) {
		return
	}
	if s.TMC != nil {
		s.TMC.ReceiveUserGroup(getBits(g.Block2(), 0, 5), g.Block3(), g.Block4())
	}
}

// decodeType10A: Programme Type Name.
func (s *Station) decodeType10A(g Group) {
	if !(g.Has(3) && g.Has(4)) {
		return
	}

	segmentAddress := int(getBits(g.Block2(), 0, 1))
	if s.ptyNameABChanged(getBits(g.Block2(), 4, 1) != 0) {
		s.ptyName.Clear()
	}

	s.ptyName.SetPair(segmentAddress*4,
		RDSChar{Code: byte(getBits(g.Block3(), 8, 8))},
		RDSChar{Code: byte(getBits(g.Block3(), 0, 8))})
	s.ptyName.SetPair(segmentAddress*4+2,
		RDSChar{Code: byte(getBits(g.Block4(), 8, 8))},
		RDSChar{Code: byte(getBits(g.Block4(), 0, 8))})

	if s.ptyName.IsComplete() {
		s.PTYName = s.ptyName.GetLastCompleteString()
		s.HasPTYName = true
	}
}

func (s *Station) ptyNameABChanged(flag bool) bool {
	if !s.hasPtyNameABFlag {
		s.hasPtyNameABFlag = true
		s.ptyNameABFlag = flag
		return false
	}
	changed := flag != s.ptyNameABFlag
	s.ptyNameABFlag = flag
	return changed
}

// decodeType14: Enhanced Other Networks information.
func (s *Station) decodeType14(g Group) {
	if !g.Has(4) {
		return
	}
	onPI := g.Block4()
	entry, ok := s.EON[onPI]
	if !ok {
		entry = newEONEntry()
		s.EON[onPI] = entry
	}

	entry.TP = getBits(g.Block2(), 4, 1) != 0
	entry.HasTP = true

	if g.Type().Version == VersionB {
		entry.TA = getBits(g.Block2(), 3, 1) != 0
		entry.HasTA = true
		return
	}

	if !g.Has(3) {
		return
	}

	switch variant := getBits(g.Block2(), 0, 4); variant {
	case 0, 1, 2, 3:
		entry.PS.SetPair(int(variant)*2,
			RDSChar{Code: byte(getBits(g.Block3(), 8, 8))},
			RDSChar{Code: byte(getBits(g.Block3(), 0, 8))})
	case 4:
		entry.AltFreqs.Insert(int(getBits(g.Block3(), 8, 8)))
		entry.AltFreqs.Insert(int(getBits(g.Block3(), 0, 8)))
		if entry.AltFreqs.IsComplete() {
			entry.AltFreqs.Clear()
		}
	case 5, 6, 7, 8, 9:
		code := int(getBits(g.Block3(), 0, 8))
		if code >= afCodeFMLow && code <= afCodeFMHigh {
			entry.FreqKHz = fmFrequencyKHz(code)
			entry.HasFreq = true
		}
	case 12:
		entry.HasLinkage = getBits(g.Block3(), 15, 1) != 0
		entry.LinkageSet = int(getBits(g.Block3(), 0, 12))
	case 13:
		entry.PTY = int(getBits(g.Block3(), 11, 5))
		entry.HasPTY = true
		entry.TA = getBits(g.Block3(), 0, 1) != 0
		entry.HasTA = true
	case 14:
		pin := g.Block3()
		if pin != 0 {
			entry.PIN = pin
			entry.HasPIN = true
		}
	case 15:
		entry.BroadcasterData = g.Block3()
		entry.HasBroadcasterData = true
	default:
		s.debug("TODO: EON variant %d", variant)
	}
}

// decodeType15B: fast basic tuning and switching information; its TA/
// is_music flags live in block 2 if present, else block 4 (the type-
// (15,B) "no block 2" corner case of spec §4.3).
func (s *Station) decodeType15B(g Group) {
	word := g.Block2()
	if !g.Has(2) {
		word = g.Block4()
	}
	s.TrafficAnnouncement = getBits(word, 4, 1) != 0
	s.HasTrafficAnnouncement = true
	s.IsMusic = getBits(word, 3, 1) != 0
	s.HasIsMusic = true
}

// decodeODAGroup routes a group occupying a registered ODA slot, or
// records it as unidentified if no 3A group has claimed that slot yet.
func (s *Station) decodeODAGroup(g Group) {
	appID, ok := s.odaAppForGroup[g.Type()]
	if !ok {
		s.debug("unclaimed ODA group %s", g.Type())
		return
	}

	switch appID {
	case 0xCD46, 0xCD47:
		if g.Has(2) && g.Has(3) && g.Has(4) && s.TMC != nil {
			s.TMC.ReceiveUserGroup(getBits(g.Block2(), 0, 5), g.Block3(), g.Block4())
		}
	case 0x4BD7:
		s.parseRadiotextPlus(g)
	default:
		s.debug("unhandled ODA app 0x%04X for group %s", appID, g.Type())
	}
}

// parseRadiotextPlus decodes RT+ tags and slices the matching substring
// out of whatever RadioText has already been assembled (spec §9,
// "supplemented" RadioText+ support; the RT+ spec itself, ETSI
// TS 102 980, is outside this decoder's scope beyond tag extraction).
func (s *Station) parseRadiotextPlus(g Group) {
	toggle := getBits(g.Block2(), 4, 1) != 0
	running := getBits(g.Block2(), 3, 1) != 0
	if toggle != s.rtPlusToggle || running != s.rtPlusItemRunning {
		s.radiotext.Clear()
		s.rtPlusToggle = toggle
		s.rtPlusItemRunning = running
	}

	type tag struct {
		contentType, start, length int
	}
	var tags []tag

	if g.Has(3) {
		tags = append(tags, tag{
			contentType: int(getBits32(g.Block2(), g.Block3(), 13, 6)),
			start:       int(getBits(g.Block3(), 7, 6)),
			length:      int(getBits(g.Block3(), 1, 6)) + 1,
		})
	}
	if g.Has(3) && g.Has(4) {
		tags = append(tags, tag{
			contentType: int(getBits32(g.Block3(), g.Block4(), 11, 6)),
			start:       int(getBits(g.Block4(), 5, 6)),
			length:      int(getBits(g.Block4(), 0, 5)) + 1,
		})
	}

	s.RadiotextPlusTags = s.RadiotextPlusTags[:0]
	for _, t := range tags {
		if t.contentType == 0 || !s.radiotext.HasChars(t.start, t.length) {
			continue
		}
		text := strings.TrimRight(s.radiotext.GetLastCompleteSubstring(t.start, t.length), " ")
		if text == "" {
			continue
		}
		s.RadiotextPlusTags = append(s.RadiotextPlusTags, RadiotextPlusTag{
			ContentType: t.contentType,
			Text:        text,
		})
	}
}
