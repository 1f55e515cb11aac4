package rds

// ProgramTypeNamesNA and ProgramTypeNamesEU name the 32 Programme Type
// (PTY) codes carried in block 2 of most group types, for the North
// American (RBDS) and European (RDS) tables respectively. Ported from
// the teacher's PT_NA/PT_EU tables.
var ProgramTypeNamesNA = [32]string{
	"No program type", "News", "Information", "Sports", "Talk", "Rock",
	"Classic Rock", "Adult Hits", "Soft Rock", "Top 40", "Country", "Oldies",
	"Soft", "Nostalgia", "Jazz", "Classical", "Rhythm and Blues",
	"Soft Rhythm and Blues", "Language", "Religious Music", "Religious Talk",
	"Personality", "Public", "College", "Unassigned 24", "Unassigned 25",
	"Unassigned 26", "Unassigned 27", "Unassigned 28", "Weather",
	"Emergency Test", "Emergency",
}

var ProgramTypeNamesEU = [32]string{
	"No program type", "News", "Current Affairs", "Information", "Sport",
	"Education", "Drama", "Culture", "Science", "Varied", "Pop Music",
	"Rock Music", "M.O.R. Music", "Light Classical", "Serious Classical",
	"Other Music", "Weather", "Finance", "Children's Programs",
	"Social Affairs", "Religion", "Phone-In", "Travel", "Leisure",
	"Jazz Music", "Country Music", "National Music", "Oldies Music",
	"Folk Music", "Documentary", "Alarm test", "Alarm",
}

// GroupTypeDescriptionsA and GroupTypeDescriptionsB name what each group
// number is normally used for, indexed by GroupType.Number.
var GroupTypeDescriptionsA = [16]string{
	"Basic Tuning and Switching Information only",
	"Program Item Number and Slow Labeling Codes only",
	"Radio Text only",
	"Applications Identification for ODA only",
	"Clock Time and Date only",
	"Transparent Data Channels (32 channels) or ODA",
	"In-House Applications of ODA",
	"Radio Paging of ODA",
	"Traffic Message Channel or ODA",
	"Emergency Warning System or ODA",
	"Program Type Name",
	"Open Data Applications",
	"Open Data Applications",
	"Enhanced Radio Paging or ODA",
	"Enhanced Other Networks Information Only",
	"Defined in RBDS only",
}

var GroupTypeDescriptionsB = [16]string{
	"Basic Tuning and Switching Information only",
	"Program Item Number",
	"Radio Text only",
	"Open Data Applications",
	"Open Data Applications",
	"Transparent Data Channels (32 channels) or ODA",
	"In-House Applications of ODA",
	"Radio Paging of ODA",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Enhanced Other Networks Information Only",
	"Fast Switching Information only",
}

// CallsignFromPI derives a 4-letter code from a PI: a US/Canadian "K"/"W"
// callsign for the North American numeric range, or an "A"-prefixed code
// built from the PI's nybbles for the European local (bits 8-11 clear) and
// test (low byte clear) ranges. Any other PI gives a blank (all-zero)
// result. This is a heuristic
// identification aid, not a lookup against an authoritative callsign
// database (explicitly out of scope, spec §1).
func CallsignFromPI(pi uint16) [4]byte {
	var cs [4]byte
	switch {
	case pi&0x0F00 == 0x0000:
		// European local (unique) broadcast.
		cs[0] = 'A'
		cs[1] = 'A' + byte((pi>>12)&0xf)
		cs[2] = 'A' + byte((pi>>4)&0xf)
		cs[3] = 'A' + byte(pi&0xf)
	case pi&0x00FF == 0x0000:
		// European test modes.
		cs[0] = 'A'
		cs[1] = 'F'
		cs[2] = 'A' + byte((pi>>12)&0xf)
		cs[3] = 'A' + byte((pi>>8)&0xf)
	case pi >= 4096 && pi <= 39247:
		// North American 4-digit "W"/"K" stations.
		var base, offset uint16
		if pi < 21672 {
			cs[0] = 'K'
			offset = pi - 4096
		} else {
			cs[0] = 'W'
			offset = pi - 21672
		}
		base = offset
		cs[1] = 'A' + byte(base/676)
		base %= 676
		cs[2] = 'A' + byte(base/26)
		base %= 26
		cs[3] = 'A' + byte(base)
	}
	return cs
}
