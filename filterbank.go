package can

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// FilterBank is an ordered list of acceptance filters combined with OR
// semantics : an identifier is accepted when any filter matches. An empty
// bank accepts nothing, mirroring a hardware controller with no filter
// slots programmed.
type FilterBank []Filter

// Accepts reports whether any filter in the bank matches the identifier.
func (b FilterBank) Accepts(id ID) bool {
	for _, f := range b {
		if f.Matches(id) {
			return true
		}
	}
	return false
}

// AcceptsFrame reports whether any filter in the bank matches the frame's
// identifier.
func (b FilterBank) AcceptsFrame(frame Frame) bool {
	return b.Accepts(frame.ID())
}

// LoadFilterBank reads a filter bank from an INI file. Each section
// describes one filter, either as a mask/pattern pair :
//
//	[powertrain]
//	mask = 0x7F0
//	pattern = 0x7E0
//	kind = standard
//
// or as an identity filter for a single identifier :
//
//	[heartbeat]
//	id = 0x701
//	extended = false
//
// Numbers parse in any base strconv understands (0x prefix for hex).
// The kind key is optional and defaults to matching either format.
// Malformed sections are skipped with a warning so that one bad entry
// does not take down the whole bank ; an unreadable file is an error.
func LoadFilterBank(path string) (FilterBank, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	bank := FilterBank{}
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		filter, err := parseFilterSection(section)
		if err != nil {
			log.Warnf("[FILTERBANK] skipping section %v : %v", section.Name(), err)
			continue
		}
		bank = append(bank, filter)
	}
	return bank, nil
}

func parseFilterSection(section *ini.Section) (Filter, error) {
	if key, err := section.GetKey("id"); err == nil {
		value, err := strconv.ParseUint(key.Value(), 0, 32)
		if err != nil {
			return Filter{}, fmt.Errorf("bad id value : %v", err)
		}
		extended := section.Key("extended").MustBool(false)
		var id ID
		if extended {
			id, err = NewExtendedID(uint32(value))
		} else {
			id, err = NewStandardID(uint32(value))
		}
		if err != nil {
			return Filter{}, err
		}
		return IdentityFilter(id), nil
	}

	maskKey, err := section.GetKey("mask")
	if err != nil {
		return Filter{}, fmt.Errorf("missing mask key")
	}
	mask, err := strconv.ParseUint(maskKey.Value(), 0, 32)
	if err != nil {
		return Filter{}, fmt.Errorf("bad mask value : %v", err)
	}
	patternKey, err := section.GetKey("pattern")
	if err != nil {
		return Filter{}, fmt.Errorf("missing pattern key")
	}
	pattern, err := strconv.ParseUint(patternKey.Value(), 0, 32)
	if err != nil {
		return Filter{}, fmt.Errorf("bad pattern value : %v", err)
	}

	kind := AnyKind
	switch section.Key("kind").MustString("any") {
	case "standard":
		kind = StandardOnly
	case "extended":
		kind = ExtendedOnly
	case "any", "either":
	default:
		return Filter{}, fmt.Errorf("unknown kind %q", section.Key("kind").Value())
	}
	return NewFilter(uint32(mask), uint32(pattern), kind), nil
}
