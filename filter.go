package can

// FilterKind constrains which identifier formats a filter accepts.
type FilterKind uint8

const (
	// AnyKind matches standard and extended identifiers alike.
	AnyKind FilterKind = iota
	// StandardOnly matches 11 bit identifiers only.
	StandardOnly
	// ExtendedOnly matches 29 bit identifiers only.
	ExtendedOnly
)

// Filter is a mask/pattern acceptance rule, the software equivalent of a
// hardware acceptance filter : an identifier is accepted when its bits
// match the pattern in every position the mask selects.
//
// Pattern bits outside the mask are legal and simply ignored during
// matching, which is how real acceptance filter hardware behaves. There
// is therefore no fallible construction ; any mask/pattern combination is
// a valid filter.
type Filter struct {
	mask    uint32
	pattern uint32
	kind    FilterKind
}

// NewFilter creates an acceptance filter.
func NewFilter(mask, pattern uint32, kind FilterKind) Filter {
	return Filter{mask: mask, pattern: pattern, kind: kind}
}

// IdentityFilter creates a filter matching exactly one identifier : the
// mask covers the full bit width of the identifier's kind and the kind
// constraint pins the format.
func IdentityFilter(id ID) Filter {
	if id.IsExtended() {
		return Filter{mask: CanEffMask, pattern: id.Value(), kind: ExtendedOnly}
	}
	return Filter{mask: CanSffMask, pattern: id.Value(), kind: StandardOnly}
}

// Mask returns the filter mask.
func (f Filter) Mask() uint32 { return f.mask }

// Pattern returns the filter pattern.
func (f Filter) Pattern() uint32 { return f.pattern }

// Kind returns the identifier format constraint.
func (f Filter) Kind() FilterKind { return f.kind }

// Matches reports whether the identifier passes the filter : the kind
// constraint must be satisfied and the identifier must agree with the
// pattern on every masked bit.
func (f Filter) Matches(id ID) bool {
	switch f.kind {
	case StandardOnly:
		if id.IsExtended() {
			return false
		}
	case ExtendedOnly:
		if !id.IsExtended() {
			return false
		}
	}
	return id.Value()&f.mask == f.pattern&f.mask
}

// MatchesFrame reports whether the frame's identifier passes the filter.
// Acceptance filtering operates purely on the identifier : the RTR flag
// and payload are not consulted. Callers needing RTR qualified filtering
// should test Frame.IsRemote separately.
func (f Filter) MatchesFrame(frame Frame) bool {
	return f.Matches(frame.ID())
}
