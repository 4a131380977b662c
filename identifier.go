package can

import "fmt"

// IDKind discriminates between the two CAN identifier formats.
type IDKind uint8

const (
	// Standard is the 11 bit identifier format (CAN 2.0A).
	Standard IDKind = iota
	// Extended is the 29 bit identifier format (CAN 2.0B).
	Extended
)

func (k IDKind) String() string {
	if k == Extended {
		return "extended"
	}
	return "standard"
}

const (
	// MaxStandardID is the highest valid standard identifier. It is also
	// the lowest priority standard identifier on the bus.
	MaxStandardID uint32 = 0x7FF
	// MaxExtendedID is the highest valid extended identifier. It is also
	// the lowest priority extended identifier on the bus.
	MaxExtendedID uint32 = 0x1FFFFFFF

	// An extended identifier carries the 11 bits it shares with the
	// standard format in its upper bits.
	extendedBaseShift = 18
)

// ID is a CAN arbitration identifier, either standard (11 bit) or extended
// (29 bit).
//
// The identifier serves both as the logical address of a message and as its
// bus arbitration priority : when several nodes transmit simultaneously the
// numerically lowest identifier wins and keeps transmitting.
//
// The zero value is the standard identifier 0x000 (highest possible
// priority). Identifiers are comparable with == ; two identifiers are equal
// when both kind and value match.
type ID struct {
	kind  IDKind
	value uint32
}

// NewStandardID creates a standard (11 bit) identifier.
// Returns ErrIDOutOfRange if value is greater than MaxStandardID.
func NewStandardID(value uint32) (ID, error) {
	if value > MaxStandardID {
		return ID{}, fmt.Errorf("standard identifier %#X: %w", value, ErrIDOutOfRange)
	}
	return ID{kind: Standard, value: value}, nil
}

// NewExtendedID creates an extended (29 bit) identifier.
// Returns ErrIDOutOfRange if value is greater than MaxExtendedID.
func NewExtendedID(value uint32) (ID, error) {
	if value > MaxExtendedID {
		return ID{}, fmt.Errorf("extended identifier %#X: %w", value, ErrIDOutOfRange)
	}
	return ID{kind: Extended, value: value}, nil
}

// Kind returns the identifier format.
func (id ID) Kind() IDKind { return id.kind }

// Value returns the raw numeric identifier.
func (id ID) Value() uint32 { return id.value }

// IsExtended reports whether this is a 29 bit identifier.
func (id ID) IsExtended() bool { return id.kind == Extended }

// Base returns the standard identifier formed from the 11 most significant
// bits of an extended identifier. For a standard identifier it returns the
// identifier itself.
func (id ID) Base() ID {
	if id.kind == Standard {
		return id
	}
	return ID{kind: Standard, value: id.value >> extendedBaseShift}
}

// Compare orders identifiers by bus arbitration priority and returns
// -1, 0 or +1. A result of -1 means id wins arbitration against other,
// i.e. it is transmitted first.
//
// Identifiers of the same kind compare by raw value. When kinds differ the
// standard value is compared against the 11 leading bits of the extended
// value; on a tie the standard identifier wins, because the extended frame
// asserts its IDE bit recessive while the standard frame is already
// transmitting a dominant bit.
func (id ID) Compare(other ID) int {
	if id.kind == other.kind {
		return compareValues(id.value, other.value)
	}
	if id.kind == Standard {
		return compareMixed(id, other)
	}
	return -compareMixed(other, id)
}

// compareMixed compares a standard identifier against an extended one.
// Never returns 0 : distinct kinds are never equal.
func compareMixed(std, ext ID) int {
	if c := compareValues(std.value, ext.value>>extendedBaseShift); c != 0 {
		return c
	}
	return -1
}

func compareValues(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (id ID) String() string {
	return fmt.Sprintf("%#X", id.value)
}
