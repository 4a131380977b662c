package can

import "fmt"

// Legislated OBD identifiers from ISO 15765-4:2005(E), section 6.3.2
// (tables 3 and 5).
const (
	obdBroadcastStandard uint32 = 0x7DF
	obdBroadcastExtended uint32 = 0x18DB33F1

	obdReqStartStandard  uint32 = 0x7E0
	obdReqEndStandard    uint32 = 0x7E7
	obdRespStartStandard uint32 = 0x7E8
	obdRespEndStandard   uint32 = 0x7EF
	obdReqStartExtended  uint32 = 0x18DA00F1
	obdReqEndExtended    uint32 = 0x18DAFFF1
	obdRespStartExtended uint32 = 0x18DAF100
	obdRespEndExtended   uint32 = 0x18DAF1FF

	// Standard request and response addresses are paired at a fixed
	// offset (0x7E0 requests answer on 0x7E8, and so on).
	obdReqRespOffsetStandard uint32 = 8
)

// OBDBroadcast returns the functional request (broadcast) address for
// legislated OBD diagnostics : 0x7DF for standard addressing, 0x18DB33F1
// for extended. Any device providing legislated OBD services answers a
// message sent to this address, which makes it useful for discovering
// diagnostic capable devices on the bus.
func OBDBroadcast(kind IDKind) ID {
	if kind == Extended {
		return ID{kind: Extended, value: obdBroadcastExtended}
	}
	return ID{kind: Standard, value: obdBroadcastStandard}
}

// OBDRequestAddress is a physical request address for legislated OBD
// diagnostics : the identifier an external test device sends messages to
// in order to reach one specific device on the bus. Each request address
// pairs with exactly one response address, computable ahead of time.
type OBDRequestAddress struct {
	id ID
}

// NewOBDRequestAddress validates that the identifier falls within the
// legislated OBD physical request range for its addressing mode
// (0x7E0 to 0x7E7 standard, 0x18DA00F1 to 0x18DAFFF1 extended).
// Returns ErrNotOBDAddress otherwise.
func NewOBDRequestAddress(id ID) (OBDRequestAddress, error) {
	if !inOBDRange(id, obdReqStartStandard, obdReqEndStandard, obdReqStartExtended, obdReqEndExtended) {
		return OBDRequestAddress{}, fmt.Errorf("%s: %w", id, ErrNotOBDAddress)
	}
	return OBDRequestAddress{id: id}, nil
}

// ID returns the identifier this request address represents.
func (a OBDRequestAddress) ID() ID { return a.id }

// Response returns the reciprocal physical response address. Standard
// addresses are offset by 8 ; extended addresses swap their target and
// source bytes.
func (a OBDRequestAddress) Response() OBDResponseAddress {
	if a.id.kind == Standard {
		return OBDResponseAddress{id: ID{kind: Standard, value: a.id.value + obdReqRespOffsetStandard}}
	}
	return OBDResponseAddress{id: ID{kind: Extended, value: swapOBDTargetSource(a.id.value)}}
}

func (a OBDRequestAddress) String() string { return a.id.String() }

// OBDResponseAddress is a physical response address for legislated OBD
// diagnostics : the identifier a specific device answers on, typically
// received by an external test device.
type OBDResponseAddress struct {
	id ID
}

// NewOBDResponseAddress validates that the identifier falls within the
// legislated OBD physical response range for its addressing mode
// (0x7E8 to 0x7EF standard, 0x18DAF100 to 0x18DAF1FF extended).
// Returns ErrNotOBDAddress otherwise.
func NewOBDResponseAddress(id ID) (OBDResponseAddress, error) {
	if !inOBDRange(id, obdRespStartStandard, obdRespEndStandard, obdRespStartExtended, obdRespEndExtended) {
		return OBDResponseAddress{}, fmt.Errorf("%s: %w", id, ErrNotOBDAddress)
	}
	return OBDResponseAddress{id: id}, nil
}

// ID returns the identifier this response address represents.
func (a OBDResponseAddress) ID() ID { return a.id }

// Request returns the reciprocal physical request address.
func (a OBDResponseAddress) Request() OBDRequestAddress {
	if a.id.kind == Standard {
		return OBDRequestAddress{id: ID{kind: Standard, value: a.id.value - obdReqRespOffsetStandard}}
	}
	return OBDRequestAddress{id: ID{kind: Extended, value: swapOBDTargetSource(a.id.value)}}
}

func (a OBDResponseAddress) String() string { return a.id.String() }

// OBDResponseFilter returns an acceptance filter matching exactly the
// legislated OBD physical response range for the given addressing mode.
// Useful after a broadcast request to discard everything except
// diagnostic responses.
func OBDResponseFilter(kind IDKind) Filter {
	if kind == Extended {
		// 0x18DAF100 to 0x18DAF1FF
		return Filter{mask: 0x1FFFFF00, pattern: obdRespStartExtended, kind: ExtendedOnly}
	}
	// 0x7E8 to 0x7EF
	return Filter{mask: 0x7F8, pattern: obdRespStartStandard, kind: StandardOnly}
}

func inOBDRange(id ID, stdStart, stdEnd, extStart, extEnd uint32) bool {
	if id.kind == Standard {
		return id.value >= stdStart && id.value <= stdEnd
	}
	return id.value >= extStart && id.value <= extEnd
}

// swapOBDTargetSource exchanges the target and source address bytes of an
// extended OBD identifier (0x18DAttss <-> 0x18DAsstt), which is how
// request and response identifiers pair in extended addressing.
func swapOBDTargetSource(raw uint32) uint32 {
	return (raw & 0xFFFF0000) | (raw&0x0000FF00)>>8 | (raw&0x000000FF)<<8
}
