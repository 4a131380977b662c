package can

import "fmt"

const (
	// MaxClassicLength is the payload limit for classical CAN frames.
	MaxClassicLength = 8
	// MaxFDLength is the payload limit for CAN FD frames.
	MaxFDLength = 64
)

// fdLengths is the CAN FD DLC to payload length table. DLC values 0 to 8
// map to themselves, 9 to 15 map to the fixed lengths defined by ISO
// 11898-1. Transport code serializing frames must use this exact mapping
// (through DLCToLength / LengthToDLC) to stay bit compatible with CAN FD
// controllers.
var fdLengths = [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 12, 16, 20, 24, 32, 48, 64}

// DLCToLength decodes a data length code into a payload byte count.
// For classical frames the DLC is the byte count and anything above 8 is
// rejected with ErrInvalidLength. For CAN FD frames codes 9 to 15 map
// through the fixed length table (12, 16, 20, 24, 32, 48, 64).
func DLCToLength(dlc uint8, fd bool) (uint8, error) {
	if fd {
		if dlc >= uint8(len(fdLengths)) {
			return 0, fmt.Errorf("FD DLC %d: %w", dlc, ErrInvalidLength)
		}
		return fdLengths[dlc], nil
	}
	if dlc > MaxClassicLength {
		return 0, fmt.Errorf("classic DLC %d: %w", dlc, ErrInvalidLength)
	}
	return dlc, nil
}

// LengthToDLC returns the smallest DLC whose decoded length is at least
// length. This is a padding helper for callers with arbitrary payload
// sizes : the frame constructors require an exact length match, so the
// payload must be padded to the returned boundary before building a frame.
func LengthToDLC(length uint8, fd bool) (uint8, error) {
	if !fd {
		if length > MaxClassicLength {
			return 0, fmt.Errorf("classic length %d: %w", length, ErrInvalidLength)
		}
		return length, nil
	}
	for dlc, decoded := range fdLengths {
		if decoded >= length {
			return uint8(dlc), nil
		}
	}
	return 0, fmt.Errorf("FD length %d: %w", length, ErrInvalidLength)
}

// Frame is a single CAN frame : an identifier, a data or remote kind, a
// data length code and, for data frames, a payload.
//
// Frames are immutable once constructed and always well formed : the
// payload length is validated against the applicable DLC table at
// construction time and cannot change afterwards.
type Frame struct {
	id     ID
	remote bool
	fd     bool
	dlc    uint8
	length uint8
	data   [MaxFDLength]byte
}

// NewDataFrame creates a classical CAN data frame.
// Returns ErrInvalidLength if the payload is longer than 8 bytes.
func NewDataFrame(id ID, data []byte) (Frame, error) {
	if len(data) > MaxClassicLength {
		return Frame{}, fmt.Errorf("classic payload of %d bytes: %w", len(data), ErrInvalidLength)
	}
	f := Frame{id: id, dlc: uint8(len(data)), length: uint8(len(data))}
	copy(f.data[:], data)
	return f, nil
}

// NewFDDataFrame creates a CAN FD data frame with the bit rate switch flag
// set. The payload length must be exactly one of the lengths the FD DLC
// table can encode (0 to 8, 12, 16, 20, 24, 32, 48 or 64) ; anything else,
// including lengths that would merely fit after padding, is rejected with
// ErrInvalidLength.
func NewFDDataFrame(id ID, data []byte) (Frame, error) {
	if len(data) > MaxFDLength {
		return Frame{}, fmt.Errorf("FD payload of %d bytes: %w", len(data), ErrInvalidLength)
	}
	dlc, err := LengthToDLC(uint8(len(data)), true)
	if err != nil {
		return Frame{}, err
	}
	if fdLengths[dlc] != uint8(len(data)) {
		return Frame{}, fmt.Errorf("FD payload of %d bytes not on a DLC boundary: %w", len(data), ErrInvalidLength)
	}
	f := Frame{id: id, fd: true, dlc: dlc, length: uint8(len(data))}
	copy(f.data[:], data)
	return f, nil
}

// NewRemoteFrame creates a remote transmission request frame. Remote
// frames carry no payload ; the DLC encodes the requested data length
// (0 to 8). Returns ErrInvalidLength if requested is greater than 8.
func NewRemoteFrame(id ID, requested uint8) (Frame, error) {
	if requested > MaxClassicLength {
		return Frame{}, fmt.Errorf("RTR requested length %d: %w", requested, ErrInvalidLength)
	}
	return Frame{id: id, remote: true, dlc: requested}, nil
}

// ID returns the frame identifier.
func (f Frame) ID() ID { return f.id }

// IsRemote reports whether this is a remote transmission request.
func (f Frame) IsRemote() bool { return f.remote }

// IsExtended reports whether the frame identifier is 29 bit.
func (f Frame) IsExtended() bool { return f.id.IsExtended() }

// IsFD reports whether this is a CAN FD (flexible data rate) frame.
func (f Frame) IsFD() bool { return f.fd }

// DLC returns the data length code. For remote frames this is the
// requested length, for FD frames the encoded length code, otherwise the
// payload byte count.
func (f Frame) DLC() uint8 { return f.dlc }

// Length returns the payload byte count. Always 0 for remote frames.
func (f Frame) Length() uint8 { return f.length }

// Data returns the frame payload. Remote frames always yield an empty
// slice regardless of their DLC.
func (f Frame) Data() []byte { return f.data[:f.length] }

// Compare orders frames by arbitration priority, delegating to
// ID.Compare. Frames with equal identifiers are equal priority no matter
// their kind or payload ; real buses break such ties by arrival order,
// which is the caller's concern.
func (f Frame) Compare(other Frame) int {
	return f.id.Compare(other.id)
}

func (f Frame) String() string {
	if f.remote {
		return fmt.Sprintf("%s# RTR %d", f.id, f.dlc)
	}
	return fmt.Sprintf("%s# % X", f.id, f.Data())
}
