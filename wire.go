package can

import (
	"encoding/binary"
	"fmt"
)

// Wire sizes of the Linux SocketCAN frame structures.
const (
	classicWireSize = 16 // struct can_frame
	fdWireSize      = 72 // struct canfd_frame
)

// MarshalBinary encodes the frame in the Linux SocketCAN layout : the 16
// byte can_frame for classical frames and the 72 byte canfd_frame for FD
// frames. Both start with the little endian packed can_id (see CANID),
// followed by the payload byte count ; FD frames carry their flags byte
// with the BRS bit set.
func (f Frame) MarshalBinary() ([]byte, error) {
	if f.fd {
		buf := make([]byte, fdWireSize)
		binary.LittleEndian.PutUint32(buf[0:4], f.CANID())
		buf[4] = f.length
		buf[5] = CanFdBrsFlag
		copy(buf[8:], f.data[:])
		return buf, nil
	}
	buf := make([]byte, classicWireSize)
	binary.LittleEndian.PutUint32(buf[0:4], f.CANID())
	buf[4] = f.dlc
	copy(buf[8:], f.data[:MaxClassicLength])
	return buf, nil
}

// UnmarshalBinary decodes a frame from the SocketCAN can_frame (16 bytes)
// or canfd_frame (72 bytes) layout. Decoding goes through the frame
// constructors, so a malformed encoding (bad identifier bits, payload
// length off the DLC table) is rejected rather than producing an invalid
// frame.
func (f *Frame) UnmarshalBinary(data []byte) error {
	switch len(data) {
	case classicWireSize, fdWireSize:
	default:
		return fmt.Errorf("%d bytes: %w", len(data), ErrBadWireLength)
	}

	id, rtr, err := ParseCANID(binary.LittleEndian.Uint32(data[0:4]))
	if err != nil {
		return err
	}
	length := data[4]

	var frame Frame
	switch {
	case len(data) == fdWireSize:
		if rtr {
			return fmt.Errorf("RTR flag on FD frame: %w", ErrInvalidLength)
		}
		if int(length) > MaxFDLength {
			return fmt.Errorf("FD wire length %d: %w", length, ErrInvalidLength)
		}
		frame, err = NewFDDataFrame(id, data[8:8+int(length)])
	case rtr:
		frame, err = NewRemoteFrame(id, length)
	default:
		if int(length) > MaxClassicLength {
			return fmt.Errorf("classic wire length %d: %w", length, ErrInvalidLength)
		}
		frame, err = NewDataFrame(id, data[8:8+int(length)])
	}
	if err != nil {
		return err
	}
	*f = frame
	return nil
}
