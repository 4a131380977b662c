package can

import (
	"fmt"

	socketcan "github.com/brutella/can"
)

// Conversions to and from the frame type of github.com/brutella/can, the
// SocketCAN transport library commonly paired with this package. The
// EFF and RTR flags travel in the packed 32 bit identifier, which is what
// the kernel expects on the wire.

// ToSocketCAN converts a frame for transmission through brutella/can.
// FD frames do not fit the classical 8 byte transport frame and are
// rejected with ErrInvalidLength.
func ToSocketCAN(f Frame) (socketcan.Frame, error) {
	if f.IsFD() {
		return socketcan.Frame{}, fmt.Errorf("FD frame on classical transport: %w", ErrInvalidLength)
	}
	out := socketcan.Frame{
		ID:     f.CANID(),
		Length: f.DLC(),
	}
	copy(out.Data[:], f.Data())
	return out, nil
}

// FromSocketCAN converts a received brutella/can frame, validating it
// through the frame constructors. Error frames and out of range
// identifiers or lengths are rejected.
func FromSocketCAN(cf socketcan.Frame) (Frame, error) {
	id, rtr, err := ParseCANID(cf.ID)
	if err != nil {
		return Frame{}, err
	}
	if rtr {
		return NewRemoteFrame(id, cf.Length)
	}
	if int(cf.Length) > len(cf.Data) {
		return Frame{}, fmt.Errorf("socketcan length %d: %w", cf.Length, ErrInvalidLength)
	}
	return NewDataFrame(id, cf.Data[:cf.Length])
}
