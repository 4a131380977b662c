package can

import "fmt"

// SocketCAN can_id flag bits and masks, same values as <linux/can.h>.
// A packed 32 bit can_id carries the identifier in its lower bits and the
// frame format flags in the upper three.
const (
	CanEffFlag uint32 = 0x80000000 // frame uses the extended (29 bit) format
	CanRtrFlag uint32 = 0x40000000 // frame is a remote transmission request
	CanErrFlag uint32 = 0x20000000 // frame is an error frame
	CanSffMask uint32 = 0x000007FF
	CanEffMask uint32 = 0x1FFFFFFF
)

// CAN FD flag bits for the canfd_frame flags byte.
const (
	CanFdBrsFlag uint8 = 0x01 // bit rate switch
	CanFdEsiFlag uint8 = 0x02 // error state indicator
)

// CANID returns the SocketCAN packed identifier for the frame : the raw
// identifier value with the EFF and RTR flag bits applied.
func (f Frame) CANID() uint32 {
	raw := f.id.value
	if f.id.kind == Extended {
		raw |= CanEffFlag
	}
	if f.remote {
		raw |= CanRtrFlag
	}
	return raw
}

// ParseCANID splits a SocketCAN packed identifier into a validated ID and
// the RTR flag. Error frames are rejected with ErrErrorFrame since this
// package models data and remote frames only, and a standard format
// can_id with identifier bits above the 11 bit mask is rejected rather
// than silently truncated.
func ParseCANID(raw uint32) (ID, bool, error) {
	if raw&CanErrFlag != 0 {
		return ID{}, false, fmt.Errorf("can_id %#X: %w", raw, ErrErrorFrame)
	}
	rtr := raw&CanRtrFlag != 0
	if raw&CanEffFlag != 0 {
		id, err := NewExtendedID(raw & CanEffMask)
		return id, rtr, err
	}
	id, err := NewStandardID(raw & CanEffMask)
	if err != nil {
		return ID{}, false, fmt.Errorf("can_id %#X: %w", raw, err)
	}
	return id, rtr, nil
}
