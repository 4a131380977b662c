package can

import "errors"

var (
	ErrIDOutOfRange  = errors.New("identifier value out of range for its kind")
	ErrInvalidLength = errors.New("payload length not representable by a DLC")
	ErrErrorFrame    = errors.New("error frames are not representable")
	ErrNotOBDAddress = errors.New("identifier outside the legislated OBD ranges")
	ErrBadWireLength = errors.New("wrong wire encoding length")
)
