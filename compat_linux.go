package can

import "golang.org/x/sys/unix"

// KernelFilter converts the filter into the kernel acceptance filter
// struct used with SO_CAN_RAW socket options. The kind constraint is
// expressed through the EFF flag bit : including CanEffFlag in the mask
// makes the kernel compare the frame format as well, with the pattern's
// flag bit selecting which format passes.
func (f Filter) KernelFilter() unix.CanFilter {
	kf := unix.CanFilter{Id: f.pattern & f.mask, Mask: f.mask}
	switch f.kind {
	case StandardOnly:
		kf.Mask |= CanEffFlag
	case ExtendedOnly:
		kf.Id |= CanEffFlag
		kf.Mask |= CanEffFlag
	}
	return kf
}
