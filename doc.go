// Package can provides the foundational types for working with Controller
// Area Network (CAN) bus traffic : identifiers, frames and acceptance
// filters.
//
// The package is meant to be shared between drivers, bus simulators and
// application layer protocol stacks so that identifier validation, DLC
// handling and filter matching are implemented once. It deliberately
// contains no transport : decoding raw bus bytes and writing frames back
// to a bus is the job of a driver built on top of these types.
//
// All types are immutable values. Construction validates every invariant
// (identifier bit width, payload length against the DLC tables) so that an
// instance, once obtained, is always well formed. Because nothing is
// mutated after construction, values can be shared between goroutines
// without synchronization.
package can
