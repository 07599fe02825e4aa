// Package protocol implements the bit-exact wire codec for the FRC
// driver-station link: the UDP heartbeat frame in both directions, the
// TCP configuration/telemetry frames, and the usage-report entry
// grammar. No operation here performs I/O.
package protocol

import "errors"

// ErrInvalidLength is returned when a buffer is shorter than the fixed
// header its kind requires.
var ErrInvalidLength = errors.New("protocol: frame too short")

// ErrInvalidTag is returned when a declared tag length runs past the end
// of the buffer, or a fixed-length tag arrives with the wrong size.
var ErrInvalidTag = errors.New("protocol: invalid tag")
