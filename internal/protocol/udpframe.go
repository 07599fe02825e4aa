package protocol

import (
	"encoding/binary"
	"math"
)

// OutboundFrame is the 6-byte-header-plus-tags UDP command datagram sent every
// heartbeat tick. Fields are written in the fixed order required by the
// wire format; callers build one with field assignment, the way the
// teacher builds a LocoCV value, not through a fluent builder.
type OutboundFrame struct {
	Sequence uint16
	Version  uint8
	Control  Control
	Request  Request
	Alliance Alliance
	Tags     []OutboundTag
}

// NewOutboundFrame returns a frame with the protocol version and the
// ds-connected default already set.
func NewOutboundFrame() OutboundFrame {
	return OutboundFrame{
		Version: ProtocolVersion,
		Request: DefaultRequest(),
	}
}

// ProtocolVersion is the constant comm-version byte.
const ProtocolVersion uint8 = 0x01

// Write appends the encoded frame to out.
func (f OutboundFrame) Write(out []byte) []byte {
	out = binary.BigEndian.AppendUint16(out, f.Sequence)
	out = append(out, f.Version, f.Control.Byte(), f.Request.Byte(), f.Alliance.Byte())
	for _, tag := range f.Tags {
		out = writeTag(out, tag)
	}
	return out
}

// OutboundTag is a length-prefixed sub-record appended after the fixed
// header of an outbound UDP frame.
type OutboundTag interface {
	// payload appends this tag's type byte and body (not its length
	// byte) to out.
	payload(out []byte) []byte
}

// writeTag appends the tag's length-prefixed TLV to out. The length byte
// is always computed from the emitted payload, never trusted from a
// stored field, per the wire-format invariant.
func writeTag(out []byte, t OutboundTag) []byte {
	start := len(out)
	out = append(out, 0) // placeholder length
	out = t.payload(out)
	out[start] = byte(len(out) - start - 1)
	return out
}

// CountdownTag carries the match countdown as a big-endian float32.
type CountdownTag struct {
	Seconds float32
}

const countdownTagID = 0x07

func (t CountdownTag) payload(out []byte) []byte {
	out = append(out, countdownTagID)
	return binary.BigEndian.AppendUint32(out, math.Float32bits(t.Seconds))
}

// JoystickTag describes one connected joystick's current axis, button
// and POV state.
type JoystickTag struct {
	Axes    []int8
	Buttons JoystickButtons
	Povs    []int16
}

const joystickTagID = 0x0c

func (t JoystickTag) payload(out []byte) []byte {
	out = append(out, joystickTagID)
	out = append(out, uint8(len(t.Axes)))
	for _, a := range t.Axes {
		out = append(out, byte(a))
	}
	out = append(out, t.Buttons.count)
	out = t.Buttons.write(out)
	out = append(out, uint8(len(t.Povs)))
	for _, p := range t.Povs {
		out = binary.BigEndian.AppendUint16(out, uint16(p))
	}
	return out
}

// JoystickButtons packs up to 64 button states into the ceil(count/8)-byte
// bitmap the wire format expects, bit 0 = button 1.
type JoystickButtons struct {
	count byte
	bits  uint64
}

// NewJoystickButtons returns a button set sized for count buttons.
func NewJoystickButtons(count uint8) JoystickButtons {
	return JoystickButtons{count: count}
}

// Set sets button n (0-indexed) to state.
func (b *JoystickButtons) Set(n uint8, state bool) {
	if state {
		b.bits |= 1 << n
	} else {
		b.bits &^= 1 << n
	}
}

// Count returns the configured button count.
func (b JoystickButtons) Count() uint8 { return b.count }

func (b JoystickButtons) write(out []byte) []byte {
	nBytes := (b.count + 7) / 8
	if nBytes == 0 {
		nBytes = 1
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], b.bits)
	// buf holds the value in its high bytes when viewed big-endian from
	// the low end; take the low nBytes bytes of the 64-bit value.
	return append(out, buf[8-int(nBytes):]...)
}

// DateTag carries the driver-station's wall-clock time.
type DateTag struct {
	Microseconds uint32
	Second       uint8
	Minute       uint8
	Hour         uint8
	Day          uint8
	// Month is 0-indexed: 0 == January.
	Month uint8
	// Year is 0-indexed from 1900.
	Year uint8
}

const dateTagID = 0x0f

func (t DateTag) payload(out []byte) []byte {
	out = append(out, dateTagID)
	out = binary.BigEndian.AppendUint32(out, t.Microseconds)
	return append(out, t.Second, t.Minute, t.Hour, t.Day, t.Month, t.Year)
}

// TimezoneTag carries a null-terminated timezone name.
type TimezoneTag struct {
	Name string
}

const timezoneTagID = 0x10

func (t TimezoneTag) payload(out []byte) []byte {
	out = append(out, timezoneTagID)
	out = append(out, []byte(t.Name)...)
	return append(out, 0)
}
