package protocol

// MatchType is the wire enum for the competition match type record.
type MatchType uint8

const (
	MatchNone MatchType = iota
	MatchPractice
	MatchQualification
	MatchElimination
)

// MatchInfo is the competition-name + match-type configuration record.
type MatchInfo struct {
	Competition string
	Type        MatchType
}

const matchInfoTagID = 0x07

// payloadLen returns the byte count of the match-info record body, i.e.
// its own type-tag byte, the competition-name length prefix byte, the
// name itself, and the match-type byte.
func (m MatchInfo) payloadLen() int {
	return 1 + 1 + len(m.Competition) + 1
}

func (m MatchInfo) write(out []byte) []byte {
	out = append(out, uint8(len(m.Competition)))
	out = append(out, []byte(m.Competition)...)
	return append(out, uint8(m.Type))
}

// JoystickType identifies the class of joystick a descriptor describes.
// Values follow the HID/XInput catalogue of the reference protocol.
type JoystickType int8

const (
	JoystickUnknown           JoystickType = -1
	JoystickXInputUnknown     JoystickType = 0
	JoystickXInputGamepad     JoystickType = 1
	JoystickXInputWheel       JoystickType = 2
	JoystickXInputArcade      JoystickType = 3
	JoystickXInputFlightStick JoystickType = 4
	JoystickXInputDancePad    JoystickType = 5
	JoystickXInputGuitar      JoystickType = 6
	JoystickXInputGuitar2     JoystickType = 7
	JoystickXInputDrumKit     JoystickType = 8
	JoystickXInputGuitar3     JoystickType = 11
	JoystickXInputArcadePad   JoystickType = 19
	JoystickHIDJoystick       JoystickType = 20
	JoystickHIDGamepad        JoystickType = 21
	JoystickHIDDriving        JoystickType = 22
	JoystickHIDFlight         JoystickType = 23
	JoystickHIDFirstPerson    JoystickType = 24
)

// AxisType identifies the physical role of one joystick axis.
type AxisType uint8

const (
	AxisX AxisType = iota
	AxisY
	AxisZ
	AxisTwist
	AxisThrottle
)

// JoystickDescriptor describes one connected joystick for the TCP
// configuration stream.
type JoystickDescriptor struct {
	Index      uint8
	IsXbox     bool
	Type       JoystickType
	Name       string
	AxisTypes  []AxisType
	ButtonCount uint8
	PovCount    uint8
}

const joystickRecordID = 0x02

// payloadLen returns the byte count of the joystick record body, i.e.
// its own type-tag byte plus everything write emits: index, xbox flag,
// joystick type, the name, the axis-count prefix and axes, and the
// button/pov counts.
func (j JoystickDescriptor) payloadLen() int {
	return 1 + 1 + 1 + 1 + len(j.Name) + 1 + len(j.AxisTypes) + 1 + 1
}

func (j JoystickDescriptor) write(out []byte) []byte {
	out = append(out, j.Index, boolByte(j.IsXbox), byte(j.Type))
	out = append(out, []byte(j.Name)...)
	out = append(out, uint8(len(j.AxisTypes)))
	for _, a := range j.AxisTypes {
		out = append(out, byte(a))
	}
	return append(out, j.ButtonCount, j.PovCount)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// TCPPacket is the outbound TCP configuration frame: zero or more
// length-prefixed records (game-data, match-info, joysticks) in that
// fixed order. An empty packet is exactly the two bytes 0x00 0x00.
type TCPPacket struct {
	GameData   *GameData
	MatchInfo  *MatchInfo
	Joysticks  []JoystickDescriptor
}

// Write appends the encoded packet to out.
func (p TCPPacket) Write(out []byte) []byte {
	if p.GameData == nil && p.MatchInfo == nil && len(p.Joysticks) == 0 {
		return append(out, 0x00, 0x00)
	}

	if p.GameData != nil {
		out = append(out, p.GameData.Len()+1, gameDataTagID)
		out = append(out, p.GameData.Bytes()...)
	}

	if p.MatchInfo != nil {
		out = append(out, uint8(p.MatchInfo.payloadLen()), matchInfoTagID)
		out = p.MatchInfo.write(out)
	}

	for _, j := range p.Joysticks {
		out = append(out, uint8(j.payloadLen()), joystickRecordID)
		out = j.write(out)
	}

	return out
}

const gameDataTagID = 0x0e
