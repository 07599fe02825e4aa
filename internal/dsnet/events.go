// Package dsnet implements the two long-lived link loops: the 20ms UDP
// heartbeat (udp.go) and the 1s TCP configuration stream (tcp.go). Both
// are driven by command events enqueued from the facade and mutate the
// shared state cell; the UDP loop additionally publishes connection
// events consumed by the TCP loop.
package dsnet

import "github.com/keskad/dsgo/internal/protocol"

// UDPEvent is a command flowing from the facade to the UDP loop. Each
// concrete type below implements it as a marker; the loop type-switches
// on the value it dequeues.
type UDPEvent interface{ udpEvent() }

type SetEnabled bool
type SetEstopped bool
type SetFMSConnected bool
type SetMode protocol.Mode
type SetAlliance protocol.Alliance
type SetTeamNumber uint16
type AppendTag struct{ Tag protocol.OutboundTag }
type RestartCode struct{}
type RebootRoboRIO struct{}
type ExitUDP struct{}

func (SetEnabled) udpEvent()       {}
func (SetEstopped) udpEvent()      {}
func (SetFMSConnected) udpEvent()  {}
func (SetMode) udpEvent()          {}
func (SetAlliance) udpEvent()      {}
func (SetTeamNumber) udpEvent()    {}
func (AppendTag) udpEvent()        {}
func (RestartCode) udpEvent()      {}
func (RebootRoboRIO) udpEvent()    {}
func (ExitUDP) udpEvent()          {}

// TCPEvent is a command flowing from the facade to the TCP loop.
type TCPEvent interface{ tcpEvent() }

type SetGameData protocol.GameData
type SetMatchInfo protocol.MatchInfo
type AppendJoystick struct{ Joystick protocol.JoystickDescriptor }
type TeamNumberChanged struct{}
type ExitTCP struct{}

func (SetGameData) tcpEvent()       {}
func (SetMatchInfo) tcpEvent()      {}
func (AppendJoystick) tcpEvent()    {}
func (TeamNumberChanged) tcpEvent() {}
func (ExitTCP) tcpEvent()           {}

// ConnectionEvent is posted by the UDP loop on every tick that receives
// a response (Connected) and once when the liveness window expires
// (Disconnected); the TCP loop consumes it to learn the peer's address.
type ConnectionEvent struct {
	// Connected is true with Addr populated, or false for a
	// Disconnected event.
	Connected bool
	Addr      string
}
