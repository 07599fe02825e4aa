// Package ds is the public facade: a Robot handle wraps the UDP
// heartbeat and TCP configuration loops behind a small synchronous API,
// the way the teacher's LocoApp wraps a command station behind action
// methods.
package ds

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/keskad/dsgo/internal/dsnet"
	"github.com/keskad/dsgo/internal/protocol"
	"github.com/keskad/dsgo/internal/state"
)

const (
	udpCmdBuffer  = 64
	tcpCmdBuffer  = 64
	connEvtBuffer = 8
)

// Robot is a handle to one driver-station link. Create it with New,
// drive it with the setter/request methods, read it with the
// accessors, and release it with Close.
type Robot struct {
	cancel context.CancelFunc
	wg     *conc.WaitGroup

	udpCmds chan dsnet.UDPEvent
	tcpCmds chan dsnet.TCPEvent

	cell *state.Cell

	// lastGameData, lastMatchInfo and lastAlliance mirror the most recent
	// value handed to the loops; these are the driver station's own
	// configuration, not something read back off the wire, so they live
	// here rather than in state.Cell.
	lastGameData  protocol.GameData
	lastMatchInfo protocol.MatchInfo
	lastAlliance  protocol.Alliance
}

// New starts both link loops for the given team number and returns a
// handle. The team-derived RoboRIO address and the simulator loopback
// are both probed until the peer replies, per the discovery rule.
func New(team uint16) *Robot {
	ctx, cancel := context.WithCancel(context.Background())

	cell := state.New(team)
	connEvents := make(chan dsnet.ConnectionEvent, connEvtBuffer)
	udpCmds := make(chan dsnet.UDPEvent, udpCmdBuffer)
	tcpCmds := make(chan dsnet.TCPEvent, tcpCmdBuffer)

	udpLoop := dsnet.NewUDPLoop(team, udpCmds, connEvents, cell)
	tcpLoop := dsnet.NewTCPLoop(tcpCmds, connEvents, cell)

	r := &Robot{
		cancel:  cancel,
		wg:      conc.NewWaitGroup(),
		udpCmds: udpCmds,
		tcpCmds: tcpCmds,
		cell:    cell,
	}

	r.wg.Go(func() { udpLoop.Run(ctx) })
	r.wg.Go(func() { tcpLoop.Run(ctx) })

	return r
}

// Close cancels both loops and waits for them to return. It is safe to
// call once; the handle must not be used afterwards.
func (r *Robot) Close() {
	r.cancel()
	r.wg.Wait()
}

// SetEnabled requests the robot be enabled or disabled.
func (r *Robot) SetEnabled(enabled bool) { r.udpCmds <- dsnet.SetEnabled(enabled) }

// SetEstopped latches or clears the emergency stop. The reference
// protocol never automatically clears an e-stop; callers must send
// SetEstopped(false) explicitly once the condition is resolved.
func (r *Robot) SetEstopped(estopped bool) { r.udpCmds <- dsnet.SetEstopped(estopped) }

// SetFMSConnected reports whether this process is itself bridged to a
// field management system.
func (r *Robot) SetFMSConnected(connected bool) { r.udpCmds <- dsnet.SetFMSConnected(connected) }

// SetMode selects teleop, autonomous, or test mode.
func (r *Robot) SetMode(mode protocol.Mode) { r.udpCmds <- dsnet.SetMode(mode) }

// SetAlliance selects the field-position slot.
func (r *Robot) SetAlliance(alliance protocol.Alliance) {
	r.lastAlliance = alliance
	r.udpCmds <- dsnet.SetAlliance(alliance)
}

// SetTeamNumber rebinds both loops to a new team's addresses. Both the
// heartbeat and the configuration stream drop their current peer and
// re-discover.
func (r *Robot) SetTeamNumber(team uint16) {
	r.udpCmds <- dsnet.SetTeamNumber(team)
	r.tcpCmds <- dsnet.TeamNumberChanged{}
}

// RequestRestartCode asks the robot to restart user code on the next
// heartbeat. The request is a one-shot latch; it clears after being
// sent once.
func (r *Robot) RequestRestartCode() { r.udpCmds <- dsnet.RestartCode{} }

// RequestRebootRoboRIO asks the robot to reboot. One-shot, as above.
func (r *Robot) RequestRebootRoboRIO() { r.udpCmds <- dsnet.RebootRoboRIO{} }

// EnqueueTag schedules an additional outbound UDP tag (e.g. a joystick
// or countdown tag) for the next heartbeat.
func (r *Robot) EnqueueTag(tag protocol.OutboundTag) {
	r.udpCmds <- dsnet.AppendTag{Tag: tag}
}

// SetGameData replaces the FMS game-specific data sent on the next
// configuration tick.
func (r *Robot) SetGameData(data protocol.GameData) {
	r.lastGameData = data
	r.tcpCmds <- dsnet.SetGameData(data)
}

// SetMatchInfo replaces the competition name and match type sent on
// the next configuration tick.
func (r *Robot) SetMatchInfo(info protocol.MatchInfo) {
	r.lastMatchInfo = info
	r.tcpCmds <- dsnet.SetMatchInfo(info)
}

// AppendJoystick queues one joystick descriptor for the next
// configuration tick.
func (r *Robot) AppendJoystick(joystick protocol.JoystickDescriptor) {
	r.tcpCmds <- dsnet.AppendJoystick{Joystick: joystick}
}

// Connected reports whether a UDP response has been observed within
// the liveness window.
func (r *Robot) Connected() bool { return r.cell.Snapshot().Connected }

// Enabled reports the robot's last-reported enabled state.
func (r *Robot) Enabled() bool { return r.cell.Snapshot().Enabled }

// Estopped reports the robot's last-reported e-stop state.
func (r *Robot) Estopped() bool { return r.cell.Snapshot().Estopped }

// Mode reports the robot's last-reported operating mode.
func (r *Robot) Mode() protocol.Mode { return r.cell.Snapshot().Mode }

// CodeStatus reports whether robot code has finished initialising.
func (r *Robot) CodeStatus() protocol.CodeStatus { return r.cell.Snapshot().CodeStatus }

// Battery reports the last-reported battery voltage.
func (r *Robot) Battery() float32 { return r.cell.Snapshot().Battery }

// Sequence reports the sequence number of the most recently applied
// UDP response, useful for detecting dropped packets.
func (r *Robot) Sequence() uint16 { return r.cell.Snapshot().Sequence }

// TeamNumber reports the currently configured team number.
func (r *Robot) TeamNumber() uint16 { return r.cell.Snapshot().Team }

// Faults reports the most recently observed rail-fault counters.
func (r *Robot) Faults() protocol.Faults { return r.cell.Snapshot().Faults }

// UsageReport reports the most recently decoded usage-report entry
// catalogue.
func (r *Robot) UsageReport() []protocol.Entry { return r.cell.Snapshot().UsageReport }

// GameData reports the game data last handed to SetGameData; it is the
// driver station's own configuration, not a value read off the wire.
func (r *Robot) GameData() protocol.GameData { return r.lastGameData }

// MatchInfo reports the match info last handed to SetMatchInfo.
func (r *Robot) MatchInfo() protocol.MatchInfo { return r.lastMatchInfo }

// Alliance reports the field-position slot last handed to SetAlliance;
// like GameData and MatchInfo, the wire never reports it back.
func (r *Robot) Alliance() protocol.Alliance { return r.lastAlliance }
