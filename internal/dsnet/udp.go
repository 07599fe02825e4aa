package dsnet

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keskad/dsgo/internal/protocol"
	"github.com/keskad/dsgo/internal/state"
)

const (
	// HeartbeatInterval is the fixed outbound UDP cadence.
	HeartbeatInterval = 20 * time.Millisecond

	udpTxPort  = 56789
	udpRxPort  = 1150
	roboRIOPort = 1110

	simUDPAddr = "127.0.0.1:1110"
)

type udpLoopAction int

const (
	actionContinue udpLoopAction = iota
	actionRebind
	actionExit
)

// UDPLoop is the 20ms heartbeat loop: peer discovery, sequence
// numbering, liveness timeout and response ingestion (spec.md §4.3).
type UDPLoop struct {
	cmds       chan UDPEvent
	connEvents chan<- ConnectionEvent
	cell       *state.Cell

	enabled      bool
	estopped     bool
	fmsConnected bool
	alliance     protocol.Alliance
	mode         protocol.Mode
	restartCode  bool
	rebootRIO    bool
	tags         []protocol.OutboundTag

	sequence     uint16
	team         uint16
	peerAddr     *net.UDPAddr
	discovered   bool
	everConnected bool
	lastResponse time.Time
}

// NewUDPLoop builds a loop for the given team, reading commands from
// cmds and publishing connection transitions to connEvents.
func NewUDPLoop(team uint16, cmds chan UDPEvent, connEvents chan<- ConnectionEvent, cell *state.Cell) *UDPLoop {
	return &UDPLoop{
		cmds:       cmds,
		connEvents: connEvents,
		cell:       cell,
		team:       team,
	}
}

// Run drives the loop until ctx is cancelled or an ExitUDP event is
// consumed. On a fatal I/O error or a team-number change it rebinds
// both sockets and continues, per spec.md's "(Re)bind -> inner loop ->
// on fatal error or team change, continue and rebind" outer loop.
func (l *UDPLoop) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		action, err := l.runBound(ctx)
		if err != nil {
			logrus.WithError(err).Debug("udp loop: socket error, rebinding")
		}
		if action == actionExit {
			return
		}
		// actionRebind or a transient error: loop around and rebind.
	}
}

func (l *UDPLoop) runBound(ctx context.Context) (udpLoopAction, error) {
	tx, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: udpTxPort})
	if err != nil {
		return actionContinue, fmt.Errorf("bind tx socket: %w", err)
	}
	defer tx.Close()

	rx, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: udpRxPort})
	if err != nil {
		return actionContinue, fmt.Errorf("bind rx socket: %w", err)
	}
	defer rx.Close()

	l.sequence = 1
	l.discovered = false
	l.peerAddr = nil
	l.everConnected = false

	for {
		tickStart := time.Now()

		select {
		case <-ctx.Done():
			return actionExit, nil
		default:
		}

		action, err := l.tick(tx, rx, tickStart)
		if err != nil {
			return actionContinue, err
		}
		if action != actionContinue {
			return action, nil
		}

		elapsed := time.Since(tickStart)
		if sleep := HeartbeatInterval - elapsed; sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

func (l *UDPLoop) tick(tx, rx *net.UDPConn, now time.Time) (udpLoopAction, error) {
	// 1. Drain the command inbox.
	if action := l.drainCommands(); action != actionContinue {
		return action, nil
	}

	// 2. Take ownership of the tag queue.
	tags := l.tags
	l.tags = nil

	// 3. Build the outbound frame.
	frame := l.buildFrame(tags)

	// 4. Send to peer, discovering it on the first reply if needed.
	if err := l.send(tx, frame); err != nil {
		logrus.WithError(err).Debug("udp loop: send failed")
	}

	// 5. Increment sequence (wraps via uint16 overflow).
	l.sequence++

	// 6. Non-blocking receive.
	received, err := l.receive(rx, now)
	if err != nil {
		logrus.WithError(err).Debug("udp loop: receive failed")
	}

	// 7. Liveness timeout.
	if !received && l.everConnected && now.Sub(l.lastResponse) > state.LivenessWindow {
		l.cell.MarkDisconnected()
		l.connEvents <- ConnectionEvent{Connected: false}
		return actionRebind, nil
	}

	return actionContinue, nil
}

func (l *UDPLoop) drainCommands() udpLoopAction {
	for {
		select {
		case ev := <-l.cmds:
			switch e := ev.(type) {
			case SetEnabled:
				l.enabled = bool(e)
			case SetEstopped:
				l.estopped = bool(e)
			case SetFMSConnected:
				l.fmsConnected = bool(e)
			case SetMode:
				l.mode = protocol.Mode(e)
			case SetAlliance:
				l.alliance = protocol.Alliance(e)
			case SetTeamNumber:
				l.team = uint16(e)
				l.cell.SetTeam(l.team)
				return actionRebind
			case AppendTag:
				l.tags = append(l.tags, e.Tag)
			case RestartCode:
				l.restartCode = true
			case RebootRoboRIO:
				l.rebootRIO = true
			case ExitUDP:
				return actionExit
			}
		default:
			return actionContinue
		}
	}
}

func (l *UDPLoop) buildFrame(tags []protocol.OutboundTag) protocol.OutboundFrame {
	frame := protocol.NewOutboundFrame()
	frame.Sequence = l.sequence
	frame.Control = protocol.Control(0).
		WithMode(l.mode).
		WithEnabled(l.enabled).
		WithEstopped(l.estopped).
		WithFMSConnected(l.fmsConnected)
	frame.Request = protocol.DefaultRequest().
		WithDSConnected(l.cell.Snapshot().Connected).
		WithRestartCode(l.restartCode).
		WithRebootRoboRIO(l.rebootRIO)
	frame.Alliance = l.alliance
	frame.Tags = tags

	// One-shot latches clear once placed into a frame.
	l.restartCode = false
	l.rebootRIO = false

	return frame
}

func (l *UDPLoop) send(tx *net.UDPConn, frame protocol.OutboundFrame) error {
	buf := frame.Write(nil)

	if l.discovered {
		_, err := tx.WriteToUDP(buf, l.peerAddr)
		return err
	}

	// Peer discovery: send to both candidate addresses until the first
	// response arrives.
	teamAddr, err := net.ResolveUDPAddr("udp4", teamIPAddr(l.team))
	if err != nil {
		return err
	}
	simAddr, err := net.ResolveUDPAddr("udp4", simUDPAddr)
	if err != nil {
		return err
	}
	if _, err := tx.WriteToUDP(buf, teamAddr); err != nil {
		logrus.WithError(err).Debug("udp loop: discovery send to team address failed")
	}
	if _, err := tx.WriteToUDP(buf, simAddr); err != nil {
		logrus.WithError(err).Debug("udp loop: discovery send to simulator address failed")
	}
	return nil
}

func (l *UDPLoop) receive(rx *net.UDPConn, now time.Time) (bool, error) {
	buf := make([]byte, 4096)
	// A deadline already in the past fails the read before it looks at
	// the socket, so allow a brief wait for a datagram that is queued.
	if err := rx.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return false, err
	}
	n, addr, err := rx.ReadFromUDP(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return false, nil
		}
		return false, err
	}

	frame, err := protocol.DecodeInboundFrame(buf[:n])
	if err != nil {
		logrus.WithError(err).Warn("udp loop: discarding malformed response")
		return false, nil
	}

	l.cell.ApplyResponse(frame, now)
	l.lastResponse = now

	if !l.discovered {
		l.discovered = true
		l.peerAddr = addr
	}
	l.everConnected = true

	l.connEvents <- ConnectionEvent{Connected: true, Addr: l.peerAddr.String()}
	return true, nil
}

// teamIPAddr renders the team-derived RoboRIO address per the formula
// 10.(team/100).(team%100).2, at port 1110.
func teamIPAddr(team uint16) string {
	return fmt.Sprintf("10.%d.%d.%d:%d", team/100, team%100, 2, roboRIOPort)
}
