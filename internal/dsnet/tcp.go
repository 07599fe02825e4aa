package dsnet

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keskad/dsgo/internal/protocol"
	"github.com/keskad/dsgo/internal/state"
)

const (
	// TCPInterval is the configuration-stream cadence.
	TCPInterval = 1 * time.Second

	tcpPort = 1740
)

type tcpLoopAction int

const (
	tcpContinue tcpLoopAction = iota
	tcpReconnect
	tcpExit
)

// TCPLoop is the slow-cadence configuration stream, predicated on peer
// discovery published by the UDP loop (spec.md §4.4).
type TCPLoop struct {
	cmds       chan TCPEvent
	connEvents <-chan ConnectionEvent
	cell       *state.Cell

	gameData  *protocol.GameData
	matchInfo *protocol.MatchInfo
	joysticks []protocol.JoystickDescriptor
}

// NewTCPLoop builds a loop reading commands from cmds and connection
// transitions from connEvents.
func NewTCPLoop(cmds chan TCPEvent, connEvents <-chan ConnectionEvent, cell *state.Cell) *TCPLoop {
	return &TCPLoop{
		cmds:       cmds,
		connEvents: connEvents,
		cell:       cell,
	}
}

// Run awaits a connection event, opens the TCP stream, and drives the
// 1s configuration cadence until disconnect, write failure, or ctx
// cancellation / an ExitTCP event.
func (l *TCPLoop) Run(ctx context.Context) {
	for {
		addr, ok := l.awaitConnection(ctx)
		if !ok {
			return
		}

		action := l.runConnected(ctx, addr)
		if action == tcpExit {
			return
		}
		// tcpReconnect: loop back to awaitConnection.
	}
}

func (l *TCPLoop) awaitConnection(ctx context.Context) (string, bool) {
	for {
		select {
		case <-ctx.Done():
			return "", false
		case ev := <-l.connEvents:
			if ev.Connected {
				return ev.Addr, true
			}
		}
	}
}

func (l *TCPLoop) runConnected(ctx context.Context, peerAddr string) tcpLoopAction {
	host, _, err := net.SplitHostPort(peerAddr)
	if err != nil {
		logrus.WithError(err).Debug("tcp loop: malformed peer address")
		return tcpReconnect
	}
	addr := net.JoinHostPort(host, strconv.Itoa(tcpPort))

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		logrus.WithError(err).Debug("tcp loop: dial failed")
		return tcpReconnect
	}
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}

	for {
		tickStart := time.Now()

		select {
		case <-ctx.Done():
			return tcpExit
		case ev := <-l.connEvents:
			if !ev.Connected {
				return tcpReconnect
			}
		default:
		}

		action := l.tick(conn)
		if action != tcpContinue {
			return action
		}

		elapsed := time.Since(tickStart)
		if sleep := TCPInterval - elapsed; sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

func (l *TCPLoop) tick(conn net.Conn) tcpLoopAction {
	// 1. Drain the command inbox.
	if action := l.drainCommands(); action != tcpContinue {
		return action
	}

	// 2. Take the joystick list.
	joysticks := l.joysticks
	l.joysticks = nil

	// 3. Build the packet.
	packet := protocol.TCPPacket{
		GameData:  l.gameData,
		MatchInfo: l.matchInfo,
		Joysticks: joysticks,
	}

	// 4. Write to the stream.
	buf := packet.Write(nil)
	if _, err := conn.Write(buf); err != nil {
		logrus.WithError(err).Debug("tcp loop: write failed")
		return tcpReconnect
	}

	// 5. Clear one-shot fields.
	l.gameData = nil
	l.matchInfo = nil

	// Supplemental: opportunistically read any inbound usage-report
	// telemetry the RoboRIO has queued, without blocking the cadence.
	l.readTelemetry(conn)

	return tcpContinue
}

func (l *TCPLoop) drainCommands() tcpLoopAction {
	for {
		select {
		case ev := <-l.cmds:
			switch e := ev.(type) {
			case SetGameData:
				gd := protocol.GameData(e)
				l.gameData = &gd
			case SetMatchInfo:
				mi := protocol.MatchInfo(e)
				l.matchInfo = &mi
			case AppendJoystick:
				l.joysticks = append(l.joysticks, e.Joystick)
			case TeamNumberChanged:
				return tcpReconnect
			case ExitTCP:
				return tcpExit
			}
		default:
			return tcpContinue
		}
	}
}

// readTelemetry performs a single non-blocking read and, if data
// arrived, decodes it as a usage-report entry stream. Full decoding of
// the Radio/DisableFaults/RailFaults/VersionInfo/ErrorMessage record
// family (recv/tcp.rs) is left for a future pass — see DESIGN.md.
func (l *TCPLoop) readTelemetry(conn net.Conn) {
	if err := conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return
	}
	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}
	entries := protocol.ParseUsageReport(buf[:n])
	if len(entries) > 0 {
		l.cell.ApplyUsageReport(entries)
	}
}
