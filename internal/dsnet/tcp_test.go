package dsnet

import (
	"testing"

	"github.com/keskad/dsgo/internal/protocol"
	"github.com/keskad/dsgo/internal/state"
)

func newTestTCPLoop() *TCPLoop {
	cell := state.New(1114)
	cmds := make(chan TCPEvent, 8)
	connEvents := make(chan ConnectionEvent, 8)
	return NewTCPLoop(cmds, connEvents, cell)
}

func TestTCPDrainCommandsQueuesState(t *testing.T) {
	l := newTestTCPLoop()
	gd := protocol.NewGameData([]byte("abc"))
	mi := protocol.MatchInfo{Competition: "IRI", Type: protocol.MatchQualification}

	l.cmds <- SetGameData(gd)
	l.cmds <- SetMatchInfo(mi)
	l.cmds <- AppendJoystick{Joystick: protocol.JoystickDescriptor{Index: 0}}

	if action := l.drainCommands(); action != tcpContinue {
		t.Fatalf("action = %v, want tcpContinue", action)
	}
	if l.gameData == nil || l.gameData.Bytes()[0] != 'a' {
		t.Fatalf("gameData = %v, want 'abc'", l.gameData)
	}
	if l.matchInfo == nil || l.matchInfo.Competition != "IRI" {
		t.Fatalf("matchInfo = %v, want IRI", l.matchInfo)
	}
	if len(l.joysticks) != 1 {
		t.Fatalf("joysticks = %v, want 1 entry", l.joysticks)
	}
}

func TestTCPDrainCommandsTeamChangeReconnects(t *testing.T) {
	l := newTestTCPLoop()
	l.cmds <- TeamNumberChanged{}

	if action := l.drainCommands(); action != tcpReconnect {
		t.Fatalf("action = %v, want tcpReconnect", action)
	}
}

func TestTCPDrainCommandsExit(t *testing.T) {
	l := newTestTCPLoop()
	l.cmds <- ExitTCP{}

	if action := l.drainCommands(); action != tcpExit {
		t.Fatalf("action = %v, want tcpExit", action)
	}
}
