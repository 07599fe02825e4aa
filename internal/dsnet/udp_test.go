package dsnet

import (
	"testing"

	"github.com/keskad/dsgo/internal/protocol"
	"github.com/keskad/dsgo/internal/state"
)

func TestTeamIPAddrFormula(t *testing.T) {
	tests := []struct {
		team uint16
		want string
	}{
		{1114, "10.11.14.2:1110"},
		{42, "10.0.42.2:1110"},
		{100, "10.1.0.2:1110"},
	}
	for _, tt := range tests {
		if got := teamIPAddr(tt.team); got != tt.want {
			t.Errorf("teamIPAddr(%d) = %q, want %q", tt.team, got, tt.want)
		}
	}
}

func newTestUDPLoop() *UDPLoop {
	cell := state.New(1114)
	cmds := make(chan UDPEvent, 8)
	connEvents := make(chan ConnectionEvent, 8)
	return NewUDPLoop(1114, cmds, connEvents, cell)
}

func TestDrainCommandsAppliesLatches(t *testing.T) {
	l := newTestUDPLoop()
	l.cmds <- SetEnabled(true)
	l.cmds <- SetAlliance(protocol.Blue1)
	l.cmds <- RestartCode{}

	action := l.drainCommands()
	if action != actionContinue {
		t.Fatalf("action = %v, want actionContinue", action)
	}
	if !l.enabled {
		t.Error("expected enabled = true")
	}
	if l.alliance != protocol.Blue1 {
		t.Errorf("alliance = %v, want Blue1", l.alliance)
	}
	if !l.restartCode {
		t.Error("expected restartCode latch set")
	}
}

func TestDrainCommandsExitStopsImmediately(t *testing.T) {
	l := newTestUDPLoop()
	l.cmds <- SetEnabled(true)
	l.cmds <- ExitUDP{}
	l.cmds <- SetEnabled(false) // must not be applied; loop already exited

	action := l.drainCommands()
	if action != actionExit {
		t.Fatalf("action = %v, want actionExit", action)
	}
	if !l.enabled {
		t.Error("expected the command before ExitUDP to have been applied")
	}
}

func TestBuildFrameClearsOneShotLatches(t *testing.T) {
	l := newTestUDPLoop()
	l.restartCode = true
	l.rebootRIO = true
	l.sequence = 3

	frame := l.buildFrame(nil)
	if !frame.Request.RestartCode() {
		t.Error("expected restart-code bit set on the emitted frame")
	}
	if l.restartCode || l.rebootRIO {
		t.Error("expected one-shot latches cleared after buildFrame")
	}
}
