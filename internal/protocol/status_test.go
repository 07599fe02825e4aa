package protocol

import "testing"

func TestStatusDecode(t *testing.T) {
	s := StatusFromByte(0x04 | 0x80)
	if !s.Enabled() {
		t.Fatal("expected enabled bit set")
	}
	if !s.Estopped() {
		t.Fatal("expected estop bit set")
	}
	if s.Brownout() {
		t.Fatal("brownout bit should be unset")
	}
}

func TestTraceRobotCode(t *testing.T) {
	if TraceFromByte(0x00).RobotCode() != CodeInitializing {
		t.Fatal("expected initializing when robot-code bit unset")
	}
	if TraceFromByte(0x20).RobotCode() != CodeRunning {
		t.Fatal("expected running when robot-code bit set")
	}
}

func TestTraceEnabledIsInverted(t *testing.T) {
	// the disabled bit is 0x01; Enabled() must read it inverted.
	if !TraceFromByte(0x00).Enabled() {
		t.Fatal("expected enabled true when disabled bit clear")
	}
	if TraceFromByte(0x01).Enabled() {
		t.Fatal("expected enabled false when disabled bit set")
	}
}
