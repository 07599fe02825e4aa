package state

import (
	"testing"
	"time"

	"github.com/keskad/dsgo/internal/protocol"
)

func TestNewSeedsDefaults(t *testing.T) {
	c := New(1234)
	snap := c.Snapshot()

	if snap.Team != 1234 {
		t.Errorf("Team = %d, want 1234", snap.Team)
	}
	if snap.Connected {
		t.Error("expected not connected before any response")
	}
	if snap.Alliance != protocol.Red1 {
		t.Errorf("Alliance = %v, want Red1", snap.Alliance)
	}
	if snap.CodeStatus != protocol.CodeInitializing {
		t.Errorf("CodeStatus = %v, want CodeInitializing", snap.CodeStatus)
	}
}

func TestApplyResponseMarksConnected(t *testing.T) {
	c := New(1234)
	frame, err := protocol.DecodeInboundFrame([]byte{0x00, 0x05, 0x01, 0x04, 0x22, 0x0C, 0x80, 0x01})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	c.ApplyResponse(frame, time.Now())
	snap := c.Snapshot()

	if !snap.Connected {
		t.Error("expected connected after ApplyResponse")
	}
	if !snap.Enabled {
		t.Error("expected enabled true")
	}
	if snap.Battery != 12.5 {
		t.Errorf("Battery = %v, want 12.5", snap.Battery)
	}
	if snap.Sequence != 5 {
		t.Errorf("Sequence = %d, want 5", snap.Sequence)
	}
}

func TestLivenessWindowExpires(t *testing.T) {
	c := New(1234)
	frame, _ := protocol.DecodeInboundFrame([]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00})

	stale := time.Now().Add(-2 * LivenessWindow)
	c.ApplyResponse(frame, stale)

	if c.Snapshot().Connected {
		t.Error("expected Connected false once the liveness window has elapsed")
	}
}

func TestMarkDisconnected(t *testing.T) {
	c := New(1234)
	frame, _ := protocol.DecodeInboundFrame([]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00})
	c.ApplyResponse(frame, time.Now())

	c.MarkDisconnected()
	if c.Snapshot().Connected {
		t.Error("expected Connected false after MarkDisconnected")
	}
}

func TestApplyFaultsAndUsageReportAreDisjointFromResponseFields(t *testing.T) {
	c := New(1234)
	frame, _ := protocol.DecodeInboundFrame([]byte{0x00, 0x01, 0x01, 0x04, 0x00, 0x00, 0x00, 0x00})
	c.ApplyResponse(frame, time.Now())

	c.ApplyFaults(protocol.Faults{CommsDisableCount: 3})
	c.ApplyUsageReport([]protocol.Entry{{Kind: protocol.EntryButton}})

	snap := c.Snapshot()
	if snap.Faults.CommsDisableCount != 3 {
		t.Errorf("Faults.CommsDisableCount = %d, want 3", snap.Faults.CommsDisableCount)
	}
	if len(snap.UsageReport) != 1 {
		t.Fatalf("UsageReport = %v, want 1 entry", snap.UsageReport)
	}
	if !snap.Enabled {
		t.Error("expected Enabled to remain from ApplyResponse after ApplyFaults/ApplyUsageReport")
	}
}
