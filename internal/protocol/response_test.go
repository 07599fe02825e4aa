package protocol

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDecodeInboundFrameScenarioS4(t *testing.T) {
	buf := []byte{0x00, 0x05, 0x01, 0x04, 0x22, 0x0C, 0x80, 0x01}

	f, err := DecodeInboundFrame(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Sequence != 5 {
		t.Errorf("Sequence = %d, want 5", f.Sequence)
	}
	if f.Version != 1 {
		t.Errorf("Version = %d, want 1", f.Version)
	}
	if !f.Status.Enabled() {
		t.Error("expected status.enabled = true")
	}
	if f.Trace.RobotCode() != CodeRunning {
		t.Error("expected trace.robot_code = running")
	}
	if v := f.Battery.Voltage(); v != 12.5 {
		t.Errorf("Battery.Voltage() = %v, want 12.5", v)
	}
	if !f.FirstConn {
		t.Error("expected first_conn = true")
	}
	if len(f.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", f.Tags)
	}
}

func TestDecodeInboundFrameRejectsShortBuffers(t *testing.T) {
	_, err := DecodeInboundFrame([]byte{0x00, 0x01, 0x01})
	if err != ErrInvalidLength {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeInboundFrameWithCANMetricsTag(t *testing.T) {
	header := []byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}

	data := make([]byte, canMetricsPayloadLen)
	binary.BigEndian.PutUint32(data[0:4], math.Float32bits(0.5))
	data[13] = 3 // tx errors

	record := append([]byte{byte(1 + len(data)), tagCANMetrics}, data...)
	buf := append(append([]byte{}, header...), record...)

	f, err := DecodeInboundFrame(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Tags) != 1 {
		t.Fatalf("Tags = %v, want 1 entry", f.Tags)
	}
	metrics, ok := f.Tags[0].(CANMetricsTag)
	if !ok {
		t.Fatalf("Tags[0] = %T, want CANMetricsTag", f.Tags[0])
	}
	if metrics.TxErrors != 3 {
		t.Errorf("TxErrors = %d, want 3", metrics.TxErrors)
	}
}

func TestParseInboundTagsSkipsUnknownLengthZero(t *testing.T) {
	// A length-zero byte mid-stream must not loop forever; it just
	// advances one byte, per the forward-compatibility quirk.
	buf := []byte{0x00, 0x00, 0x00}
	tags, err := parseInboundTags(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("tags = %v, want empty", tags)
	}
}
