package protocol

import "testing"

func TestBatteryScenarioS2(t *testing.T) {
	b := BatteryFromBytes(0x0C, 0x80)
	if v := b.Voltage(); v != 12.5 {
		t.Fatalf("Voltage() = %v, want 12.5", v)
	}
}

func TestBatteryRoundTrip(t *testing.T) {
	tests := []struct {
		hi, lo uint8
		want   float32
	}{
		{0, 0, 0},
		{12, 0, 12},
		{12, 128, 12.5},
		{255, 255, 255.99609375},
	}
	for _, tt := range tests {
		b := BatteryFromBytes(tt.hi, tt.lo)
		if v := b.Voltage(); v != tt.want {
			t.Errorf("BatteryFromBytes(%d, %d).Voltage() = %v, want %v", tt.hi, tt.lo, v, tt.want)
		}
		bytes := b.Bytes()
		if bytes[0] != tt.hi || bytes[1] != tt.lo {
			t.Errorf("Bytes() = %v, want [%d %d]", bytes, tt.hi, tt.lo)
		}
	}
}
