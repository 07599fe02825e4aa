package protocol

import "testing"

func TestParseUsageReportScenarioS5(t *testing.T) {
	entries := ParseUsageReport([]byte("e\x83"))
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want 1", entries)
	}
	e := entries[0]
	if e.Kind != EntryRelay {
		t.Fatalf("Kind = %v, want EntryRelay", e.Kind)
	}
	if e.Channel != 4 || !e.Reversable {
		t.Fatalf("Channel/Reversable = %d/%v, want 4/true", e.Channel, e.Reversable)
	}
}

func TestParseUsageReportScenarioS6(t *testing.T) {
	entries := ParseUsageReport([]byte("V1K0N0Y0"))

	wantKinds := []EntryKind{EntryI2C, EntryCompressor, EntryDigitalInput, EntryJoystick}
	if len(entries) != len(wantKinds) {
		t.Fatalf("entries = %v, want %d entries", entries, len(wantKinds))
	}
	for i, e := range entries {
		if e.Kind != wantKinds[i] {
			t.Errorf("entries[%d].Kind = %v, want %v", i, e.Kind, wantKinds[i])
		}
	}
	if entries[0].Operand != '1' {
		t.Errorf("entries[0].Operand = %d, want ASCII '1' (0x31)", entries[0].Operand)
	}
	if entries[1].Operand != '0' {
		t.Errorf("entries[1].Operand = %d, want ASCII '0' (0x30)", entries[1].Operand)
	}
}

func TestParseUsageReportTwoByteIndicator(t *testing.T) {
	entries := ParseUsageReport([]byte(">H"))
	if len(entries) != 1 || entries[0].Kind != EntryPDP {
		t.Fatalf("entries = %v, want single EntryPDP", entries)
	}
}

func TestParseUsageReportSkipsUnmatchedBytes(t *testing.T) {
	entries := ParseUsageReport([]byte{0xff, 'n'})
	if len(entries) != 1 || entries[0].Kind != EntryButton {
		t.Fatalf("entries = %v, want single EntryButton after skipping 0xff", entries)
	}
}

func TestParseUsageReportDropsTruncatedOperand(t *testing.T) {
	// "C" (Language, single-operand) with no trailing byte: dropped.
	entries := ParseUsageReport([]byte("C"))
	if len(entries) != 0 {
		t.Fatalf("entries = %v, want empty", entries)
	}
}
