package protocol

import "testing"

func TestEntryLanguageDecode(t *testing.T) {
	e := Entry{Kind: EntryLanguage, Operand: 3}
	if e.Language() != LanguageJava {
		t.Fatalf("Language() = %v, want LanguageJava", e.Language())
	}
}

func TestEntryDriveTypeDecode(t *testing.T) {
	e := Entry{Kind: EntryRobotDrive, Instance: 0, Context: 4}
	if e.DriveType() != DriveTank {
		t.Fatalf("DriveType() = %v, want DriveTank", e.DriveType())
	}
	// default-arm fallback for any value above the known range.
	e.Context = 200
	if e.DriveType() != DriveMecanumCartesian {
		t.Fatalf("DriveType() = %v, want DriveMecanumCartesian as fallback", e.DriveType())
	}
}

func TestEntryEncodingDecode(t *testing.T) {
	e := Entry{Kind: EntryEncoder, Context: 1}
	if e.Encoding() != EncodingX2 {
		t.Fatalf("Encoding() = %v, want EncodingX2", e.Encoding())
	}
}
