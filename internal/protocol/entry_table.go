package protocol

// entryShape classifies how many operand bytes follow an entry's
// indicator and how they should be interpreted.
type entryShape int

const (
	shapeNone entryShape = iota
	shapeSingle
	shapeContext
	shapeCustom
)

type entryDescriptor struct {
	indicator string
	kind      EntryKind
	shape     entryShape
}

// entryTable is the indicator -> entry-descriptor catalogue. It is
// table-driven rather than a chain of conditionals, per the design note
// in spec.md §9 ("adding indicators is data, not code"), grounded on the
// full variant catalogue of the original's entry.rs.
var entryTable = []entryDescriptor{
	{"A", EntryController, shapeNone},
	{"B", EntryModule, shapeNone},
	{"C", EntryLanguage, shapeSingle},
	{"D", EntryCANPlugin, shapeNone},
	{"E", EntryAccelerometer, shapeSingle},
	{"F", EntryADXL345, shapeSingle},
	{"G", EntryAnalogChannel, shapeSingle},
	{"H", EntryAnalogTrigger, shapeSingle},
	{"I", EntryAnalogTriggerOutput, shapeContext},
	{"J", EntryCANJaguar, shapeNone},
	{"K", EntryCompressor, shapeSingle},
	{"L", EntryCounter, shapeContext},
	{"M", EntryDashboard, shapeNone},
	{"N", EntryDigitalInput, shapeSingle},
	{"O", EntryDigitalOutput, shapeSingle},
	{"P", EntryDriverStationCIO, shapeNone},
	{"Q", EntryDriverStationEIO, shapeNone},
	{"R", EntryDriverStationLCD, shapeNone},
	{"S", EntryEncoder, shapeContext},
	{"T", EntryGearTooth, shapeSingle},
	{"U", EntryGyro, shapeSingle},
	{"V", EntryI2C, shapeSingle},
	{"W", EntryFramework, shapeSingle},
	{"X", EntryJaguar, shapeSingle},
	{"Y", EntryJoystick, shapeSingle},
	{"Z", EntryKinect, shapeNone},
	{"a", EntryKinectStick, shapeNone},
	{"b", EntryPIDController, shapeSingle},
	{"c", EntryPreferences, shapeNone},
	{"d", EntryPWM, shapeSingle},
	{"e", EntryRelay, shapeCustom},
	{"f", EntryRobotDrive, shapeContext},
	{"g", EntrySerialPort, shapeNone},
	{"h", EntryServo, shapeSingle},
	{"i", EntrySolenoid, shapeSingle},
	{"j", EntrySPI, shapeSingle},
	{"k", EntryTask, shapeNone},
	{"l", EntryUltrasonic, shapeSingle},
	{"m", EntryVictor, shapeSingle},
	{"n", EntryButton, shapeNone},
	{"o", EntryCommand, shapeNone},
	{"p", EntryAxisCamera, shapeSingle},
	{"q", EntryPCVideoServer, shapeSingle},
	{"r", EntrySmartDashboard, shapeNone},
	{"s", EntryTalon, shapeSingle},
	{"t", EntryHiTechnicColorSensor, shapeNone},
	{"u", EntryHiTechnicAccel, shapeNone},
	{"v", EntryHiTechnicCompass, shapeNone},
	{"w", EntrySRF08, shapeSingle},
	{"x", EntryAnalogOutput, shapeNone},
	{"y", EntryVictorSP, shapeSingle},
	{"z", EntryPWMTalonSRX, shapeSingle},
	{">A", EntryCANTalonSRX, shapeSingle},
	{">B", EntryADXL362, shapeSingle},
	{">C", EntryADXRS450, shapeSingle},
	{">D", EntryRevSPARK, shapeSingle},
	{">E", EntryMindsensorsSD540, shapeSingle},
	{">F", EntryDigitalFilter, shapeSingle},
	{">G", EntryADIS16448, shapeNone},
	{">H", EntryPDP, shapeNone},
	{">I", EntryPCM, shapeNone},
	{">J", EntryPigeonIMU, shapeSingle},
	{">K", EntryNidecBrushless, shapeSingle},
	{">L", EntryCANifier, shapeSingle},
	{">M", EntryCTREFuture0, shapeSingle},
	{">N", EntryCTREFuture1, shapeSingle},
	{">O", EntryCTREFuture2, shapeSingle},
	{">P", EntryCTREFuture3, shapeSingle},
	{">Q", EntryCTREFuture4, shapeNone},
	{">R", EntryCTREFuture5, shapeNone},
	{">S", EntryCTREFuture6, shapeNone},
}

var (
	oneByteIndicators = map[byte]entryDescriptor{}
	twoByteIndicators = map[string]entryDescriptor{}
)

func init() {
	for _, d := range entryTable {
		if len(d.indicator) == 2 {
			twoByteIndicators[d.indicator] = d
		} else {
			oneByteIndicators[d.indicator[0]] = d
		}
	}
}

// ParseUsageReport scans buf left to right, matching the longest
// indicator prefix at each offset (two-byte ">X" escapes before
// single-byte ones). A byte that matches nothing is silently skipped —
// the wire format's intentional forward-compatibility quirk — and the
// scan resumes one byte later.
func ParseUsageReport(buf []byte) []Entry {
	var entries []Entry
	i := 0
	for i < len(buf) {
		if buf[i] == '>' && i+1 < len(buf) {
			if d, ok := twoByteIndicators[string(buf[i:i+2])]; ok {
				entry, consumed, ok := decodeEntry(d, buf[i+2:])
				if ok {
					entries = append(entries, entry)
					i += 2 + consumed
					continue
				}
			}
		}
		if d, ok := oneByteIndicators[buf[i]]; ok {
			entry, consumed, ok := decodeEntry(d, buf[i+1:])
			if ok {
				entries = append(entries, entry)
				i += 1 + consumed
				continue
			}
		}
		i++
	}
	return entries
}

// decodeEntry reads the operand bytes for d's shape from operand (the
// bytes immediately following the matched indicator) and reports how
// many bytes it consumed. ok is false if operand is too short for the
// shape, in which case the entry is dropped rather than misread.
func decodeEntry(d entryDescriptor, operand []byte) (Entry, int, bool) {
	switch d.shape {
	case shapeNone:
		return Entry{Kind: d.kind}, 0, true
	case shapeSingle:
		if len(operand) < 1 {
			return Entry{}, 0, false
		}
		return Entry{Kind: d.kind, Operand: operand[0]}, 1, true
	case shapeContext:
		if len(operand) < 2 {
			return Entry{}, 0, false
		}
		return Entry{Kind: d.kind, Instance: operand[0], Context: operand[1]}, 2, true
	case shapeCustom:
		if len(operand) < 1 {
			return Entry{}, 0, false
		}
		channel, reversable := decodeRelayOperand(operand[0])
		return Entry{
			Kind:       d.kind,
			Channel:    channel,
			Reversable: reversable,
		}, 1, true
	default:
		return Entry{}, 0, false
	}
}

// decodeRelayOperand decodes the Relay entry's custom operand byte.
// The top bit toggles reversable; when set, the channel is the low
// 7 bits plus one (0x83 decodes to channel 4, not 3) — a quirk of the
// reference protocol preserved intentionally. When the top bit is
// clear the byte is the channel directly.
func decodeRelayOperand(b byte) (channel uint8, reversable bool) {
	if b >= 0x80 {
		return b - 127, true
	}
	return b, false
}
