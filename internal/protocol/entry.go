package protocol

// EntryKind enumerates every subsystem the RoboRIO's usage report can
// name. The catalogue mirrors the FRC usage-report indicator alphabet
// in full (§ usage-report entry grammar).
type EntryKind uint8

const (
	EntryController EntryKind = iota
	EntryModule
	EntryLanguage
	EntryCANPlugin
	EntryAccelerometer
	EntryADXL345
	EntryAnalogChannel
	EntryAnalogTrigger
	EntryAnalogTriggerOutput
	EntryCANJaguar
	EntryCompressor
	EntryCounter
	EntryDashboard
	EntryDigitalInput
	EntryDigitalOutput
	EntryDriverStationCIO
	EntryDriverStationEIO
	EntryDriverStationLCD
	EntryEncoder
	EntryGearTooth
	EntryGyro
	EntryI2C
	EntryFramework
	EntryJaguar
	EntryJoystick
	EntryKinect
	EntryKinectStick
	EntryPIDController
	EntryPreferences
	EntryPWM
	EntryRelay
	EntryRobotDrive
	EntrySerialPort
	EntryServo
	EntrySolenoid
	EntrySPI
	EntryTask
	EntryUltrasonic
	EntryVictor
	EntryButton
	EntryCommand
	EntryAxisCamera
	EntryPCVideoServer
	EntrySmartDashboard
	EntryTalon
	EntryHiTechnicColorSensor
	EntryHiTechnicAccel
	EntryHiTechnicCompass
	EntrySRF08
	EntryAnalogOutput
	EntryVictorSP
	EntryPWMTalonSRX
	EntryCANTalonSRX
	EntryADXL362
	EntryADXRS450
	EntryRevSPARK
	EntryMindsensorsSD540
	EntryDigitalFilter
	EntryADIS16448
	EntryPDP
	EntryPCM
	EntryPigeonIMU
	EntryNidecBrushless
	EntryCANifier
	EntryCTREFuture0
	EntryCTREFuture1
	EntryCTREFuture2
	EntryCTREFuture3
	EntryCTREFuture4
	EntryCTREFuture5
	EntryCTREFuture6
)

// Language is the reported robot-code language (single-operand decode).
type Language uint8

const (
	LanguageLabVIEW Language = iota + 1
	LanguageCpp
	LanguageJava
	LanguagePython
	LanguageDotNet
)

func languageFromByte(b uint8) Language {
	switch b {
	case 1:
		return LanguageLabVIEW
	case 2:
		return LanguageCpp
	case 3:
		return LanguageJava
	case 4:
		return LanguagePython
	default:
		return LanguageDotNet
	}
}

// Trigger is the AnalogTriggerOutput context value.
type Trigger uint8

const (
	TriggerInWindow Trigger = iota
	TriggerState
	TriggerRisingPulse
	TriggerFallingPulse
)

func triggerFromByte(b uint8) Trigger {
	switch b {
	case 0:
		return TriggerInWindow
	case 1:
		return TriggerState
	case 2:
		return TriggerRisingPulse
	default:
		return TriggerFallingPulse
	}
}

// CounterMode is the Counter context value.
type CounterMode uint8

const (
	CounterTwoPulse CounterMode = iota
	CounterSemiperiod
	CounterPulseLength
	CounterExternalDirection
)

func counterModeFromByte(b uint8) CounterMode {
	switch b {
	case 0:
		return CounterTwoPulse
	case 1:
		return CounterSemiperiod
	case 2:
		return CounterPulseLength
	default:
		return CounterExternalDirection
	}
}

// Framework is the reported control-framework value.
type Framework uint8

const (
	FrameworkIterative Framework = iota + 1
	FrameworkSimple
	FrameworkCommandControl
)

func frameworkFromByte(b uint8) Framework {
	switch b {
	case 1:
		return FrameworkIterative
	case 2:
		return FrameworkSimple
	default:
		return FrameworkCommandControl
	}
}

// DriveType is the RobotDrive context value. Canonical mapping is the
// sequential 1..6 assignment (spec.md §9 REDESIGN resolution): the
// reference's MecanumPolar=55 typo is not reproduced.
type DriveType uint8

const (
	DriveArcadeStandard DriveType = iota + 1
	DriveArcadeButtonSpin
	DriveArcadeRatioCurve
	DriveTank
	DriveMecanumPolar
	DriveMecanumCartesian
)

func driveTypeFromByte(b uint8) DriveType {
	switch b {
	case 1:
		return DriveArcadeStandard
	case 2:
		return DriveArcadeButtonSpin
	case 3:
		return DriveArcadeRatioCurve
	case 4:
		return DriveTank
	case 5:
		return DriveMecanumPolar
	default:
		return DriveMecanumCartesian
	}
}

// SPIPort is the ADXL362/ADXRS450 single-operand decode.
type SPIPort uint8

const (
	SPIOnboardCS0 SPIPort = iota
	SPIOnboardCS1
	SPIOnboardCS2
	SPIOnboardCS3
	SPIMXP
)

func spiPortFromByte(b uint8) SPIPort {
	switch b {
	case 0:
		return SPIOnboardCS0
	case 1:
		return SPIOnboardCS1
	case 2:
		return SPIOnboardCS2
	case 3:
		return SPIOnboardCS3
	default:
		return SPIMXP
	}
}

// ADXL345Interface is the ADXL345 single-operand decode.
type ADXL345Interface uint8

const (
	ADXL345SPI ADXL345Interface = iota + 1
	ADXL345I2C
)

func adxl345FromByte(b uint8) ADXL345Interface {
	if b == 1 {
		return ADXL345SPI
	}
	return ADXL345I2C
}

// Encoding is the Encoder context value.
type Encoding uint8

const (
	EncodingX1 Encoding = iota
	EncodingX2
	EncodingX4
)

func encodingFromByte(b uint8) Encoding {
	switch b {
	case 0:
		return EncodingX1
	case 1:
		return EncodingX2
	default:
		return EncodingX4
	}
}

// Entry is one decoded usage-report record. Only the fields relevant to
// the entry's shape are populated; callers switch on Kind.
type Entry struct {
	Kind EntryKind

	// Operand is the raw single-operand byte (shapeSingle). Entries that
	// carry an enum (Language, Framework, ADXL345Interface, SPIPort) keep
	// the raw byte here; the matching method decodes it.
	Operand uint8

	// Instance and Context hold the two bytes of a shapeContext entry.
	Instance uint8
	Context  uint8

	// Channel and Reversable decode EntryRelay's custom operand byte; see
	// decodeRelayOperand for the exact (non-obvious) bit arithmetic.
	Channel    uint8
	Reversable bool
}

// Language decodes Operand for an EntryLanguage entry.
func (e Entry) Language() Language { return languageFromByte(e.Operand) }

// Trigger decodes Context for an EntryAnalogTriggerOutput entry.
func (e Entry) Trigger() Trigger { return triggerFromByte(e.Context) }

// CounterMode decodes Context for an EntryCounter entry.
func (e Entry) CounterMode() CounterMode { return counterModeFromByte(e.Context) }

// Framework decodes Operand for an EntryFramework entry.
func (e Entry) Framework() Framework { return frameworkFromByte(e.Operand) }

// DriveType decodes Context for an EntryRobotDrive entry.
func (e Entry) DriveType() DriveType { return driveTypeFromByte(e.Context) }

// SPIPort decodes Operand for an EntryADXL362 or EntryADXRS450 entry.
func (e Entry) SPIPort() SPIPort { return spiPortFromByte(e.Operand) }

// ADXL345Interface decodes Operand for an EntryADXL345 entry.
func (e Entry) ADXL345Interface() ADXL345Interface { return adxl345FromByte(e.Operand) }

// Encoding decodes Context for an EntryEncoder entry.
func (e Entry) Encoding() Encoding { return encodingFromByte(e.Context) }
