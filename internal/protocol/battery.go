package protocol

// Battery is the two raw wire bytes of the battery-voltage field:
// integer volts in the high byte, fractional/256 in the low byte.
type Battery uint16

// BatteryFromBytes decodes the two big-endian bytes at the battery
// offset of a UDP response.
func BatteryFromBytes(hi, lo uint8) Battery {
	return Battery(uint16(hi)<<8 | uint16(lo))
}

// Voltage returns high_byte + low_byte/256, always >= 0.
func (b Battery) Voltage() float32 {
	hi := float32(b >> 8)
	lo := float32(b & 0xFF)
	return hi + lo/256.0
}

// Bytes returns the big-endian wire encoding.
func (b Battery) Bytes() [2]byte {
	return [2]byte{byte(b >> 8), byte(b)}
}
