package protocol

// GameData holds up to three ASCII bytes of FMS-supplied game-specific
// data. A nil-length slice means "no game data set".
type GameData struct {
	bytes []byte
}

// NewGameData builds a GameData from up to three bytes; extra bytes are
// ignored.
func NewGameData(b []byte) GameData {
	if len(b) > 3 {
		b = b[:3]
	}
	gd := GameData{bytes: make([]byte, len(b))}
	copy(gd.bytes, b)
	return gd
}

// Len returns the number of present bytes (0..3).
func (g GameData) Len() uint8 { return uint8(len(g.bytes)) }

// Bytes returns the present prefix.
func (g GameData) Bytes() []byte { return g.bytes }

// Empty reports whether no game-data bytes are set.
func (g GameData) Empty() bool { return len(g.bytes) == 0 }
