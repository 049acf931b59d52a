package terminal

// Key is a logical key press understood by the selection widgets.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
)

// String returns a human-readable name for the key
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	default:
		return "other"
	}
}

const (
	byteESC = 0x1b
	byteCSI = '['
	byteSS3 = 'O'
)

// classifyByte maps a single byte that is not the start of an escape
// sequence.
func classifyByte(b byte) Key {
	switch b {
	case '\n', '\r':
		return KeyEnter
	case ' ':
		return KeySpace
	case 'k':
		return KeyUp
	case 'j':
		return KeyDown
	default:
		return KeyOther
	}
}

// classifySequence maps the final byte of an ESC [ or ESC O sequence.
func classifySequence(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	default:
		return KeyOther
	}
}
