package hydrate

// EscapingMode selects how string-literal boundaries are recognized while
// scanning an embedded array. Hydration payloads carry the same JSON in one
// of two conventions: as a quoted string inside a larger script payload, so
// every quote appears as the two-byte sequence \", or as plain JSON text
// with bare quotes. The convention is decided per anchor match, not per
// document.
type EscapingMode int

const (
	// Escaped means the blob is itself written as a JSON string value, so
	// string boundaries appear as \" pairs.
	Escaped EscapingMode = iota
	// Unescaped means the blob is plain JSON text.
	Unescaped
)

func (m EscapingMode) String() string {
	switch m {
	case Escaped:
		return "escaped"
	case Unescaped:
		return "unescaped"
	default:
		return "unknown"
	}
}
