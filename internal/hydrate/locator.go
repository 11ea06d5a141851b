package hydrate

import "strings"

const (
	escapedAnchor   = `\"polls\":[`
	unescapedAnchor = `"polls":[`
)

// FindAnchor locates the next polls-array anchor at or after from and
// reports which escaping convention matched. The returned offset points at
// the array's opening bracket. The escaped form takes priority: the
// unescaped form is only consulted when no escaped anchor remains in the
// text. ok is false when neither form appears, which is the normal
// end-of-input signal rather than an error.
func FindAnchor(text string, from int) (arrayStart int, mode EscapingMode, ok bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(text) {
		return 0, Escaped, false
	}
	rest := text[from:]
	if i := strings.Index(rest, escapedAnchor); i >= 0 {
		return from + i + len(escapedAnchor) - 1, Escaped, true
	}
	if i := strings.Index(rest, unescapedAnchor); i >= 0 {
		return from + i + len(unescapedAnchor) - 1, Unescaped, true
	}
	return 0, Escaped, false
}
