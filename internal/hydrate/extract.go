// Package hydrate recovers JSON poll arrays embedded in client-hydration
// script payloads, where the data exists as escaped JSON text rather than
// as rendered markup. It is a positional scanner, not an HTML or
// JavaScript parser: it finds anchor tokens, walks to the matching close
// bracket, and decodes the captured span.
package hydrate

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// DecodeError reports a span whose computed boundaries did not survive
// JSON parsing. A rejected span means the scanner's boundary was wrong for
// this document, so the error carries the offset and a snippet for
// diagnosis.
type DecodeError struct {
	Offset  int
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode array at offset %d (%q): %v", e.Offset, e.Snippet, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ExtractAll recovers every embedded polls array in document order and
// concatenates their records. Each iteration resumes searching at the end
// offset of the previous match, so the whole loop is linear in the
// document and always terminates. A scan or decode failure is fatal for
// the document: ExtractAll returns what was accumulated so far alongside
// the error, and the failing span contributes nothing.
//
// An empty result with a nil error means the document carries no hydration
// payload at all; callers should fall back to direct markup extraction.
func ExtractAll(text string) ([]Record, error) {
	var all []Record
	from := 0
	for {
		start, mode, ok := FindAnchor(text, from)
		if !ok {
			return all, nil
		}
		end, err := ScanArray(text, start, mode)
		if err != nil {
			return all, err
		}
		records, err := Decode(text[start:end], mode)
		if err != nil {
			return all, &DecodeError{Offset: start, Snippet: snippet(text[start:end]), Err: err}
		}
		log.Debug().
			Int("offset", start).
			Stringer("mode", mode).
			Int("records", len(records)).
			Msg("decoded embedded polls array")
		all = append(all, records...)
		from = end
	}
}

func snippet(s string) string {
	const max = 60
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
