package hydrate

import (
	"strings"
	"testing"
)

func TestDecode_EscapedRoundTrip(t *testing.T) {
	// A synthetically escaped array of well-formed objects must decode to
	// the same objects with identical field values.
	plain := `[{"pollster":"Acme","value":45},{"pollster":"Beta","value":47.5}]`
	escaped := strings.ReplaceAll(strings.ReplaceAll(plain, `\`, `\\`), `"`, `\"`)

	records, err := Decode(escaped, Escaped)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["pollster"] != "Acme" || records[0]["value"] != float64(45) {
		t.Fatalf("unexpected first record: %v", records[0])
	}
	if records[1]["pollster"] != "Beta" || records[1]["value"] != 47.5 {
		t.Fatalf("unexpected second record: %v", records[1])
	}
}

func TestDecode_UnescapeOrder(t *testing.T) {
	// Content containing literal backslashes must survive un-escaping:
	// quote pairs collapse first, then backslash pairs, so \\ in content
	// cannot turn into a quote escape.
	span := `[{\"path\":\"C:\\\\temp\"}]`
	records, err := Decode(span, Escaped)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0]["path"]; got != `C:\temp` {
		t.Fatalf("unexpected path value %q", got)
	}
}

func TestDecode_FiltersNonObjects(t *testing.T) {
	// Hydration reference strings interleaved with records are dropped,
	// preserving the order of the surviving objects.
	span := `["$1f:2:props",{"pollster":"Acme"},"$L20",{"pollster":"Beta"},42]`
	records, err := Decode(span, Unescaped)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["pollster"] != "Acme" || records[1]["pollster"] != "Beta" {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	if _, err := Decode(`[{"pollster":]`, Unescaped); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	records, err := Decode(`[]`, Unescaped)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
