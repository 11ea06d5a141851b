package hydrate

import (
	"errors"
	"testing"
)

const samplePayload = `\"polls\":[{\"pollster\":\"Acme\",\"date\":\"2024-01-01\",\"sampleSize\":500,\"candidate\":[{\"name\":\"Approve\",\"value\":45},{\"name\":\"Disapprove\",\"value\":50}],\"spread\":{\"value\":-5}}]`

func TestExtractAll_SingleEscapedArray(t *testing.T) {
	text := `<html><script>self.__next_f.push([1,"` + samplePayload + `"])</script></html>`
	records, err := ExtractAll(text)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec["pollster"] != "Acme" || rec["date"] != "2024-01-01" || rec["sampleSize"] != float64(500) {
		t.Fatalf("unexpected record: %v", rec)
	}
	candidates, ok := rec["candidate"].([]any)
	if !ok || len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %v", rec["candidate"])
	}
	spread, ok := rec["spread"].(map[string]any)
	if !ok || spread["value"] != float64(-5) {
		t.Fatalf("unexpected spread: %v", rec["spread"])
	}
}

func TestExtractAll_MultipleArraysInDocumentOrder(t *testing.T) {
	text := `prefix "polls":[{"pollster":"First"},{"pollster":"Second"}] middle ` +
		`"polls":[{"pollster":"Third"}] suffix`
	records, err := ExtractAll(text)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, name := range want {
		if records[i]["pollster"] != name {
			t.Fatalf("record %d: expected %q, got %v", i, name, records[i]["pollster"])
		}
	}
}

func TestExtractAll_MixedModes(t *testing.T) {
	// Escaped anchors are exhausted before the unescaped form is tried, so
	// a document carrying both still yields all records.
	text := `a \"polls\":[{\"pollster\":\"Esc\"}] b "polls":[{"pollster":"Plain"}] c`
	records, err := ExtractAll(text)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["pollster"] != "Esc" || records[1]["pollster"] != "Plain" {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestExtractAll_NoAnchors(t *testing.T) {
	records, err := ExtractAll("<html><body><p>static page</p></body></html>")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestExtractAll_TruncatedArrayKeepsEarlierRecords(t *testing.T) {
	text := `"polls":[{"pollster":"Acme"}] then "polls":[{"pollster":"Broken"`
	records, err := ExtractAll(text)
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}
	if len(records) != 1 || records[0]["pollster"] != "Acme" {
		t.Fatalf("expected the first array's records to survive, got %v", records)
	}
}
