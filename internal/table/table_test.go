package table

import (
	"reflect"
	"testing"
)

const renderedPage = `<!doctype html>
<html><body>
<table>
  <thead><tr><th>Rank</th><th>Team</th></tr></thead>
  <tbody><tr><td>1</td><td>Acme</td></tr></tbody>
</table>
<table>
  <thead><tr><th>Pollster</th><th>Date</th><th>Approve</th></tr></thead>
  <tbody>
    <tr><td>Acme</td><td>2024-01-01</td><td>45</td></tr>
    <tr><td>Spacer</td></tr>
    <tr><td> Beta </td><td>2024-01-02</td><td>47</td></tr>
  </tbody>
</table>
</body></html>`

func TestExtractPollTable_FindsPollsterTable(t *testing.T) {
	headers, rows, err := ExtractPollTable(renderedPage)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if !reflect.DeepEqual(headers, []string{"pollster", "date", "approve"}) {
		t.Fatalf("unexpected headers %v", headers)
	}
	// The single-cell separator row is dropped and cell text is trimmed.
	want := [][]string{
		{"Acme", "2024-01-01", "45"},
		{"Beta", "2024-01-02", "47"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestExtractPollTable_HeaderCaseInsensitive(t *testing.T) {
	page := `<table><thead><tr><th>POLLSTER</th><th>Date</th></tr></thead>
<tbody><tr><td>Acme</td><td>2024-01-01</td></tr></tbody></table>`
	headers, rows, err := ExtractPollTable(page)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(headers) != 2 || headers[0] != "pollster" {
		t.Fatalf("unexpected headers %v", headers)
	}
	if len(rows) != 1 {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestExtractPollTable_NoMatchingTable(t *testing.T) {
	headers, rows, err := ExtractPollTable(`<table><thead><tr><th>Name</th><th>Score</th></tr></thead>
<tbody><tr><td>a</td><td>1</td></tr></tbody></table>`)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if headers != nil || rows != nil {
		t.Fatalf("expected no match, got %v %v", headers, rows)
	}
}
