// Package normalize maps heterogeneous decoded poll records onto the fixed
// output schema consumed by the CSV writer and the chart renderer.
package normalize

import (
	"strconv"
	"strings"

	"github.com/pollwatch/pollscrape/internal/hydrate"
)

// Header is the fixed output column order.
var Header = []string{"pollster", "date", "sample", "approve", "disapprove", "spread"}

// Row is one poll flattened onto the output schema. Every field is text
// for CSV stability; fields absent from the source record are empty
// strings.
type Row struct {
	Pollster   string
	Date       string
	Sample     string
	Approve    string
	Disapprove string
	Spread     string
}

// Fields returns the row's values in Header order.
func (r Row) Fields() []string {
	return []string{r.Pollster, r.Date, r.Sample, r.Approve, r.Disapprove, r.Spread}
}

// Normalize maps records onto Rows. It is total: a record missing any
// field still yields a complete six-field row with empty strings in the
// gaps, and no input shape causes an error.
func Normalize(records []hydrate.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{
			Pollster: asText(rec["pollster"]),
			Date:     asText(rec["date"]),
			Sample:   asText(rec["sampleSize"]),
		}
		if row.Pollster == "" {
			row.Pollster = asText(rec["pollster_group_name"])
		}
		row.Approve, row.Disapprove = candidateValues(rec)
		row.Spread = spreadValue(rec)
		rows = append(rows, row)
	}
	return rows
}

// candidateValues reads the approve/disapprove columns from the record's
// candidate list. Matching is case-insensitive on the candidate name: a
// name containing "approve" but not "disapprove" feeds the approve column,
// a name containing "disapprove" feeds the disapprove column. The first
// match per column wins.
func candidateValues(rec hydrate.Record) (approve, disapprove string) {
	list, _ := rec["candidate"].([]any)
	var haveApprove, haveDisapprove bool
	for _, el := range list {
		cand, ok := el.(map[string]any)
		if !ok {
			continue
		}
		name := strings.ToLower(asText(cand["name"]))
		switch {
		case strings.Contains(name, "disapprove"):
			if !haveDisapprove {
				disapprove = asText(cand["value"])
				haveDisapprove = true
			}
		case strings.Contains(name, "approve"):
			if !haveApprove {
				approve = asText(cand["value"])
				haveApprove = true
			}
		}
	}
	return approve, disapprove
}

func spreadValue(rec hydrate.Record) string {
	if m, ok := rec["spread"].(map[string]any); ok {
		return asText(m["value"])
	}
	return ""
}

// asText renders a decoded JSON scalar as CSV-stable text. Numbers drop
// insignificant digits so a decoded 45 comes out as "45", not "45.000000".
func asText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
