// Package table extracts poll rows directly from server-rendered markup.
// It is the fallback path for pages that render the table as real HTML
// instead of shipping it inside a hydration payload.
package table

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// ExtractPollTable finds the first table whose leading header cell reads
// "pollster" (case-insensitive) and returns its lower-cased header texts
// plus the body rows. Cells are whitespace-trimmed; single-cell rows, which
// the source uses as section separators, are skipped. A nil result with a
// nil error means no matching table exists in the document.
func ExtractPollTable(htmlText string) (headers []string, rows [][]string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}

	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		var hs []string
		tbl.Find("th").Each(func(_ int, th *goquery.Selection) {
			hs = append(hs, strings.ToLower(strings.TrimSpace(th.Text())))
		})
		if len(hs) == 0 || hs[0] != "pollster" {
			return true
		}
		log.Debug().Strs("headers", hs).Msg("found rendered poll table")

		var rs [][]string
		tbl.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) > 1 {
				rs = append(rs, cells)
			}
		})
		if len(rs) > 0 {
			headers = hs
			rows = rs
			return false
		}
		return true
	})
	return headers, rows, nil
}
