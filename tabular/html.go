/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/leaguerank/league"
)

// DecodeHTML reads match records from the first <table> in an HTML results
// page. Rows made only of <th> cells are headers and are skipped.
func DecodeHTML(data []byte) ([]league.MatchRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no <table> found", ErrMalformedRow)
	}

	var records []league.MatchRecord
	var rowErr error
	table.Find("tr").EachWithBreak(func(idx int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return true
		}
		cells := make([]string, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		recs, err := recordsFromRows([][]string{cells}, idx+1)
		if err != nil {
			rowErr = err
			return false
		}
		records = append(records, recs...)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if records == nil {
		records = []league.MatchRecord{}
	}

	return records, nil
}
