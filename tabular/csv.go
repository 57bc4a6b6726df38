/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mikeb26/leaguerank/league"
)

// DecodeCSV reads match records from CSV data whose first row is a header.
func DecodeCSV(data []byte) ([]league.MatchRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return []league.MatchRecord{}, nil
	}

	return recordsFromRows(rows[1:], 2)
}

// EncodeCSV writes the Place,Team,Score header followed by one row per
// standing.
func EncodeCSV(standings []*league.Standing) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(standingsRows(standings)); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	return buf.Bytes(), nil
}
