/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/leaguerank/league"
)

const standingsSheet = "Standings"

// DecodeXLSX reads match records from the first sheet of a workbook laid out
// like the CSV input.
func DecodeXLSX(data []byte) ([]league.MatchRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []league.MatchRecord{}, nil
	}

	return recordsFromRows(rows[1:], 2)
}

// EncodeXLSX writes the standings to a single "Standings" sheet.
func EncodeXLSX(standings []*league.Standing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	for idx, row := range standingsRows(standings) {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		// keep places numeric so the sheet sorts properly
		if idx > 0 {
			values[0] = standings[idx-1].Rank
		}
		if err := f.SetSheetRow(standingsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %v: %w", idx+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write XLSX: %w", err)
	}

	return buf.Bytes(), nil
}
