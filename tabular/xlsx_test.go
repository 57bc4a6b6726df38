/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/leaguerank/league"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeXLSX(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Team A", "Team B"},
		{"Lions 3", "Snakes 3"},
		{"Tarantulas 1", "FC Awesome 0"},
	})

	got, err := DecodeXLSX(data)
	if err != nil {
		t.Fatalf("DecodeXLSX: %v", err)
	}
	want := []league.MatchRecord{
		{TeamA: "Lions", ScoreA: 3, TeamB: "Snakes", ScoreB: 3},
		{TeamA: "Tarantulas", ScoreA: 1, TeamB: "FC Awesome", ScoreB: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeXLSX mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeXLSXErrors(t *testing.T) {
	if _, err := DecodeXLSX([]byte("not a workbook")); err == nil {
		t.Errorf("expected error for non-XLSX data")
	}

	data := buildWorkbook(t, [][]any{
		{"Team A", "Team B"},
		{"Lions", "Snakes 3"},
	})
	if _, err := DecodeXLSX(data); !errors.Is(err, ErrMalformedRow) {
		t.Errorf("DecodeXLSX err = %v; want ErrMalformedRow", err)
	}
}

func TestEncodeXLSX(t *testing.T) {
	data, err := EncodeXLSX(sampleStandings())
	if err != nil {
		t.Fatalf("EncodeXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != standingsSheet {
		t.Fatalf("sheets = %v; want [%v]", sheets, standingsSheet)
	}
	rows, err := f.GetRows(standingsSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	want := [][]string{
		{"Place", "Team", "Score"},
		{"1", "Tarantulas", "6 pts"},
		{"2", "Lions", "5 pts"},
		{"3", "FC Awesome", "1 pt"},
		{"3", "Snakes", "1 pt"},
		{"5", "Grouches", "0 pts"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("EncodeXLSX rows mismatch (-want +got):\n%s", diff)
	}
}
