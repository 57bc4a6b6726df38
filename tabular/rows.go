/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeb26/leaguerank/internal"
	"github.com/mikeb26/leaguerank/league"
)

const (
	colTeamA = 0
	colTeamB = 1
	colDate  = 2
)

// ParseTeamScore splits a "Team Name 3" cell. The score is the last
// whitespace separated token and the name is everything before it, with runs
// of whitespace collapsed to one space.
func ParseTeamScore(cell string) (string, int, error) {
	fields := strings.Fields(cell)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("%w: %q needs a team name and a score",
			ErrMalformedRow, cell)
	}
	score, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q has non-integer score", ErrMalformedRow,
			cell)
	}
	if score < 0 {
		return "", 0, fmt.Errorf("%w: %q has negative score", ErrMalformedRow,
			cell)
	}

	return strings.Join(fields[:len(fields)-1], " "), score, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// recordsFromRows converts data rows (header already removed) into match
// records. firstRowNum is the 1-based source row of rows[0] and is only used
// in error messages.
func recordsFromRows(rows [][]string, firstRowNum int) ([]league.MatchRecord,
	error) {

	ret := make([]league.MatchRecord, 0, len(rows))
	for idx, cells := range rows {
		rowNum := firstRowNum + idx
		if isBlankRow(cells) {
			continue
		}
		if len(cells) <= colTeamB {
			return nil, fmt.Errorf("row %v: %w: want 2 teams, got %v cells",
				rowNum, ErrMalformedRow, len(cells))
		}

		var m league.MatchRecord
		var err error
		m.TeamA, m.ScoreA, err = ParseTeamScore(cells[colTeamA])
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", rowNum, err)
		}
		m.TeamB, m.ScoreB, err = ParseTeamScore(cells[colTeamB])
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", rowNum, err)
		}
		if len(cells) > colDate {
			m.Played, err = internal.ParseDateOrZero(cells[colDate])
			if err != nil {
				return nil, fmt.Errorf("row %v: %w: bad date %q: %v", rowNum,
					ErrMalformedRow, cells[colDate], err)
			}
		}
		ret = append(ret, m)
	}

	return ret, nil
}

// FormatPoints renders a score with its unit: "1 pt", otherwise "N pts".
func FormatPoints(score int) string {
	unit := "pts"
	if score == 1 {
		unit = "pt"
	}
	return fmt.Sprintf("%d %s", score, unit)
}

// standingsRows returns the header and one row per standing.
func standingsRows(standings []*league.Standing) [][]string {
	rows := make([][]string, 0, len(standings)+1)
	rows = append(rows, []string{"Place", "Team", "Score"})
	for _, s := range standings {
		rows = append(rows, []string{strconv.Itoa(s.Rank), s.TeamName,
			FormatPoints(s.Score)})
	}

	return rows
}
