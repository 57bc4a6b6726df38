/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"cmp"
	"fmt"
)

// Standing is a team's accumulated score and assigned rank.
type Standing struct {
	TeamName string
	Score    int
	Rank     int
}

func newStanding(teamName string) *Standing {
	return &Standing{
		TeamName: teamName,
		Rank:     1,
	}
}

func (s *Standing) String() string {
	return fmt.Sprintf("%s: %d", s.TeamName, s.Score)
}

// CompareStandings orders by score ascending and, on equal score, by team
// name descending. Reading a slice sorted this way from the back gives the
// display order: score descending, name ascending.
func CompareStandings(a, b *Standing) int {
	if a.Score == b.Score {
		return cmp.Compare(b.TeamName, a.TeamName)
	}

	return cmp.Compare(a.Score, b.Score)
}
