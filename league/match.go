/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"errors"
	"fmt"
	"time"
)

var ErrMalformedRecord = errors.New("malformed match record")

// MatchRecord is one played match between two teams.
type MatchRecord struct {
	TeamA  string
	ScoreA int
	TeamB  string
	ScoreB int

	// Played is zero when the source carries no date.
	Played time.Time
}

// Validate reports ErrMalformedRecord for an empty team name or a negative
// score.
func (m MatchRecord) Validate() error {
	if m.TeamA == "" || m.TeamB == "" {
		return fmt.Errorf("%w: empty team name", ErrMalformedRecord)
	}
	if m.ScoreA < 0 || m.ScoreB < 0 {
		return fmt.Errorf("%w: negative score in %v", ErrMalformedRecord, m)
	}

	return nil
}

// Outcomes returns the resolved outcome keyed by team name.
func (m MatchRecord) Outcomes() map[string]MatchOutcome {
	return Resolve(m.TeamA, m.ScoreA, m.TeamB, m.ScoreB)
}

func (m MatchRecord) String() string {
	return fmt.Sprintf("%s %d, %s %d", m.TeamA, m.ScoreA, m.TeamB, m.ScoreB)
}
