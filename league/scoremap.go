/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"errors"
	"fmt"
	"maps"
)

var ErrIncompleteScoreMap = errors.New("incomplete score map")

const (
	DefaultWinPoints  = 3
	DefaultTiePoints  = 1
	DefaultLossPoints = 0
)

// ScoreMap assigns league points to each match outcome. Treat it as
// read-only once handed to a Registry.
type ScoreMap map[MatchOutcome]int

// DefaultScoreMap returns a fresh copy of the 3/1/0 table.
func DefaultScoreMap() ScoreMap {
	return ScoreMap{
		Win:  DefaultWinPoints,
		Tie:  DefaultTiePoints,
		Loss: DefaultLossPoints,
	}
}

// Points returns the value for outcome or ErrIncompleteScoreMap.
func (sm ScoreMap) Points(outcome MatchOutcome) (int, error) {
	pts, ok := sm[outcome]
	if !ok {
		return 0, fmt.Errorf("%w: no points for %v", ErrIncompleteScoreMap,
			outcome)
	}

	return pts, nil
}

// Validate checks that every outcome has a point value.
func (sm ScoreMap) Validate() error {
	for _, o := range []MatchOutcome{Win, Tie, Loss} {
		if _, err := sm.Points(o); err != nil {
			return err
		}
	}

	return nil
}

func (sm ScoreMap) clone() ScoreMap {
	return maps.Clone(sm)
}
