/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package league scores match results and ranks the teams of a single
// league.
package league

import (
	"fmt"
	"time"
)

// Compute accumulates every record with scores (nil for the default table)
// and returns the ranked standings. It stops at the first bad record.
func Compute(records []MatchRecord, scores ScoreMap) ([]*Standing, error) {
	reg := NewRegistry(scores)
	for idx, m := range records {
		if err := reg.AddMatch(m); err != nil {
			return nil, fmt.Errorf("record %v: %w", idx+1, err)
		}
	}

	return AssignRanks(reg.AllStandings()), nil
}

// FilterPlayed keeps records played within [since, until]. A zero bound is
// open and undated records are always kept.
func FilterPlayed(records []MatchRecord, since, until time.Time) []MatchRecord {
	if since.IsZero() && until.IsZero() {
		return records
	}

	ret := make([]MatchRecord, 0, len(records))
	for _, m := range records {
		if !m.Played.IsZero() {
			if !since.IsZero() && m.Played.Before(since) {
				continue
			}
			if !until.IsZero() && m.Played.After(until) {
				continue
			}
		}
		ret = append(ret, m)
	}

	return ret
}
