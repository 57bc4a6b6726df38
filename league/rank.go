/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"slices"
)

// AssignRanks sets each standing's rank using standard competition ("1224")
// ranking and returns the standings in display order. Tied scores share the
// rank of the first team in the tie and the next score takes its position in
// the list. The caller's slice is left in its original order.
func AssignRanks(standings []*Standing) []*Standing {
	sorted := slices.Clone(standings)
	slices.SortStableFunc(sorted, CompareStandings)
	slices.Reverse(sorted)

	currentRank := 1
	var prev *Standing
	for _, s := range sorted {
		if prev != nil && prev.Score == s.Score {
			s.Rank = prev.Rank
		} else {
			s.Rank = currentRank
		}
		prev = s
		currentRank++
	}

	return sorted
}
