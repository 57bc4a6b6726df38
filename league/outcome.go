/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

// MatchOutcome is a single team's result in a single match.
type MatchOutcome int

const (
	Win MatchOutcome = iota
	Tie
	Loss
)

func (o MatchOutcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Tie:
		return "TIE"
	case Loss:
		return "LOSS"
	default:
		return "?"
	}
}

// ResolveScores returns the outcome for side A and side B of a match.
func ResolveScores(scoreA, scoreB int) (MatchOutcome, MatchOutcome) {
	switch {
	case scoreA > scoreB:
		return Win, Loss
	case scoreB > scoreA:
		return Loss, Win
	default:
		return Tie, Tie
	}
}

// Resolve maps each team name to its outcome. When both names are equal the
// map holds a single entry with side B's outcome, and that is the outcome
// AddMatch applies to both sides.
func Resolve(teamA string, scoreA int, teamB string,
	scoreB int) map[string]MatchOutcome {

	a, b := ResolveScores(scoreA, scoreB)
	return map[string]MatchOutcome{
		teamA: a,
		teamB: b,
	}
}
