/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
)

// Registry accumulates one Standing per team name. It is not safe for
// concurrent use.
type Registry struct {
	scores    ScoreMap
	standings map[string]*Standing
}

// NewRegistry returns an empty registry scoring with a copy of scores, or
// with DefaultScoreMap when scores is nil.
func NewRegistry(scores ScoreMap) *Registry {
	if scores == nil {
		scores = DefaultScoreMap()
	} else {
		scores = scores.clone()
	}

	return &Registry{
		scores:    scores,
		standings: make(map[string]*Standing),
	}
}

// GetOrCreate returns the standing for teamName, registering a new one with
// score 0 and rank 1 on first reference.
func (r *Registry) GetOrCreate(teamName string) *Standing {
	s, ok := r.standings[teamName]
	if !ok {
		s = newStanding(teamName)
		r.standings[teamName] = s
	}

	return s
}

// AddOutcome adds the points for outcome to teamName's score. A score map
// without an entry for outcome fails the call before anything is created.
func (r *Registry) AddOutcome(teamName string, outcome MatchOutcome) error {
	pts, err := r.scores.Points(outcome)
	if err != nil {
		return fmt.Errorf("league.addoutcome: %v: %w", teamName, err)
	}
	r.GetOrCreate(teamName).Score += pts

	return nil
}

// AddMatch credits each named side with its team's outcome. Points for both
// sides are looked up before either standing changes. A team named on both
// sides is credited twice with the outcome Resolve keeps for it.
func (r *Registry) AddMatch(m MatchRecord) error {
	if err := m.Validate(); err != nil {
		return err
	}
	outcomes := m.Outcomes()
	ptsA, err := r.scores.Points(outcomes[m.TeamA])
	if err != nil {
		return fmt.Errorf("league.addmatch: %v: %w", m, err)
	}
	ptsB, err := r.scores.Points(outcomes[m.TeamB])
	if err != nil {
		return fmt.Errorf("league.addmatch: %v: %w", m, err)
	}

	r.GetOrCreate(m.TeamA).Score += ptsA
	r.GetOrCreate(m.TeamB).Score += ptsB

	return nil
}

// AllStandings returns every tracked standing in no particular order.
func (r *Registry) AllStandings() []*Standing {
	ret := make([]*Standing, 0, len(r.standings))
	for _, s := range r.standings {
		ret = append(ret, s)
	}

	return ret
}

func (r *Registry) Len() int {
	return len(r.standings)
}
