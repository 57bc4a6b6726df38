/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type row struct {
	Rank  int
	Team  string
	Score int
}

func toRows(standings []*Standing) []row {
	ret := make([]row, 0, len(standings))
	for _, s := range standings {
		ret = append(ret, row{Rank: s.Rank, Team: s.TeamName, Score: s.Score})
	}
	return ret
}

func TestCompareStandings(t *testing.T) {
	cases := []struct {
		name string
		a, b Standing
		want int
	}{
		{"lower score first", Standing{TeamName: "A", Score: 1},
			Standing{TeamName: "B", Score: 2}, -1},
		{"higher score last", Standing{TeamName: "A", Score: 5},
			Standing{TeamName: "B", Score: 2}, 1},
		{"equal score name descending", Standing{TeamName: "Beta", Score: 3},
			Standing{TeamName: "Alpha", Score: 3}, -1},
		{"equal score name descending reversed", Standing{TeamName: "Alpha",
			Score: 3}, Standing{TeamName: "Beta", Score: 3}, 1},
		{"identical", Standing{TeamName: "Alpha", Score: 3},
			Standing{TeamName: "Alpha", Score: 3}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CompareStandings(&c.a, &c.b); got != c.want {
				t.Errorf("CompareStandings(%v, %v) = %v; want %v", &c.a, &c.b,
					got, c.want)
			}
		})
	}
}

func TestAssignRanks(t *testing.T) {
	cases := []struct {
		name      string
		standings []*Standing
		want      []row
	}{
		{
			name: "ties consume positions",
			standings: []*Standing{
				{TeamName: "D", Score: 5},
				{TeamName: "B", Score: 10},
				{TeamName: "C", Score: 8},
				{TeamName: "A", Score: 10},
			},
			want: []row{{1, "A", 10}, {1, "B", 10}, {3, "C", 8}, {4, "D", 5}},
		},
		{
			name: "all tied",
			standings: []*Standing{
				{TeamName: "Gamma", Score: 5},
				{TeamName: "Alpha", Score: 5},
				{TeamName: "Beta", Score: 5},
			},
			want: []row{{1, "Alpha", 5}, {1, "Beta", 5}, {1, "Gamma", 5}},
		},
		{
			name: "tie in the middle",
			standings: []*Standing{
				{TeamName: "Grouches", Score: 0},
				{TeamName: "Snakes", Score: 1},
				{TeamName: "Tarantulas", Score: 6},
				{TeamName: "FC Awesome", Score: 1},
				{TeamName: "Lions", Score: 5},
			},
			want: []row{
				{1, "Tarantulas", 6},
				{2, "Lions", 5},
				{3, "FC Awesome", 1},
				{3, "Snakes", 1},
				{5, "Grouches", 0},
			},
		},
		{
			name:      "empty",
			standings: []*Standing{},
			want:      []row{},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AssignRanks(c.standings)
			if diff := cmp.Diff(c.want, toRows(got)); diff != "" {
				t.Errorf("AssignRanks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssignRanksLeavesInputOrder(t *testing.T) {
	in := []*Standing{
		{TeamName: "Low", Score: 1},
		{TeamName: "High", Score: 9},
	}
	AssignRanks(in)
	if in[0].TeamName != "Low" || in[1].TeamName != "High" {
		t.Errorf("AssignRanks reordered its input: %v", in)
	}
	if in[0].Rank != 2 || in[1].Rank != 1 {
		t.Errorf("ranks = %v,%v; want 2,1", in[0].Rank, in[1].Rank)
	}
}

func TestAssignRanksIdempotent(t *testing.T) {
	standings := []*Standing{
		{TeamName: "A", Score: 4},
		{TeamName: "B", Score: 4},
		{TeamName: "C", Score: 2},
		{TeamName: "D", Score: 7},
	}
	first := toRows(AssignRanks(standings))
	second := toRows(AssignRanks(AssignRanks(standings)))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass changed the ranking (-first +second):\n%s", diff)
	}
}

func randomMatches(rng *rand.Rand, teams []string, n int) []MatchRecord {
	ret := make([]MatchRecord, 0, n)
	for i := 0; i < n; i++ {
		a := teams[rng.Intn(len(teams))]
		b := teams[rng.Intn(len(teams))]
		ret = append(ret, MatchRecord{TeamA: a, ScoreA: rng.Intn(5), TeamB: b,
			ScoreB: rng.Intn(5)})
	}
	return ret
}

func TestRankProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1224))
	teams := []string{"Lions", "Snakes", "Tarantulas", "FC Awesome",
		"Grouches", "Bears", "Otters"}

	for iter := 0; iter < 50; iter++ {
		matches := randomMatches(rng, teams, 1+rng.Intn(30))
		ranked, err := Compute(matches, nil)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		for i, s := range ranked {
			if s.Rank > len(ranked) {
				t.Fatalf("rank %v exceeds standings count %v", s.Rank,
					len(ranked))
			}
			if i == 0 {
				if s.Rank != 1 {
					t.Fatalf("leader rank = %v; want 1", s.Rank)
				}
				continue
			}
			prev := ranked[i-1]
			if s.Rank < prev.Rank {
				t.Fatalf("ranks decrease at %v: %v after %v", i, s, prev)
			}
			if s.Score > prev.Score {
				t.Fatalf("scores increase at %v: %v after %v", i, s, prev)
			}
			if s.Score == prev.Score && (s.Rank != prev.Rank ||
				s.TeamName < prev.TeamName) {
				t.Fatalf("tie not grouped at %v: %v after %v", i, s, prev)
			}
			if s.Score != prev.Score && s.Rank != i+1 {
				t.Fatalf("rank at position %v = %v; want %v", i, s.Rank, i+1)
			}
		}

		shuffled := slices.Clone(matches)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		reranked, err := Compute(shuffled, nil)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		if diff := cmp.Diff(toRows(ranked), toRows(reranked)); diff != "" {
			t.Fatalf("match order changed the result (-orig +shuffled):\n%s",
				diff)
		}
	}
}
