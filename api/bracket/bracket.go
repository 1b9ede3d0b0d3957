// Package bracket builds single-elimination brackets and records match
// results against them. Every operation takes a Bracket value and returns a
// new one; callers own storage of the current value.
package bracket

import "fmt"

// Team is a weak reference to a team record. Two references denote the same
// team when their IDs are equal, whatever the rest of the snapshot holds.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Is reports whether t and other refer to the same team.
func (t *Team) Is(other *Team) bool {
	if t == nil || other == nil {
		return false
	}
	return t.ID == other.ID
}

func (t *Team) clone() *Team {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Match is one contest of the bracket. Team slots of matches after round 1
// are derived from the winners of PreviousMatches and are never set directly.
type Match struct {
	ID              string   `json:"id"`
	Round           int      `json:"round"`
	Team1           *Team    `json:"team1"`
	Team2           *Team    `json:"team2"`
	Score1          *int     `json:"score1"`
	Score2          *int     `json:"score2"`
	Winner          *Team    `json:"winner"`
	PreviousMatches []string `json:"previousMatches,omitempty"`
	Bye             bool     `json:"bye,omitempty"`
}

func (m Match) clone() Match {
	c := m
	c.Team1 = m.Team1.clone()
	c.Team2 = m.Team2.clone()
	c.Winner = m.Winner.clone()
	c.Score1 = cloneInt(m.Score1)
	c.Score2 = cloneInt(m.Score2)
	if m.PreviousMatches != nil {
		c.PreviousMatches = append([]string(nil), m.PreviousMatches...)
	}
	return c
}

// Round is the set of matches played at the same depth, in bracket order.
type Round []Match

// Bracket is the ordered ladder of rounds, earliest first, ending in the final.
type Bracket []Round

// Clone returns a deep copy of b.
func (b Bracket) Clone() Bracket {
	if b == nil {
		return nil
	}
	out := make(Bracket, len(b))
	for r, round := range b {
		out[r] = make(Round, len(round))
		for i, m := range round {
			out[r][i] = m.clone()
		}
	}
	return out
}

// Matches flattens the bracket in round order.
func (b Bracket) Matches() []Match {
	var all []Match
	for _, round := range b {
		all = append(all, round...)
	}
	return all
}

// Match looks up a match by ID across every round.
func (b Bracket) Match(id string) (Match, bool) {
	if m := b.find(id); m != nil {
		return *m, true
	}
	return Match{}, false
}

func (b Bracket) find(id string) *Match {
	for r := range b {
		for i := range b[r] {
			if b[r][i].ID == id {
				return &b[r][i]
			}
		}
	}
	return nil
}

// feeds returns the match whose PreviousMatches reference id.
func (b Bracket) feeds(id string) *Match {
	for r := range b {
		for i := range b[r] {
			for _, prev := range b[r][i].PreviousMatches {
				if prev == id {
					return &b[r][i]
				}
			}
		}
	}
	return nil
}

func matchID(round, index int) string {
	return fmt.Sprintf("R%dM%d", round, index)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
