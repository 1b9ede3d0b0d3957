package bracket

import "fmt"

// RecordResult stores the score of match matchID and re-derives every later
// round. It returns a new Bracket; b is never modified, and on error the
// caller's value stays authoritative.
//
// A match may be rescored. A rescore that changes the winner is refused with
// ErrResultLocked once the match it feeds has been decided, since recorded
// winners are never cleared.
func RecordResult(b Bracket, matchID string, score1, score2 int) (Bracket, error) {
	if score1 < 0 || score2 < 0 {
		return nil, fmt.Errorf("%w: scores must not be negative (%d-%d)", ErrInvalidResult, score1, score2)
	}
	if score1 == score2 {
		return nil, fmt.Errorf("%w: %d-%d is a tie", ErrInvalidResult, score1, score2)
	}

	out := b.Clone()
	propagate(out)

	m := out.find(matchID)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatch, matchID)
	}
	if m.Bye {
		return nil, fmt.Errorf("%w: %q", ErrByeMatch, matchID)
	}
	if m.Team1 == nil || m.Team2 == nil {
		return nil, fmt.Errorf("%w: %q", ErrMatchNotReady, matchID)
	}

	winner := m.Team1
	if score2 > score1 {
		winner = m.Team2
	}
	if m.Winner != nil && !m.Winner.Is(winner) {
		if next := out.feeds(matchID); next != nil && next.Winner != nil {
			return nil, fmt.Errorf("%w: %q feeds decided match %q", ErrResultLocked, matchID, next.ID)
		}
	}

	m.Score1 = &score1
	m.Score2 = &score2
	m.Winner = winner.clone()

	propagate(out)
	return out, nil
}

// propagate rewrites the team slots of every match after round 1 from the
// winners of its PreviousMatches, resolved against the whole bracket.
func propagate(b Bracket) {
	byID := make(map[string]*Match)
	for r := range b {
		for i := range b[r] {
			byID[b[r][i].ID] = &b[r][i]
		}
	}

	winnerOf := func(id string) *Team {
		if src, ok := byID[id]; ok {
			return src.Winner.clone()
		}
		return nil
	}

	for r := 1; r < len(b); r++ {
		for i := range b[r] {
			m := &b[r][i]
			if len(m.PreviousMatches) != 2 {
				continue
			}
			m.Team1 = winnerOf(m.PreviousMatches[0])
			m.Team2 = winnerOf(m.PreviousMatches[1])
		}
	}
}
