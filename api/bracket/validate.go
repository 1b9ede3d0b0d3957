package bracket

import "fmt"

// Validate checks the structural invariants of a stored bracket: unique
// match IDs, round numbering, two feeders from the preceding round for every
// match after round 1, a single final, and winners consistent with scores.
// Brackets written before byes existed (trailing matches dropped) pass.
func (b Bracket) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("%w: no rounds", ErrMalformedBracket)
	}

	roundOf := make(map[string]int)
	for r, round := range b {
		if len(round) == 0 {
			return fmt.Errorf("%w: round %d is empty", ErrMalformedBracket, r+1)
		}
		for _, m := range round {
			if m.ID == "" {
				return fmt.Errorf("%w: match without id in round %d", ErrMalformedBracket, r+1)
			}
			if _, dup := roundOf[m.ID]; dup {
				return fmt.Errorf("%w: duplicate match id %q", ErrMalformedBracket, m.ID)
			}
			if m.Round != r+1 {
				return fmt.Errorf("%w: match %q has round %d, stored in round %d", ErrMalformedBracket, m.ID, m.Round, r+1)
			}
			roundOf[m.ID] = r + 1
		}
	}

	if len(b[len(b)-1]) != 1 {
		return fmt.Errorf("%w: last round has %d matches", ErrMalformedBracket, len(b[len(b)-1]))
	}

	for r, round := range b {
		for _, m := range round {
			if err := validateMatch(m, r+1, roundOf); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateMatch(m Match, round int, roundOf map[string]int) error {
	if round == 1 && len(m.PreviousMatches) != 0 {
		return fmt.Errorf("%w: first-round match %q has feeders", ErrMalformedBracket, m.ID)
	}
	if round > 1 {
		if len(m.PreviousMatches) != 2 {
			return fmt.Errorf("%w: match %q has %d feeders", ErrMalformedBracket, m.ID, len(m.PreviousMatches))
		}
		for _, prev := range m.PreviousMatches {
			if roundOf[prev] != round-1 {
				return fmt.Errorf("%w: match %q is fed by %q outside round %d", ErrMalformedBracket, m.ID, prev, round-1)
			}
		}
	}

	if m.Winner == nil {
		return nil
	}
	if m.Bye {
		if !m.Winner.Is(m.Team1) {
			return fmt.Errorf("%w: bye %q won by another team", ErrMalformedBracket, m.ID)
		}
		return nil
	}
	if m.Score1 == nil || m.Score2 == nil || *m.Score1 == *m.Score2 {
		return fmt.Errorf("%w: match %q decided without a valid score", ErrMalformedBracket, m.ID)
	}
	expected := m.Team1
	if *m.Score2 > *m.Score1 {
		expected = m.Team2
	}
	if !m.Winner.Is(expected) {
		return fmt.Errorf("%w: match %q winner does not match its score", ErrMalformedBracket, m.ID)
	}
	return nil
}
