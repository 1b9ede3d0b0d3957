package bracket

import "fmt"

// MatchState is the presentation state of a single match.
type MatchState string

const (
	MatchCompleted MatchState = "completed"
	MatchReady     MatchState = "ready"
	MatchWaiting   MatchState = "waiting"
)

// State derives the match state: decided matches are completed, matches with
// both teams known are ready, anything else waits.
func (m Match) State() MatchState {
	switch {
	case m.Winner != nil:
		return MatchCompleted
	case m.Team1 != nil && m.Team2 != nil:
		return MatchReady
	default:
		return MatchWaiting
	}
}

// Status is the tournament-level progress derived from a bracket.
type Status string

const (
	StatusSetup      Status = "setup"
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Status derives tournament progress. Byes are decided at build time and
// do not count as played.
func (b Bracket) Status() Status {
	if len(b.Matches()) == 0 {
		return StatusSetup
	}
	decided, total := b.Progress()
	switch {
	case decided == 0:
		return StatusNotStarted
	case decided == total:
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// Progress counts decided played matches against all played matches.
func (b Bracket) Progress() (decided, total int) {
	for _, m := range b.Matches() {
		if m.Bye {
			continue
		}
		total++
		if m.Winner != nil {
			decided++
		}
	}
	return decided, total
}

// Winner returns the champion once the final is decided.
func (b Bracket) Winner() *Team {
	if len(b) == 0 {
		return nil
	}
	final := b[len(b)-1]
	if len(final) != 1 {
		return nil
	}
	return final[0].Winner.clone()
}

// RoundName labels the round at zero-based index for display.
func RoundName(index, total int) string {
	switch {
	case total == 1, index == total-1:
		return "Final"
	case index == total-2:
		return "Semi-Final"
	case index == total-3:
		return "Quarter-Final"
	default:
		return fmt.Sprintf("Round %d", index+1)
	}
}
