package bracket

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is the fixed PCG stream selector; only the seed varies.
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a PCG generator for seed. The same seed always produces
// the same bracket for the same team list.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// RandomSeed returns a fresh seed from the runtime's randomly seeded source.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// Build lays out a single-elimination bracket for teams.
//
// Teams are shuffled with rng, then paired in order. When the
// entrant count is not a power of two it is padded to the next one with
// byes: round 1 holds len(teams)-size/2 played matches and size-len(teams)
// bye matches, interleaved so a bye winner meets a match winner where
// possible. A bye match carries its team in Team1 and is already won by it.
// Every later round halves the previous one and each of its matches is fed
// by two matches of the round before.
//
// A nil rng is replaced by a generator seeded from RandomSeed.
func Build(teams []Team, rng Shuffler) (Bracket, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateBracket, len(teams))
	}
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if rng == nil {
		rng = NewRand(RandomSeed())
	}

	entrants := make([]Team, len(teams))
	copy(entrants, teams)
	rng.Shuffle(len(entrants), func(i, j int) {
		entrants[i], entrants[j] = entrants[j], entrants[i]
	})

	size := 1
	for size < len(entrants) {
		size <<= 1
	}

	first := firstRound(entrants, size)
	b := Bracket{first}
	for current, round := first, 2; len(current) > 1; round++ {
		next := make(Round, 0, len(current)/2)
		for i := 0; i+1 < len(current); i += 2 {
			next = append(next, Match{
				ID:              matchID(round, len(next)+1),
				Round:           round,
				PreviousMatches: []string{current[i].ID, current[i+1].ID},
			})
		}
		b = append(b, next)
		current = next
	}

	propagate(b)
	return b, nil
}

func firstRound(entrants []Team, size int) Round {
	played := len(entrants) - size/2
	byes := entrants[2*played:]

	round := make(Round, 0, size/2)
	p, y := 0, 0
	for len(round) < size/2 {
		index := len(round) + 1
		takeBye := y < len(byes) && (p == played || len(round)%2 == 1)
		if takeBye {
			lone := byes[y]
			round = append(round, Match{
				ID:     matchID(1, index),
				Round:  1,
				Team1:  lone.clone(),
				Winner: lone.clone(),
				Bye:    true,
			})
			y++
			continue
		}
		round = append(round, Match{
			ID:    matchID(1, index),
			Round: 1,
			Team1: entrants[2*p].clone(),
			Team2: entrants[2*p+1].clone(),
		})
		p++
	}
	return round
}
