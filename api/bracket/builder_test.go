package bracket

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inOrder leaves the entrant list untouched.
type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

func makeTeams(n int) []Team {
	teams := make([]Team, n)
	for i := range teams {
		name := string(rune('A' + i))
		if i >= 26 {
			name = fmt.Sprintf("T%d", i)
		}
		teams[i] = Team{ID: name, Name: "Team " + name}
	}
	return teams
}

func TestBuild_PowerOfTwoLayout(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32} {
		for seed := uint64(1); seed <= 10; seed++ {
			b, err := Build(makeTeams(n), NewRand(seed))
			require.NoError(t, err)

			require.Len(t, b, bits.Len(uint(n))-1, "n=%d", n)
			assert.Len(t, b[0], n/2)
			for r := 1; r < len(b); r++ {
				assert.Len(t, b[r], len(b[r-1])/2)
			}
			assert.Len(t, b[len(b)-1], 1)

			seen := map[string]bool{}
			for _, m := range b[0] {
				assert.False(t, m.Bye)
				require.NotNil(t, m.Team1)
				require.NotNil(t, m.Team2)
				seen[m.Team1.ID] = true
				seen[m.Team2.ID] = true
			}
			assert.Len(t, seen, n)
		}
	}
}

func TestBuild_FeedersComeFromPreviousRound(t *testing.T) {
	b, err := Build(makeTeams(16), NewRand(7))
	require.NoError(t, err)

	for r := 1; r < len(b); r++ {
		previous := map[string]bool{}
		for _, m := range b[r-1] {
			previous[m.ID] = true
		}
		for _, m := range b[r] {
			require.Len(t, m.PreviousMatches, 2)
			assert.True(t, previous[m.PreviousMatches[0]])
			assert.True(t, previous[m.PreviousMatches[1]])
			assert.Equal(t, r+1, m.Round)
		}
	}
	for _, m := range b[0] {
		assert.Empty(t, m.PreviousMatches)
		assert.Equal(t, 1, m.Round)
	}
}

func TestBuild_FourTeams(t *testing.T) {
	b, err := Build(makeTeams(4), inOrder{})
	require.NoError(t, err)
	require.Len(t, b, 2)

	require.Len(t, b[0], 2)
	assert.Equal(t, "R1M1", b[0][0].ID)
	assert.Equal(t, "A", b[0][0].Team1.ID)
	assert.Equal(t, "B", b[0][0].Team2.ID)
	assert.Equal(t, "C", b[0][1].Team1.ID)
	assert.Equal(t, "D", b[0][1].Team2.ID)

	require.Len(t, b[1], 1)
	final := b[1][0]
	assert.Equal(t, []string{"R1M1", "R1M2"}, final.PreviousMatches)
	assert.Nil(t, final.Team1)
	assert.Nil(t, final.Team2)
	assert.Nil(t, final.Winner)
}

func TestBuild_FiveTeamsGetByes(t *testing.T) {
	b, err := Build(makeTeams(5), inOrder{})
	require.NoError(t, err)
	require.Len(t, b, 3)
	require.Len(t, b[0], 4)

	played := b[0][0]
	assert.False(t, played.Bye)
	assert.Equal(t, "A", played.Team1.ID)
	assert.Equal(t, "B", played.Team2.ID)

	for i, id := range []string{"C", "D", "E"} {
		bye := b[0][i+1]
		assert.True(t, bye.Bye)
		assert.Equal(t, id, bye.Team1.ID)
		assert.Nil(t, bye.Team2)
		assert.Equal(t, id, bye.Winner.ID)
		assert.Nil(t, bye.Score1)
	}

	// C waits for the A-B winner; D and E meet straight away.
	assert.Nil(t, b[1][0].Team1)
	assert.Equal(t, "C", b[1][0].Team2.ID)
	assert.Equal(t, MatchReady, b[1][1].State())
	assert.Equal(t, "D", b[1][1].Team1.ID)
	assert.Equal(t, "E", b[1][1].Team2.ID)
}

func TestBuild_ByesSpreadAcrossSlots(t *testing.T) {
	b, err := Build(makeTeams(6), inOrder{})
	require.NoError(t, err)
	require.Len(t, b[0], 4)

	assert.False(t, b[0][0].Bye)
	assert.True(t, b[0][1].Bye)
	assert.False(t, b[0][2].Bye)
	assert.True(t, b[0][3].Bye)
}

func TestBuild_EveryTeamEntersOnce(t *testing.T) {
	for n := 2; n <= 33; n++ {
		b, err := Build(makeTeams(n), NewRand(uint64(n)))
		require.NoError(t, err)

		seen := map[string]int{}
		for _, m := range b[0] {
			if m.Team1 != nil {
				seen[m.Team1.ID]++
			}
			if m.Team2 != nil {
				seen[m.Team2.ID]++
			}
		}
		assert.Len(t, seen, n, "n=%d", n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "team %s in n=%d", id, n)
		}
		assert.NoError(t, b.Validate())
	}
}

func TestBuild_SeedIsReproducible(t *testing.T) {
	teams := makeTeams(8)

	first, err := Build(teams, NewRand(42))
	require.NoError(t, err)
	second, err := Build(teams, NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	orderings := map[string]bool{}
	for seed := uint64(0); seed < 20; seed++ {
		b, err := Build(teams, NewRand(seed))
		require.NoError(t, err)
		key := ""
		for _, m := range b[0] {
			key += m.Team1.ID + m.Team2.ID
		}
		orderings[key] = true
	}
	assert.Greater(t, len(orderings), 1)
}

func TestBuild_DoesNotReorderInput(t *testing.T) {
	teams := makeTeams(8)
	_, err := Build(teams, NewRand(3))
	require.NoError(t, err)
	assert.Equal(t, makeTeams(8), teams)
}

func TestBuild_Rejects(t *testing.T) {
	_, err := Build(nil, nil)
	assert.ErrorIs(t, err, ErrDegenerateBracket)

	_, err = Build(makeTeams(1), nil)
	assert.ErrorIs(t, err, ErrDegenerateBracket)

	dup := append(makeTeams(3), Team{ID: "A", Name: "Other A"})
	_, err = Build(dup, nil)
	assert.ErrorIs(t, err, ErrDuplicateTeam)
}

func TestBuild_NilShufflerUsesRandomSeed(t *testing.T) {
	b, err := Build(makeTeams(4), nil)
	require.NoError(t, err)
	assert.Len(t, b, 2)
}
