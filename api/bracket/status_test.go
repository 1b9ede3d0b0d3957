package bracket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Progression(t *testing.T) {
	var empty Bracket
	assert.Equal(t, StatusSetup, empty.Status())
	assert.Nil(t, empty.Winner())

	b := fourTeamBracket(t)
	assert.Equal(t, StatusNotStarted, b.Status())

	b, err := RecordResult(b, "R1M1", 25, 20)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, b.Status())
	decided, total := b.Progress()
	assert.Equal(t, 1, decided)
	assert.Equal(t, 3, total)
	assert.Nil(t, b.Winner())

	b, err = RecordResult(b, "R1M2", 25, 20)
	require.NoError(t, err)
	b, err = RecordResult(b, "R2M1", 25, 20)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, b.Status())
	assert.Equal(t, "A", b.Winner().ID)
}

func TestStatus_ByesAreNotPlayed(t *testing.T) {
	b, err := Build(makeTeams(5), inOrder{})
	require.NoError(t, err)

	assert.Equal(t, StatusNotStarted, b.Status())
	decided, total := b.Progress()
	assert.Equal(t, 0, decided)
	assert.Equal(t, 4, total)
}

func TestMatchState(t *testing.T) {
	a, c := &Team{ID: "a"}, &Team{ID: "c"}

	assert.Equal(t, MatchWaiting, Match{}.State())
	assert.Equal(t, MatchWaiting, Match{Team1: a}.State())
	assert.Equal(t, MatchReady, Match{Team1: a, Team2: c}.State())
	assert.Equal(t, MatchCompleted, Match{Team1: a, Team2: c, Winner: c}.State())
}

func TestRoundName(t *testing.T) {
	tests := []struct {
		index, total int
		want         string
	}{
		{0, 1, "Final"},
		{1, 2, "Final"},
		{0, 2, "Semi-Final"},
		{0, 3, "Quarter-Final"},
		{0, 4, "Round 1"},
		{1, 5, "Round 2"},
		{2, 5, "Quarter-Final"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundName(tt.index, tt.total), "index %d of %d", tt.index, tt.total)
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Bracket{}.Validate(), ErrMalformedBracket)

	b := fourTeamBracket(t)
	require.NoError(t, b.Validate())

	broken := b.Clone()
	broken[1][0].PreviousMatches = []string{"R1M1"}
	assert.ErrorIs(t, broken.Validate(), ErrMalformedBracket)

	broken = b.Clone()
	broken[0][1].ID = "R1M1"
	assert.ErrorIs(t, broken.Validate(), ErrMalformedBracket)

	broken = b.Clone()
	broken[0][0].Winner = &Team{ID: "B"}
	one, two := 25, 20
	broken[0][0].Score1, broken[0][0].Score2 = &one, &two
	assert.ErrorIs(t, broken.Validate(), ErrMalformedBracket)
}

func TestValidate_AcceptsStoredBracketWithoutByes(t *testing.T) {
	// Six teams stored before byes existed: the third first-round match
	// never fed anything.
	raw := `[
	  [
	    {"id":"match-1-0","round":1,"team1":{"id":"a","name":"Aces","players":[]},"team2":{"id":"b","name":"Blocks"},"winner":null,"score1":null,"score2":null},
	    {"id":"match-1-2","round":1,"team1":{"id":"c","name":"Cats"},"team2":{"id":"d","name":"Digs"},"winner":{"id":"d","name":"Digs"},"score1":19,"score2":25},
	    {"id":"match-1-4","round":1,"team1":{"id":"e","name":"Eagles"},"team2":{"id":"f","name":"Flyers"},"winner":null,"score1":null,"score2":null}
	  ],
	  [
	    {"id":"match-1-2-0","round":2,"team1":null,"team2":{"id":"d","name":"Digs"},"winner":null,"score1":null,"score2":null,"previousMatches":["match-1-0","match-1-2"]}
	  ]
	]`

	var b Bracket
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	require.NoError(t, b.Validate())

	b, err := RecordResult(b, "match-1-0", 25, 23)
	require.NoError(t, err)
	assert.Equal(t, "a", b[1][0].Team1.ID)
	assert.Equal(t, MatchReady, b[1][0].State())
}
