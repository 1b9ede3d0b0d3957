package responses

import "time"

type TeamRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MatchResponse struct {
	ID              string           `json:"id"`
	Round           int              `json:"round"`
	Team1           *TeamRefResponse `json:"team1"`
	Team2           *TeamRefResponse `json:"team2"`
	Score1          *int             `json:"score1"`
	Score2          *int             `json:"score2"`
	Winner          *TeamRefResponse `json:"winner"`
	PreviousMatches []string         `json:"previous_matches"`
	Bye             bool             `json:"bye"`
	Status          string           `json:"status"`
}

type RoundResponse struct {
	Number  int             `json:"number"`
	Name    string          `json:"name"`
	Matches []MatchResponse `json:"matches"`
}

type ProgressResponse struct {
	Decided int `json:"decided"`
	Total   int `json:"total"`
}

// TournamentSummaryResponse is the list view of a tournament.
type TournamentSummaryResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Format    string           `json:"format"`
	Status    string           `json:"status"`
	TeamCount int              `json:"team_count"`
	Winner    *TeamRefResponse `json:"winner"`
	Progress  ProgressResponse `json:"progress"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TournamentResponse is the detail view with the full bracket.
type TournamentResponse struct {
	TournamentSummaryResponse
	Seed   int64             `json:"seed"`
	Teams  []TeamRefResponse `json:"teams"`
	Rounds []RoundResponse   `json:"rounds"`
}
