package controllers

import (
	"math"

	"Courtside/api/bracket"
	"Courtside/api/models"
	"Courtside/api/responses"
)

func playerToDTO(player *models.Player) PlayerDTO {
	return PlayerDTO{
		ID:         player.ID,
		Name:       player.Name,
		SkillLevel: player.SkillLevel,
		SkillLabel: models.SkillLevelLabel(player.SkillLevel),
		Position:   player.Position,
		Email:      player.Email,
		Phone:      player.Phone,
		CreatedAt:  player.CreatedAt,
		UpdatedAt:  player.UpdatedAt,
	}
}

func playersToDTO(players []models.Player) []PlayerDTO {
	out := make([]PlayerDTO, 0, len(players))
	for i := range players {
		out = append(out, playerToDTO(&players[i]))
	}
	return out
}

func teamToDTO(team *models.Team) TeamDTO {
	return TeamDTO{
		ID:           team.ID,
		Name:         team.Name,
		Players:      playersToDTO(team.Players),
		AverageSkill: math.Round(team.AverageSkill()*10) / 10,
		CreatedAt:    team.CreatedAt,
		UpdatedAt:    team.UpdatedAt,
	}
}

func courtToDTO(court *models.Court) CourtDTO {
	return CourtDTO{
		ID:        court.ID,
		Name:      court.Name,
		Location:  court.Location,
		Surface:   court.Surface,
		Status:    court.Status,
		CreatedAt: court.CreatedAt,
		UpdatedAt: court.UpdatedAt,
	}
}

func teamRefToResponse(team *bracket.Team) *responses.TeamRefResponse {
	if team == nil {
		return nil
	}
	return &responses.TeamRefResponse{ID: team.ID, Name: team.Name}
}

func tournamentToSummary(t *models.Tournament) responses.TournamentSummaryResponse {
	decided, total := t.Bracket.Progress()
	return responses.TournamentSummaryResponse{
		ID:        t.ID,
		Name:      t.Name,
		Format:    t.Format,
		Status:    string(t.Status()),
		TeamCount: len(t.Teams),
		Winner:    teamRefToResponse(t.Winner()),
		Progress:  responses.ProgressResponse{Decided: decided, Total: total},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tournamentToResponse(t *models.Tournament) responses.TournamentResponse {
	teams := make([]responses.TeamRefResponse, 0, len(t.Teams))
	for i := range t.Teams {
		ref := t.Teams[i].Ref()
		teams = append(teams, *teamRefToResponse(&ref))
	}

	return responses.TournamentResponse{
		TournamentSummaryResponse: tournamentToSummary(t),
		Seed:                      t.Seed,
		Teams:                     teams,
		Rounds:                    bracketToRounds(t.Bracket),
	}
}

func bracketToRounds(b bracket.Bracket) []responses.RoundResponse {
	rounds := make([]responses.RoundResponse, 0, len(b))
	for i, round := range b {
		matches := make([]responses.MatchResponse, 0, len(round))
		for _, m := range round {
			matches = append(matches, matchToResponse(m))
		}
		rounds = append(rounds, responses.RoundResponse{
			Number:  i + 1,
			Name:    bracket.RoundName(i, len(b)),
			Matches: matches,
		})
	}
	return rounds
}

func matchToResponse(m bracket.Match) responses.MatchResponse {
	previous := m.PreviousMatches
	if previous == nil {
		previous = []string{}
	}
	return responses.MatchResponse{
		ID:              m.ID,
		Round:           m.Round,
		Team1:           teamRefToResponse(m.Team1),
		Team2:           teamRefToResponse(m.Team2),
		Score1:          m.Score1,
		Score2:          m.Score2,
		Winner:          teamRefToResponse(m.Winner),
		PreviousMatches: previous,
		Bye:             m.Bye,
		Status:          string(m.State()),
	}
}
