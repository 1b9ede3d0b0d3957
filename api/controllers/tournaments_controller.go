package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"Courtside/api/bracket"
	"Courtside/api/cache"
	"Courtside/api/models"
	"Courtside/api/responses"
	httpctx "Courtside/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

const tournamentCacheTTL = 5 * time.Minute

type tournamentCreateInput struct {
	Name    string   `json:"name"`
	Format  string   `json:"format"`
	TeamIDs []string `json:"team_ids"`
	Seed    *int64   `json:"seed"`
}

type tournamentUpdateInput struct {
	Name       *string   `json:"name"`
	Format     *string   `json:"format"`
	TeamIDs    *[]string `json:"team_ids"`
	Seed       *int64    `json:"seed"`
	Regenerate bool      `json:"regenerate"`
}

// requestedSeed picks the bracket seed from the body, then the
// X-Bracket-Seed header. ok is false when neither carries one.
func requestedSeed(c *gin.Context, body *int64) (seed int64, ok bool, err error) {
	if body != nil {
		if *body < 0 {
			return 0, false, httpctx.ErrInvalidSeed
		}
		return *body, true, nil
	}
	return httpctx.BracketSeed(c)
}

// loadEntrants resolves the tournament team list. ok is false once a
// response has been written.
func (s *Server) loadEntrants(c *gin.Context, ids []string) ([]models.Team, bool) {
	normalized, err := normalizeIdentifiers(ids)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return nil, false
	}

	seen := make(map[string]bool, len(normalized))
	for _, id := range normalized {
		if seen[id] {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": map[string]string{
				"Duplicate_team": "team listed twice",
			}})
			return nil, false
		}
		seen[id] = true
	}

	teams, err := models.FindTeamsByIDs(s.DB, normalized)
	if err != nil {
		respondLookupError(c, err, "Team")
		return nil, false
	}
	return teams, true
}

// CreateTournament godoc
// @Summary      Create a tournament
// @Description  Builds a single-elimination bracket from the listed teams
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        X-Bracket-Seed  header    int                    false  "Bracket seed"
// @Param        tournament      body      tournamentCreateInput  true   "Tournament payload"
// @Success      201             {object}  responses.TournamentResponse
// @Failure      400             {object}  map[string]string
// @Failure      404             {object}  map[string]string
// @Failure      422             {object}  map[string]string
// @Router       /tournaments [post]
func (s *Server) CreateTournament(c *gin.Context) {
	var input tournamentCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed, ok, err := requestedSeed(c, input.Seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bracket seed"})
		return
	}
	if !ok {
		seed = models.NewSeed()
	}

	teams, ok := s.loadEntrants(c, input.TeamIDs)
	if !ok {
		return
	}

	tournament := models.Tournament{
		Name:   input.Name,
		Format: input.Format,
		Teams:  teams,
		Seed:   seed,
	}
	tournament.Prepare()
	if errorMessages := tournament.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	if err := tournament.BuildBracket(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	created, err := tournament.SaveTournament(s.DB)
	if err != nil {
		log.Printf("[tournaments] create %q: %v", tournament.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tournament"})
		return
	}
	s.Metrics.bracketBuilt()
	invalidateTournamentCache(created.ID)

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": tournamentToResponse(created),
	})
}

func (s *Server) GetTournaments(c *gin.Context) {
	ctx := context.Background()
	if cached, err := cache.Get(ctx, tournamentListKey); err == nil && cached != "" {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	var tournament models.Tournament
	tournaments, err := tournament.FindAllTournaments(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tournaments"})
		return
	}

	out := make([]responses.TournamentSummaryResponse, 0, len(tournaments))
	for i := range tournaments {
		out = append(out, tournamentToSummary(&tournaments[i]))
	}

	respondCached(c, tournamentListKey, gin.H{
		"status":   http.StatusOK,
		"response": out,
	})
}

// GetTournament returns the tournament with its bracket laid out by round,
// each match carrying its derived status.
func (s *Server) GetTournament(c *gin.Context) {
	id, err := normalizeIdentifier(c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Tournament")
		return
	}

	ctx := context.Background()
	if cached, err := cache.Get(ctx, tournamentSummaryKey(id)); err == nil && cached != "" {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	tournament, err := resolveTournamentByIdentifier(s.DB, id)
	if err != nil {
		respondLookupError(c, err, "Tournament")
		return
	}

	respondCached(c, tournamentSummaryKey(id), gin.H{
		"status":   http.StatusOK,
		"response": tournamentToResponse(tournament),
	})
}

// UpdateTournament edits name and format. The bracket is rebuilt, dropping
// recorded results, only when the team list changes, a different seed is
// given or regenerate is set.
func (s *Server) UpdateTournament(c *gin.Context) {
	tournament, err := resolveTournamentByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Tournament")
		return
	}

	var input tournamentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed, hasSeed, err := requestedSeed(c, input.Seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bracket seed"})
		return
	}

	tournament.PrepareEdit(input.Name, input.Format)

	replaceTeams := false
	if input.TeamIDs != nil && !tournament.SameTeams(*input.TeamIDs) {
		teams, ok := s.loadEntrants(c, *input.TeamIDs)
		if !ok {
			return
		}
		tournament.Teams = teams
		replaceTeams = true
	}

	rebuild := replaceTeams || input.Regenerate || (hasSeed && seed != tournament.Seed)
	switch {
	case hasSeed:
		tournament.Seed = seed
	case input.Regenerate:
		tournament.Seed = models.NewSeed()
	}

	errorMessages := tournament.ValidateDetails()
	if rebuild {
		errorMessages = tournament.Validate()
	}
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	if rebuild {
		if err := tournament.BuildBracket(); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	updated, err := tournament.UpdateTournament(s.DB, replaceTeams)
	if err != nil {
		log.Printf("[tournaments] update %s: %v", tournament.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tournament"})
		return
	}
	if rebuild {
		s.Metrics.bracketBuilt()
	}
	invalidateTournamentCache(updated.ID)

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": tournamentToResponse(updated),
	})
}

func (s *Server) DeleteTournament(c *gin.Context) {
	tournament, err := resolveTournamentByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Tournament")
		return
	}

	if _, err := tournament.DeleteTournament(s.DB, tournament.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tournament"})
		return
	}
	invalidateTournamentCache(tournament.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted"})
}

// RecordMatchResult godoc
// @Summary      Record a match result
// @Description  Scores a match and advances the winner through the bracket
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        id        path      string       true  "Tournament ID"
// @Param        match_id  path      string       true  "Match ID"
// @Param        result    body      resultInput  true  "Scores"
// @Success      200       {object}  responses.TournamentResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /tournaments/{id}/matches/{match_id}/result [post]
func (s *Server) RecordMatchResult(c *gin.Context) {
	tournament, err := resolveTournamentByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Tournament")
		return
	}

	var input resultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wasCompleted := tournament.Status() == bracket.StatusCompleted
	if err := tournament.RecordResult(c.Param("match_id"), *input.Score1, *input.Score2); err != nil {
		s.Metrics.resultRecorded(resultOutcome(err))
		c.JSON(resultErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if err := tournament.SaveBracket(s.DB); err != nil {
		log.Printf("[tournaments] save bracket %s: %v", tournament.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result"})
		return
	}
	s.Metrics.resultRecorded("recorded")
	if !wasCompleted && tournament.Status() == bracket.StatusCompleted {
		s.Metrics.tournamentCompleted()
		log.Printf("[tournaments] %s completed, winner %s", tournament.ID, tournament.Winner().Name)
	}
	invalidateTournamentCache(tournament.ID)

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": tournamentToResponse(tournament),
	})
}

// respondCached writes body as JSON and stores it under key.
func respondCached(c *gin.Context, key string, body gin.H) {
	payload, err := json.Marshal(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
		return
	}
	if err := cache.Set(context.Background(), key, payload, tournamentCacheTTL); err != nil && !errors.Is(err, cache.ErrNotInitialized) {
		log.Printf("warning: cache set %s: %v", key, err)
	}
	c.Data(http.StatusOK, "application/json", payload)
}
