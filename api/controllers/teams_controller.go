package controllers

import (
	"errors"
	"net/http"

	"Courtside/api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type teamInput struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

// loadRoster resolves player IDs into players. ok is false once a response
// has been written.
func (s *Server) loadRoster(c *gin.Context, ids []string) ([]models.Player, bool) {
	normalized, err := normalizeIdentifiers(ids)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return nil, false
	}
	players, err := models.FindPlayersByIDs(s.DB, normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": map[string]string{
			"Unknown_player": "roster references a player that does not exist",
		}})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load players"})
		return nil, false
	}
	return players, true
}

func (s *Server) CreateTeam(c *gin.Context) {
	var input teamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, ok := s.loadRoster(c, input.PlayerIDs)
	if !ok {
		return
	}

	team := models.Team{Name: input.Name, Players: roster}
	team.Prepare()
	if errorMessages := team.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	created, err := team.SaveTeam(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": teamToDTO(created),
	})
}

func (s *Server) GetTeams(c *gin.Context) {
	var team models.Team
	teams, err := team.FindAllTeams(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load teams"})
		return
	}

	out := make([]TeamDTO, 0, len(teams))
	for i := range teams {
		out = append(out, teamToDTO(&teams[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": out,
	})
}

func (s *Server) GetTeam(c *gin.Context) {
	team, err := resolveTeamByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Team")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": teamToDTO(team),
	})
}

// UpdateTeam renames the team and replaces its roster. Existing brackets keep
// the name the team had when they were built.
func (s *Server) UpdateTeam(c *gin.Context) {
	team, err := resolveTeamByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Team")
		return
	}

	var input teamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, ok := s.loadRoster(c, input.PlayerIDs)
	if !ok {
		return
	}

	team.Name = input.Name
	team.Players = roster
	team.Prepare()
	if errorMessages := team.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	updated, err := team.UpdateTeam(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}
	invalidateAllTournamentCaches()

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": teamToDTO(updated),
	})
}

func (s *Server) DeleteTeam(c *gin.Context) {
	team, err := resolveTeamByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Team")
		return
	}

	if _, err := team.DeleteTeam(s.DB, team.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}
	invalidateAllTournamentCaches()

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}

func (s *Server) AddTeamPlayer(c *gin.Context) {
	team, player, ok := s.resolveTeamPlayer(c)
	if !ok {
		return
	}

	for _, p := range team.Players {
		if p.ID == player.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "Player already on team"})
			return
		}
	}

	if err := team.AddPlayer(s.DB, player); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add player"})
		return
	}
	s.respondTeam(c, team.ID)
}

func (s *Server) RemoveTeamPlayer(c *gin.Context) {
	team, player, ok := s.resolveTeamPlayer(c)
	if !ok {
		return
	}

	onTeam := false
	for _, p := range team.Players {
		if p.ID == player.ID {
			onTeam = true
			break
		}
	}
	if !onTeam {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not on team"})
		return
	}

	if err := team.RemovePlayer(s.DB, player); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove player"})
		return
	}
	s.respondTeam(c, team.ID)
}

func (s *Server) resolveTeamPlayer(c *gin.Context) (*models.Team, *models.Player, bool) {
	team, err := resolveTeamByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Team")
		return nil, nil, false
	}
	player, err := resolvePlayerByIdentifier(s.DB, c.Param("player_id"))
	if err != nil {
		respondLookupError(c, err, "Player")
		return nil, nil, false
	}
	return team, player, true
}

func (s *Server) respondTeam(c *gin.Context, teamID string) {
	var team models.Team
	reloaded, err := team.FindTeamByID(s.DB, teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": teamToDTO(reloaded),
	})
}
