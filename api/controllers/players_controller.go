package controllers

import (
	"net/http"

	"Courtside/api/models"

	"github.com/gin-gonic/gin"
)

type playerInput struct {
	Name       string `json:"name"`
	SkillLevel int    `json:"skill_level"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func (in playerInput) apply(player *models.Player) {
	player.Name = in.Name
	player.SkillLevel = in.SkillLevel
	player.Position = in.Position
	player.Email = in.Email
	player.Phone = in.Phone
}

// CreatePlayer godoc
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        player  body      playerInput  true  "Player payload"
// @Success      201     {object}  PlayerDTO
// @Failure      400     {object}  map[string]string
// @Failure      422     {object}  map[string]string
// @Router       /players [post]
func (s *Server) CreatePlayer(c *gin.Context) {
	var input playerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var player models.Player
	input.apply(&player)
	player.Prepare()
	if errorMessages := player.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	created, err := player.SavePlayer(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": playerToDTO(created),
	})
}

// GetPlayers lists players, optionally sorted with ?sort=name|skill_level|position&order=asc|desc.
func (s *Server) GetPlayers(c *gin.Context) {
	var player models.Player
	players, err := player.FindAllPlayers(s.DB, c.Query("sort"), c.Query("order"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load players"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": playersToDTO(players),
	})
}

func (s *Server) GetPlayer(c *gin.Context) {
	player, err := resolvePlayerByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Player")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": playerToDTO(player),
	})
}

func (s *Server) UpdatePlayer(c *gin.Context) {
	player, err := resolvePlayerByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Player")
		return
	}

	var input playerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.apply(player)
	player.Prepare()
	if errorMessages := player.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	updated, err := player.UpdatePlayer(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": playerToDTO(updated),
	})
}

// DeletePlayer removes the player from the directory and from every roster.
// Brackets already built keep their own copy of team names and are unaffected.
func (s *Server) DeletePlayer(c *gin.Context) {
	player, err := resolvePlayerByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Player")
		return
	}

	if _, err := player.DeletePlayer(s.DB, player.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
}
