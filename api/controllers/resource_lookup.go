package controllers

import (
	"errors"
	"net/http"

	"Courtside/api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func resolvePlayerByIdentifier(db *gorm.DB, identifier string) (*models.Player, error) {
	id, err := normalizeIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	var player models.Player
	return player.FindPlayerByID(db, id)
}

func resolveTeamByIdentifier(db *gorm.DB, identifier string) (*models.Team, error) {
	id, err := normalizeIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	var team models.Team
	return team.FindTeamByID(db, id)
}

func resolveCourtByIdentifier(db *gorm.DB, identifier string) (*models.Court, error) {
	id, err := normalizeIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	var court models.Court
	return court.FindCourtByID(db, id)
}

func resolveTournamentByIdentifier(db *gorm.DB, identifier string) (*models.Tournament, error) {
	id, err := normalizeIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	var tournament models.Tournament
	return tournament.FindTournamentByID(db, id)
}

// respondLookupError maps a resolve* error to 400, 404 or 500.
func respondLookupError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, errInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + resource + " ID"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load " + resource})
	}
}
