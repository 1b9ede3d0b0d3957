package controllers

import (
	"net/http"

	"Courtside/api/models"

	"github.com/gin-gonic/gin"
)

type courtInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Surface  string `json:"surface"`
	Status   string `json:"status"`
}

func (in courtInput) apply(court *models.Court) {
	court.Name = in.Name
	court.Location = in.Location
	court.Surface = in.Surface
	court.Status = in.Status
}

func (s *Server) CreateCourt(c *gin.Context) {
	var input courtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var court models.Court
	input.apply(&court)
	court.Prepare()
	if errorMessages := court.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	created, err := court.SaveCourt(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": courtToDTO(created),
	})
}

func (s *Server) GetCourts(c *gin.Context) {
	var court models.Court
	courts, err := court.FindAllCourts(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courts"})
		return
	}

	out := make([]CourtDTO, 0, len(courts))
	for i := range courts {
		out = append(out, courtToDTO(&courts[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": out,
	})
}

func (s *Server) GetCourt(c *gin.Context) {
	court, err := resolveCourtByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Court")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": courtToDTO(court),
	})
}

func (s *Server) UpdateCourt(c *gin.Context) {
	court, err := resolveCourtByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Court")
		return
	}

	var input courtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.apply(court)
	court.Prepare()
	if errorMessages := court.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	updated, err := court.UpdateCourt(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update court"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": courtToDTO(updated),
	})
}

func (s *Server) DeleteCourt(c *gin.Context) {
	court, err := resolveCourtByIdentifier(s.DB, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "Court")
		return
	}

	if _, err := court.DeleteCourt(s.DB, court.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete court"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}
