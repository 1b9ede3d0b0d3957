package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"Courtside/api/models"

	"github.com/gin-gonic/gin"
)

// ExportSnapshot returns the whole dataset as one document.
func (s *Server) ExportSnapshot(c *gin.Context) {
	snapshot, err := models.LoadSnapshot(s.DB)
	s.Metrics.snapshotOperation("export", err)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export snapshot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": snapshot,
	})
}

// ImportSnapshot replaces every collection with the posted document. Nothing
// is written unless every record and bracket validates.
func (s *Server) ImportSnapshot(c *gin.Context) {
	var snapshot models.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errorMessages := snapshot.Validate(); len(errorMessages) > 0 {
		s.Metrics.snapshotOperation("import", errInvalidSnapshot)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	err := snapshot.Restore(s.DB)
	s.Metrics.snapshotOperation("import", err)
	if err != nil {
		log.Printf("[snapshot] import: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import snapshot"})
		return
	}
	invalidateAllTournamentCaches()

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"players":     len(snapshot.Players),
			"teams":       len(snapshot.Teams),
			"tournaments": len(snapshot.Tournaments),
			"courts":      len(snapshot.Courts),
		},
	})
}

// BackupSnapshot uploads the current dataset to S3.
func (s *Server) BackupSnapshot(c *gin.Context) {
	if s.Snapshots == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Snapshot backups are not configured"})
		return
	}

	snapshot, err := models.LoadSnapshot(s.DB)
	if err != nil {
		s.Metrics.snapshotOperation("backup", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export snapshot"})
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.Metrics.snapshotOperation("backup", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode snapshot"})
		return
	}

	key, err := s.Snapshots.Backup(c.Request.Context(), payload, time.Now())
	s.Metrics.snapshotOperation("backup", err)
	if err != nil {
		log.Printf("[snapshot] backup: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload snapshot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": gin.H{"bucket": s.Snapshots.Bucket, "key": key},
	})
}
