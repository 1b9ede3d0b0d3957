package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Court struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Location  string    `gorm:"size:255" json:"location"`
	Surface   string    `gorm:"size:20;not null;default:'indoor'" json:"surface"`
	Status    string    `gorm:"size:20;not null;default:'available'" json:"status"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

var (
	CourtSurfaces = []string{"indoor", "outdoor", "sand", "grass"}
	CourtStatuses = []string{"available", "occupied", "maintenance", "reserved"}
)

func (c *Court) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Court) Prepare() {
	c.Name = html.EscapeString(strings.TrimSpace(c.Name))
	c.Location = html.EscapeString(strings.TrimSpace(c.Location))
	c.Surface = strings.ToLower(strings.TrimSpace(c.Surface))
	c.Status = strings.ToLower(strings.TrimSpace(c.Status))
	if c.Surface == "" {
		c.Surface = "indoor"
	}
	if c.Status == "" {
		c.Status = "available"
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
}

func (c *Court) Validate() map[string]string {
	errorsMap := make(map[string]string)

	if c.Name == "" {
		errorsMap["Required_name"] = errors.New("court name is required").Error()
	}
	if !isOneOf(c.Surface, CourtSurfaces) {
		errorsMap["Invalid_surface"] = errors.New("unknown surface").Error()
	}
	if !isOneOf(c.Status, CourtStatuses) {
		errorsMap["Invalid_status"] = errors.New("unknown court status").Error()
	}

	return errorsMap
}

func (c *Court) SaveCourt(db *gorm.DB) (*Court, error) {
	if err := db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Court) FindAllCourts(db *gorm.DB) ([]Court, error) {
	courts := []Court{}
	if err := db.Order("name ASC, id ASC").Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *Court) FindCourtByID(db *gorm.DB, id string) (*Court, error) {
	if err := db.Where("id = ?", id).First(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Court) UpdateCourt(db *gorm.DB) (*Court, error) {
	c.UpdatedAt = time.Now()

	err := db.Model(&Court{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":       c.Name,
			"location":   c.Location,
			"surface":    c.Surface,
			"status":     c.Status,
			"updated_at": c.UpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return c.FindCourtByID(db, c.ID)
}

func (c *Court) DeleteCourt(db *gorm.DB, id string) (int64, error) {
	result := db.Where("id = ?", id).Delete(&Court{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
