package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Player struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	SkillLevel int       `gorm:"not null;default:1" json:"skill_level"`
	Position   string    `gorm:"size:40" json:"position"`
	Email      string    `gorm:"size:100" json:"email"`
	Phone      string    `gorm:"size:40" json:"phone"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

var skillLevelLabels = map[int]string{
	1: "Beginner",
	2: "Novice",
	3: "Intermediate",
	4: "Advanced",
	5: "Expert",
}

// Positions lists the accepted court positions. An empty position means "any".
var Positions = []string{
	"setter",
	"outside-hitter",
	"middle-blocker",
	"opposite",
	"libero",
	"defensive-specialist",
}

// SkillLevelLabel names a skill level, or returns "" when out of range.
func SkillLevelLabel(level int) string {
	return skillLevelLabels[level]
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

//
// ===============================
// PREPARE & VALIDATE
// ===============================
//

func (p *Player) Prepare() {
	p.Name = html.EscapeString(strings.TrimSpace(p.Name))
	p.Position = strings.ToLower(strings.TrimSpace(p.Position))
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	if p.SkillLevel == 0 {
		p.SkillLevel = MinSkillLevel
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

func (p *Player) Validate() map[string]string {
	errorsMap := make(map[string]string)

	if p.Name == "" {
		errorsMap["Required_name"] = errors.New("player name is required").Error()
	}
	if p.SkillLevel < MinSkillLevel || p.SkillLevel > MaxSkillLevel {
		errorsMap["Invalid_skill_level"] = errors.New("skill level must be between 1 and 5").Error()
	}
	if p.Position != "" && !isOneOf(p.Position, Positions) {
		errorsMap["Invalid_position"] = errors.New("unknown position").Error()
	}
	if p.Email != "" {
		if err := checkmail.ValidateFormat(p.Email); err != nil {
			errorsMap["Invalid_email"] = errors.New("invalid email").Error()
		}
	}

	return errorsMap
}

//
// ===============================
// DATABASE OPERATIONS
// ===============================
//

var playerSortColumns = map[string]string{
	"name":        "name",
	"skill_level": "skill_level",
	"skillLevel":  "skill_level",
	"position":    "position",
	"created_at":  "created_at",
}

// PlayerOrder turns list query parameters into an ORDER BY clause, falling
// back to name ascending for unknown columns.
func PlayerOrder(sortBy, order string) string {
	column, ok := playerSortColumns[sortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if strings.EqualFold(order, "desc") {
		direction = "DESC"
	}
	return column + " " + direction + ", id ASC"
}

func (p *Player) SavePlayer(db *gorm.DB) (*Player, error) {
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) FindAllPlayers(db *gorm.DB, sortBy, order string) ([]Player, error) {
	players := []Player{}
	if err := db.Order(PlayerOrder(sortBy, order)).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (p *Player) FindPlayerByID(db *gorm.DB, id string) (*Player, error) {
	if err := db.Where("id = ?", id).First(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// FindPlayersByIDs loads players in the order of ids. A missing ID yields
// gorm.ErrRecordNotFound.
func FindPlayersByIDs(db *gorm.DB, ids []string) ([]Player, error) {
	if len(ids) == 0 {
		return []Player{}, nil
	}
	var found []Player
	if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]Player, len(found))
	for _, player := range found {
		byID[player.ID] = player
	}
	ordered := make([]Player, 0, len(ids))
	for _, id := range ids {
		player, ok := byID[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		ordered = append(ordered, player)
	}
	return ordered, nil
}

func (p *Player) UpdatePlayer(db *gorm.DB) (*Player, error) {
	p.UpdatedAt = time.Now()

	err := db.Model(&Player{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"skill_level": p.SkillLevel,
			"position":    p.Position,
			"email":       p.Email,
			"phone":       p.Phone,
			"updated_at":  p.UpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}

	return p.FindPlayerByID(db, p.ID)
}

// DeletePlayer removes the player and drops them from every roster.
func (p *Player) DeletePlayer(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM team_players WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&Player{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
