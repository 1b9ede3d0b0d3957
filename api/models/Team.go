package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"Courtside/api/bracket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Players   []Player  `gorm:"many2many:team_players;" json:"players"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(t.ID) == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AverageSkill is the mean skill level of the roster, 0 for an empty roster.
func (t *Team) AverageSkill() float64 {
	if len(t.Players) == 0 {
		return 0
	}
	total := 0
	for _, p := range t.Players {
		total += p.SkillLevel
	}
	return float64(total) / float64(len(t.Players))
}

// Ref is the weak reference a bracket keeps to this team.
func (t *Team) Ref() bracket.Team {
	return bracket.Team{ID: t.ID, Name: t.Name}
}

//
// ===============================
// PREPARE & VALIDATE
// ===============================
//

func (t *Team) Prepare() {
	t.Name = html.EscapeString(strings.TrimSpace(t.Name))
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
}

func (t *Team) Validate() map[string]string {
	errorsMap := make(map[string]string)

	if t.Name == "" {
		errorsMap["Required_name"] = errors.New("team name is required").Error()
	}
	seen := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		if seen[p.ID] {
			errorsMap["Duplicate_player"] = errors.New("player listed twice").Error()
			break
		}
		seen[p.ID] = true
	}

	return errorsMap
}

//
// ===============================
// DATABASE OPERATIONS
// ===============================
//

// SaveTeam creates the team and links the roster players, which must exist.
func (t *Team) SaveTeam(db *gorm.DB) (*Team, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		roster := t.Players
		t.Players = nil
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		if len(roster) > 0 {
			if err := tx.Model(t).Association("Players").Replace(roster); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t.FindTeamByID(db, t.ID)
}

func (t *Team) FindAllTeams(db *gorm.DB) ([]Team, error) {
	teams := []Team{}
	if err := db.Preload("Players").Order("name ASC, id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (t *Team) FindTeamByID(db *gorm.DB, id string) (*Team, error) {
	if err := db.Preload("Players").Where("id = ?", id).First(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// FindTeamsByIDs loads teams in the order of ids. A missing ID yields
// gorm.ErrRecordNotFound.
func FindTeamsByIDs(db *gorm.DB, ids []string) ([]Team, error) {
	if len(ids) == 0 {
		return []Team{}, nil
	}
	var found []Team
	if err := db.Preload("Players").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]Team, len(found))
	for _, team := range found {
		byID[team.ID] = team
	}
	ordered := make([]Team, 0, len(ids))
	for _, id := range ids {
		team, ok := byID[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		ordered = append(ordered, team)
	}
	return ordered, nil
}

// UpdateTeam renames the team and replaces its roster.
func (t *Team) UpdateTeam(db *gorm.DB) (*Team, error) {
	t.UpdatedAt = time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Team{}).
			Where("id = ?", t.ID).
			Updates(map[string]interface{}{
				"name":       t.Name,
				"updated_at": t.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		roster := tx.Model(&Team{ID: t.ID}).Association("Players")
		if len(t.Players) == 0 {
			return roster.Clear()
		}
		return roster.Replace(t.Players)
	})
	if err != nil {
		return nil, err
	}

	return t.FindTeamByID(db, t.ID)
}

func (t *Team) AddPlayer(db *gorm.DB, player *Player) error {
	return db.Model(&Team{ID: t.ID}).Association("Players").Append(player)
}

func (t *Team) RemovePlayer(db *gorm.DB, player *Player) error {
	return db.Model(&Team{ID: t.ID}).Association("Players").Delete(player)
}

// DeleteTeam removes the team, its roster links and its tournament entries.
// Brackets keep their own snapshot of the team.
func (t *Team) DeleteTeam(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM team_players WHERE team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tournament_teams WHERE team_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&Team{})
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
