package models

import (
	"errors"
	"html"
	"sort"
	"strings"
	"time"

	"Courtside/api/bracket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FormatSingleElimination = "single-elimination"
	FormatDoubleElimination = "double-elimination"
	FormatRoundRobin        = "round-robin"
)

// TournamentFormats are the formats a tournament may be filed under. Every
// format is played out on a single-elimination bracket.
var TournamentFormats = []string{
	FormatSingleElimination,
	FormatDoubleElimination,
	FormatRoundRobin,
}

type Tournament struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Format    string          `gorm:"size:40;not null;default:'single-elimination'" json:"format"`
	Teams     []Team          `gorm:"many2many:tournament_teams;" json:"teams"`
	Seed      int64           `gorm:"not null;default:0" json:"seed"`
	Bracket   bracket.Bracket `gorm:"serializer:json;type:text" json:"bracket"`
	CreatedAt time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (t *Tournament) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(t.ID) == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// NewSeed returns a fresh bracket seed that fits a signed BIGINT column.
func NewSeed() int64 {
	return int64(bracket.RandomSeed() >> 1)
}

//
// ===============================
// PREPARE & VALIDATE
// ===============================
//

func (t *Tournament) Prepare() {
	t.Name = html.EscapeString(strings.TrimSpace(t.Name))
	t.Format = strings.ToLower(strings.TrimSpace(t.Format))
	if t.Format == "" {
		t.Format = FormatSingleElimination
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
}

// PrepareEdit applies a partial edit. Fields left nil keep their stored,
// already escaped, values.
func (t *Tournament) PrepareEdit(name, format *string) {
	if name != nil {
		t.Name = html.EscapeString(strings.TrimSpace(*name))
	}
	if format != nil {
		t.Format = strings.ToLower(strings.TrimSpace(*format))
		if t.Format == "" {
			t.Format = FormatSingleElimination
		}
	}
}

func (t *Tournament) Validate() map[string]string {
	errorsMap := t.ValidateDetails()
	if len(t.Teams) < 2 {
		errorsMap["Required_teams"] = errors.New("at least 2 teams are required for a tournament").Error()
	}
	return errorsMap
}

// ValidateDetails checks name and format only. A stored tournament can lose
// entrants when a team is deleted, and that must not block a rename.
func (t *Tournament) ValidateDetails() map[string]string {
	errorsMap := make(map[string]string)

	if t.Name == "" {
		errorsMap["Required_name"] = errors.New("tournament name is required").Error()
	}
	if !isOneOf(t.Format, TournamentFormats) {
		errorsMap["Invalid_format"] = errors.New("unknown tournament format").Error()
	}

	return errorsMap
}

//
// ===============================
// BRACKET
// ===============================
//

// BuildBracket lays out a fresh bracket from the current team list and seed.
// Entrants are ordered by ID first so a seed gives the same bracket however
// the team list was loaded.
func (t *Tournament) BuildBracket() error {
	refs := make([]bracket.Team, 0, len(t.Teams))
	for i := range t.Teams {
		refs = append(refs, t.Teams[i].Ref())
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	b, err := bracket.Build(refs, bracket.NewRand(uint64(t.Seed)))
	if err != nil {
		return err
	}
	t.Bracket = b
	return nil
}

// RecordResult scores a match and keeps the resulting bracket. On error the
// stored bracket is left as it was.
func (t *Tournament) RecordResult(matchID string, score1, score2 int) error {
	b, err := bracket.RecordResult(t.Bracket, matchID, score1, score2)
	if err != nil {
		return err
	}
	t.Bracket = b
	return nil
}

func (t *Tournament) Status() bracket.Status {
	return t.Bracket.Status()
}

func (t *Tournament) Winner() *bracket.Team {
	return t.Bracket.Winner()
}

// SameTeams reports whether ids names exactly the current entrants, in any
// order. A list with repeats never matches.
func (t *Tournament) SameTeams(ids []string) bool {
	if len(ids) != len(t.Teams) {
		return false
	}
	current := make(map[string]bool, len(t.Teams))
	for _, team := range t.Teams {
		current[team.ID] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !current[id] || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

//
// ===============================
// DATABASE OPERATIONS
// ===============================
//

// SaveTournament creates the tournament and links its teams, which must exist.
func (t *Tournament) SaveTournament(db *gorm.DB) (*Tournament, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		teams := t.Teams
		t.Teams = nil
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		t.Teams = teams
		return tx.Model(&Tournament{ID: t.ID}).Association("Teams").Replace(teams)
	})
	if err != nil {
		return nil, err
	}
	return t.FindTournamentByID(db, t.ID)
}

func (t *Tournament) FindAllTournaments(db *gorm.DB) ([]Tournament, error) {
	tournaments := []Tournament{}
	if err := db.Preload("Teams").Order("created_at DESC, id ASC").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (t *Tournament) FindTournamentByID(db *gorm.DB, id string) (*Tournament, error) {
	if err := db.Preload("Teams.Players").Where("id = ?", id).First(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTournament writes the editable fields and the bracket. The team
// links are replaced only when replaceTeams is set.
func (t *Tournament) UpdateTournament(db *gorm.DB, replaceTeams bool) (*Tournament, error) {
	t.UpdatedAt = time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Tournament{ID: t.ID}).
			Select("name", "format", "seed", "bracket", "updated_at").
			Updates(&Tournament{
				Name:      t.Name,
				Format:    t.Format,
				Seed:      t.Seed,
				Bracket:   t.Bracket,
				UpdatedAt: t.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		if replaceTeams {
			return tx.Model(&Tournament{ID: t.ID}).Association("Teams").Replace(t.Teams)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t.FindTournamentByID(db, t.ID)
}

// SaveBracket persists only the bracket column.
func (t *Tournament) SaveBracket(db *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return db.Model(&Tournament{ID: t.ID}).
		Select("bracket", "updated_at").
		Updates(&Tournament{Bracket: t.Bracket, UpdatedAt: t.UpdatedAt}).Error
}

func (t *Tournament) DeleteTournament(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM tournament_teams WHERE tournament_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&Tournament{})
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
