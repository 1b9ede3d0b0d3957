package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Snapshot is the whole dataset as one document, in the shape the browser
// client keeps in local storage.
type Snapshot struct {
	Players     []Player     `json:"players"`
	Teams       []Team       `json:"teams"`
	Tournaments []Tournament `json:"tournaments"`
	Courts      []Court      `json:"courts"`
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Player{},
		&Team{},
		&Court{},
		&Tournament{},
	)
}

// LoadSnapshot reads every collection.
func LoadSnapshot(db *gorm.DB) (*Snapshot, error) {
	s := &Snapshot{}
	var err error

	if s.Players, err = (&Player{}).FindAllPlayers(db, "name", "asc"); err != nil {
		return nil, err
	}
	if s.Teams, err = (&Team{}).FindAllTeams(db); err != nil {
		return nil, err
	}
	if s.Tournaments, err = (&Tournament{}).FindAllTournaments(db); err != nil {
		return nil, err
	}
	if s.Courts, err = (&Court{}).FindAllCourts(db); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every record and every stored bracket. Keys are prefixed
// with the collection and index of the offending record.
func (s *Snapshot) Validate() map[string]string {
	errorsMap := make(map[string]string)

	for i := range s.Players {
		for k, v := range s.Players[i].Validate() {
			errorsMap[fmt.Sprintf("players[%d].%s", i, k)] = v
		}
	}
	for i := range s.Teams {
		for k, v := range s.Teams[i].Validate() {
			errorsMap[fmt.Sprintf("teams[%d].%s", i, k)] = v
		}
	}
	for i := range s.Courts {
		for k, v := range s.Courts[i].Validate() {
			errorsMap[fmt.Sprintf("courts[%d].%s", i, k)] = v
		}
	}
	for i := range s.Tournaments {
		t := &s.Tournaments[i]
		for k, v := range t.Validate() {
			errorsMap[fmt.Sprintf("tournaments[%d].%s", i, k)] = v
		}
		if t.Bracket != nil {
			if err := t.Bracket.Validate(); err != nil {
				errorsMap[fmt.Sprintf("tournaments[%d].Invalid_bracket", i)] = err.Error()
			}
		}
	}

	return errorsMap
}

// Restore replaces every collection with the snapshot in one transaction.
func (s *Snapshot) Restore(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"tournament_teams", "team_players"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		for _, model := range []interface{}{&Tournament{}, &Team{}, &Court{}, &Player{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		if len(s.Players) > 0 {
			if err := tx.Create(&s.Players).Error; err != nil {
				return err
			}
		}
		if len(s.Courts) > 0 {
			if err := tx.Create(&s.Courts).Error; err != nil {
				return err
			}
		}
		for i := range s.Teams {
			team := s.Teams[i]
			if _, err := team.SaveTeam(tx); err != nil {
				return err
			}
		}
		for i := range s.Tournaments {
			t := s.Tournaments[i]
			for j := range t.Teams {
				t.Teams[j].Players = nil
			}
			if _, err := t.SaveTournament(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
