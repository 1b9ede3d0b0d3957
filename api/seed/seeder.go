package seed

import (
	"fmt"
	"log"

	"Courtside/api/models"

	"gorm.io/gorm"
)

var players = []models.Player{
	{Name: "Maya Chen", SkillLevel: 5, Position: "setter", Email: "maya@example.com"},
	{Name: "Jordan Reyes", SkillLevel: 4, Position: "outside-hitter"},
	{Name: "Sam Okafor", SkillLevel: 3, Position: "middle-blocker"},
	{Name: "Alex Novak", SkillLevel: 4, Position: "opposite"},
	{Name: "Riley Park", SkillLevel: 2, Position: "libero"},
	{Name: "Casey Duarte", SkillLevel: 3, Position: "outside-hitter"},
	{Name: "Taylor Brooks", SkillLevel: 1, Position: "defensive-specialist"},
	{Name: "Morgan Ito", SkillLevel: 2, Position: "setter"},
}

var teamNames = []string{"Block Party", "Net Gains", "Dig Deep", "Set to Kill"}

var courts = []models.Court{
	{Name: "Main Gym", Location: "Rec Center", Surface: "indoor"},
	{Name: "Beach Court 1", Location: "Lakeside", Surface: "sand"},
	{Name: "Park Court", Location: "Riverside Park", Surface: "grass", Status: "maintenance"},
}

// Load fills an empty database with demo players, teams and courts. It does
// nothing when any player already exists.
func Load(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Player{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[seed] players present, skipping demo data")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		created := make([]models.Player, 0, len(players))
		for i := range players {
			p := players[i]
			p.Prepare()
			if _, err := p.SavePlayer(tx); err != nil {
				return fmt.Errorf("cannot seed players table: %w", err)
			}
			created = append(created, p)
		}

		perTeam := len(created) / len(teamNames)
		for i, name := range teamNames {
			team := models.Team{Name: name, Players: created[i*perTeam : (i+1)*perTeam]}
			team.Prepare()
			if _, err := team.SaveTeam(tx); err != nil {
				return fmt.Errorf("cannot seed teams table: %w", err)
			}
		}

		for i := range courts {
			c := courts[i]
			c.Prepare()
			if _, err := c.SaveCourt(tx); err != nil {
				return fmt.Errorf("cannot seed courts table: %w", err)
			}
		}

		log.Printf("[seed] loaded %d players, %d teams, %d courts", len(created), len(teamNames), len(courts))
		return nil
	})
}
