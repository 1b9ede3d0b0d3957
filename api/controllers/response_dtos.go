package controllers

import "time"

type PlayerDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SkillLevel int       `json:"skill_level"`
	SkillLabel string    `json:"skill_label"`
	Position   string    `json:"position"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TeamDTO struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Players      []PlayerDTO `json:"players"`
	AverageSkill float64     `json:"average_skill"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type CourtDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Surface   string    `json:"surface"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
