package main

import (
	api "Courtside/api"
)

// @title Courtside API
// @version 1.0
// @description Volleyball players, teams, courts and single-elimination tournaments
// @BasePath /api/v1
// @schemes http https
func main() {
	api.Run()
}
